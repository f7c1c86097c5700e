package score

import (
	"errors"
	"math"
)

// QuizAnswers is the number of onboarding questions; each answer is 1..5.
const QuizAnswers = 15

// ErrBadQuiz is returned when quiz input is the wrong shape.
var ErrBadQuiz = errors.New("score: quiz needs 15 answers between 1 and 5")

// PersonalityLabel buckets a 0-100 personality score.
func PersonalityLabel(score int) string {
	switch {
	case score <= 39:
		return "Introvert"
	case score <= 60:
		return "Omnivert"
	default:
		return "Extrovert"
	}
}

// Multiplier converts a 0-100 personality score to an energy multiplier.
// Introverts drain faster (~1.3), extroverts slower (~0.7).
func Multiplier(score int) float64 {
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	const start, end = 1.3, 0.7
	t := float64(score) / 100.0
	return start + (end-start)*t
}

// Quiz scores the onboarding answers. Raw range is 15..75; the result is
// normalized to 0..100.
func Quiz(answers []int) (int, error) {
	if len(answers) != QuizAnswers {
		return 0, ErrBadQuiz
	}
	raw := 0
	for _, a := range answers {
		if a < 1 || a > 5 {
			return 0, ErrBadQuiz
		}
		raw += a
	}
	return int(math.Round(float64(raw-QuizAnswers) / 60.0 * 100)), nil
}
