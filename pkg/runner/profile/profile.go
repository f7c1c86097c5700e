package profile

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/jayvenma/SocialBatteryForecaster/pkg/app"
	"github.com/jayvenma/SocialBatteryForecaster/pkg/score"
)

// Questions for the onboarding quiz. Answers are 1 (strongly disagree)
// through 5 (strongly agree); higher totals lean extrovert.
var Questions = []string{
	"A full day of meetings leaves me energized.",
	"I look forward to large social gatherings.",
	"Small talk with strangers comes easily to me.",
	"I think out loud rather than in my head.",
	"After a party I want to keep the evening going.",
	"I prefer group work over working alone.",
	"Being the center of attention is comfortable.",
	"I make plans for most evenings of the week.",
	"Phone calls beat text messages for me.",
	"I recharge by being around other people.",
	"Open-plan offices suit how I work.",
	"I volunteer to present in front of groups.",
	"Quiet weekends feel wasted to me.",
	"I meet new people without needing an introduction.",
	"Background noise helps me concentrate.",
}

type Profile struct {
	Answers []int // preset answers; when empty, prompt interactively
	Show    bool  // print the saved profile and exit

	Service *app.Service
}

func (n *Profile) Do(ctx context.Context) error {
	if n.Show {
		prof, err := n.Service.Profile()
		if err != nil {
			return err
		}
		printProfile(prof.Score, prof.Label)
		return nil
	}

	answers := n.Answers
	if len(answers) == 0 {
		var err error
		answers, err = promptQuiz()
		if err != nil {
			return err
		}
	}

	prof, err := n.Service.SetProfileFromQuiz(answers)
	if err != nil {
		return err
	}
	printProfile(prof.Score, prof.Label)
	return nil
}

func promptQuiz() ([]int, error) {
	reader := bufio.NewReader(os.Stdin)
	answers := make([]int, 0, score.QuizAnswers)

	fmt.Println("Answer each statement 1-5 (1 = strongly disagree, 5 = strongly agree).")
	for i, q := range Questions {
		fmt.Printf("%2d/%d  %s\n> ", i+1, len(Questions), q)
		line, err := reader.ReadString('\n')
		if err != nil {
			return nil, fmt.Errorf("profile: read answer: %w", err)
		}
		v, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || v < 1 || v > 5 {
			return nil, fmt.Errorf("profile: answer %d must be 1-5", i+1)
		}
		answers = append(answers, v)
	}
	return answers, nil
}

func printProfile(scoreVal int, label string) {
	t := color.New(color.Bold)
	f := color.New(color.Faint)
	_, _ = t.Printf("%s", label)
	_, _ = f.Printf(" (%d/100, energy multiplier %.2f)\n", scoreVal, score.Multiplier(scoreVal))
}
