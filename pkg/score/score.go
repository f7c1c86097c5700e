// Package score computes the social-energy impact of calendar events: a
// heuristic per-event cost shaped by duration, role, environment, and the
// user's personality profile.
package score

import (
	"fmt"
	"math"

	"github.com/jayvenma/SocialBatteryForecaster/pkg/event"
)

// Base energy cost per event type (positive = recharge, negative = drain).
var baseCost = map[event.EventType]float64{
	event.Meeting:  -10.0,
	event.OneOnOne: -6.0,
	event.Social:   -8.0,
	event.Call:     -7.0,
	event.Async:    -2.0,
	event.Solo:     +6.0,
	event.Custom:   -5.0,
}

const unknownTypeCost = -6.0

// BaseCost exposes the per-type base cost, for the legend command.
func BaseCost(t event.EventType) float64 {
	if c, ok := baseCost[t]; ok {
		return c
	}
	return unknownTypeCost
}

// Result is the scored impact of a single event.
type Result struct {
	Score   float64
	Label   event.ImpactLabel
	Reasons []string
}

// Event scores one event against the given personality score (0-100).
// Sign lives in Score (negative = drain); Label is intensity by magnitude.
func Event(e *event.Event, personalityScore int) Result {
	base, ok := baseCost[e.Type]
	if !ok {
		base = unknownTypeCost
	}

	durationMin := minutesBetween(e)
	durationFactor := 1.0 + 0.4*(float64(durationMin)/60)

	b2bFactor := 1.0
	if e.Modifiers.BackToBack {
		b2bFactor = 1.3
	}

	roleFactor := 1.0
	switch e.Modifiers.Role {
	case event.RoleLead:
		roleFactor = 1.25
	case event.RoleListening:
		roleFactor = 0.85
	}

	familiarityFactor := 1.0 - 0.25*clamp01(e.Modifiers.Familiarity)

	controlFactor := 1.0
	if e.Modifiers.Control == event.ControlOptional {
		controlFactor = 0.85
	}

	environmentFactor := 1.0
	switch e.Modifiers.Environment {
	case event.LowStim:
		environmentFactor = 0.8
	case event.HighStim:
		environmentFactor = 1.25
	}

	videoFactor := 1.0
	if e.HasVideo {
		videoFactor = 1.15
	}

	pMult := math.Max(0.6, Multiplier(personalityScore))

	raw := base * durationFactor * b2bFactor * roleFactor *
		familiarityFactor * controlFactor * environmentFactor *
		videoFactor * pMult

	impact := math.Round(raw*100) / 100
	if math.Abs(impact) < 0.5 {
		impact = 0.0
	}

	reasons := []string{fmt.Sprintf("Base %s cost", e.Type)}
	if durationMin > 30 {
		reasons = append(reasons, "Long duration increases intensity")
	}
	if e.Modifiers.BackToBack {
		reasons = append(reasons, "Back-to-back fatigue")
	}
	if e.HasVideo {
		reasons = append(reasons, "Video fatigue")
	}
	reasons = append(reasons, "Personality factor applied")

	return Result{Score: impact, Label: LabelFor(impact), Reasons: reasons}
}

// LabelFor maps an impact score to its display intensity, by magnitude.
func LabelFor(impact float64) event.ImpactLabel {
	mag := math.Abs(impact)
	switch {
	case mag >= 12:
		return event.Extreme
	case mag >= 6:
		return event.High
	case mag >= 2:
		return event.Medium
	default:
		return event.Low
	}
}

func minutesBetween(e *event.Event) int {
	if !e.Valid() {
		return 0
	}
	return int(e.End.Sub(e.Start.Time).Minutes())
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
