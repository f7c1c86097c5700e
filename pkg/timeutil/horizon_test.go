package timeutil

import (
	"testing"
	"time"
)

func TestParseHorizonDefault(t *testing.T) {
	dur, label, err := ParseHorizon("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dur != 24*time.Hour {
		t.Fatalf("expected 24h, got %v", dur)
	}
	if label != "1d" {
		t.Fatalf("expected label 1d, got %s", label)
	}
}

func TestParseHorizonComposite(t *testing.T) {
	dur, label, err := ParseHorizon("1w2d6h30m")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := (7*24+2*24+6)*time.Hour + 30*time.Minute
	if dur != want {
		t.Fatalf("expected %v, got %v", want, dur)
	}
	if label != "1w2d6h30m" {
		t.Fatalf("unexpected label: %s", label)
	}
}

func TestParseHorizonInvalid(t *testing.T) {
	if _, _, err := ParseHorizon("noop"); err == nil {
		t.Fatalf("expected error for invalid horizon")
	}
}

func TestHoursRoundsUp(t *testing.T) {
	if got := Hours(90 * time.Minute); got != 2 {
		t.Fatalf("expected 2, got %d", got)
	}
	if got := Hours(24 * time.Hour); got != 24 {
		t.Fatalf("expected 24, got %d", got)
	}
}
