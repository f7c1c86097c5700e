package layout

import (
	"math"
	"testing"
	"time"
)

func TestCandidateSnapRounding(t *testing.T) {
	w := Window{StartHour: 7, EndHour: 22, PixelsPerMinute: 1}
	e := mkEvent("x", at(9, 0), at(9, 45))

	tests := []struct {
		pointerPx float64
		wantMin   int // minutes past the window start
	}{
		{0, 0},
		{7, 0},   // half-up boundary: 7 rounds down
		{8, 15},  // 8 rounds up
		{7.5, 15},
		{22, 15},
		{23, 30},
	}
	for _, tc := range tests {
		d := Candidate(day, tc.pointerPx, e, w)
		want := DayStart(day).Add(time.Duration(w.StartHour*60+tc.wantMin) * time.Minute)
		if !d.Start.Equal(want) {
			t.Fatalf("pointer %v: expected start %v, got %v", tc.pointerPx, want, d.Start)
		}
	}
}

func TestCandidatePreservesDuration(t *testing.T) {
	w := Window{StartHour: 7, EndHour: 22, PixelsPerMinute: 2}
	e := mkEvent("x", at(9, 0), at(9, 45))

	d := Candidate(day, 120, e, w) // 60 minutes into the window
	if got := d.End.Sub(d.Start); got != 45*time.Minute {
		t.Fatalf("expected 45m duration, got %v", got)
	}
	if !d.Valid {
		t.Fatalf("expected valid candidate, got %+v", d)
	}
	if d.Top != 120 || d.Height != 90 {
		t.Fatalf("unexpected preview rect: top=%v height=%v", d.Top, d.Height)
	}
}

func TestCandidateFloorsDegenerateDuration(t *testing.T) {
	w := Window{StartHour: 7, EndHour: 22, PixelsPerMinute: 1}
	inverted := mkEvent("x", at(10, 0), at(9, 0))

	d := Candidate(day, 60, inverted, w)
	if got := d.End.Sub(d.Start); got != MinDragMinutes*time.Minute {
		t.Fatalf("expected floored 15m duration, got %v", got)
	}

	d = Candidate(day, 60, nil, w)
	if got := d.End.Sub(d.Start); got != MinDragMinutes*time.Minute {
		t.Fatalf("expected floored 15m duration for nil event, got %v", got)
	}
}

func TestCandidateInvalidPastWindowEndStillPreviews(t *testing.T) {
	// 45-minute event snapped so its end passes 22:00: valid=false but the
	// clipped rectangle is still reported for feedback.
	w := Window{StartHour: 7, EndHour: 22, PixelsPerMinute: 1}
	e := mkEvent("x", at(9, 0), at(9, 45))

	d := Candidate(day, 880, e, w) // snaps to 21:45
	if d.Valid {
		t.Fatalf("expected invalid candidate, got %+v", d)
	}
	wantStart := DayStart(day).Add(21*time.Hour + 45*time.Minute)
	if !d.Start.Equal(wantStart) {
		t.Fatalf("expected start %v, got %v", wantStart, d.Start)
	}
	if d.Top != 885 || d.Height != 15 {
		t.Fatalf("unexpected clipped preview: top=%v height=%v", d.Top, d.Height)
	}
	if d.Top+d.Height > w.HeightPx() {
		t.Fatalf("preview exceeds window: top=%v height=%v", d.Top, d.Height)
	}
}

func TestCandidateClampsPointerToWindow(t *testing.T) {
	w := Window{StartHour: 7, EndHour: 22, PixelsPerMinute: 1}
	e := mkEvent("x", at(9, 0), at(9, 30))

	d := Candidate(day, -50, e, w)
	if !d.Start.Equal(DayStart(day).Add(7 * time.Hour)) {
		t.Fatalf("expected clamp to window start, got %v", d.Start)
	}
	if !d.Valid {
		t.Fatalf("expected valid candidate at window start")
	}

	d = Candidate(day, 99999, e, w)
	if !d.Start.Equal(DayStart(day).Add(22 * time.Hour)) {
		t.Fatalf("expected clamp to window end, got %v", d.Start)
	}
	if d.Valid {
		t.Fatalf("candidate starting at the window end cannot fit its duration")
	}
}

func TestCreateCandidateUsesDefaultDuration(t *testing.T) {
	w := Window{StartHour: 7, EndHour: 22, PixelsPerMinute: 1}

	d := CreateCandidate(day, 128, w) // snaps to 09:15
	if got := d.End.Sub(d.Start); got != DefaultCreateMinutes*time.Minute {
		t.Fatalf("expected 30m create candidate, got %v", got)
	}
	wantStart := DayStart(day).Add(9*time.Hour + 15*time.Minute)
	if !d.Start.Equal(wantStart) {
		t.Fatalf("expected start %v, got %v", wantStart, d.Start)
	}
	if !d.Valid {
		t.Fatalf("expected valid create candidate, got %+v", d)
	}
}

func TestCandidateIsPure(t *testing.T) {
	w := Window{StartHour: 7, EndHour: 22, PixelsPerMinute: 1}
	e := mkEvent("x", at(9, 0), at(9, 45))

	a := Candidate(day, 333, e, w)
	b := Candidate(day, 333, e, w)
	if a != b {
		t.Fatalf("expected identical candidates, got %+v and %+v", a, b)
	}
	if math.IsNaN(a.Top) || math.IsNaN(a.Height) {
		t.Fatalf("expected finite geometry, got %+v", a)
	}
}
