package layout

import (
	"testing"
	"time"
)

func TestWindowMinutesAndHeight(t *testing.T) {
	w := Window{StartHour: 7, EndHour: 22, PixelsPerMinute: 2}
	if got := w.Minutes(); got != 900 {
		t.Fatalf("expected 900 minutes, got %d", got)
	}
	if got := w.HeightPx(); got != 1800 {
		t.Fatalf("expected 1800px, got %v", got)
	}
}

func TestWindowMinuteOfDay(t *testing.T) {
	w := Default()
	ts := time.Date(2026, time.March, 9, 13, 42, 59, 0, time.Local)
	if got := w.MinuteOfDay(ts); got != 13*60+42 {
		t.Fatalf("expected %d, got %d", 13*60+42, got)
	}
}

func TestWindowClampMinutes(t *testing.T) {
	w := Window{StartHour: 7, EndHour: 22}
	tests := []struct{ in, want int }{
		{0, 420},
		{419, 420},
		{420, 420},
		{900, 900},
		{1320, 1320},
		{1321, 1320},
		{1440, 1320},
	}
	for _, tc := range tests {
		if got := w.ClampMinutes(tc.in); got != tc.want {
			t.Fatalf("clamp(%d): expected %d, got %d", tc.in, tc.want, got)
		}
	}
}

func TestWindowPixels(t *testing.T) {
	w := Window{StartHour: 7, EndHour: 22, PixelsPerMinute: 1.5}
	if got := w.PixelsFromWindowStart(40); got != 60 {
		t.Fatalf("expected 60px, got %v", got)
	}
	if got := w.PixelsFromWindowStart(0); got != 0 {
		t.Fatalf("expected 0px, got %v", got)
	}
}
