package layout

import (
	"math"
	"time"

	"github.com/jayvenma/SocialBatteryForecaster/pkg/event"
)

const (
	// SnapMinutes is the time grid a drag or click quantizes to.
	SnapMinutes = 15
	// MinDragMinutes floors the candidate duration against zero or
	// negative source durations.
	MinDragMinutes = 15
	// DefaultCreateMinutes is the duration of a click-to-create candidate.
	DefaultCreateMinutes = 30
)

// Drag is the provisional, uncommitted target range computed on every
// pointer move. An invalid candidate is still renderable for feedback but
// must not be committed.
type Drag struct {
	Day    time.Time
	Start  time.Time
	End    time.Time
	Top    float64
	Height float64
	Valid  bool
}

// Candidate computes the snapped drop target for dragging an existing
// event to pointerPx (pixels from the top of the window) on the given day.
// The candidate keeps the dragged event's duration, floored at 15 minutes.
func Candidate(day time.Time, pointerPx float64, dragged *event.Event, w Window) Drag {
	minutes := MinDragMinutes
	if dragged != nil {
		if m := int(math.Round(dragged.Duration().Minutes())); m > minutes {
			minutes = m
		}
	}
	return candidate(day, pointerPx, minutes, w)
}

// CreateCandidate computes the snapped range for click-to-create: same
// snap rule, fixed 30-minute duration.
func CreateCandidate(day time.Time, pointerPx float64, w Window) Drag {
	return candidate(day, pointerPx, DefaultCreateMinutes, w)
}

func candidate(day time.Time, pointerPx float64, durationMin int, w Window) Drag {
	windowMin := float64(w.Minutes())

	offset := 0.0
	if w.PixelsPerMinute > 0 {
		offset = pointerPx / w.PixelsPerMinute
	}
	if offset < 0 {
		offset = 0
	}
	if offset > windowMin {
		offset = windowMin
	}

	startOfDay := float64(w.StartHour * 60)
	snapped := snapMinute(offset + startOfDay)

	endOfDay := float64(w.EndHour * 60)
	valid := snapped >= startOfDay && snapped+float64(durationMin) <= endOfDay

	// Preview rectangle, clipped to the window like a static block.
	clippedEnd := snapped + float64(durationMin)
	if clippedEnd > endOfDay {
		clippedEnd = endOfDay
	}
	top := (snapped - startOfDay) * w.PixelsPerMinute
	height := (clippedEnd - snapped) * w.PixelsPerMinute
	if height < MinBlockHeightPx {
		height = MinBlockHeightPx
	}
	if max := w.HeightPx(); top+height > max {
		height = max - top
	}

	dayStart := DayStart(day)
	start := dayStart.Add(time.Duration(snapped) * time.Minute)
	return Drag{
		Day:    dayStart,
		Start:  start,
		End:    start.Add(time.Duration(durationMin) * time.Minute),
		Top:    top,
		Height: height,
		Valid:  valid,
	}
}

// snapMinute rounds to the nearest 15-minute boundary, half up: an offset
// of 7 snaps down to 0, an offset of 8 (or 7.5) snaps up to 15.
func snapMinute(m float64) float64 {
	return math.Floor((m+float64(SnapMinutes)/2)/SnapMinutes) * SnapMinutes
}
