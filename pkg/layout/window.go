// Package layout computes the day-view geometry for events: overlap
// clusters, side-by-side columns, pixel rectangles clipped to a visible
// hour window, and snapped drag candidates. Everything here is a pure
// function of its inputs; nothing is cached between calls.
package layout

import "time"

// Window is the visible slice of a day. StartHour is in [0,24), EndHour in
// (StartHour, 24]. PixelsPerMinute is whatever unit the renderer works in;
// the terminal UI uses rows.
type Window struct {
	StartHour       int
	EndHour         int
	PixelsPerMinute float64
}

// Default is the window used when no configuration overrides it.
func Default() Window {
	return Window{StartHour: 7, EndHour: 22, PixelsPerMinute: 1}
}

// Minutes returns the visible span in minutes.
func (w Window) Minutes() int {
	return (w.EndHour - w.StartHour) * 60
}

// HeightPx is the fixed height of the rendered window for one pass.
func (w Window) HeightPx() float64 {
	return float64(w.Minutes()) * w.PixelsPerMinute
}

// MinuteOfDay converts an instant to minutes since local midnight.
func (w Window) MinuteOfDay(t time.Time) int {
	lt := t.Local()
	return lt.Hour()*60 + lt.Minute()
}

// ClampMinutes clamps a minutes-since-midnight value into the window.
func (w Window) ClampMinutes(m int) int {
	if lo := w.StartHour * 60; m < lo {
		return lo
	}
	if hi := w.EndHour * 60; m > hi {
		return hi
	}
	return m
}

// PixelsFromWindowStart converts minutes measured from the top of the
// window into pixels.
func (w Window) PixelsFromWindowStart(minutes int) float64 {
	return float64(minutes) * w.PixelsPerMinute
}
