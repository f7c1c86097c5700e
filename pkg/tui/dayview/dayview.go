// Package dayview renders one day column of the calendar: positioned
// event blocks side by side within their overlap clusters, plus an
// optional drag preview overlay. It is a pure renderer; all geometry
// comes from pkg/layout.
package dayview

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/truncate"

	"github.com/jayvenma/SocialBatteryForecaster/pkg/event"
	"github.com/jayvenma/SocialBatteryForecaster/pkg/layout"
	"github.com/jayvenma/SocialBatteryForecaster/pkg/tui/theme"
)

// Day bundles the inputs for one rendered day column.
type Day struct {
	Date   time.Time
	Blocks []layout.Block
	Events map[string]*event.Event
}

// Options controls sizing, selection, and the drag overlay.
type Options struct {
	Width    int
	Height   int // rows available for the time grid
	Window   layout.Window
	Selected string       // selected event id, "" for none
	Drag     *layout.Drag // non-nil while a drag hovers this day
	Theme    theme.Theme
}

// RowScale converts engine pixels to terminal rows.
func RowScale(height int, w layout.Window) float64 {
	if hp := w.HeightPx(); hp > 0 {
		return float64(height) / hp
	}
	return 0
}

// PixelsForRow inverts RowScale for pointer hit testing; the half-row
// offset aims at the center of the clicked cell.
func PixelsForRow(row, height int, w layout.Window) float64 {
	scale := RowScale(height, w)
	if scale == 0 {
		return 0
	}
	return (float64(row) + 0.5) / scale
}

// MinuteAtRow returns the window-relative minute a row begins at.
func MinuteAtRow(row, height int, w layout.Window) int {
	if height <= 0 {
		return 0
	}
	return row * w.Minutes() / height
}

type span struct {
	x0, x1 int
	r0, r1 int
	id     string
}

// Render produces Height lines of Width cells for the day.
func Render(d Day, opts Options) string {
	if opts.Width <= 0 || opts.Height <= 0 {
		return ""
	}

	scale := RowScale(opts.Height, opts.Window)
	spans := make([]span, 0, len(d.Blocks))
	for _, b := range d.Blocks {
		s := blockSpan(b, scale, opts)
		spans = append(spans, s)
	}

	lines := make([]string, 0, opts.Height)
	for row := 0; row < opts.Height; row++ {
		lines = append(lines, renderRow(row, d, spans, opts))
	}
	return strings.Join(lines, "\n")
}

// HitTest returns the event id occupying the cell at (row, x), if any.
func HitTest(d Day, row, x int, opts Options) (string, bool) {
	scale := RowScale(opts.Height, opts.Window)
	for _, b := range d.Blocks {
		s := blockSpan(b, scale, opts)
		if row >= s.r0 && row < s.r1 && x >= s.x0 && x < s.x1 {
			return s.id, true
		}
	}
	return "", false
}

func blockSpan(b layout.Block, scale float64, opts Options) span {
	laneW := opts.Width / b.ColumnCount
	if laneW < 1 {
		laneW = 1
	}
	x0 := b.Column * laneW
	x1 := x0 + laneW
	if b.Column == b.ColumnCount-1 {
		x1 = opts.Width
	}
	if x1 > opts.Width {
		x1 = opts.Width
	}

	r0 := int(b.Top * scale)
	r1 := int((b.Top + b.Height) * scale)
	if r1 <= r0 {
		r1 = r0 + 1
	}
	if r1 > opts.Height {
		r1 = opts.Height
	}
	return span{x0: x0, x1: x1, r0: r0, r1: r1, id: b.EventID}
}

func renderRow(row int, d Day, spans []span, opts Options) string {
	var sb strings.Builder
	x := 0
	for x < opts.Width {
		s, ok := spanAt(spans, row, x)
		if !ok {
			gap := nextSpanStart(spans, row, x, opts.Width) - x
			sb.WriteString(emptyCells(row, gap, opts))
			x += gap
			continue
		}
		sb.WriteString(blockCells(row, s, d, opts))
		x = s.x1
	}

	line := sb.String()
	if opts.Drag != nil {
		line = overlayDrag(line, row, opts)
	}
	return line
}

func spanAt(spans []span, row, x int) (span, bool) {
	for _, s := range spans {
		if row >= s.r0 && row < s.r1 && x >= s.x0 && x < s.x1 {
			return s, true
		}
	}
	return span{}, false
}

func nextSpanStart(spans []span, row, x, width int) int {
	next := width
	for _, s := range spans {
		if row >= s.r0 && row < s.r1 && s.x0 > x && s.x0 < next {
			next = s.x0
		}
	}
	return next
}

func emptyCells(row, width int, opts Options) string {
	if width <= 0 {
		return ""
	}
	// A dotted line on the hour keeps the grid legible.
	if MinuteAtRow(row, opts.Height, opts.Window)%60 == 0 {
		return opts.Theme.GridLine.Render(strings.Repeat("·", width))
	}
	return opts.Theme.Empty.Render(strings.Repeat(" ", width))
}

func blockCells(row int, s span, d Day, opts Options) string {
	width := s.x1 - s.x0
	e := d.Events[s.id]

	text := strings.Repeat(" ", width)
	if row == s.r0 && e != nil {
		label := e.Title
		if e.ReadOnly() {
			label = "🔒" + label
		}
		label = truncate.StringWithTail(label, uint(width), "…")
		text = label + strings.Repeat(" ", width-lipgloss.Width(label))
	}

	style := opts.Theme.BlockText
	if e != nil {
		style = style.Background(lipgloss.Color(layout.ScoreColor(e.Score).Hex()))
	}
	if s.id == opts.Selected {
		style = style.Inherit(opts.Theme.Selected)
	}
	return style.Render(text)
}

// overlayDrag paints the candidate rectangle over the whole column width
// for its rows. Invalid candidates still render, faint, as feedback.
func overlayDrag(line string, row int, opts Options) string {
	scale := RowScale(opts.Height, opts.Window)
	r0 := int(opts.Drag.Top * scale)
	r1 := int((opts.Drag.Top + opts.Drag.Height) * scale)
	if r1 <= r0 {
		r1 = r0 + 1
	}
	if row < r0 || row >= r1 {
		return line
	}

	style := opts.Theme.DragValid
	if !opts.Drag.Valid {
		style = opts.Theme.DragInvalid
	}

	text := strings.Repeat(" ", opts.Width)
	if row == r0 {
		label := opts.Drag.Start.Local().Format("15:04") + "–" + opts.Drag.End.Local().Format("15:04")
		if !opts.Drag.Valid {
			label += " ✗"
		}
		label = truncate.StringWithTail(label, uint(opts.Width), "…")
		text = label + strings.Repeat(" ", opts.Width-lipgloss.Width(label))
	}
	return style.Render(text)
}
