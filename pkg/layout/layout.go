package layout

import (
	"sort"
	"time"

	"github.com/jayvenma/SocialBatteryForecaster/pkg/event"
)

// MinBlockHeightPx is a display-only floor on rendered block height. It
// never feeds back into the timestamps used for snapping or validity.
const MinBlockHeightPx = 12

// Block is the positioned rectangle for one event inside one day's window.
// ColumnCount is shared by every block of the same overlap cluster.
type Block struct {
	EventID     string
	Top         float64
	Height      float64
	Column      int
	ColumnCount int
}

// DayStart returns local midnight for the day containing t.
func DayStart(t time.Time) time.Time {
	lt := t.Local()
	return time.Date(lt.Year(), lt.Month(), lt.Day(), 0, 0, 0, 0, lt.Location())
}

// Blocks lays out every event that intersects the given day and is at
// least partially inside the visible window. Events with invalid time
// ranges are silently skipped. The result is deterministic for a given
// input order: ties on start keep input order.
func Blocks(day time.Time, events []*event.Event, w Window) []Block {
	dayStart := DayStart(day)
	dayEnd := dayStart.Add(24 * time.Hour)

	eligible := make([]*event.Event, 0, len(events))
	for _, e := range events {
		if !e.Valid() {
			continue
		}
		if e.Start.Before(dayEnd) && e.End.After(dayStart) {
			eligible = append(eligible, e)
		}
	}
	sort.SliceStable(eligible, func(i, j int) bool {
		return eligible[i].Start.Before(eligible[j].Start.Time)
	})

	blocks := make([]Block, 0, len(eligible))
	for i := 0; i < len(eligible); {
		// Grow one cluster with a single forward sweep: the list is
		// start-sorted, so an event joins while its start is strictly
		// before the running cluster end.
		j := i + 1
		clusterEnd := eligible[i].End.Time
		for j < len(eligible) && eligible[j].Start.Before(clusterEnd) {
			if eligible[j].End.After(clusterEnd) {
				clusterEnd = eligible[j].End.Time
			}
			j++
		}
		blocks = append(blocks, placeCluster(eligible[i:j], dayStart, dayEnd, w)...)
		i = j
	}
	return blocks
}

// placeCluster assigns columns greedily (first column whose last end is at
// or before the event's start, else a new one) and converts each member
// into a clipped pixel rectangle. Members fully outside the window yield
// no block.
func placeCluster(cluster []*event.Event, dayStart, dayEnd time.Time, w Window) []Block {
	type placed struct {
		e      *event.Event
		column int
	}

	columnEnds := make([]time.Time, 0, 2)
	members := make([]placed, 0, len(cluster))
	for _, e := range cluster {
		col := -1
		for i, end := range columnEnds {
			if !end.After(e.Start.Time) {
				col = i
				break
			}
		}
		if col < 0 {
			col = len(columnEnds)
			columnEnds = append(columnEnds, e.End.Time)
		} else {
			columnEnds[col] = e.End.Time
		}
		members = append(members, placed{e: e, column: col})
	}

	count := len(columnEnds)
	blocks := make([]Block, 0, len(members))
	for _, p := range members {
		b, ok := clipBlock(p.e, dayStart, dayEnd, w)
		if !ok {
			continue
		}
		b.Column = p.column
		b.ColumnCount = count
		blocks = append(blocks, b)
	}
	return blocks
}

func clipBlock(e *event.Event, dayStart, dayEnd time.Time, w Window) (Block, bool) {
	start := e.Start.Time
	if start.Before(dayStart) {
		start = dayStart
	}
	end := e.End.Time
	if end.After(dayEnd) {
		end = dayEnd
	}

	// Minutes relative to this day's midnight; an event running to the
	// next midnight clips to 1440 rather than wrapping to 0.
	startMin := int(start.Sub(dayStart) / time.Minute)
	endMin := int(end.Sub(dayStart) / time.Minute)

	startMin = w.ClampMinutes(startMin)
	endMin = w.ClampMinutes(endMin)
	if endMin <= startMin {
		return Block{}, false
	}

	top := w.PixelsFromWindowStart(startMin - w.StartHour*60)
	height := w.PixelsFromWindowStart(endMin - startMin)
	if height < MinBlockHeightPx {
		height = MinBlockHeightPx
	}
	if max := w.HeightPx(); top+height > max {
		height = max - top
	}

	return Block{EventID: e.ID, Top: top, Height: height}, true
}
