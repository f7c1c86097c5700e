package teaui

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"

	"github.com/jayvenma/SocialBatteryForecaster/pkg/app"
	"github.com/jayvenma/SocialBatteryForecaster/pkg/event"
	"github.com/jayvenma/SocialBatteryForecaster/pkg/layout"
	"github.com/jayvenma/SocialBatteryForecaster/pkg/store"
)

type memoryPersistence struct {
	mu      sync.Mutex
	events  map[string]*event.Event
	profile store.Profile
}

func newMemory() *memoryPersistence {
	return &memoryPersistence{
		events:  map[string]*event.Event{},
		profile: store.DefaultProfile(),
	}
}

func (m *memoryPersistence) List(ctx context.Context) []*event.Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	all := make([]*event.Event, 0, len(m.events))
	for _, e := range m.events {
		all = append(all, e)
	}
	return all
}

func (m *memoryPersistence) Upcoming(ctx context.Context, from time.Time, horizon time.Duration) []*event.Event {
	until := from.Add(horizon)
	all := make([]*event.Event, 0)
	for _, e := range m.List(ctx) {
		if e.End.After(from) && e.Start.Before(until) {
			all = append(all, e)
		}
	}
	return all
}

func (m *memoryPersistence) Get(ctx context.Context, id string) (*event.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if e, ok := m.events[id]; ok {
		return e, nil
	}
	return nil, store.ErrNotFound
}

func (m *memoryPersistence) Store(e *event.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events[e.ID] = e
	return nil
}

func (m *memoryPersistence) Delete(e *event.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.events, e.ID)
	return nil
}

func (m *memoryPersistence) LoadProfile() (store.Profile, error) { return m.profile, nil }
func (m *memoryPersistence) SaveProfile(p store.Profile) error   { m.profile = p; return nil }
func (m *memoryPersistence) Watch(ctx context.Context) (<-chan store.Change, error) {
	return make(chan store.Change), nil
}

// Test geometry: 66x34 terminal with the default 07:00-22:00 window gives
// 20-cell day columns and a 30-row grid, so one row covers 30 minutes.
const (
	testWidth  = 66
	testHeight = 34
)

func testEvent(id, title string, startHour, endHour int, source event.Source) *event.Event {
	day := layout.DayStart(time.Now())
	return &event.Event{
		ID:        id,
		Title:     title,
		Start:     event.Timestamp{Time: day.Add(time.Duration(startHour) * time.Hour)},
		End:       event.Timestamp{Time: day.Add(time.Duration(endHour) * time.Hour)},
		Type:      event.Meeting,
		Source:    source,
		Modifiers: event.DefaultModifiers(),
	}
}

func testModel(t *testing.T, events ...*event.Event) (Model, *memoryPersistence) {
	t.Helper()
	mem := newMemory()
	for _, e := range events {
		if err := mem.Store(e); err != nil {
			t.Fatal(err)
		}
	}
	m := New(&app.Service{Persistence: mem}, layout.Default())

	var tm tea.Model = m
	tm, _ = tm.Update(tea.WindowSizeMsg{Width: testWidth, Height: testHeight})
	tm, _ = tm.Update(eventsLoadedMsg{events: events})
	return tm.(Model), mem
}

func key(s string) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: rune(s[0]), Text: s}
}

func TestViewShowsEventsAndHeaders(t *testing.T) {
	m, _ := testModel(t, testEvent("a", "Standup", 9, 10, event.SourceLocal))

	view := m.View()
	if !strings.Contains(view, "Standup") {
		t.Fatal("view does not show the event title")
	}
	if !strings.Contains(view, time.Now().Format("Mon Jan 2")) {
		t.Fatal("view does not show today's header")
	}
	if !strings.Contains(view, "07:00") || !strings.Contains(view, "21:00") {
		t.Fatal("gutter does not label window hours")
	}
}

func TestDayFocusKeys(t *testing.T) {
	m, _ := testModel(t)

	var tm tea.Model = m
	tm, _ = tm.Update(key("l"))
	if got := tm.(Model).focusDay; got != 1 {
		t.Fatalf("focusDay after l = %d, want 1", got)
	}
	tm, _ = tm.Update(key("h"))
	if got := tm.(Model).focusDay; got != 0 {
		t.Fatalf("focusDay after h = %d, want 0", got)
	}
	tm, _ = tm.Update(key("h"))
	if got := tm.(Model).focusDay; got != 0 {
		t.Fatalf("focusDay clamps at 0, got %d", got)
	}
}

func TestSelectionCycles(t *testing.T) {
	m, _ := testModel(t,
		testEvent("a", "A", 9, 10, event.SourceLocal),
		testEvent("b", "B", 11, 12, event.SourceLocal),
	)

	var tm tea.Model = m
	tm, _ = tm.Update(key("j"))
	if got := tm.(Model).selected; got != "a" {
		t.Fatalf("first j selects %q, want a", got)
	}
	tm, _ = tm.Update(key("j"))
	if got := tm.(Model).selected; got != "b" {
		t.Fatalf("second j selects %q, want b", got)
	}
	tm, _ = tm.Update(key("j"))
	if got := tm.(Model).selected; got != "a" {
		t.Fatalf("j wraps to %q, want a", got)
	}
}

func TestMouseDragMovesEvent(t *testing.T) {
	m, mem := testModel(t, testEvent("a", "Standup", 9, 10, event.SourceLocal))

	// 09:00 sits 120 window minutes in; at 30 minutes per row that is
	// row 4, terminal y 5 with the header row. x 9 lands in day 0.
	var tm tea.Model = m
	tm, _ = tm.Update(tea.MouseClickMsg{X: 9, Y: 5, Button: tea.MouseLeft})
	if got := tm.(Model).dragID; got != "a" {
		t.Fatalf("dragID after click = %q, want a", got)
	}

	// Row 8 centers on window minute 255, which snaps to 11:15.
	tm, _ = tm.Update(tea.MouseMotionMsg{X: 9, Y: 9, Button: tea.MouseLeft})
	drag := tm.(Model).drag
	if drag == nil || !drag.Valid {
		t.Fatalf("drag candidate = %+v, want valid", drag)
	}

	tm, _ = tm.Update(tea.MouseReleaseMsg{X: 9, Y: 9, Button: tea.MouseLeft})
	if got := tm.(Model).dragID; got != "" {
		t.Fatalf("dragID after release = %q, want cleared", got)
	}

	moved, err := mem.Get(context.Background(), "a")
	if err != nil {
		t.Fatal(err)
	}
	want := layout.DayStart(time.Now()).Add(11*time.Hour + 15*time.Minute)
	if !moved.Start.Equal(want) {
		t.Fatalf("moved start = %s, want %s", moved.Start.Format("15:04"), want.Format("15:04"))
	}
	if d := moved.Duration(); d != time.Hour {
		t.Fatalf("duration after drag = %s, want 1h", d)
	}
}

func TestReadOnlyEventIsNotADragSource(t *testing.T) {
	m, _ := testModel(t, testEvent("g", "External", 9, 10, event.SourceGoogle))

	var tm tea.Model = m
	tm, _ = tm.Update(tea.MouseClickMsg{X: 9, Y: 5, Button: tea.MouseLeft})

	got := tm.(Model)
	if got.dragID != "" {
		t.Fatalf("read-only event started a drag: %q", got.dragID)
	}
	if got.selected != "g" {
		t.Fatalf("click should still select, got %q", got.selected)
	}
}

func TestClickEmptySlotOpensCreatePrompt(t *testing.T) {
	m, _ := testModel(t)

	// Row 0 centers on window minute 15, snapping to 07:15.
	var tm tea.Model = m
	tm, _ = tm.Update(tea.MouseClickMsg{X: 9, Y: 1, Button: tea.MouseLeft})

	got := tm.(Model)
	if got.mode != modeInsert {
		t.Fatalf("mode after empty click = %d, want insert", got.mode)
	}
	if got.creating == nil {
		t.Fatal("no create candidate pending")
	}
	if hhmm := got.creating.Start.Format("15:04"); hhmm != "07:15" {
		t.Fatalf("create start = %s, want 07:15", hhmm)
	}
	if d := got.creating.End.Sub(got.creating.Start); d != 30*time.Minute {
		t.Fatalf("create duration = %s, want 30m", d)
	}
}

func TestInvalidDropIsNotCommitted(t *testing.T) {
	m, mem := testModel(t, testEvent("a", "Late", 9, 12, event.SourceLocal))

	var tm tea.Model = m
	tm, _ = tm.Update(tea.MouseClickMsg{X: 9, Y: 5, Button: tea.MouseLeft})
	// The bottom row snaps to 21:45; a three-hour event cannot fit.
	tm, _ = tm.Update(tea.MouseMotionMsg{X: 9, Y: 30, Button: tea.MouseLeft})
	drag := tm.(Model).drag
	if drag == nil || drag.Valid {
		t.Fatalf("drag candidate = %+v, want invalid", drag)
	}
	tm, _ = tm.Update(tea.MouseReleaseMsg{X: 9, Y: 30, Button: tea.MouseLeft})

	kept, err := mem.Get(context.Background(), "a")
	if err != nil {
		t.Fatal(err)
	}
	want := layout.DayStart(time.Now()).Add(9 * time.Hour)
	if !kept.Start.Equal(want) {
		t.Fatalf("invalid drop moved the event to %s", kept.Start.Format("15:04"))
	}
}
