package app

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/jayvenma/SocialBatteryForecaster/pkg/event"
	"github.com/jayvenma/SocialBatteryForecaster/pkg/store"
)

type memoryPersistence struct {
	mu      sync.Mutex
	events  map[string]*event.Event
	profile store.Profile
}

// memoryKey mirrors the disk layout: records live under their start date,
// so a cross-day move writes a new key and must clean up the old one.
func memoryKey(e *event.Event) string {
	return e.Start.Local().Format("2006-01-02") + "-" + e.ID
}

func newMemoryPersistence(events ...*event.Event) *memoryPersistence {
	mp := &memoryPersistence{
		events:  make(map[string]*event.Event),
		profile: store.DefaultProfile(),
	}
	for _, e := range events {
		cp := *e
		mp.events[memoryKey(&cp)] = &cp
	}
	return mp
}

func (m *memoryPersistence) List(_ context.Context) []*event.Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*event.Event, 0, len(m.events))
	for _, e := range m.events {
		cp := *e
		out = append(out, &cp)
	}
	return out
}

func (m *memoryPersistence) Upcoming(ctx context.Context, from time.Time, horizon time.Duration) []*event.Event {
	until := from.Add(horizon)
	out := make([]*event.Event, 0)
	for _, e := range m.List(ctx) {
		if e.Valid() && e.End.After(from) && e.Start.Before(until) {
			out = append(out, e)
		}
	}
	return out
}

func (m *memoryPersistence) Get(_ context.Context, id string) (*event.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.events {
		if e.ID == id {
			cp := *e
			return &cp, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *memoryPersistence) Store(e *event.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *e
	m.events[memoryKey(&cp)] = &cp
	return nil
}

func (m *memoryPersistence) Delete(e *event.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := memoryKey(e)
	if _, ok := m.events[key]; !ok {
		return store.ErrNotFound
	}
	delete(m.events, key)
	return nil
}

func (m *memoryPersistence) LoadProfile() (store.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.profile, nil
}

func (m *memoryPersistence) SaveProfile(p store.Profile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profile = p
	return nil
}

func (m *memoryPersistence) Watch(_ context.Context) (<-chan store.Change, error) {
	ch := make(chan store.Change)
	close(ch)
	return ch, nil
}

func at(hour, min int) time.Time {
	return time.Date(2026, time.March, 9, hour, min, 0, 0, time.Local)
}

func TestCreateScoresEvent(t *testing.T) {
	svc := &Service{Persistence: newMemoryPersistence()}

	e, err := svc.Create(context.Background(), "standup", at(9, 0), at(10, 0), event.Meeting)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if e.Score >= 0 {
		t.Fatalf("expected a meeting to drain, got score %v", e.Score)
	}
	if e.Label == "" {
		t.Fatalf("expected a label, got none")
	}
}

func TestCreateRejectsInvertedRange(t *testing.T) {
	svc := &Service{Persistence: newMemoryPersistence()}
	if _, err := svc.Create(context.Background(), "bad", at(10, 0), at(9, 0), event.Meeting); err == nil {
		t.Fatalf("expected error for inverted range")
	}
}

func TestRescheduleKeepsDuration(t *testing.T) {
	e := event.New("focus", at(9, 0), at(9, 45), event.Solo)
	svc := &Service{Persistence: newMemoryPersistence(e)}

	moved, err := svc.Reschedule(context.Background(), e.ID, at(14, 15))
	if err != nil {
		t.Fatalf("reschedule: %v", err)
	}
	if !moved.Start.Equal(at(14, 15)) {
		t.Fatalf("expected start 14:15, got %v", moved.Start)
	}
	if got := moved.Duration(); got != 45*time.Minute {
		t.Fatalf("expected duration preserved, got %v", got)
	}
}

type failingPersistence struct {
	*memoryPersistence
	storeErr error
}

func (f *failingPersistence) Store(e *event.Event) error {
	if f.storeErr != nil {
		return f.storeErr
	}
	return f.memoryPersistence.Store(e)
}

func TestRescheduleKeepsEventWhenStoreFails(t *testing.T) {
	e := event.New("focus", at(9, 0), at(9, 45), event.Solo)
	fp := &failingPersistence{
		memoryPersistence: newMemoryPersistence(e),
		storeErr:          errors.New("disk full"),
	}
	svc := &Service{Persistence: fp}
	ctx := context.Background()

	if _, err := svc.Reschedule(ctx, e.ID, at(14, 0)); err == nil {
		t.Fatalf("expected the store failure to surface")
	}

	kept, err := fp.Get(ctx, e.ID)
	if err != nil {
		t.Fatalf("event lost after failed reschedule: %v", err)
	}
	if !kept.Start.Equal(at(9, 0)) {
		t.Fatalf("expected original start preserved, got %v", kept.Start)
	}
}

func TestRescheduleAcrossDaysDropsOldRecord(t *testing.T) {
	e := event.New("focus", at(9, 0), at(10, 0), event.Solo)
	mp := newMemoryPersistence(e)
	svc := &Service{Persistence: mp}
	ctx := context.Background()

	nextDay := at(9, 0).AddDate(0, 0, 1)
	moved, err := svc.Reschedule(ctx, e.ID, nextDay)
	if err != nil {
		t.Fatalf("reschedule: %v", err)
	}
	if !moved.Start.Equal(nextDay) {
		t.Fatalf("expected start %v, got %v", nextDay, moved.Start)
	}

	all := mp.List(ctx)
	if len(all) != 1 {
		t.Fatalf("expected one record after a cross-day move, got %d", len(all))
	}
	if !all[0].Start.Equal(nextDay) {
		t.Fatalf("surviving record has start %v, want %v", all[0].Start, nextDay)
	}
}

func TestReadOnlyGuard(t *testing.T) {
	e := event.New("synced", at(9, 0), at(10, 0), event.Meeting)
	e.Source = event.SourceGoogle
	svc := &Service{Persistence: newMemoryPersistence(e)}
	ctx := context.Background()

	if _, err := svc.Reschedule(ctx, e.ID, at(11, 0)); !errors.Is(err, ErrReadOnly) {
		t.Fatalf("expected ErrReadOnly on reschedule, got %v", err)
	}
	if _, err := svc.Retitle(ctx, e.ID, "renamed"); !errors.Is(err, ErrReadOnly) {
		t.Fatalf("expected ErrReadOnly on retitle, got %v", err)
	}
	if err := svc.Delete(ctx, e.ID); !errors.Is(err, ErrReadOnly) {
		t.Fatalf("expected ErrReadOnly on delete, got %v", err)
	}
}

func TestUpcomingRecomputesScores(t *testing.T) {
	e := event.New("party", at(18, 0), at(20, 0), event.Social)
	mp := newMemoryPersistence(e)
	svc := &Service{Persistence: mp}
	ctx := context.Background()

	introvert, err := svc.SetProfileFromQuiz(allAnswers(1))
	if err != nil {
		t.Fatalf("quiz: %v", err)
	}
	if introvert.Label != "Introvert" {
		t.Fatalf("expected Introvert, got %s", introvert.Label)
	}
	intro, err := svc.Upcoming(ctx, at(8, 0), 24)
	if err != nil || len(intro) != 1 {
		t.Fatalf("upcoming: %v (%d events)", err, len(intro))
	}

	if _, err := svc.SetProfileFromQuiz(allAnswers(5)); err != nil {
		t.Fatalf("quiz: %v", err)
	}
	extro, err := svc.Upcoming(ctx, at(8, 0), 24)
	if err != nil || len(extro) != 1 {
		t.Fatalf("upcoming: %v (%d events)", err, len(extro))
	}

	if intro[0].Score >= extro[0].Score {
		t.Fatalf("expected introvert profile to drain more: %v vs %v", intro[0].Score, extro[0].Score)
	}
}

func TestImportReplacesMovedEvents(t *testing.T) {
	e := event.New("synced", at(9, 0), at(10, 0), event.Meeting)
	e.Source = event.SourceGoogle
	mp := newMemoryPersistence(e)
	svc := &Service{Persistence: mp}
	ctx := context.Background()

	// Moved upstream to the next day: the stale copy under the old date
	// key must not survive the import.
	nextDay := at(11, 0).AddDate(0, 0, 1)
	update := *e
	update.Start = event.Timestamp{Time: nextDay}
	update.End = event.Timestamp{Time: nextDay.Add(time.Hour)}

	n, err := svc.Import(ctx, []*event.Event{&update})
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 imported event, got %d", n)
	}
	got, err := mp.Get(ctx, e.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !got.Start.Equal(nextDay) {
		t.Fatalf("expected updated start, got %v", got.Start)
	}
	if all := mp.List(ctx); len(all) != 1 {
		t.Fatalf("expected one record after import, got %d", len(all))
	}
}

func TestImportKeepsOldCopyWhenStoreFails(t *testing.T) {
	e := event.New("synced", at(9, 0), at(10, 0), event.Meeting)
	e.Source = event.SourceGoogle
	fp := &failingPersistence{
		memoryPersistence: newMemoryPersistence(e),
		storeErr:          errors.New("disk full"),
	}
	svc := &Service{Persistence: fp}
	ctx := context.Background()

	update := *e
	update.Start = event.Timestamp{Time: at(11, 0)}
	update.End = event.Timestamp{Time: at(12, 0)}

	if _, err := svc.Import(ctx, []*event.Event{&update}); err == nil {
		t.Fatalf("expected the store failure to surface")
	}
	kept, err := fp.Get(ctx, e.ID)
	if err != nil {
		t.Fatalf("event lost after failed import: %v", err)
	}
	if !kept.Start.Equal(at(9, 0)) {
		t.Fatalf("expected original start preserved, got %v", kept.Start)
	}
}

func allAnswers(v int) []int {
	out := make([]int, 15)
	for i := range out {
		out[i] = v
	}
	return out
}
