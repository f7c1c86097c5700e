// Package app provides high-level operations over stored events so the
// TUI and CLI share logic: horizon reads with freshly computed scores,
// creation, duration-preserving reschedules, and deletion with the
// read-only guard for synced events.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jayvenma/SocialBatteryForecaster/pkg/event"
	"github.com/jayvenma/SocialBatteryForecaster/pkg/score"
	"github.com/jayvenma/SocialBatteryForecaster/pkg/store"
)

// ErrReadOnly rejects mutations of events synced from an external
// calendar; they can only be re-synced, never edited or dragged.
var ErrReadOnly = errors.New("app: event is read-only")

var ErrNoPersistence = errors.New("app: no persistence configured")

// Service wraps persistence and scoring.
type Service struct {
	Persistence store.Persistence
}

// Profile returns the saved personality profile.
func (s *Service) Profile() (store.Profile, error) {
	if s.Persistence == nil {
		return store.Profile{}, ErrNoPersistence
	}
	return s.Persistence.LoadProfile()
}

// SetProfileFromQuiz scores onboarding answers and persists the result.
func (s *Service) SetProfileFromQuiz(answers []int) (store.Profile, error) {
	if s.Persistence == nil {
		return store.Profile{}, ErrNoPersistence
	}
	n, err := score.Quiz(answers)
	if err != nil {
		return store.Profile{}, err
	}
	prof := store.Profile{Score: n, Label: score.PersonalityLabel(n)}
	if err := s.Persistence.SaveProfile(prof); err != nil {
		return store.Profile{}, err
	}
	return prof, nil
}

// Upcoming returns events intersecting [from, from+hours), sorted by
// start, with Score and Label recomputed against the current profile.
func (s *Service) Upcoming(ctx context.Context, from time.Time, hours int) ([]*event.Event, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	prof, err := s.Persistence.LoadProfile()
	if err != nil {
		return nil, err
	}
	all := s.Persistence.Upcoming(ctx, from, time.Duration(hours)*time.Hour)
	for _, e := range all {
		r := score.Event(e, prof.Score)
		e.Score = r.Score
		e.Label = r.Label
	}
	return all, nil
}

// Get returns a single event by id.
func (s *Service) Get(ctx context.Context, id string) (*event.Event, error) {
	return s.get(ctx, id)
}

// Create stores a new local event and returns it scored.
func (s *Service) Create(ctx context.Context, title string, start, end time.Time, typ event.EventType) (*event.Event, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	e := event.New(title, start, end, typ)
	if !e.Valid() {
		return nil, errors.New("app: event end must be after start")
	}
	if err := s.storeScored(e); err != nil {
		return nil, err
	}
	return e, nil
}

// Reschedule moves the event with the given id to a new start, keeping
// its duration. This is the commit path for a drag/drop.
func (s *Service) Reschedule(ctx context.Context, id string, newStart time.Time) (*event.Event, error) {
	e, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if e.ReadOnly() {
		return nil, ErrReadOnly
	}
	d := e.Duration()
	moved := *e
	moved.Start = event.Timestamp{Time: newStart}
	moved.End = event.Timestamp{Time: newStart.Add(d)}
	// Write the new record first: a failed store must leave the original
	// untouched, never erased.
	if err := s.storeScored(&moved); err != nil {
		return nil, err
	}
	// The storage key embeds the start date; a same-day move overwrote the
	// record in place, a cross-day move leaves the old key to clean up.
	if !e.Start.SameDay(moved.Start.Time) {
		if err := s.Persistence.Delete(e); err != nil {
			return nil, fmt.Errorf("app: remove old schedule record: %w", err)
		}
	}
	return &moved, nil
}

// Retitle renames a local event.
func (s *Service) Retitle(ctx context.Context, id string, title string) (*event.Event, error) {
	e, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if e.ReadOnly() {
		return nil, ErrReadOnly
	}
	e.Title = title
	if err := s.storeScored(e); err != nil {
		return nil, err
	}
	return e, nil
}

// Delete removes a local event.
func (s *Service) Delete(ctx context.Context, id string) error {
	e, err := s.get(ctx, id)
	if err != nil {
		return err
	}
	if e.ReadOnly() {
		return ErrReadOnly
	}
	return s.Persistence.Delete(e)
}

// Import stores externally synced events, replacing earlier copies with
// the same id. Synced events bypass the read-only guard on purpose.
func (s *Service) Import(ctx context.Context, events []*event.Event) (int, error) {
	if s.Persistence == nil {
		return 0, ErrNoPersistence
	}
	stored := 0
	for _, e := range events {
		if !e.Valid() {
			continue
		}
		old, getErr := s.Persistence.Get(ctx, e.ID)
		if err := s.storeScored(e); err != nil {
			return stored, err
		}
		// Start may have moved upstream; once the update is safely written,
		// drop the stale copy left under the old date key.
		if getErr == nil && !old.Start.SameDay(e.Start.Time) {
			if err := s.Persistence.Delete(old); err != nil {
				return stored, err
			}
		}
		stored++
	}
	return stored, nil
}

// Watch subscribes to persistence change notifications.
func (s *Service) Watch(ctx context.Context) (<-chan store.Change, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	return s.Persistence.Watch(ctx)
}

func (s *Service) get(ctx context.Context, id string) (*event.Event, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	return s.Persistence.Get(ctx, id)
}

func (s *Service) storeScored(e *event.Event) error {
	prof, err := s.Persistence.LoadProfile()
	if err != nil {
		return err
	}
	r := score.Event(e, prof.Score)
	e.Score = r.Score
	e.Label = r.Label
	return s.Persistence.Store(e)
}
