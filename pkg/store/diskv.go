package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/peterbourgon/diskv/v3"

	"github.com/jayvenma/SocialBatteryForecaster/pkg/event"
)

// ErrNotFound is returned when no event exists for an id.
var ErrNotFound = errors.New("store: event not found")

// Persistence is the storage contract for events. It is the mutation
// collaborator the layout engine stays independent of: mutation failures
// surface here as errors and are never swallowed.
type Persistence interface {
	List(ctx context.Context) []*event.Event
	Upcoming(ctx context.Context, from time.Time, horizon time.Duration) []*event.Event
	Get(ctx context.Context, id string) (*event.Event, error)
	Store(e *event.Event) error
	Delete(e *event.Event) error
	LoadProfile() (Profile, error)
	SaveProfile(p Profile) error
	Watch(ctx context.Context) (<-chan Change, error)
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) read(key string) (*event.Event, error) {
	val, err := p.d.Read(key)
	if err != nil {
		return nil, err
	}
	e := &event.Event{}
	if err := json.Unmarshal(val, e); err != nil {
		return nil, err
	}
	if e.ID == "" {
		e.ID = keyToPathTransform(key).FileName
	}
	return e, nil
}

func (p *persistence) List(ctx context.Context) []*event.Event {
	all := make([]*event.Event, 0)
	for key := range p.d.Keys(ctx.Done()) {
		e, err := p.read(key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		all = append(all, e)
	}
	sortEvents(all)
	return all
}

func (p *persistence) Upcoming(ctx context.Context, from time.Time, horizon time.Duration) []*event.Event {
	until := from.Add(horizon)
	all := make([]*event.Event, 0)
	for _, e := range p.List(ctx) {
		if !e.Valid() {
			continue
		}
		if e.End.After(from) && e.Start.Before(until) {
			all = append(all, e)
		}
	}
	return all
}

func (p *persistence) Get(ctx context.Context, id string) (*event.Event, error) {
	for key := range p.d.Keys(ctx.Done()) {
		if keyToPathTransform(key).FileName == id {
			return p.read(key)
		}
	}
	return nil, ErrNotFound
}

func (p *persistence) Store(e *event.Event) error {
	key, err := toKey(e)
	if err != nil {
		return err
	}
	data, err := json.Marshal(e)
	if err != nil {
		return err
	}
	return p.d.Write(key, data)
}

func (p *persistence) Delete(e *event.Event) error {
	key, err := toKey(e)
	if err != nil {
		return err
	}
	return p.d.Erase(key)
}

func sortEvents(events []*event.Event) {
	sort.SliceStable(events, func(i, j int) bool {
		left := events[i]
		right := events[j]
		if left == nil || right == nil {
			return left != nil
		}
		if left.Start.Equal(right.Start.Time) {
			return left.ID < right.ID
		}
		return left.Start.Before(right.Start.Time)
	})
}

const layoutISO = "2006-01-02"

// Keys look like `2026-03-09-<id>`: the start date buckets events into
// year/month/day directories, the id is the file name. Ids may themselves
// contain dashes (uuids), so splitting is anchored on the three date parts.
func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.SplitN(s, "-", 4)
	if len(parts) < 4 {
		return &diskv.PathKey{Path: parts[:len(parts)-1], FileName: parts[len(parts)-1]}
	}
	return &diskv.PathKey{Path: parts[:3], FileName: parts[3]}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return fmt.Sprintf("%s-%s", strings.Join(pathKey.Path, "-"), pathKey.FileName)
}

func toKey(e *event.Event) (string, error) {
	if e == nil || e.ID == "" {
		return "", errors.New("store: event id required")
	}
	if e.Start.IsZero() {
		return "", errors.New("store: event start required")
	}
	return fmt.Sprintf("%s-%s", e.Start.Local().Format(layoutISO), e.ID), nil
}
