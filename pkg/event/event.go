package event

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Source identifies where an event came from. Google-sourced events are
// display-only: they are never drag sources and mutations are rejected.
type Source string

const (
	SourceLocal  Source = "local"
	SourceGoogle Source = "google"
)

// EventType categorizes how an event spends (or restores) social energy.
type EventType string

const (
	Meeting  EventType = "meeting"
	OneOnOne EventType = "one_on_one"
	Social   EventType = "social"
	Call     EventType = "call"
	Async    EventType = "async"
	Solo     EventType = "solo"
	Custom   EventType = "custom"
)

// TypeForAlias resolves user-facing spellings ("1:1", "oneonone") to a type.
func TypeForAlias(s string) (EventType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "meeting", "meet":
		return Meeting, true
	case "one_on_one", "oneonone", "1:1", "1on1":
		return OneOnOne, true
	case "social":
		return Social, true
	case "call":
		return Call, true
	case "async":
		return Async, true
	case "solo", "focus":
		return Solo, true
	case "custom":
		return Custom, true
	}
	return Custom, false
}

// Role describes the user's part in the event.
type Role string

const (
	RoleLead        Role = "lead"
	RoleParticipant Role = "participant"
	RoleListening   Role = "listening"
)

// Control describes whether attendance is the user's choice.
type Control string

const (
	ControlOptional  Control = "optional"
	ControlMandatory Control = "mandatory"
)

// Environment describes how stimulating the setting is.
type Environment string

const (
	LowStim  Environment = "low_stim"
	MedStim  Environment = "med_stim"
	HighStim Environment = "high_stim"
)

// Modifiers tune the scoring of a single event.
type Modifiers struct {
	Role        Role        `json:"role,omitempty"`
	Control     Control     `json:"control,omitempty"`
	Environment Environment `json:"environment,omitempty"`
	Familiarity float64     `json:"familiarity"` // 0=strangers, 1=trusted
	BackToBack  bool        `json:"back_to_back,omitempty"`
}

// DefaultModifiers matches the assumptions used when nothing is known.
func DefaultModifiers() Modifiers {
	return Modifiers{
		Role:        RoleParticipant,
		Control:     ControlMandatory,
		Environment: MedStim,
		Familiarity: 0.5,
	}
}

// ImpactLabel is the display intensity of an event's impact score.
type ImpactLabel string

const (
	Low     ImpactLabel = "Low"
	Medium  ImpactLabel = "Medium"
	High    ImpactLabel = "High"
	Extreme ImpactLabel = "Extreme"
)

// Event is a single calendar event. The layout engine treats it as immutable
// input for the duration of one layout pass.
type Event struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Start         Timestamp `json:"start"`
	End           Timestamp `json:"end"`
	Type          EventType `json:"event_type,omitempty"`
	AttendeeCount int       `json:"attendee_count,omitempty"`
	HasVideo      bool      `json:"has_video,omitempty"`
	Source        Source    `json:"source"`
	Modifiers     Modifiers `json:"modifiers"`

	// Score and Label are derived; persisted only as a display cache.
	Score float64     `json:"impact_score,omitempty"`
	Label ImpactLabel `json:"impact_label,omitempty"`
}

// New creates a local event with a fresh id.
func New(title string, start, end time.Time, typ EventType) *Event {
	return &Event{
		ID:        uuid.NewString(),
		Title:     title,
		Start:     Timestamp{Time: start},
		End:       Timestamp{Time: end},
		Type:      typ,
		Source:    SourceLocal,
		Modifiers: DefaultModifiers(),
	}
}

// ReadOnly reports whether the event may be mutated or dragged.
// Eligibility derives from the source variant, not a string compare at
// call sites.
func (e *Event) ReadOnly() bool {
	return e.Source == SourceGoogle
}

// Valid reports whether the event has a usable time range. Invalid events
// are silently ineligible for layout; this is never an error.
func (e *Event) Valid() bool {
	if e == nil || e.Start.IsZero() || e.End.IsZero() {
		return false
	}
	return e.End.After(e.Start.Time)
}

// Duration is the event length; zero for invalid events.
func (e *Event) Duration() time.Duration {
	if !e.Valid() {
		return 0
	}
	return e.End.Sub(e.Start.Time)
}
