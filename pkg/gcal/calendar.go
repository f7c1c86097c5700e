// Package gcal pulls events from Google Calendar into the local store.
// Synced events are marked read-only: the day view never offers them as
// drag sources and the service rejects mutations.
package gcal

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	calendar "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/jayvenma/SocialBatteryForecaster/pkg/event"
)

// Client wraps the Calendar API for read-only event pulls.
type Client struct {
	service *calendar.Service
}

// NewClient builds an authenticated client from a saved token.
func NewClient(ctx context.Context, clientID, clientSecret, tokenPath string) (*Client, error) {
	config := oauthConfig(clientID, clientSecret)
	token, err := tokenFromFile(tokenPath)
	if err != nil {
		return nil, fmt.Errorf("gcal: load token %s: %w (run `battery sync --auth` first)", tokenPath, err)
	}

	service, err := calendar.NewService(ctx, option.WithHTTPClient(config.Client(ctx, token)))
	if err != nil {
		return nil, fmt.Errorf("gcal: create calendar service: %w", err)
	}
	return &Client{service: service}, nil
}

// UpcomingEvents fetches events from now through the given horizon,
// expanded to single instances and ordered by start time.
func (c *Client) UpcomingEvents(calendarID string, horizon time.Duration) ([]*event.Event, error) {
	now := time.Now().UTC()
	events, err := c.service.Events.List(calendarID).
		ShowDeleted(false).
		SingleEvents(true).
		TimeMin(now.Format(time.RFC3339)).
		TimeMax(now.Add(horizon).Format(time.RFC3339)).
		OrderBy("startTime").
		Do()
	if err != nil {
		return nil, fmt.Errorf("gcal: list events: %w", err)
	}
	return toEvents(events.Items), nil
}

// toEvents converts API items to the internal model. All-day items (date
// without a time) are skipped: they have no layout position.
func toEvents(items []*calendar.Event) []*event.Event {
	out := make([]*event.Event, 0, len(items))
	for _, item := range items {
		if item.Start == nil || item.Start.DateTime == "" || item.End == nil || item.End.DateTime == "" {
			continue
		}
		start, err := time.Parse(time.RFC3339, item.Start.DateTime)
		if err != nil {
			continue
		}
		end, err := time.Parse(time.RFC3339, item.End.DateTime)
		if err != nil {
			continue
		}

		attendees := 0
		for _, a := range item.Attendees {
			if a != nil && !a.Self {
				attendees++
			}
		}
		hasConference := item.ConferenceData != nil && len(item.ConferenceData.EntryPoints) > 0

		e := &event.Event{
			ID:            item.Id,
			Title:         item.Summary,
			Start:         event.Timestamp{Time: start},
			End:           event.Timestamp{Time: end},
			Type:          InferType(attendees, item.Summary, hasConference),
			AttendeeCount: attendees,
			HasVideo:      hasConference,
			Source:        event.SourceGoogle,
			Modifiers:     event.DefaultModifiers(),
		}
		out = append(out, e)
	}
	return out
}

var conferenceWords = []string{"zoom", "meet", "video", "call", "teams"}

// InferType guesses an event type from attendee count, title keywords, and
// the presence of a conference link.
func InferType(attendeeCount int, summary string, hasConference bool) event.EventType {
	s := strings.ToLower(summary)
	if hasConference {
		return event.Call
	}
	for _, w := range conferenceWords {
		if strings.Contains(s, w) {
			return event.Call
		}
	}
	if attendeeCount <= 0 {
		return event.Solo
	}
	if attendeeCount == 1 {
		return event.OneOnOne
	}
	return event.Meeting
}

// AuthURL returns the URL a user visits to grant read-only access.
func AuthURL(clientID, clientSecret string) string {
	return oauthConfig(clientID, clientSecret).AuthCodeURL("state-token", oauth2.AccessTypeOffline)
}

// Exchange trades an auth code for a token and saves it.
func Exchange(ctx context.Context, clientID, clientSecret, code, tokenPath string) error {
	token, err := oauthConfig(clientID, clientSecret).Exchange(ctx, code)
	if err != nil {
		return fmt.Errorf("gcal: exchange auth code: %w", err)
	}
	return saveToken(tokenPath, token)
}

func oauthConfig(clientID, clientSecret string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  "urn:ietf:wg:oauth:2.0:oob",
		Scopes:       []string{calendar.CalendarReadonlyScope},
		Endpoint:     google.Endpoint,
	}
}

func tokenFromFile(file string) (*oauth2.Token, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	tok := &oauth2.Token{}
	err = json.NewDecoder(f).Decode(tok)
	return tok, err
}

func saveToken(path string, token *oauth2.Token) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("gcal: create token file: %w", err)
	}
	defer f.Close()
	return json.NewEncoder(f).Encode(token)
}
