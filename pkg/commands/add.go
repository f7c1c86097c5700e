package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jayvenma/SocialBatteryForecaster/pkg/app"
	"github.com/jayvenma/SocialBatteryForecaster/pkg/commands/options"
	"github.com/jayvenma/SocialBatteryForecaster/pkg/event"
	"github.com/jayvenma/SocialBatteryForecaster/pkg/runner/add"
	"github.com/jayvenma/SocialBatteryForecaster/pkg/store"
)

var errBadWindow = errors.New("to-hour must be after from-hour")

func addAdd(topLevel *cobra.Command) {
	eo := &options.EventOptions{}

	cmd := &cobra.Command{
		Use:   "add [title...]",
		Short: "Add a local event.",
		Example: `
battery add focus block --at 14:00 --for 2h --type solo
battery add team sync --at 2026-08-25T10:00:00Z --type meeting
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := parseWhen(eo.At)
			if err != nil {
				return err
			}
			d, err := time.ParseDuration(eo.For)
			if err != nil {
				return fmt.Errorf("invalid duration %q: %w", eo.For, err)
			}
			typ, ok := event.TypeForAlias(eo.Type)
			if !ok {
				return fmt.Errorf("unknown event type %q", eo.Type)
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			i := add.Add{
				Title:    strings.Join(args, " "),
				Start:    start,
				Duration: d,
				Type:     typ,
				Service:  &app.Service{Persistence: p},
			}
			return i.Do(context.Background())
		},
	}
	options.AddEventArgs(cmd, eo)

	topLevel.AddCommand(cmd)
}

// parseWhen accepts RFC3339 or a bare HH:MM meaning today. An empty
// input starts at the next half hour.
func parseWhen(s string) (time.Time, error) {
	if s == "" {
		now := time.Now()
		return now.Truncate(30 * time.Minute).Add(30 * time.Minute), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation("15:04", s, time.Local); err == nil {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), t.Hour(), t.Minute(), 0, 0, time.Local), nil
	}
	return time.Time{}, fmt.Errorf("invalid time %q: use RFC3339 or 15:04", s)
}
