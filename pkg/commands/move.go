package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/jayvenma/SocialBatteryForecaster/pkg/app"
	"github.com/jayvenma/SocialBatteryForecaster/pkg/commands/options"
	"github.com/jayvenma/SocialBatteryForecaster/pkg/layout"
	"github.com/jayvenma/SocialBatteryForecaster/pkg/runner/move"
	"github.com/jayvenma/SocialBatteryForecaster/pkg/store"
)

func addMove(topLevel *cobra.Command) {
	wo := &options.WindowOptions{}
	var to string

	cmd := &cobra.Command{
		Use:   "move <id>",
		Short: "Reschedule a local event, snapped to the 15-minute grid.",
		Example: `
battery move 2f1c... --to 14:00
battery move 2f1c... --to 2026-08-25T09:30:00Z
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			when, err := parseWhen(to)
			if err != nil {
				return err
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			w := layout.Default()
			w.StartHour = wo.FromHour
			w.EndHour = wo.ToHour
			if w.Minutes() <= 0 {
				return errBadWindow
			}
			i := move.Move{
				ID:      args[0],
				To:      when,
				Window:  w,
				Service: &app.Service{Persistence: p},
			}
			return i.Do(context.Background())
		},
	}
	cmd.Flags().StringVar(&to, "to", "", "New start time: RFC3339 or 15:04 (today).")
	_ = cmd.MarkFlagRequired("to")
	options.AddWindowArgs(cmd, wo)

	topLevel.AddCommand(cmd)
}
