package commands

import (
	"github.com/spf13/cobra"

	"github.com/jayvenma/SocialBatteryForecaster/pkg/app"
	"github.com/jayvenma/SocialBatteryForecaster/pkg/commands/options"
	"github.com/jayvenma/SocialBatteryForecaster/pkg/layout"
	"github.com/jayvenma/SocialBatteryForecaster/pkg/store"
	teaui "github.com/jayvenma/SocialBatteryForecaster/pkg/tui/app"
)

func addUI(topLevel *cobra.Command) {
	wo := &options.WindowOptions{}
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the day-view user interface",
		Example: `
battery ui
battery ui --from-hour 8 --to-hour 18
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
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
			return teaui.Run(&app.Service{Persistence: p}, w)
		},
	}
	options.AddWindowArgs(cmd, wo)

	topLevel.AddCommand(cmd)
}
