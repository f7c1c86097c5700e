package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/jayvenma/SocialBatteryForecaster/pkg/app"
	"github.com/jayvenma/SocialBatteryForecaster/pkg/commands/options"
	"github.com/jayvenma/SocialBatteryForecaster/pkg/runner/get"
	"github.com/jayvenma/SocialBatteryForecaster/pkg/store"
	"github.com/jayvenma/SocialBatteryForecaster/pkg/timeutil"
)

func addGet(topLevel *cobra.Command) {
	ho := &options.HorizonOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "get",
		Short: "List upcoming events with their battery impact.",
		Example: `
battery get
battery get --horizon 3d
battery get --show-id
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, _, err := timeutil.ParseHorizon(ho.Horizon)
			if err != nil {
				return err
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			i := get.Get{
				ShowID:  io.ShowID,
				Hours:   timeutil.Hours(d),
				Service: &app.Service{Persistence: p},
			}
			return i.Do(context.Background())
		},
	}
	options.AddHorizonArgs(cmd, ho)
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
