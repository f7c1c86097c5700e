package commands

import (
	"context"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jayvenma/SocialBatteryForecaster/pkg/app"
	"github.com/jayvenma/SocialBatteryForecaster/pkg/commands/options"
	"github.com/jayvenma/SocialBatteryForecaster/pkg/runner/sync"
	"github.com/jayvenma/SocialBatteryForecaster/pkg/store"
	"github.com/jayvenma/SocialBatteryForecaster/pkg/timeutil"
)

func addSync(topLevel *cobra.Command) {
	ho := &options.HorizonOptions{}
	gopts := &options.GoogleOptions{}

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Pull read-only events from Google Calendar.",
		Example: `
battery sync --auth
battery sync --horizon 1w
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

			// store.Load primes viper, so BATTERY_CLIENT_ID and friends
			// back-fill any flags left empty.
			if gopts.ClientID == "" {
				gopts.ClientID = viper.GetString("client_id")
			}
			if gopts.ClientSecret == "" {
				gopts.ClientSecret = viper.GetString("client_secret")
			}
			if gopts.TokenPath == "" {
				gopts.TokenPath, err = homedir.Expand("~/.battery.token.json")
				if err != nil {
					return err
				}
			}

			i := sync.Sync{
				CalendarID:   gopts.CalendarID,
				Horizon:      d,
				ClientID:     gopts.ClientID,
				ClientSecret: gopts.ClientSecret,
				TokenPath:    gopts.TokenPath,
				Auth:         gopts.Auth,
				Service:      &app.Service{Persistence: p},
			}
			return i.Do(context.Background())
		},
	}
	options.AddHorizonArgs(cmd, ho)
	options.AddGoogleArgs(cmd, gopts)

	topLevel.AddCommand(cmd)
}
