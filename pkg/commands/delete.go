package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/jayvenma/SocialBatteryForecaster/pkg/app"
	"github.com/jayvenma/SocialBatteryForecaster/pkg/runner/remove"
	"github.com/jayvenma/SocialBatteryForecaster/pkg/store"
)

func addDelete(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a local event.",
		Example: `
battery delete 2f1c...
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			i := remove.Remove{
				ID:      args[0],
				Service: &app.Service{Persistence: p},
			}
			return i.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
