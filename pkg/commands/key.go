package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/jayvenma/SocialBatteryForecaster/pkg/runner/key"
)

func addKey(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "key",
		Short: "Show the event-type and impact-label legend.",
		Example: `
battery key
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			i := key.Key{}
			return i.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
