package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/jayvenma/SocialBatteryForecaster/pkg/app"
	"github.com/jayvenma/SocialBatteryForecaster/pkg/runner/profile"
	"github.com/jayvenma/SocialBatteryForecaster/pkg/store"
)

func addProfile(topLevel *cobra.Command) {
	var show bool
	var answers []int

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Take the personality quiz that calibrates scoring.",
		Example: `
battery profile
battery profile --show
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			i := profile.Profile{
				Answers: answers,
				Show:    show,
				Service: &app.Service{Persistence: p},
			}
			return i.Do(context.Background())
		},
	}
	cmd.Flags().BoolVar(&show, "show", false, "Print the saved profile.")
	cmd.Flags().IntSliceVar(&answers, "answers", nil,
		"Preset quiz answers (15 values, 1-5) instead of the interactive prompt.")

	topLevel.AddCommand(cmd)
}
