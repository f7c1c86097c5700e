package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "battery",
		Short: base.Wrap80("Social battery forecasting for your calendar."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addKey(topLevel)
	addGet(topLevel)
	addAdd(topLevel)
	addMove(topLevel)
	addDelete(topLevel)
	addSync(topLevel)
	addProfile(topLevel)
	addVersion(topLevel)
}
