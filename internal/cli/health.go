package cli

import (
	"github.com/spf13/cobra"
)

func newHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check engine health",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := engine.Health()
			if err != nil {
				return err
			}

			return newOutput(cmd).Print(result)
		},
	}
}

func newRulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "Show the board size and win length in effect",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := engine.Rules()
			if err != nil {
				return err
			}

			return newOutput(cmd).Print(result)
		},
	}
}
