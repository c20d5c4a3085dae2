package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func (c *cli) newResetCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Forget saved verses and settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.New("reset deletes all saved verses and settings; run again with --yes to confirm")
			}
			if err := c.controller.Reset(); err != nil {
				return fmt.Errorf("reset failed: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "🧹 Saved verses and settings cleared")
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "confirm the reset")
	return cmd
}
