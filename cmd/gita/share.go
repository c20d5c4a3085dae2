package cmd

import (
	"errors"
	"fmt"

	"github.com/kerbaras/gita/pkg/integrations"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (c *cli) newShareCmd() *cobra.Command {
	var printOnly bool

	cmd := &cobra.Command{
		Use:   "share [verse-id]",
		Short: "Copy a verse to the clipboard, ready to share",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := c.lookup(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			var sharer integrations.Sharer = integrations.NewWriterSharer(out)
			if !printOnly {
				sharer = c.shareTarget()
			}

			if err := sharer.Share(v); err != nil {
				c.logger.Warn("Share failed", zap.String("id", v.ID), zap.Error(err))
				return errors.New(integrations.ShareFailedNotice)
			}
			if !printOnly {
				fmt.Fprintf(out, "📋 Copied %s to the clipboard\n", v.Reference())
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&printOnly, "print", "p", false, "print the message instead of copying it")
	return cmd
}
