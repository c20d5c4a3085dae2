package cmd

import (
	"fmt"

	"github.com/kerbaras/gita/pkg/integrations"
	"github.com/spf13/cobra"
)

func (c *cli) newExportCmd() *cobra.Command {
	var eink bool

	cmd := &cobra.Command{
		Use:   "export [file.epub or directory]",
		Short: "Export saved verses as an EPUB",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := "."
			if len(args) == 1 {
				output = args[0]
			}

			cover := integrations.DefaultCoverSettings(c.controller.Settings.Theme())
			cover.Grayscale = eink
			builder := integrations.NewEPubBuilderWithCover(cover)
			path, err := builder.CreateEPub(c.controller.Favorites.Favorites(), output)
			if err != nil {
				return fmt.Errorf("export failed: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "📖 EPUB created: %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&eink, "eink", false, "grayscale cover for e-ink readers")
	return cmd
}
