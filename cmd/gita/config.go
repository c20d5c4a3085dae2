package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *cli) newConfigCmd() *cobra.Command {
	var save bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the resolved configuration",
		Long:  "Show the configuration after config.yaml, .env and GITA_* variables are applied. With --save it is written to config.yaml in the data directory.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := c.cfg
			out := cmd.OutOrStdout()

			if save {
				if err := cfg.Save(); err != nil {
					return fmt.Errorf("failed to save config: %w", err)
				}
				c.logger.Info("Config saved")
				fmt.Fprintf(out, "💾 Saved %s\n\n", cfg.Path())
			}

			catalog := cfg.CatalogPath
			if catalog == "" {
				catalog = "(built in)"
			}
			fmt.Fprintf(out, "Home:        %s\n", cfg.Home)
			fmt.Fprintf(out, "Config:      %s\n", cfg.Path())
			fmt.Fprintf(out, "Database:    %s\n", cfg.DatabasePath)
			fmt.Fprintf(out, "Catalog:     %s\n", catalog)
			fmt.Fprintf(out, "Log file:    %s (%s)\n", cfg.LogPath, cfg.LogLevel)
			fmt.Fprintf(out, "Think delay: %s\n", cfg.ThinkDelay)
			fmt.Fprintf(out, "Ephemeral:   %t\n", cfg.Ephemeral)
			return nil
		},
	}
	cmd.Flags().BoolVar(&save, "save", false, "write the resolved configuration to config.yaml")
	return cmd
}
