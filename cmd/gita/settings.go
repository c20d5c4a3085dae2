package cmd

import (
	"fmt"

	"github.com/kerbaras/gita/pkg/data"
	"github.com/spf13/cobra"
)

func (c *cli) newSettingsCmd() *cobra.Command {
	var (
		theme  string
		notify bool
	)

	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change the theme and daily reminder",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings := c.controller.Settings
			if cmd.Flags().Changed("theme") {
				if err := settings.SetTheme(data.ThemeMode(theme)); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("notify") {
				settings.SetDailyNotification(notify)
			}

			snap := settings.Snapshot()
			reminder := "off"
			if snap.DailyNotification {
				reminder = "on (8:00 AM)"
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "🎨 Theme:          %s\n", snap.Theme)
			fmt.Fprintf(out, "🔔 Daily reminder: %s\n", reminder)
			fmt.Fprintf(out, "💛 Saved verses:   %d\n", c.controller.Favorites.Count())
			fmt.Fprintf(out, "📿 Total verses:   %d\n", c.controller.Verses.Len())
			return nil
		},
	}
	cmd.Flags().StringVar(&theme, "theme", "", "theme: light, dark or temple")
	cmd.Flags().BoolVar(&notify, "notify", true, "daily verse reminder")
	return cmd
}
