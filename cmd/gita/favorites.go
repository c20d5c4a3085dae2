package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *cli) newFavCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "fav",
		Aliases: []string{"favorites"},
		Short:   "Manage saved verses",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List saved verses, most recent first",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				out := cmd.OutOrStdout()
				favorites := c.controller.Favorites.Favorites()
				if len(favorites) == 0 {
					fmt.Fprintln(out, "💛 No saved verses yet. Use 'gita fav add <id>' to save one.")
					return nil
				}
				fmt.Fprintf(out, "\n💛 %d saved verse(s)\n\n", len(favorites))
				fmt.Fprintln(out, favoritesTable(favorites))
				return nil
			},
		},
		&cobra.Command{
			Use:   "add [verse-id]",
			Short: "Save a verse",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				v, err := c.lookup(args[0])
				if err != nil {
					return err
				}
				c.controller.Favorites.Add(v)
				fmt.Fprintf(cmd.OutOrStdout(), "💛 Saved %s\n", v.Reference())
				return nil
			},
		},
		&cobra.Command{
			Use:     "remove [verse-id]",
			Aliases: []string{"rm"},
			Short:   "Remove a saved verse",
			Args:    cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				v, err := c.lookup(args[0])
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if !c.controller.Favorites.IsSaved(v.ID) {
					fmt.Fprintf(out, "%s is not in your saved verses\n", v.Reference())
					return nil
				}
				c.controller.Favorites.Remove(v.ID)
				fmt.Fprintf(out, "🗑️ Removed %s\n", v.Reference())
				return nil
			},
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Remove every saved verse",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				n := c.controller.Favorites.Clear()
				fmt.Fprintf(cmd.OutOrStdout(), "🗑️ Removed %d saved verse(s)\n", n)
				return nil
			},
		},
	)
	return cmd
}
