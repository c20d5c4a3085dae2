package cmd

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/kerbaras/gita/pkg/app/components"
	"github.com/kerbaras/gita/pkg/data"
	"github.com/kerbaras/gita/pkg/services"
	"github.com/spf13/cobra"
)

const dateLayout = "2006-01-02"

func (c *cli) newTodayCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "today",
		Short: "Show the verse of the day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			day := time.Now()
			if date != "" {
				d, err := time.ParseInLocation(dateLayout, date, time.Local)
				if err != nil {
					return fmt.Errorf("invalid --date %q, expected YYYY-MM-DD", date)
				}
				day = d
			}
			c.printVerse(cmd.OutOrStdout(), "✨ Verse of the Day · "+day.Format("Monday, January 2"), c.controller.Verses.Daily(day))
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "show the verse for another day (YYYY-MM-DD)")
	return cmd
}

func (c *cli) newRandomCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "random",
		Short: "Show a random verse",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c.printVerse(cmd.OutOrStdout(), "🎲 A Verse for You", c.controller.Verses.Random())
			return nil
		},
	}
}

func (c *cli) newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [verse-id]",
		Short: "Show a verse by id, e.g. 2-47",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := c.lookup(args[0])
			if err != nil {
				return err
			}
			c.printVerse(cmd.OutOrStdout(), "", v)
			return nil
		},
	}
}

// lookup accepts both "2-47" and "2:47".
func (c *cli) lookup(id string) (data.Verse, error) {
	id = strings.ReplaceAll(strings.TrimSpace(id), ":", "-")
	v, err := c.controller.Verses.GetByID(id)
	if errors.Is(err, services.ErrNotFound) {
		return data.Verse{}, fmt.Errorf("verse %s not found", id)
	}
	return v, err
}

func (c *cli) newTagsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tags",
		Short: "List topics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			tags := c.controller.Verses.AllTags()
			fmt.Fprintf(out, "📚 Topics (%d)\n\n", len(tags))
			for _, tag := range tags {
				fmt.Fprintf(out, "%s (%d)\n", components.TagLabel(tag), len(c.controller.Verses.ByTag(tag)))
			}
			return nil
		},
	}
}

func (c *cli) newTagCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tag [topic]",
		Short: "List verses for a topic",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tag := strings.Join(args, " ")
			verses := c.controller.Verses.ByTag(tag)
			out := cmd.OutOrStdout()
			if len(verses) == 0 {
				fmt.Fprintf(out, "No verses for '%s'. Use 'gita tags' to list topics.\n", tag)
				return nil
			}
			fmt.Fprintf(out, "%s · %d verse(s)\n", components.TagLabel(c.canonicalTag(tag)), len(verses))
			fmt.Fprintln(out, c.verseTable(verses))
			return nil
		},
	}
}

func (c *cli) newSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search [query]",
		Short: "Search verse text, reflections and topics",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			verses := c.controller.Verses.Search(query)
			out := cmd.OutOrStdout()
			if len(verses) == 0 {
				fmt.Fprintln(out, "No results found.")
				return nil
			}
			fmt.Fprintln(out, c.verseTable(verses))
			return nil
		},
	}
}

func (c *cli) newAskCmd() *cobra.Command {
	var noWait bool

	cmd := &cobra.Command{
		Use:   "ask [question]",
		Short: "Ask a question and receive a verse",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			question := strings.TrimSpace(strings.Join(args, " "))
			if question == "" {
				return errors.New("question must not be blank")
			}

			delay := c.controller.ThinkDelay
			if noWait {
				delay = 0
			}

			out := cmd.OutOrStdout()
			if delay > 0 {
				fmt.Fprintln(out, "🙏 Seeking wisdom...")
			}
			v, err := c.controller.Matcher.Ask(cmd.Context(), question, delay)
			if err != nil {
				return err
			}
			c.printVerse(out, "🙏 Krishna's Guidance", v)
			return nil
		},
	}
	cmd.Flags().BoolVar(&noWait, "no-wait", false, "answer immediately")
	return cmd
}

// canonicalTag returns the stored spelling of tag.
func (c *cli) canonicalTag(tag string) string {
	for _, t := range c.controller.Verses.AllTags() {
		if strings.EqualFold(t, tag) {
			return t
		}
	}
	return tag
}
