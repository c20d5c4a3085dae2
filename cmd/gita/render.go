package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"
	"github.com/kerbaras/gita/pkg/app/components"
	"github.com/kerbaras/gita/pkg/app/styles"
	"github.com/kerbaras/gita/pkg/data"
	"github.com/kerbaras/gita/pkg/utils"
)

const cliCardWidth = 80

func (c *cli) theme() *styles.Theme {
	theme := styles.For(c.controller.Settings.Theme())
	return &theme
}

func (c *cli) printVerse(w io.Writer, label string, v data.Verse) {
	theme := c.theme()
	if label != "" {
		fmt.Fprintln(w, theme.SectionLabelStyle.Render(label))
	}
	fmt.Fprintln(w, components.VerseCard(theme, v, components.CardOptions{
		Width:    cliCardWidth,
		ShowTags: true,
		Saved:    c.controller.Favorites.IsSaved(v.ID),
	}))
}

// verseTable lists verses with their reference, text and tags.
func (c *cli) verseTable(verses []data.Verse) *ltable.Table {
	purple := c.theme().Colors.Primary

	headerStyle := lipgloss.NewStyle().Foreground(purple).Bold(true).Align(lipgloss.Center)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	t := ltable.New().
		Border(lipgloss.HiddenBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(purple)).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == ltable.HeaderRow:
				return headerStyle
			default:
				return cellStyle
			}
		}).
		Headers("ID", "Ref", "Verse", "Tags")

	for _, v := range verses {
		t.Row(v.ID, v.Reference(), utils.TruncateString(v.English, 58), utils.TruncateString(strings.Join(v.Tags, ", "), 30))
	}
	return t
}

// favoritesTable renders saved verses with the bubbles table, most recent
// first.
func favoritesTable(favorites []data.FavoriteVerse) string {
	columns := []table.Column{
		{Title: "ID", Width: 8},
		{Title: "Ref", Width: 8},
		{Title: "Saved", Width: 14},
		{Title: "Verse", Width: 50},
	}

	rows := make([]table.Row, 0, len(favorites))
	for _, f := range favorites {
		rows = append(rows, table.Row{
			f.ID,
			f.Reference(),
			f.SavedAt.Format("Jan 2, 2006"),
			utils.TruncateString(f.English, 48),
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)

	return t.View()
}
