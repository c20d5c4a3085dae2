package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/gita/pkg/app/styles"
	"github.com/kerbaras/gita/pkg/data"
)

// maxCardTags is how many tags a card shows.
const maxCardTags = 4

type CardOptions struct {
	Width    int
	ShowTags bool
	Compact  bool
	Active   bool
	Saved    bool
	// Footer is an extra muted line, e.g. the saved date.
	Footer string
}

// VerseCard renders a verse with its reference, sanskrit, translation and
// reflection.
func VerseCard(theme *styles.Theme, v data.Verse, opts CardOptions) string {
	cardStyle := theme.CardStyle
	if opts.Active {
		cardStyle = theme.ActiveCardStyle
	}

	width := opts.Width
	if width <= 0 {
		width = 80
	}
	inner := width - cardStyle.GetHorizontalFrameSize()
	if inner < 20 {
		inner = 20
	}

	reference := fmt.Sprintf("Bhagavad Gita %s", v.Reference())
	if opts.Saved {
		reference += "  💛"
	}

	parts := []string{theme.ReferenceStyle.Render(reference)}

	if !opts.Compact && v.Sanskrit != "" {
		parts = append(parts, "", theme.SanskritStyle.Width(inner).Render(v.Sanskrit))
	}

	parts = append(parts, "", theme.EnglishStyle.Width(inner).Render(fmt.Sprintf("\"%s\"", v.English)))

	if v.Reflection != "" {
		label := "✨ Today's Reflection"
		if opts.Compact {
			label = "✨ Reflection"
		}
		parts = append(parts,
			"",
			theme.SectionLabelStyle.Render(label),
			theme.ReflectionStyle.Width(inner).Render(v.Reflection),
		)
	}

	if opts.ShowTags && len(v.Tags) > 0 {
		parts = append(parts, "", TagRow(theme, v.Tags))
	}

	if opts.Footer != "" {
		parts = append(parts, theme.MutedStyle.Render(opts.Footer))
	}

	return cardStyle.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// TagRow renders up to four tags inline.
func TagRow(theme *styles.Theme, tags []string) string {
	if len(tags) > maxCardTags {
		tags = tags[:maxCardTags]
	}
	rendered := make([]string, len(tags))
	for i, tag := range tags {
		rendered[i] = theme.MutedStyle.Render("#" + strings.ReplaceAll(tag, " ", ""))
	}
	return strings.Join(rendered, "  ")
}
