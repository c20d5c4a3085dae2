package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/gita/pkg/data"
)

// Palette is the colour set of one theme mode.
type Palette struct {
	Background     lipgloss.Color
	Surface        lipgloss.Color
	CardBackground lipgloss.Color
	Primary        lipgloss.Color
	Secondary      lipgloss.Color
	Accent         lipgloss.Color
	Text           lipgloss.Color
	TextSecondary  lipgloss.Color
	TextMuted      lipgloss.Color
	Border         lipgloss.Color
	Sanskrit       lipgloss.Color
	Error          lipgloss.Color
}

var palettes = map[data.ThemeMode]Palette{
	data.ThemeLight: {
		Background:     "#FDF8F3",
		Surface:        "#FFFFFF",
		CardBackground: "#FEF9F3",
		Primary:        "#1A365D",
		Secondary:      "#C9A227",
		Accent:         "#D4AF37",
		Text:           "#1A202C",
		TextSecondary:  "#4A5568",
		TextMuted:      "#718096",
		Border:         "#E2D5C3",
		Sanskrit:       "#8B4513",
		Error:          "#C53030",
	},
	data.ThemeDark: {
		Background:     "#1A1A2E",
		Surface:        "#16213E",
		CardBackground: "#1F2937",
		Primary:        "#E2D5C3",
		Secondary:      "#D4AF37",
		Accent:         "#C9A227",
		Text:           "#F7FAFC",
		TextSecondary:  "#CBD5E0",
		TextMuted:      "#A0AEC0",
		Border:         "#374151",
		Sanskrit:       "#D4AF37",
		Error:          "#F07178",
	},
	data.ThemeTemple: {
		Background:     "#2D1B0E",
		Surface:        "#3D2817",
		CardBackground: "#4A3423",
		Primary:        "#F5DEB3",
		Secondary:      "#FFD700",
		Accent:         "#DAA520",
		Text:           "#FFF8DC",
		TextSecondary:  "#DEB887",
		TextMuted:      "#D2B48C",
		Border:         "#5D4037",
		Sanskrit:       "#FFD700",
		Error:          "#FF8A65",
	},
}

// Theme holds the rendered styles for one mode. Screens share a pointer to
// a single Theme owned by the root screen.
type Theme struct {
	Mode     data.ThemeMode
	Colors   Palette
	IsTemple bool

	TitleStyle        lipgloss.Style
	SubtitleStyle     lipgloss.Style
	TextStyle         lipgloss.Style
	MutedStyle        lipgloss.Style
	ReferenceStyle    lipgloss.Style
	SanskritStyle     lipgloss.Style
	EnglishStyle      lipgloss.Style
	ReflectionStyle   lipgloss.Style
	SectionLabelStyle lipgloss.Style
	CardStyle         lipgloss.Style
	ActiveCardStyle   lipgloss.Style
	TagStyle          lipgloss.Style
	SelectedTagStyle  lipgloss.Style
	ActiveTabStyle    lipgloss.Style
	InactiveTabStyle  lipgloss.Style
	HelpStyle         lipgloss.Style
	InputStyle        lipgloss.Style
	FocusedInputStyle lipgloss.Style
	NoticeStyle       lipgloss.Style
	ErrorStyle        lipgloss.Style
	SpinnerStyle      lipgloss.Style
}

// For builds the theme for mode, falling back to light for unknown modes.
func For(mode data.ThemeMode) Theme {
	p, ok := palettes[mode]
	if !ok {
		mode = data.ThemeLight
		p = palettes[mode]
	}

	border := lipgloss.RoundedBorder()
	if mode == data.ThemeTemple {
		border = lipgloss.DoubleBorder()
	}

	return Theme{
		Mode:     mode,
		Colors:   p,
		IsTemple: mode == data.ThemeTemple,

		TitleStyle: lipgloss.NewStyle().
			Foreground(p.Primary).
			Bold(true).
			MarginBottom(1),

		SubtitleStyle: lipgloss.NewStyle().
			Foreground(p.TextSecondary).
			Italic(true),

		TextStyle: lipgloss.NewStyle().
			Foreground(p.Text),

		MutedStyle: lipgloss.NewStyle().
			Foreground(p.TextMuted),

		ReferenceStyle: lipgloss.NewStyle().
			Foreground(p.Secondary).
			Bold(true),

		SanskritStyle: lipgloss.NewStyle().
			Foreground(p.Sanskrit).
			Italic(true),

		EnglishStyle: lipgloss.NewStyle().
			Foreground(p.Text),

		ReflectionStyle: lipgloss.NewStyle().
			Foreground(p.TextSecondary),

		SectionLabelStyle: lipgloss.NewStyle().
			Foreground(p.Secondary).
			Bold(true),

		CardStyle: lipgloss.NewStyle().
			Border(border).
			BorderForeground(p.Border).
			Padding(1, 2).
			MarginBottom(1),

		ActiveCardStyle: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(p.Secondary).
			Padding(1, 2).
			MarginBottom(1),

		TagStyle: lipgloss.NewStyle().
			Foreground(p.Primary).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Secondary).
			Padding(0, 1),

		SelectedTagStyle: lipgloss.NewStyle().
			Foreground(p.Background).
			Background(p.Secondary).
			Bold(true).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Secondary).
			Padding(0, 1),

		ActiveTabStyle: lipgloss.NewStyle().
			Foreground(p.Background).
			Background(p.Primary).
			Padding(0, 2).
			Bold(true),

		InactiveTabStyle: lipgloss.NewStyle().
			Foreground(p.TextMuted).
			Padding(0, 2),

		HelpStyle: lipgloss.NewStyle().
			Foreground(p.TextMuted).
			Italic(true).
			MarginTop(1),

		InputStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(0, 1),

		FocusedInputStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Secondary).
			Padding(0, 1),

		NoticeStyle: lipgloss.NewStyle().
			Foreground(p.Accent).
			Bold(true),

		ErrorStyle: lipgloss.NewStyle().
			Foreground(p.Error).
			Bold(true),

		SpinnerStyle: lipgloss.NewStyle().
			Foreground(p.Secondary),
	}
}

// Modes lists the selectable themes in display order.
func Modes() []data.ThemeMode {
	return []data.ThemeMode{data.ThemeLight, data.ThemeDark, data.ThemeTemple}
}
