package screens

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/gita/pkg/app/styles"
	"github.com/kerbaras/gita/pkg/data"
)

type themeOption struct {
	mode        data.ThemeMode
	label       string
	emoji       string
	description string
}

var themeOptions = []themeOption{
	{data.ThemeLight, "Light", "☀️", "Clean, bright interface"},
	{data.ThemeDark, "Dark", "🌙", "Easy on the eyes"},
	{data.ThemeTemple, "Temple", "🕉️", "Sacred ambiance"},
}

// Rows past the theme options.
const notificationRow = 3

// ProfileScreen shows stats and edits settings.
type ProfileScreen struct {
	deps   Deps
	theme  *styles.Theme
	cursor int
	width  int
	height int
}

func NewProfileScreen(deps Deps, theme *styles.Theme) *ProfileScreen {
	s := &ProfileScreen{deps: deps, theme: theme}
	for i, opt := range themeOptions {
		if opt.mode == deps.Settings.Theme() {
			s.cursor = i
		}
	}
	return s
}

func (s *ProfileScreen) Title() string { return "👤 Profile" }

func (s *ProfileScreen) Capturing() bool { return false }

func (s *ProfileScreen) Init() tea.Cmd {
	return nil
}

func (s *ProfileScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			s.cursor = (s.cursor + notificationRow) % (notificationRow + 1)
		case "down", "j":
			s.cursor = (s.cursor + 1) % (notificationRow + 1)
		case "enter", " ":
			return s, s.activate()
		case "n":
			return s, s.toggleNotification()
		}
	}
	return s, nil
}

func (s *ProfileScreen) activate() tea.Cmd {
	if s.cursor == notificationRow {
		return s.toggleNotification()
	}

	mode := themeOptions[s.cursor].mode
	if err := s.deps.Settings.SetTheme(mode); err != nil {
		return errorNotice(err.Error())
	}
	return tea.Batch(
		func() tea.Msg { return themeChangedMsg{mode: mode} },
		notice(fmt.Sprintf("🎨 %s theme", themeOptions[s.cursor].label)),
	)
}

func (s *ProfileScreen) toggleNotification() tea.Cmd {
	enabled := !s.deps.Settings.DailyNotification()
	s.deps.Settings.SetDailyNotification(enabled)
	if enabled {
		return notice("🔔 Daily reminder on")
	}
	return notice("🔕 Daily reminder off")
}

func (s *ProfileScreen) View() string {
	header := s.theme.TitleStyle.Render("Settings") + "\n" +
		s.theme.MutedStyle.Render("Customize your experience")

	stats := lipgloss.JoinHorizontal(lipgloss.Top,
		s.stat(s.deps.Favorites.Count(), "Saved Verses"),
		"  ",
		s.stat(s.deps.Verses.Len(), "Total Verses"),
	)

	var themes strings.Builder
	themes.WriteString(s.theme.SectionLabelStyle.Render("🎨 Theme"))
	themes.WriteString("\n")
	current := s.deps.Settings.Theme()
	for i, opt := range themeOptions {
		marker := "  "
		if opt.mode == current {
			marker = "✓ "
		}
		line := fmt.Sprintf("%s%s %s  %s", marker, opt.emoji, opt.label, s.theme.MutedStyle.Render(opt.description))
		themes.WriteString(s.row(i, line))
		themes.WriteString("\n")
	}

	toggle := "[ ] off"
	if s.deps.Settings.DailyNotification() {
		toggle = "[x] on"
	}
	notifications := fmt.Sprintf("%s\n%s\n  %s",
		s.theme.SectionLabelStyle.Render("🔔 Notifications"),
		s.row(notificationRow, fmt.Sprintf("  Daily Verse Reminder  %s", toggle)),
		s.theme.MutedStyle.Render("Receive your daily wisdom at 8:00 AM"),
	)

	about := fmt.Sprintf("%s\n%s\n%s",
		s.theme.SectionLabelStyle.Render("ℹ️ About"),
		s.theme.TextStyle.Render("Gita Today"),
		s.theme.MutedStyle.Render("Ancient wisdom for modern life. Each verse comes with a contemporary reflection."),
	)

	help := s.theme.HelpStyle.Render("↑/k ↓/j: navigate • enter: select • n: toggle reminder • tab: switch • q: quit")

	return fmt.Sprintf("%s\n\n%s\n\n%s\n%s\n\n%s\n\n%s", header, stats, themes.String(), notifications, about, help)
}

func (s *ProfileScreen) stat(n int, label string) string {
	return s.theme.CardStyle.Render(lipgloss.JoinVertical(lipgloss.Center,
		s.theme.TitleStyle.Render(fmt.Sprintf("%d", n)),
		s.theme.MutedStyle.Render(label),
	))
}

func (s *ProfileScreen) row(i int, line string) string {
	if i == s.cursor {
		return s.theme.SelectedTagStyle.Render(line)
	}
	return s.theme.TextStyle.Render(line)
}
