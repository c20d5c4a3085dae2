package screens

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/gita/pkg/app/components"
	"github.com/kerbaras/gita/pkg/app/styles"
	"github.com/kerbaras/gita/pkg/data"
)

// Greeting picks the salutation for the hour of t.
func Greeting(t time.Time) string {
	switch h := t.Hour(); {
	case h < 12:
		return "🌅 Good Morning"
	case h < 17:
		return "☀️ Good Afternoon"
	default:
		return "🌙 Good Evening"
	}
}

// LongDate formats t like "Monday, January 2".
func LongDate(t time.Time) string {
	return t.Format("Monday, January 2")
}

// HomeScreen shows the verse of the day.
type HomeScreen struct {
	deps    Deps
	theme   *styles.Theme
	verse   data.Verse
	isDaily bool
	saved   bool
	width   int
	height  int
}

func NewHomeScreen(deps Deps, theme *styles.Theme) *HomeScreen {
	h := &HomeScreen{deps: deps, theme: theme}
	h.showDaily()
	return h
}

func (h *HomeScreen) Title() string { return "🌅 Today" }

func (h *HomeScreen) Capturing() bool { return false }

func (h *HomeScreen) Verse() data.Verse { return h.verse }

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) showDaily() {
	h.verse = h.deps.Verses.Daily(h.deps.now())
	h.isDaily = true
	h.saved = h.deps.Favorites.IsSaved(h.verse.ID)
}

func (h *HomeScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h.width = msg.Width
		h.height = msg.Height

	case favoritesChangedMsg:
		h.saved = h.deps.Favorites.IsSaved(h.verse.ID)

	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			h.verse = h.deps.Verses.Random()
			h.isDaily = false
			h.saved = h.deps.Favorites.IsSaved(h.verse.ID)
		case "d":
			h.showDaily()
		case "s":
			return h, toggleSave(h.deps, h.verse)
		case "c":
			return h, shareVerse(h.deps, h.verse)
		}
	}
	return h, nil
}

func (h *HomeScreen) View() string {
	now := h.deps.now()

	header := lipgloss.JoinVertical(lipgloss.Left,
		h.theme.SubtitleStyle.Render(Greeting(now)),
		h.theme.TitleStyle.Render("Gita Today"),
		h.theme.MutedStyle.Render("Your daily dose of divine wisdom"),
		h.theme.MutedStyle.Render(fmt.Sprintf("📿 %s", LongDate(now))),
	)

	label := "✨ Verse of the Day"
	if !h.isDaily {
		label = "🎲 A Verse for You"
	}

	card := components.VerseCard(h.theme, h.verse, components.CardOptions{
		Width:    cardWidth(h.width),
		ShowTags: true,
		Saved:    h.saved,
	})

	quote := h.theme.ReflectionStyle.Render("\"In the stillness of your soul, wisdom speaks.\"")

	help := h.theme.HelpStyle.Render(
		fmt.Sprintf("r: another verse • d: today's verse • s: %s • c: share • tab: switch • q: quit", saveLabel(h.saved)),
	)

	return fmt.Sprintf("%s\n\n%s\n%s\n\n%s\n\n%s",
		header,
		h.theme.SectionLabelStyle.Render(label),
		card,
		quote,
		help,
	)
}

func saveLabel(saved bool) string {
	if saved {
		return "unsave"
	}
	return "save"
}

func cardWidth(width int) int {
	if width <= 0 {
		return 80
	}
	w := width - 4
	if w > 100 {
		w = 100
	}
	return w
}
