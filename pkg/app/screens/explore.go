package screens

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/gita/pkg/app/components"
	"github.com/kerbaras/gita/pkg/app/styles"
	"github.com/kerbaras/gita/pkg/data"
)

type exploreMode int

const (
	topicsMode exploreMode = iota
	tagVersesMode
	searchMode
)

// ExploreScreen browses verses by topic or by free-text search.
type ExploreScreen struct {
	deps     Deps
	theme    *styles.Theme
	mode     exploreMode
	tags     []string
	selected int
	tag      string
	input    textinput.Model
	verses   *components.VerseList
	width    int
	height   int
}

func NewExploreScreen(deps Deps, theme *styles.Theme) *ExploreScreen {
	ti := textinput.New()
	ti.Placeholder = "Search verses, topics..."
	ti.CharLimit = 100
	ti.Width = 50

	list := components.NewVerseList()
	list.EmptyMessage = "No verses found"

	return &ExploreScreen{
		deps:   deps,
		theme:  theme,
		tags:   deps.Verses.AllTags(),
		input:  ti,
		verses: list,
	}
}

func (s *ExploreScreen) Title() string { return "🧭 Explore" }

func (s *ExploreScreen) Capturing() bool { return s.input.Focused() }

func (s *ExploreScreen) Init() tea.Cmd {
	return nil
}

func (s *ExploreScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.verses.Width = cardWidth(msg.Width)
		s.verses.Height = msg.Height - 12

	case favoritesChangedMsg:
		s.markSaved()

	case tea.KeyMsg:
		if s.input.Focused() {
			switch msg.String() {
			case "esc":
				s.input.Blur()
				if s.input.Value() == "" {
					s.mode = topicsMode
				}
				return s, nil
			case "enter", "down":
				s.input.Blur()
				return s, nil
			}
			before := s.input.Value()
			s.input, cmd = s.input.Update(msg)
			if s.input.Value() != before {
				s.runSearch()
			}
			return s, cmd
		}

		switch msg.String() {
		case "/":
			s.mode = searchMode
			s.input.Focus()
			s.runSearch()
			return s, textinput.Blink
		case "esc":
			s.mode = topicsMode
			s.input.SetValue("")
		case "up", "k":
			if s.mode == topicsMode {
				s.moveTag(-1)
			} else {
				s.verses.Prev()
			}
		case "down", "j":
			if s.mode == topicsMode {
				s.moveTag(1)
			} else {
				s.verses.Next()
			}
		case "enter":
			if s.mode == topicsMode && len(s.tags) > 0 {
				s.openTag(s.tags[s.selected])
			}
		case "s":
			if item := s.verses.Selected(); item != nil && s.mode != topicsMode {
				return s, toggleSave(s.deps, item.Verse)
			}
		case "c":
			if item := s.verses.Selected(); item != nil && s.mode != topicsMode {
				return s, shareVerse(s.deps, item.Verse)
			}
		}

	default:
		if s.input.Focused() {
			s.input, cmd = s.input.Update(msg)
		}
	}

	return s, cmd
}

func (s *ExploreScreen) moveTag(delta int) {
	if len(s.tags) == 0 {
		return
	}
	s.selected = (s.selected + delta + len(s.tags)) % len(s.tags)
}

func (s *ExploreScreen) openTag(tag string) {
	s.tag = tag
	s.mode = tagVersesMode
	s.verses.SelectedIndex = 0
	s.setVerses(s.deps.Verses.ByTag(tag))
}

func (s *ExploreScreen) runSearch() {
	s.verses.SelectedIndex = 0
	s.setVerses(s.deps.Verses.Search(s.input.Value()))
}

func (s *ExploreScreen) setVerses(verses []data.Verse) {
	items := make([]components.VerseListItem, len(verses))
	for i, v := range verses {
		items[i] = components.VerseListItem{Verse: v, Saved: s.deps.Favorites.IsSaved(v.ID)}
	}
	s.verses.SetItems(items)
}

func (s *ExploreScreen) markSaved() {
	for i := range s.verses.Items {
		s.verses.Items[i].Saved = s.deps.Favorites.IsSaved(s.verses.Items[i].Verse.ID)
	}
}

func (s *ExploreScreen) View() string {
	header := s.theme.TitleStyle.Render("Explore") + "\n" +
		s.theme.MutedStyle.Render("Browse wisdom by life situation")

	var body, help string
	switch s.mode {
	case topicsMode:
		body = s.renderTopics()
		help = "↑/k ↓/j: navigate • enter: open topic • /: search • tab: switch • q: quit"
	case tagVersesMode:
		body = fmt.Sprintf("%s\n%s\n\n%s",
			s.theme.SubtitleStyle.Render(components.TagLabel(s.tag)),
			s.theme.MutedStyle.Render(versesFound(len(s.verses.Items))),
			s.verses.View(s.theme),
		)
		help = "↑/k ↓/j: navigate • s: save • c: share • /: search • esc: topics • q: quit"
	case searchMode:
		inputStyle := s.theme.InputStyle
		if s.input.Focused() {
			inputStyle = s.theme.FocusedInputStyle
		}
		body = fmt.Sprintf("%s\n%s\n\n%s",
			inputStyle.Render(s.input.View()),
			s.theme.MutedStyle.Render(versesFound(len(s.verses.Items))),
			s.verses.View(s.theme),
		)
		if s.input.Focused() {
			help = "type to search • enter: results • esc: done"
		} else {
			help = "↑/k ↓/j: navigate • s: save • c: share • /: edit search • esc: topics • q: quit"
		}
	}

	return fmt.Sprintf("%s\n\n%s\n\n%s", header, body, s.theme.HelpStyle.Render(help))
}

func (s *ExploreScreen) renderTopics() string {
	if len(s.tags) == 0 {
		return s.theme.MutedStyle.Render("No topics")
	}

	var b strings.Builder
	b.WriteString(s.theme.SectionLabelStyle.Render("📚 Topics"))
	b.WriteString("\n")
	for i, tag := range s.tags {
		label := components.TagLabel(tag)
		count := len(s.deps.Verses.ByTag(tag))
		if i == s.selected {
			b.WriteString(s.theme.SelectedTagStyle.Render(label))
		} else {
			b.WriteString(s.theme.TagStyle.Render(label))
		}
		b.WriteString(s.theme.MutedStyle.Render(fmt.Sprintf("  %d", count)))
		b.WriteString("\n")
	}
	return b.String()
}

func versesFound(n int) string {
	if n == 1 {
		return "1 verse found"
	}
	return fmt.Sprintf("%d verses found", n)
}
