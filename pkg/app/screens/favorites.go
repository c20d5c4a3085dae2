package screens

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/gita/pkg/app/components"
	"github.com/kerbaras/gita/pkg/app/styles"
	"github.com/kerbaras/gita/pkg/data"
	"github.com/kerbaras/gita/pkg/integrations"
	"go.uber.org/zap"
)

type epubExportedMsg struct {
	path string
	err  error
}

// FavoritesScreen lists saved verses, most recent first.
type FavoritesScreen struct {
	deps       Deps
	theme      *styles.Theme
	list       *components.VerseList
	confirming *data.Verse
	exporting  bool
	width      int
	height     int
}

func NewFavoritesScreen(deps Deps, theme *styles.Theme) *FavoritesScreen {
	list := components.NewVerseList()
	list.EmptyMessage = "No saved verses yet\n\nStart saving verses that resonate with you.\nPress s on any verse to add it here."

	s := &FavoritesScreen{deps: deps, theme: theme, list: list}
	s.reload()
	return s
}

func (s *FavoritesScreen) Title() string { return "💛 Favorites" }

func (s *FavoritesScreen) Capturing() bool { return s.confirming != nil }

func (s *FavoritesScreen) Init() tea.Cmd {
	s.reload()
	return nil
}

func (s *FavoritesScreen) reload() {
	favorites := s.deps.Favorites.Favorites()
	items := make([]components.VerseListItem, len(favorites))
	for i, f := range favorites {
		items[i] = components.VerseListItem{
			Verse:  f.Verse,
			Saved:  true,
			Footer: "Saved on " + f.SavedAt.Format("Jan 2, 2006"),
		}
	}
	s.list.SetItems(items)
}

func (s *FavoritesScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.list.Width = cardWidth(msg.Width)
		s.list.Height = msg.Height - 12

	case favoritesChangedMsg:
		s.reload()

	case epubExportedMsg:
		s.exporting = false
		if msg.err != nil {
			if errors.Is(msg.err, integrations.ErrNoFavorites) {
				return s, errorNotice("No saved verses to export")
			}
			s.deps.logger().Error("EPUB export failed", zap.Error(msg.err))
			return s, errorNotice("Export failed: " + msg.err.Error())
		}
		return s, notice("📖 Exported to " + msg.path)

	case tea.KeyMsg:
		if s.confirming != nil {
			switch msg.String() {
			case "y", "enter":
				id := s.confirming.ID
				ref := s.confirming.Reference()
				s.confirming = nil
				s.deps.Favorites.Remove(id)
				return s, tea.Batch(notice("🗑️ Removed "+ref), favoritesChanged)
			case "n", "esc":
				s.confirming = nil
			}
			return s, nil
		}

		switch msg.String() {
		case "up", "k":
			s.list.Prev()
		case "down", "j":
			s.list.Next()
		case "d", "x":
			if item := s.list.Selected(); item != nil {
				v := item.Verse
				s.confirming = &v
			}
		case "c":
			if item := s.list.Selected(); item != nil {
				return s, shareVerse(s.deps, item.Verse)
			}
		case "e":
			if !s.exporting {
				s.exporting = true
				return s, s.exportEPUB()
			}
		}
	}
	return s, nil
}

func (s *FavoritesScreen) exportEPUB() tea.Cmd {
	favorites := s.deps.Favorites.Favorites()
	mode := s.deps.Settings.Theme()
	dir := s.deps.ExportDir
	return func() tea.Msg {
		path, err := integrations.NewEPubBuilder(mode).CreateEPub(favorites, dir)
		return epubExportedMsg{path: path, err: err}
	}
}

func (s *FavoritesScreen) View() string {
	header := s.theme.TitleStyle.Render("Favorites") + "\n" +
		s.theme.MutedStyle.Render("Your collection of saved wisdom")

	count := len(s.list.Items)
	var summary string
	if count > 0 {
		plural := "s"
		if count == 1 {
			plural = ""
		}
		summary = s.theme.SubtitleStyle.Render(fmt.Sprintf("💛 %d saved verse%s", count, plural)) + "\n\n"
	}

	var confirm string
	if s.confirming != nil {
		confirm = s.theme.ErrorStyle.Render(
			fmt.Sprintf("Remove %s from your saved verses? (y/n)", s.confirming.Reference()),
		) + "\n\n"
	}

	status := ""
	if s.exporting {
		status = s.theme.MutedStyle.Render("Exporting...") + "\n\n"
	}

	help := s.theme.HelpStyle.Render("↑/k ↓/j: navigate • d: remove • c: share • e: export epub • tab: switch • q: quit")

	return fmt.Sprintf("%s\n\n%s%s%s%s\n\n%s", header, summary, confirm, status, s.list.View(s.theme), help)
}
