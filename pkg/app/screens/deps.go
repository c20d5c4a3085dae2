package screens

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/gita/pkg/data"
	"github.com/kerbaras/gita/pkg/integrations"
	"github.com/kerbaras/gita/pkg/services"
	"go.uber.org/zap"
)

// Deps are the services every screen works against. They are handed down
// from the root screen; screens never reach for globals.
type Deps struct {
	Verses     *services.VerseRepository
	Matcher    *services.Matcher
	Favorites  *services.FavoritesStore
	Settings   *services.Settings
	Sharer     integrations.Sharer
	ThinkDelay time.Duration
	ExportDir  string
	Now        func() time.Time
	Logger     *zap.Logger
}

// DepsFromController copies the controller's services into Deps.
func DepsFromController(c *services.Controller, sharer integrations.Sharer, exportDir string) Deps {
	return Deps{
		Verses:     c.Verses,
		Matcher:    c.Matcher,
		Favorites:  c.Favorites,
		Settings:   c.Settings,
		Sharer:     sharer,
		ThinkDelay: c.ThinkDelay,
		ExportDir:  exportDir,
		Now:        time.Now,
		Logger:     c.Logger().Named("tui"),
	}
}

func (d Deps) now() time.Time {
	if d.Now == nil {
		return time.Now()
	}
	return d.Now()
}

func (d Deps) logger() *zap.Logger {
	if d.Logger == nil {
		return zap.NewNop()
	}
	return d.Logger
}

// Messages shared between screens.
type noticeMsg struct {
	text    string
	isError bool
}

type clearNoticeMsg struct {
	id int
}

type themeChangedMsg struct {
	mode data.ThemeMode
}

// favoritesChangedMsg tells every screen to refresh saved markers.
type favoritesChangedMsg struct{}

func notice(text string) tea.Cmd {
	return func() tea.Msg { return noticeMsg{text: text} }
}

func errorNotice(text string) tea.Cmd {
	return func() tea.Msg { return noticeMsg{text: text, isError: true} }
}

func favoritesChanged() tea.Msg {
	return favoritesChangedMsg{}
}

// toggleSave flips the saved state of v and announces the change.
func toggleSave(deps Deps, v data.Verse) tea.Cmd {
	saved := deps.Favorites.Toggle(v)
	text := "🤍 Removed " + v.Reference() + " from your saved verses"
	if saved {
		text = "💛 Saved " + v.Reference()
	}
	return tea.Batch(notice(text), favoritesChanged)
}

// shareVerse hands v to the sharer. A failure only shows a notice.
func shareVerse(deps Deps, v data.Verse) tea.Cmd {
	if deps.Sharer == nil {
		return errorNotice(integrations.ShareFailedNotice)
	}
	return func() tea.Msg {
		if err := deps.Sharer.Share(v); err != nil {
			deps.logger().Warn("Share failed", zap.String("id", v.ID), zap.Error(err))
			return noticeMsg{text: integrations.ShareFailedNotice, isError: true}
		}
		return noticeMsg{text: "📋 Copied " + v.Reference() + " to the clipboard"}
	}
}
