package screens

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/gita/pkg/app/styles"
	"go.uber.org/zap"
)

const noticeTimeout = 3 * time.Second

type tabID int

const (
	homeTab tabID = iota
	exploreTab
	askTab
	favoritesTab
	profileTab
)

// screen is a tab's model.
type screen interface {
	tea.Model
	Title() string
	// Capturing reports whether the screen is taking text input, in
	// which case single-letter shortcuts are not global.
	Capturing() bool
}

type SwitchTabMsg struct {
	Tab tabID
}

type RootScreen struct {
	deps  Deps
	theme *styles.Theme

	active  tabID
	screens []screen

	notice      string
	noticeError bool
	noticeID    int

	width  int
	height int
}

func NewRootScreen(deps Deps) *RootScreen {
	theme := styles.For(deps.Settings.Theme())
	t := &theme

	return &RootScreen{
		deps:   deps,
		theme:  t,
		active: homeTab,
		screens: []screen{
			homeTab:      NewHomeScreen(deps, t),
			exploreTab:   NewExploreScreen(deps, t),
			askTab:       NewAskScreen(deps, t),
			favoritesTab: NewFavoritesScreen(deps, t),
			profileTab:   NewProfileScreen(deps, t),
		},
	}
}

func (r *RootScreen) Init() tea.Cmd {
	return r.screens[r.active].Init()
}

func (r *RootScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		r.width = msg.Width
		r.height = msg.Height
		return r, r.broadcast(tea.WindowSizeMsg{Width: msg.Width, Height: msg.Height - 6})

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return r, tea.Quit
		case "tab":
			return r, r.switchTo((r.active + 1) % tabID(len(r.screens)))
		case "shift+tab":
			return r, r.switchTo((r.active + tabID(len(r.screens)) - 1) % tabID(len(r.screens)))
		}
		if !r.screens[r.active].Capturing() {
			switch msg.String() {
			case "q":
				return r, tea.Quit
			case "1", "2", "3", "4", "5":
				return r, r.switchTo(tabID(msg.String()[0] - '1'))
			}
		}
		return r, r.forward(r.active, msg)

	case SwitchTabMsg:
		return r, r.switchTo(msg.Tab)

	case noticeMsg:
		r.notice = msg.text
		r.noticeError = msg.isError
		r.noticeID++
		id := r.noticeID
		return r, tea.Tick(noticeTimeout, func(time.Time) tea.Msg {
			return clearNoticeMsg{id: id}
		})

	case clearNoticeMsg:
		if msg.id == r.noticeID {
			r.notice = ""
		}
		return r, nil

	case themeChangedMsg:
		*r.theme = styles.For(msg.mode)
		r.deps.logger().Info("Theme changed", zap.String("theme", string(msg.mode)))
		return r, nil
	}

	return r, r.broadcast(msg)
}

func (r *RootScreen) switchTo(tab tabID) tea.Cmd {
	if tab < 0 || int(tab) >= len(r.screens) {
		return nil
	}
	r.active = tab
	return r.screens[tab].Init()
}

func (r *RootScreen) forward(tab tabID, msg tea.Msg) tea.Cmd {
	model, cmd := r.screens[tab].Update(msg)
	r.screens[tab] = model.(screen)
	return cmd
}

// broadcast delivers msg to every tab. Async results and ticks must reach
// their screen even when it is not the active tab.
func (r *RootScreen) broadcast(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(r.screens))
	for i := range r.screens {
		cmds = append(cmds, r.forward(tabID(i), msg))
	}
	return tea.Batch(cmds...)
}

// Theme is the live theme shared by all tabs.
func (r *RootScreen) Theme() *styles.Theme {
	return r.theme
}

func (r *RootScreen) View() string {
	var notice string
	if r.notice != "" {
		style := r.theme.NoticeStyle
		if r.noticeError {
			style = r.theme.ErrorStyle
		}
		notice = "\n" + style.Render(r.notice)
	}

	view := fmt.Sprintf("%s\n\n%s%s", r.renderTabs(), r.screens[r.active].View(), notice)

	if r.width > 0 {
		return lipgloss.NewStyle().
			Background(r.theme.Colors.Background).
			Width(r.width).
			Render(view)
	}
	return view
}

func (r *RootScreen) renderTabs() string {
	tabs := make([]string, len(r.screens))
	for i, s := range r.screens {
		if tabID(i) == r.active {
			tabs[i] = r.theme.ActiveTabStyle.Render(s.Title())
		} else {
			tabs[i] = r.theme.InactiveTabStyle.Render(s.Title())
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}
