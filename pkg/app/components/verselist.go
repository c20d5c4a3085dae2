package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/gita/pkg/app/styles"
	"github.com/kerbaras/gita/pkg/data"
)

type VerseListItem struct {
	Verse  data.Verse
	Saved  bool
	Footer string
}

// VerseList is a scrollable list of verse cards with one selected item.
type VerseList struct {
	Items         []VerseListItem
	SelectedIndex int
	Width         int
	Height        int
	EmptyMessage  string
}

func NewVerseList() *VerseList {
	return &VerseList{
		Items:         []VerseListItem{},
		SelectedIndex: 0,
		Width:         80,
		Height:        20,
		EmptyMessage:  "No verses",
	}
}

func (m *VerseList) SetItems(items []VerseListItem) {
	m.Items = items
	if m.SelectedIndex >= len(items) && len(items) > 0 {
		m.SelectedIndex = len(items) - 1
	}
	if len(items) == 0 {
		m.SelectedIndex = 0
	}
}

func (m *VerseList) Next() {
	if len(m.Items) == 0 {
		return
	}
	m.SelectedIndex++
	if m.SelectedIndex >= len(m.Items) {
		m.SelectedIndex = 0
	}
}

func (m *VerseList) Prev() {
	if len(m.Items) == 0 {
		return
	}
	m.SelectedIndex--
	if m.SelectedIndex < 0 {
		m.SelectedIndex = len(m.Items) - 1
	}
}

func (m *VerseList) Selected() *VerseListItem {
	if len(m.Items) == 0 || m.SelectedIndex >= len(m.Items) {
		return nil
	}
	return &m.Items[m.SelectedIndex]
}

// View renders the selected card in full and the others compact, starting
// at the selected item so it is always on screen.
func (m *VerseList) View(theme *styles.Theme) string {
	if len(m.Items) == 0 {
		emptyMsg := theme.MutedStyle.Render(m.EmptyMessage)
		return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, emptyMsg)
	}

	var b strings.Builder
	for i := m.SelectedIndex; i < len(m.Items); i++ {
		item := m.Items[i]
		active := i == m.SelectedIndex
		b.WriteString(VerseCard(theme, item.Verse, CardOptions{
			Width:    m.Width,
			ShowTags: active,
			Compact:  !active,
			Active:   active,
			Saved:    item.Saved,
			Footer:   item.Footer,
		}))
		b.WriteString("\n")
	}
	return b.String()
}
