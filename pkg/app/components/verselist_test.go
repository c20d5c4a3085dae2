package components

import (
	"strings"
	"testing"

	"github.com/kerbaras/gita/pkg/app/styles"
	"github.com/kerbaras/gita/pkg/data"
)

func threeItems() []VerseListItem {
	return []VerseListItem{
		{Verse: data.Verse{ID: "2-47", Chapter: 2, Verse: 47, English: "Act without attachment"}},
		{Verse: data.Verse{ID: "2-14", Chapter: 2, Verse: 14, English: "Endure the seasons"}},
		{Verse: data.Verse{ID: "6-5", Chapter: 6, Verse: 5, English: "Elevate yourself"}},
	}
}

func TestNewVerseList(t *testing.T) {
	list := NewVerseList()

	if list == nil {
		t.Fatal("Expected verse list to be created")
	}
	if list.SelectedIndex != 0 {
		t.Errorf("Expected SelectedIndex 0, got %d", list.SelectedIndex)
	}
	if len(list.Items) != 0 {
		t.Errorf("Expected 0 items, got %d", len(list.Items))
	}
}

func TestSetItemsClampsSelection(t *testing.T) {
	list := NewVerseList()
	list.SetItems(threeItems())
	list.SelectedIndex = 2

	list.SetItems(threeItems()[:1])

	if list.SelectedIndex != 0 {
		t.Errorf("Expected SelectedIndex to be clamped to 0, got %d", list.SelectedIndex)
	}
}

func TestNextWraps(t *testing.T) {
	list := NewVerseList()
	list.SetItems(threeItems())

	list.Next()
	list.Next()
	if list.SelectedIndex != 2 {
		t.Errorf("Expected SelectedIndex 2, got %d", list.SelectedIndex)
	}

	list.Next()
	if list.SelectedIndex != 0 {
		t.Errorf("Expected SelectedIndex to wrap to 0, got %d", list.SelectedIndex)
	}
}

func TestPrevWraps(t *testing.T) {
	list := NewVerseList()
	list.SetItems(threeItems())

	list.Prev()
	if list.SelectedIndex != 2 {
		t.Errorf("Expected SelectedIndex to wrap to 2, got %d", list.SelectedIndex)
	}
}

func TestNextPrevEmptyList(t *testing.T) {
	list := NewVerseList()

	list.Next()
	list.Prev()

	if list.SelectedIndex != 0 {
		t.Errorf("Expected SelectedIndex to remain 0, got %d", list.SelectedIndex)
	}
	if list.Selected() != nil {
		t.Error("Expected nil selection for empty list")
	}
}

func TestSelected(t *testing.T) {
	list := NewVerseList()
	list.SetItems(threeItems())
	list.Next()

	selected := list.Selected()
	if selected == nil {
		t.Fatal("Expected a selection")
	}
	if selected.Verse.ID != "2-14" {
		t.Errorf("Expected 2-14, got %s", selected.Verse.ID)
	}
}

func TestViewEmpty(t *testing.T) {
	theme := styles.For(data.ThemeLight)
	list := NewVerseList()
	list.EmptyMessage = "No saved verses yet"

	view := list.View(&theme)

	if !strings.Contains(view, "No saved verses yet") {
		t.Error("Expected empty message in view")
	}
}

func TestViewStartsAtSelection(t *testing.T) {
	theme := styles.For(data.ThemeDark)
	list := NewVerseList()
	list.SetItems(threeItems())
	list.Next()

	view := list.View(&theme)

	if strings.Contains(view, "2:47") {
		t.Error("Expected items above the selection to be scrolled out")
	}
	if !strings.Contains(view, "2:14") || !strings.Contains(view, "6:5") {
		t.Error("Expected selected and following items in view")
	}
}
