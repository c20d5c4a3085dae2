package data

import (
	"encoding/json"
	"testing"
	"time"
)

func TestVerseReference(t *testing.T) {
	verse := Verse{ID: "2-47", Chapter: 2, Verse: 47}

	if verse.Reference() != "2:47" {
		t.Errorf("Expected reference '2:47', got '%s'", verse.Reference())
	}
}

func TestFavoriteVerseSerializesFlat(t *testing.T) {
	fav := FavoriteVerse{
		Verse: Verse{
			ID:      "6-5",
			Chapter: 6,
			Verse:   5,
			Tags:    []string{"Self-doubt"},
		},
		SavedAt: time.Date(2024, 3, 1, 8, 30, 0, 0, time.UTC),
	}

	raw, err := json.Marshal(fav)
	if err != nil {
		t.Fatalf("Failed to marshal: %v", err)
	}

	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		t.Fatalf("Failed to unmarshal: %v", err)
	}

	if fields["id"] != "6-5" {
		t.Errorf("Expected top-level id '6-5', got %v", fields["id"])
	}
	if fields["savedAt"] != "2024-03-01T08:30:00Z" {
		t.Errorf("Expected ISO-8601 savedAt, got %v", fields["savedAt"])
	}
	if _, nested := fields["Verse"]; nested {
		t.Error("Expected verse fields to be inlined")
	}
}

func TestThemeModeValid(t *testing.T) {
	for _, mode := range []ThemeMode{ThemeLight, ThemeDark, ThemeTemple} {
		if !mode.Valid() {
			t.Errorf("Expected %q to be valid", mode)
		}
	}
	if ThemeMode("sepia").Valid() {
		t.Error("Expected 'sepia' to be invalid")
	}
}

func TestDefaultCatalogIsEmbedded(t *testing.T) {
	var verses []Verse
	if err := json.Unmarshal(DefaultCatalog, &verses); err != nil {
		t.Fatalf("Embedded catalog is not valid JSON: %v", err)
	}
	if len(verses) != 12 {
		t.Errorf("Expected 12 verses, got %d", len(verses))
	}
}
