package data

import (
	"fmt"
	"time"
)

type Verse struct {
	ID         string   `json:"id" yaml:"id" toml:"id"`
	Chapter    int      `json:"chapter" yaml:"chapter" toml:"chapter"`
	Verse      int      `json:"verse" yaml:"verse" toml:"verse"`
	Sanskrit   string   `json:"sanskrit" yaml:"sanskrit" toml:"sanskrit"`
	English    string   `json:"english" yaml:"english" toml:"english"`
	Tags       []string `json:"tags" yaml:"tags" toml:"tags"`
	Reflection string   `json:"reflection" yaml:"reflection" toml:"reflection"`
}

// Reference returns the "chapter:verse" label shown on cards.
func (v Verse) Reference() string {
	return fmt.Sprintf("%d:%d", v.Chapter, v.Verse)
}

// FavoriteVerse is a bookmarked verse. It serializes flat, with savedAt
// next to the verse fields.
type FavoriteVerse struct {
	Verse
	SavedAt time.Time `json:"savedAt"`
}

type ThemeMode string

const (
	ThemeLight  ThemeMode = "light"
	ThemeDark   ThemeMode = "dark"
	ThemeTemple ThemeMode = "temple"
)

func (m ThemeMode) Valid() bool {
	switch m {
	case ThemeLight, ThemeDark, ThemeTemple:
		return true
	}
	return false
}

type Settings struct {
	Theme             ThemeMode
	DailyNotification bool
}

// Keys of the persisted records.
const (
	KeyFavorites         = "favorites"
	KeyThemeMode         = "themeMode"
	KeyDailyNotification = "dailyNotification"
)
