package sources

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/kerbaras/gita/pkg/data"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbedded_Verses(t *testing.T) {
	verses, err := NewEmbedded().Verses()
	require.NoError(t, err)
	assert.Len(t, verses, 12)
	assert.Equal(t, "2-47", verses[0].ID)
	assert.NotEmpty(t, verses[0].Sanskrit)
	assert.Contains(t, verses[0].Tags, "Karma Yoga")
}

func TestFile_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	content := `[{"id":"a","chapter":1,"verse":1,"english":"calm","tags":["Peace"],"reflection":"r"}]`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	verses, err := NewFile(path).Verses()
	require.NoError(t, err)
	require.Len(t, verses, 1)
	assert.Equal(t, "a", verses[0].ID)
	assert.Equal(t, []string{"Peace"}, verses[0].Tags)
}

func TestFile_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	content := `
- id: a
  chapter: 1
  verse: 1
  english: calm
  tags: [Peace]
- id: b
  chapter: 2
  verse: 3
  english: brave
  tags: [Fear]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	verses, err := NewFile(path).Verses()
	require.NoError(t, err)
	require.Len(t, verses, 2)
	assert.Equal(t, "b", verses[1].ID)
	assert.Equal(t, 3, verses[1].Verse)
}

func TestFile_TOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.toml")
	content := `
[[verses]]
id = "2-47"
chapter = 2
verse = 47
english = "Act without attachment"
tags = ["Action", "Karma Yoga"]
reflection = "Focus on the effort."

[[verses]]
id = "6-35"
chapter = 6
verse = 35
english = "The mind is restless"
tags = ["Meditation"]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	verses, err := NewFile(path).Verses()
	require.NoError(t, err)
	require.Len(t, verses, 2)
	assert.Equal(t, []string{"Action", "Karma Yoga"}, verses[0].Tags)
	assert.Equal(t, 35, verses[1].Verse)
	assert.Empty(t, verses[1].Reflection)
}

func TestFile_TOMLMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.toml")
	require.NoError(t, os.WriteFile(path, []byte(`[[verses]`), 0644))

	_, err := NewFile(path).Verses()
	assert.Error(t, err)
}

func TestFile_Missing(t *testing.T) {
	_, err := NewFile(filepath.Join(t.TempDir(), "nope.json")).Verses()
	assert.Error(t, err)
}

func TestFile_EmptyCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.json")
	require.NoError(t, os.WriteFile(path, []byte(`[]`), 0644))

	_, err := NewFile(path).Verses()
	assert.True(t, errors.Is(err, ErrEmptyCatalog))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		verses  []data.Verse
		wantErr bool
	}{
		{"valid", []data.Verse{{ID: "a", Chapter: 1, Verse: 1}}, false},
		{"empty", nil, true},
		{"missing id", []data.Verse{{Chapter: 1, Verse: 1}}, true},
		{"duplicate id", []data.Verse{{ID: "a", Chapter: 1, Verse: 1}, {ID: "a", Chapter: 1, Verse: 2}}, true},
		{"zero chapter", []data.Verse{{ID: "a", Chapter: 0, Verse: 1}}, true},
		{"negative verse", []data.Verse{{ID: "a", Chapter: 1, Verse: -4}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.verses)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFromPath(t *testing.T) {
	assert.IsType(t, &Embedded{}, FromPath(""))
	assert.IsType(t, &File{}, FromPath("catalog.json"))
}
