package sources

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/kerbaras/gita/pkg/data"
	"gopkg.in/yaml.v3"
)

// Embedded serves the catalog compiled into the binary.
type Embedded struct{}

func NewEmbedded() *Embedded {
	return &Embedded{}
}

func (e *Embedded) Verses() ([]data.Verse, error) {
	var verses []data.Verse
	if err := json.Unmarshal(data.DefaultCatalog, &verses); err != nil {
		return nil, fmt.Errorf("failed to decode embedded catalog: %w", err)
	}
	if err := Validate(verses); err != nil {
		return nil, err
	}
	return verses, nil
}

// File reads a catalog from disk. Files ending in .yaml or .yml are
// decoded as YAML, .toml as TOML with a [[verses]] table array, everything
// else as JSON.
type File struct {
	path string
}

func NewFile(path string) *File {
	return &File{path: path}
}

func (f *File) Verses() ([]data.Verse, error) {
	raw, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	var verses []data.Verse
	switch strings.ToLower(filepath.Ext(f.path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(raw, &verses)
	case ".toml":
		var doc tomlCatalog
		_, err = toml.Decode(string(raw), &doc)
		verses = doc.Verses
	default:
		err = json.Unmarshal(raw, &verses)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode catalog %s: %w", f.path, err)
	}

	if err := Validate(verses); err != nil {
		return nil, fmt.Errorf("invalid catalog %s: %w", f.path, err)
	}
	return verses, nil
}

type tomlCatalog struct {
	Verses []data.Verse `toml:"verses"`
}

// FromPath picks the file source when a path is configured and the
// embedded catalog otherwise.
func FromPath(path string) Source {
	if path == "" {
		return NewEmbedded()
	}
	return NewFile(path)
}
