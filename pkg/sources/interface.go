package sources

import (
	"errors"
	"fmt"

	"github.com/kerbaras/gita/pkg/data"
)

var ErrEmptyCatalog = errors.New("catalog contains no verses")

// Source provides the verse catalog loaded at startup.
type Source interface {
	Verses() ([]data.Verse, error)
}

// Validate checks the catalog invariants: at least one verse, unique
// non-empty ids and positive chapter/verse numbers.
func Validate(verses []data.Verse) error {
	if len(verses) == 0 {
		return ErrEmptyCatalog
	}

	seen := make(map[string]struct{}, len(verses))
	for i, v := range verses {
		if v.ID == "" {
			return fmt.Errorf("verse at position %d has no id", i)
		}
		if _, dup := seen[v.ID]; dup {
			return fmt.Errorf("duplicate verse id %q", v.ID)
		}
		seen[v.ID] = struct{}{}

		if v.Chapter <= 0 || v.Verse <= 0 {
			return fmt.Errorf("verse %q has invalid location %d:%d", v.ID, v.Chapter, v.Verse)
		}
	}
	return nil
}
