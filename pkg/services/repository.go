package services

import (
	"errors"
	"math/rand/v2"
	"sort"
	"strings"
	"time"

	"github.com/kerbaras/gita/pkg/data"
	"github.com/kerbaras/gita/pkg/sources"
)

var ErrNotFound = errors.New("verse not found")

// VerseRepository is the read-only view over the verse catalog. The tag
// index is derived once from the catalog and never persisted.
type VerseRepository struct {
	verses []data.Verse
	byID   map[string]int
	byTag  map[string][]data.Verse
	tags   []string
	intn   func(n int) int
}

// NewVerseRepository builds the repository and its tag index. The catalog
// must be non-empty with unique ids.
func NewVerseRepository(verses []data.Verse) (*VerseRepository, error) {
	if err := sources.Validate(verses); err != nil {
		return nil, err
	}

	r := &VerseRepository{
		verses: make([]data.Verse, len(verses)),
		byID:   make(map[string]int, len(verses)),
		byTag:  make(map[string][]data.Verse),
		intn:   rand.IntN,
	}
	copy(r.verses, verses)

	distinct := make(map[string]struct{})
	for i, v := range r.verses {
		r.byID[v.ID] = i

		// a verse listing the same tag twice (in any case) is indexed once
		indexed := make(map[string]bool, len(v.Tags))
		for _, tag := range v.Tags {
			if _, ok := distinct[tag]; !ok {
				distinct[tag] = struct{}{}
				r.tags = append(r.tags, tag)
			}
			key := strings.ToLower(tag)
			if indexed[key] {
				continue
			}
			indexed[key] = true
			r.byTag[key] = append(r.byTag[key], v)
		}
	}
	sort.Strings(r.tags)

	return r, nil
}

// LoadVerseRepository reads the catalog from src and indexes it.
func LoadVerseRepository(src sources.Source) (*VerseRepository, error) {
	verses, err := src.Verses()
	if err != nil {
		return nil, err
	}
	return NewVerseRepository(verses)
}

// WithRand replaces the source of randomness used by Random.
func (r *VerseRepository) WithRand(intn func(n int) int) *VerseRepository {
	r.intn = intn
	return r
}

func (r *VerseRepository) Len() int {
	return len(r.verses)
}

// All returns the catalog in stored order.
func (r *VerseRepository) All() []data.Verse {
	out := make([]data.Verse, len(r.verses))
	copy(out, r.verses)
	return out
}

func (r *VerseRepository) GetByID(id string) (data.Verse, error) {
	i, ok := r.byID[id]
	if !ok {
		return data.Verse{}, ErrNotFound
	}
	return r.verses[i], nil
}

// Random picks a verse uniformly from the catalog.
func (r *VerseRepository) Random() data.Verse {
	return r.verses[r.intn(len(r.verses))]
}

// Daily returns the verse for the calendar day of date, in date's own
// location. Jan 1 is day 1, so the index is YearDay mod catalog size.
func (r *VerseRepository) Daily(date time.Time) data.Verse {
	return r.verses[date.YearDay()%len(r.verses)]
}

// AllTags returns every distinct tag as stored, sorted ascending.
func (r *VerseRepository) AllTags() []string {
	out := make([]string, len(r.tags))
	copy(out, r.tags)
	return out
}

// ByTag returns the verses carrying tag, compared case-insensitively, in
// catalog order.
func (r *VerseRepository) ByTag(tag string) []data.Verse {
	matches := r.byTag[strings.ToLower(tag)]
	out := make([]data.Verse, len(matches))
	copy(out, matches)
	return out
}

// Search returns the verses whose tags, english text or reflection contain
// query, ignoring case.
func (r *VerseRepository) Search(query string) []data.Verse {
	q := strings.ToLower(query)
	out := []data.Verse{}
	for _, v := range r.verses {
		if containsFold(v.English, q) || containsFold(v.Reflection, q) || anyTagContains(v.Tags, q) {
			out = append(out, v)
		}
	}
	return out
}

func containsFold(s, lowerSub string) bool {
	return strings.Contains(strings.ToLower(s), lowerSub)
}

func anyTagContains(tags []string, lowerSub string) bool {
	for _, t := range tags {
		if containsFold(t, lowerSub) {
			return true
		}
	}
	return false
}
