package services

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/kerbaras/gita/pkg/data"
)

// minTokenLength is the shortest token that takes part in scoring.
const minTokenLength = 4

const (
	tagWeight        = 2
	reflectionWeight = 1
	englishWeight    = 1
)

// Matcher answers free-text questions with the best keyword match from
// the catalog. It is a plain overlap heuristic, not semantic search.
type Matcher struct {
	repo *VerseRepository
}

func NewMatcher(repo *VerseRepository) *Matcher {
	return &Matcher{repo: repo}
}

// Match scores every verse against the question and returns the first
// verse with the highest score. When nothing scores above zero it falls
// back to a random verse, so it always returns a verse.
func (m *Matcher) Match(question string) data.Verse {
	tokens := tokenize(question)

	var best data.Verse
	bestScore := 0
	for _, v := range m.repo.verses {
		score := Score(v, tokens)
		if score > bestScore {
			bestScore = score
			best = v
		}
	}

	if bestScore == 0 {
		return m.repo.Random()
	}
	return best
}

// Ask waits for delay before matching, the pause the UI shows as
// "seeking wisdom". It returns early with ctx's error if ctx is done.
func (m *Matcher) Ask(ctx context.Context, question string, delay time.Duration) (data.Verse, error) {
	if delay > 0 {
		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return data.Verse{}, ctx.Err()
		case <-timer.C:
		}
	}
	return m.Match(question), nil
}

// Score computes the keyword score of v for already lower-cased tokens.
func Score(v data.Verse, tokens []string) int {
	reflection := strings.ToLower(v.Reflection)
	english := strings.ToLower(v.English)

	score := 0
	for _, tok := range tokens {
		if utf8.RuneCountInString(tok) < minTokenLength {
			continue
		}
		for _, tag := range v.Tags {
			if strings.Contains(strings.ToLower(tag), tok) {
				score += tagWeight
			}
		}
		if strings.Contains(reflection, tok) {
			score += reflectionWeight
		}
		if strings.Contains(english, tok) {
			score += englishWeight
		}
	}
	return score
}

func tokenize(question string) []string {
	fields := strings.Fields(question)
	for i, f := range fields {
		fields[i] = strings.ToLower(f)
	}
	return fields
}
