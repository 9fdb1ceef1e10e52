// Package selector merges the literal and expansion result sets into the
// final response: concatenate, deduplicate by sentence text, shuffle, cap.
// Shuffling is deliberate — repeated identical queries should surface
// different matches instead of always showing the same scan-order prefix.
package selector

import (
	"math/rand"
	"sync"
	"time"

	"github.com/dwood/corpus-search/internal/models"
)

// Selector samples merged result sets with a private random source. The
// source is injected so tests can fix the seed; production uses NewDefault.
type Selector struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New creates a Selector backed by the given source.
func New(src rand.Source) *Selector {
	return &Selector{rng: rand.New(src)}
}

// NewDefault creates a time-seeded Selector.
func NewDefault() *Selector {
	return New(rand.NewSource(time.Now().UnixNano()))
}

// Merge concatenates primary then secondary, drops duplicate sentences by
// exact text equality (the first occurrence keeps its trigger word),
// shuffles uniformly, and truncates to max. Sets at or under the cap are
// still shuffled so scan order never leaks as a ranking signal.
func (s *Selector) Merge(primary, secondary []models.SearchResult, max int) []models.SearchResult {
	seen := make(map[string]struct{}, len(primary)+len(secondary))
	merged := make([]models.SearchResult, 0, len(primary)+len(secondary))
	for _, r := range primary {
		if _, dup := seen[r.Text]; dup {
			continue
		}
		seen[r.Text] = struct{}{}
		merged = append(merged, r)
	}
	for _, r := range secondary {
		if _, dup := seen[r.Text]; dup {
			continue
		}
		seen[r.Text] = struct{}{}
		merged = append(merged, r)
	}

	s.mu.Lock()
	s.rng.Shuffle(len(merged), func(i, j int) {
		merged[i], merged[j] = merged[j], merged[i]
	})
	s.mu.Unlock()

	if max >= 0 && len(merged) > max {
		merged = merged[:max]
	}
	return merged
}
