// Package embedding wraps a pre-trained word-vector model and answers
// nearest-neighbor queries for single words. The model artifact is the
// word2vec text format: an optional "<count> <dim>" header line followed by
// one "word v1 .. vdim" line per entry. The index is immutable after Load
// and safe for concurrent reads.
package embedding

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/rs/zerolog/log"

	"github.com/dwood/corpus-search/internal/corpus"
	"github.com/dwood/corpus-search/internal/errs"
)

// maxLineBytes bounds a single vector line; 300-dim float text fits well
// under this.
const maxLineBytes = 1 << 20

// CandidateFilter restricts which vocabulary words may be returned as
// neighbors. The stock filter keeps the historical coupling to corpus
// presence: a model word that never occurs in the corpus is not offered as
// an expansion, because a sentence scan for it cannot hit anything anyway.
type CandidateFilter func(word string) bool

// Index is a loaded word-vector model.
type Index struct {
	dim    int
	order  []string             // vocabulary in model file order
	vecs   map[string][]float32 // normalized word -> vector
	filter CandidateFilter
	ready  atomic.Bool
}

// NewIndex creates an empty index. filter may be nil, meaning every model
// word is a valid neighbor candidate.
func NewIndex(filter CandidateFilter) *Index {
	return &Index{
		vecs:   make(map[string][]float32),
		filter: filter,
	}
}

// Load reads the model artifact from path. It must complete before the first
// SimilarWords call; lookups against an unloaded index fail with ErrNotReady.
func (ix *Index) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening vector model %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), maxLineBytes)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)

		// Header line: "<count> <dim>".
		if lineNo == 1 && len(fields) == 2 {
			if _, err := strconv.Atoi(fields[0]); err == nil {
				if dim, err := strconv.Atoi(fields[1]); err == nil {
					ix.dim = dim
					continue
				}
			}
		}

		if len(fields) < 2 {
			return fmt.Errorf("malformed vector model %s: line %d has no vector", path, lineNo)
		}
		word := corpus.Normalize(fields[0])
		vec := make([]float32, len(fields)-1)
		for i, field := range fields[1:] {
			v, err := strconv.ParseFloat(field, 32)
			if err != nil {
				return fmt.Errorf("malformed vector model %s: line %d: %w", path, lineNo, err)
			}
			vec[i] = float32(v)
		}

		if ix.dim == 0 {
			ix.dim = len(vec)
		} else if len(vec) != ix.dim {
			return fmt.Errorf("malformed vector model %s: line %d has %d dims, want %d",
				path, lineNo, len(vec), ix.dim)
		}

		if _, dup := ix.vecs[word]; !dup {
			ix.order = append(ix.order, word)
		}
		ix.vecs[word] = vec
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading vector model %s: %w", path, err)
	}
	if len(ix.vecs) == 0 {
		return fmt.Errorf("vector model %s contains no vectors", path)
	}

	ix.ready.Store(true)
	log.Info().
		Str("path", path).
		Int("words", len(ix.vecs)).
		Int("dimension", ix.dim).
		Msg("Embedding model loaded")
	return nil
}

// Ready reports whether the model has finished loading.
func (ix *Index) Ready() bool {
	return ix.ready.Load()
}

// VocabularySize returns the number of distinct words in the model.
func (ix *Index) VocabularySize() int {
	return len(ix.vecs)
}

// SimilarWords returns up to k nearest neighbors of word by cosine
// similarity, best first. A word with no vector in the model fails with
// ErrUnknownWord; candidates rejected by the filter are skipped.
func (ix *Index) SimilarWords(word string, k int) ([]string, error) {
	if !ix.Ready() {
		return nil, errs.ErrNotReady
	}
	word = corpus.Normalize(strings.TrimSpace(word))
	if word == "" {
		return nil, errs.ErrEmptyQuery
	}

	query, ok := ix.vecs[word]
	if !ok {
		return nil, fmt.Errorf("%w: %q", errs.ErrUnknownWord, word)
	}
	if k <= 0 {
		return nil, nil
	}

	type scored struct {
		word  string
		score float64
	}
	candidates := make([]scored, 0, len(ix.order))
	for _, w := range ix.order {
		if w == word {
			continue
		}
		if ix.filter != nil && !ix.filter(w) {
			continue
		}
		candidates = append(candidates, scored{word: w, score: cosine(query, ix.vecs[w])})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	if len(candidates) > k {
		candidates = candidates[:k]
	}
	words := make([]string, len(candidates))
	for i, c := range candidates {
		words[i] = c.word
	}
	return words, nil
}

// cosine computes the cosine similarity of two equal-length vectors.
// Zero-magnitude vectors score 0.
func cosine(a, b []float32) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
