package search

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/dwood/corpus-search/internal/errs"
	"github.com/dwood/corpus-search/internal/models"
	"github.com/dwood/corpus-search/internal/validation"
)

// Service runs the two-stage retrieval: a literal corpus scan first, then an
// embedding-expanded scan when the literal pass finds fewer than Threshold
// sentences. Expansion is a fallback rather than a default because the
// literal scan is cheap and exact; the model lookup trades precision for
// recall and is only paid for when needed.
type Service struct {
	store     SentenceSearcher
	index     SimilarWordFinder
	merger    ResultMerger
	validator *validation.Validator
	logger    *zerolog.Logger

	// threshold is the literal hit count that skips expansion, and also the
	// result cap.
	threshold int
	// expansionK is how many similar words the fallback consults.
	expansionK int
}

// NewService wires the coordinator over its three collaborators.
func NewService(store SentenceSearcher, index SimilarWordFinder, merger ResultMerger,
	threshold, expansionK int, logger *zerolog.Logger) *Service {
	return &Service{
		store:      store,
		index:      index,
		merger:     merger,
		validator:  validation.NewValidator(),
		logger:     logger,
		threshold:  threshold,
		expansionK: expansionK,
	}
}

// Search resolves a query to at most threshold sentences.
//
// Outcomes:
//   - enough literal hits: a shuffled sample of them, no model access;
//   - too few literal hits: literal plus expansion hits merged and sampled —
//     fewer than threshold results is still a valid partial answer;
//   - query without a vector in the model: ErrUnknownWord, which the HTTP
//     layer reports as "no matching or similar sentences found", distinct
//     from an internal failure.
func (s *Service) Search(query string) ([]models.SearchResult, error) {
	if res := s.validator.Validate(query); !res.IsValid {
		return nil, fmt.Errorf("%w: %s", errs.ErrEmptyQuery, res.Reason)
	}

	primary, err := s.store.FindMatchingSentences(query)
	if err != nil {
		return nil, fmt.Errorf("literal search failed: %w", err)
	}

	if len(primary) >= s.threshold {
		s.logger.Debug().
			Str("query", query).
			Int("literal_hits", len(primary)).
			Msg("Literal search satisfied query")
		return s.merger.Merge(primary, nil, s.threshold), nil
	}

	words, err := s.index.SimilarWords(query, s.expansionK)
	if err != nil {
		if errors.Is(err, errs.ErrUnknownWord) {
			s.logger.Info().
				Str("query", query).
				Int("literal_hits", len(primary)).
				Msg("Query has no embedding vector, no expansion possible")
		}
		return nil, err
	}

	secondary, err := s.store.FindSentencesForWords(words)
	if err != nil {
		return nil, fmt.Errorf("expansion search failed: %w", err)
	}

	s.logger.Debug().
		Str("query", query).
		Strs("similar_words", words).
		Int("literal_hits", len(primary)).
		Int("expansion_hits", len(secondary)).
		Msg("Expanded search")

	return s.merger.Merge(primary, secondary, s.threshold), nil
}

// SimilarWords exposes the raw expansion lookup for the similar-words
// endpoint.
func (s *Service) SimilarWords(query string) ([]models.SimilarWord, error) {
	if res := s.validator.Validate(query); !res.IsValid {
		return nil, fmt.Errorf("%w: %s", errs.ErrEmptyQuery, res.Reason)
	}

	words, err := s.index.SimilarWords(query, s.expansionK)
	if err != nil {
		return nil, err
	}

	similar := make([]models.SimilarWord, len(words))
	for i, w := range words {
		similar[i] = models.SimilarWord{Word: w, Rank: i + 1}
	}
	return similar, nil
}
