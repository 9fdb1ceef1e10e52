package search

import "github.com/dwood/corpus-search/internal/models"

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

// SentenceSearcher is the corpus-side contract the coordinator needs.
type SentenceSearcher interface {
	FindMatchingSentences(word string) ([]models.SearchResult, error)
	FindSentencesForWords(words []string) ([]models.SearchResult, error)
}

// SimilarWordFinder answers nearest-neighbor queries for a single word.
type SimilarWordFinder interface {
	SimilarWords(word string, k int) ([]string, error)
}

// ResultMerger combines the literal and expansion result sets into the
// capped response set.
type ResultMerger interface {
	Merge(primary, secondary []models.SearchResult, max int) []models.SearchResult
}
