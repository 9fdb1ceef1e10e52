package search

import "github.com/dwood/corpus-search/internal/models"

type SearchRequest struct {
	Query string `json:"query"`
}

type SearchResponse struct {
	Query   string                `json:"query"`
	Results []models.SearchResult `json:"results"`
	Count   int                   `json:"count"`
}

type SimilarWordsResponse struct {
	QueryWord    string               `json:"query_word"`
	SimilarWords []models.SimilarWord `json:"similar_words"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}
