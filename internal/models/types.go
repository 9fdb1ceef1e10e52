package models

// SearchResult is one matched sentence together with the word that matched
// it. MatchedTerm is either the literal query or one of its expansion words
// and is what the frontend highlights.
type SearchResult struct {
	Text        string `json:"text"`
	MatchedTerm string `json:"matched_term"`
	Snippet     string `json:"snippet,omitempty"`
}

// SimilarWord is a single expansion candidate. Rank is the model-assigned
// position (1 = nearest); no numeric score is surfaced beyond ordering.
type SimilarWord struct {
	Word string `json:"word"`
	Rank int    `json:"rank"`
}
