package editor

type ReplaceWordRequest struct {
	OldWord string `json:"old_word"`
	NewWord string `json:"new_word"`
}

type AddWordRequest struct {
	Word string `json:"word"`
}

type EditResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count,omitempty"`
}

type CorpusResponse struct {
	Corpus []string `json:"corpus"`
	Count  int      `json:"count"`
}
