// Package editor exposes the corpus edit endpoints: add, replace and remove
// a word, plus a raw corpus dump. Edits rewrite the backing artifact
// wholesale; restoring a clean corpus is an external operation on the file.
package editor

import (
	"fmt"
	"net/http"

	"github.com/emicklei/go-restful/v3"
	"github.com/rs/zerolog/log"

	"github.com/dwood/corpus-search/internal/api/middleware"
	"github.com/dwood/corpus-search/internal/errs"
	"github.com/dwood/corpus-search/internal/validation"
)

// CorpusEditor is the store-side contract for the edit endpoints.
type CorpusEditor interface {
	ReplaceWord(oldWord, newWord string) (int, error)
	RemoveWord(word string) (int, error)
	AddWord(word string) error
	Words() []string
}

type Handler struct {
	store     CorpusEditor
	validator *validation.Validator
}

func NewHandler(store CorpusEditor) *Handler {
	return &Handler{
		store:     store,
		validator: validation.NewValidator(),
	}
}

// ReplaceWord handles PUT /api/v1/replace-word
func (h *Handler) ReplaceWord(req *restful.Request, resp *restful.Response) {
	var replaceRequest ReplaceWordRequest
	if err := req.ReadEntity(&replaceRequest); err != nil {
		log.Error().Err(err).Msg("Failed to parse replace request")
		resp.WriteHeaderAndJson(http.StatusBadRequest,
			middleware.ErrorResponse{Error: "Malformed request body"}, restful.MIME_JSON)
		return
	}

	if err := h.validateWords(replaceRequest.OldWord, replaceRequest.NewWord); err != nil {
		middleware.HandleError(resp, err)
		return
	}

	count, err := h.store.ReplaceWord(replaceRequest.OldWord, replaceRequest.NewWord)
	if err != nil {
		middleware.HandleError(resp, err)
		return
	}

	resp.WriteEntity(EditResponse{
		Message: fmt.Sprintf("Replaced %d occurrences of %q with %q in the corpus",
			count, replaceRequest.OldWord, replaceRequest.NewWord),
		Count: count,
	})
}

// RemoveWord handles DELETE /api/v1/remove-word?word=w
func (h *Handler) RemoveWord(req *restful.Request, resp *restful.Response) {
	word := req.QueryParameter("word")
	if err := h.validateWords(word); err != nil {
		middleware.HandleError(resp, err)
		return
	}

	count, err := h.store.RemoveWord(word)
	if err != nil {
		middleware.HandleError(resp, err)
		return
	}

	resp.WriteEntity(EditResponse{
		Message: fmt.Sprintf("Removed %d occurrences of %q from the corpus", count, word),
		Count:   count,
	})
}

// AddWord handles POST /api/v1/add-word
func (h *Handler) AddWord(req *restful.Request, resp *restful.Response) {
	var addRequest AddWordRequest
	if err := req.ReadEntity(&addRequest); err != nil {
		log.Error().Err(err).Msg("Failed to parse add request")
		resp.WriteHeaderAndJson(http.StatusBadRequest,
			middleware.ErrorResponse{Error: "Malformed request body"}, restful.MIME_JSON)
		return
	}

	if err := h.validateWords(addRequest.Word); err != nil {
		middleware.HandleError(resp, err)
		return
	}

	if err := h.store.AddWord(addRequest.Word); err != nil {
		middleware.HandleError(resp, err)
		return
	}

	resp.WriteHeaderAndEntity(http.StatusCreated, EditResponse{
		Message: fmt.Sprintf("Word %q added to the corpus", addRequest.Word),
	})
}

// GetCorpus handles GET /api/v1/corpus
func (h *Handler) GetCorpus(req *restful.Request, resp *restful.Response) {
	words := h.store.Words()
	resp.WriteEntity(CorpusResponse{Corpus: words, Count: len(words)})
}

func (h *Handler) validateWords(words ...string) error {
	for _, w := range words {
		if res := h.validator.Validate(w); !res.IsValid {
			return fmt.Errorf("%w: %s", errs.ErrEmptyQuery, res.Reason)
		}
	}
	return nil
}
