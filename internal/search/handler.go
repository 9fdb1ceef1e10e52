package search

import (
	"net/http"

	"github.com/emicklei/go-restful/v3"
	"github.com/rs/zerolog/log"

	"github.com/dwood/corpus-search/internal/api/middleware"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Search handles POST /api/v1/search
func (h *Handler) Search(req *restful.Request, resp *restful.Response) {
	var searchRequest SearchRequest
	if err := req.ReadEntity(&searchRequest); err != nil {
		log.Error().Err(err).Msg("Failed to parse search request")
		resp.WriteHeaderAndJson(http.StatusBadRequest,
			middleware.ErrorResponse{Error: "Malformed request body"}, restful.MIME_JSON)
		return
	}

	results, err := h.service.Search(searchRequest.Query)
	if err != nil {
		middleware.HandleError(resp, err)
		return
	}

	response := SearchResponse{
		Query:   searchRequest.Query,
		Results: results,
		Count:   len(results),
	}
	resp.WriteEntity(response)
}

// SimilarWords handles GET /api/v1/similar-words?w=word
func (h *Handler) SimilarWords(req *restful.Request, resp *restful.Response) {
	queryWord := req.QueryParameter("w")

	similar, err := h.service.SimilarWords(queryWord)
	if err != nil {
		middleware.HandleError(resp, err)
		return
	}

	response := SimilarWordsResponse{
		QueryWord:    queryWord,
		SimilarWords: similar,
	}
	resp.WriteEntity(response)
}

// Health handles GET /api/v1/health
func (h *Handler) Health(req *restful.Request, resp *restful.Response) {
	resp.WriteHeaderAndEntity(http.StatusOK, HealthResponse{
		Status:  "ok",
		Version: "1.0.0",
	})
}
