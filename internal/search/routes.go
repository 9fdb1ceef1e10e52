package search

import (
	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	"github.com/emicklei/go-restful/v3"

	"github.com/dwood/corpus-search/internal/api/middleware"
)

func RegisterRoutes(container *restful.Container, handler *Handler) {
	ws := new(restful.WebService)
	ws.
		Path("/api/v1").
		Consumes(restful.MIME_JSON).
		Produces(restful.MIME_JSON)

	ws.Route(ws.GET("/health").
		To(handler.Health).
		Doc("Health check").
		Metadata(restfulspec.KeyOpenAPITags, []string{"health"}).
		Writes(HealthResponse{}).
		Returns(200, "OK", HealthResponse{}))

	ws.Route(ws.POST("/search").
		To(handler.Search).
		Doc("Two-stage sentence search with embedding fallback").
		Metadata(restfulspec.KeyOpenAPITags, []string{"search"}).
		Reads(SearchRequest{}).
		Writes(SearchResponse{}).
		Returns(200, "OK", SearchResponse{}).
		Returns(400, "Bad Request", middleware.ErrorResponse{}).
		Returns(404, "No Results", middleware.ErrorResponse{}).
		Returns(503, "Not Ready", middleware.ErrorResponse{}))

	ws.Route(ws.GET("/similar-words").
		To(handler.SimilarWords).
		Doc("Nearest-neighbor words for a query word").
		Metadata(restfulspec.KeyOpenAPITags, []string{"search"}).
		Param(ws.QueryParameter("w", "Query word").DataType("string").Required(true)).
		Writes(SimilarWordsResponse{}).
		Returns(200, "OK", SimilarWordsResponse{}).
		Returns(400, "Bad Request", middleware.ErrorResponse{}).
		Returns(404, "Unknown Word", middleware.ErrorResponse{}))

	container.Add(ws)
}
