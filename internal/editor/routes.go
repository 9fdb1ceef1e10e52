package editor

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

	ws.Route(ws.PUT("/replace-word").
		To(handler.ReplaceWord).
		Doc("Replace all occurrences of a word in the corpus").
		Metadata(restfulspec.KeyOpenAPITags, []string{"editor"}).
		Reads(ReplaceWordRequest{}).
		Writes(EditResponse{}).
		Returns(200, "OK", EditResponse{}).
		Returns(400, "Bad Request", middleware.ErrorResponse{}).
		Returns(404, "Word Not Found", middleware.ErrorResponse{}))

	ws.Route(ws.DELETE("/remove-word").
		To(handler.RemoveWord).
		Doc("Remove all occurrences of a word from the corpus").
		Metadata(restfulspec.KeyOpenAPITags, []string{"editor"}).
		Param(ws.QueryParameter("word", "Word to remove").DataType("string").Required(true)).
		Writes(EditResponse{}).
		Returns(200, "OK", EditResponse{}).
		Returns(400, "Bad Request", middleware.ErrorResponse{}).
		Returns(404, "Word Not Found", middleware.ErrorResponse{}))

	ws.Route(ws.POST("/add-word").
		To(handler.AddWord).
		Doc("Append a word to the corpus").
		Metadata(restfulspec.KeyOpenAPITags, []string{"editor"}).
		Reads(AddWordRequest{}).
		Writes(EditResponse{}).
		Returns(201, "Created", EditResponse{}).
		Returns(400, "Bad Request", middleware.ErrorResponse{}))

	ws.Route(ws.GET("/corpus").
		To(handler.GetCorpus).
		Doc("Dump the corpus word list").
		Metadata(restfulspec.KeyOpenAPITags, []string{"editor"}).
		Writes(CorpusResponse{}).
		Returns(200, "OK", CorpusResponse{}))

	container.Add(ws)
}
