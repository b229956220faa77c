package api

import (
	"errors"
	"net/http"
	"strings"

	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	"github.com/emicklei/go-restful/v3"
	"github.com/povarna/generative-ai-agents/web-rag-agent/internal/api/middleware"
)

func RegisterRoutes(container *restful.Container, handler *Handler) {
	container.ServiceErrorHandler(writeServiceError)
	registerRAGRoutes(container, handler)
	registerHealthRoutes(container, handler)
}

// writeServiceError renders routing failures (404, 405, 406, 415) as JSON.
func writeServiceError(serviceErr restful.ServiceError, _ *restful.Request, resp *restful.Response) {
	for key, values := range serviceErr.Header {
		for _, value := range values {
			resp.Header().Add(key, value)
		}
	}

	// No route matched, so there is no Produces list to negotiate against.
	resp.SetRequestAccepts(restful.MIME_JSON)

	message := http.StatusText(serviceErr.Code)
	if message == "" {
		message = strings.TrimSpace(serviceErr.Message)
	}
	middleware.HandleError(resp, errors.New(message), serviceErr.Code)
}

// registerRAGRoutes mounts the endpoints the web frontend calls at the root.
func registerRAGRoutes(container *restful.Container, handler *Handler) {
	ws := new(restful.WebService)
	ws.Path("/")

	ws.
		Route(ws.GET("/").
			To(handler.Root).
			Doc("Liveness probe").
			Metadata(restfulspec.KeyOpenAPITags, []string{"health"}).
			Produces("text/plain").
			Returns(200, "OK", nil))

	queryRoute := func(path string) *restful.RouteBuilder {
		return ws.POST(path).
			To(handler.ProcessURLQuery).
			Consumes(restful.MIME_JSON).
			Produces(restful.MIME_JSON).
			Param(ws.HeaderParameter(HeaderRequestID, "Optional request id used in logs").DataType("string").Required(false)).
			Metadata(restfulspec.KeyOpenAPITags, []string{"query"}).
			Reads(ProcessURLQueryRequest{}).
			Writes(ProcessURLQueryResponse{}).
			Returns(200, "OK", ProcessURLQueryResponse{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}).
			Returns(504, "Gateway Timeout", middleware.ErrorResponse{})
	}

	ws.Route(queryRoute("/process_url_query").
		Doc("Answer a question from the given pages and the pages they link to"))

	ws.Route(queryRoute("/process_url").
		Doc("Alias of /process_url_query"))

	ws.
		Route(ws.POST("/process_url_summary").
			To(handler.ProcessURLSummary).
			Doc("Summarize the given pages").
			Consumes(restful.MIME_JSON).
			Produces(restful.MIME_JSON).
			Param(ws.HeaderParameter(HeaderRequestID, "Optional request id used in logs").DataType("string").Required(false)).
			Metadata(restfulspec.KeyOpenAPITags, []string{"summary"}).
			Reads(ProcessURLSummaryRequest{}).
			Writes(ProcessURLSummaryResponse{}).
			Returns(200, "OK", ProcessURLSummaryResponse{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}).
			Returns(504, "Gateway Timeout", middleware.ErrorResponse{}))

	container.Add(ws)
}

func registerHealthRoutes(container *restful.Container, handler *Handler) {
	ws := new(restful.WebService)

	ws.
		Path("/api/v1").
		Consumes(restful.MIME_JSON).
		Produces(restful.MIME_JSON)

	ws.
		Route(ws.GET("health").
			To(handler.Health).
			Doc("Health check").
			Metadata(restfulspec.KeyOpenAPITags, []string{"health"}).
			Writes(HealthResponse{}).
			Returns(200, "OK", HealthResponse{}))

	container.Add(ws)
}
