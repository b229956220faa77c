package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/emicklei/go-restful/v3"
	"github.com/povarna/generative-ai-agents/web-rag-agent/internal/api/middleware"
	"github.com/povarna/generative-ai-agents/web-rag-agent/internal/models"
	"github.com/povarna/generative-ai-agents/web-rag-agent/internal/pipeline"
	"github.com/rs/zerolog"
)

const (
	LivenessMessage = "Web RAG agent is running"
	HeaderRequestID = "X-Request-ID"
	apiVersion      = "1.0.0"
)

// RAGService is the pipeline as seen by the HTTP layer.
type RAGService interface {
	Query(ctx context.Context, req models.QueryRequest) (*models.AnswerResult, error)
	Summarize(ctx context.Context, req models.SummaryRequest) (*models.AnswerResult, error)
}

type Handler struct {
	service RAGService
	logger  *zerolog.Logger
}

func NewHandler(service RAGService, logger *zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

func (h *Handler) Root(req *restful.Request, resp *restful.Response) {
	resp.Header().Set("Content-Type", "text/plain; charset=utf-8")
	resp.WriteHeader(http.StatusOK)
	_, _ = resp.Write([]byte(LivenessMessage))
}

func (h *Handler) Health(req *restful.Request, resp *restful.Response) {
	_ = resp.WriteEntity(HealthResponse{
		Status:  "healthy",
		Version: apiVersion,
	})
}

func (h *Handler) ProcessURLQuery(req *restful.Request, resp *restful.Response) {
	var body ProcessURLQueryRequest
	if err := req.ReadEntity(&body); err != nil {
		h.logger.Debug().Err(err).Msg("Invalid query request body")
		middleware.HandleError(resp, errors.New(pipeline.MsgMissingURLsOrQuery), http.StatusBadRequest)
		return
	}

	requestID := req.HeaderParameter(HeaderRequestID)
	result, err := h.service.Query(req.Request.Context(), models.QueryRequest{
		RequestID: requestID,
		URLs:      body.URLs,
		Query:     body.Query,
	})
	if err != nil {
		h.writeError(resp, err)
		return
	}

	sources := result.Sources
	if sources == nil {
		sources = []string{}
	}
	if err := resp.WriteHeaderAndEntity(http.StatusOK, ProcessURLQueryResponse{
		Answer:  result.Text,
		Sources: sources,
	}); err != nil {
		h.logger.Error().Err(err).Msg("Failed to write query response")
	}
}

func (h *Handler) ProcessURLSummary(req *restful.Request, resp *restful.Response) {
	var body ProcessURLSummaryRequest
	if err := req.ReadEntity(&body); err != nil {
		h.logger.Debug().Err(err).Msg("Invalid summary request body")
		middleware.HandleError(resp, errors.New(pipeline.MsgMissingURLs), http.StatusBadRequest)
		return
	}

	result, err := h.service.Summarize(req.Request.Context(), models.SummaryRequest{
		RequestID: req.HeaderParameter(HeaderRequestID),
		URLs:      body.URLs,
	})
	if err != nil {
		h.writeError(resp, err)
		return
	}

	if err := resp.WriteHeaderAndEntity(http.StatusOK, ProcessURLSummaryResponse{
		Answer: result.Text,
	}); err != nil {
		h.logger.Error().Err(err).Msg("Failed to write summary response")
	}
}

func (h *Handler) writeError(resp *restful.Response, err error) {
	var validationErr *pipeline.ValidationError
	switch {
	case errors.As(err, &validationErr):
		middleware.HandleError(resp, err, http.StatusBadRequest)
	case errors.Is(err, pipeline.ErrEmptyContent):
		middleware.HandleError(resp, err, http.StatusBadRequest)
	case errors.Is(err, pipeline.ErrTimeout):
		middleware.HandleError(resp, err, http.StatusGatewayTimeout)
	default:
		middleware.HandleError(resp, err, http.StatusInternalServerError)
	}
}
