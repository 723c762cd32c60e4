package api

import (
	"errors"
	"time"

	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/taxslab/regimeselect/internal/compare"
	"github.com/taxslab/regimeselect/internal/config"
	"github.com/taxslab/regimeselect/internal/domain"
)

// ErrorResponse is the JSON error envelope. Field is set when the failure
// is a rejected input value.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// Server exposes the regime comparator as a stateless JSON endpoint. Every
// request builds a fresh profile and result; there is no shared mutable
// state and no locking.
type Server struct {
	engine *compare.CompareEngine
	logger *zap.Logger
}

// NewServer creates a server over the given comparison engine.
func NewServer(engine *compare.CompareEngine, logger *zap.Logger) *Server {
	return &Server{engine: engine, logger: logger}
}

// ListenAndServe blocks serving HTTP on addr.
func (s *Server) ListenAndServe(addr string) error {
	s.logger.Info("regime comparison server starting", zap.String("addr", addr))
	return fasthttp.ListenAndServe(addr, s.Handler)
}

// Handler routes incoming requests.
func (s *Server) Handler(ctx *fasthttp.RequestCtx) {
	start := time.Now()

	switch {
	case string(ctx.Path()) == "/v1/compare" && ctx.IsPost():
		s.handleCompare(ctx)
	default:
		s.writeError(ctx, fasthttp.StatusNotFound, "not found", "")
	}

	s.logger.Info("request",
		zap.ByteString("method", ctx.Method()),
		zap.ByteString("path", ctx.Path()),
		zap.Int("status", ctx.Response.StatusCode()),
		zap.Duration("duration", time.Since(start)))
}

// handleCompare decodes an IncomeProfile, validates it, and returns the
// full ComparisonResult.
func (s *Server) handleCompare(ctx *fasthttp.RequestCtx) {
	var profile domain.IncomeProfile
	if err := json.Unmarshal(ctx.PostBody(), &profile); err != nil {
		s.writeError(ctx, fasthttp.StatusBadRequest, "invalid request body: "+err.Error(), "")
		return
	}

	if err := config.ValidateProfile(&profile); err != nil {
		var verr *config.ValidationError
		if errors.As(err, &verr) {
			s.writeError(ctx, fasthttp.StatusBadRequest, verr.Reason, verr.Field)
			return
		}
		s.writeError(ctx, fasthttp.StatusBadRequest, err.Error(), "")
		return
	}

	result := s.engine.Compare(&profile)
	s.writeJSON(ctx, fasthttp.StatusOK, result)
}

func (s *Server) writeJSON(ctx *fasthttp.RequestCtx, status int, v any) {
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	data, err := json.Marshal(v)
	if err != nil {
		s.logger.Error("failed to encode response", zap.Error(err))
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		return
	}
	ctx.SetBody(data)
}

func (s *Server) writeError(ctx *fasthttp.RequestCtx, status int, message, field string) {
	s.writeJSON(ctx, status, ErrorResponse{
		Status:  status,
		Message: message,
		Field:   field,
	})
}
