// Package server exposes the calculation engine over HTTP. The API is a thin
// JSON boundary: decode a case snapshot, run the engine, encode the report.
// Nothing is persisted server-side.
package server

import (
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/estatecalc/esc/internal/calculation"
	"github.com/estatecalc/esc/internal/config"
	"github.com/estatecalc/esc/internal/domain"
	"github.com/estatecalc/esc/internal/output"
)

// Server wires the engine to fasthttp.
type Server struct {
	engine *calculation.Engine
	parser *config.InputParser
	logger *zap.Logger
}

// New creates a server around a fresh engine. A nil logger disables logging.
func New(logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		engine: calculation.NewEngine(),
		parser: config.NewInputParser(),
		logger: logger,
	}
}

// ListenAndServe blocks serving the API on addr.
func (s *Server) ListenAndServe(addr string) error {
	s.logger.Info("elective share API listening", zap.String("addr", addr))
	if err := fasthttp.ListenAndServe(addr, s.Handler); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// Handler dispatches API requests. Exposed for tests.
func (s *Server) Handler(ctx *fasthttp.RequestCtx) {
	start := time.Now()
	path := string(ctx.Path())

	switch path {
	case "/api/calculate":
		s.handleCalculate(ctx)
	case "/api/quick":
		s.handleQuick(ctx)
	case "/healthz":
		ctx.SetStatusCode(fasthttp.StatusOK)
		ctx.SetBodyString("ok")
	default:
		s.writeError(ctx, fasthttp.StatusNotFound, "not found")
	}

	s.logger.Info("request",
		zap.String("path", path),
		zap.String("method", string(ctx.Method())),
		zap.Int("status", ctx.Response.StatusCode()),
		zap.Duration("elapsed", time.Since(start)))
}

// errorResponse is the JSON error envelope.
type errorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func (s *Server) handleCalculate(ctx *fasthttp.RequestCtx) {
	cf, ok := s.decodeCase(ctx)
	if !ok {
		return
	}

	report := &output.Report{
		Result:   s.engine.Run(cf),
		Warnings: s.engine.Warnings(cf),
	}
	s.writeJSON(ctx, fasthttp.StatusOK, report)
}

func (s *Server) handleQuick(ctx *fasthttp.RequestCtx) {
	cf, ok := s.decodeCase(ctx)
	if !ok {
		return
	}
	if cf.Quick == nil {
		s.writeError(ctx, fasthttp.StatusBadRequest, "quick totals are required")
		return
	}

	report := &output.Report{
		Result:   s.engine.CalculateQuick(cf.Basics, *cf.Quick),
		Warnings: s.engine.Warnings(cf),
	}
	s.writeJSON(ctx, fasthttp.StatusOK, report)
}

// decodeCase reads and normalizes the posted case snapshot. On failure it
// writes the error response and reports false.
func (s *Server) decodeCase(ctx *fasthttp.RequestCtx) (*domain.CaseFile, bool) {
	if !ctx.IsPost() {
		s.writeError(ctx, fasthttp.StatusMethodNotAllowed, "POST required")
		return nil, false
	}

	var cf domain.CaseFile
	if err := json.Unmarshal(ctx.PostBody(), &cf); err != nil {
		s.writeError(ctx, fasthttp.StatusBadRequest, "invalid request body: "+err.Error())
		return nil, false
	}
	s.parser.Normalize(&cf)
	return &cf, true
}

func (s *Server) writeJSON(ctx *fasthttp.RequestCtx, status int, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		s.logger.Error("encode response", zap.Error(err))
		s.writeError(ctx, fasthttp.StatusInternalServerError, "encoding failed")
		return
	}
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	ctx.SetBody(data)
}

func (s *Server) writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	data, _ := json.Marshal(errorResponse{Status: status, Message: message})
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	ctx.SetBody(data)
}
