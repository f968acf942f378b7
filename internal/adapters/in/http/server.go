// Package http exposes the tool surface over HTTP. Transport stays thin:
// every invocation is delegated to the envelope, which owns run ids, audit
// rows, and error folding, so handler failures come back as a 200 with
// OK=false rather than a transport error.
package http

import (
	"errors"
	"io"
	"net/http"

	"lastmile/internal/core/application/envelope"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server handles HTTP requests for tool invocation and operational endpoints.
type Server struct {
	env      *envelope.Envelope
	gatherer prometheus.Gatherer
}

// NewServer creates a new HTTP server over the given envelope. The gatherer
// backs the /metrics endpoint and may be nil to disable it.
func NewServer(env *envelope.Envelope, gatherer prometheus.Gatherer) *Server {
	return &Server{
		env:      env,
		gatherer: gatherer,
	}
}

// RegisterRoutes attaches all endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)
	e.GET("/tools", s.ListTools)
	e.POST("/tools/:name", s.InvokeTool)

	if s.gatherer != nil {
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})))
	}
}

type errorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// ListTools handles GET /tools - returns all registered tool descriptors.
func (s *Server) ListTools(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, s.env.Tools())
}

// InvokeTool handles POST /tools/:name - runs one tool with the request body
// as raw JSON arguments.
func (s *Server) InvokeTool(ctx echo.Context) error {
	name := ctx.Param("name")

	raw, err := io.ReadAll(ctx.Request().Body)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorBody{
			Code:    http.StatusBadRequest,
			Message: "Failed to read request body",
		})
	}

	response, err := s.env.Invoke(ctx.Request().Context(), name, raw)
	if err != nil {
		var notFound envelope.ErrToolNotFound
		if errors.As(err, &notFound) {
			return ctx.JSON(http.StatusNotFound, errorBody{
				Code:    http.StatusNotFound,
				Message: notFound.Error(),
			})
		}
		return ctx.JSON(http.StatusInternalServerError, errorBody{
			Code:    http.StatusInternalServerError,
			Message: "Failed to invoke tool",
		})
	}

	return ctx.JSON(http.StatusOK, response)
}
