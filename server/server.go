// Package server exposes the host over HTTP: slash commands, tool calls, the
// pre-inference prompt pipeline and Prometheus metrics.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/va6996/dateaware/host"
	"github.com/va6996/dateaware/log"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
)

// Server serves one host
type Server struct {
	host     *host.Host
	gatherer prometheus.Gatherer
	requests *prometheus.CounterVec
}

// New creates a server for h. Request counters are registered with reg,
// which is also what /metrics exposes.
func New(h *host.Host, reg *prometheus.Registry) *Server {
	s := &Server{
		host:     h,
		gatherer: reg,
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dateaware",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by route and status code.",
		}, []string{"route", "code"}),
	}
	if reg != nil {
		reg.MustRegister(s.requests)
	} else {
		s.gatherer = prometheus.NewRegistry()
	}
	return s
}

// CommandRequest is a chat line to route
type CommandRequest struct {
	Text string `json:"text"`
}

// CommandResponse reports whether a command matched and what it sent
type CommandResponse struct {
	Handled bool                `json:"handled"`
	Result  *host.CommandResult `json:"result,omitempty"`
	Replies []string            `json:"replies"`
}

// Handler returns the routed handler
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(s.metricsMiddleware)
	r.Use(corsMiddleware)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}).ServeHTTP)

	r.Route("/v1", func(r chi.Router) {
		r.Post("/commands", s.handleCommand)
		r.Post("/tools/{name}", s.handleTool)
		r.Post("/prompt", s.handlePrompt)
	})
	return r
}

func (s *Server) handleCommand(w http.ResponseWriter, r *http.Request) {
	var req CommandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	sender := &host.BufferSender{}
	res, handled := s.host.HandleCommand(r.Context(), req.Text, sender)
	resp := CommandResponse{Handled: handled, Replies: sender.Replies()}
	if handled {
		resp.Result = &res
	}
	if resp.Replies == nil {
		resp.Replies = []string{}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleTool(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if !s.host.Tools.Has(name) {
		writeError(w, http.StatusNotFound, fmt.Errorf("tool not found: %s", name))
		return
	}

	args := map[string]interface{}{}
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&args); err != nil {
			writeError(w, http.StatusBadRequest, fmt.Errorf("invalid tool arguments: %w", err))
			return
		}
	}

	out, err := s.host.CallTool(r.Context(), name, args)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handlePrompt(w http.ResponseWriter, r *http.Request) {
	var msg host.Message
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}
	writeJSON(w, http.StatusOK, s.host.PrepareGeneration(r.Context(), &msg))
}

// Run serves on addr with h2c until ctx is cancelled
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h2c.NewHandler(s.Handler(), &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		log.Info(context.Background(), "Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Infof(ctx, "Starting server on %s", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}
