package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/kumarlokesh/wordbreak/internal/batch"
	"github.com/kumarlokesh/wordbreak/internal/dictionary"
	"github.com/kumarlokesh/wordbreak/internal/segmenter"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// maxQueries caps the number of queries in one POST /v1/segment request
const maxQueries = 1000

// WordLookup answers exact membership questions
type WordLookup interface {
	Contains(word string) bool
}

// Checker answers segmentation questions
type Checker interface {
	CanSegment(text string) bool
}

// Server represents the HTTP API server
type Server struct {
	words   WordLookup
	checker Checker
	server  *http.Server
	logger  zerolog.Logger
	metrics *metrics
	workers int
}

// Option configures a Server
type Option func(*Server)

// WithLogger sets the logger for the server
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithWorkerCount sets how many queries of one batch request run at once
func WithWorkerCount(count int) Option {
	return func(s *Server) {
		if count > 0 {
			s.workers = count
		}
	}
}

// NewServer creates a new API server
func NewServer(addr string, words WordLookup, checker Checker, opts ...Option) *Server {
	s := &Server{
		words:   words,
		checker: checker,
		logger:  zerolog.Nop(),
		workers: 1,
	}
	for _, opt := range opts {
		opt(s)
	}

	registry := prometheus.NewRegistry()
	s.metrics = newMetrics(registry)

	r := mux.NewRouter()
	r.Use(requestID, s.accessLog)

	r.HandleFunc("/health", s.health).Methods(http.MethodGet)
	r.HandleFunc("/v1/words/{word}", s.lookupWord).Methods(http.MethodGet)
	r.HandleFunc("/v1/segment", s.segmentQuery).Methods(http.MethodGet)
	r.HandleFunc("/v1/segment", s.segmentBatch).Methods(http.MethodPost)
	r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	s.server = &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return s
}

// Handler returns the HTTP handler for the server
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Addr returns the address the server is configured to listen on
func (s *Server) Addr() string {
	return s.server.Addr
}

// Start listens on the configured address and serves until Shutdown
func (s *Server) Start() error {
	listener, err := net.Listen("tcp", s.server.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.server.Addr, err)
	}

	s.logger.Info().Str("addr", listener.Addr().String()).Msg("Server listening")
	if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// Shutdown gracefully stops the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

type wordResponse struct {
	Word  string `json:"word"`
	Found bool   `json:"found"`
}

type segmentResponse struct {
	Query       string `json:"query"`
	Segmentable bool   `json:"segmentable"`
	Message     string `json:"message"`
}

type batchRequest struct {
	Queries []string `json:"queries"`
}

type batchResponse struct {
	Results []segmentResponse `json:"results"`
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) lookupWord(w http.ResponseWriter, r *http.Request) {
	word := dictionary.Lower(mux.Vars(r)["word"])
	writeJSON(w, http.StatusOK, wordResponse{Word: word, Found: s.words.Contains(word)})
}

func (s *Server) segmentQuery(w http.ResponseWriter, r *http.Request) {
	values, ok := r.URL.Query()["q"]
	if !ok || len(values) == 0 {
		writeError(w, http.StatusBadRequest, "missing query parameter q")
		return
	}

	writeJSON(w, http.StatusOK, s.segment(values[0]))
}

func (s *Server) segmentBatch(w http.ResponseWriter, r *http.Request) {
	var req batchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.Queries) > maxQueries {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("too many queries: %d > %d", len(req.Queries), maxQueries))
		return
	}

	queries := make([]string, len(req.Queries))
	for i, q := range req.Queries {
		queries[i] = dictionary.Lower(q)
	}

	results, err := batch.Run(r.Context(), queries, s.check, s.workers)
	if err != nil {
		s.logger.Warn().Err(err).Msg("Batch request aborted")
		writeError(w, http.StatusServiceUnavailable, "request cancelled")
		return
	}

	resp := batchResponse{Results: make([]segmentResponse, len(results))}
	for i, res := range results {
		resp.Results[i] = segmentResponse{
			Query:       req.Queries[i],
			Segmentable: res.Segmentable,
			Message:     segmenter.Verdict(res.Segmentable),
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) segment(query string) segmentResponse {
	ok := s.check(dictionary.Lower(query))
	return segmentResponse{Query: query, Segmentable: ok, Message: segmenter.Verdict(ok)}
}

// check runs one segmentation and records it
func (s *Server) check(text string) bool {
	start := time.Now()
	ok := s.checker.CanSegment(text)
	s.metrics.observe(ok, time.Since(start))
	return ok
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
