package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aretw0/automata"
	"github.com/aretw0/automata/internal/presentation/graph"
	"github.com/aretw0/automata/pkg/fsa"
	"github.com/aretw0/automata/pkg/ports"
	"github.com/aretw0/automata/pkg/schema"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 1 << 20

// Workbench is the subset of automata.Workbench the server needs.
type Workbench interface {
	List(ctx context.Context) ([]string, error)
	Get(ctx context.Context, name string) (*schema.Definition, error)
	Put(ctx context.Context, def *schema.Definition) error
	Delete(ctx context.Context, name string) error
	Check(ctx context.Context, name string) (*automata.Report, error)
	Accepts(ctx context.Context, name string, words ...[]string) ([]bool, error)
	Do(ctx context.Context, op string, inputs []string, opts ...automata.OpOption) (*automata.Result, error)
}

var _ Workbench = (*automata.Workbench)(nil)

// Server exposes a Workbench over HTTP.
type Server struct {
	Workbench Workbench
	metrics   http.Handler
	logger    *slog.Logger
}

type Option func(*Server)

// WithMetrics mounts h at /metrics.
func WithMetrics(h http.Handler) Option {
	return func(s *Server) {
		s.metrics = h
	}
}

// WithLogger sets the logger used for request failures.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewHandler creates a new HTTP handler for the workbench.
func NewHandler(wb Workbench, opts ...Option) http.Handler {
	s := &Server{Workbench: wb, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/health", s.GetHealth)
	r.Get("/info", s.GetInfo)
	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.metrics)
	}

	r.Route("/automata", func(r chi.Router) {
		r.Get("/", s.ListAutomata)
		r.Route("/{name}", func(r chi.Router) {
			r.Get("/", s.GetAutomaton)
			r.Put("/", s.PutAutomaton)
			r.Delete("/", s.DeleteAutomaton)
			r.Get("/check", s.CheckAutomaton)
			r.Post("/accept", s.Accept)
			r.Get("/graph", s.GetGraph)
		})
	})
	r.Post("/ops/{op}", s.RunOperation)

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// statusFor maps an error to the HTTP status reported to the client.
func statusFor(err error) int {
	var agg *schema.AggregateError
	var verr *schema.ValidationError
	switch {
	case errors.Is(err, ports.ErrNotFound), errors.Is(err, automata.ErrUnknownOperation):
		return http.StatusNotFound
	case errors.Is(err, automata.ErrInvalidArguments):
		return http.StatusBadRequest
	case errors.As(err, &agg), errors.As(err, &verr),
		errors.Is(err, fsa.ErrPreconditionViolated),
		errors.Is(err, fsa.ErrAlphabetMismatch),
		errors.Is(err, fsa.ErrDuplicateState),
		errors.Is(err, fsa.ErrUnknownState),
		errors.Is(err, fsa.ErrUnknownSymbol):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	} else {
		s.logger.Debug("request rejected", "method", r.Method, "path", r.URL.Path, "status", status, "error", err)
	}
	writeJSON(w, status, ErrorResponse{Error: err.Error()}, s.logger)
}

func writeJSON(w http.ResponseWriter, status int, v any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("response encode failed", "error", err)
	}
}

func badRequest(format string, args ...any) error {
	return fmt.Errorf("%w: %s", automata.ErrInvalidArguments, fmt.Sprintf(format, args...))
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, s.logger)
}

// GetInfo handles GET /info.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"app":        "fsa-http",
		"version":    strings.TrimSpace(automata.Version),
		"operations": automata.Operations(),
	}, s.logger)
}

// ListAutomata handles GET /automata.
func (s *Server) ListAutomata(w http.ResponseWriter, r *http.Request) {
	names, err := s.Workbench.List(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]string{"automata": names}, s.logger)
}

// GetAutomaton handles GET /automata/{name}. ?format=yaml returns YAML.
func (s *Server) GetAutomaton(w http.ResponseWriter, r *http.Request) {
	def, err := s.Workbench.Get(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if r.URL.Query().Get("format") == string(schema.FormatYAML) {
		data, err := schema.Marshal(def, schema.FormatYAML)
		if err != nil {
			s.fail(w, r, err)
			return
		}
		w.Header().Set("Content-Type", "application/yaml")
		w.Write(data)
		return
	}
	writeJSON(w, http.StatusOK, def, s.logger)
}

// PutAutomaton handles PUT /automata/{name}. The body is a JSON definition, or
// YAML when the Content-Type says so.
func (s *Server) PutAutomaton(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		s.fail(w, r, badRequest("unreadable body: %v", err))
		return
	}
	format := schema.FormatJSON
	if strings.Contains(r.Header.Get("Content-Type"), "yaml") {
		format = schema.FormatYAML
	}
	def, err := schema.Parse(data, format)
	if err != nil {
		s.fail(w, r, badRequest("%v", err))
		return
	}
	def.Name = chi.URLParam(r, "name")
	if err := s.Workbench.Put(r.Context(), def); err != nil {
		s.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteAutomaton handles DELETE /automata/{name}.
func (s *Server) DeleteAutomaton(w http.ResponseWriter, r *http.Request) {
	if err := s.Workbench.Delete(r.Context(), chi.URLParam(r, "name")); err != nil {
		s.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CheckAutomaton handles GET /automata/{name}/check.
func (s *Server) CheckAutomaton(w http.ResponseWriter, r *http.Request) {
	report, err := s.Workbench.Check(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, report, s.logger)
}

// AcceptRequest lists the words to run. Words are split with Separator (every
// character is a symbol when it is empty); Symbols gives pre-split words.
type AcceptRequest struct {
	Words     []string   `json:"words"`
	Separator string     `json:"separator"`
	Symbols   [][]string `json:"symbols"`
}

// AcceptResult is the outcome for one word.
type AcceptResult struct {
	Word     []string `json:"word"`
	Accepted bool     `json:"accepted"`
}

// Accept handles POST /automata/{name}/accept.
func (s *Server) Accept(w http.ResponseWriter, r *http.Request) {
	var body AcceptRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(&body); err != nil {
		s.fail(w, r, badRequest("invalid request body: %v", err))
		return
	}

	words := make([][]string, 0, len(body.Words)+len(body.Symbols))
	for _, word := range body.Words {
		words = append(words, schema.SplitWord(word, body.Separator))
	}
	words = append(words, body.Symbols...)

	got, err := s.Workbench.Accepts(r.Context(), chi.URLParam(r, "name"), words...)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	results := make([]AcceptResult, len(words))
	for i, word := range words {
		if word == nil {
			word = []string{}
		}
		results[i] = AcceptResult{Word: word, Accepted: got[i]}
	}
	writeJSON(w, http.StatusOK, map[string][]AcceptResult{"results": results}, s.logger)
}

// GetGraph handles GET /automata/{name}/graph. ?format=dot selects Graphviz
// instead of Mermaid.
func (s *Server) GetGraph(w http.ResponseWriter, r *http.Request) {
	def, err := s.Workbench.Get(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	var out string
	switch format := r.URL.Query().Get("format"); format {
	case "", "mermaid":
		out = graph.GenerateMermaid(def, nil)
	case "dot":
		out = graph.GenerateDot(def)
	default:
		s.fail(w, r, badRequest("unknown graph format %q", format))
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	io.WriteString(w, out)
}

// OperationRequest is the body of POST /ops/{op}.
type OperationRequest struct {
	Inputs      []string `json:"inputs"`
	SaveAs      string   `json:"save_as,omitempty"`
	Determinize bool     `json:"determinize,omitempty"`
	Sink        string   `json:"sink,omitempty"`
}

// RunOperation handles POST /ops/{op}.
func (s *Server) RunOperation(w http.ResponseWriter, r *http.Request) {
	var body OperationRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(&body); err != nil {
		s.fail(w, r, badRequest("invalid request body: %v", err))
		return
	}

	var opts []automata.OpOption
	if body.SaveAs != "" {
		opts = append(opts, automata.SaveAs(body.SaveAs))
	}
	if body.Determinize {
		opts = append(opts, automata.Determinized())
	}
	if body.Sink != "" {
		opts = append(opts, automata.WithSink(body.Sink))
	}

	res, err := s.Workbench.Do(r.Context(), chi.URLParam(r, "op"), body.Inputs, opts...)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res, s.logger)
}
