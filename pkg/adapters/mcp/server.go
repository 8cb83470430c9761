package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/automata"
	"github.com/aretw0/automata/pkg/schema"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// ResourceScheme prefixes the URI of every stored automaton.
const ResourceScheme = "automata://"

// Workbench is the subset of automata.Workbench the MCP server needs.
type Workbench interface {
	List(ctx context.Context) ([]string, error)
	Get(ctx context.Context, name string) (*schema.Definition, error)
	Check(ctx context.Context, name string) (*automata.Report, error)
	Accepts(ctx context.Context, name string, words ...[]string) ([]bool, error)
	Do(ctx context.Context, op string, inputs []string, opts ...automata.OpOption) (*automata.Result, error)
}

var _ Workbench = (*automata.Workbench)(nil)

// ListResponse is the output of list_automata.
type ListResponse struct {
	Automata []string `json:"automata" jsonschema_description:"Names of the stored automata"`
}

// AcceptResponse is the output of accept_words.
type AcceptResponse struct {
	Results []WordResult `json:"results" jsonschema_description:"One entry per word, in input order"`
}

type WordResult struct {
	Word     string `json:"word"`
	Accepted bool   `json:"accepted"`
}

// CompareResponse is the output of compare.
type CompareResponse struct {
	Operation string `json:"operation"`
	Left      string `json:"left"`
	Right     string `json:"right"`
	Verdict   bool   `json:"verdict" jsonschema_description:"Whether the inclusion or equivalence holds"`
}

// Server wraps a Workbench and exposes it as an MCP Server.
type Server struct {
	wb        Workbench
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(wb Workbench) *Server {
	s := &Server{
		wb:        wb,
		mcpServer: server.NewMCPServer("fsa-mcp", strings.TrimSpace(automata.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE serves the SSE transport on addr until ctx is cancelled.
func (s *Server) ServeSSE(ctx context.Context, addr, baseURL string) error {
	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	serverErrors := make(chan error, 1)
	go func() {
		slog.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	// TOOL: list_automata
	s.mcpServer.AddTool(mcp.NewTool("list_automata",
		mcp.WithDescription("List the names of the stored automata."),
		mcp.WithOutputSchema[ListResponse](),
	), mcp.NewStructuredToolHandler(s.handleList))

	// TOOL: check_automaton
	s.mcpServer.AddTool(mcp.NewTool("check_automaton",
		mcp.WithDescription("Report whether an automaton is deterministic, complete and empty, with its reachable and useful states."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Automaton name")),
		mcp.WithOutputSchema[automata.Report](),
	), mcp.NewStructuredToolHandler(s.handleCheck))

	// TOOL: accept_words
	s.mcpServer.AddTool(mcp.NewTool("accept_words",
		mcp.WithDescription("Run words through an automaton and report which are accepted."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Automaton name")),
		mcp.WithArray("words", mcp.Required(), mcp.Description("Words to run"), mcp.Items(map[string]any{"type": "string"})),
		mcp.WithString("separator", mcp.Description("Symbol separator; every character is a symbol when omitted")),
		mcp.WithOutputSchema[AcceptResponse](),
	), mcp.NewStructuredToolHandler(s.handleAccept))

	// TOOL: combine
	s.mcpServer.AddTool(mcp.NewTool("combine",
		mcp.WithDescription("Build the union or the intersection of two automata."),
		mcp.WithString("operation", mcp.Required(), mcp.Enum(automata.OpUnion, automata.OpIntersection)),
		mcp.WithString("left", mcp.Required(), mcp.Description("Left operand")),
		mcp.WithString("right", mcp.Required(), mcp.Description("Right operand")),
		mcp.WithString("save_as", mcp.Description("Store the result under this name")),
		mcp.WithOutputSchema[schema.Definition](),
	), mcp.NewStructuredToolHandler(s.handleCombine))

	// TOOL: transform
	s.mcpServer.AddTool(mcp.NewTool("transform",
		mcp.WithDescription("Apply a unary construction to an automaton."),
		mcp.WithString("operation", mcp.Required(), mcp.Enum(
			automata.OpComplement, automata.OpMirror, automata.OpTrim, automata.OpDeterminize, automata.OpComplete)),
		mcp.WithString("name", mcp.Required(), mcp.Description("Automaton name")),
		mcp.WithString("save_as", mcp.Description("Store the result under this name")),
		mcp.WithString("sink", mcp.Description("Name of the state added by complete")),
		mcp.WithBoolean("determinize", mcp.Description("Apply the subset construction to the input first")),
		mcp.WithOutputSchema[schema.Definition](),
	), mcp.NewStructuredToolHandler(s.handleTransform))

	// TOOL: compare
	s.mcpServer.AddTool(mcp.NewTool("compare",
		mcp.WithDescription("Check language inclusion (left ⊆ right) or equivalence of two automata."),
		mcp.WithString("operation", mcp.Required(), mcp.Enum(automata.OpIncludes, automata.OpEquivalent)),
		mcp.WithString("left", mcp.Required(), mcp.Description("Left operand")),
		mcp.WithString("right", mcp.Required(), mcp.Description("Right operand")),
		mcp.WithBoolean("determinize", mcp.Description("Apply the subset construction to both inputs first")),
		mcp.WithOutputSchema[CompareResponse](),
	), mcp.NewStructuredToolHandler(s.handleCompare))
}

// Handler methods for structured tools

func (s *Server) handleList(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (ListResponse, error) {
	names, err := s.wb.List(ctx)
	if err != nil {
		return ListResponse{}, fmt.Errorf("list failed: %w", err)
	}
	return ListResponse{Automata: names}, nil
}

func (s *Server) handleCheck(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (automata.Report, error) {
	name, _ := args["name"].(string)
	r, err := s.wb.Check(ctx, name)
	if err != nil {
		return automata.Report{}, fmt.Errorf("check failed: %w", err)
	}
	return *r, nil
}

func (s *Server) handleAccept(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (AcceptResponse, error) {
	name, _ := args["name"].(string)
	sep, _ := args["separator"].(string)

	raw, _ := args["words"].([]interface{})
	texts := make([]string, 0, len(raw))
	words := make([][]string, 0, len(raw))
	for _, item := range raw {
		text, ok := item.(string)
		if !ok {
			return AcceptResponse{}, fmt.Errorf("words must be strings, got %T", item)
		}
		texts = append(texts, text)
		words = append(words, schema.SplitWord(text, sep))
	}

	got, err := s.wb.Accepts(ctx, name, words...)
	if err != nil {
		return AcceptResponse{}, fmt.Errorf("accept failed: %w", err)
	}
	resp := AcceptResponse{Results: make([]WordResult, len(texts))}
	for i, text := range texts {
		resp.Results[i] = WordResult{Word: text, Accepted: got[i]}
	}
	return resp, nil
}

func opOptions(args map[string]interface{}) []automata.OpOption {
	var opts []automata.OpOption
	if saveAs, _ := args["save_as"].(string); saveAs != "" {
		opts = append(opts, automata.SaveAs(saveAs))
	}
	if sink, _ := args["sink"].(string); sink != "" {
		opts = append(opts, automata.WithSink(sink))
	}
	if det, _ := args["determinize"].(bool); det {
		opts = append(opts, automata.Determinized())
	}
	return opts
}

func (s *Server) build(ctx context.Context, op string, allowed []string, inputs []string, args map[string]interface{}) (schema.Definition, error) {
	if !contains(allowed, op) {
		return schema.Definition{}, fmt.Errorf("unsupported operation %q", op)
	}
	res, err := s.wb.Do(ctx, op, inputs, opOptions(args)...)
	if err != nil {
		return schema.Definition{}, fmt.Errorf("%s failed: %w", op, err)
	}
	return *res.Definition, nil
}

func (s *Server) handleCombine(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (schema.Definition, error) {
	op, _ := args["operation"].(string)
	left, _ := args["left"].(string)
	right, _ := args["right"].(string)
	return s.build(ctx, op, []string{automata.OpUnion, automata.OpIntersection}, []string{left, right}, args)
}

func (s *Server) handleTransform(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (schema.Definition, error) {
	op, _ := args["operation"].(string)
	name, _ := args["name"].(string)
	allowed := []string{automata.OpComplement, automata.OpMirror, automata.OpTrim, automata.OpDeterminize, automata.OpComplete}
	return s.build(ctx, op, allowed, []string{name}, args)
}

func (s *Server) handleCompare(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (CompareResponse, error) {
	op, _ := args["operation"].(string)
	left, _ := args["left"].(string)
	right, _ := args["right"].(string)
	if op != automata.OpIncludes && op != automata.OpEquivalent {
		return CompareResponse{}, fmt.Errorf("unsupported operation %q", op)
	}
	res, err := s.wb.Do(ctx, op, []string{left, right}, opOptions(args)...)
	if err != nil {
		return CompareResponse{}, fmt.Errorf("%s failed: %w", op, err)
	}
	return CompareResponse{Operation: op, Left: left, Right: right, Verdict: *res.Verdict}, nil
}

func contains(list []string, s string) bool {
	for _, x := range list {
		if x == s {
			return true
		}
	}
	return false
}

func (s *Server) registerResources() {
	// EXPOSE: automata://index
	s.mcpServer.AddResource(mcp.NewResource(ResourceScheme+"index", "Stored automata",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		names, err := s.wb.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list automata: %w", err)
		}
		jsonBytes, _ := json.Marshal(ListResponse{Automata: names})
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      request.Params.URI,
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})

	// EXPOSE: automata://{name}
	s.mcpServer.AddResourceTemplate(mcp.NewResourceTemplate(ResourceScheme+"{name}", "Automaton definition",
		mcp.WithTemplateMIMEType("application/yaml"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		name := strings.TrimPrefix(request.Params.URI, ResourceScheme)
		def, err := s.wb.Get(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", name, err)
		}
		data, err := schema.Marshal(def, schema.FormatYAML)
		if err != nil {
			return nil, err
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      request.Params.URI,
				MIMEType: "application/yaml",
				Text:     string(data),
			},
		}, nil
	})
}
