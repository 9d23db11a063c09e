package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/mabhi256/jlint/internal/config"
	"github.com/mabhi256/jlint/internal/graph"
	"github.com/mabhi256/jlint/internal/lint"
	"github.com/mabhi256/jlint/internal/loader"
)

const serverName = "jlint"

type Server struct {
	logger hclog.Logger
	loader *loader.Loader
	mcp    *server.MCPServer
}

type CheckInfo struct {
	Number      int    `json:"number"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type LintResult struct {
	Classes    int                    `json:"classes"`
	Violations []lint.Violation       `json:"violations"`
	Skipped    []string               `json:"skipped,omitempty"`
	Selection  []*lint.SelectionError `json:"selection_errors,omitempty"`
}

type DependencyResult struct {
	Edges  []graph.Edge `json:"edges"`
	Cycles []string     `json:"cycles"`
}

func New(logger hclog.Logger, version string) *Server {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	s := &Server{
		logger: logger,
		loader: loader.New(logger.Named("loader")),
		mcp: server.NewMCPServer(
			serverName,
			version,
			server.WithToolCapabilities(false),
		),
	}

	lintTool := mcp.NewTool("lint_classes",
		mcp.WithDescription("Run lint checks over a directory of compiled Java .class files"),
		mcp.WithString("dir",
			mcp.Required(),
			mcp.Description("Directory containing .class files"),
		),
		mcp.WithString("checks",
			mcp.Description("\"all\" or comma-separated check numbers, e.g. \"1,3,5\" (default: checks from .jlint.yml, else all)"),
		),
		mcp.WithBoolean("include_synthetic",
			mcp.Description("Analyse compiler-generated members (default: include_synthetic from .jlint.yml, else false)"),
		),
	)
	s.mcp.AddTool(lintTool, s.lintHandler)

	listChecksTool := mcp.NewTool("list_checks",
		mcp.WithDescription("List the available lint checks and their selection numbers"),
	)
	s.mcp.AddTool(listChecksTool, s.listChecksHandler)

	dependenciesTool := mcp.NewTool("class_dependencies",
		mcp.WithDescription("List class relationships (extends, implements, has-a, has-many, uses) and dependency cycles"),
		mcp.WithString("dir",
			mcp.Required(),
			mcp.Description("Directory containing .class files"),
		),
		mcp.WithString("class",
			mcp.Description("Only show relationships going out of this class (simple name)"),
		),
	)
	s.mcp.AddTool(dependenciesTool, s.dependenciesHandler)

	return s
}

// ServeStdio blocks serving MCP requests on stdin/stdout
func (s *Server) ServeStdio() error {
	s.logger.Info("serving MCP over stdio")
	return server.ServeStdio(s.mcp)
}

func (s *Server) lintHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	dir, err := request.RequireString("dir")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	cfg, err := config.Load("", dir)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	selection := request.GetString("checks", cfg.Checks)
	includeSynthetic := request.GetBool("include_synthetic", cfg.IncludeSynthetic)

	lintCtx, problems, err := s.loader.LoadContext(dir, cfg.Ignore, includeSynthetic)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to load classes: %v", err)), nil
	}

	engine, selectionErrs := lint.NewEngineFromSelection(s.logger.Named("engine"), selection, lint.CatalogOptions{
		Diagram: lint.DiagramOptions{Renderer: cfg.UML.Renderer, Output: cfg.UML.Output},
	})

	result := LintResult{
		Classes:    lintCtx.ClassCount(),
		Violations: engine.Analyze(lintCtx),
		Selection:  selectionErrs,
	}
	if result.Violations == nil {
		result.Violations = []lint.Violation{}
	}
	for _, p := range problems {
		result.Skipped = append(result.Skipped, p.Error())
	}

	return jsonResult(result)
}

func (s *Server) listChecksHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var checks []CheckInfo
	for _, entry := range lint.Catalog() {
		checks = append(checks, CheckInfo{
			Number:      entry.Number,
			Name:        entry.Name,
			Description: entry.New(lint.CatalogOptions{}).Description(),
		})
	}
	return jsonResult(checks)
}

func (s *Server) dependenciesHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	dir, err := request.RequireString("dir")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	className := request.GetString("class", "")

	cfg, err := config.Load("", dir)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	lintCtx, _, err := s.loader.LoadContext(dir, cfg.Ignore, cfg.IncludeSynthetic)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to load classes: %v", err)), nil
	}

	result := DependencyResult{Edges: lintCtx.Matrix.Edges(), Cycles: []string{}}
	if className != "" {
		if !lintCtx.Matrix.Contains(className) {
			return mcp.NewToolResultError(fmt.Sprintf("class %s not found in %s", className, dir)), nil
		}
		result.Edges = lintCtx.Matrix.Outgoing(className)
	}
	if result.Edges == nil {
		result.Edges = []graph.Edge{}
	}

	for _, cycle := range graph.DetectCycles(lintCtx.Matrix) {
		result.Cycles = append(result.Cycles, cycle.String())
	}

	return jsonResult(result)
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	jsonData, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}
