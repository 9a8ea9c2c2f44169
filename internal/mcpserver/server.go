// Package mcpserver provides an MCP (Model Context Protocol) server that
// exposes AgentSync operations for LLM integration via stdio transport.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"path"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/starford/agentsync/internal"
	"github.com/starford/agentsync/internal/commands"
	"github.com/starford/agentsync/internal/storage"
	"github.com/starford/agentsync/internal/syncer"
	"github.com/starford/agentsync/internal/tool"
)

// Server wraps the MCP server with AgentSync tools.
type Server struct {
	mcp    *server.MCPServer
	store  storage.Provider
	cfg    *internal.Config
	logger *slog.Logger
}

// New creates a new MCP server with all AgentSync tools registered.
func New(store storage.Provider, cfg *internal.Config, logger *slog.Logger) *Server {
	s := &Server{store: store, cfg: cfg, logger: logger}

	s.mcp = server.NewMCPServer(
		"AgentSync",
		"1.0.0",
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("list_rules",
		mcp.WithDescription("List the names of all canonical agent rules."),
	), s.listRules)

	s.mcp.AddTool(mcp.NewTool("read_rule",
		mcp.WithDescription("Read a canonical rule file (frontmatter and body)."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Rule name (file stem, e.g. python-style)")),
	), s.readRule)

	s.mcp.AddTool(mcp.NewTool("add_rule",
		mcp.WithDescription("Create a new canonical rule from the template. "+
			"Rule names are kebab-case. Read the agentsync://rule-format resource "+
			"before editing the created rule."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Kebab-case rule name")),
	), s.addRule)

	s.mcp.AddTool(mcp.NewTool("sync_rules",
		mcp.WithDescription("Export canonical rules to every enabled tool directory. "+
			"Set dry_run to preview the changes without writing files."),
		mcp.WithBoolean("dry_run", mcp.Description("Classify changes but do not write")),
	), s.syncRules)

	s.mcp.AddTool(mcp.NewTool("import_rules",
		mcp.WithDescription("Import rules from one tool's directory into the canonical store. "+
			"Canonical content wins on conflict; conflicts are reported."),
		mcp.WithString("tool", mcp.Required(), mcp.Description("Tool to import from: cursor, copilot, or windsurf")),
		mcp.WithBoolean("dry_run", mcp.Description("Classify changes but do not write")),
	), s.importRules)

	// Resource: rule format contract.
	s.mcp.AddResource(
		mcp.NewResource("agentsync://rule-format", "Rule Format Contract",
			mcp.WithResourceDescription("Canonical agent-rule format that all rules must follow."),
			mcp.WithMIMEType("text/markdown"),
		),
		s.readRuleFormatResource,
	)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

func (s *Server) listRules(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	files, err := s.store.List(tool.CanonicalDir, tool.CanonicalSuffix)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	var names []string
	for _, f := range files {
		names = append(names, strings.TrimSuffix(path.Base(f), tool.CanonicalSuffix))
	}
	if len(names) == 0 {
		return mcp.NewToolResultText("no rules found"), nil
	}
	return mcp.NewToolResultText(strings.Join(names, "\n")), nil
}

func (s *Server) readRule(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	data, err := s.store.Read(tool.CanonicalDir + "/" + name + tool.CanonicalSuffix)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("not found: %s", name)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func (s *Server) addRule(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	var out strings.Builder
	if err := commands.Add(s.store, name, &out); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(out.String()), nil
}

func (s *Server) syncRules(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	opts := syncer.Options{DryRun: req.GetBool("dry_run", false)}
	result, err := commands.Export(s.store, s.cfg, opts, s.logger)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return resultJSON(result)
}

func (s *Server) importRules(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("tool")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	from, err := tool.Parse(name)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	opts := syncer.Options{DryRun: req.GetBool("dry_run", false)}
	result, err := commands.Import(s.store, s.cfg, from, opts, s.logger)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return resultJSON(result)
}

func (s *Server) readRuleFormatResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      "agentsync://rule-format",
			MIMEType: "text/markdown",
			Text:     RuleFormatContract,
		},
	}, nil
}

// resultJSON renders a sync result as indented JSON for the LLM client.
func resultJSON(result *syncer.Result) (*mcp.CallToolResult, error) {
	summary := struct {
		Created   []string `json:"created"`
		Updated   []string `json:"updated"`
		Deleted   []string `json:"deleted"`
		Skipped   []string `json:"skipped"`
		Conflicts []string `json:"conflicts,omitempty"`
		Errors    []string `json:"errors,omitempty"`
	}{
		Created: result.Created,
		Updated: result.Updated,
		Deleted: result.Deleted,
		Skipped: result.Skipped,
	}
	summary.Conflicts = result.Conflicts
	for _, issue := range result.Errors {
		summary.Errors = append(summary.Errors, issue.Error())
	}
	out, _ := json.MarshalIndent(summary, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}
