// Package mcpserver provides an MCP (Model Context Protocol) server
// that exposes docindex tools for LLM integration via stdio transport.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/mtovey/docindex/internal/index"
	"github.com/mtovey/docindex/internal/parser"
	"github.com/mtovey/docindex/internal/storage"
	"github.com/mtovey/docindex/internal/toc"
)

// Server wraps the MCP server with docindex tools.
type Server struct {
	mcp   *server.MCPServer
	store storage.Provider
	db    *index.DB
}

// New creates a new MCP server with all docindex tools registered.
func New(store storage.Provider, db *index.DB) *Server {
	s := &Server{store: store, db: db}

	s.mcp = server.NewMCPServer(
		"docindex",
		"1.0.0",
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("search_docs",
		mcp.WithDescription("Full-text search through documentation content and titles."),
		mcp.WithString("query", mcp.Required(), mcp.Description("Search query string")),
	), s.searchDocs)

	s.mcp.AddTool(mcp.NewTool("read_doc",
		mcp.WithDescription("Read the full content of a Markdown documentation file."),
		mcp.WithString("path", mcp.Required(), mcp.Description("Relative path to the file (e.g. guides/install.md)")),
	), s.readDoc)

	s.mcp.AddTool(mcp.NewTool("get_toc",
		mcp.WithDescription("Return the table of contents for a documentation file, "+
			"in the same block format the indexer writes into files. Read the format "+
			"via the get_index_contract tool or the docindex://index-format resource."),
		mcp.WithString("path", mcp.Required(), mcp.Description("Relative path to the file")),
	), s.getTOC)

	s.mcp.AddTool(mcp.NewTool("list_docs",
		mcp.WithDescription("List all documentation files or files in a specific folder."),
		mcp.WithString("folder", mcp.Description("Optional folder to list (empty for all)")),
	), s.listDocs)

	s.mcp.AddTool(mcp.NewTool("list_terms",
		mcp.WithDescription("List technical terms or acronyms with the files that mention them."),
		mcp.WithString("kind", mcp.Description("Glossary kind: \"term\" (default) or \"acronym\"")),
	), s.listTerms)

	s.mcp.AddTool(mcp.NewTool("get_index_contract",
		mcp.WithDescription("Returns the canonical format of generated TOC blocks and INDEX.md. "+
			"Call this before parsing or writing either."),
	), s.getIndexContract)

	// Resource: index format contract.
	s.mcp.AddResource(
		mcp.NewResource("docindex://index-format", "Index Format Contract",
			mcp.WithResourceDescription("Canonical format of generated TOC blocks and INDEX.md."),
			mcp.WithMIMEType("text/markdown"),
		),
		s.readIndexFormatResource,
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

func (s *Server) searchDocs(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := req.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	results, err := s.db.Search(query, 20)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, _ := json.MarshalIndent(results, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) readDoc(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	data, err := s.store.Read(path)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("not found: %s", path)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func (s *Server) getTOC(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	data, err := s.store.Read(path)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("not found: %s", path)), nil
	}
	headings := parser.ExtractHeadings(data)
	if len(headings) == 0 {
		return mcp.NewToolResultText("no headings"), nil
	}
	return mcp.NewToolResultText(toc.Build(headings)), nil
}

func (s *Server) listDocs(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	folder := ""
	if f, err := req.RequireString("folder"); err == nil {
		folder = f
	}

	metas, err := s.store.List(folder)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var paths []string
	for _, m := range metas {
		paths = append(paths, m.Path)
	}
	return mcp.NewToolResultText(strings.Join(paths, "\n")), nil
}

func (s *Server) listTerms(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	kind := index.KindTerm
	if k, err := req.RequireString("kind"); err == nil && k != "" {
		if k != index.KindTerm && k != index.KindAcronym {
			return mcp.NewToolResultError(fmt.Sprintf("unknown kind: %s", k)), nil
		}
		kind = k
	}

	entries, err := s.db.Mentions(kind)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if len(entries) == 0 {
		return mcp.NewToolResultText("no entries"), nil
	}
	out, _ := json.MarshalIndent(entries, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) getIndexContract(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(IndexFormatContract), nil
}

func (s *Server) readIndexFormatResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      "docindex://index-format",
			MIMEType: "text/markdown",
			Text:     IndexFormatContract,
		},
	}, nil
}
