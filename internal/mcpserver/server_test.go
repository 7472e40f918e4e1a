package mcpserver

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/mtovey/docindex/internal/index"
	"github.com/mtovey/docindex/internal/storage"
	"github.com/mtovey/docindex/internal/testutil"
)

func testServer(t *testing.T) (*Server, storage.Provider, *index.DB) {
	t.Helper()
	store := testutil.TestStore(t)
	db := testutil.TestDB(t)
	srv := New(store, db)
	return srv, store, db
}

func callTool(t *testing.T, srv *Server, name string, args map[string]interface{}) *mcp.CallToolResult {
	t.Helper()
	ctx := context.Background()
	req := mcp.CallToolRequest{}
	req.Method = "tools/call"
	req.Params.Name = name
	req.Params.Arguments = args

	// mcp-go doesn't expose a direct "call tool" test helper, so we call
	// the handler functions directly.
	var result *mcp.CallToolResult
	var err error

	switch name {
	case "search_docs":
		result, err = srv.searchDocs(ctx, req)
	case "read_doc":
		result, err = srv.readDoc(ctx, req)
	case "get_toc":
		result, err = srv.getTOC(ctx, req)
	case "list_docs":
		result, err = srv.listDocs(ctx, req)
	case "list_terms":
		result, err = srv.listTerms(ctx, req)
	case "get_index_contract":
		result, err = srv.getIndexContract(ctx, req)
	default:
		t.Fatalf("unknown tool: %s", name)
	}

	if err != nil {
		t.Fatalf("tool %s error: %v", name, err)
	}
	return result
}

func resultText(r *mcp.CallToolResult) string {
	if len(r.Content) > 0 {
		if tc, ok := r.Content[0].(mcp.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}

func TestReadDoc(t *testing.T) {
	srv, store, _ := testServer(t)
	_ = store.Write("test.md", []byte("# Test\nHello"))

	r := callTool(t, srv, "read_doc", map[string]interface{}{"path": "test.md"})
	if text := resultText(r); text != "# Test\nHello" {
		t.Errorf("read result = %q", text)
	}
}

func TestReadDocMissing(t *testing.T) {
	srv, _, _ := testServer(t)
	r := callTool(t, srv, "read_doc", map[string]interface{}{"path": "nope.md"})
	if !r.IsError {
		t.Error("expected error for missing doc")
	}
}

func TestGetTOC(t *testing.T) {
	srv, store, _ := testServer(t)
	_ = store.Write("doc.md", []byte("# Top\n\n## Sub Heading\n\ntext\n"))

	r := callTool(t, srv, "get_toc", map[string]interface{}{"path": "doc.md"})
	text := resultText(r)
	want := "## Table of Contents\n- [Top](#top)\n  - [Sub Heading](#sub-heading)\n"
	if text != want {
		t.Errorf("toc = %q, want %q", text, want)
	}
}

func TestGetTOC_NoHeadings(t *testing.T) {
	srv, store, _ := testServer(t)
	_ = store.Write("plain.md", []byte("just text\n"))

	r := callTool(t, srv, "get_toc", map[string]interface{}{"path": "plain.md"})
	if text := resultText(r); text != "no headings" {
		t.Errorf("toc = %q, want no headings", text)
	}
}

func TestListDocs(t *testing.T) {
	srv, store, _ := testServer(t)
	_ = store.Write("a.md", []byte("a"))
	_ = store.Write("b.md", []byte("b"))

	r := callTool(t, srv, "list_docs", map[string]interface{}{})
	if text := resultText(r); text == "" {
		t.Error("list returned empty")
	}
}

func TestListTerms(t *testing.T) {
	srv, _, db := testServer(t)
	err := db.UpsertDoc(index.DocRow{Path: "a.md", Title: "A"}, "body", []string{"file_path"}, []string{"API"})
	if err != nil {
		t.Fatal(err)
	}

	r := callTool(t, srv, "list_terms", map[string]interface{}{})
	if text := resultText(r); !strings.Contains(text, "file_path") {
		t.Errorf("terms output missing file_path: %q", text)
	}

	r = callTool(t, srv, "list_terms", map[string]interface{}{"kind": "acronym"})
	if text := resultText(r); !strings.Contains(text, "API") {
		t.Errorf("acronym output missing API: %q", text)
	}

	r = callTool(t, srv, "list_terms", map[string]interface{}{"kind": "bogus"})
	if !r.IsError {
		t.Error("expected error for unknown kind")
	}
}

func TestSearchDocs(t *testing.T) {
	srv, _, db := testServer(t)
	err := db.UpsertDoc(index.DocRow{Path: "n.md", Title: "Notes"}, "a xylophone paragraph", nil, nil)
	if err != nil {
		t.Fatal(err)
	}

	r := callTool(t, srv, "search_docs", map[string]interface{}{"query": "xylophone"})
	if text := resultText(r); !strings.Contains(text, "n.md") {
		t.Errorf("search output missing n.md: %q", text)
	}
}

func TestGetIndexContract(t *testing.T) {
	srv, _, _ := testServer(t)
	r := callTool(t, srv, "get_index_contract", map[string]interface{}{})
	text := resultText(r)
	if !strings.Contains(text, "## Table of Contents") {
		t.Error("contract missing TOC block description")
	}
	if !strings.Contains(text, "INDEX.md") {
		t.Error("contract missing INDEX.md description")
	}
}
