package mcp_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	mcpserver "boardpull/internal/mcp"
	"boardpull/internal/monday"
)

// newFakeAPI serves a minimal monday.com GraphQL endpoint covering all
// three operations.
func newFakeAPI(t *testing.T) *httptest.Server {
	t.Helper()
	const item = `{"id":"1234567890","name":"Deploy workflow","created_at":"2026-01-05T09:30:00Z","state":"active","subitems":[],"column_values":[{"id":"connect_boards","text":null,"type":"board_relation","value":null,"column":{"title":"Related","archived":false,"description":"","settings_str":"{}"},"display_value":"Related Item 1","linked_item_ids":["5566778899"]}]}`

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Query     string         `json:"query"`
			Variables map[string]any `json:"variables"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		switch {
		case strings.Contains(req.Query, "items(ids: $itemId)"):
			fmt.Fprint(w, `{"data":{"items":[`+item+`]}}`)
		case strings.Contains(req.Query, "boards(ids: $boardId)"):
			fmt.Fprint(w, `{"data":{"boards":[{"groups":[{"items_page":{"cursor":null,"items":[`+item+`]}}]}]}}`)
		case strings.Contains(req.Query, "items_page_by_column_values"):
			fmt.Fprint(w, `{"data":{"items_page_by_column_values":{"cursor":null,"items":[`+item+`]}}}`)
		default:
			t.Errorf("unexpected query:\n%s", req.Query)
			http.NotFound(w, r)
		}
	}))
}

func newTestServer(t *testing.T) *mcpserver.Server {
	t.Helper()
	api := newFakeAPI(t)
	t.Cleanup(api.Close)

	client, err := monday.New("test-token", monday.WithEndpoint(api.URL), monday.WithHTTPClient(api.Client()))
	if err != nil {
		t.Fatalf("monday.New: %v", err)
	}
	return mcpserver.NewServer(client, "test")
}

func connectInMemory(t *testing.T, ctx context.Context, srv *mcpserver.Server) *sdkmcp.ClientSession {
	t.Helper()
	t1, t2 := sdkmcp.NewInMemoryTransports()
	serverSession, err := srv.MCPServer.Connect(ctx, t1, nil)
	if err != nil {
		t.Fatalf("server.Connect: %v", err)
	}
	t.Cleanup(func() { serverSession.Close() })

	client := sdkmcp.NewClient(&sdkmcp.Implementation{Name: "test-client", Version: "v0.0.1"}, nil)
	session, err := client.Connect(ctx, t2, nil)
	if err != nil {
		t.Fatalf("client.Connect: %v", err)
	}
	return session
}

func callTool(t *testing.T, ctx context.Context, session *sdkmcp.ClientSession, name string, args map[string]any) map[string]any {
	t.Helper()
	res, err := session.CallTool(ctx, &sdkmcp.CallToolParams{
		Name:      name,
		Arguments: args,
	})
	if err != nil {
		t.Fatalf("CallTool(%s): %v", name, err)
	}
	if res.IsError {
		for _, c := range res.Content {
			if tc, ok := c.(*sdkmcp.TextContent); ok {
				t.Fatalf("CallTool(%s) returned error: %s", name, tc.Text)
			}
		}
		t.Fatalf("CallTool(%s) returned error", name)
	}
	result := make(map[string]any)
	for _, c := range res.Content {
		if tc, ok := c.(*sdkmcp.TextContent); ok {
			if err := json.Unmarshal([]byte(tc.Text), &result); err != nil {
				t.Fatalf("unmarshal tool result: %v (text: %s)", err, tc.Text)
			}
			return result
		}
	}
	t.Fatalf("no text content in tool result")
	return nil
}

func TestServer_ToolDiscovery(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()
	session := connectInMemory(t, ctx, srv)
	defer session.Close()

	tools, err := session.ListTools(ctx, nil)
	if err != nil {
		t.Fatalf("ListTools: %v", err)
	}

	want := map[string]bool{
		"get_item":             false,
		"list_board_items":     false,
		"find_items_by_column": false,
	}
	for _, tool := range tools.Tools {
		if _, ok := want[tool.Name]; ok {
			want[tool.Name] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("tool %q not found in ListTools", name)
		}
	}
}

func TestServer_GetItem(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()
	session := connectInMemory(t, ctx, srv)
	defer session.Close()

	result := callTool(t, ctx, session, "get_item", map[string]any{"item_id": "1234567890"})
	item, ok := result["item"].(map[string]any)
	if !ok {
		t.Fatalf("expected item object, got %+v", result)
	}
	if item["id"] != "1234567890" {
		t.Errorf("unexpected item: %+v", item)
	}

	values, ok := item["column_values"].([]any)
	if !ok || len(values) != 1 {
		t.Fatalf("expected 1 column value, got %+v", item["column_values"])
	}
	relation := values[0].(map[string]any)
	if relation["display_value"] != "Related Item 1" {
		t.Errorf("expected normalized display value, got %+v", relation)
	}
}

func TestServer_ListBoardItems(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()
	session := connectInMemory(t, ctx, srv)
	defer session.Close()

	result := callTool(t, ctx, session, "list_board_items", map[string]any{
		"board_id":   "111",
		"return_all": true,
	})
	if result["total"] != float64(1) {
		t.Errorf("expected total 1, got %v", result["total"])
	}
}

func TestServer_FindItemsByColumn(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()
	session := connectInMemory(t, ctx, srv)
	defer session.Close()

	result := callTool(t, ctx, session, "find_items_by_column", map[string]any{
		"board_id":     "111",
		"column_id":    "status",
		"column_value": "Done",
	})
	items, ok := result["items"].([]any)
	if !ok || len(items) != 1 {
		t.Fatalf("expected 1 item, got %+v", result["items"])
	}
}
