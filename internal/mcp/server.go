// Package mcp exposes the board-item retrieval operations as MCP tools, so
// agent hosts can pull monday.com data over stdio without shelling out to
// the CLI.
package mcp

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"boardpull/internal/monday"
)

// Server wraps the MCP SDK server around a monday client.
type Server struct {
	MCPServer *sdkmcp.Server

	client *monday.Client
}

// NewServer creates an MCP server exposing the item retrieval tools backed
// by the given client.
func NewServer(client *monday.Client, version string) *Server {
	s := &Server{client: client}
	s.MCPServer = sdkmcp.NewServer(
		&sdkmcp.Implementation{Name: "boardpull", Version: version},
		nil,
	)
	s.registerTools()
	return s
}

func (s *Server) registerTools() {
	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "get_item",
		Description: "Fetch a single board item by ID, with normalized column values.",
	}, s.handleGetItem)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "list_board_items",
		Description: "List the items of a board, optionally scoped to a group. Set return_all to follow pagination to the end.",
	}, s.handleListBoardItems)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "find_items_by_column",
		Description: "List the items of a board whose column matches a value. Each item carries its board id.",
	}, s.handleFindItemsByColumn)
}

// --- Tool input/output types ---

type getItemInput struct {
	ItemID string `json:"item_id" jsonschema:"the board item ID"`
}

type getItemOutput struct {
	Item *monday.Item `json:"item"`
}

type listBoardItemsInput struct {
	BoardID   string `json:"board_id" jsonschema:"the board ID"`
	GroupID   string `json:"group_id,omitempty" jsonschema:"restrict to one group of the board"`
	Limit     int    `json:"limit,omitempty" jsonschema:"page size (default 50)"`
	ReturnAll bool   `json:"return_all,omitempty" jsonschema:"follow cursor pagination until all pages are consumed"`
}

type listItemsOutput struct {
	Items []monday.Item `json:"items"`
	Total int           `json:"total"`
}

type findItemsByColumnInput struct {
	BoardID     string `json:"board_id" jsonschema:"the board ID"`
	ColumnID    string `json:"column_id" jsonschema:"the column to filter on"`
	ColumnValue string `json:"column_value" jsonschema:"the value the column must match"`
	ReturnAll   bool   `json:"return_all,omitempty" jsonschema:"follow cursor pagination until all pages are consumed"`
}

// --- Tool handlers ---

func (s *Server) handleGetItem(ctx context.Context, _ *sdkmcp.CallToolRequest, input getItemInput) (*sdkmcp.CallToolResult, getItemOutput, error) {
	item, err := s.client.Items().Get(ctx, input.ItemID)
	if err != nil {
		return nil, getItemOutput{}, fmt.Errorf("get_item: %w", err)
	}
	return nil, getItemOutput{Item: item}, nil
}

func (s *Server) handleListBoardItems(ctx context.Context, _ *sdkmcp.CallToolRequest, input listBoardItemsInput) (*sdkmcp.CallToolResult, listItemsOutput, error) {
	var opts []monday.ListOption
	if input.GroupID != "" {
		opts = append(opts, monday.WithGroup(input.GroupID))
	}
	if input.Limit > 0 {
		opts = append(opts, monday.WithLimit(input.Limit))
	}
	if input.ReturnAll {
		opts = append(opts, monday.WithReturnAll())
	}

	items, err := s.client.Items().ListByBoard(ctx, input.BoardID, opts...)
	if err != nil {
		return nil, listItemsOutput{}, fmt.Errorf("list_board_items: %w", err)
	}
	return nil, listItemsOutput{Items: items, Total: len(items)}, nil
}

func (s *Server) handleFindItemsByColumn(ctx context.Context, _ *sdkmcp.CallToolRequest, input findItemsByColumnInput) (*sdkmcp.CallToolResult, listItemsOutput, error) {
	var opts []monday.ListOption
	if input.ReturnAll {
		opts = append(opts, monday.WithReturnAll())
	}

	items, err := s.client.Items().ListByColumnValue(ctx, input.BoardID, input.ColumnID, input.ColumnValue, opts...)
	if err != nil {
		return nil, listItemsOutput{}, fmt.Errorf("find_items_by_column: %w", err)
	}
	return nil, listItemsOutput{Items: items, Total: len(items)}, nil
}
