package monday

import (
	"context"
	"fmt"
)

// ItemScope provides the item retrieval operations.
type ItemScope struct {
	client *Client
}

// Items returns the item scope of the client.
func (c *Client) Items() *ItemScope {
	return &ItemScope{client: c}
}

// ListOption configures list operations.
type ListOption func(*listConfig)

type listConfig struct {
	groupID   string
	limit     int
	returnAll bool
	partial   bool
}

// WithGroup restricts a board listing to a single group.
func WithGroup(groupID string) ListOption {
	return func(cfg *listConfig) { cfg.groupID = groupID }
}

// WithLimit overrides the client's page size for this listing.
func WithLimit(n int) ListOption {
	return func(cfg *listConfig) { cfg.limit = n }
}

// WithReturnAll follows cursor pagination until every page is consumed.
// Without it, a listing returns the first page only and never issues a
// continuation request.
func WithReturnAll() ListOption {
	return func(cfg *listConfig) { cfg.returnAll = true }
}

// WithPartialResults returns the pages collected so far alongside the error
// when a continuation request fails or is canceled. The default discards
// them: all pages or none.
func WithPartialResults() ListOption {
	return func(cfg *listConfig) { cfg.partial = true }
}

func (s *ItemScope) listConfig(opts []ListOption) listConfig {
	cfg := listConfig{limit: s.client.pageSize}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Get returns a single item by ID with its column values normalized.
// Returns an error wrapping ErrNotFound when the server knows no such item.
func (s *ItemScope) Get(ctx context.Context, itemID string) (*Item, error) {
	q, err := BuildQuery(OpGetItem, Params{ItemID: itemID})
	if err != nil {
		return nil, err
	}

	var data itemsData
	if err := s.client.do(ctx, "get item", q, &data); err != nil {
		return nil, err
	}
	if len(data.Items) == 0 {
		return nil, fmt.Errorf("get item %s: %w", itemID, ErrNotFound)
	}

	item := normalizeItem(data.Items[0])
	return &item, nil
}

// ListByBoard returns the items of a board in server order, normalized.
// Without WithReturnAll only the first page is returned, bounded by the
// server-side page size. With it, every group's cursor chain is followed to
// exhaustion and the pages concatenated in arrival order.
func (s *ItemScope) ListByBoard(ctx context.Context, boardID string, opts ...ListOption) ([]Item, error) {
	cfg := s.listConfig(opts)
	q, err := BuildQuery(OpListBoard, Params{BoardID: boardID, GroupID: cfg.groupID, Limit: cfg.limit})
	if err != nil {
		return nil, err
	}

	var data boardsData
	if err := s.client.do(ctx, "list board items", q, &data); err != nil {
		return nil, err
	}

	items := make([]Item, 0)
	var cursors []*string
	for _, board := range data.Boards {
		for _, group := range board.Groups {
			for _, it := range group.ItemsPage.Items {
				items = append(items, normalizeItem(it))
			}
			if group.ItemsPage.Cursor != nil {
				cursors = append(cursors, group.ItemsPage.Cursor)
			}
		}
	}

	if !cfg.returnAll {
		return items, nil
	}
	for _, cursor := range cursors {
		items, err = newPager(s.client, cursor, cfg.limit, false).collect(ctx, items, cfg.partial)
		if err != nil {
			return items, err
		}
	}
	return items, nil
}

// ListByColumnValue returns the items of a board whose column matches the
// given value. Every returned item carries its board back-reference.
// Pagination behaves as in ListByBoard.
func (s *ItemScope) ListByColumnValue(ctx context.Context, boardID, columnID, columnValue string, opts ...ListOption) ([]Item, error) {
	cfg := s.listConfig(opts)
	q, err := BuildQuery(OpListByColumnValue, Params{
		BoardID:     boardID,
		ColumnID:    columnID,
		ColumnValue: columnValue,
		Limit:       cfg.limit,
	})
	if err != nil {
		return nil, err
	}

	var data columnValuesData
	if err := s.client.do(ctx, "list items by column value", q, &data); err != nil {
		return nil, err
	}

	items := make([]Item, 0, len(data.ItemsPage.Items))
	for _, it := range data.ItemsPage.Items {
		items = append(items, normalizeItem(it))
	}

	if !cfg.returnAll {
		return items, nil
	}
	return newPager(s.client, data.ItemsPage.Cursor, cfg.limit, true).collect(ctx, items, cfg.partial)
}
