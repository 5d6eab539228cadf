package snapshot

import (
	"context"

	"boardpull/internal/monday"
)

// ClientFetcher implements Fetcher by listing every page of a board through
// the monday client.
type ClientFetcher struct {
	client *monday.Client
}

// NewClientFetcher returns a Fetcher backed by the given client.
func NewClientFetcher(client *monday.Client) *ClientFetcher {
	return &ClientFetcher{client: client}
}

// FetchBoard implements Fetcher. All-or-nothing: a failed page discards the
// board's partial item set.
func (f *ClientFetcher) FetchBoard(ctx context.Context, boardID string) ([]monday.Item, error) {
	return f.client.Items().ListByBoard(ctx, boardID, monday.WithReturnAll())
}
