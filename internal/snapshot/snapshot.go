// Package snapshot captures the full item set of a board as a point-in-time
// envelope, for workflow steps that operate on a local copy instead of
// hitting the API per item.
package snapshot

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"boardpull/internal/logging"
	"boardpull/internal/monday"
)

// Snapshot is the point-in-time item set of one board.
type Snapshot struct {
	BoardID string        `json:"board_id"`
	TakenAt time.Time     `json:"taken_at"`
	Items   []monday.Item `json:"items"`
}

// Fetcher returns the complete, normalized item set of a board.
type Fetcher interface {
	FetchBoard(ctx context.Context, boardID string) ([]monday.Item, error)
}

// Store persists snapshots keyed by board ID.
type Store interface {
	Save(boardID string, snap *Snapshot) error
	Get(boardID string) (*Snapshot, error)
}

// FetchAndSave fetches a board's items and persists the snapshot. A fetch
// failure saves nothing: the previous snapshot, if any, stays intact.
func FetchAndSave(ctx context.Context, f Fetcher, s Store, boardID string) (*Snapshot, error) {
	items, err := f.FetchBoard(ctx, boardID)
	if err != nil {
		return nil, fmt.Errorf("snapshot board %s: %w", boardID, err)
	}
	snap := &Snapshot{BoardID: boardID, TakenAt: time.Now().UTC(), Items: items}
	if err := s.Save(boardID, snap); err != nil {
		return nil, fmt.Errorf("save snapshot %s: %w", boardID, err)
	}
	return snap, nil
}

// RefreshAll snapshots every board, fanning out up to parallel boards at
// once. Pages within a board are still fetched sequentially; only whole
// boards run concurrently, since their cursor chains are independent. The
// first failure cancels the remaining fetches.
func RefreshAll(ctx context.Context, f Fetcher, s Store, boardIDs []string, parallel int) error {
	if parallel < 1 {
		parallel = 1
	}
	logger := logging.New("snapshot")

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)
	for _, boardID := range boardIDs {
		g.Go(func() error {
			snap, err := FetchAndSave(ctx, f, s, boardID)
			if err != nil {
				return err
			}
			logger.InfoContext(ctx, "board snapshot saved", "board", boardID, "items", len(snap.Items))
			return nil
		})
	}
	return g.Wait()
}

// StubFetcher returns a fixed item set for any board ID (no HTTP). Use in
// tests or when wiring with fixture data.
type StubFetcher struct {
	Items []monday.Item
	Err   error
}

// FetchBoard implements Fetcher by returning the fixed items.
func (f *StubFetcher) FetchBoard(context.Context, string) ([]monday.Item, error) {
	return f.Items, f.Err
}
