package store

import (
	"sort"
	"sync"
	"time"

	"boardpull/internal/snapshot"
)

// MemStore is an in-memory Store for tests and dry runs.
type MemStore struct {
	mu    sync.Mutex
	snaps map[string]*snapshot.Snapshot
}

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{snaps: make(map[string]*snapshot.Snapshot)}
}

// Save implements Store.
func (m *MemStore) Save(boardID string, snap *snapshot.Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snaps[boardID] = snap
	return nil
}

// Get implements Store. Returns (nil, nil) when no snapshot exists.
func (m *MemStore) Get(boardID string) (*snapshot.Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snaps[boardID], nil
}

// List implements Store.
func (m *MemStore) List() ([]SnapshotInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	infos := make([]SnapshotInfo, 0, len(m.snaps))
	for boardID, snap := range m.snaps {
		infos = append(infos, SnapshotInfo{
			BoardID:   boardID,
			TakenAt:   snap.TakenAt.UTC().Format(time.RFC3339),
			ItemCount: len(snap.Items),
		})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].BoardID < infos[j].BoardID })
	return infos, nil
}

// Close implements Store.
func (m *MemStore) Close() error { return nil }
