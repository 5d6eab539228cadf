// Package store persists board snapshots in SQLite, with an in-memory twin
// for tests and stub wiring.
package store

import "boardpull/internal/snapshot"

// DefaultDBPath is the default relative path for the SQLite DB
// (per-workspace). Open() creates the parent dir.
const DefaultDBPath = ".boardpull/boardpull.db"

// SnapshotInfo is a listing row: one saved snapshot without its payload.
type SnapshotInfo struct {
	BoardID   string
	TakenAt   string
	ItemCount int
}

// Store is the persistence facade. It satisfies snapshot.Store and adds
// listing; implementation is SQLite or in-memory.
type Store interface {
	Save(boardID string, snap *snapshot.Snapshot) error
	Get(boardID string) (*snapshot.Snapshot, error)
	List() ([]SnapshotInfo, error)
	Close() error
}
