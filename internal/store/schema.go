package store

// schemaVersion1 is the snapshot schema.
const schemaVersion1 = 1

var schemaV1 = `
CREATE TABLE IF NOT EXISTS schema_version (version INTEGER NOT NULL);

CREATE TABLE IF NOT EXISTS snapshots (
	board_id   TEXT PRIMARY KEY,
	taken_at   TEXT NOT NULL,
	item_count INTEGER NOT NULL,
	payload    BLOB NOT NULL
);
`
