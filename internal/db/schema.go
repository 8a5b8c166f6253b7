package db

// SchemaSQL is the complete schema for the sqlite record store.
//
// Each entity collection shares one table; records are stored as the same
// JSON documents the flat-file store writes, so data moves between backends
// without conversion. seq preserves insertion order.
const SchemaSQL = `
CREATE TABLE IF NOT EXISTS records (
	collection TEXT NOT NULL,
	id TEXT NOT NULL,
	seq INTEGER NOT NULL,
	body TEXT NOT NULL,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	PRIMARY KEY (collection, id)
);

CREATE INDEX IF NOT EXISTS idx_records_collection_seq ON records(collection, seq);
`
