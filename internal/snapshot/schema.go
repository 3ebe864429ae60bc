package snapshot

import "database/sql"

// migrate creates the snapshot schema. Positions preserve insertion order so
// a reloaded store iterates the way the exported one did.
func migrate(db *sql.DB) error {
	_, err := db.Exec(`
CREATE TABLE IF NOT EXISTS meta (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS entities (
	id         TEXT PRIMARY KEY,
	position   INTEGER NOT NULL,
	type       TEXT NOT NULL,
	name       TEXT NOT NULL,
	content    TEXT NOT NULL DEFAULT '',
	properties TEXT NOT NULL DEFAULT '{}',
	confidence REAL NOT NULL,
	source     TEXT NOT NULL DEFAULT '',
	timestamp  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS relationships (
	id         TEXT PRIMARY KEY,
	position   INTEGER NOT NULL,
	from_id    TEXT NOT NULL,
	to_id      TEXT NOT NULL,
	type       TEXT NOT NULL,
	properties TEXT NOT NULL DEFAULT '{}',
	timestamp  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS categories (
	label     TEXT NOT NULL,
	entity_id TEXT NOT NULL,
	position  INTEGER NOT NULL,
	PRIMARY KEY (label, entity_id)
);
`)
	return err
}
