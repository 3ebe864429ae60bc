// Package snapshot persists exported store snapshots in SQLite.
//
// The database file is the opaque load/save boundary: the engine reads and
// writes whole snapshots synchronously at startup, shutdown, or refresh,
// never incrementally. A missing or corrupt file degrades to an empty
// snapshot so a partially-populated engine beats a dead process.
package snapshot

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	_ "modernc.org/sqlite"

	"github.com/xyian/lorebase/internal/core/model"
)

func open(path string) (*sql.DB, error) {
	dsn := path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open snapshot db: %w", err)
	}
	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate snapshot db: %w", err)
	}
	return db, nil
}

// Save writes the snapshot to path, replacing any previous contents.
func Save(path string, snap model.Snapshot) error {
	db, err := open(path)
	if err != nil {
		return err
	}
	defer db.Close()

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin snapshot save: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"meta", "entities", "relationships", "categories"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	if _, err := tx.Exec(`INSERT INTO meta (key, value) VALUES ('version', ?), ('timestamp', ?)`,
		strconv.Itoa(snap.Version), snap.Timestamp.UTC().Format(time.RFC3339Nano)); err != nil {
		return fmt.Errorf("write meta: %w", err)
	}

	for i, e := range snap.Entities {
		props, err := json.Marshal(e.Properties)
		if err != nil {
			return fmt.Errorf("marshal properties for %s: %w", e.ID, err)
		}
		if _, err := tx.Exec(
			`INSERT INTO entities (id, position, type, name, content, properties, confidence, source, timestamp)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			e.ID, i, e.Type, e.Name, e.Content, string(props), e.Confidence, e.Source,
			e.Timestamp.UTC().Format(time.RFC3339Nano),
		); err != nil {
			return fmt.Errorf("write entity %s: %w", e.ID, err)
		}
	}

	for i, rel := range snap.Relationships {
		props, err := json.Marshal(rel.Properties)
		if err != nil {
			return fmt.Errorf("marshal properties for %s: %w", rel.ID, err)
		}
		if _, err := tx.Exec(
			`INSERT INTO relationships (id, position, from_id, to_id, type, properties, timestamp)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			rel.ID, i, rel.From, rel.To, rel.Type, string(props),
			rel.Timestamp.UTC().Format(time.RFC3339Nano),
		); err != nil {
			return fmt.Errorf("write relationship %s: %w", rel.ID, err)
		}
	}

	for label, members := range snap.Categories {
		for i, id := range members {
			if _, err := tx.Exec(
				`INSERT INTO categories (label, entity_id, position) VALUES (?, ?, ?)`,
				label, id, i,
			); err != nil {
				return fmt.Errorf("write category %s: %w", label, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit snapshot save: %w", err)
	}
	slog.Info("snapshot saved", "path", path,
		"entities", len(snap.Entities), "relationships", len(snap.Relationships))
	return nil
}

// Load reads a snapshot from path. The error distinguishes a missing file
// from a corrupt one only in its message; callers wanting the availability
// policy should use LoadOrEmpty.
func Load(path string) (model.Snapshot, error) {
	if _, err := os.Stat(path); err != nil {
		return model.Snapshot{}, fmt.Errorf("stat snapshot: %w", err)
	}

	db, err := open(path)
	if err != nil {
		return model.Snapshot{}, err
	}
	defer db.Close()

	snap := model.Snapshot{Version: model.SnapshotVersion}

	var version string
	if err := db.QueryRow(`SELECT value FROM meta WHERE key = 'version'`).Scan(&version); err != nil {
		return model.Snapshot{}, fmt.Errorf("read snapshot version: %w", err)
	}
	if snap.Version, err = strconv.Atoi(version); err != nil {
		return model.Snapshot{}, fmt.Errorf("parse snapshot version %q: %w", version, err)
	}
	var stamp string
	if err := db.QueryRow(`SELECT value FROM meta WHERE key = 'timestamp'`).Scan(&stamp); err == nil {
		snap.Timestamp, _ = time.Parse(time.RFC3339Nano, stamp)
	}

	rows, err := db.Query(
		`SELECT id, type, name, content, properties, confidence, source, timestamp
		 FROM entities ORDER BY position`)
	if err != nil {
		return model.Snapshot{}, fmt.Errorf("read entities: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var e model.Entity
		var props, stamp string
		if err := rows.Scan(&e.ID, &e.Type, &e.Name, &e.Content, &props, &e.Confidence, &e.Source, &stamp); err != nil {
			return model.Snapshot{}, fmt.Errorf("scan entity: %w", err)
		}
		if e.Properties, err = unmarshalProps(props); err != nil {
			return model.Snapshot{}, fmt.Errorf("entity %s: %w", e.ID, err)
		}
		if e.Timestamp, err = time.Parse(time.RFC3339Nano, stamp); err != nil {
			return model.Snapshot{}, fmt.Errorf("entity %s timestamp: %w", e.ID, err)
		}
		snap.Entities = append(snap.Entities, e)
	}
	if err := rows.Err(); err != nil {
		return model.Snapshot{}, fmt.Errorf("iterate entities: %w", err)
	}

	relRows, err := db.Query(
		`SELECT id, from_id, to_id, type, properties, timestamp
		 FROM relationships ORDER BY position`)
	if err != nil {
		return model.Snapshot{}, fmt.Errorf("read relationships: %w", err)
	}
	defer relRows.Close()
	for relRows.Next() {
		var rel model.Relationship
		var props, stamp string
		if err := relRows.Scan(&rel.ID, &rel.From, &rel.To, &rel.Type, &props, &stamp); err != nil {
			return model.Snapshot{}, fmt.Errorf("scan relationship: %w", err)
		}
		if rel.Properties, err = unmarshalProps(props); err != nil {
			return model.Snapshot{}, fmt.Errorf("relationship %s: %w", rel.ID, err)
		}
		if rel.Timestamp, err = time.Parse(time.RFC3339Nano, stamp); err != nil {
			return model.Snapshot{}, fmt.Errorf("relationship %s timestamp: %w", rel.ID, err)
		}
		snap.Relationships = append(snap.Relationships, rel)
	}
	if err := relRows.Err(); err != nil {
		return model.Snapshot{}, fmt.Errorf("iterate relationships: %w", err)
	}

	catRows, err := db.Query(`SELECT label, entity_id FROM categories ORDER BY label, position`)
	if err != nil {
		return model.Snapshot{}, fmt.Errorf("read categories: %w", err)
	}
	defer catRows.Close()
	for catRows.Next() {
		var label, id string
		if err := catRows.Scan(&label, &id); err != nil {
			return model.Snapshot{}, fmt.Errorf("scan category: %w", err)
		}
		if snap.Categories == nil {
			snap.Categories = make(map[string][]string)
		}
		snap.Categories[label] = append(snap.Categories[label], id)
	}
	if err := catRows.Err(); err != nil {
		return model.Snapshot{}, fmt.Errorf("iterate categories: %w", err)
	}

	return snap, nil
}

// LoadOrEmpty implements the availability policy: a missing or unreadable
// snapshot logs a warning and yields an empty snapshot instead of failing
// the process.
func LoadOrEmpty(path string) model.Snapshot {
	snap, err := Load(path)
	if err != nil {
		slog.Warn("snapshot unavailable, starting empty", "path", path, "error", err)
		return model.Snapshot{Version: model.SnapshotVersion}
	}
	return snap
}

func unmarshalProps(raw string) (map[string]any, error) {
	if raw == "" || raw == "null" || raw == "{}" {
		return nil, nil
	}
	var props map[string]any
	if err := json.Unmarshal([]byte(raw), &props); err != nil {
		return nil, fmt.Errorf("unmarshal properties: %w", err)
	}
	// Snapshot files can be edited by hand; reject bags that smuggle in
	// nested values the property model does not admit.
	return model.NormalizeProperties(props)
}
