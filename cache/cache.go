// Package cache persists resolved documentation trees in SQLite so repeat
// runs over unchanged sources skip re-resolution. Rows are keyed by
// package path and symbol name; a fingerprint of the declaration source
// decides freshness.
package cache

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"github.com/teranos/typedoc/errors"
)

// Open opens (or creates) a cache database at the given path with WAL
// mode and applies pending migrations. If logger is provided, operations
// are logged; otherwise the store operates silently.
func Open(path string, logger *zap.SugaredLogger) (*Store, error) {
	if logger != nil {
		logger.Debugw("Opening cache database", "path", path)
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, errors.Wrap(err, "open cache database")
	}

	// WAL allows concurrent reads while a resolve run is writing.
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "enable WAL mode")
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "enable foreign keys")
	}
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "set busy timeout")
	}

	if err := Migrate(db, logger); err != nil {
		db.Close()
		return nil, err
	}

	if logger != nil {
		logger.Infow("Cache database opened",
			"path", path,
			"wal_mode", true,
		)
	}
	return New(db, logger), nil
}
