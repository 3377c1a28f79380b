package cache

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/teranos/typedoc/errors"
)

// Store reads and writes resolved node payloads. Safe for concurrent use;
// database/sql serializes access to the underlying connection pool.
type Store struct {
	db     *sql.DB
	logger *zap.SugaredLogger
}

// New wraps an already-opened (and migrated) database. Tests use this to
// inject mock connections; production code goes through Open.
func New(db *sql.DB, logger *zap.SugaredLogger) *Store {
	return &Store{db: db, logger: logger}
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Entry is one cached resolution.
type Entry struct {
	PackagePath string
	SymbolName  string
	Fingerprint string
	Payload     json.RawMessage
	ResolvedAt  time.Time
}

// Get returns the cached payload for a symbol when its fingerprint still
// matches. A miss or a stale fingerprint returns ErrNotFound.
func (s *Store) Get(ctx context.Context, packagePath, symbolName, fingerprint string) (json.RawMessage, error) {
	var (
		stored  string
		payload []byte
	)
	err := s.db.QueryRowContext(ctx,
		"SELECT fingerprint, payload FROM resolved_nodes WHERE package_path = ? AND symbol_name = ?",
		packagePath, symbolName,
	).Scan(&stored, &payload)
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError("no cached node for %s.%s", packagePath, symbolName)
	}
	if err != nil {
		return nil, errors.Wrap(err, "query cached node")
	}
	if stored != fingerprint {
		if s.logger != nil {
			s.logger.Debugw("Cached node is stale",
				"package", packagePath,
				"symbol", symbolName,
			)
		}
		return nil, errors.NewNotFoundError("cached node for %s.%s is stale", packagePath, symbolName)
	}
	return payload, nil
}

// Put upserts a resolved node. An existing row for the same symbol is
// replaced, fingerprint and timestamp included.
func (s *Store) Put(ctx context.Context, e Entry) error {
	if e.PackagePath == "" || e.SymbolName == "" {
		return errors.AssertionFailedf("cache entry missing key: package=%q symbol=%q", e.PackagePath, e.SymbolName)
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO resolved_nodes (id, package_path, symbol_name, fingerprint, payload)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(package_path, symbol_name) DO UPDATE SET
		   fingerprint = excluded.fingerprint,
		   payload = excluded.payload,
		   resolved_at = CURRENT_TIMESTAMP`,
		uuid.NewString(), e.PackagePath, e.SymbolName, e.Fingerprint, []byte(e.Payload),
	)
	if err != nil {
		return errors.Wrapf(err, "cache %s.%s", e.PackagePath, e.SymbolName)
	}
	return nil
}

// InvalidatePackage drops every cached node under a package path and
// returns how many rows were removed.
func (s *Store) InvalidatePackage(ctx context.Context, packagePath string) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM resolved_nodes WHERE package_path = ?", packagePath)
	if err != nil {
		return 0, errors.Wrapf(err, "invalidate %s", packagePath)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, errors.Wrap(err, "rows affected")
	}
	if s.logger != nil && n > 0 {
		s.logger.Infow("Invalidated cached package",
			"package", packagePath,
			"removed", n,
		)
	}
	return n, nil
}

// Stats summarizes cache contents.
type Stats struct {
	Nodes    int64
	Packages int64
}

// Stats reports how many nodes and distinct packages the cache holds.
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	var st Stats
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*), COUNT(DISTINCT package_path) FROM resolved_nodes",
	).Scan(&st.Nodes, &st.Packages)
	if err != nil {
		return Stats{}, errors.Wrap(err, "cache stats")
	}
	return st, nil
}

// Fingerprint hashes the parts that determine a resolution's output:
// declaration text, file paths, module versions. Any change to any part
// yields a new fingerprint.
func Fingerprint(parts ...string) string {
	h := sha256.New()
	for _, p := range parts {
		h.Write([]byte(p))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}
