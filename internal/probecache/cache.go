// Package probecache stores probed media durations in sqlite so repeated
// runs do not shell out to ffprobe for unchanged files.
package probecache

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/llehouerou/cinedeck/internal/media"
)

const (
	appName    = "cinedeck"
	dbFileName = "probe.db"
)

type Cache struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens the cache under the XDG cache directory.
func Open() (*Cache, error) {
	dbPath, err := xdg.CacheFile(filepath.Join(appName, dbFileName))
	if err != nil {
		return nil, err
	}
	return OpenPath(dbPath)
}

// OpenPath opens the cache at path. ":memory:" gives a private database.
func OpenPath(path string) (*Cache, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// A single connection keeps ":memory:" databases shared across calls.
	db.SetMaxOpenConns(1)

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Cache{db: db, now: time.Now}, nil
}

func (c *Cache) Close() error {
	return c.db.Close()
}

// Lookup returns the stored duration for path when size and mtime still match.
func (c *Cache) Lookup(path string, size, mtime int64) (float64, bool, error) {
	var duration float64
	err := c.db.QueryRow(`
		SELECT duration FROM probe_durations
		WHERE path = ? AND size = ? AND mtime = ?
	`, path, size, mtime).Scan(&duration)

	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return duration, true, nil
}

// Store records the duration of path, replacing any stale entry.
func (c *Cache) Store(path string, size, mtime int64, duration float64) error {
	_, err := c.db.Exec(`
		INSERT INTO probe_durations (path, size, mtime, duration, probed_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(path) DO UPDATE SET
			size = excluded.size,
			mtime = excluded.mtime,
			duration = excluded.duration,
			probed_at = excluded.probed_at
	`, path, size, mtime, duration, c.now().Unix())
	return err
}

// Prune removes entries probed before cutoff and reports how many went.
func (c *Cache) Prune(cutoff time.Time) (int64, error) {
	res, err := c.db.Exec(`DELETE FROM probe_durations WHERE probed_at < ?`, cutoff.Unix())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Verify Cache implements media.DurationCache at compile time.
var _ media.DurationCache = (*Cache)(nil)
