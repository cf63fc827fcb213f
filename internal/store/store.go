// Package store implements the persistence gateway for the librarian
// catalog: a flat JSON document store (default) and a SQLite store
// behind one interface. Both persist the whole Collection on every
// save; neither ever fails a load, degrading a missing or corrupt
// store to an empty collection instead.
package store

import (
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"librarian/pkg/types"
)

// LoadResult is the outcome of reading the store. Collection is always
// usable; Empty marks the degraded path where the store was absent or
// unreadable and Reason says why. Load never raises to the caller.
type LoadResult struct {
	Collection *types.Collection
	Empty      bool
	Reason     string
}

// Store persists the Collection aggregate. Save is a whole-document
// replace; a crash between mutation and Save loses that mutation but
// cannot corrupt the store.
type Store interface {
	Load() LoadResult
	Save(col *types.Collection) error
	Close() error
}

// Open creates the store selected by cfg.Backend, creating the data
// directory if needed.
func Open(cfg types.Config, logger *slog.Logger) (Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}

	dataDir := cfg.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, err
	}

	if cfg.Backend == types.BackendSQLite {
		return OpenSQLite(dataDir, logger)
	}
	return NewJSONStore(dataDir, logger), nil
}

// stampRevision marks the collection with a fresh revision ID and save
// timestamp before it is written out.
func stampRevision(col *types.Collection) {
	col.Revision = newRevision()
	col.SavedAt = time.Now().UTC().Format(time.RFC3339)
}

// newRevision generates a UUID v7 revision, falling back to v4 if the
// system clock refuses monotonic ordering.
func newRevision() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
