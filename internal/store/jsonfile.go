// Flat-file JSON store: one document holding the whole collection,
// replaced atomically on every save with the temp-file, fsync, rename
// pattern.
package store

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"librarian/pkg/types"
)

// documentFile is the store file name inside the data directory.
const documentFile = "library.json"

// JSONStore persists the collection as a single indented JSON document.
type JSONStore struct {
	path   string
	logger *slog.Logger
}

// NewJSONStore returns a store writing to dataDir/library.json.
func NewJSONStore(dataDir string, logger *slog.Logger) *JSONStore {
	return &JSONStore{
		path:   filepath.Join(dataDir, documentFile),
		logger: logger,
	}
}

// Load reads the document. A missing or unparseable file yields an
// empty collection with the reason recorded; it never returns an
// error to the caller.
func (s *JSONStore) Load() LoadResult {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return LoadResult{
				Collection: types.NewCollection(),
				Empty:      true,
				Reason:     "store file does not exist",
			}
		}
		s.logger.Warn("store file unreadable, starting empty", "path", s.path, "error", err)
		return LoadResult{
			Collection: types.NewCollection(),
			Empty:      true,
			Reason:     fmt.Sprintf("store file unreadable: %v", err),
		}
	}

	var doc documentJSON
	if err := json.Unmarshal(data, &doc); err != nil {
		s.logger.Warn("store file is not valid JSON, starting empty", "path", s.path, "error", err)
		return LoadResult{
			Collection: types.NewCollection(),
			Empty:      true,
			Reason:     fmt.Sprintf("store file is not valid JSON: %v", err),
		}
	}

	col := collectionFromDocument(doc, func(msg string, err error) {
		s.logger.Warn(msg, "path", s.path, "error", err)
	})
	return LoadResult{Collection: col}
}

// Save writes the whole collection atomically. A failed save is
// surfaced to the caller; the previous document stays intact.
func (s *JSONStore) Save(col *types.Collection) error {
	stampRevision(col)

	data, err := json.MarshalIndent(documentFromCollection(col), "", "    ")
	if err != nil {
		return fmt.Errorf("encoding store document: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".library-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	w := bufio.NewWriter(tmp)
	if _, err := w.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing document: %w", err)
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("flushing buffer: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

// Close is a no-op for the flat-file store.
func (s *JSONStore) Close() error { return nil }
