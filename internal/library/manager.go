// Package library implements the catalog core: identifier resolution,
// book/user registry invariants, the loan lifecycle state machine,
// disambiguation, reports and CSV import/export. All state lives in
// one Collection owned by the Manager for the duration of a single
// command; every mutating operation flushes the whole collection to
// the store before returning.
package library

import (
	"fmt"
	"log/slog"
	"time"

	"librarian/internal/store"
	"librarian/pkg/types"
)

// Chooser obtains a single book ID when an identifier matches several
// eligible books. It may block awaiting operator input. Returning
// ok=false cancels the operation. The Manager validates the returned
// ID against the candidate set and re-invokes the Chooser if it is not
// a candidate.
type Chooser interface {
	Choose(identifier string, candidates []*types.Book) (id int, ok bool, err error)
}

// Manager owns the in-memory Collection and coordinates every catalog
// operation. It is single-threaded: one command per process
// invocation, no concurrent callers.
type Manager struct {
	col     *types.Collection
	store   store.Store
	cfg     types.Config
	chooser Chooser
	logger  *slog.Logger

	// now is replaceable in tests; all loan arithmetic is date-only.
	now func() time.Time
}

// New loads the collection from the store and returns a ready Manager.
// A missing or corrupt store is logged and treated as empty.
func New(st store.Store, cfg types.Config, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	res := st.Load()
	if res.Empty {
		logger.Info("starting with empty collection", "reason", res.Reason)
	}
	return &Manager{
		col:    res.Collection,
		store:  st,
		cfg:    cfg,
		logger: logger,
		now:    time.Now,
	}
}

// SetChooser installs the disambiguation channel. Without one,
// ambiguous identifiers fail with *types.AmbiguousError.
func (m *Manager) SetChooser(c Chooser) { m.chooser = c }

// Collection exposes the aggregate read-only to report and export
// consumers.
func (m *Manager) Collection() *types.Collection { return m.col }

// flush writes the whole collection through to the store.
func (m *Manager) flush() error {
	if err := m.store.Save(m.col); err != nil {
		return fmt.Errorf("saving catalog: %w", err)
	}
	return nil
}

// today returns the current date truncated to midnight.
func (m *Manager) today() time.Time { return types.DateOnly(m.now()) }
