package library

import (
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"librarian/internal/store"
	"librarian/pkg/types"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// testManager builds a Manager over a fresh JSON store with the clock
// pinned to 2026-03-01.
func testManager(t *testing.T) *Manager {
	t.Helper()
	cfg := types.DefaultConfig()
	cfg.DataDir = t.TempDir()
	st := store.NewJSONStore(cfg.DataDir, testLogger())
	m := New(st, cfg, testLogger())
	m.now = func() time.Time { return date(2026, time.March, 1) }
	return m
}

// setClock pins the manager's clock to the given date.
func setClock(m *Manager, d time.Time) {
	m.now = func() time.Time { return d }
}

// addBook registers a book and fails the test on error.
func addBook(t *testing.T, m *Manager, title, author, isbn string) *types.Book {
	t.Helper()
	b, err := m.AddBook(BookParams{Title: title, Author: author, ISBN: isbn})
	require.NoError(t, err)
	return b
}

// addUser registers a user and fails the test on error.
func addUser(t *testing.T, m *Manager, name, id string) *types.User {
	t.Helper()
	u, err := m.AddUser(name, id, "")
	require.NoError(t, err)
	return u
}

// assertStatusInvariant checks that every book is BORROWED exactly
// when one active loan references it.
func assertStatusInvariant(t *testing.T, col *types.Collection) {
	t.Helper()
	for _, b := range col.Books {
		active := 0
		for _, l := range col.Loans {
			if l.BookID == b.ID && l.Active() {
				active++
			}
		}
		if b.Status == types.BookBorrowed {
			require.Equal(t, 1, active, "borrowed book %d must have exactly one active loan", b.ID)
		} else {
			require.Equal(t, 0, active, "available book %d must have no active loans", b.ID)
		}
	}
}

// scriptedChooser answers disambiguation prompts from a fixed list;
// an exhausted list cancels.
type scriptedChooser struct {
	answers []int
	calls   int
}

func (c *scriptedChooser) Choose(identifier string, candidates []*types.Book) (int, bool, error) {
	c.calls++
	if len(c.answers) == 0 {
		return 0, false, nil
	}
	id := c.answers[0]
	c.answers = c.answers[1:]
	return id, true, nil
}
