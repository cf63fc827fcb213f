package library

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"librarian/pkg/types"
)

// seedLoans builds a small catalog with one overdue, one due-today and
// one comfortably active loan as of 2026-03-20.
func seedLoans(t *testing.T, m *Manager) {
	t.Helper()
	addBook(t, m, "1984", "George Orwell", "X1")
	addBook(t, m, "Dune", "Frank Herbert", "X2")
	addBook(t, m, "Emma", "Jane Austen", "X3")
	addUser(t, m, "Ana", "U1")
	addUser(t, m, "Bob", "U2")

	// Borrowed 2026-03-01 for 14 days: due 03-15, 5 days overdue.
	_, err := m.Borrow("1984", "U1", 14)
	require.NoError(t, err)

	// Borrowed 2026-03-06 for 14 days: due exactly 03-20.
	setClock(m, date(2026, time.March, 6))
	_, err = m.Borrow("Dune", "U2", 14)
	require.NoError(t, err)

	// Borrowed 2026-03-10 for 30 days: not overdue.
	setClock(m, date(2026, time.March, 10))
	_, err = m.Borrow("Emma", "U1", 30)
	require.NoError(t, err)

	setClock(m, date(2026, time.March, 20))
}

func TestOverdueLoansIncludesDueToday(t *testing.T) {
	m := testManager(t)
	seedLoans(t, m)

	entries := m.OverdueLoans()
	require.Len(t, entries, 2)

	assert.Equal(t, "1984", entries[0].Loan.BookTitle)
	assert.Equal(t, "George Orwell", entries[0].Author)
	assert.Equal(t, 5, entries[0].DaysOverdue)
	assert.Equal(t, 5.0, entries[0].AccruedPenalty)

	// Due today: listed with zero days and zero accrued penalty.
	assert.Equal(t, "Dune", entries[1].Loan.BookTitle)
	assert.Equal(t, 0, entries[1].DaysOverdue)
	assert.Equal(t, 0.0, entries[1].AccruedPenalty)
}

func TestActiveLoansAndListFilters(t *testing.T) {
	m := testManager(t)
	seedLoans(t, m)

	assert.Len(t, m.ActiveLoans(), 3)
	assert.Len(t, m.ListBooks(""), 3)
	assert.Len(t, m.ListBooks(types.BookBorrowed), 3)
	assert.Empty(t, m.ListBooks(types.BookAvailable))
	assert.Len(t, m.ListUsers(), 2)

	_, err := m.Return("1984", "U1")
	require.NoError(t, err)
	assert.Len(t, m.ActiveLoans(), 2)
	assert.Len(t, m.ListBooks(types.BookAvailable), 1)
}

func TestPopularBooksOrdering(t *testing.T) {
	m := testManager(t)
	addBook(t, m, "1984", "George Orwell", "X1")
	addBook(t, m, "Dune", "Frank Herbert", "X2")
	addBook(t, m, "Emma", "Jane Austen", "X3")
	addUser(t, m, "Ana", "U1")

	for i := 0; i < 3; i++ {
		_, err := m.Borrow("Dune", "U1", 7)
		require.NoError(t, err)
		_, err = m.Return("Dune", "U1")
		require.NoError(t, err)
	}
	_, err := m.Borrow("1984", "U1", 7)
	require.NoError(t, err)

	top := m.PopularBooks(5)
	require.Len(t, top, 2, "never-borrowed books are excluded")
	assert.Equal(t, "Dune", top[0].Title)
	assert.Equal(t, "1984", top[1].Title)

	assert.Len(t, m.PopularBooks(1), 1)
}

func TestTopBorrowersExcludesInactiveAndIdle(t *testing.T) {
	m := testManager(t)
	addBook(t, m, "1984", "George Orwell", "X1")
	addUser(t, m, "Ana", "U1")
	addUser(t, m, "Bob", "U2")
	addUser(t, m, "Cleo", "U3")

	_, err := m.Borrow("1984", "U2", 7)
	require.NoError(t, err)
	_, err = m.Return("1984", "U2")
	require.NoError(t, err)
	_, _, err = m.DeactivateUser("U2")
	require.NoError(t, err)

	_, err = m.Borrow("1984", "U1", 7)
	require.NoError(t, err)

	top := m.TopBorrowers(10)
	require.Len(t, top, 1, "inactive and zero-loan users are excluded")
	assert.Equal(t, "Ana", top[0].Name)
}

func TestSearchBooks(t *testing.T) {
	m := testManager(t)
	addBook(t, m, "1984", "George Orwell", "X1")
	b, err := m.AddBook(BookParams{Title: "Animal Farm", Author: "George Orwell", ISBN: "X2", Category: "Fiction"})
	require.NoError(t, err)

	byAuthor, err := m.SearchBooks("orwell", SearchAuthor)
	require.NoError(t, err)
	assert.Len(t, byAuthor, 2)

	byTitle, err := m.SearchBooks("farm", SearchTitle)
	require.NoError(t, err)
	require.Len(t, byTitle, 1)
	assert.Equal(t, b.ID, byTitle[0].ID)

	byCategory, err := m.SearchBooks("fic", SearchCategory)
	require.NoError(t, err)
	assert.Len(t, byCategory, 1)

	_, err = m.SearchBooks("x", "publisher")
	require.Error(t, err)
}

func TestComputeStatistics(t *testing.T) {
	m := testManager(t)
	seedLoans(t, m)

	// Return 1984 five days late: penalty 5 collected.
	_, err := m.Return("1984", "U1")
	require.NoError(t, err)

	s := m.ComputeStatistics(5)
	assert.Equal(t, 3, s.TotalBooks)
	assert.Equal(t, 1, s.AvailableBooks)
	assert.Equal(t, 2, s.BorrowedBooks)
	assert.Equal(t, 3, s.UniqueAuthors)
	assert.Equal(t, 2, s.TotalUsers)
	assert.Equal(t, 2, s.UsersWithActiveLoans)
	assert.Equal(t, 3, s.TotalLoans)
	assert.Equal(t, 2, s.OpenLoans)
	assert.Equal(t, 0, s.OverdueLoans, "due today is not strictly past due")
	assert.Equal(t, 0.0, s.OnTimeReturnRate)
	assert.Equal(t, 5.0, s.PenaltiesCollected)
	require.NotEmpty(t, s.TopBooks)
	assert.Equal(t, "1984", s.TopBooks[0].Title)
	assert.Len(t, s.TopCategories, 1)
	assert.Equal(t, types.DefaultCategory, s.TopCategories[0].Category)
}
