package library

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"librarian/pkg/types"
)

func TestAmbiguousBorrowUsesChosenCopy(t *testing.T) {
	m := testManager(t)
	first := addBook(t, m, "Dune", "Frank Herbert", "D1")
	second := addBook(t, m, "Dune", "Frank Herbert", "D2")
	addUser(t, m, "Ana", "U1")

	chooser := &scriptedChooser{answers: []int{second.ID}}
	m.SetChooser(chooser)

	loan, err := m.Borrow("dune", "U1", 14)
	require.NoError(t, err)
	assert.Equal(t, 1, chooser.calls)
	assert.Equal(t, second.ID, loan.BookID)

	// Exactly the chosen copy is borrowed; the other stays available.
	assert.Equal(t, types.BookBorrowed, second.Status)
	assert.Equal(t, types.BookAvailable, first.Status)
	assertStatusInvariant(t, m.Collection())
}

func TestChooserReinvokedOnInvalidID(t *testing.T) {
	m := testManager(t)
	addBook(t, m, "Dune", "Frank Herbert", "D1")
	second := addBook(t, m, "Dune", "Frank Herbert", "D2")
	addUser(t, m, "Ana", "U1")

	// First answer is not a candidate and must be rejected, not
	// crash or silently fall back.
	chooser := &scriptedChooser{answers: []int{999, second.ID}}
	m.SetChooser(chooser)

	loan, err := m.Borrow("Dune", "U1", 14)
	require.NoError(t, err)
	assert.Equal(t, 2, chooser.calls)
	assert.Equal(t, second.ID, loan.BookID)
}

func TestChooserCancelLeavesStateUntouched(t *testing.T) {
	m := testManager(t)
	addBook(t, m, "Dune", "Frank Herbert", "D1")
	addBook(t, m, "Dune", "Frank Herbert", "D2")
	addUser(t, m, "Ana", "U1")

	m.SetChooser(&scriptedChooser{})
	_, err := m.Borrow("Dune", "U1", 14)
	require.ErrorIs(t, err, types.ErrCanceled)

	assert.Empty(t, m.Collection().Loans)
	for _, b := range m.Collection().Books {
		assert.Equal(t, types.BookAvailable, b.Status)
	}
	assert.Equal(t, 0, m.Collection().UserByID("U1").ActiveLoans)
}

func TestWithoutChooserAmbiguityIsReported(t *testing.T) {
	m := testManager(t)
	addBook(t, m, "Dune", "Frank Herbert", "D1")
	addBook(t, m, "Dune", "Frank Herbert", "D2")
	addUser(t, m, "Ana", "U1")

	_, err := m.Borrow("Dune", "U1", 14)
	var ambiguous *types.AmbiguousError
	require.ErrorAs(t, err, &ambiguous)
	assert.Len(t, ambiguous.Matches, 2)
	assert.Equal(t, "Dune", ambiguous.Identifier)
}

// A title with one available and one borrowed copy is never ambiguous:
// each operation only searches within its own eligible subset.
func TestMixedStatusTitleIsNotAmbiguous(t *testing.T) {
	m := testManager(t)
	first := addBook(t, m, "Dune", "Frank Herbert", "D1")
	second := addBook(t, m, "Dune", "Frank Herbert", "D2")
	addUser(t, m, "Ana", "U1")
	addUser(t, m, "Bob", "U2")

	chooser := &scriptedChooser{answers: []int{first.ID}}
	m.SetChooser(chooser)
	_, err := m.Borrow("Dune", "U1", 14)
	require.NoError(t, err)
	require.Equal(t, 1, chooser.calls)

	// Borrowing the title again resolves straight to the one
	// remaining available copy.
	loan, err := m.Borrow("Dune", "U2", 14)
	require.NoError(t, err)
	assert.Equal(t, second.ID, loan.BookID)
	assert.Equal(t, 1, chooser.calls, "no prompt for a unique eligible match")

	// Returning the title now has two borrowed copies: ambiguous for
	// return, resolved by the active-loan owner check after choice.
	chooser.answers = []int{first.ID}
	returned, err := m.Return("Dune", "U1")
	require.NoError(t, err)
	assert.Equal(t, first.ID, returned.BookID)
	assert.Equal(t, 2, chooser.calls)

	// One borrowed copy left: return is unambiguous again.
	returned, err = m.Return("Dune", "U2")
	require.NoError(t, err)
	assert.Equal(t, second.ID, returned.BookID)
	assert.Equal(t, 2, chooser.calls)
	assertStatusInvariant(t, m.Collection())
}

func TestTitleOnlyIneligibleMatchIsNotFound(t *testing.T) {
	m := testManager(t)
	addBook(t, m, "Dune", "Frank Herbert", "D1")
	addUser(t, m, "Ana", "U1")

	_, err := m.Borrow("Dune", "U1", 14)
	require.NoError(t, err)

	// The only copy is borrowed, so by title there is nothing to
	// borrow even though the book exists.
	_, err = m.Borrow("Dune", "U1", 14)
	require.ErrorIs(t, err, types.ErrBookNotFound)
}

func TestResolveMatchesISBNAndID(t *testing.T) {
	m := testManager(t)
	book := addBook(t, m, "1984", "George Orwell", "X1")
	addBook(t, m, "Essays", "Anon", "")
	addUser(t, m, "Ana", "U1")

	loan, err := m.Borrow("X1", "U1", 14)
	require.NoError(t, err)
	assert.Equal(t, book.ID, loan.BookID)
	_, err = m.Return(types.FormatBookID(book.ID), "U1")
	require.NoError(t, err)

	// The absent-ISBN sentinel is not a matchable ISBN.
	_, err = m.Borrow(types.NoValue, "U1", 14)
	require.ErrorIs(t, err, types.ErrBookNotFound)
}
