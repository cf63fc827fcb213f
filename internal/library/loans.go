package library

import (
	"fmt"

	"librarian/pkg/types"
)

// Borrow creates a loan for the identified book. The identifier is
// resolved among available copies only, so a title shared with a
// borrowed copy is not ambiguous here. All validation happens before
// any mutation: the operation either commits every field update
// (loan, book status, counters) or none.
func (m *Manager) Borrow(identifier, userID string, days int) (*types.Loan, error) {
	book, err := m.resolveBook(identifier, types.BookAvailable)
	if err != nil {
		return nil, err
	}

	user := m.col.UserByID(userID)
	if user == nil {
		return nil, fmt.Errorf("%q: %w", userID, types.ErrUserNotFound)
	}
	if !user.Active() {
		return nil, fmt.Errorf("user %q: %w", userID, types.ErrUserInactive)
	}

	// Authoritative status check: a direct ID or ISBN hit can resolve
	// to a borrowed copy. Report when the book is due back.
	if !book.Available() {
		if active := m.col.ActiveLoanForBook(book.ID); active != nil {
			return nil, fmt.Errorf("%q is due back %s: %w",
				book.Title, active.DueDate.Format("2006-01-02"), types.ErrBookUnavailable)
		}
		return nil, fmt.Errorf("%q: %w", book.Title, types.ErrBookUnavailable)
	}

	if days < types.MinLoanDays || days > types.MaxLoanDays {
		return nil, fmt.Errorf("%d days: %w", days, types.ErrInvalidDuration)
	}

	loanDate := m.today()
	loan := &types.Loan{
		ID:        m.col.NextLoanID(),
		BookID:    book.ID,
		BookTitle: book.Title,
		UserID:    user.ID,
		UserName:  user.Name,
		LoanDate:  loanDate,
		DueDate:   loanDate.AddDate(0, 0, days),
		Status:    types.LoanActive,
	}

	m.col.Loans = append(m.col.Loans, loan)
	book.Status = types.BookBorrowed
	book.LoanCount++
	user.ActiveLoans++
	user.TotalLoans++

	if err := m.flush(); err != nil {
		return nil, err
	}
	return loan, nil
}

// Return closes the active loan for the identified book and user. The
// identifier is resolved among borrowed copies. The penalty is fixed
// at return time and never recomputed. Returning under a user other
// than the borrower fails; it must not silently close someone else's
// loan.
func (m *Manager) Return(identifier, userID string) (*types.Loan, error) {
	book, err := m.resolveBook(identifier, types.BookBorrowed)
	if err != nil {
		return nil, err
	}

	user := m.col.UserByID(userID)
	if user == nil {
		return nil, fmt.Errorf("%q: %w", userID, types.ErrUserNotFound)
	}

	loan := m.col.ActiveLoanFor(book.ID, userID)
	if loan == nil {
		return nil, fmt.Errorf("book %q, user %q: %w", book.Title, userID, types.ErrNoActiveLoan)
	}

	loan.Close(m.now(), m.cfg.PenaltyPerDay)
	book.Status = types.BookAvailable
	if user.ActiveLoans > 0 {
		user.ActiveLoans--
	}
	user.TotalPenalties += loan.Penalty

	if err := m.flush(); err != nil {
		return nil, err
	}
	return loan, nil
}
