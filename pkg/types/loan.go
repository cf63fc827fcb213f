package types

import "time"

// Loan statuses. A loan is created active by a borrow and frozen as
// returned by a return; it never reopens.
const (
	LoanActive   = "ACTIVE"
	LoanReturned = "RETURNED"
)

// Loan duration bounds in days.
const (
	MinLoanDays = 1
	MaxLoanDays = 60
)

// Loan records one borrow/return cycle. Title and name are snapshots
// taken at borrow time so history survives book deletion. Loans are
// append-only; IDs are never reused.
type Loan struct {
	ID               int        `json:"id"`
	BookID           int        `json:"book_id"`
	BookTitle        string     `json:"book_title"`
	UserID           string     `json:"user_id"`
	UserName         string     `json:"user_name"`
	LoanDate         time.Time  `json:"loan_date"`
	DueDate          time.Time  `json:"return_date"`
	ActualReturnDate *time.Time `json:"actual_return_date"`
	Status           string     `json:"status"`
	Penalty          float64    `json:"penalty"`
}

// Active reports whether the loan is still open.
func (l *Loan) Active() bool { return l.Status == LoanActive }

// OverdueDays returns the number of whole days the loan is past due on
// the given date, or 0 if it is not overdue. Only the calendar date is
// compared; time of day is ignored.
func (l *Loan) OverdueDays(on time.Time) int {
	due := DateOnly(l.DueDate)
	day := DateOnly(on)
	if !day.After(due) {
		return 0
	}
	return int(day.Sub(due).Hours() / 24)
}

// Close freezes the loan as returned on the given date, fixing the
// penalty at overdueDays × ratePerDay. The penalty is never recomputed
// afterward.
func (l *Loan) Close(on time.Time, ratePerDay float64) {
	day := DateOnly(on)
	l.Penalty = float64(l.OverdueDays(on)) * ratePerDay
	l.ActualReturnDate = &day
	l.Status = LoanReturned
}

// DateOnly truncates t to midnight UTC. All loan arithmetic is
// date-only.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
