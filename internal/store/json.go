// Wire record structures for the persisted document. These mirror the
// on-disk field names and keep date handling at the store boundary;
// domain types carry parsed time.Time values, validated once at load.
package store

import (
	"fmt"
	"time"

	"librarian/pkg/types"
)

// dateFormat is the on-disk representation of all dates.
const dateFormat = "2006-01-02"

// documentJSON is the single persisted document: three named arrays
// plus the revision header. Insertion order within each array is
// preserved.
type documentJSON struct {
	Revision string     `json:"revision,omitempty"`
	SavedAt  string     `json:"saved_at,omitempty"`
	Books    []bookJSON `json:"books"`
	Users    []userJSON `json:"users"`
	Loans    []loanJSON `json:"loans"`
}

type bookJSON struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	ISBN      string `json:"isbn"`
	Category  string `json:"category"`
	Year      *int   `json:"year"`
	Status    string `json:"status"`
	DateAdded string `json:"date_added"`
	LoanCount int    `json:"loan_count"`
}

type userJSON struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Email            string  `json:"email"`
	RegistrationDate string  `json:"registration_date"`
	ActiveLoans      int     `json:"active_loans"`
	TotalLoans       int     `json:"total_loans"`
	TotalPenalties   float64 `json:"total_penalties"`
	Status           string  `json:"status"`
}

type loanJSON struct {
	ID               int     `json:"id"`
	BookID           int     `json:"book_id"`
	BookTitle        string  `json:"book_title"`
	UserID           string  `json:"user_id"`
	UserName         string  `json:"user_name"`
	LoanDate         string  `json:"loan_date"`
	DueDate          string  `json:"return_date"`
	ActualReturnDate *string `json:"actual_return_date"`
	Status           string  `json:"status"`
	Penalty          float64 `json:"penalty"`
}

func formatDate(t time.Time) string { return t.Format(dateFormat) }

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date %q: %w", s, err)
	}
	return t, nil
}

func bookToRecord(b *types.Book) bookJSON {
	return bookJSON{
		ID:        b.ID,
		Title:     b.Title,
		Author:    b.Author,
		ISBN:      b.ISBN,
		Category:  b.Category,
		Year:      b.Year,
		Status:    b.Status,
		DateAdded: formatDate(b.DateAdded),
		LoanCount: b.LoanCount,
	}
}

func bookFromRecord(r bookJSON) (*types.Book, error) {
	if r.Status != types.BookAvailable && r.Status != types.BookBorrowed {
		return nil, fmt.Errorf("book %d: unknown status %q", r.ID, r.Status)
	}
	added, err := parseDate(r.DateAdded)
	if err != nil {
		return nil, fmt.Errorf("book %d: %w", r.ID, err)
	}
	return &types.Book{
		ID:        r.ID,
		Title:     r.Title,
		Author:    r.Author,
		ISBN:      r.ISBN,
		Category:  r.Category,
		Year:      r.Year,
		Status:    r.Status,
		DateAdded: added,
		LoanCount: r.LoanCount,
	}, nil
}

func userToRecord(u *types.User) userJSON {
	return userJSON{
		ID:               u.ID,
		Name:             u.Name,
		Email:            u.Email,
		RegistrationDate: formatDate(u.RegistrationDate),
		ActiveLoans:      u.ActiveLoans,
		TotalLoans:       u.TotalLoans,
		TotalPenalties:   u.TotalPenalties,
		Status:           u.Status,
	}
}

func userFromRecord(r userJSON) (*types.User, error) {
	if r.Status != types.UserActive && r.Status != types.UserInactive {
		return nil, fmt.Errorf("user %s: unknown status %q", r.ID, r.Status)
	}
	registered, err := parseDate(r.RegistrationDate)
	if err != nil {
		return nil, fmt.Errorf("user %s: %w", r.ID, err)
	}
	return &types.User{
		ID:               r.ID,
		Name:             r.Name,
		Email:            r.Email,
		RegistrationDate: registered,
		ActiveLoans:      r.ActiveLoans,
		TotalLoans:       r.TotalLoans,
		TotalPenalties:   r.TotalPenalties,
		Status:           r.Status,
	}, nil
}

func loanToRecord(l *types.Loan) loanJSON {
	rec := loanJSON{
		ID:        l.ID,
		BookID:    l.BookID,
		BookTitle: l.BookTitle,
		UserID:    l.UserID,
		UserName:  l.UserName,
		LoanDate:  formatDate(l.LoanDate),
		DueDate:   formatDate(l.DueDate),
		Status:    l.Status,
		Penalty:   l.Penalty,
	}
	if l.ActualReturnDate != nil {
		s := formatDate(*l.ActualReturnDate)
		rec.ActualReturnDate = &s
	}
	return rec
}

func loanFromRecord(r loanJSON) (*types.Loan, error) {
	if r.Status != types.LoanActive && r.Status != types.LoanReturned {
		return nil, fmt.Errorf("loan %d: unknown status %q", r.ID, r.Status)
	}
	loanDate, err := parseDate(r.LoanDate)
	if err != nil {
		return nil, fmt.Errorf("loan %d: %w", r.ID, err)
	}
	dueDate, err := parseDate(r.DueDate)
	if err != nil {
		return nil, fmt.Errorf("loan %d: %w", r.ID, err)
	}
	loan := &types.Loan{
		ID:        r.ID,
		BookID:    r.BookID,
		BookTitle: r.BookTitle,
		UserID:    r.UserID,
		UserName:  r.UserName,
		LoanDate:  loanDate,
		DueDate:   dueDate,
		Status:    r.Status,
		Penalty:   r.Penalty,
	}
	if r.ActualReturnDate != nil {
		returned, err := parseDate(*r.ActualReturnDate)
		if err != nil {
			return nil, fmt.Errorf("loan %d: %w", r.ID, err)
		}
		loan.ActualReturnDate = &returned
	}
	return loan, nil
}

// documentFromCollection builds the wire document. The revision header
// is carried through as stamped by the caller.
func documentFromCollection(col *types.Collection) documentJSON {
	doc := documentJSON{
		Revision: col.Revision,
		SavedAt:  col.SavedAt,
		Books:    make([]bookJSON, 0, len(col.Books)),
		Users:    make([]userJSON, 0, len(col.Users)),
		Loans:    make([]loanJSON, 0, len(col.Loans)),
	}
	for _, b := range col.Books {
		doc.Books = append(doc.Books, bookToRecord(b))
	}
	for _, u := range col.Users {
		doc.Users = append(doc.Users, userToRecord(u))
	}
	for _, l := range col.Loans {
		doc.Loans = append(doc.Loans, loanToRecord(l))
	}
	return doc
}

// collectionFromDocument converts wire records back to domain types.
// Records that fail validation are skipped and reported through warn;
// a bad record never fails the whole load.
func collectionFromDocument(doc documentJSON, warn func(msg string, err error)) *types.Collection {
	col := types.NewCollection()
	col.Revision = doc.Revision
	col.SavedAt = doc.SavedAt
	for _, r := range doc.Books {
		b, err := bookFromRecord(r)
		if err != nil {
			warn("skipping invalid book record", err)
			continue
		}
		col.Books = append(col.Books, b)
	}
	for _, r := range doc.Users {
		u, err := userFromRecord(r)
		if err != nil {
			warn("skipping invalid user record", err)
			continue
		}
		col.Users = append(col.Users, u)
	}
	for _, r := range doc.Loans {
		l, err := loanFromRecord(r)
		if err != nil {
			warn("skipping invalid loan record", err)
			continue
		}
		col.Loans = append(col.Loans, l)
	}
	return col
}
