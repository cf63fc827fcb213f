package types

import "strconv"

// Collection is the root aggregate for the whole catalog: every book,
// user and loan, owned exclusively by one command invocation. It is
// loaded fresh from the store at startup and flushed whole after every
// mutation. Revision and SavedAt are stamped by the store on flush.
type Collection struct {
	Revision string  `json:"revision,omitempty"`
	SavedAt  string  `json:"saved_at,omitempty"`
	Books    []*Book `json:"books"`
	Users    []*User `json:"users"`
	Loans    []*Loan `json:"loans"`
}

// NewCollection returns an empty collection with non-nil slices.
func NewCollection() *Collection {
	return &Collection{
		Books: []*Book{},
		Users: []*User{},
		Loans: []*Loan{},
	}
}

// NextBookID returns max(existing IDs)+1, or 1 for an empty catalog.
// Deleted books leave gaps; IDs are never reassigned.
func (c *Collection) NextBookID() int {
	max := 0
	for _, b := range c.Books {
		if b.ID > max {
			max = b.ID
		}
	}
	return max + 1
}

// NextLoanID returns max(existing IDs)+1, or 1 when no loans exist.
func (c *Collection) NextLoanID() int {
	max := 0
	for _, l := range c.Loans {
		if l.ID > max {
			max = l.ID
		}
	}
	return max + 1
}

// BookByID returns the book with the given ID, or nil.
func (c *Collection) BookByID(id int) *Book {
	for _, b := range c.Books {
		if b.ID == id {
			return b
		}
	}
	return nil
}

// UserByID returns the user with the given ID, or nil. IDs compare as
// strings.
func (c *Collection) UserByID(id string) *User {
	for _, u := range c.Users {
		if u.ID == id {
			return u
		}
	}
	return nil
}

// ActiveLoanForBook returns the single active loan referencing the
// book, or nil. The loan engine maintains at most one.
func (c *Collection) ActiveLoanForBook(bookID int) *Loan {
	for _, l := range c.Loans {
		if l.BookID == bookID && l.Active() {
			return l
		}
	}
	return nil
}

// ActiveLoanFor returns the active loan for the given book and user,
// or nil. A book borrowed under a different user's loan does not match.
func (c *Collection) ActiveLoanFor(bookID int, userID string) *Loan {
	for _, l := range c.Loans {
		if l.BookID == bookID && l.UserID == userID && l.Active() {
			return l
		}
	}
	return nil
}

// RemoveBook deletes the book with the given ID from the catalog.
// Loan history referencing the ID is kept untouched.
func (c *Collection) RemoveBook(id int) {
	for i, b := range c.Books {
		if b.ID == id {
			c.Books = append(c.Books[:i], c.Books[i+1:]...)
			return
		}
	}
}

// FormatBookID renders a book ID the way identifiers are matched
// against it.
func FormatBookID(id int) string { return strconv.Itoa(id) }
