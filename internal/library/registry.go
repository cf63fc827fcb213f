package library

import (
	"fmt"
	"strings"

	"librarian/pkg/types"
)

// BookParams carries the caller-supplied fields for a new book.
// Optional fields left empty receive their absent sentinels.
type BookParams struct {
	Title    string
	Author   string
	ISBN     string
	Category string
	Year     *int
}

// AddBook registers a new catalog entry. Duplicate prevention depends
// on whether an ISBN is supplied: with one, the ISBN must be unique
// (exact, case-sensitive); without one, the title+author pair must be
// unique (case-insensitive). IDs are assigned monotonically and never
// reused.
func (m *Manager) AddBook(p BookParams) (*types.Book, error) {
	if p.ISBN != "" {
		for _, b := range m.col.Books {
			if b.ISBN == p.ISBN {
				return nil, fmt.Errorf("%q: %w", p.ISBN, types.ErrDuplicateISBN)
			}
		}
	} else {
		for _, b := range m.col.Books {
			if strings.EqualFold(b.Title, p.Title) && strings.EqualFold(b.Author, p.Author) {
				return nil, fmt.Errorf("%q by %q: %w", p.Title, p.Author, types.ErrDuplicateBook)
			}
		}
	}

	if p.Year != nil && !types.ValidYear(*p.Year, m.now()) {
		return nil, fmt.Errorf("%d: %w", *p.Year, types.ErrInvalidYear)
	}

	book := &types.Book{
		ID:        m.col.NextBookID(),
		Title:     p.Title,
		Author:    p.Author,
		ISBN:      p.ISBN,
		Category:  p.Category,
		Status:    types.BookAvailable,
		DateAdded: m.today(),
		Year:      p.Year,
	}
	if book.ISBN == "" {
		book.ISBN = types.NoValue
	}
	if book.Category == "" {
		book.Category = types.DefaultCategory
	}

	m.col.Books = append(m.col.Books, book)
	if err := m.flush(); err != nil {
		return nil, err
	}
	return book, nil
}

// DeleteBook removes a book permanently. The identifier is resolved
// with no status filter, so a shared title is ambiguous across all
// copies. Only available books can be deleted; loan history keeps
// referencing the removed ID.
func (m *Manager) DeleteBook(identifier string) (*types.Book, error) {
	book, err := m.resolveBook(identifier, "")
	if err != nil {
		return nil, err
	}
	if !book.Available() {
		return nil, fmt.Errorf("%q: %w", book.Title, types.ErrBookBorrowed)
	}

	m.col.RemoveBook(book.ID)
	if err := m.flush(); err != nil {
		return nil, err
	}
	return book, nil
}

// AddUser registers a borrower. The ID is caller-supplied and must be
// unique; the email check is the minimal contains-@ format test.
func (m *Manager) AddUser(name, id, email string) (*types.User, error) {
	if m.col.UserByID(id) != nil {
		return nil, fmt.Errorf("%q: %w", id, types.ErrDuplicateUser)
	}
	if email != "" && !types.ValidEmail(email) {
		return nil, fmt.Errorf("%q: %w", email, types.ErrInvalidEmail)
	}

	user := &types.User{
		ID:               id,
		Name:             name,
		Email:            email,
		RegistrationDate: m.today(),
		Status:           types.UserActive,
	}
	if user.Email == "" {
		user.Email = types.NoValue
	}

	m.col.Users = append(m.col.Users, user)
	if err := m.flush(); err != nil {
		return nil, err
	}
	return user, nil
}

// DeactivateUser soft-deletes a borrower. Open loans block the
// transition; an already-inactive user is a reported no-op, not an
// error.
func (m *Manager) DeactivateUser(id string) (user *types.User, changed bool, err error) {
	user = m.col.UserByID(id)
	if user == nil {
		return nil, false, fmt.Errorf("%q: %w", id, types.ErrUserNotFound)
	}
	changed, err = user.Deactivate()
	if err != nil {
		return nil, false, fmt.Errorf("user %q has %d active loans: %w", id, user.ActiveLoans, err)
	}
	if !changed {
		return user, false, nil
	}
	if err := m.flush(); err != nil {
		return nil, false, err
	}
	return user, true, nil
}

// ReactivateUser re-enables a deactivated borrower. Idempotent.
func (m *Manager) ReactivateUser(id string) (user *types.User, changed bool, err error) {
	user = m.col.UserByID(id)
	if user == nil {
		return nil, false, fmt.Errorf("%q: %w", id, types.ErrUserNotFound)
	}
	if !user.Reactivate() {
		return user, false, nil
	}
	if err := m.flush(); err != nil {
		return nil, false, err
	}
	return user, true, nil
}
