package library

import (
	"fmt"
	"sort"
	"strings"

	"librarian/pkg/types"
)

// OverdueEntry is one row of the overdue report: an active loan at or
// past its due date, with the penalty accrued so far at the current
// rate. A loan due today appears with zero days overdue.
type OverdueEntry struct {
	Loan           *types.Loan
	Author         string
	DaysOverdue    int
	AccruedPenalty float64
}

// OverdueLoans lists active loans due today or earlier, in insertion
// order.
func (m *Manager) OverdueLoans() []OverdueEntry {
	today := m.today()
	var out []OverdueEntry
	for _, l := range m.col.Loans {
		if !l.Active() {
			continue
		}
		if today.Before(types.DateOnly(l.DueDate)) {
			continue
		}
		days := l.OverdueDays(today)
		author := types.NoValue
		if b := m.col.BookByID(l.BookID); b != nil {
			author = b.Author
		}
		out = append(out, OverdueEntry{
			Loan:           l,
			Author:         author,
			DaysOverdue:    days,
			AccruedPenalty: float64(days) * m.cfg.PenaltyPerDay,
		})
	}
	return out
}

// ActiveLoans lists all open loans in insertion order.
func (m *Manager) ActiveLoans() []*types.Loan {
	var out []*types.Loan
	for _, l := range m.col.Loans {
		if l.Active() {
			out = append(out, l)
		}
	}
	return out
}

// PopularBooks returns up to top books ordered by descending loan
// count. Books never borrowed are excluded.
func (m *Manager) PopularBooks(top int) []*types.Book {
	books := make([]*types.Book, 0, len(m.col.Books))
	for _, b := range m.col.Books {
		if b.LoanCount > 0 {
			books = append(books, b)
		}
	}
	sort.SliceStable(books, func(i, j int) bool {
		return books[i].LoanCount > books[j].LoanCount
	})
	if len(books) > top {
		books = books[:top]
	}
	return books
}

// TopBorrowers returns up to top non-deactivated users with at least
// one lifetime loan, ordered by descending total loans.
func (m *Manager) TopBorrowers(top int) []*types.User {
	users := make([]*types.User, 0, len(m.col.Users))
	for _, u := range m.col.Users {
		if u.Status != types.UserInactive && u.TotalLoans > 0 {
			users = append(users, u)
		}
	}
	sort.SliceStable(users, func(i, j int) bool {
		return users[i].TotalLoans > users[j].TotalLoans
	})
	if len(users) > top {
		users = users[:top]
	}
	return users
}

// ListBooks returns the catalog in insertion order, optionally
// filtered by status (types.BookAvailable or types.BookBorrowed).
func (m *Manager) ListBooks(status string) []*types.Book {
	if status == "" {
		return m.col.Books
	}
	var out []*types.Book
	for _, b := range m.col.Books {
		if b.Status == status {
			out = append(out, b)
		}
	}
	return out
}

// ListUsers returns all registered users in insertion order.
func (m *Manager) ListUsers() []*types.User { return m.col.Users }

// Book search fields.
const (
	SearchTitle    = "title"
	SearchAuthor   = "author"
	SearchISBN     = "isbn"
	SearchCategory = "category"
)

// SearchBooks finds books whose field contains the query,
// case-insensitively.
func (m *Manager) SearchBooks(query, field string) ([]*types.Book, error) {
	q := strings.ToLower(query)
	var out []*types.Book
	for _, b := range m.col.Books {
		var hay string
		switch field {
		case SearchTitle:
			hay = b.Title
		case SearchAuthor:
			hay = b.Author
		case SearchISBN:
			hay = b.ISBN
		case SearchCategory:
			hay = b.Category
		default:
			return nil, fmt.Errorf("unknown search field %q", field)
		}
		if strings.Contains(strings.ToLower(hay), q) {
			out = append(out, b)
		}
	}
	return out, nil
}

// CategoryCount pairs a category with how many books it holds.
type CategoryCount struct {
	Category string
	Count    int
}

// Statistics is the full snapshot rendered by the stats command.
type Statistics struct {
	TotalBooks     int
	AvailableBooks int
	BorrowedBooks  int
	Categories     int
	UniqueAuthors  int

	TotalUsers           int
	UsersWithActiveLoans int

	TotalLoans         int
	OpenLoans          int
	OverdueLoans       int
	OnTimeReturnRate   float64
	PenaltiesCollected float64

	TopBooks      []*types.Book
	TopCategories []CategoryCount
	TopUsers      []*types.User
}

// ComputeStatistics aggregates the whole collection. top bounds the
// popular-books list; category and user tops are fixed at three, as
// rendered.
func (m *Manager) ComputeStatistics(top int) Statistics {
	s := Statistics{
		TotalBooks: len(m.col.Books),
		TotalUsers: len(m.col.Users),
		TotalLoans: len(m.col.Loans),
	}

	categories := map[string]int{}
	authors := map[string]bool{}
	for _, b := range m.col.Books {
		if b.Available() {
			s.AvailableBooks++
		} else {
			s.BorrowedBooks++
		}
		categories[b.Category]++
		authors[strings.ToLower(b.Author)] = true
	}
	s.Categories = len(categories)
	s.UniqueAuthors = len(authors)

	for _, u := range m.col.Users {
		if u.ActiveLoans > 0 {
			s.UsersWithActiveLoans++
		}
	}

	today := m.today()
	returned, onTime := 0, 0
	for _, l := range m.col.Loans {
		if l.Active() {
			s.OpenLoans++
			if today.After(types.DateOnly(l.DueDate)) {
				s.OverdueLoans++
			}
			continue
		}
		returned++
		if l.Penalty == 0 {
			onTime++
		}
		s.PenaltiesCollected += l.Penalty
	}
	if returned > 0 {
		s.OnTimeReturnRate = float64(onTime) / float64(returned) * 100
	} else {
		s.OnTimeReturnRate = 100
	}

	s.TopBooks = m.PopularBooks(top)
	s.TopUsers = m.TopBorrowers(3)

	for cat, n := range categories {
		s.TopCategories = append(s.TopCategories, CategoryCount{Category: cat, Count: n})
	}
	sort.SliceStable(s.TopCategories, func(i, j int) bool {
		if s.TopCategories[i].Count != s.TopCategories[j].Count {
			return s.TopCategories[i].Count > s.TopCategories[j].Count
		}
		return s.TopCategories[i].Category < s.TopCategories[j].Category
	})
	if len(s.TopCategories) > 3 {
		s.TopCategories = s.TopCategories[:3]
	}

	return s
}
