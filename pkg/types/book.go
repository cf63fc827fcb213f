package types

import "time"

// Book statuses. A book alternates between available and borrowed over
// its lifetime; borrowed means exactly one active loan references it.
const (
	BookAvailable = "AVAILABLE"
	BookBorrowed  = "BORROWED"
)

// NoValue is the sentinel stored for absent optional string fields
// (ISBN, email). Report and export consumers treat it as a valid
// "absent" marker, not an error value.
const NoValue = "N/A"

// DefaultCategory is assigned when no category is supplied.
const DefaultCategory = "Uncategorized"

// Earliest accepted publication year (movable-type printing).
const MinPublicationYear = 1450

// Book is a single catalog entry. IDs are assigned by the registry,
// are unique within the collection, and are never reused after delete.
type Book struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	ISBN      string    `json:"isbn"`
	Category  string    `json:"category"`
	Year      *int      `json:"year"`
	Status    string    `json:"status"`
	DateAdded time.Time `json:"date_added"`
	LoanCount int       `json:"loan_count"`
}

// Available reports whether the book can be borrowed.
func (b *Book) Available() bool { return b.Status == BookAvailable }

// HasISBN reports whether the book carries a real ISBN rather than the
// absent sentinel.
func (b *Book) HasISBN() bool { return b.ISBN != "" && b.ISBN != NoValue }

// ValidYear reports whether year falls in the accepted range
// [1450, currentYear+1]. now supplies the current date.
func ValidYear(year int, now time.Time) bool {
	return year >= MinPublicationYear && year <= now.Year()+1
}
