// CSV import/export. Export writes either the book catalog to a
// single .csv file or a full backup directory with a manifest; import
// reads books only, skipping duplicates and incomplete rows.
package library

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"librarian/pkg/types"
)

// Backup file names written by a directory export.
const (
	exportCatalogFile     = "library_catalog.csv"
	exportUsersFile       = "users.csv"
	exportActiveLoansFile = "active_loans.csv"
	exportHistoryFile     = "user_history.csv"
	exportManifestFile    = "manifest.json"
)

// ExportSummary reports what an export produced.
type ExportSummary struct {
	ManifestID  string
	Directory   string
	SingleFile  bool
	Books       int
	Users       int
	ActiveLoans int
	LoanHistory int
	Files       []string
}

// exportManifest is written alongside a directory export so backups
// are self-describing.
type exportManifest struct {
	ExportID   string   `json:"export_id"`
	ExportedAt string   `json:"exported_at"`
	Revision   string   `json:"revision,omitempty"`
	Books      int      `json:"books"`
	Users      int      `json:"users"`
	Loans      int      `json:"loans"`
	Files      []string `json:"files"`
}

// ExportCSV exports the collection. A destination ending in .csv gets
// the book catalog only; any other destination is treated as a backup
// directory receiving catalog, users, active loans, full loan history
// and a manifest.
func (m *Manager) ExportCSV(dest string) (*ExportSummary, error) {
	if strings.HasSuffix(strings.ToLower(dest), ".csv") {
		if dir := filepath.Dir(dest); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("creating export directory: %w", err)
			}
		}
		if err := m.writeBooksCSV(dest); err != nil {
			return nil, err
		}
		return &ExportSummary{
			SingleFile: true,
			Books:      len(m.col.Books),
			Files:      []string{dest},
		}, nil
	}

	if err := os.MkdirAll(dest, 0o755); err != nil {
		return nil, fmt.Errorf("creating export directory: %w", err)
	}

	active := m.ActiveLoans()
	summary := &ExportSummary{
		ManifestID:  newExportID(),
		Directory:   dest,
		Books:       len(m.col.Books),
		Users:       len(m.col.Users),
		ActiveLoans: len(active),
		LoanHistory: len(m.col.Loans),
		Files: []string{
			exportCatalogFile,
			exportUsersFile,
			exportActiveLoansFile,
			exportHistoryFile,
			exportManifestFile,
		},
	}

	if err := m.writeBooksCSV(filepath.Join(dest, exportCatalogFile)); err != nil {
		return nil, err
	}
	if err := m.writeUsersCSV(filepath.Join(dest, exportUsersFile)); err != nil {
		return nil, err
	}
	if err := m.writeLoansCSV(filepath.Join(dest, exportActiveLoansFile), active, false); err != nil {
		return nil, err
	}
	if err := m.writeLoansCSV(filepath.Join(dest, exportHistoryFile), m.col.Loans, true); err != nil {
		return nil, err
	}

	manifest := exportManifest{
		ExportID:   summary.ManifestID,
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Revision:   m.col.Revision,
		Books:      summary.Books,
		Users:      summary.Users,
		Loans:      summary.LoanHistory,
		Files:      summary.Files,
	}
	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding manifest: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dest, exportManifestFile), append(data, '\n'), 0o644); err != nil {
		return nil, fmt.Errorf("writing manifest: %w", err)
	}

	return summary, nil
}

func newExportID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

func (m *Manager) writeBooksCSV(path string) error {
	return writeCSV(path, []string{
		"id", "title", "author", "isbn", "category", "year", "status", "date_added", "loan_count",
	}, len(m.col.Books), func(i int) []string {
		b := m.col.Books[i]
		year := ""
		if b.Year != nil {
			year = strconv.Itoa(*b.Year)
		}
		return []string{
			strconv.Itoa(b.ID), b.Title, b.Author, b.ISBN, b.Category,
			year, b.Status, b.DateAdded.Format("2006-01-02"), strconv.Itoa(b.LoanCount),
		}
	})
}

func (m *Manager) writeUsersCSV(path string) error {
	return writeCSV(path, []string{
		"id", "name", "email", "registration_date", "active_loans", "total_loans", "status",
	}, len(m.col.Users), func(i int) []string {
		u := m.col.Users[i]
		return []string{
			u.ID, u.Name, u.Email, u.RegistrationDate.Format("2006-01-02"),
			strconv.Itoa(u.ActiveLoans), strconv.Itoa(u.TotalLoans), u.Status,
		}
	})
}

func (m *Manager) writeLoansCSV(path string, loans []*types.Loan, history bool) error {
	header := []string{"id", "book_id", "book_title", "user_id", "user_name", "loan_date", "return_date", "status"}
	if history {
		header = append(header, "actual_return_date", "penalty")
	}
	return writeCSV(path, header, len(loans), func(i int) []string {
		l := loans[i]
		row := []string{
			strconv.Itoa(l.ID), strconv.Itoa(l.BookID), l.BookTitle, l.UserID, l.UserName,
			l.LoanDate.Format("2006-01-02"), l.DueDate.Format("2006-01-02"), l.Status,
		}
		if history {
			returned := ""
			if l.ActualReturnDate != nil {
				returned = l.ActualReturnDate.Format("2006-01-02")
			}
			row = append(row, returned, strconv.FormatFloat(l.Penalty, 'f', -1, 64))
		}
		return row
	})
}

func writeCSV(path string, header []string, n int, row func(i int) []string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	for i := 0; i < n; i++ {
		if err := w.Write(row(i)); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing %s: %w", path, err)
	}
	return f.Close()
}

// ImportSummary reports the outcome of a CSV book import.
type ImportSummary struct {
	Imported int
	Skipped  int
}

// ImportBooksCSV loads books from a CSV file with a header row. Rows
// whose ISBN already exists in the catalog and rows missing a title or
// author are skipped. A non-numeric year becomes absent. All imported
// books are flushed in a single save at the end.
func (m *Manager) ImportBooksCSV(path string) (*ImportSummary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if len(rows) == 0 {
		return &ImportSummary{}, nil
	}

	col := map[string]int{}
	for i, name := range rows[0] {
		col[strings.ToLower(strings.TrimSpace(name))] = i
	}
	field := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	summary := &ImportSummary{}
	for _, row := range rows[1:] {
		isbn := field(row, "isbn")
		if isbn != "" && isbn != types.NoValue {
			dup := false
			for _, b := range m.col.Books {
				if b.ISBN == isbn {
					dup = true
					break
				}
			}
			if dup {
				summary.Skipped++
				continue
			}
		} else {
			isbn = ""
		}

		title := field(row, "title")
		author := field(row, "author")
		if title == "" || author == "" {
			summary.Skipped++
			continue
		}

		var year *int
		if y, err := strconv.Atoi(field(row, "year")); err == nil {
			year = &y
		}

		book := &types.Book{
			ID:        m.col.NextBookID(),
			Title:     title,
			Author:    author,
			ISBN:      isbn,
			Category:  field(row, "category"),
			Year:      year,
			Status:    types.BookAvailable,
			DateAdded: m.today(),
		}
		if book.ISBN == "" {
			book.ISBN = types.NoValue
		}
		if book.Category == "" {
			book.Category = types.DefaultCategory
		}
		m.col.Books = append(m.col.Books, book)
		summary.Imported++
	}

	if err := m.flush(); err != nil {
		return nil, err
	}
	return summary, nil
}
