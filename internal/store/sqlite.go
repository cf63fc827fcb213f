// SQLite store backend. Save replaces every row inside one
// transaction, preserving the whole-document flush semantics of the
// flat-file store.
package store

import (
	"database/sql"
	"fmt"
	"log/slog"
	"path/filepath"

	_ "modernc.org/sqlite"

	"librarian/pkg/types"
)

// databaseFile is the store file name inside the data directory.
const databaseFile = "library.db"

// SQLiteStore persists the collection in a local SQLite database.
type SQLiteStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// OpenSQLite opens (or creates) dataDir/library.db and ensures the
// schema exists.
func OpenSQLite(dataDir string, logger *slog.Logger) (*SQLiteStore, error) {
	path := filepath.Join(dataDir, databaseFile)
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("creating schema: %w", err)
		}
	}
	return &SQLiteStore{db: db, logger: logger}, nil
}

// Load reads all three tables. Any read failure degrades to an empty
// collection with the reason recorded, matching the flat-file store.
func (s *SQLiteStore) Load() LoadResult {
	col := types.NewCollection()

	if err := s.loadMeta(col); err != nil {
		return s.degraded(err)
	}
	if err := s.loadBooks(col); err != nil {
		return s.degraded(err)
	}
	if err := s.loadUsers(col); err != nil {
		return s.degraded(err)
	}
	if err := s.loadLoans(col); err != nil {
		return s.degraded(err)
	}
	return LoadResult{Collection: col}
}

func (s *SQLiteStore) degraded(err error) LoadResult {
	s.logger.Warn("sqlite store unreadable, starting empty", "error", err)
	return LoadResult{
		Collection: types.NewCollection(),
		Empty:      true,
		Reason:     fmt.Sprintf("sqlite store unreadable: %v", err),
	}
}

func (s *SQLiteStore) loadMeta(col *types.Collection) error {
	rows, err := s.db.Query(`SELECT key, value FROM meta`)
	if err != nil {
		return fmt.Errorf("querying meta: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return fmt.Errorf("scanning meta: %w", err)
		}
		switch key {
		case "revision":
			col.Revision = value
		case "saved_at":
			col.SavedAt = value
		}
	}
	return rows.Err()
}

func (s *SQLiteStore) loadBooks(col *types.Collection) error {
	rows, err := s.db.Query(`SELECT id, title, author, isbn, category, year, status, date_added, loan_count
		FROM books ORDER BY rowid`)
	if err != nil {
		return fmt.Errorf("querying books: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var r bookJSON
		var year sql.NullInt64
		if err := rows.Scan(&r.ID, &r.Title, &r.Author, &r.ISBN, &r.Category,
			&year, &r.Status, &r.DateAdded, &r.LoanCount); err != nil {
			return fmt.Errorf("scanning book: %w", err)
		}
		if year.Valid {
			y := int(year.Int64)
			r.Year = &y
		}
		b, err := bookFromRecord(r)
		if err != nil {
			s.logger.Warn("skipping invalid book row", "error", err)
			continue
		}
		col.Books = append(col.Books, b)
	}
	return rows.Err()
}

func (s *SQLiteStore) loadUsers(col *types.Collection) error {
	rows, err := s.db.Query(`SELECT id, name, email, registration_date, active_loans, total_loans, total_penalties, status
		FROM users ORDER BY rowid`)
	if err != nil {
		return fmt.Errorf("querying users: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var r userJSON
		if err := rows.Scan(&r.ID, &r.Name, &r.Email, &r.RegistrationDate,
			&r.ActiveLoans, &r.TotalLoans, &r.TotalPenalties, &r.Status); err != nil {
			return fmt.Errorf("scanning user: %w", err)
		}
		u, err := userFromRecord(r)
		if err != nil {
			s.logger.Warn("skipping invalid user row", "error", err)
			continue
		}
		col.Users = append(col.Users, u)
	}
	return rows.Err()
}

func (s *SQLiteStore) loadLoans(col *types.Collection) error {
	rows, err := s.db.Query(`SELECT id, book_id, book_title, user_id, user_name, loan_date, return_date, actual_return_date, status, penalty
		FROM loans ORDER BY rowid`)
	if err != nil {
		return fmt.Errorf("querying loans: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var r loanJSON
		var returned sql.NullString
		if err := rows.Scan(&r.ID, &r.BookID, &r.BookTitle, &r.UserID, &r.UserName,
			&r.LoanDate, &r.DueDate, &returned, &r.Status, &r.Penalty); err != nil {
			return fmt.Errorf("scanning loan: %w", err)
		}
		if returned.Valid {
			r.ActualReturnDate = &returned.String
		}
		l, err := loanFromRecord(r)
		if err != nil {
			s.logger.Warn("skipping invalid loan row", "error", err)
			continue
		}
		col.Loans = append(col.Loans, l)
	}
	return rows.Err()
}

// Save replaces all rows in a single transaction. Either every table
// reflects the new collection or none does.
func (s *SQLiteStore) Save(col *types.Collection) error {
	stampRevision(col)

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning save transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"books", "users", "loans", "meta"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	for _, b := range col.Books {
		r := bookToRecord(b)
		if _, err := tx.Exec(
			`INSERT INTO books (id, title, author, isbn, category, year, status, date_added, loan_count)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			r.ID, r.Title, r.Author, r.ISBN, r.Category, nullableInt(r.Year), r.Status, r.DateAdded, r.LoanCount,
		); err != nil {
			return fmt.Errorf("inserting book %d: %w", r.ID, err)
		}
	}
	for _, u := range col.Users {
		r := userToRecord(u)
		if _, err := tx.Exec(
			`INSERT INTO users (id, name, email, registration_date, active_loans, total_loans, total_penalties, status)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			r.ID, r.Name, r.Email, r.RegistrationDate, r.ActiveLoans, r.TotalLoans, r.TotalPenalties, r.Status,
		); err != nil {
			return fmt.Errorf("inserting user %s: %w", r.ID, err)
		}
	}
	for _, l := range col.Loans {
		r := loanToRecord(l)
		if _, err := tx.Exec(
			`INSERT INTO loans (id, book_id, book_title, user_id, user_name, loan_date, return_date, actual_return_date, status, penalty)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			r.ID, r.BookID, r.BookTitle, r.UserID, r.UserName, r.LoanDate, r.DueDate, nullableString(r.ActualReturnDate), r.Status, r.Penalty,
		); err != nil {
			return fmt.Errorf("inserting loan %d: %w", r.ID, err)
		}
	}

	for _, kv := range [][2]string{{"revision", col.Revision}, {"saved_at", col.SavedAt}} {
		if _, err := tx.Exec(`INSERT INTO meta (key, value) VALUES (?, ?)`, kv[0], kv[1]); err != nil {
			return fmt.Errorf("writing meta %s: %w", kv[0], err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing save transaction: %w", err)
	}
	return nil
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error { return s.db.Close() }

func nullableInt(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}

func nullableString(v *string) any {
	if v == nil {
		return nil
	}
	return *v
}
