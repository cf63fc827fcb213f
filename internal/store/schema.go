package store

// Schema DDL for the SQLite store. Dates are stored as YYYY-MM-DD text
// to match the JSON document format.
const (
	createBooks = `CREATE TABLE IF NOT EXISTS books (
    id INTEGER PRIMARY KEY,
    title TEXT NOT NULL,
    author TEXT NOT NULL,
    isbn TEXT NOT NULL,
    category TEXT NOT NULL,
    year INTEGER,
    status TEXT NOT NULL,
    date_added TEXT NOT NULL,
    loan_count INTEGER NOT NULL
);`

	createUsers = `CREATE TABLE IF NOT EXISTS users (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    email TEXT NOT NULL,
    registration_date TEXT NOT NULL,
    active_loans INTEGER NOT NULL,
    total_loans INTEGER NOT NULL,
    total_penalties REAL NOT NULL,
    status TEXT NOT NULL
);`

	createLoans = `CREATE TABLE IF NOT EXISTS loans (
    id INTEGER PRIMARY KEY,
    book_id INTEGER NOT NULL,
    book_title TEXT NOT NULL,
    user_id TEXT NOT NULL,
    user_name TEXT NOT NULL,
    loan_date TEXT NOT NULL,
    return_date TEXT NOT NULL,
    actual_return_date TEXT,
    status TEXT NOT NULL,
    penalty REAL NOT NULL
);`

	createMeta = `CREATE TABLE IF NOT EXISTS meta (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);`
)

// schemaStatements lists the DDL executed on open, in order.
var schemaStatements = []string{
	createBooks,
	createUsers,
	createLoans,
	createMeta,
}
