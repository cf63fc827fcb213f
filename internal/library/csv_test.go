package library

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"librarian/pkg/types"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestExportSingleFile(t *testing.T) {
	m := testManager(t)
	addBook(t, m, "1984", "George Orwell", "X1")
	addBook(t, m, "Essays", "Anon", "")

	dest := filepath.Join(t.TempDir(), "catalog.csv")
	summary, err := m.ExportCSV(dest)
	require.NoError(t, err)
	assert.True(t, summary.SingleFile)
	assert.Equal(t, 2, summary.Books)

	rows := readCSV(t, dest)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"id", "title", "author", "isbn", "category", "year", "status", "date_added", "loan_count"}, rows[0])
	assert.Equal(t, "1984", rows[1][1])
	// Absent year and ISBN keep their sentinels.
	assert.Equal(t, "", rows[1][5])
	assert.Equal(t, types.NoValue, rows[2][3])
}

func TestExportBackupDirectory(t *testing.T) {
	m := testManager(t)
	addBook(t, m, "1984", "George Orwell", "X1")
	addUser(t, m, "Ana", "U1")
	_, err := m.Borrow("1984", "U1", 14)
	require.NoError(t, err)

	dest := filepath.Join(t.TempDir(), "backup")
	summary, err := m.ExportCSV(dest)
	require.NoError(t, err)
	assert.NotEmpty(t, summary.ManifestID)
	assert.Equal(t, 1, summary.Books)
	assert.Equal(t, 1, summary.Users)
	assert.Equal(t, 1, summary.ActiveLoans)
	assert.Equal(t, 1, summary.LoanHistory)

	for _, name := range []string{
		exportCatalogFile, exportUsersFile, exportActiveLoansFile, exportHistoryFile, exportManifestFile,
	} {
		_, err := os.Stat(filepath.Join(dest, name))
		require.NoError(t, err, name)
	}

	history := readCSV(t, filepath.Join(dest, exportHistoryFile))
	require.Len(t, history, 2)
	assert.Contains(t, history[0], "actual_return_date")
	assert.Contains(t, history[0], "penalty")

	data, err := os.ReadFile(filepath.Join(dest, exportManifestFile))
	require.NoError(t, err)
	var manifest map[string]any
	require.NoError(t, json.Unmarshal(data, &manifest))
	assert.Equal(t, summary.ManifestID, manifest["export_id"])
	assert.Equal(t, float64(1), manifest["books"])
}

func TestImportBooksCSV(t *testing.T) {
	m := testManager(t)
	addBook(t, m, "1984", "George Orwell", "X1")

	path := filepath.Join(t.TempDir(), "import.csv")
	content := "title,author,isbn,category,year\n" +
		"Dune,Frank Herbert,D1,SF,1965\n" +
		"Duplicate,Someone,X1,Fiction,2000\n" +
		",No Title,D2,Fiction,2000\n" +
		"No Year,Someone,,Fiction,unknown\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	summary, err := m.ImportBooksCSV(path)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Imported)
	assert.Equal(t, 2, summary.Skipped)

	require.Len(t, m.Collection().Books, 3)
	dune := m.Collection().Books[1]
	assert.Equal(t, "Dune", dune.Title)
	require.NotNil(t, dune.Year)
	assert.Equal(t, 1965, *dune.Year)
	assert.Equal(t, "SF", dune.Category)

	noYear := m.Collection().Books[2]
	assert.Equal(t, "No Year", noYear.Title)
	assert.Nil(t, noYear.Year)
	assert.Equal(t, types.NoValue, noYear.ISBN)
	assert.Equal(t, types.BookAvailable, noYear.Status)

	// IDs continue the existing sequence.
	assert.Equal(t, 2, dune.ID)
	assert.Equal(t, 3, noYear.ID)

	_, err = m.ImportBooksCSV(filepath.Join(t.TempDir(), "missing.csv"))
	require.Error(t, err)
}
