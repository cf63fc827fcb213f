// Interactive disambiguation prompt for title matches.
package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"librarian/pkg/types"
)

// stdinChooser resolves ambiguous book identifiers by listing the
// candidates and reading a book ID from the terminal. An empty line
// cancels the operation.
type stdinChooser struct {
	in  *bufio.Scanner
	out io.Writer
}

func newStdinChooser(in io.Reader, out io.Writer) *stdinChooser {
	return &stdinChooser{in: bufio.NewScanner(in), out: out}
}

// Choose implements library.Chooser.
func (c *stdinChooser) Choose(identifier string, candidates []*types.Book) (int, bool, error) {
	fmt.Fprintf(c.out, "Multiple books match %q:\n", identifier)
	for _, book := range candidates {
		fmt.Fprintf(c.out, "  [ID: %d] %s - %s (ISBN: %s)\n", book.ID, book.Title, book.Author, book.ISBN)
	}

	for {
		fmt.Fprint(c.out, "Enter book ID (empty to cancel): ")
		if !c.in.Scan() {
			if err := c.in.Err(); err != nil {
				return 0, false, fmt.Errorf("reading choice: %w", err)
			}
			return 0, false, nil
		}
		line := strings.TrimSpace(c.in.Text())
		if line == "" {
			return 0, false, nil
		}
		id, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintf(c.out, "Not a book ID: %q\n", line)
			continue
		}
		return id, true, nil
	}
}
