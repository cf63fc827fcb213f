package library

import (
	"fmt"
	"strings"

	"librarian/pkg/types"
)

// matchesTitle reports an exact case-insensitive title match.
func matchesTitle(b *types.Book, identifier string) bool {
	return strings.EqualFold(b.Title, identifier)
}

// matchesIDOrISBN reports an exact ISBN match or an exact string match
// against the numeric ID. The absent-ISBN sentinel never matches.
func matchesIDOrISBN(b *types.Book, identifier string) bool {
	if b.HasISBN() && b.ISBN == identifier {
		return true
	}
	return types.FormatBookID(b.ID) == identifier
}

// matchBooks collects every book matching the identifier by title,
// ISBN or ID. All satisfying books are collected, not just the first.
func (m *Manager) matchBooks(identifier string) []*types.Book {
	var matches []*types.Book
	for _, b := range m.col.Books {
		if matchesTitle(b, identifier) || matchesIDOrISBN(b, identifier) {
			matches = append(matches, b)
		}
	}
	return matches
}

// resolveBook narrows an identifier to exactly one book under the
// given status filter ("" = any status). Ambiguity is evaluated only
// among eligible matches: a title shared by one available and one
// borrowed copy is never ambiguous for either borrow or return. An
// ID or ISBN match resolves uniquely even when the book fails the
// filter, so the calling operation can report the precise state
// conflict. Ambiguous matches are routed through the chooser in an
// explicit retry loop; the chosen ID is globally unique, so the retry
// always resolves.
func (m *Manager) resolveBook(identifier, status string) (*types.Book, error) {
	for {
		all := m.matchBooks(identifier)

		var eligible []*types.Book
		for _, b := range all {
			if status == "" || b.Status == status {
				eligible = append(eligible, b)
			}
		}

		if len(eligible) == 1 {
			return eligible[0], nil
		}
		if len(eligible) == 0 {
			// A direct ID or ISBN hit is returned even when
			// ineligible; title-only matches count as not found
			// for this operation.
			for _, b := range all {
				if matchesIDOrISBN(b, identifier) {
					return b, nil
				}
			}
			return nil, fmt.Errorf("%q: %w", identifier, types.ErrBookNotFound)
		}

		id, err := m.disambiguate(identifier, eligible)
		if err != nil {
			return nil, err
		}
		identifier = types.FormatBookID(id)
	}
}

// disambiguate obtains one candidate ID from the chooser, re-invoking
// it until the answer is in the candidate set. Cancellation aborts the
// whole operation with ErrCanceled and no state change.
func (m *Manager) disambiguate(identifier string, candidates []*types.Book) (int, error) {
	if m.chooser == nil {
		return 0, &types.AmbiguousError{Identifier: identifier, Matches: candidates}
	}

	valid := make(map[int]bool, len(candidates))
	for _, b := range candidates {
		valid[b.ID] = true
	}

	for {
		id, ok, err := m.chooser.Choose(identifier, candidates)
		if err != nil {
			return 0, fmt.Errorf("choosing among matches: %w", err)
		}
		if !ok {
			return 0, types.ErrCanceled
		}
		if valid[id] {
			return id, nil
		}
		// Not a candidate: reject and prompt again.
	}
}
