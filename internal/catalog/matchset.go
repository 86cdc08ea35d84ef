package catalog

import "github.com/taibuivan/bookshelf/pkg/slice"

// MatchSet is the ordered subsequence of the library satisfying the active
// predicate. It is recomputed on every submission and never patched.
type MatchSet struct {
	books []Book
}

// Apply runs predicate over books in a single pass, keeping source order.
func Apply(books []Book, predicate Predicate) MatchSet {
	return MatchSet{books: slice.Filter(books, predicate)}
}

// All wraps books as the "no filters applied" match set.
func All(books []Book) MatchSet {
	return MatchSet{books: books}
}

// Len returns the cardinality of the match set.
func (m MatchSet) Len() int { return len(m.books) }

// Empty reports a filtered result with no books.
func (m MatchSet) Empty() bool { return len(m.books) == 0 }

// Books returns a copy of the matched books.
func (m MatchSet) Books() []Book {
	return m.Slice(0, len(m.books))
}

// Slice returns a copy of the books at positions [start, end), clipped to bounds.
func (m MatchSet) Slice(start, end int) []Book {
	start = max(0, min(start, len(m.books)))
	end = max(start, min(end, len(m.books)))

	out := make([]Book, end-start)
	copy(out, m.books[start:end])
	return out
}
