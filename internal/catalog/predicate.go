package catalog

import "strings"

// # Wildcard Selector

// AnyValue is the form/query sentinel that selects no constraint.
//
// It only exists at the boundary; inside the engine a wildcard is a [Selector]
// whose IsAny reports true.
const AnyValue = "any"

// Selector constrains a single id-valued field or leaves it unconstrained.
//
// The zero value is the wildcard.
type Selector struct {
	id      string
	limited bool
}

// Any returns the wildcard selector.
func Any() Selector { return Selector{} }

// Only returns a selector matching exactly id.
func Only(id string) Selector { return Selector{id: id, limited: true} }

// ParseSelector converts a boundary value into a [Selector]. Only [AnyValue]
// means "no constraint"; any other value, the empty string included, is an id.
func ParseSelector(raw string) Selector {
	if raw == AnyValue {
		return Any()
	}
	return Only(raw)
}

// IsAny reports whether the selector is the wildcard.
func (s Selector) IsAny() bool { return !s.limited }

// ID returns the selected id, or "" for the wildcard.
func (s Selector) ID() string { return s.id }

// String returns the boundary form of the selector.
func (s Selector) String() string {
	if s.IsAny() {
		return AnyValue
	}
	return s.id
}

// # Filter Request

// FilterRequest holds the three criteria of a single filter submission.
type FilterRequest struct {
	Title  string
	Genre  Selector
	Author Selector
}

// Unfiltered is the request equivalent to "no filters applied".
func Unfiltered() FilterRequest {
	return FilterRequest{Genre: Any(), Author: Any()}
}

// IsUnfiltered reports whether every clause of the request is a pass-through.
func (r FilterRequest) IsUnfiltered() bool {
	return r.Genre.IsAny() && r.Author.IsAny() && strings.TrimSpace(r.Title) == ""
}

// # Predicate Builder

// Predicate decides whether a book belongs to the match set.
type Predicate func(Book) bool

// Build converts a filter request into a single predicate.
//
// The predicate is the AND of three pure clauses. Unknown genre or author ids
// never match, so a bad id yields an empty result rather than an error.
func Build(request FilterRequest) Predicate {
	genre := genreClause(request.Genre)
	title := titleClause(request.Title)
	author := authorClause(request.Author)

	return func(book Book) bool {
		genreOK := genre(book)
		titleOK := title(book)
		authorOK := author(book)
		return genreOK && titleOK && authorOK
	}
}

func genreClause(selector Selector) Predicate {
	if selector.IsAny() {
		return matchAll
	}
	genreID := selector.ID()
	return func(book Book) bool {
		return book.HasGenre(genreID)
	}
}

// titleClause only trims to detect an empty query; the substring test uses
// the query as typed.
func titleClause(query string) Predicate {
	if strings.TrimSpace(query) == "" {
		return matchAll
	}
	needle := strings.ToLower(query)
	return func(book Book) bool {
		return strings.Contains(strings.ToLower(book.Title), needle)
	}
}

func authorClause(selector Selector) Predicate {
	if selector.IsAny() {
		return matchAll
	}
	authorID := selector.ID()
	return func(book Book) bool {
		return book.AuthorID == authorID
	}
}

func matchAll(Book) bool { return true }
