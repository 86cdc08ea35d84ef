package catalog

import "errors"

var (
	// ErrNoMoreResults is returned by LoadMore once the match set is exhausted.
	ErrNoMoreResults = errors.New("catalog: no more results")

	// ErrInvalidPageSize is returned when a pager is built with a non-positive
	// or oversized page size.
	ErrInvalidPageSize = errors.New("catalog: invalid page size")

	// ErrDuplicateBook is returned when two library books share an id.
	ErrDuplicateBook = errors.New("catalog: duplicate book id")

	// ErrInvalidBook is returned for a book without an id or without genres.
	ErrInvalidBook = errors.New("catalog: invalid book")
)
