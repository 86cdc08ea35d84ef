package catalog

import "github.com/taibuivan/bookshelf/pkg/pagination"

// Pager owns a cursor over a [MatchSet] and reveals it in fixed-size batches.
//
// It is pure index arithmetic; it never holds rendered state.
type Pager struct {
	matches   MatchSet
	pageIndex int
	pageSize  int
}

// NewPager returns a pager over an empty match set. pageSize must be positive.
func NewPager(pageSize int) (*Pager, error) {
	if pageSize <= 0 || pageSize > pagination.MaxPageSize {
		return nil, ErrInvalidPageSize
	}
	return &Pager{pageIndex: pagination.FirstPage, pageSize: pageSize}, nil
}

// Reset installs a new match set and rewinds the cursor to the first page.
func (p *Pager) Reset(matches MatchSet) {
	p.matches = matches
	p.pageIndex = pagination.FirstPage
}

// CurrentBatch returns every book revealed so far, i.e. [0, pageIndex*pageSize).
func (p *Pager) CurrentBatch() []Book {
	return p.matches.Slice(0, pagination.Shown(p.pageIndex, p.pageSize, p.matches.Len()))
}

// LoadMore advances the cursor one page and returns only the newly revealed
// books. When nothing remains it returns an empty batch and
// [ErrNoMoreResults] and leaves the cursor where it is.
func (p *Pager) LoadMore() ([]Book, error) {
	if p.Remaining() == 0 {
		return []Book{}, ErrNoMoreResults
	}

	p.pageIndex++
	start, end := pagination.Window(p.pageIndex, p.pageSize, p.matches.Len())
	return p.matches.Slice(start, end), nil
}

// Remaining returns max(0, len(matches) - pageIndex*pageSize).
func (p *Pager) Remaining() int {
	return pagination.Remaining(p.pageIndex, p.pageSize, p.matches.Len())
}

// PageIndex returns the number of pages revealed since the last reset.
func (p *Pager) PageIndex() int { return p.pageIndex }

// PageSize returns the fixed batch size.
func (p *Pager) PageSize() int { return p.pageSize }

// Matches returns the installed match set.
func (p *Pager) Matches() MatchSet { return p.matches }
