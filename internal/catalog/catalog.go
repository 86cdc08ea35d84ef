package catalog

import "time"

// # Catalog Facade

// Result is what the rendering surface receives after a submission or a
// load-more: the batch to draw plus the scalar view state.
type Result struct {
	Batch     []Book
	Empty     bool
	Remaining int
}

// Catalog is the single entry point for browsing a [Library].
//
// It owns the current filters, the derived match set and the pager. A Catalog
// is not safe for concurrent use; callers serialize access to it.
type Catalog struct {
	library *Library
	filters FilterRequest
	pager   *Pager
}

// New initializes a catalog over library: the match set is the whole library
// and the pager is on its first page.
func New(library *Library, pageSize int) (*Catalog, error) {
	pager, err := NewPager(pageSize)
	if err != nil {
		return nil, err
	}

	pager.Reset(All(library.Books()))

	return &Catalog{
		library: library,
		filters: Unfiltered(),
		pager:   pager,
	}, nil
}

/*
SubmitFilters recomputes the match set for request and rewinds to page one.

Returns:
  - Result: the first batch, the remaining count, and Empty when nothing matched
*/
func (c *Catalog) SubmitFilters(request FilterRequest) Result {
	c.filters = request
	c.pager.Reset(Apply(c.library.Books(), Build(request)))

	return Result{
		Batch:     c.pager.CurrentBatch(),
		Empty:     c.pager.Matches().Empty(),
		Remaining: c.pager.Remaining(),
	}
}

/*
LoadMore reveals the next batch for appending.

Returns:
  - Result: only the newly revealed books and the new remaining count
  - error: ErrNoMoreResults once the match set is exhausted
*/
func (c *Catalog) LoadMore() (Result, error) {
	batch, err := c.pager.LoadMore()

	return Result{
		Batch:     batch,
		Empty:     c.pager.Matches().Empty(),
		Remaining: c.pager.Remaining(),
	}, err
}

// # View State

// CurrentBatch returns every book revealed since the last submission.
func (c *Catalog) CurrentBatch() []Book { return c.pager.CurrentBatch() }

// Matches returns the current match set.
func (c *Catalog) Matches() MatchSet { return c.pager.Matches() }

// Remaining returns how many matches are not yet revealed.
func (c *Catalog) Remaining() int { return c.pager.Remaining() }

// PageIndex returns the number of batches revealed since the last submission.
func (c *Catalog) PageIndex() int { return c.pager.PageIndex() }

// PageSize returns the fixed batch size.
func (c *Catalog) PageSize() int { return c.pager.PageSize() }

// Filters returns the most recently submitted request.
func (c *Catalog) Filters() FilterRequest { return c.filters }

// Library returns the library being browsed.
func (c *Catalog) Library() *Library { return c.library }

// # Detail Helpers

// AuthorDisplayName returns the registered name of authorID, or "".
func (c *Catalog) AuthorDisplayName(authorID string) string {
	return c.library.AuthorName(authorID)
}

// PublishedYear extracts the publication year used in the detail subtitle.
func (c *Catalog) PublishedYear(published time.Time) int {
	return PublishedYear(published)
}

// Detail looks up the full record of a selected book.
func (c *Catalog) Detail(bookID string) (Detail, bool) {
	return c.library.Detail(bookID)
}

// Summaries projects a batch into rendering records.
func (c *Catalog) Summaries(books []Book) []Summary {
	return c.library.Summarize(books)
}
