package catalog_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/bookshelf/internal/catalog"
)

func newCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	browser, err := catalog.New(fixtureLibrary(t), 36)
	require.NoError(t, err)
	return browser
}

/*
TestCatalog_Initialize verifies the starting state: whole library, page one.
*/
func TestCatalog_Initialize(t *testing.T) {
	browser := newCatalog(t)

	assert.Equal(t, 150, browser.Matches().Len())
	assert.Equal(t, 1, browser.PageIndex())
	assert.Len(t, browser.CurrentBatch(), 36)
	assert.Equal(t, 114, browser.Remaining())
	assert.True(t, browser.Filters().IsUnfiltered())
}

func TestNew_InvalidPageSize(t *testing.T) {
	_, err := catalog.New(fixtureLibrary(t), 0)
	assert.ErrorIs(t, err, catalog.ErrInvalidPageSize)
}

/*
TestCatalog_FictionScenario walks the 150-book / 40-fiction / page-size-36 case.
*/
func TestCatalog_FictionScenario(t *testing.T) {
	browser := newCatalog(t)

	result := browser.SubmitFilters(request("", "fiction", "any"))
	assert.Len(t, result.Batch, 36)
	assert.Equal(t, 4, result.Remaining)
	assert.False(t, result.Empty)

	result, err := browser.LoadMore()
	require.NoError(t, err)
	assert.Len(t, result.Batch, 4)
	assert.Equal(t, 0, result.Remaining)

	result, err = browser.LoadMore()
	assert.ErrorIs(t, err, catalog.ErrNoMoreResults)
	assert.Len(t, result.Batch, 0)
	assert.Equal(t, 0, result.Remaining)
	assert.Len(t, browser.CurrentBatch(), 40)
}

func TestCatalog_NoMatchScenario(t *testing.T) {
	browser := newCatalog(t)

	result := browser.SubmitFilters(request("zzzznomatch", "any", "any"))

	assert.Len(t, result.Batch, 0)
	assert.True(t, result.Empty)
	assert.Equal(t, 0, result.Remaining)
}

func TestCatalog_ResetOnRefilter(t *testing.T) {
	browser := newCatalog(t)

	browser.SubmitFilters(catalog.Unfiltered())
	for range 3 {
		_, err := browser.LoadMore()
		require.NoError(t, err)
	}
	assert.Len(t, browser.CurrentBatch(), 144)

	result := browser.SubmitFilters(request("", "poetry", "any"))
	assert.Equal(t, 1, browser.PageIndex())
	assert.Len(t, browser.CurrentBatch(), min(36, browser.Matches().Len()))
	assert.Equal(t, ids(browser.CurrentBatch()), ids(result.Batch))

	result = browser.SubmitFilters(request("", "any", "a4"))
	assert.Len(t, result.Batch, min(36, 30))
	assert.Equal(t, 0, result.Remaining)
}

func TestCatalog_SubmitIsIdempotent(t *testing.T) {
	browser := newCatalog(t)
	req := request("volume 1", "history", "any")

	first := browser.SubmitFilters(req)
	firstMatches := ids(browser.Matches().Books())

	second := browser.SubmitFilters(req)
	assert.Equal(t, ids(first.Batch), ids(second.Batch))
	assert.Equal(t, firstMatches, ids(browser.Matches().Books()))
	assert.Equal(t, first.Remaining, second.Remaining)
}

func TestCatalog_ExhaustionFromUnfiltered(t *testing.T) {
	browser := newCatalog(t)

	seen := len(browser.CurrentBatch())
	for {
		result, err := browser.LoadMore()
		if err != nil {
			assert.ErrorIs(t, err, catalog.ErrNoMoreResults)
			break
		}
		seen += len(result.Batch)
		assert.GreaterOrEqual(t, result.Remaining, 0)
	}

	assert.Equal(t, 150, seen)
	assert.Equal(t, 0, browser.Remaining())
}

func TestCatalog_DetailHelpers(t *testing.T) {
	browser := newCatalog(t)

	detail, ok := browser.Detail("b003")
	require.True(t, ok)
	assert.Equal(t, "Volume 003", detail.Title)
	assert.Equal(t, "Dennis Ritchie", detail.AuthorName)
	assert.Equal(t, 1903, detail.PublishedYear)
	assert.Equal(t, []string{"Poetry", "Fiction"}, detail.GenreNames)

	_, ok = browser.Detail("missing")
	assert.False(t, ok)

	assert.Equal(t, "Ada Lovelace", browser.AuthorDisplayName("a0"))
	assert.Equal(t, "", browser.AuthorDisplayName("nobody"))

	// 23:30 on New Year's Eve at UTC-5 is already the next year in UTC.
	eastern := time.FixedZone("EST", -5*60*60)
	assert.Equal(t, 2001, browser.PublishedYear(time.Date(2000, time.December, 31, 23, 30, 0, 0, eastern)))
}

func TestCatalog_Summaries(t *testing.T) {
	browser := newCatalog(t)

	summaries := browser.Summaries(browser.CurrentBatch()[:2])

	assert.Equal(t, []catalog.Summary{
		{ID: "b000", Title: "Volume 000", AuthorName: "Ada Lovelace", ImageURL: "https://covers.example/000.jpg"},
		{ID: "b001", Title: "Volume 001", AuthorName: "Brian Kernighan", ImageURL: "https://covers.example/001.jpg"},
	}, summaries)
}
