package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/bookshelf/internal/catalog"
)

func TestNewPager_RejectsInvalidSize(t *testing.T) {
	for _, size := range []int{0, -1, 100000} {
		_, err := catalog.NewPager(size)
		assert.ErrorIs(t, err, catalog.ErrInvalidPageSize)
	}
}

func TestPager_CumulativeAndIncremental(t *testing.T) {
	library := fixtureLibrary(t)
	pager, err := catalog.NewPager(10)
	require.NoError(t, err)

	pager.Reset(catalog.All(library.Books()[:25]))
	assert.Equal(t, 1, pager.PageIndex())
	assert.Len(t, pager.CurrentBatch(), 10)
	assert.Equal(t, 15, pager.Remaining())

	batch, err := pager.LoadMore()
	require.NoError(t, err)
	assert.Equal(t, []string{"b010", "b011", "b012", "b013", "b014", "b015", "b016", "b017", "b018", "b019"}, ids(batch))
	assert.Len(t, pager.CurrentBatch(), 20)
	assert.Equal(t, 5, pager.Remaining())

	batch, err = pager.LoadMore()
	require.NoError(t, err)
	assert.Len(t, batch, 5)
	assert.Equal(t, 0, pager.Remaining())
	assert.Len(t, pager.CurrentBatch(), 25)
	assert.Equal(t, 3, pager.PageIndex())
}

func TestPager_ExhaustionDoesNotAdvance(t *testing.T) {
	library := fixtureLibrary(t)
	pager, err := catalog.NewPager(10)
	require.NoError(t, err)

	pager.Reset(catalog.All(library.Books()[:10]))

	for range 3 {
		batch, err := pager.LoadMore()
		assert.ErrorIs(t, err, catalog.ErrNoMoreResults)
		assert.Empty(t, batch)
		assert.Equal(t, 0, pager.Remaining())
		assert.Equal(t, 1, pager.PageIndex())
	}
}

func TestPager_ResetRewinds(t *testing.T) {
	library := fixtureLibrary(t)
	pager, err := catalog.NewPager(10)
	require.NoError(t, err)

	pager.Reset(catalog.All(library.Books()))
	for range 4 {
		_, err := pager.LoadMore()
		require.NoError(t, err)
	}
	assert.Equal(t, 5, pager.PageIndex())

	pager.Reset(catalog.All(library.Books()[:3]))
	assert.Equal(t, 1, pager.PageIndex())
	assert.Len(t, pager.CurrentBatch(), 3)
	assert.Equal(t, 0, pager.Remaining())
}

func TestPager_EmptyMatchSet(t *testing.T) {
	pager, err := catalog.NewPager(36)
	require.NoError(t, err)

	assert.Empty(t, pager.CurrentBatch())
	assert.Equal(t, 0, pager.Remaining())

	_, err = pager.LoadMore()
	assert.ErrorIs(t, err, catalog.ErrNoMoreResults)
}
