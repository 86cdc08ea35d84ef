package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/bookshelf/internal/catalog"
)

func TestNewLibrary_Validation(t *testing.T) {
	valid := catalog.Book{ID: "b1", Title: "One", AuthorID: "a1", GenreIDs: []string{"g1"}}

	tests := []struct {
		name    string
		books   []catalog.Book
		wantErr error
	}{
		{"valid", []catalog.Book{valid}, nil},
		{"missing_id", []catalog.Book{{Title: "x", GenreIDs: []string{"g1"}}}, catalog.ErrInvalidBook},
		{"missing_genres", []catalog.Book{{ID: "b2", Title: "x"}}, catalog.ErrInvalidBook},
		{"duplicate_id", []catalog.Book{valid, valid}, catalog.ErrDuplicateBook},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := catalog.NewLibrary(tt.books, nil, nil)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLibrary_DanglingAuthorRendersEmptyName(t *testing.T) {
	library, err := catalog.NewLibrary([]catalog.Book{
		{ID: "b1", Title: "Orphan", AuthorID: "ghost", GenreIDs: []string{"unknown"}},
	}, nil, nil)
	require.NoError(t, err)

	summaries := library.Summarize(library.Books())
	require.Len(t, summaries, 1)
	assert.Equal(t, "", summaries[0].AuthorName)

	detail, ok := library.Detail("b1")
	require.True(t, ok)
	assert.Empty(t, detail.GenreNames)
}

func TestLibrary_Options(t *testing.T) {
	library := fixtureLibrary(t)

	genres := library.GenreOptions()
	require.Len(t, genres, 4)
	assert.Equal(t, catalog.Option{Value: "any", Label: "All Genres", Slug: "any"}, genres[0])
	assert.Equal(t, catalog.Option{Value: "fiction", Label: "Fiction", Slug: "fiction"}, genres[1])

	authors := library.AuthorOptions()
	require.Len(t, authors, 6)
	assert.Equal(t, "All Authors", authors[0].Label)
	assert.Equal(t, catalog.Option{Value: "a1", Label: "Brian Kernighan", Slug: "brian-kernighan"}, authors[2])
}

func TestLibrary_BookLookup(t *testing.T) {
	library := fixtureLibrary(t)

	book, ok := library.Book("b149")
	assert.True(t, ok)
	assert.Equal(t, "Volume 149", book.Title)

	_, ok = library.Book("b150")
	assert.False(t, ok)
	assert.Equal(t, 150, library.Len())
}
