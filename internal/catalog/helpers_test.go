package catalog_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/taibuivan/bookshelf/internal/catalog"
)

// fixtureLibrary builds 150 books of which exactly 40 carry the "fiction"
// genre, spread across the catalog. Every book also has "history" or "poetry".
func fixtureLibrary(t *testing.T) *catalog.Library {
	t.Helper()

	authors := catalog.NewRegistry(
		catalog.Entry{ID: "a0", Name: "Ada Lovelace"},
		catalog.Entry{ID: "a1", Name: "Brian Kernighan"},
		catalog.Entry{ID: "a2", Name: "Carol Shields"},
		catalog.Entry{ID: "a3", Name: "Dennis Ritchie"},
		catalog.Entry{ID: "a4", Name: "Edith Wharton"},
	)
	genres := catalog.NewRegistry(
		catalog.Entry{ID: "fiction", Name: "Fiction"},
		catalog.Entry{ID: "history", Name: "History"},
		catalog.Entry{ID: "poetry", Name: "Poetry"},
	)

	books := make([]catalog.Book, 0, 150)
	for i := 0; i < 150; i++ {
		genreIDs := []string{"history"}
		if i%2 == 1 {
			genreIDs = []string{"poetry"}
		}
		if i%3 == 0 && i < 120 {
			genreIDs = append(genreIDs, "fiction")
		}

		books = append(books, catalog.Book{
			ID:          fmt.Sprintf("b%03d", i),
			Title:       fmt.Sprintf("Volume %03d", i),
			AuthorID:    fmt.Sprintf("a%d", i%5),
			GenreIDs:    genreIDs,
			Published:   time.Date(1900+i, time.March, 1, 12, 0, 0, 0, time.UTC),
			Description: "Description " + fmt.Sprint(i),
			ImageURL:    fmt.Sprintf("https://covers.example/%03d.jpg", i),
		})
	}

	library, err := catalog.NewLibrary(books, authors, genres)
	require.NoError(t, err)
	return library
}

func ids(books []catalog.Book) []string {
	out := make([]string, len(books))
	for i, book := range books {
		out[i] = book.ID
	}
	return out
}

func request(title, genre, author string) catalog.FilterRequest {
	return catalog.FilterRequest{
		Title:  title,
		Genre:  catalog.ParseSelector(genre),
		Author: catalog.ParseSelector(author),
	}
}
