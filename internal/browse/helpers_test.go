package browse_test

import (
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/taibuivan/bookshelf/internal/browse"
	"github.com/taibuivan/bookshelf/internal/catalog"
)

const pageSize = 36

// fixtureLibrary builds 100 books; even-numbered ones are "fiction" (50),
// odd-numbered ones are "poetry", authors rotate over a0..a3.
func fixtureLibrary(t *testing.T) *catalog.Library {
	t.Helper()

	authors := catalog.NewRegistry(
		catalog.Entry{ID: "a0", Name: "Octavia Butler"},
		catalog.Entry{ID: "a1", Name: "Italo Calvino"},
		catalog.Entry{ID: "a2", Name: "Wisława Szymborska"},
		catalog.Entry{ID: "a3", Name: "Jorge Luis Borges"},
	)
	genres := catalog.NewRegistry(
		catalog.Entry{ID: "fiction", Name: "Fiction"},
		catalog.Entry{ID: "poetry", Name: "Poetry"},
	)

	books := make([]catalog.Book, 0, 100)
	for i := 0; i < 100; i++ {
		genre := "fiction"
		if i%2 == 1 {
			genre = "poetry"
		}
		books = append(books, catalog.Book{
			ID:        fmt.Sprintf("book-%02d", i),
			Title:     fmt.Sprintf("Collected Works %02d", i),
			AuthorID:  fmt.Sprintf("a%d", i%4),
			GenreIDs:  []string{genre},
			Published: time.Date(1950+i, time.January, 15, 0, 0, 0, 0, time.UTC),
			ImageURL:  fmt.Sprintf("https://covers.example/%02d.jpg", i),
		})
	}

	library, err := catalog.NewLibrary(books, authors, genres)
	require.NoError(t, err)
	return library
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newService(t *testing.T) (*browse.Service, *browse.Store) {
	t.Helper()
	store := browse.NewStore(time.Hour, discardLogger())
	return browse.NewService(fixtureLibrary(t), store, pageSize, discardLogger()), store
}
