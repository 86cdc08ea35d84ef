package catalog

import (
	"fmt"

	"github.com/taibuivan/bookshelf/pkg/slice"
	"github.com/taibuivan/bookshelf/pkg/slug"
)

// Library is the immutable catalog: books in source order plus the author and
// genre registries. One library is shared read-only by every [Catalog].
type Library struct {
	books   []Book
	index   map[string]int
	authors *Registry
	genres  *Registry
}

// NewLibrary validates books and builds the id index.
//
// Book ids must be unique and non-empty and every book needs at least one
// genre. Author and genre ids are not checked against the registries; a
// dangling id is a data-source problem and simply renders without a name.
func NewLibrary(books []Book, authors, genres *Registry) (*Library, error) {
	if authors == nil {
		authors = NewRegistry()
	}
	if genres == nil {
		genres = NewRegistry()
	}

	library := &Library{
		books:   make([]Book, len(books)),
		index:   make(map[string]int, len(books)),
		authors: authors,
		genres:  genres,
	}

	for position, book := range books {
		if book.ID == "" || len(book.GenreIDs) == 0 {
			return nil, fmt.Errorf("%w: position %d (id %q)", ErrInvalidBook, position, book.ID)
		}
		if _, seen := library.index[book.ID]; seen {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateBook, book.ID)
		}

		library.index[book.ID] = position
		library.books[position] = book
	}

	return library, nil
}

// Len returns the number of books.
func (l *Library) Len() int { return len(l.books) }

// Books returns the books in source order. Callers must not mutate them.
func (l *Library) Books() []Book { return l.books }

// Authors returns the author registry.
func (l *Library) Authors() *Registry { return l.authors }

// Genres returns the genre registry.
func (l *Library) Genres() *Registry { return l.genres }

// Book looks a book up by id.
func (l *Library) Book(id string) (Book, bool) {
	position, ok := l.index[id]
	if !ok {
		return Book{}, false
	}
	return l.books[position], true
}

// AuthorName returns the display name for authorID, or "" when unregistered.
func (l *Library) AuthorName(authorID string) string {
	name, _ := l.authors.Name(authorID)
	return name
}

// # Projections

// Summarize projects books into the records consumed by the rendering surface.
func (l *Library) Summarize(books []Book) []Summary {
	return slice.Map(books, func(book Book) Summary {
		return Summary{
			ID:         book.ID,
			Title:      book.Title,
			AuthorName: l.AuthorName(book.AuthorID),
			ImageURL:   book.ImageURL,
		}
	})
}

// Detail builds the single-item view for the book with the given id.
func (l *Library) Detail(id string) (Detail, bool) {
	book, ok := l.Book(id)
	if !ok {
		return Detail{}, false
	}

	genreNames := make([]string, 0, len(book.GenreIDs))
	for _, genreID := range book.GenreIDs {
		if name, ok := l.genres.Name(genreID); ok {
			genreNames = append(genreNames, name)
		}
	}

	return Detail{
		Book:          book,
		AuthorName:    l.AuthorName(book.AuthorID),
		GenreNames:    genreNames,
		PublishedYear: PublishedYear(book.Published),
	}, true
}

// # Option Lists

// Option is one choice of a genre or author picker.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Slug  string `json:"slug"`
}

// GenreOptions lists the wildcard followed by every genre in source order.
func (l *Library) GenreOptions() []Option {
	return options(l.genres, "All Genres")
}

// AuthorOptions lists the wildcard followed by every author in source order.
func (l *Library) AuthorOptions() []Option {
	return options(l.authors, "All Authors")
}

func options(registry *Registry, wildcardLabel string) []Option {
	entries := registry.Entries()

	out := make([]Option, 0, len(entries)+1)
	out = append(out, Option{Value: AnyValue, Label: wildcardLabel, Slug: AnyValue})
	for _, entry := range entries {
		out = append(out, Option{Value: entry.ID, Label: entry.Name, Slug: slug.From(entry.Name)})
	}
	return out
}
