// Copyright (c) 2026 Bookshelf. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package catalog is the query-and-pagination engine behind the book browser.

It combines title, genre and author criteria into a single predicate, derives
the current match set from the immutable library, and reveals that match set
through a resettable "show more" cursor.

Core Responsibility:

  - Library: immutable books plus the author and genre registries.
  - Predicate: AND of three pure clauses, failing closed on unknown ids.
  - MatchSet: ordered subsequence of the library, recomputed per submission.
  - Pager: cumulative batches of a fixed size over the match set.
  - Catalog: the facade owning one match set and one pager.

Nothing in this package performs I/O or blocks; loading lives in the source
subpackage and transport lives in the browse package.
*/
package catalog

import "time"

// # Core Entities

// Book is a single catalog record. It is immutable once loaded.
type Book struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	AuthorID    string    `json:"author"`
	GenreIDs    []string  `json:"genres"`
	Published   time.Time `json:"published"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image"`
}

// HasGenre reports whether genreID is one of the book's genres.
func (b Book) HasGenre(genreID string) bool {
	for _, id := range b.GenreIDs {
		if id == genreID {
			return true
		}
	}
	return false
}

// # Output Boundary

// Summary is the minimal record handed to the rendering surface per batch item.
type Summary struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	AuthorName string `json:"author_name"`
	ImageURL   string `json:"image_url"`
}

// Detail is the single-item view shown when a book is selected.
type Detail struct {
	Book
	AuthorName    string   `json:"author_name"`
	GenreNames    []string `json:"genre_names"`
	PublishedYear int      `json:"published_year"`
}

// PublishedYear extracts the calendar year of a publication timestamp in UTC.
func PublishedYear(published time.Time) int {
	return published.UTC().Year()
}
