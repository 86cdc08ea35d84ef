package source

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/bookshelf/internal/catalog"
)

// # Schema

// Table names created by data/migrations. Every table carries a position
// column holding the source order.
const (
	tableAuthor    = "catalog.author"
	tableGenre     = "catalog.genre"
	tableBook      = "catalog.book"
	tableBookGenre = "catalog.book_genre"
)

// PostgresSource reads and writes the catalog snapshot in PostgreSQL.
type PostgresSource struct {
	db *pgxpool.Pool
}

// NewPostgresSource creates a source on an existing pool.
func NewPostgresSource(db *pgxpool.Pool) *PostgresSource {
	return &PostgresSource{db: db}
}

/*
Load reads authors, genres and books in source order.

Returns:
  - *Snapshot: the full catalog
  - error: query or scan failures, wrapped with the failing step
*/
func (source *PostgresSource) Load(ctx context.Context) (*Snapshot, error) {
	authors, err := source.loadRegistry(ctx, tableAuthor)
	if err != nil {
		return nil, err
	}

	genres, err := source.loadRegistry(ctx, tableGenre)
	if err != nil {
		return nil, err
	}

	books, err := source.loadBooks(ctx)
	if err != nil {
		return nil, err
	}

	return &Snapshot{Books: books, Authors: *authors, Genres: *genres}, nil
}

func (source *PostgresSource) loadRegistry(ctx context.Context, table string) (*catalog.Registry, error) {
	query := fmt.Sprintf(`SELECT id, name FROM %s ORDER BY position ASC`, table)

	rows, err := source.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("source: query %s: %w", table, err)
	}
	defer rows.Close()

	var entries []catalog.Entry
	for rows.Next() {
		var entry catalog.Entry
		if err := rows.Scan(&entry.ID, &entry.Name); err != nil {
			return nil, fmt.Errorf("source: scan %s: %w", table, err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("source: iterate %s: %w", table, err)
	}

	return catalog.NewRegistry(entries...), nil
}

func (source *PostgresSource) loadBooks(ctx context.Context) ([]catalog.Book, error) {
	query := fmt.Sprintf(`
		SELECT b.id, b.title, b.author_id, b.published_at, b.description, b.image_url,
		       COALESCE(array_agg(bg.genre_id ORDER BY bg.position) FILTER (WHERE bg.genre_id IS NOT NULL), '{}')
		FROM %s b
		LEFT JOIN %s bg ON bg.book_id = b.id
		GROUP BY b.id
		ORDER BY b.position ASC
	`, tableBook, tableBookGenre)

	rows, err := source.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("source: query books: %w", err)
	}
	defer rows.Close()

	books := make([]catalog.Book, 0)
	for rows.Next() {
		var book catalog.Book
		if err := rows.Scan(
			&book.ID, &book.Title, &book.AuthorID, &book.Published,
			&book.Description, &book.ImageURL, &book.GenreIDs,
		); err != nil {
			return nil, fmt.Errorf("source: scan book: %w", err)
		}
		books = append(books, book)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("source: iterate books: %w", err)
	}

	return books, nil
}

/*
Save replaces the stored catalog with snapshot in a single transaction.

Rows whose id is absent from snapshot are deleted first; genre links follow
their book through ON DELETE CASCADE. Remaining rows are upserted with their
source order in the position columns, and the genre links of every saved book
are rewritten.
*/
func (source *PostgresSource) Save(ctx context.Context, snapshot *Snapshot) error {
	tx, err := source.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("source: begin: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := tx.SendBatch(ctx, saveBatch(snapshot)).Close(); err != nil {
		return fmt.Errorf("source: save snapshot: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("source: commit: %w", err)
	}
	return nil
}

func saveBatch(snapshot *Snapshot) *pgx.Batch {
	batch := &pgx.Batch{}

	bookIDs := make([]string, len(snapshot.Books))
	for i, book := range snapshot.Books {
		bookIDs[i] = book.ID
	}
	queuePrune(batch, tableBook, bookIDs)
	queuePrune(batch, tableAuthor, entryIDs(snapshot.Authors.Entries()))
	queuePrune(batch, tableGenre, entryIDs(snapshot.Genres.Entries()))

	queueRegistry(batch, tableAuthor, snapshot.Authors.Entries())
	queueRegistry(batch, tableGenre, snapshot.Genres.Entries())

	bookSQL := fmt.Sprintf(`
		INSERT INTO %s (id, title, author_id, published_at, description, image_url, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			author_id = EXCLUDED.author_id,
			published_at = EXCLUDED.published_at,
			description = EXCLUDED.description,
			image_url = EXCLUDED.image_url,
			position = EXCLUDED.position`, tableBook)
	clearLinksSQL := fmt.Sprintf(`DELETE FROM %s WHERE book_id = $1`, tableBookGenre)
	linkSQL := fmt.Sprintf(`INSERT INTO %s (book_id, genre_id, position) VALUES ($1, $2, $3)`, tableBookGenre)

	for position, book := range snapshot.Books {
		batch.Queue(bookSQL, book.ID, book.Title, book.AuthorID, book.Published, book.Description, book.ImageURL, position)
		batch.Queue(clearLinksSQL, book.ID)
		for genrePosition, genreID := range book.GenreIDs {
			batch.Queue(linkSQL, book.ID, genreID, genrePosition)
		}
	}

	return batch
}

// queuePrune deletes every row of table whose id is not in keep.
func queuePrune(batch *pgx.Batch, table string, keep []string) {
	batch.Queue(fmt.Sprintf(`DELETE FROM %s WHERE id <> ALL($1)`, table), keep)
}

func queueRegistry(batch *pgx.Batch, table string, entries []catalog.Entry) {
	upsert := fmt.Sprintf(`
		INSERT INTO %s (id, name, position) VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, position = EXCLUDED.position`, table)

	for position, entry := range entries {
		batch.Queue(upsert, entry.ID, entry.Name, position)
	}
}

func entryIDs(entries []catalog.Entry) []string {
	ids := make([]string, len(entries))
	for i, entry := range entries {
		ids[i] = entry.ID
	}
	return ids
}
