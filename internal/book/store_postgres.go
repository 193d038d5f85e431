package book

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bookden/bookden/internal/platform/database/schema"
	"github.com/bookden/bookden/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) ListBooks(context context.Context) ([]*Book, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s
		FROM %s
		ORDER BY %s ASC
	`,
		schema.Books.ID, schema.Books.Title, schema.Books.ISBN, schema.Books.CombinedRating,
		schema.Books.Table, schema.Books.ID,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_books")
	}
	defer rows.Close()

	return scanBooks(rows)
}

// CreateBook persists the book row plus its author and genre junction rows.
//
// All three inserts run inside one transaction: a failure after the book
// insert rolls everything back, so an orphaned book with no author or
// genre link can never be committed.
func (repository *PostgresRepository) CreateBook(context context.Context, nb *NewBook) (int, error) {
	transaction, err := repository.db.Begin(context)
	if err != nil {
		return 0, dberr.Wrap(err, "begin_create_book")
	}
	// Rollback is a no-op once the transaction has committed.
	defer transaction.Rollback(context)

	bookQuery := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, $2, $3)
		RETURNING %s
	`,
		schema.Books.Table, schema.Books.Title, schema.Books.ISBN, schema.Books.CombinedRating,
		schema.Books.ID,
	)

	var bookID int
	if err := transaction.QueryRow(context, bookQuery, nb.Title, nb.ISBN, nb.CombinedRating).Scan(&bookID); err != nil {
		return 0, dberr.Wrap(err, "create_book")
	}

	authorQuery := fmt.Sprintf(`INSERT INTO %s (%s, %s) VALUES ($1, $2)`,
		schema.BookAuthors.Table, schema.BookAuthors.BookID, schema.BookAuthors.AuthorID,
	)
	if _, err := transaction.Exec(context, authorQuery, bookID, nb.AuthorID); err != nil {
		return 0, dberr.Wrap(err, "link_book_author")
	}

	genreQuery := fmt.Sprintf(`INSERT INTO %s (%s, %s) VALUES ($1, $2)`,
		schema.BookGenres.Table, schema.BookGenres.BookID, schema.BookGenres.GenreID,
	)
	if _, err := transaction.Exec(context, genreQuery, bookID, nb.GenreID); err != nil {
		return 0, dberr.Wrap(err, "link_book_genre")
	}

	if err := transaction.Commit(context); err != nil {
		return 0, dberr.Wrap(err, "commit_create_book")
	}

	return bookID, nil
}

func (repository *PostgresRepository) DeleteBook(context context.Context, id int) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.Books.Table, schema.Books.ID,
	)

	_, err := repository.db.Exec(context, query, id)
	return dberr.Wrap(err, "delete_book")
}

// SearchBooks matches the query as a case-insensitive substring of the
// book title or the linked author's name. Books without an author still
// match on title, with a NULL author name.
func (repository *PostgresRepository) SearchBooks(context context.Context, query string) ([]*SearchResult, error) {
	searchQuery := fmt.Sprintf(`
		SELECT b.%s, b.%s, a.%s
		FROM %s b
		LEFT JOIN %s ba ON b.%s = ba.%s
		LEFT JOIN %s a ON ba.%s = a.%s
		WHERE b.%s ILIKE $1 OR a.%s ILIKE $1
	`,
		schema.Books.Title, schema.Books.CombinedRating, schema.Authors.Name,
		schema.Books.Table,
		schema.BookAuthors.Table, schema.Books.ID, schema.BookAuthors.BookID,
		schema.Authors.Table, schema.BookAuthors.AuthorID, schema.Authors.ID,
		schema.Books.Title, schema.Authors.Name,
	)

	rows, err := repository.db.Query(context, searchQuery, "%"+query+"%")
	if err != nil {
		return nil, dberr.Wrap(err, "search_books")
	}
	defer rows.Close()

	var results []*SearchResult
	for rows.Next() {
		r := &SearchResult{}
		if err := rows.Scan(&r.Title, &r.CombinedRating, &r.AuthorName); err != nil {
			return nil, dberr.Wrap(err, "scan_search_result")
		}
		results = append(results, r)
	}

	return results, rows.Err()
}

func (repository *PostgresRepository) AuthorBooks(context context.Context, authorID int) ([]*Book, error) {
	query := fmt.Sprintf(`
		SELECT b.%s, b.%s, b.%s, b.%s
		FROM %s b
		JOIN %s ba ON b.%s = ba.%s
		WHERE ba.%s = $1
	`,
		schema.Books.ID, schema.Books.Title, schema.Books.ISBN, schema.Books.CombinedRating,
		schema.Books.Table,
		schema.BookAuthors.Table, schema.Books.ID, schema.BookAuthors.BookID,
		schema.BookAuthors.AuthorID,
	)

	rows, err := repository.db.Query(context, query, authorID)
	if err != nil {
		return nil, dberr.Wrap(err, "author_books")
	}
	defer rows.Close()

	return scanBooks(rows)
}

func (repository *PostgresRepository) AuthorOptions(context context.Context) ([]Option, error) {
	query := fmt.Sprintf(`SELECT %s, %s FROM %s ORDER BY %s ASC`,
		schema.Authors.ID, schema.Authors.Name, schema.Authors.Table, schema.Authors.Name,
	)
	return repository.options(context, query, "author_options")
}

func (repository *PostgresRepository) GenreOptions(context context.Context) ([]Option, error) {
	query := fmt.Sprintf(`SELECT %s, %s FROM %s ORDER BY %s ASC`,
		schema.Genres.ID, schema.Genres.Name, schema.Genres.Table, schema.Genres.Name,
	)
	return repository.options(context, query, "genre_options")
}

// Overview gathers per-entity counts and the most recently added books in
// a single round-trip.
func (repository *PostgresRepository) Overview(context context.Context, recentLimit int) (*Overview, error) {
	countQuery := fmt.Sprintf(`
		SELECT
			(SELECT count(*) FROM %s),
			(SELECT count(*) FROM %s),
			(SELECT count(*) FROM %s),
			(SELECT count(*) FROM %s),
			(SELECT count(*) FROM %s),
			(SELECT count(*) FROM %s),
			(SELECT count(*) FROM %s),
			(SELECT count(*) FROM %s)
	`,
		schema.Books.Table, schema.Authors.Table, schema.Genres.Table, schema.Users.Table,
		schema.Reviews.Table, schema.Ratings.Table, schema.Comments.Table, schema.Favorites.Table,
	)

	overview := &Overview{}
	err := repository.db.QueryRow(context, countQuery).Scan(
		&overview.Books, &overview.Authors, &overview.Genres, &overview.Users,
		&overview.Reviews, &overview.Ratings, &overview.Comments, &overview.Favorites,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "overview_counts")
	}

	recentQuery := fmt.Sprintf(`
		SELECT %s, %s, %s, %s
		FROM %s
		ORDER BY %s DESC
		LIMIT $1
	`,
		schema.Books.ID, schema.Books.Title, schema.Books.ISBN, schema.Books.CombinedRating,
		schema.Books.Table, schema.Books.ID,
	)

	rows, err := repository.db.Query(context, recentQuery, recentLimit)
	if err != nil {
		return nil, dberr.Wrap(err, "overview_recent")
	}
	defer rows.Close()

	overview.Recent, err = scanBooks(rows)
	if err != nil {
		return nil, err
	}

	return overview, nil
}

func (repository *PostgresRepository) options(context context.Context, query, action string) ([]Option, error) {
	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, action)
	}
	defer rows.Close()

	var options []Option
	for rows.Next() {
		var o Option
		if err := rows.Scan(&o.ID, &o.Name); err != nil {
			return nil, dberr.Wrap(err, action)
		}
		options = append(options, o)
	}

	return options, rows.Err()
}

// scanBooks hydrates book rows from any query selecting the four book columns.
func scanBooks(rows pgx.Rows) ([]*Book, error) {
	var books []*Book
	for rows.Next() {
		b := &Book{}
		if err := rows.Scan(&b.ID, &b.Title, &b.ISBN, &b.CombinedRating); err != nil {
			return nil, dberr.Wrap(err, "scan_book")
		}
		books = append(books, b)
	}
	return books, rows.Err()
}
