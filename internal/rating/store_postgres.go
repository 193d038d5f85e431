package rating

import (
	"context"
	"fmt"

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

func (repository *PostgresRepository) ListRatings(context context.Context) ([]*Rating, error) {
	query := fmt.Sprintf(`
		SELECT rt.%s, rt.%s, u.%s, b.%s, rt.%s
		FROM %s rt
		JOIN %s u ON rt.%s = u.%s
		JOIN %s b ON rt.%s = b.%s
		ORDER BY rt.%s ASC, rt.%s ASC
	`,
		schema.Ratings.UserID, schema.Ratings.BookID, schema.Users.Username, schema.Books.Title, schema.Ratings.Score,
		schema.Ratings.Table,
		schema.Users.Table, schema.Ratings.UserID, schema.Users.ID,
		schema.Books.Table, schema.Ratings.BookID, schema.Books.ID,
		schema.Ratings.UserID, schema.Ratings.BookID,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_ratings")
	}
	defer rows.Close()

	var ratings []*Rating
	for rows.Next() {
		r := &Rating{}
		if err := rows.Scan(&r.UserID, &r.BookID, &r.Username, &r.BookTitle, &r.Score); err != nil {
			return nil, dberr.Wrap(err, "scan_rating")
		}
		ratings = append(ratings, r)
	}

	return ratings, rows.Err()
}

// Upsert writes the score in one statement. The composite primary key
// on (userid, bookid) makes the conflict target, so two concurrent
// submissions for the same pair cannot produce duplicate rows; the
// later one wins. xmax = 0 distinguishes a fresh insert from an update.
func (repository *PostgresRepository) Upsert(context context.Context, input *NewRating) (bool, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, $2, $3)
		ON CONFLICT (%s, %s) DO UPDATE SET %s = EXCLUDED.%s
		RETURNING (xmax = 0)
	`,
		schema.Ratings.Table, schema.Ratings.UserID, schema.Ratings.BookID, schema.Ratings.Score,
		schema.Ratings.UserID, schema.Ratings.BookID,
		schema.Ratings.Score, schema.Ratings.Score,
	)

	var inserted bool
	if err := repository.db.QueryRow(context, query, input.UserID, input.BookID, input.Score).Scan(&inserted); err != nil {
		return false, dberr.Wrap(err, "rate_book")
	}
	return inserted, nil
}

func (repository *PostgresRepository) DeleteOwned(context context.Context, bookID, userID int) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2`,
		schema.Ratings.Table, schema.Ratings.BookID, schema.Ratings.UserID,
	)

	_, err := repository.db.Exec(context, query, bookID, userID)
	return dberr.Wrap(err, "delete_rating")
}

// TopBooks ranks books by their average score, highest first. Books
// with no ratings do not appear.
func (repository *PostgresRepository) TopBooks(context context.Context, limit int) ([]*TopBook, error) {
	query := fmt.Sprintf(`
		SELECT b.%s, ROUND(AVG(rt.%s)::numeric, 2)
		FROM %s rt
		JOIN %s b ON rt.%s = b.%s
		GROUP BY b.%s
		ORDER BY AVG(rt.%s) DESC
		LIMIT $1
	`,
		schema.Books.Title, schema.Ratings.Score,
		schema.Ratings.Table,
		schema.Books.Table, schema.Ratings.BookID, schema.Books.ID,
		schema.Books.Title,
		schema.Ratings.Score,
	)

	rows, err := repository.db.Query(context, query, limit)
	if err != nil {
		return nil, dberr.Wrap(err, "top_books")
	}
	defer rows.Close()

	var top []*TopBook
	for rows.Next() {
		b := &TopBook{}
		if err := rows.Scan(&b.Title, &b.AverageScore); err != nil {
			return nil, dberr.Wrap(err, "scan_top_book")
		}
		top = append(top, b)
	}

	return top, rows.Err()
}

func (repository *PostgresRepository) UserOptions(context context.Context) ([]*UserOption, error) {
	query := fmt.Sprintf(`SELECT %s, %s FROM %s ORDER BY %s ASC`,
		schema.Users.ID, schema.Users.Username, schema.Users.Table, schema.Users.Username,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "user_options")
	}
	defer rows.Close()

	var options []*UserOption
	for rows.Next() {
		o := &UserOption{}
		if err := rows.Scan(&o.ID, &o.Username); err != nil {
			return nil, dberr.Wrap(err, "user_options")
		}
		options = append(options, o)
	}

	return options, rows.Err()
}

func (repository *PostgresRepository) BookOptions(context context.Context) ([]*BookOption, error) {
	query := fmt.Sprintf(`SELECT %s, %s FROM %s ORDER BY %s ASC`,
		schema.Books.ID, schema.Books.Title, schema.Books.Table, schema.Books.Title,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "book_options")
	}
	defer rows.Close()

	var options []*BookOption
	for rows.Next() {
		o := &BookOption{}
		if err := rows.Scan(&o.ID, &o.Title); err != nil {
			return nil, dberr.Wrap(err, "book_options")
		}
		options = append(options, o)
	}

	return options, rows.Err()
}
