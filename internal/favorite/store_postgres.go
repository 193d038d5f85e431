package favorite

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

func (repository *PostgresRepository) ListFavorites(context context.Context) ([]*Favorite, error) {
	query := fmt.Sprintf(`
		SELECT f.%s, f.%s, u.%s, b.%s
		FROM %s f
		JOIN %s u ON f.%s = u.%s
		JOIN %s b ON f.%s = b.%s
		ORDER BY u.%s ASC, b.%s ASC
	`,
		schema.Favorites.UserID, schema.Favorites.BookID, schema.Users.Username, schema.Books.Title,
		schema.Favorites.Table,
		schema.Users.Table, schema.Favorites.UserID, schema.Users.ID,
		schema.Books.Table, schema.Favorites.BookID, schema.Books.ID,
		schema.Users.Username, schema.Books.Title,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_favorites")
	}
	defer rows.Close()

	var favorites []*Favorite
	for rows.Next() {
		f := &Favorite{}
		if err := rows.Scan(&f.UserID, &f.BookID, &f.Username, &f.BookTitle); err != nil {
			return nil, dberr.Wrap(err, "scan_favorite")
		}
		favorites = append(favorites, f)
	}

	return favorites, rows.Err()
}

// Add inserts the favorite atomically. The composite primary key on
// (userid, bookid) makes favoriting the same book twice a no-op rather
// than an error.
func (repository *PostgresRepository) Add(context context.Context, input *NewFavorite) (bool, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s)
		VALUES ($1, $2)
		ON CONFLICT (%s, %s) DO NOTHING
	`,
		schema.Favorites.Table, schema.Favorites.UserID, schema.Favorites.BookID,
		schema.Favorites.UserID, schema.Favorites.BookID,
	)

	tag, err := repository.db.Exec(context, query, input.UserID, input.BookID)
	if err != nil {
		return false, dberr.Wrap(err, "add_favorite")
	}
	return tag.RowsAffected() > 0, nil
}

func (repository *PostgresRepository) DeleteOwned(context context.Context, bookID, userID int) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2`,
		schema.Favorites.Table, schema.Favorites.BookID, schema.Favorites.UserID,
	)

	_, err := repository.db.Exec(context, query, bookID, userID)
	return dberr.Wrap(err, "delete_favorite")
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
