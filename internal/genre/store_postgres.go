package genre

import (
	"context"
	"errors"
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

func (repository *PostgresRepository) ListGenres(context context.Context) ([]*Genre, error) {
	query := fmt.Sprintf(`SELECT %s, %s FROM %s ORDER BY %s ASC`,
		schema.Genres.ID, schema.Genres.Name, schema.Genres.Table, schema.Genres.Name,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_genres")
	}
	defer rows.Close()

	var genres []*Genre
	for rows.Next() {
		g := &Genre{}
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, dberr.Wrap(err, "scan_genre")
		}
		genres = append(genres, g)
	}

	return genres, rows.Err()
}

// CreateGenre inserts the genre atomically, relying on the unique
// lower(genrename) index instead of a read-then-insert check.
func (repository *PostgresRepository) CreateGenre(context context.Context, g *Genre) (bool, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1)
		ON CONFLICT (lower(%s)) DO NOTHING
		RETURNING %s
	`,
		schema.Genres.Table, schema.Genres.Name,
		schema.Genres.Name,
		schema.Genres.ID,
	)

	err := repository.db.QueryRow(context, query, g.Name).Scan(&g.ID)
	if errors.Is(err, pgx.ErrNoRows) {
		// Conflict path: a matching genre already exists.
		return false, nil
	}
	if err != nil {
		return false, dberr.Wrap(err, "create_genre")
	}
	return true, nil
}

func (repository *PostgresRepository) DeleteGenre(context context.Context, id int) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.Genres.Table, schema.Genres.ID,
	)

	_, err := repository.db.Exec(context, query, id)
	return dberr.Wrap(err, "delete_genre")
}
