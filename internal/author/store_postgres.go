package author

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

func (repository *PostgresRepository) ListAuthors(context context.Context) ([]*Author, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s
		FROM %s
		ORDER BY %s ASC
	`,
		schema.Authors.ID, schema.Authors.Name, schema.Authors.YearOfBirth, schema.Authors.Nationality,
		schema.Authors.Table, schema.Authors.Name,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_authors")
	}
	defer rows.Close()

	var authors []*Author
	for rows.Next() {
		a := &Author{}
		if err := rows.Scan(&a.ID, &a.Name, &a.YearOfBirth, &a.Nationality); err != nil {
			return nil, dberr.Wrap(err, "scan_author")
		}
		authors = append(authors, a)
	}

	return authors, rows.Err()
}

// CreateAuthor inserts the author atomically, relying on the unique
// lower(name) index instead of a read-then-insert check. Concurrent
// submissions of the same name cannot both insert.
func (repository *PostgresRepository) CreateAuthor(context context.Context, a *Author) (bool, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, $2, $3)
		ON CONFLICT (lower(%s)) DO NOTHING
		RETURNING %s
	`,
		schema.Authors.Table, schema.Authors.Name, schema.Authors.YearOfBirth, schema.Authors.Nationality,
		schema.Authors.Name,
		schema.Authors.ID,
	)

	err := repository.db.QueryRow(context, query, a.Name, a.YearOfBirth, a.Nationality).Scan(&a.ID)
	if errors.Is(err, pgx.ErrNoRows) {
		// Conflict path: a matching author already exists.
		return false, nil
	}
	if err != nil {
		return false, dberr.Wrap(err, "create_author")
	}
	return true, nil
}

func (repository *PostgresRepository) DeleteAuthor(context context.Context, id int) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.Authors.Table, schema.Authors.ID,
	)

	// Deleting an unknown id is a no-op, matching the page's
	// redirect-regardless contract.
	_, err := repository.db.Exec(context, query, id)
	return dberr.Wrap(err, "delete_author")
}
