package user

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

func (repository *PostgresRepository) ListUsers(context context.Context) ([]*User, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s
		FROM %s
		ORDER BY %s ASC
	`,
		schema.Users.ID, schema.Users.Username, schema.Users.Email, schema.Users.Preferences,
		schema.Users.Table, schema.Users.ID,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_users")
	}
	defer rows.Close()

	var users []*User
	for rows.Next() {
		u := &User{}
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.Preferences); err != nil {
			return nil, dberr.Wrap(err, "scan_user")
		}
		users = append(users, u)
	}

	return users, rows.Err()
}

func (repository *PostgresRepository) CreateUser(context context.Context, u *User) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, $2, $3)
		RETURNING %s
	`,
		schema.Users.Table, schema.Users.Username, schema.Users.Email, schema.Users.Preferences,
		schema.Users.ID,
	)

	err := repository.db.QueryRow(context, query, u.Username, u.Email, u.Preferences).Scan(&u.ID)
	return dberr.Wrap(err, "create_user")
}
