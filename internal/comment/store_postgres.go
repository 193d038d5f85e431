package comment

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

// ListComments resolves each comment to the commenter's name and the
// title of the book whose review it replies to.
func (repository *PostgresRepository) ListComments(context context.Context) ([]*Comment, error) {
	query := fmt.Sprintf(`
		SELECT c.%s, u.%s, b.%s, c.%s, c.%s
		FROM %s c
		JOIN %s u ON c.%s = u.%s
		JOIN %s r ON c.%s = r.%s
		JOIN %s b ON r.%s = b.%s
		ORDER BY c.%s DESC
	`,
		schema.Comments.ID, schema.Users.Username, schema.Books.Title, schema.Comments.Content, schema.Comments.Timestamp,
		schema.Comments.Table,
		schema.Users.Table, schema.Comments.UserID, schema.Users.ID,
		schema.Reviews.Table, schema.Comments.ReviewID, schema.Reviews.ID,
		schema.Books.Table, schema.Reviews.BookID, schema.Books.ID,
		schema.Comments.Timestamp,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_comments")
	}
	defer rows.Close()

	var comments []*Comment
	for rows.Next() {
		c := &Comment{}
		if err := rows.Scan(&c.ID, &c.Username, &c.BookTitle, &c.Content, &c.CreatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_comment")
		}
		comments = append(comments, c)
	}

	return comments, rows.Err()
}

func (repository *PostgresRepository) CreateComment(context context.Context, input *NewComment) (int, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, $2, $3)
		RETURNING %s
	`,
		schema.Comments.Table, schema.Comments.UserID, schema.Comments.ReviewID, schema.Comments.Content,
		schema.Comments.ID,
	)

	var commentID int
	if err := repository.db.QueryRow(context, query, input.UserID, input.ReviewID, input.Content).Scan(&commentID); err != nil {
		return 0, dberr.Wrap(err, "create_comment")
	}
	return commentID, nil
}

// DeleteOwned restricts the delete to rows owned by the user. Zero rows
// affected is not an error.
func (repository *PostgresRepository) DeleteOwned(context context.Context, commentID, userID int) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2`,
		schema.Comments.Table, schema.Comments.ID, schema.Comments.UserID,
	)

	_, err := repository.db.Exec(context, query, commentID, userID)
	return dberr.Wrap(err, "delete_comment")
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

func (repository *PostgresRepository) ReviewOptions(context context.Context) ([]*ReviewOption, error) {
	query := fmt.Sprintf(`
		SELECT r.%s, b.%s, u.%s
		FROM %s r
		JOIN %s b ON r.%s = b.%s
		JOIN %s u ON r.%s = u.%s
		ORDER BY r.%s DESC
	`,
		schema.Reviews.ID, schema.Books.Title, schema.Users.Username,
		schema.Reviews.Table,
		schema.Books.Table, schema.Reviews.BookID, schema.Books.ID,
		schema.Users.Table, schema.Reviews.UserID, schema.Users.ID,
		schema.Reviews.Timestamp,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "review_options")
	}
	defer rows.Close()

	var options []*ReviewOption
	for rows.Next() {
		o := &ReviewOption{}
		if err := rows.Scan(&o.ID, &o.BookTitle, &o.Username); err != nil {
			return nil, dberr.Wrap(err, "review_options")
		}
		options = append(options, o)
	}

	return options, rows.Err()
}
