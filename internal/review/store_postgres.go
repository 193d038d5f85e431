package review

import (
	"context"
	"fmt"
	"time"

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

func (repository *PostgresRepository) ListReviews(context context.Context) ([]*Review, error) {
	query := fmt.Sprintf(`
		SELECT r.%s, u.%s, b.%s, r.%s, r.%s
		FROM %s r
		JOIN %s u ON r.%s = u.%s
		JOIN %s b ON r.%s = b.%s
		ORDER BY r.%s DESC
	`,
		schema.Reviews.ID, schema.Users.Username, schema.Books.Title, schema.Reviews.Content, schema.Reviews.Timestamp,
		schema.Reviews.Table,
		schema.Users.Table, schema.Reviews.UserID, schema.Users.ID,
		schema.Books.Table, schema.Reviews.BookID, schema.Books.ID,
		schema.Reviews.Timestamp,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_reviews")
	}
	defer rows.Close()

	return scanReviews(rows)
}

func (repository *PostgresRepository) CreateReview(context context.Context, input *NewReview) (int, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, $2, $3)
		RETURNING %s
	`,
		schema.Reviews.Table, schema.Reviews.UserID, schema.Reviews.BookID, schema.Reviews.Content,
		schema.Reviews.ID,
	)

	var reviewID int
	if err := repository.db.QueryRow(context, query, input.UserID, input.BookID, input.Content).Scan(&reviewID); err != nil {
		return 0, dberr.Wrap(err, "create_review")
	}
	return reviewID, nil
}

// DeleteOwned restricts the delete to rows owned by the user, so a
// mismatched owner cannot remove someone else's review. Zero rows
// affected is not an error.
func (repository *PostgresRepository) DeleteOwned(context context.Context, reviewID, userID int) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2`,
		schema.Reviews.Table, schema.Reviews.ID, schema.Reviews.UserID,
	)

	_, err := repository.db.Exec(context, query, reviewID, userID)
	return dberr.Wrap(err, "delete_review")
}

func (repository *PostgresRepository) ByGenre(context context.Context, genreID int) ([]*Review, error) {
	query := fmt.Sprintf(`
		SELECT r.%s, u.%s, b.%s, r.%s, r.%s
		FROM %s r
		JOIN %s u ON r.%s = u.%s
		JOIN %s b ON r.%s = b.%s
		JOIN %s bg ON b.%s = bg.%s
		WHERE bg.%s = $1
		ORDER BY r.%s DESC
	`,
		schema.Reviews.ID, schema.Users.Username, schema.Books.Title, schema.Reviews.Content, schema.Reviews.Timestamp,
		schema.Reviews.Table,
		schema.Users.Table, schema.Reviews.UserID, schema.Users.ID,
		schema.Books.Table, schema.Reviews.BookID, schema.Books.ID,
		schema.BookGenres.Table, schema.Books.ID, schema.BookGenres.BookID,
		schema.BookGenres.GenreID,
		schema.Reviews.Timestamp,
	)

	rows, err := repository.db.Query(context, query, genreID)
	if err != nil {
		return nil, dberr.Wrap(err, "reviews_by_genre")
	}
	defer rows.Close()

	return scanReviews(rows)
}

// Threads fetches every review with its comments in one query. The LEFT
// JOINs keep reviews with no comments in the result, with NULL comment
// columns, and the result is regrouped in memory.
func (repository *PostgresRepository) Threads(context context.Context) ([]*Thread, error) {
	query := fmt.Sprintf(`
		SELECT r.%s, u.%s, b.%s, r.%s, r.%s,
			c.%s, cu.%s, c.%s, c.%s
		FROM %s r
		JOIN %s u ON r.%s = u.%s
		JOIN %s b ON r.%s = b.%s
		LEFT JOIN %s c ON c.%s = r.%s
		LEFT JOIN %s cu ON c.%s = cu.%s
		ORDER BY r.%s DESC, r.%s ASC, c.%s ASC
	`,
		schema.Reviews.ID, schema.Users.Username, schema.Books.Title, schema.Reviews.Content, schema.Reviews.Timestamp,
		schema.Comments.ID, schema.Users.Username, schema.Comments.Content, schema.Comments.Timestamp,
		schema.Reviews.Table,
		schema.Users.Table, schema.Reviews.UserID, schema.Users.ID,
		schema.Books.Table, schema.Reviews.BookID, schema.Books.ID,
		schema.Comments.Table, schema.Comments.ReviewID, schema.Reviews.ID,
		schema.Users.Table, schema.Comments.UserID, schema.Users.ID,
		schema.Reviews.Timestamp, schema.Reviews.ID, schema.Comments.Timestamp,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "review_threads")
	}
	defer rows.Close()

	var flat []threadRow
	for rows.Next() {
		var row threadRow
		err := rows.Scan(
			&row.reviewID, &row.username, &row.bookTitle, &row.content, &row.createdAt,
			&row.commentID, &row.commentUser, &row.commentBody, &row.commentAt,
		)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_review_thread")
		}
		flat = append(flat, row)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "review_threads")
	}

	return groupThreads(flat), nil
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

func (repository *PostgresRepository) GenreOptions(context context.Context) ([]*GenreOption, error) {
	query := fmt.Sprintf(`SELECT %s, %s FROM %s ORDER BY %s ASC`,
		schema.Genres.ID, schema.Genres.Name, schema.Genres.Table, schema.Genres.Name,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "genre_options")
	}
	defer rows.Close()

	var options []*GenreOption
	for rows.Next() {
		o := &GenreOption{}
		if err := rows.Scan(&o.ID, &o.Name); err != nil {
			return nil, dberr.Wrap(err, "genre_options")
		}
		options = append(options, o)
	}

	return options, rows.Err()
}

// threadRow is one row of the flattened review-comment join. Comment
// columns are pointers because reviews without comments produce NULLs.
type threadRow struct {
	reviewID    int
	username    string
	bookTitle   string
	content     string
	createdAt   time.Time
	commentID   *int
	commentUser *string
	commentBody *string
	commentAt   *time.Time
}

// groupThreads folds the flat join rows into one Thread per review,
// preserving the order reviews first appear in. A review whose comment
// columns are NULL gets an empty Comments slice.
func groupThreads(flat []threadRow) []*Thread {
	var threads []*Thread
	byID := make(map[int]*Thread)

	for _, row := range flat {
		thread, seen := byID[row.reviewID]
		if !seen {
			thread = &Thread{
				ID:        row.reviewID,
				Username:  row.username,
				BookTitle: row.bookTitle,
				Content:   row.content,
				CreatedAt: row.createdAt,
				Comments:  []*ThreadComment{},
			}
			byID[row.reviewID] = thread
			threads = append(threads, thread)
		}

		if row.commentID == nil {
			continue
		}

		comment := &ThreadComment{ID: *row.commentID, Content: *row.commentBody, CreatedAt: *row.commentAt}
		if row.commentUser != nil {
			comment.Username = *row.commentUser
		}
		thread.Comments = append(thread.Comments, comment)
	}

	return threads
}

func scanReviews(rows pgx.Rows) ([]*Review, error) {
	var reviews []*Review
	for rows.Next() {
		r := &Review{}
		if err := rows.Scan(&r.ID, &r.Username, &r.BookTitle, &r.Content, &r.CreatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_review")
		}
		reviews = append(reviews, r)
	}
	return reviews, rows.Err()
}
