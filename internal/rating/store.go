package rating

import "context"

type Repository interface {
	ListRatings(context context.Context) ([]*Rating, error)
	// Upsert inserts the rating or, when the user has already rated the
	// book, overwrites the existing score in place. It reports whether
	// a new row was inserted.
	Upsert(context context.Context, input *NewRating) (bool, error)
	// DeleteOwned deletes the user's rating of the book. A pair with no
	// rating is a silent no-op.
	DeleteOwned(context context.Context, bookID, userID int) error
	TopBooks(context context.Context, limit int) ([]*TopBook, error)
	UserOptions(context context.Context) ([]*UserOption, error)
	BookOptions(context context.Context) ([]*BookOption, error)
}
