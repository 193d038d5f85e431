package favorite

import "context"

type Repository interface {
	ListFavorites(context context.Context) ([]*Favorite, error)
	// Add marks the book as a favorite. Favoriting a book twice is a
	// no-op; it reports whether a new row was inserted.
	Add(context context.Context, input *NewFavorite) (bool, error)
	// DeleteOwned removes the user's favorite of the book. A pair with
	// no favorite is a silent no-op.
	DeleteOwned(context context.Context, bookID, userID int) error
	UserOptions(context context.Context) ([]*UserOption, error)
	BookOptions(context context.Context) ([]*BookOption, error)
}
