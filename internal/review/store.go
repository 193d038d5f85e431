package review

import "context"

type Repository interface {
	ListReviews(context context.Context) ([]*Review, error)
	CreateReview(context context.Context, input *NewReview) (int, error)
	// DeleteOwned deletes the review only when it belongs to the given
	// user. An id or owner mismatch is a silent no-op.
	DeleteOwned(context context.Context, reviewID, userID int) error
	ByGenre(context context.Context, genreID int) ([]*Review, error)
	Threads(context context.Context) ([]*Thread, error)
	UserOptions(context context.Context) ([]*UserOption, error)
	BookOptions(context context.Context) ([]*BookOption, error)
	GenreOptions(context context.Context) ([]*GenreOption, error)
}
