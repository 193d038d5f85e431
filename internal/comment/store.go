package comment

import "context"

type Repository interface {
	ListComments(context context.Context) ([]*Comment, error)
	CreateComment(context context.Context, input *NewComment) (int, error)
	// DeleteOwned deletes the comment only when it belongs to the given
	// user. An id or owner mismatch is a silent no-op.
	DeleteOwned(context context.Context, commentID, userID int) error
	UserOptions(context context.Context) ([]*UserOption, error)
	ReviewOptions(context context.Context) ([]*ReviewOption, error)
}
