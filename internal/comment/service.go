package comment

import (
	"context"
	"log/slog"

	"github.com/bookden/bookden/internal/platform/validate"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (service *Service) ListComments(context context.Context) ([]*Comment, error) {
	return service.repo.ListComments(context)
}

func (service *Service) CreateComment(context context.Context, input *NewComment) (int, error) {
	validator := &validate.Validator{}
	validator.Positive(FieldUserID, input.UserID)
	validator.Positive(FieldReviewID, input.ReviewID)
	validator.Required(FieldContent, input.Content).MaxLen(FieldContent, input.Content, 2000)

	if err := validator.Err(); err != nil {
		return 0, err
	}

	commentID, err := service.repo.CreateComment(context, input)
	if err != nil {
		return 0, err
	}

	service.logger.Info("comment_created",
		slog.Int("comment_id", commentID),
		slog.Int("user_id", input.UserID),
		slog.Int("review_id", input.ReviewID),
	)
	return commentID, nil
}

// DeleteComment deletes the comment only if the submitted user id owns
// it. A mismatch leaves the row untouched and is not reported back.
func (service *Service) DeleteComment(context context.Context, commentID, userID int) error {
	if err := service.repo.DeleteOwned(context, commentID, userID); err != nil {
		return err
	}

	service.logger.Warn("comment_deleted",
		slog.Int("comment_id", commentID),
		slog.Int("user_id", userID),
	)
	return nil
}

// FormData loads the user and review dropdowns for the add form.
func (service *Service) FormData(context context.Context) (*FormData, error) {
	users, err := service.repo.UserOptions(context)
	if err != nil {
		return nil, err
	}

	reviews, err := service.repo.ReviewOptions(context)
	if err != nil {
		return nil, err
	}

	return &FormData{Users: users, Reviews: reviews}, nil
}
