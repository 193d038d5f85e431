package review

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

func (service *Service) ListReviews(context context.Context) ([]*Review, error) {
	return service.repo.ListReviews(context)
}

func (service *Service) CreateReview(context context.Context, input *NewReview) (int, error) {
	validator := &validate.Validator{}
	validator.Positive(FieldUserID, input.UserID)
	validator.Positive(FieldBookID, input.BookID)
	validator.Required(FieldContent, input.Content).MaxLen(FieldContent, input.Content, 2000)

	if err := validator.Err(); err != nil {
		return 0, err
	}

	reviewID, err := service.repo.CreateReview(context, input)
	if err != nil {
		return 0, err
	}

	service.logger.Info("review_created",
		slog.Int("review_id", reviewID),
		slog.Int("user_id", input.UserID),
		slog.Int("book_id", input.BookID),
	)
	return reviewID, nil
}

// DeleteReview deletes the review only if the submitted user id owns
// it. A mismatch leaves the row untouched and is not reported back.
func (service *Service) DeleteReview(context context.Context, reviewID, userID int) error {
	if err := service.repo.DeleteOwned(context, reviewID, userID); err != nil {
		return err
	}

	service.logger.Warn("review_deleted",
		slog.Int("review_id", reviewID),
		slog.Int("user_id", userID),
	)
	return nil
}

func (service *Service) ReviewsByGenre(context context.Context, genreID int) ([]*Review, error) {
	validator := &validate.Validator{}
	validator.Positive(FieldGenreID, genreID)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	return service.repo.ByGenre(context, genreID)
}

func (service *Service) Threads(context context.Context) ([]*Thread, error) {
	return service.repo.Threads(context)
}

// FormData loads the user and book dropdowns for the add form.
func (service *Service) FormData(context context.Context) (*FormData, error) {
	users, err := service.repo.UserOptions(context)
	if err != nil {
		return nil, err
	}

	books, err := service.repo.BookOptions(context)
	if err != nil {
		return nil, err
	}

	return &FormData{Users: users, Books: books}, nil
}

func (service *Service) GenreOptions(context context.Context) ([]*GenreOption, error) {
	return service.repo.GenreOptions(context)
}
