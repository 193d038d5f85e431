package rating

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

func (service *Service) ListRatings(context context.Context) ([]*Rating, error) {
	return service.repo.ListRatings(context)
}

// RateBook records the score, overwriting any score the user already
// gave the book. Scores run from 0 to 5.
func (service *Service) RateBook(context context.Context, input *NewRating) error {
	validator := &validate.Validator{}
	validator.Positive(FieldUserID, input.UserID)
	validator.Positive(FieldBookID, input.BookID)
	validator.FloatRange(FieldScore, input.Score, 0, 5)

	if err := validator.Err(); err != nil {
		return err
	}

	inserted, err := service.repo.Upsert(context, input)
	if err != nil {
		return err
	}

	event := "rating_updated"
	if inserted {
		event = "rating_created"
	}
	service.logger.Info(event,
		slog.Int("user_id", input.UserID),
		slog.Int("book_id", input.BookID),
		slog.Float64("score", input.Score),
	)
	return nil
}

// DeleteRating removes the user's rating of the book. A pair with no
// rating leaves the table untouched and is not reported back.
func (service *Service) DeleteRating(context context.Context, bookID, userID int) error {
	if err := service.repo.DeleteOwned(context, bookID, userID); err != nil {
		return err
	}

	service.logger.Warn("rating_deleted",
		slog.Int("book_id", bookID),
		slog.Int("user_id", userID),
	)
	return nil
}

func (service *Service) TopBooks(context context.Context, limit int) ([]*TopBook, error) {
	return service.repo.TopBooks(context, limit)
}

// FormData loads the user and book dropdowns for the rate form.
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
