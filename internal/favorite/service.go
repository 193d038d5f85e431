package favorite

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

func (service *Service) ListFavorites(context context.Context) ([]*Favorite, error) {
	return service.repo.ListFavorites(context)
}

// AddFavorite marks the book as a favorite. Favoriting a book the user
// already favorited changes nothing.
func (service *Service) AddFavorite(context context.Context, input *NewFavorite) error {
	validator := &validate.Validator{}
	validator.Positive(FieldUserID, input.UserID)
	validator.Positive(FieldBookID, input.BookID)

	if err := validator.Err(); err != nil {
		return err
	}

	added, err := service.repo.Add(context, input)
	if err != nil {
		return err
	}

	if !added {
		service.logger.Info("favorite_duplicate",
			slog.Int("user_id", input.UserID),
			slog.Int("book_id", input.BookID),
		)
		return nil
	}

	service.logger.Info("favorite_added",
		slog.Int("user_id", input.UserID),
		slog.Int("book_id", input.BookID),
	)
	return nil
}

// DeleteFavorite removes the user's favorite of the book. A pair with
// no favorite leaves the table untouched and is not reported back.
func (service *Service) DeleteFavorite(context context.Context, bookID, userID int) error {
	if err := service.repo.DeleteOwned(context, bookID, userID); err != nil {
		return err
	}

	service.logger.Warn("favorite_deleted",
		slog.Int("book_id", bookID),
		slog.Int("user_id", userID),
	)
	return nil
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
