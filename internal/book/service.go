package book

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

func (service *Service) ListBooks(context context.Context) ([]*Book, error) {
	return service.repo.ListBooks(context)
}

// CreateBook validates the submission and persists the book together with
// its author and genre links.
func (service *Service) CreateBook(context context.Context, input *NewBook) (int, error) {
	validator := &validate.Validator{}

	validator.Required(FieldTitle, input.Title).MaxLen(FieldTitle, input.Title, 300)
	validator.Required(FieldISBN, input.ISBN).MaxLen(FieldISBN, input.ISBN, 20)
	validator.Positive(FieldAuthorID, input.AuthorID)
	validator.Positive(FieldGenreID, input.GenreID)
	if input.CombinedRating != nil {
		validator.FloatRange(FieldCombinedRating, *input.CombinedRating, 0, 5)
	}

	if err := validator.Err(); err != nil {
		return 0, err
	}

	bookID, err := service.repo.CreateBook(context, input)
	if err != nil {
		return 0, err
	}

	service.logger.Info("book_created",
		slog.Int("book_id", bookID),
		slog.String("title", input.Title),
	)
	return bookID, nil
}

func (service *Service) DeleteBook(context context.Context, id int) error {
	if err := service.repo.DeleteBook(context, id); err != nil {
		return err
	}

	service.logger.Warn("book_deleted", slog.Int("book_id", id))
	return nil
}

func (service *Service) SearchBooks(context context.Context, query string) ([]*SearchResult, error) {
	return service.repo.SearchBooks(context, query)
}

func (service *Service) AuthorBooks(context context.Context, authorID int) ([]*Book, error) {
	return service.repo.AuthorBooks(context, authorID)
}

// FormData loads the dropdown contents for the add-book form.
func (service *Service) FormData(context context.Context) (*FormData, error) {
	authors, err := service.repo.AuthorOptions(context)
	if err != nil {
		return nil, err
	}

	genres, err := service.repo.GenreOptions(context)
	if err != nil {
		return nil, err
	}

	return &FormData{Authors: authors, Genres: genres}, nil
}

func (service *Service) Overview(context context.Context, recentLimit int) (*Overview, error) {
	return service.repo.Overview(context, recentLimit)
}
