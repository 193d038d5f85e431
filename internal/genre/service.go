package genre

import (
	"context"
	"log/slog"

	"github.com/bookden/bookden/internal/platform/validate"
	"github.com/bookden/bookden/pkg/normalize"
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

func (service *Service) ListGenres(context context.Context) ([]*Genre, error) {
	return service.repo.ListGenres(context)
}

// CreateGenre normalizes the submitted name and inserts it unless a
// genre with the same case-insensitive name already exists.
func (service *Service) CreateGenre(context context.Context, genre *Genre) error {
	genre.Name = normalize.Name(genre.Name)

	validator := &validate.Validator{}
	validator.Required(FieldName, genre.Name).MaxLen(FieldName, genre.Name, 100)

	if err := validator.Err(); err != nil {
		return err
	}

	created, err := service.repo.CreateGenre(context, genre)
	if err != nil {
		return err
	}

	if !created {
		service.logger.Info("genre_deduplicated", slog.String("name", genre.Name))
		return nil
	}

	service.logger.Info("genre_created", slog.String("name", genre.Name))
	return nil
}

func (service *Service) DeleteGenre(context context.Context, id int) error {
	if err := service.repo.DeleteGenre(context, id); err != nil {
		return err
	}

	service.logger.Warn("genre_deleted", slog.Int("genre_id", id))
	return nil
}
