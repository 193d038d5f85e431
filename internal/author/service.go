package author

import (
	"context"
	"log/slog"
	"time"

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

func (service *Service) ListAuthors(context context.Context) ([]*Author, error) {
	return service.repo.ListAuthors(context)
}

// CreateAuthor normalizes the submitted name and inserts it unless an
// author with the same case-insensitive name already exists.
func (service *Service) CreateAuthor(context context.Context, author *Author) error {
	author.Name = normalize.Name(author.Name)

	validator := &validate.Validator{}
	validator.Required(FieldName, author.Name).MaxLen(FieldName, author.Name, 200)
	validator.Range(FieldYearOfBirth, author.YearOfBirth, 0, time.Now().Year())
	validator.Required(FieldNationality, author.Nationality).MaxLen(FieldNationality, author.Nationality, 100)

	if err := validator.Err(); err != nil {
		return err
	}

	created, err := service.repo.CreateAuthor(context, author)
	if err != nil {
		return err
	}

	if !created {
		service.logger.Info("author_deduplicated", slog.String("name", author.Name))
		return nil
	}

	service.logger.Info("author_created", slog.String("name", author.Name))
	return nil
}

func (service *Service) DeleteAuthor(context context.Context, id int) error {
	if err := service.repo.DeleteAuthor(context, id); err != nil {
		return err
	}

	service.logger.Warn("author_deleted", slog.Int("author_id", id))
	return nil
}
