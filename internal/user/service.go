package user

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

func (service *Service) ListUsers(context context.Context) ([]*User, error) {
	return service.repo.ListUsers(context)
}

func (service *Service) CreateUser(context context.Context, user *User) error {
	validator := &validate.Validator{}

	validator.Required(FieldUsername, user.Username).MaxLen(FieldUsername, user.Username, 100)
	validator.Required(FieldEmail, user.Email).Email(FieldEmail, user.Email)
	validator.Required(FieldPreferences, user.Preferences).MaxLen(FieldPreferences, user.Preferences, 500)

	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repo.CreateUser(context, user); err != nil {
		return err
	}

	service.logger.Info("user_created", slog.String("username", user.Username))
	return nil
}
