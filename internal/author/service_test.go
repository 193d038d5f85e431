package author

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookden/bookden/internal/platform/apperr"
)

type stubRepository struct {
	Repository

	created   *Author
	createHit bool
	deletedID int
}

func (stub *stubRepository) CreateAuthor(_ context.Context, a *Author) (bool, error) {
	stub.created = a
	return stub.createHit, nil
}

func (stub *stubRepository) DeleteAuthor(_ context.Context, id int) error {
	stub.deletedID = id
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestServiceCreateAuthor(t *testing.T) {
	t.Run("normalizes the name before storing", func(t *testing.T) {
		repo := &stubRepository{createHit: true}
		service := NewService(repo, discardLogger())

		input := &Author{Name: "  Ursula   K.  Le Guin ", YearOfBirth: 1929, Nationality: "American"}
		require.NoError(t, service.CreateAuthor(context.Background(), input))

		require.NotNil(t, repo.created)
		assert.Equal(t, "Ursula K. Le Guin", repo.created.Name)
	})

	t.Run("duplicate name is not an error", func(t *testing.T) {
		repo := &stubRepository{createHit: false}
		service := NewService(repo, discardLogger())

		input := &Author{Name: "Octavia Butler", YearOfBirth: 1947, Nationality: "American"}
		assert.NoError(t, service.CreateAuthor(context.Background(), input))
	})

	t.Run("rejects an empty name", func(t *testing.T) {
		repo := &stubRepository{}
		service := NewService(repo, discardLogger())

		err := service.CreateAuthor(context.Background(), &Author{Name: "   ", YearOfBirth: 1900, Nationality: "Unknown"})
		require.Error(t, err)

		appError := apperr.As(err)
		require.NotNil(t, appError)
		assert.Equal(t, "VALIDATION_ERROR", appError.Code)
		assert.Nil(t, repo.created)
	})

	t.Run("rejects a birth year in the future", func(t *testing.T) {
		repo := &stubRepository{}
		service := NewService(repo, discardLogger())

		err := service.CreateAuthor(context.Background(), &Author{Name: "Future Person", YearOfBirth: 3000, Nationality: "Unknown"})
		require.Error(t, err)
		assert.Nil(t, repo.created)
	})
}

func TestServiceDeleteAuthor(t *testing.T) {
	repo := &stubRepository{}
	service := NewService(repo, discardLogger())

	require.NoError(t, service.DeleteAuthor(context.Background(), 42))
	assert.Equal(t, 42, repo.deletedID)
}
