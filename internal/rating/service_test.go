package rating

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

	upserted     *NewRating
	upsertInsert bool

	deletedBook int
	deletedUser int
}

func (stub *stubRepository) Upsert(_ context.Context, input *NewRating) (bool, error) {
	stub.upserted = input
	return stub.upsertInsert, nil
}

func (stub *stubRepository) DeleteOwned(_ context.Context, bookID, userID int) error {
	stub.deletedBook = bookID
	stub.deletedUser = userID
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestServiceRateBook(t *testing.T) {
	t.Run("accepts a score inside the range", func(t *testing.T) {
		repo := &stubRepository{upsertInsert: true}
		service := NewService(repo, discardLogger())

		err := service.RateBook(context.Background(), &NewRating{UserID: 1, BookID: 2, Score: 4.5})
		require.NoError(t, err)
		require.NotNil(t, repo.upserted)
		assert.Equal(t, 4.5, repo.upserted.Score)
	})

	t.Run("accepts the range endpoints", func(t *testing.T) {
		repo := &stubRepository{}
		service := NewService(repo, discardLogger())

		require.NoError(t, service.RateBook(context.Background(), &NewRating{UserID: 1, BookID: 2, Score: 0}))
		require.NoError(t, service.RateBook(context.Background(), &NewRating{UserID: 1, BookID: 2, Score: 5}))
	})

	t.Run("rejects a score above five", func(t *testing.T) {
		repo := &stubRepository{}
		service := NewService(repo, discardLogger())

		err := service.RateBook(context.Background(), &NewRating{UserID: 1, BookID: 2, Score: 5.1})
		require.Error(t, err)

		appError := apperr.As(err)
		require.NotNil(t, appError)
		assert.Equal(t, "VALIDATION_ERROR", appError.Code)
		assert.Nil(t, repo.upserted)
	})

	t.Run("rejects non-positive ids", func(t *testing.T) {
		repo := &stubRepository{}
		service := NewService(repo, discardLogger())

		err := service.RateBook(context.Background(), &NewRating{UserID: 0, BookID: -3, Score: 3})
		require.Error(t, err)

		appError := apperr.As(err)
		require.NotNil(t, appError)
		assert.Len(t, appError.Details, 2)
		assert.Nil(t, repo.upserted)
	})
}

func TestServiceDeleteRating(t *testing.T) {
	repo := &stubRepository{}
	service := NewService(repo, discardLogger())

	require.NoError(t, service.DeleteRating(context.Background(), 7, 3))
	assert.Equal(t, 7, repo.deletedBook)
	assert.Equal(t, 3, repo.deletedUser)
}
