package review

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookden/bookden/internal/platform/respond"
)

type fakeRepository struct {
	Repository

	reviews []*Review
	created *NewReview

	deletedReview int
	deletedUser   int
	deleteCalled  bool
}

func (fake *fakeRepository) ListReviews(_ context.Context) ([]*Review, error) {
	return fake.reviews, nil
}

func (fake *fakeRepository) CreateReview(_ context.Context, input *NewReview) (int, error) {
	fake.created = input
	return 99, nil
}

func (fake *fakeRepository) DeleteOwned(_ context.Context, reviewID, userID int) error {
	fake.deleteCalled = true
	fake.deletedReview = reviewID
	fake.deletedUser = userID
	return nil
}

// testRenderer builds a Renderer from minimal templates in a temp dir.
func testRenderer(t *testing.T) *respond.Renderer {
	t.Helper()

	dir := t.TempDir()
	templates := map[string]string{
		"reviews.html": `{{range .Reviews}}<p>{{.Username}}: {{.Content}}</p>{{end}}`,
		"error.html":   `<h1>{{.Status}} {{.Code}}</h1>{{range .Details}}<p>{{.Field}}: {{.Message}}</p>{{end}}`,
	}
	for name, body := range templates {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}

	renderer, err := respond.NewRenderer(dir)
	require.NoError(t, err)
	return renderer
}

func newTestServer(t *testing.T, repo Repository) *httptest.Server {
	t.Helper()

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	handler := NewHandler(NewService(repo, logger), testRenderer(t))

	router := chi.NewRouter()
	handler.RegisterRoutes(router)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server
}

// noRedirectClient keeps the 303 visible instead of following it.
func noRedirectClient() *http.Client {
	return &http.Client{
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

func TestHandlerListReviews(t *testing.T) {
	repo := &fakeRepository{reviews: []*Review{
		{ID: 1, Username: "alan", BookTitle: "Emma", Content: "Slow start", CreatedAt: time.Now()},
	}}
	server := newTestServer(t, repo)

	response, err := http.Get(server.URL + "/reviews")
	require.NoError(t, err)
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, response.StatusCode)
	assert.Contains(t, response.Header.Get("Content-Type"), "text/html")
	assert.Contains(t, string(body), "alan: Slow start")
}

func TestHandlerAddReview(t *testing.T) {
	t.Run("valid submission redirects to the list", func(t *testing.T) {
		repo := &fakeRepository{}
		server := newTestServer(t, repo)

		form := url.Values{
			"user_id":     {"3"},
			"book_id":     {"5"},
			"com_content": {"A fine book"},
		}
		response, err := noRedirectClient().Post(
			server.URL+"/add_review",
			"application/x-www-form-urlencoded",
			strings.NewReader(form.Encode()),
		)
		require.NoError(t, err)
		defer response.Body.Close()

		assert.Equal(t, http.StatusSeeOther, response.StatusCode)
		assert.Equal(t, "/reviews", response.Header.Get("Location"))

		require.NotNil(t, repo.created)
		assert.Equal(t, 3, repo.created.UserID)
		assert.Equal(t, 5, repo.created.BookID)
		assert.Equal(t, "A fine book", repo.created.Content)
	})

	t.Run("empty content renders a validation error", func(t *testing.T) {
		repo := &fakeRepository{}
		server := newTestServer(t, repo)

		form := url.Values{
			"user_id":     {"3"},
			"book_id":     {"5"},
			"com_content": {"   "},
		}
		response, err := noRedirectClient().Post(
			server.URL+"/add_review",
			"application/x-www-form-urlencoded",
			strings.NewReader(form.Encode()),
		)
		require.NoError(t, err)
		defer response.Body.Close()

		body, err := io.ReadAll(response.Body)
		require.NoError(t, err)

		assert.Equal(t, http.StatusBadRequest, response.StatusCode)
		assert.Contains(t, string(body), "VALIDATION_ERROR")
		assert.Nil(t, repo.created)
	})
}

func TestHandlerDeleteReview(t *testing.T) {
	t.Run("passes both the review id and the owner id to storage", func(t *testing.T) {
		repo := &fakeRepository{}
		server := newTestServer(t, repo)

		form := url.Values{"user_id": {"7"}}
		response, err := noRedirectClient().Post(
			server.URL+"/delete_review/3",
			"application/x-www-form-urlencoded",
			strings.NewReader(form.Encode()),
		)
		require.NoError(t, err)
		defer response.Body.Close()

		assert.Equal(t, http.StatusSeeOther, response.StatusCode)
		assert.Equal(t, "/reviews", response.Header.Get("Location"))

		assert.True(t, repo.deleteCalled)
		assert.Equal(t, 3, repo.deletedReview)
		assert.Equal(t, 7, repo.deletedUser)
	})

	t.Run("missing user id never reaches storage", func(t *testing.T) {
		repo := &fakeRepository{}
		server := newTestServer(t, repo)

		response, err := noRedirectClient().Post(
			server.URL+"/delete_review/3",
			"application/x-www-form-urlencoded",
			strings.NewReader(""),
		)
		require.NoError(t, err)
		defer response.Body.Close()

		assert.Equal(t, http.StatusBadRequest, response.StatusCode)
		assert.False(t, repo.deleteCalled)
	})
}
