package review

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/bookden/bookden/internal/platform/request"
	"github.com/bookden/bookden/internal/platform/respond"
)

type Handler struct {
	service  *Service
	renderer *respond.Renderer
}

func NewHandler(service *Service, renderer *respond.Renderer) *Handler {
	return &Handler{service: service, renderer: renderer}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/reviews", handler.listReviews)
	router.Get("/add_review", handler.addReviewForm)
	router.Post("/add_review", handler.addReview)
	router.Post("/delete_review/{id}", handler.deleteReview)
	router.Get("/reviews_by_genre", handler.reviewsByGenreForm)
	router.Post("/reviews_by_genre", handler.reviewsByGenre)
	router.Get("/reviews_with_comments", handler.reviewsWithComments)
}

func (handler *Handler) listReviews(writer http.ResponseWriter, request *http.Request) {
	reviews, err := handler.service.ListReviews(request.Context())
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	handler.renderer.Page(writer, request, "reviews.html", map[string]any{
		"Reviews": reviews,
	})
}

func (handler *Handler) addReviewForm(writer http.ResponseWriter, request *http.Request) {
	formData, err := handler.service.FormData(request.Context())
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	handler.renderer.Page(writer, request, "add_review.html", formData)
}

func (handler *Handler) addReview(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.FormInt(request, FieldUserID)
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	bookID, err := requestutil.FormInt(request, FieldBookID)
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	content, err := requestutil.FormString(request, FieldContent)
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	input := &NewReview{UserID: userID, BookID: bookID, Content: content}
	if _, err := handler.service.CreateReview(request.Context(), input); err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	respond.Redirect(writer, request, "/reviews")
}

func (handler *Handler) deleteReview(writer http.ResponseWriter, request *http.Request) {
	reviewID, err := requestutil.IntID(request, "id")
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	userID, err := requestutil.FormInt(request, FieldUserID)
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteReview(request.Context(), reviewID, userID); err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	respond.Redirect(writer, request, "/reviews")
}

func (handler *Handler) reviewsByGenreForm(writer http.ResponseWriter, request *http.Request) {
	genres, err := handler.service.GenreOptions(request.Context())
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	handler.renderer.Page(writer, request, "reviews_by_genre.html", map[string]any{
		"Genres": genres,
	})
}

func (handler *Handler) reviewsByGenre(writer http.ResponseWriter, request *http.Request) {
	genreID, err := requestutil.FormInt(request, FieldGenreID)
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	reviews, err := handler.service.ReviewsByGenre(request.Context(), genreID)
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	genres, err := handler.service.GenreOptions(request.Context())
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	handler.renderer.Page(writer, request, "reviews_by_genre.html", map[string]any{
		"Genres":  genres,
		"GenreID": genreID,
		"Reviews": reviews,
	})
}

func (handler *Handler) reviewsWithComments(writer http.ResponseWriter, request *http.Request) {
	threads, err := handler.service.Threads(request.Context())
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	handler.renderer.Page(writer, request, "reviews_with_comments.html", map[string]any{
		"Threads": threads,
	})
}
