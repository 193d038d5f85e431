package rating

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bookden/bookden/internal/platform/constants"
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
	router.Get("/ratings", handler.listRatings)
	router.Get("/rate_book", handler.rateBookForm)
	router.Post("/rate_book", handler.rateBook)
	router.Post("/delete_rating/{id}", handler.deleteRating)
	router.Get("/top_books", handler.topBooks)
}

func (handler *Handler) listRatings(writer http.ResponseWriter, request *http.Request) {
	ratings, err := handler.service.ListRatings(request.Context())
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	handler.renderer.Page(writer, request, "ratings.html", map[string]any{
		"Ratings": ratings,
	})
}

func (handler *Handler) rateBookForm(writer http.ResponseWriter, request *http.Request) {
	formData, err := handler.service.FormData(request.Context())
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	handler.renderer.Page(writer, request, "rate_book.html", formData)
}

func (handler *Handler) rateBook(writer http.ResponseWriter, request *http.Request) {
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

	score, err := requestutil.FormFloat(request, FieldScore)
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	input := &NewRating{UserID: userID, BookID: bookID, Score: score}
	if err := handler.service.RateBook(request.Context(), input); err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	respond.Redirect(writer, request, "/ratings")
}

// deleteRating takes the book id in the path; ratings have no surrogate
// id of their own, the (user, book) pair identifies the row.
func (handler *Handler) deleteRating(writer http.ResponseWriter, request *http.Request) {
	bookID, err := requestutil.IntID(request, "id")
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	userID, err := requestutil.FormInt(request, FieldUserID)
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteRating(request.Context(), bookID, userID); err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	respond.Redirect(writer, request, "/ratings")
}

func (handler *Handler) topBooks(writer http.ResponseWriter, request *http.Request) {
	top, err := handler.service.TopBooks(request.Context(), constants.TopBooksLimit)
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	handler.renderer.Page(writer, request, "top_books.html", map[string]any{
		"Books": top,
	})
}
