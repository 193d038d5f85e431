package book

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
	router.Get("/books", handler.listBooks)
	router.Get("/add_book", handler.addBookForm)
	router.Post("/add_book", handler.addBook)
	router.Post("/delete_book/{id}", handler.deleteBook)
	router.Get("/search", handler.searchBooks)
	router.Get("/author_books/{id}", handler.authorBooks)
}

func (handler *Handler) listBooks(writer http.ResponseWriter, request *http.Request) {
	books, err := handler.service.ListBooks(request.Context())
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	handler.renderer.Page(writer, request, "books.html", map[string]any{
		"Books": books,
	})
}

func (handler *Handler) addBookForm(writer http.ResponseWriter, request *http.Request) {
	formData, err := handler.service.FormData(request.Context())
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	handler.renderer.Page(writer, request, "add_book.html", formData)
}

func (handler *Handler) addBook(writer http.ResponseWriter, request *http.Request) {
	title, err := requestutil.FormString(request, FieldTitle)
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	isbn, err := requestutil.FormString(request, FieldISBN)
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	combinedRating, err := requestutil.OptionalFormFloat(request, FieldCombinedRating)
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	authorID, err := requestutil.FormInt(request, FieldAuthorID)
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	genreID, err := requestutil.FormInt(request, FieldGenreID)
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	input := &NewBook{
		Title:          title,
		ISBN:           isbn,
		CombinedRating: combinedRating,
		AuthorID:       authorID,
		GenreID:        genreID,
	}

	if _, err := handler.service.CreateBook(request.Context(), input); err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	respond.Redirect(writer, request, "/books")
}

func (handler *Handler) deleteBook(writer http.ResponseWriter, request *http.Request) {
	bookID, err := requestutil.IntID(request, "id")
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteBook(request.Context(), bookID); err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	respond.Redirect(writer, request, "/books")
}

func (handler *Handler) searchBooks(writer http.ResponseWriter, request *http.Request) {
	query := requestutil.Query(request, "query")

	results, err := handler.service.SearchBooks(request.Context(), query)
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	handler.renderer.Page(writer, request, "search_results.html", map[string]any{
		"Query":   query,
		"Results": results,
	})
}

func (handler *Handler) authorBooks(writer http.ResponseWriter, request *http.Request) {
	authorID, err := requestutil.IntID(request, "id")
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	books, err := handler.service.AuthorBooks(request.Context(), authorID)
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	handler.renderer.Page(writer, request, "author_books.html", map[string]any{
		"Books": books,
	})
}
