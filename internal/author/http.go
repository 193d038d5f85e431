package author

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
	router.Get("/authors", handler.listAuthors)
	router.Get("/add_author", handler.addAuthorForm)
	router.Post("/add_author", handler.addAuthor)
	router.Post("/delete_author/{id}", handler.deleteAuthor)
}

func (handler *Handler) listAuthors(writer http.ResponseWriter, request *http.Request) {
	authors, err := handler.service.ListAuthors(request.Context())
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	handler.renderer.Page(writer, request, "authors.html", map[string]any{
		"Authors": authors,
	})
}

func (handler *Handler) addAuthorForm(writer http.ResponseWriter, request *http.Request) {
	handler.renderer.Page(writer, request, "add_author.html", nil)
}

func (handler *Handler) addAuthor(writer http.ResponseWriter, request *http.Request) {
	name, err := requestutil.FormString(request, FieldName)
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	yearOfBirth, err := requestutil.FormInt(request, FieldYearOfBirth)
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	nationality, err := requestutil.FormString(request, FieldNationality)
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	input := &Author{Name: name, YearOfBirth: yearOfBirth, Nationality: nationality}
	if err := handler.service.CreateAuthor(request.Context(), input); err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	respond.Redirect(writer, request, "/authors")
}

func (handler *Handler) deleteAuthor(writer http.ResponseWriter, request *http.Request) {
	authorID, err := requestutil.IntID(request, "id")
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteAuthor(request.Context(), authorID); err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	respond.Redirect(writer, request, "/authors")
}
