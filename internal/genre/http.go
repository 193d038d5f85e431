package genre

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
	router.Get("/genres", handler.listGenres)
	router.Get("/add_genre", handler.addGenreForm)
	router.Post("/add_genre", handler.addGenre)
	router.Post("/delete_genre/{id}", handler.deleteGenre)
}

func (handler *Handler) listGenres(writer http.ResponseWriter, request *http.Request) {
	genres, err := handler.service.ListGenres(request.Context())
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	handler.renderer.Page(writer, request, "genres.html", map[string]any{
		"Genres": genres,
	})
}

func (handler *Handler) addGenreForm(writer http.ResponseWriter, request *http.Request) {
	handler.renderer.Page(writer, request, "add_genre.html", nil)
}

func (handler *Handler) addGenre(writer http.ResponseWriter, request *http.Request) {
	name, err := requestutil.FormString(request, FieldName)
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	input := &Genre{Name: name}
	if err := handler.service.CreateGenre(request.Context(), input); err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	respond.Redirect(writer, request, "/genres")
}

func (handler *Handler) deleteGenre(writer http.ResponseWriter, request *http.Request) {
	genreID, err := requestutil.IntID(request, "id")
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteGenre(request.Context(), genreID); err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	respond.Redirect(writer, request, "/genres")
}
