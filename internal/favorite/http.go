package favorite

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
	router.Get("/favorites", handler.listFavorites)
	router.Get("/add_favorite", handler.addFavoriteForm)
	router.Post("/add_favorite", handler.addFavorite)
	router.Post("/delete_favorite/{id}", handler.deleteFavorite)
}

func (handler *Handler) listFavorites(writer http.ResponseWriter, request *http.Request) {
	favorites, err := handler.service.ListFavorites(request.Context())
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	handler.renderer.Page(writer, request, "favorites.html", map[string]any{
		"Favorites": favorites,
	})
}

func (handler *Handler) addFavoriteForm(writer http.ResponseWriter, request *http.Request) {
	formData, err := handler.service.FormData(request.Context())
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	handler.renderer.Page(writer, request, "add_favorite.html", formData)
}

func (handler *Handler) addFavorite(writer http.ResponseWriter, request *http.Request) {
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

	input := &NewFavorite{UserID: userID, BookID: bookID}
	if err := handler.service.AddFavorite(request.Context(), input); err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	respond.Redirect(writer, request, "/favorites")
}

// deleteFavorite takes the book id in the path; favorites have no
// surrogate id, the (user, book) pair identifies the row.
func (handler *Handler) deleteFavorite(writer http.ResponseWriter, request *http.Request) {
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

	if err := handler.service.DeleteFavorite(request.Context(), bookID, userID); err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	respond.Redirect(writer, request, "/favorites")
}
