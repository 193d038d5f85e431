package user

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
	router.Get("/users", handler.listUsers)
	router.Get("/add_user", handler.addUserForm)
	router.Post("/add_user", handler.addUser)
}

func (handler *Handler) listUsers(writer http.ResponseWriter, request *http.Request) {
	users, err := handler.service.ListUsers(request.Context())
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	handler.renderer.Page(writer, request, "users.html", map[string]any{
		"Users": users,
	})
}

func (handler *Handler) addUserForm(writer http.ResponseWriter, request *http.Request) {
	handler.renderer.Page(writer, request, "add_user.html", nil)
}

func (handler *Handler) addUser(writer http.ResponseWriter, request *http.Request) {
	username, err := requestutil.FormString(request, FieldUsername)
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	email, err := requestutil.FormString(request, FieldEmail)
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	preferences, err := requestutil.FormString(request, FieldPreferences)
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	input := &User{Username: username, Email: email, Preferences: preferences}
	if err := handler.service.CreateUser(request.Context(), input); err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	respond.Redirect(writer, request, "/users")
}
