package comment

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
	router.Get("/comments", handler.listComments)
	router.Get("/add_comment", handler.addCommentForm)
	router.Post("/add_comment", handler.addComment)
	router.Post("/delete_comment/{id}", handler.deleteComment)
}

func (handler *Handler) listComments(writer http.ResponseWriter, request *http.Request) {
	comments, err := handler.service.ListComments(request.Context())
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	handler.renderer.Page(writer, request, "comments.html", map[string]any{
		"Comments": comments,
	})
}

func (handler *Handler) addCommentForm(writer http.ResponseWriter, request *http.Request) {
	formData, err := handler.service.FormData(request.Context())
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	handler.renderer.Page(writer, request, "add_comment.html", formData)
}

func (handler *Handler) addComment(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.FormInt(request, FieldUserID)
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	reviewID, err := requestutil.FormInt(request, FieldReviewID)
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	content, err := requestutil.FormString(request, FieldContent)
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	input := &NewComment{UserID: userID, ReviewID: reviewID, Content: content}
	if _, err := handler.service.CreateComment(request.Context(), input); err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	respond.Redirect(writer, request, "/comments")
}

func (handler *Handler) deleteComment(writer http.ResponseWriter, request *http.Request) {
	commentID, err := requestutil.IntID(request, "id")
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	userID, err := requestutil.FormInt(request, FieldUserID)
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteComment(request.Context(), commentID, userID); err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	respond.Redirect(writer, request, "/comments")
}
