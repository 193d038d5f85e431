// Copyright (c) 2026 Bookden. All rights reserved.
// Author: dev@bookden.app

// Package respond provides the HTML response helpers used by all page handlers.
//
// # Architecture
//
// This package centralizes the presentation logic for HTTP responses.
// Pages are rendered from a single parsed template set; successful writes
// redirect back to their list page; every Go error is funneled through
// [Renderer.Error], which maps the [apperr.AppError] taxonomy to a status
// code and a uniform error page.
package respond

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"path/filepath"

	"github.com/bookden/bookden/internal/platform/apperr"
	"github.com/bookden/bookden/internal/platform/ctxutil"
)

// Renderer holds the parsed HTML template set.
//
// It is constructed once at startup and shared by every handler; parsed
// templates are safe for concurrent execution.
type Renderer struct {
	templates *template.Template
}

// funcs are the helpers available inside every template.
var funcs = template.FuncMap{
	// add1 turns a zero-based range index into a display rank.
	"add1": func(i int) int { return i + 1 },
}

// NewRenderer parses every *.html file under templatesPath into one template set.
func NewRenderer(templatesPath string) (*Renderer, error) {
	templates, err := template.New("").Funcs(funcs).ParseGlob(filepath.Join(templatesPath, "*.html"))
	if err != nil {
		return nil, fmt.Errorf("respond: failed to parse templates: %w", err)
	}
	return &Renderer{templates: templates}, nil
}

// Page renders the named template with a 200 OK status.
//
// The template is executed into a buffer first so that a rendering failure
// never leaves a half-written page behind a 200 header.
func (renderer *Renderer) Page(writer http.ResponseWriter, request *http.Request, name string, data any) {
	var buf bytes.Buffer
	if err := renderer.templates.ExecuteTemplate(&buf, name, data); err != nil {
		renderer.Error(writer, request, apperr.Internal(err))
		return
	}

	writer.Header().Set("Content-Type", "text/html; charset=utf-8")
	writer.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(writer)
}

// Redirect sends the client back to a list page after a successful write.
//
// 303 See Other forces the follow-up request to be a GET even after a POST.
func Redirect(writer http.ResponseWriter, request *http.Request, target string) {
	http.Redirect(writer, request, target, http.StatusSeeOther)
}

// JSON writes a JSON payload. Pages are HTML; this is only used by the
// machine-facing /health and /ready probes.
func JSON(writer http.ResponseWriter, status int, payload any) {
	writer.Header().Set("Content-Type", "application/json; charset=utf-8")
	writer.WriteHeader(status)
	_ = json.NewEncoder(writer).Encode(payload)
}

// errorView is the data handed to the error template.
type errorView struct {
	Status  int
	Code    string
	Message string
	Details []apperr.FieldError
}

// Error converts any Go error into a standardized error page.
func (renderer *Renderer) Error(writer http.ResponseWriter, request *http.Request, err error) {
	appError := apperr.As(err)
	if appError == nil {
		// Unexpected internal error: log full details but hide them from the client for security.
		logger := ctxutil.GetLogger(request.Context())
		logger.ErrorContext(request.Context(), "unhandled_error_swallowed",
			slog.String("error", err.Error()),
			slog.String("request_id", ctxutil.GetRequestID(request.Context())),
		)
		appError = apperr.Internal(err)
	}

	// Always log 5xx errors as they indicate server-side issues.
	if appError.HTTPStatus >= 500 {
		logger := ctxutil.GetLogger(request.Context())
		logger.ErrorContext(request.Context(), "request_server_error",
			slog.String("code", appError.Code),
			slog.String("request_id", ctxutil.GetRequestID(request.Context())),
			slog.Any("cause", appError.Cause),
		)
	}

	view := errorView{
		Status:  appError.HTTPStatus,
		Code:    appError.Code,
		Message: appError.Message,
		Details: appError.Details,
	}

	var buf bytes.Buffer
	if terr := renderer.templates.ExecuteTemplate(&buf, "error.html", view); terr != nil {
		// The error page itself failed; fall back to plain text.
		http.Error(writer, appError.Message, appError.HTTPStatus)
		return
	}

	writer.Header().Set("Content-Type", "text/html; charset=utf-8")
	writer.WriteHeader(appError.HTTPStatus)
	_, _ = buf.WriteTo(writer)
}
