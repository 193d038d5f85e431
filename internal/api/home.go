// Copyright (c) 2026 Bookden. All rights reserved.
// Author: dev@bookden.app

package api

import (
	"net/http"

	"github.com/bookden/bookden/internal/book"
	"github.com/bookden/bookden/internal/platform/constants"
	"github.com/bookden/bookden/internal/platform/respond"
)

// NewHomeHandler creates the GET / handler. The landing page shows
// library-wide counts and the most recently added books.
func NewHomeHandler(books *book.Service, renderer *respond.Renderer) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		overview, err := books.Overview(request.Context(), constants.HomeRecentBooks)
		if err != nil {
			renderer.Error(writer, request, err)
			return
		}

		renderer.Page(writer, request, "index.html", overview)
	}
}
