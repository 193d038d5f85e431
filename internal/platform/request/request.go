// Copyright (c) 2026 Bookden. All rights reserved.
// Author: dev@bookden.app

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
form decoding patterns, ensuring consistent error handling and type safety.

A missing required form field is a validation error, never a panic: every
helper returns an [apperr.AppError] the renderer can map to a 400 page.
*/
package requestutil

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/bookden/bookden/internal/platform/validate"
)

/*
FormString retrieves a required form field from a POST submission.

Returns:
  - string: The trimmed field value
  - error: a VALIDATION_ERROR [apperr.AppError] if the field is missing or blank
*/
func FormString(request *http.Request, field string) (string, error) {
	value := strings.TrimSpace(request.PostFormValue(field))
	if value == "" {
		return "", validate.RequiredError(field, "This field is required")
	}
	return value, nil
}

/*
OptionalFormString retrieves a form field that may be absent.
Absent and blank values both come back as the empty string.
*/
func OptionalFormString(request *http.Request, field string) string {
	return strings.TrimSpace(request.PostFormValue(field))
}

/*
FormInt retrieves a required integer form field (typically an entity id).

Returns:
  - int: The parsed value
  - error: a VALIDATION_ERROR [apperr.AppError] if missing or not an integer
*/
func FormInt(request *http.Request, field string) (int, error) {
	raw, err := FormString(request, field)
	if err != nil {
		return 0, err
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, validate.RequiredError(field, "Must be a whole number")
	}
	return value, nil
}

/*
FormFloat retrieves a required numeric form field (e.g. a rating score).
*/
func FormFloat(request *http.Request, field string) (float64, error) {
	raw, err := FormString(request, field)
	if err != nil {
		return 0, err
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, validate.RequiredError(field, "Must be a number")
	}
	return value, nil
}

/*
OptionalFormFloat retrieves a numeric form field that may be absent.

Returns nil when the field is missing or blank, matching columns that
allow NULL (e.g. a book's combined rating).
*/
func OptionalFormFloat(request *http.Request, field string) (*float64, error) {
	raw := OptionalFormString(request, field)
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, validate.RequiredError(field, "Must be a number")
	}
	return &value, nil
}

/*
IntID retrieves a named URL parameter and parses it as an integer id.

Returns:
  - int: The parsed id
  - error: a VALIDATION_ERROR [apperr.AppError] if the segment is not an integer
*/
func IntID(request *http.Request, name string) (int, error) {
	raw := chi.URLParam(request, name)

	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, validate.RequiredError(name, "Must be a numeric id")
	}
	return id, nil
}

/*
Query retrieves a named query-string parameter (e.g. the search term).
*/
func Query(request *http.Request, name string) string {
	return request.URL.Query().Get(name)
}
