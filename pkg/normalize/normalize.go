// Copyright (c) 2026 Bookden. All rights reserved.
// Author: dev@bookden.app

// Package normalize canonicalizes user-submitted names before storage.
//
// # Usage
//
// Author and genre names are deduplicated case-insensitively, so two
// submissions of the same name must reach the database in an identical
// byte form. This package handles Unicode normalization and whitespace
// cleanup; case folding is left to the database's lower() index.
package normalize

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Name converts an arbitrary Unicode string into its canonical stored form.
//
// # Transformation Pipeline
//
// 1. Normalizes to NFC (composes combining sequences: e + acute → é).
// 2. Collapses runs of whitespace into single spaces.
// 3. Trims leading and trailing whitespace.
func Name(s string) string {
	// 1. Compose combining sequences so equal names compare equal
	result := norm.NFC.String(s)

	// 2. Collapse internal whitespace
	result = strings.Join(strings.Fields(result), " ")

	return result
}
