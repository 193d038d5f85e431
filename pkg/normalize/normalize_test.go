// Copyright (c) 2026 Bookden. All rights reserved.
// Author: dev@bookden.app

package normalize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/unicode/norm"

	"github.com/bookden/bookden/pkg/normalize"
)

/*
TestName_Whitespace verifies trimming and internal whitespace collapsing.
*/
func TestName_Whitespace(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "Ada Lovelace", "Ada Lovelace"},
		{"leading_trailing", "  Ada Lovelace  ", "Ada Lovelace"},
		{"internal_runs", "Ada \t  Lovelace", "Ada Lovelace"},
		{"empty", "", ""},
		{"only_spaces", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalize.Name(tt.input))
		})
	}
}

/*
TestName_UnicodeComposition verifies that decomposed and precomposed forms
of the same name normalize to identical bytes.
*/
func TestName_UnicodeComposition(t *testing.T) {
	precomposed := "Émile Zola"
	decomposed := norm.NFD.String(precomposed)

	assert.NotEqual(t, precomposed, decomposed)
	assert.Equal(t, normalize.Name(precomposed), normalize.Name(decomposed))
}
