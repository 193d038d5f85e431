package genre

import "context"

type Repository interface {
	ListGenres(context context.Context) ([]*Genre, error)
	// CreateGenre inserts a new genre unless one with the same
	// case-insensitive name already exists. It reports whether a row
	// was actually inserted.
	CreateGenre(context context.Context, g *Genre) (bool, error)
	DeleteGenre(context context.Context, id int) error
}
