package author

import "context"

type Repository interface {
	ListAuthors(context context.Context) ([]*Author, error)
	// CreateAuthor inserts a new author unless one with the same
	// case-insensitive name already exists. It reports whether a row
	// was actually inserted.
	CreateAuthor(context context.Context, a *Author) (bool, error)
	DeleteAuthor(context context.Context, id int) error
}
