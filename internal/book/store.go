package book

import "context"

type Repository interface {
	ListBooks(context context.Context) ([]*Book, error)
	// CreateBook inserts the book row and both junction rows in one
	// transaction and returns the generated book id.
	CreateBook(context context.Context, nb *NewBook) (int, error)
	DeleteBook(context context.Context, id int) error
	SearchBooks(context context.Context, query string) ([]*SearchResult, error)
	AuthorBooks(context context.Context, authorID int) ([]*Book, error)
	AuthorOptions(context context.Context) ([]Option, error)
	GenreOptions(context context.Context) ([]Option, error)
	Overview(context context.Context, recentLimit int) (*Overview, error)
}
