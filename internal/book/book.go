package book

// Book represents a title in the catalogue.
//
// CombinedRating is the denormalized rating stored on the book row itself,
// distinct from the per-user ratings table.
type Book struct {
	ID             int
	Title          string
	ISBN           string
	CombinedRating *float64
}

// NewBook is the submission payload for creating a book together with its
// author and genre links.
type NewBook struct {
	Title          string
	ISBN           string
	CombinedRating *float64
	AuthorID       int
	GenreID        int
}

// SearchResult is one row of the title/author substring search.
// AuthorName is nil for books with no linked author.
type SearchResult struct {
	Title          string
	CombinedRating *float64
	AuthorName     *string
}

// Option is a dropdown entry for the add-book form.
type Option struct {
	ID   int
	Name string
}

// FormData carries the dropdown contents of the add-book form.
type FormData struct {
	Authors []Option
	Genres  []Option
}

// Overview summarizes the library for the home page.
type Overview struct {
	Books     int
	Authors   int
	Genres    int
	Users     int
	Reviews   int
	Ratings   int
	Comments  int
	Favorites int
	Recent    []*Book
}

// Global field names for validation
const (
	FieldTitle          = "book_title"
	FieldISBN           = "isbn"
	FieldCombinedRating = "combined_rating"
	FieldAuthorID       = "author_id"
	FieldGenreID        = "genre_id"
)
