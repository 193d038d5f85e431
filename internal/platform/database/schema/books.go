package schema

// BooksTable represents the 'books' table
type BooksTable struct {
	Table          string
	ID             string
	Title          string
	ISBN           string
	CombinedRating string
}

// Books is the schema definition for books
var Books = BooksTable{
	Table:          "books",
	ID:             "bookid",
	Title:          "book_title",
	ISBN:           "isbn",
	CombinedRating: "combined_rating",
}
