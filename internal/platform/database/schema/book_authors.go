package schema

// BookAuthorsTable represents the 'book_authors' join table
type BookAuthorsTable struct {
	Table    string
	BookID   string
	AuthorID string
}

// BookAuthors is the schema definition for book_authors
var BookAuthors = BookAuthorsTable{
	Table:    "book_authors",
	BookID:   "bookid",
	AuthorID: "authorid",
}
