package schema

// BookGenresTable represents the 'bookgenres' join table
type BookGenresTable struct {
	Table   string
	BookID  string
	GenreID string
}

// BookGenres is the schema definition for bookgenres
var BookGenres = BookGenresTable{
	Table:   "bookgenres",
	BookID:  "bookid",
	GenreID: "genreid",
}
