package schema

// GenresTable represents the 'genres' table
type GenresTable struct {
	Table string
	ID    string
	Name  string
}

// Genres is the schema definition for genres
var Genres = GenresTable{
	Table: "genres",
	ID:    "genreid",
	Name:  "genrename",
}
