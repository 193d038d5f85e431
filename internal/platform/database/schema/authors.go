package schema

// AuthorsTable represents the 'authors' table
type AuthorsTable struct {
	Table       string
	ID          string
	Name        string
	YearOfBirth string
	Nationality string
}

// Authors is the schema definition for authors
var Authors = AuthorsTable{
	Table:       "authors",
	ID:          "authorid",
	Name:        "name",
	YearOfBirth: "year_of_birth",
	Nationality: "nationality",
}
