package author

// Author represents the writer of one or more books.
type Author struct {
	ID          int
	Name        string
	YearOfBirth int
	Nationality string
}

// Global field names for validation
const (
	FieldName        = "name"
	FieldYearOfBirth = "year_of_birth"
	FieldNationality = "nationality"
)
