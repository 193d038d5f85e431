package genre

// Genre categorizes books (many-to-many through bookgenres).
type Genre struct {
	ID   int
	Name string
}

// Global field names for validation
const (
	FieldName = "genre_name"
)
