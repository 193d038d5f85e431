package rating

// Rating is one user's score for one book, joined with display names.
// The pair (user, book) is unique; re-rating overwrites the score.
type Rating struct {
	UserID    int
	BookID    int
	Username  string
	BookTitle string
	Score     float64
}

// NewRating carries the submitted form fields for a rating.
type NewRating struct {
	UserID int
	BookID int
	Score  float64
}

// TopBook is one row of the top-rated ranking.
type TopBook struct {
	Title        string
	AverageScore float64
}

// UserOption backs the user dropdown on the rate form.
type UserOption struct {
	ID       int
	Username string
}

// BookOption backs the book dropdown on the rate form.
type BookOption struct {
	ID    int
	Title string
}

// FormData holds the dropdown choices for the rate form.
type FormData struct {
	Users []*UserOption
	Books []*BookOption
}

// Global field names for validation
const (
	FieldUserID = "user_id"
	FieldBookID = "book_id"
	FieldScore  = "score"
)
