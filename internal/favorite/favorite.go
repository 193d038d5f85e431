package favorite

// Favorite marks a book as one of a user's favorites, joined with
// display names. The pair (user, book) is unique.
type Favorite struct {
	UserID    int
	BookID    int
	Username  string
	BookTitle string
}

// NewFavorite carries the submitted form fields for a favorite.
type NewFavorite struct {
	UserID int
	BookID int
}

// UserOption backs the user dropdown on the add form.
type UserOption struct {
	ID       int
	Username string
}

// BookOption backs the book dropdown on the add form.
type BookOption struct {
	ID    int
	Title string
}

// FormData holds the dropdown choices for the add form.
type FormData struct {
	Users []*UserOption
	Books []*BookOption
}

// Global field names for validation
const (
	FieldUserID = "user_id"
	FieldBookID = "book_id"
)
