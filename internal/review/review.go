package review

import "time"

// Review is a user's written review of a book, joined with the
// reviewer's name and the book's title for display.
type Review struct {
	ID        int
	Username  string
	BookTitle string
	Content   string
	CreatedAt time.Time
}

// NewReview carries the submitted form fields for a review.
type NewReview struct {
	UserID  int
	BookID  int
	Content string
}

// Thread is a review together with all comments left on it.
type Thread struct {
	ID        int
	Username  string
	BookTitle string
	Content   string
	CreatedAt time.Time
	Comments  []*ThreadComment
}

// ThreadComment is one comment inside a review thread.
type ThreadComment struct {
	ID        int
	Username  string
	Content   string
	CreatedAt time.Time
}

// UserOption backs the reviewer dropdown on the add form.
type UserOption struct {
	ID       int
	Username string
}

// BookOption backs the book dropdown on the add form.
type BookOption struct {
	ID    int
	Title string
}

// GenreOption backs the genre dropdown on the by-genre form.
type GenreOption struct {
	ID   int
	Name string
}

// FormData holds the dropdown choices for the add form.
type FormData struct {
	Users []*UserOption
	Books []*BookOption
}

// Global field names for validation
const (
	FieldUserID  = "user_id"
	FieldBookID  = "book_id"
	FieldContent = "com_content"
	FieldGenreID = "genre_id"
)
