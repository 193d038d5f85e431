package comment

import "time"

// Comment is a reply to a review, joined with the commenter's name and
// the reviewed book's title for display.
type Comment struct {
	ID        int
	Username  string
	BookTitle string
	Content   string
	CreatedAt time.Time
}

// NewComment carries the submitted form fields for a comment.
type NewComment struct {
	UserID   int
	ReviewID int
	Content  string
}

// UserOption backs the commenter dropdown on the add form.
type UserOption struct {
	ID       int
	Username string
}

// ReviewOption backs the review dropdown, labelled with the reviewed
// book and the reviewer so reviews are tellable apart.
type ReviewOption struct {
	ID        int
	BookTitle string
	Username  string
}

// FormData holds the dropdown choices for the add form.
type FormData struct {
	Users   []*UserOption
	Reviews []*ReviewOption
}

// Global field names for validation
const (
	FieldUserID   = "user_id"
	FieldReviewID = "review_id"
	FieldContent  = "com_content"
)
