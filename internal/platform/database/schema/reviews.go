package schema

// ReviewsTable represents the 'reviews' table
type ReviewsTable struct {
	Table     string
	ID        string
	UserID    string
	BookID    string
	Content   string
	Timestamp string
}

// Reviews is the schema definition for reviews
var Reviews = ReviewsTable{
	Table:     "reviews",
	ID:        "reviewid",
	UserID:    "userid",
	BookID:    "bookid",
	Content:   "com_content",
	Timestamp: "timestamp",
}
