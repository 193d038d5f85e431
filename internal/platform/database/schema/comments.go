package schema

// CommentsTable represents the 'comments' table
type CommentsTable struct {
	Table     string
	ID        string
	UserID    string
	ReviewID  string
	Content   string
	Timestamp string
}

// Comments is the schema definition for comments
var Comments = CommentsTable{
	Table:     "comments",
	ID:        "commentid",
	UserID:    "userid",
	ReviewID:  "reviewid",
	Content:   "com_content",
	Timestamp: "timestamp",
}
