package schema

// RatingsTable represents the 'ratings' table
//
// The primary key is the composite (userid, bookid); there is no surrogate id.
type RatingsTable struct {
	Table  string
	UserID string
	BookID string
	Score  string
}

// Ratings is the schema definition for ratings
var Ratings = RatingsTable{
	Table:  "ratings",
	UserID: "userid",
	BookID: "bookid",
	Score:  "score",
}
