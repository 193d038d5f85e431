package schema

// FavoritesTable represents the 'favorites' table
//
// The primary key is the composite (userid, bookid).
type FavoritesTable struct {
	Table  string
	UserID string
	BookID string
}

// Favorites is the schema definition for favorites
var Favorites = FavoritesTable{
	Table:  "favorites",
	UserID: "userid",
	BookID: "bookid",
}
