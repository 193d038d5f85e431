package schema

// UsersTable represents the 'users' table
type UsersTable struct {
	Table       string
	ID          string
	Username    string
	Email       string
	Preferences string
}

// Users is the schema definition for users
var Users = UsersTable{
	Table:       "users",
	ID:          "userid",
	Username:    "username",
	Email:       "user_email",
	Preferences: "preferences",
}
