package user

// User represents a reader account.
//
// There is no credential or session attached to a user: ownership checks
// elsewhere trust the submitted user id.
type User struct {
	ID          int
	Username    string
	Email       string
	Preferences string
}

// Global field names for validation
const (
	FieldUsername    = "username"
	FieldEmail       = "email"
	FieldPreferences = "preferences"
)
