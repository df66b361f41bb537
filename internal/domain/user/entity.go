package user

// User represents a user record in the directory.
type User struct {
	ID       int64  // ID is the store-assigned unique identifier
	Name     string // Name is the full name of the user
	Email    string // Email is the email address of the user
	Password string // Password is the login credential, stored as supplied
}
