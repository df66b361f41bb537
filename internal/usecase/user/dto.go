package user

// CreateUserRequest represents the request payload for creating a new user.
// Any id supplied by the caller is ignored; the store assigns ids.
type CreateUserRequest struct {
	Name     string `validate:"required,min=3,max=50"`
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// CreateUserResponse represents the response payload after creating a user.
// Location is the canonical reference to the new record.
type CreateUserResponse struct {
	User     User
	Location string
}

// UpdateUserRequest represents the request payload for updating an existing
// user. Only name and email are applied; no validation is performed on
// update, matching the create/update asymmetry of the service contract.
type UpdateUserRequest struct {
	ID    int64
	Name  string
	Email string
}

// UpdateUserResponse represents the response payload after updating a user.
type UpdateUserResponse struct {
	User User
}

// DeleteUserRequest represents the request payload for deleting a user.
type DeleteUserRequest struct {
	ID int64
}

// GetUserRequest represents the request payload for retrieving a user.
type GetUserRequest struct {
	ID int64
}

// GetUserResponse represents the response payload for user details.
type GetUserResponse struct {
	User User
}

// ListUsersResponse represents the response payload for user listing.
type ListUsersResponse struct {
	Users []User
}

// User represents a user DTO (Data Transfer Object) for API responses.
// Passwords are never carried out of the usecase layer.
type User struct {
	ID    int64
	Name  string
	Email string
}
