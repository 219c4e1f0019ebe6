package models

import "time"

// User represents an account entity used for authentication and authorization.
// PasswordHash is a bcrypt blob and must never be exposed outside trusted
// boundaries; it is therefore excluded from JSON.
type User struct {
	// ID is the service-generated identifier (UUIDv7 string).
	ID string `json:"id"`

	// Username is the unique login identifier.
	Username string `json:"username"`

	// PasswordHash is the self-describing bcrypt hash of the password.
	PasswordHash string `json:"-"`

	// FullName is the display name of the user.
	FullName string `json:"full_name"`

	// Role is one of the fixed circuit roles.
	Role Role `json:"role"`

	// Society is the optional society affiliation.
	Society *Society `json:"society"`

	// Organization is the optional organization affiliation.
	Organization *Organization `json:"organization"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`

	// IsActive is false for deactivated accounts. Inactive users are refused
	// at login and on every authenticated request.
	IsActive bool `json:"is_active"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Public returns the reduced user view embedded in a login response.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:           u.ID,
		Username:     u.Username,
		FullName:     u.FullName,
		Role:         u.Role,
		Society:      u.Society,
		Organization: u.Organization,
	}
}

// PublicUser is the user summary returned together with an access token.
type PublicUser struct {
	ID           string        `json:"id"`
	Username     string        `json:"username"`
	FullName     string        `json:"full_name"`
	Role         Role          `json:"role"`
	Society      *Society      `json:"society"`
	Organization *Organization `json:"organization"`
}

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Username     string        `json:"username"`
	Password     string        `json:"password"`
	FullName     string        `json:"full_name"`
	Role         Role          `json:"role"`
	Society      *Society      `json:"society,omitempty"`
	Organization *Organization `json:"organization,omitempty"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
