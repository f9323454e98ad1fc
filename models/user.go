package models

import "time"

// User represents the authentication principal stored in the "users" table.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Username is the unique, case-sensitive login name.
	Username string `json:"username"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// It is never serialized to JSON.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Credentials is the body of a login request.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Principal is the authenticated identity attached to a request after
// token verification.
type Principal struct {
	UserID   int64  `json:"id"`
	Username string `json:"username"`
}
