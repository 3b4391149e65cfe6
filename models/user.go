package models

import "time"

// User represents a registered account. It is created once by the signup
// endpoint and afterwards only read back during login.
// PasswordHash must always hold a bcrypt digest, never plaintext.
type User struct {
	// ID is the internal unique identifier assigned by the storage layer.
	ID int64 `json:"id"`

	// Name is the display name supplied at signup.
	Name string `json:"name"`

	// Email is the account identifier used during login.
	// The storage layer enforces uniqueness.
	Email string `json:"email"`

	// PasswordHash is the bcrypt digest of the signup password.
	// Never exposed via JSON.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
