package models

import "time"

// ContactMessage represents a contact form submission.
// Write-only: there is no read endpoint for stored messages.
type ContactMessage struct {
	// ID is the internal unique identifier assigned by the storage layer.
	ID int64 `json:"id"`

	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the ContactMessage model.
func (m ContactMessage) TableName() string {
	return "contact_messages"
}
