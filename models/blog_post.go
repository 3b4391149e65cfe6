package models

import "time"

// BlogPost represents a single blog entry. Posts are created once via the
// blog endpoint and never updated or deleted by this system.
// Slugs are not required to be unique.
type BlogPost struct {
	// ID is the internal unique identifier assigned by the storage layer.
	ID int64 `json:"id"`

	Title   string `json:"title"`
	Slug    string `json:"slug"`
	Content string `json:"content"`

	// Excerpt is an optional short summary shown in listings.
	Excerpt string `json:"excerpt,omitempty"`

	Author string `json:"author"`

	// Tags is an ordered list of free-form labels.
	// Persisted as a JSON column so order survives round-trips.
	Tags []string `json:"tags"`

	// Published controls visibility in listings. Defaults to true.
	Published bool `json:"published"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the BlogPost model.
func (p BlogPost) TableName() string {
	return "blog_posts"
}
