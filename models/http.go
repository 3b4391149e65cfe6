package models

// Request payloads accepted by the HTTP layer. Each payload is validated for
// shape before any handler logic runs.

// SignupPayload is the request body for POST /api/auth/signup.
type SignupPayload struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginPayload is the request body for POST /api/auth/login.
type LoginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// BlogCreatePayload is the request body for POST /api/blog.
// Published is a pointer so that an absent field can be distinguished from an
// explicit false; absence defaults to true.
type BlogCreatePayload struct {
	Title     string   `json:"title"`
	Slug      string   `json:"slug"`
	Content   string   `json:"content"`
	Excerpt   string   `json:"excerpt,omitempty"`
	Author    string   `json:"author"`
	Tags      []string `json:"tags"`
	Published *bool    `json:"published,omitempty"`
}

// Post converts the payload into a BlogPost entity, applying defaults.
func (p BlogCreatePayload) Post() BlogPost {
	published := true
	if p.Published != nil {
		published = *p.Published
	}

	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}

	return BlogPost{
		Title:     p.Title,
		Slug:      p.Slug,
		Content:   p.Content,
		Excerpt:   p.Excerpt,
		Author:    p.Author,
		Tags:      tags,
		Published: published,
	}
}

// ContactPayload is the request body for POST /api/contact.
type ContactPayload struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Message converts the payload into a ContactMessage entity.
func (p ContactPayload) ContactMessage() ContactMessage {
	return ContactMessage{
		Name:    p.Name,
		Email:   p.Email,
		Message: p.Message,
	}
}
