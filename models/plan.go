package models

// Plan describes one pricing tier shown on the marketing site.
// Plans are static fixtures served from memory; they are never persisted.
type Plan struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Price       string   `json:"price"`
	Features    []string `json:"features"`
	Highlighted bool     `json:"highlighted"`
}
