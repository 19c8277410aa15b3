package models

import "time"

// DefaultDescription replaces a missing repository description
const DefaultDescription = "No description available"

// RemoteRepository is a repository record as returned by the GitHub REST API.
// Only the fields the gallery consumes are decoded.
type RemoteRepository struct {
	ID              int64    `json:"id"`
	Name            string   `json:"name"`
	Description     *string  `json:"description"`
	Language        *string  `json:"language"`
	StargazersCount int      `json:"stargazers_count"`
	ForksCount      int      `json:"forks_count"`
	HTMLURL         string   `json:"html_url"`
	Homepage        *string  `json:"homepage"`
	Topics          []string `json:"topics,omitempty"`
	UpdatedAt       string   `json:"updated_at"`
	Fork            bool     `json:"fork"`
}

// Project represents a portfolio project built from a repository
type Project struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Language    *string  `json:"language"`
	Stars       int      `json:"stars"`
	Forks       int      `json:"forks"`
	URL         string   `json:"url"`
	Homepage    *string  `json:"homepage"`
	Topics      []string `json:"topics"`
	Updated     string   `json:"updated"`
}

// Gallery is the outcome of one successful load
type Gallery struct {
	Account  string    `json:"account"`
	Projects []Project `json:"projects"`
	LoadedAt time.Time `json:"loaded_at"`
}

// Card is a project ready for display
type Card struct {
	Project
	DisplayName    string   `json:"display_name"`
	Category       Category `json:"category"`
	DemoURL        string   `json:"demo_url,omitempty"`
	Tags           []string `json:"tags"`
	AnimationDelay string   `json:"animation_delay"`
	Hidden         bool     `json:"-"`
}
