package model

// Bookmark represents a saved URL with its title, description and rating.
type Bookmark struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description"`
	Rating      int    `json:"rating"`
}

// ErrorBody is the JSON envelope for user-facing errors.
type ErrorBody struct {
	Error ErrorMessage `json:"error"`
}

// ErrorMessage carries the message shown to the client.
type ErrorMessage struct {
	Message string `json:"message"`
}

// UnauthorizedBody is returned by the bearer gate.
type UnauthorizedBody struct {
	Error string `json:"error"`
}
