package model

import "github.com/google/uuid"

// Item is the domain model for a todo entry.
// The id is the sole key for deletion and equality; text is fixed at
// creation, only Done changes afterwards.
type Item struct {
	ID   string `json:"id"`
	Done bool   `json:"done"`
	Text string `json:"text"`
}

// New creates a pending item with a fresh UUID. Any text is accepted,
// including the empty string.
func New(text string) Item {
	return Item{ID: uuid.NewString(), Text: text}
}
