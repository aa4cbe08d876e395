package domain

import "time"

// A Story is one ephemeral media item. Stories belonging to one user form a
// bounded ordered sequence; expiry is a server concern and is not enforced
// here.
type Story struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	MediaURL  string    `json:"mediaUrl"`
	MediaType MediaType `json:"mediaType"`
	Caption   string    `json:"caption"`
	Timestamp time.Time `json:"timestamp"`
}
