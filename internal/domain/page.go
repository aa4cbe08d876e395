package domain

// Page mirrors the server's pagination envelope: a zero-based page Number
// and a Last flag marking the final page.
type Page[T any] struct {
	Content []T  `json:"content"`
	Number  int  `json:"number"`
	Last    bool `json:"last"`
}
