package domain

import (
	"time"

	"github.com/orgball2608/socialgram-client/pkg/formatter"
)

type MediaType string

const (
	MediaTypeImage MediaType = "IMAGE"
	MediaTypeVideo MediaType = "VIDEO"
	MediaTypeNone  MediaType = "NONE"
)

type Post struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	MediaURL  string    `json:"mediaUrl"`
	MediaType MediaType `json:"mediaType"`
	Caption   string    `json:"caption"`
	Likes     int       `json:"likes"`
	IsLiked   bool      `json:"isLiked"`
	Comments  []Comment `json:"comments"`
	CreatedAt time.Time `json:"createdAt"`
	IsSaved   bool      `json:"isSaved"`
}

// Comments are append-only from the client's perspective; the server owns
// ordering.
type Comment struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// LikesLabel formats the like count for display, e.g. "1,234".
func (p *Post) LikesLabel() string {
	return formatter.FormatNumber(p.Likes)
}

// PostedAgo renders the elapsed time since the post was created.
func (p *Post) PostedAgo(now time.Time) string {
	return formatter.TimeAgo(p.CreatedAt, now)
}
