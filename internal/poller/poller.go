package poller

import (
	"context"
)

//go:generate mockgen -source=poller.go -destination=mocks/mock.go -package=mocks

// Client keeps the local caches fresh by periodically re-fetching chats and
// stories in the background.
type Client interface {
	Schedule(ctx context.Context) error
}
