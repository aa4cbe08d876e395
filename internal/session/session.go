package session

import "errors"

var ErrCannotPersist = errors.New("cannot persist session token")

//go:generate go run go.uber.org/mock/mockgen -source=session.go -destination=mocks/mock.go

// Store holds the single durable session token slot. Only the auth container
// and the API adapter's 401 handler write it.
type Store interface {
	Token() (string, error)
	Save(token string) error
	Clear() error
}
