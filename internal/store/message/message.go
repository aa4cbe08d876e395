package message

import (
	"context"
	"sync"

	"github.com/orgball2608/socialgram-client/internal/api"
	"github.com/orgball2608/socialgram-client/internal/domain"
	apperrors "github.com/orgball2608/socialgram-client/pkg/errors"
	"github.com/orgball2608/socialgram-client/pkg/logger"
	"go.uber.org/fx"
)

type Snapshot struct {
	Chats       []domain.Chat
	CurrentChat *domain.Chat
	Messages    []domain.Message
	Loading     bool
	Error       string
}

type Opts struct {
	fx.In

	API    api.Chats
	Logger logger.Logger
}

// Store owns the messaging slice: the chat list, the open chat and its
// message history.
type Store struct {
	api    api.Chats
	logger logger.Logger

	mu          sync.Mutex
	chats       []domain.Chat
	currentChat *domain.Chat
	messages    []domain.Message
	loading     bool
	err         string
}

func New(opts Opts) *Store {
	return &Store{
		api:    opts.API,
		logger: opts.Logger,
	}
}

func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		Loading: s.loading,
		Error:   s.err,
	}
	if s.chats != nil {
		snap.Chats = append([]domain.Chat(nil), s.chats...)
	}
	if s.currentChat != nil {
		c := *s.currentChat
		snap.CurrentChat = &c
	}
	if s.messages != nil {
		snap.Messages = append([]domain.Message(nil), s.messages...)
	}
	return snap
}

func (s *Store) FetchChats(ctx context.Context) error {
	s.begin()
	chats, err := s.api.ListChats(ctx)
	if err != nil {
		s.fail(err)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	s.chats = chats
	return nil
}

// CreateChat opens a conversation with a user; the new chat lands at the
// front of the list and becomes current.
func (s *Store) CreateChat(ctx context.Context, userID string) error {
	s.begin()
	chat, err := s.api.CreateChat(ctx, userID)
	if err != nil {
		s.fail(err)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	s.chats = append([]domain.Chat{*chat}, s.chats...)
	c := *chat
	s.currentChat = &c
	return nil
}

func (s *Store) FetchMessages(ctx context.Context, chatID string) error {
	s.begin()
	msgs, err := s.api.Messages(ctx, chatID)
	if err != nil {
		s.fail(err)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	s.messages = msgs
	return nil
}

// Send appends the created message to the open history and refreshes the
// chat's last-message preview. The preview update is strictly by chat id:
// when the chat is not cached yet, nothing is invented locally, the next
// chat fetch picks it up.
func (s *Store) Send(ctx context.Context, chatID string, content string) error {
	s.begin()
	msg, err := s.api.Send(ctx, chatID, content)
	if err != nil {
		s.fail(err)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	s.messages = append(s.messages, *msg)
	for i := range s.chats {
		if s.chats[i].ID == chatID {
			m := *msg
			s.chats[i].LastMessage = &m
		}
	}
	return nil
}

func (s *Store) SetCurrentChat(c *domain.Chat) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c == nil {
		s.currentChat = nil
		return
	}
	chat := *c
	s.currentChat = &chat
}

// ClearMessages empties the open history, e.g. when leaving a chat.
func (s *Store) ClearMessages() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = nil
}

func (s *Store) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = ""
}

func (s *Store) begin() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = true
	s.err = ""
}

func (s *Store) fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	s.err = apperrors.Message(err)
}
