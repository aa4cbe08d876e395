package apiimpl

import (
	"context"
	"net/http"
	"net/url"

	"github.com/orgball2608/socialgram-client/internal/domain"
)

func (a *APIImpl) ListChats(ctx context.Context) ([]domain.Chat, error) {
	var chats []domain.Chat
	if err := a.do(ctx, http.MethodGet, "/chat", nil, &chats); err != nil {
		return nil, err
	}
	return chats, nil
}

func (a *APIImpl) CreateChat(ctx context.Context, userID string) (*domain.Chat, error) {
	var chat domain.Chat
	if err := a.doRoute(ctx, http.MethodPost, "/chat/create/{userId}", "/chat/create/"+url.PathEscape(userID), nil, &chat); err != nil {
		return nil, err
	}
	return &chat, nil
}

func (a *APIImpl) Messages(ctx context.Context, chatID string) ([]domain.Message, error) {
	var messages []domain.Message
	if err := a.doRoute(ctx, http.MethodGet, "/message/{chatId}", "/message/"+url.PathEscape(chatID), nil, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

func (a *APIImpl) Send(ctx context.Context, chatID string, content string) (*domain.Message, error) {
	body := struct {
		ChatID  string `json:"chatId"`
		Content string `json:"content"`
	}{ChatID: chatID, Content: content}

	var msg domain.Message
	if err := a.do(ctx, http.MethodPost, "/message/create", body, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
