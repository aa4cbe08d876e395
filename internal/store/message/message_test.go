package message_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/neilotoole/slogt"
	"github.com/orgball2608/socialgram-client/internal/api"
	mock_api "github.com/orgball2608/socialgram-client/internal/api/mocks"
	"github.com/orgball2608/socialgram-client/internal/domain"
	"github.com/orgball2608/socialgram-client/internal/store/message"
	"github.com/orgball2608/socialgram-client/pkg/logger"
	"go.uber.org/mock/gomock"
)

func newStore(t *testing.T, mockAPI api.Chats) *message.Store {
	t.Helper()
	return message.New(message.Opts{
		API:    mockAPI,
		Logger: logger.FromSlog(slogt.New(t)),
	})
}

func TestFetchChatsAndMessages(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockAPI := mock_api.NewMockChats(ctrl)
	mockAPI.EXPECT().ListChats(gomock.Any()).Return([]domain.Chat{{ID: "c1"}, {ID: "c2"}}, nil)
	mockAPI.EXPECT().Messages(gomock.Any(), "c1").Return([]domain.Message{{ID: "m1", ChatID: "c1"}}, nil)

	store := newStore(t, mockAPI)
	ctx := context.Background()

	if err := store.FetchChats(ctx); err != nil {
		t.Fatal(err)
	}
	if err := store.FetchMessages(ctx, "c1"); err != nil {
		t.Fatal(err)
	}

	snap := store.Snapshot()
	if len(snap.Chats) != 2 {
		t.Errorf("Chats length = %d, want 2", len(snap.Chats))
	}
	if len(snap.Messages) != 1 || snap.Messages[0].ID != "m1" {
		t.Errorf("Messages = %+v, want m1", snap.Messages)
	}
}

func TestSendAppendsAndUpdatesPreview(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockAPI := mock_api.NewMockChats(ctrl)
	mockAPI.EXPECT().ListChats(gomock.Any()).Return([]domain.Chat{{ID: "c1"}, {ID: "c2"}}, nil)
	mockAPI.EXPECT().Messages(gomock.Any(), "c1").Return([]domain.Message{{ID: "m1", ChatID: "c1"}}, nil)
	mockAPI.EXPECT().Send(gomock.Any(), "c1", "hey").Return(&domain.Message{ID: "m2", ChatID: "c1", Content: "hey"}, nil)

	store := newStore(t, mockAPI)
	ctx := context.Background()

	if err := store.FetchChats(ctx); err != nil {
		t.Fatal(err)
	}
	if err := store.FetchMessages(ctx, "c1"); err != nil {
		t.Fatal(err)
	}
	if err := store.Send(ctx, "c1", "hey"); err != nil {
		t.Fatalf("Send: %v", err)
	}

	snap := store.Snapshot()
	wantMsgs := []domain.Message{
		{ID: "m1", ChatID: "c1"},
		{ID: "m2", ChatID: "c1", Content: "hey"},
	}
	if diff := cmp.Diff(wantMsgs, snap.Messages); diff != "" {
		t.Errorf("messages (-want +got):\n%s", diff)
	}

	if snap.Chats[0].LastMessage == nil || snap.Chats[0].LastMessage.ID != "m2" {
		t.Errorf("chat c1 LastMessage = %+v, want m2", snap.Chats[0].LastMessage)
	}
	if snap.Chats[1].LastMessage != nil {
		t.Errorf("chat c2 LastMessage = %+v, want untouched", snap.Chats[1].LastMessage)
	}
}

func TestSendToUncachedChatInventsNothing(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockAPI := mock_api.NewMockChats(ctrl)
	mockAPI.EXPECT().Send(gomock.Any(), "ghost", "hi").Return(&domain.Message{ID: "m1", ChatID: "ghost", Content: "hi"}, nil)

	store := newStore(t, mockAPI)

	if err := store.Send(context.Background(), "ghost", "hi"); err != nil {
		t.Fatalf("Send: %v", err)
	}

	snap := store.Snapshot()
	if len(snap.Chats) != 0 {
		t.Errorf("Chats = %+v, want no synthetic chat entry", snap.Chats)
	}
	if len(snap.Messages) != 1 {
		t.Errorf("Messages length = %d, want the sent message appended", len(snap.Messages))
	}
}

func TestCreateChatPrependsAndSelects(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockAPI := mock_api.NewMockChats(ctrl)
	mockAPI.EXPECT().ListChats(gomock.Any()).Return([]domain.Chat{{ID: "c1"}}, nil)
	mockAPI.EXPECT().CreateChat(gomock.Any(), "friend").Return(&domain.Chat{ID: "c2", Participants: []string{"me", "friend"}}, nil)

	store := newStore(t, mockAPI)
	ctx := context.Background()

	if err := store.FetchChats(ctx); err != nil {
		t.Fatal(err)
	}
	if err := store.CreateChat(ctx, "friend"); err != nil {
		t.Fatalf("CreateChat: %v", err)
	}

	snap := store.Snapshot()
	if len(snap.Chats) != 2 || snap.Chats[0].ID != "c2" {
		t.Errorf("Chats = %+v, want new chat first", snap.Chats)
	}
	if snap.CurrentChat == nil || snap.CurrentChat.ID != "c2" {
		t.Errorf("CurrentChat = %+v, want c2", snap.CurrentChat)
	}
}

func TestClearMessages(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockAPI := mock_api.NewMockChats(ctrl)
	mockAPI.EXPECT().Messages(gomock.Any(), "c1").Return([]domain.Message{{ID: "m1"}}, nil)

	store := newStore(t, mockAPI)

	if err := store.FetchMessages(context.Background(), "c1"); err != nil {
		t.Fatal(err)
	}
	store.ClearMessages()

	if got := store.Snapshot().Messages; got != nil {
		t.Errorf("Messages after clear = %v, want nil", got)
	}
}
