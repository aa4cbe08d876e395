package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/neilotoole/slogt"
	"github.com/orgball2608/socialgram-client/internal/api"
	mock_api "github.com/orgball2608/socialgram-client/internal/api/mocks"
	"github.com/orgball2608/socialgram-client/internal/domain"
	"github.com/orgball2608/socialgram-client/internal/session"
	mock_session "github.com/orgball2608/socialgram-client/internal/session/mocks"
	"github.com/orgball2608/socialgram-client/internal/store/auth"
	apperrors "github.com/orgball2608/socialgram-client/pkg/errors"
	"github.com/orgball2608/socialgram-client/pkg/logger"
	"go.uber.org/mock/gomock"
)

func validSignIn() api.SignInRequest {
	return api.SignInRequest{Email: "jane@example.com", Password: "secret123"}
}

func newStore(t *testing.T, mockAPI api.Auth, sess session.Store) *auth.Store {
	t.Helper()
	return auth.New(auth.Opts{
		API:     mockAPI,
		Session: sess,
		Logger:  logger.FromSlog(slogt.New(t)),
	})
}

func TestBootWithDurableToken(t *testing.T) {
	t.Parallel()

	sess := session.NewMemoryStore()
	if err := sess.Save("persisted"); err != nil {
		t.Fatal(err)
	}

	store := newStore(t, nil, sess)

	snap := store.Snapshot()
	if !snap.IsAuthenticated {
		t.Error("IsAuthenticated = false at boot with durable token, want true")
	}
	if snap.Token != "persisted" {
		t.Errorf("Token = %q, want %q", snap.Token, "persisted")
	}
}

func TestSignInSuccess(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockAPI := mock_api.NewMockAuth(ctrl)
	mockAPI.EXPECT().SignIn(gomock.Any(), validSignIn()).Return(&api.AuthResponse{
		Token: "tok",
		User:  domain.User{ID: "u1", Email: "jane@example.com"},
	}, nil)

	sess := session.NewMemoryStore()
	store := newStore(t, mockAPI, sess)

	if err := store.SignIn(context.Background(), validSignIn()); err != nil {
		t.Fatalf("SignIn: %v", err)
	}

	snap := store.Snapshot()
	if !snap.IsAuthenticated || snap.Token != "tok" {
		t.Errorf("snapshot = %+v, want authenticated with token %q", snap, "tok")
	}
	if snap.User == nil || snap.User.ID != "u1" {
		t.Errorf("User = %+v, want id u1", snap.User)
	}
	if tok, _ := sess.Token(); tok != "tok" {
		t.Errorf("durable token = %q, want %q", tok, "tok")
	}
}

func TestSignInFailurePurgesToken(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockAPI := mock_api.NewMockAuth(ctrl)
	mockAPI.EXPECT().SignIn(gomock.Any(), gomock.Any()).Return(nil, &apperrors.APIError{
		Kind:    apperrors.KindAuth,
		Message: "Invalid credentials",
	})

	sess := session.NewMemoryStore()
	if err := sess.Save("stale"); err != nil {
		t.Fatal(err)
	}
	store := newStore(t, mockAPI, sess)

	if err := store.SignIn(context.Background(), validSignIn()); err == nil {
		t.Fatal("SignIn returned nil, want error")
	}

	snap := store.Snapshot()
	if snap.IsAuthenticated || snap.Token != "" {
		t.Errorf("snapshot = %+v, want unauthenticated and no token", snap)
	}
	if snap.Error != "Invalid credentials" {
		t.Errorf("Error = %q, want %q", snap.Error, "Invalid credentials")
	}
	if tok, _ := sess.Token(); tok != "" {
		t.Errorf("durable token = %q, want purged", tok)
	}
}

func TestSignInValidationShortCircuits(t *testing.T) {
	t.Parallel()

	// No expectations: a malformed request must never reach the wire.
	ctrl := gomock.NewController(t)
	mockAPI := mock_api.NewMockAuth(ctrl)

	store := newStore(t, mockAPI, session.NewMemoryStore())

	err := store.SignIn(context.Background(), api.SignInRequest{Email: "not-an-email", Password: "x"})
	if err == nil {
		t.Fatal("SignIn with bad email returned nil, want error")
	}

	apiErr, ok := apperrors.AsAPIError(err)
	if !ok || apiErr.Kind != apperrors.KindValidation {
		t.Errorf("error = %v, want APIError with KindValidation", err)
	}
	if apiErr.Field == nil || apiErr.Field.Field != "Email" {
		t.Errorf("Field = %+v, want field error on Email", apiErr.Field)
	}
	if apiErr.Message != "Invalid email address" {
		t.Errorf("Message = %q, want display text, not validator debug output", apiErr.Message)
	}
	if snap := store.Snapshot(); snap.Error != "Invalid email address" {
		t.Errorf("snapshot error = %q, want the same display text", snap.Error)
	}
}

func TestSignUpDuplicateEmailKeepsFieldError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockAPI := mock_api.NewMockAuth(ctrl)
	mockAPI.EXPECT().SignUp(gomock.Any(), gomock.Any()).Return(nil, &apperrors.APIError{
		Kind:    apperrors.KindConflict,
		Message: "Email already in use",
		Field:   &apperrors.FieldError{Field: "email", Message: "Email already in use"},
	})

	store := newStore(t, mockAPI, session.NewMemoryStore())

	err := store.SignUp(context.Background(), api.SignUpRequest{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		Password:  "secret123",
		Gender:    "female",
	})
	if err == nil {
		t.Fatal("SignUp returned nil, want error")
	}

	apiErr, ok := apperrors.AsAPIError(err)
	if !ok || apiErr.Field == nil || apiErr.Field.Field != "email" {
		t.Errorf("error = %v, want conflict pinned to the email field", err)
	}
	if snap := store.Snapshot(); snap.Error != "Email already in use" {
		t.Errorf("snapshot error = %q, want %q", snap.Error, "Email already in use")
	}
}

func TestLogoutIgnoresServerFailure(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockAPI := mock_api.NewMockAuth(ctrl)
	mockAPI.EXPECT().SignIn(gomock.Any(), gomock.Any()).Return(&api.AuthResponse{
		Token: "tok",
		User:  domain.User{ID: "u1"},
	}, nil)
	mockAPI.EXPECT().Logout(gomock.Any()).Return(&apperrors.APIError{
		Kind:    apperrors.KindNetwork,
		Message: "Network error",
	})

	sess := session.NewMemoryStore()
	store := newStore(t, mockAPI, sess)

	if err := store.SignIn(context.Background(), validSignIn()); err != nil {
		t.Fatal(err)
	}
	store.Logout(context.Background())

	snap := store.Snapshot()
	if snap.IsAuthenticated || snap.Token != "" || snap.User != nil {
		t.Errorf("snapshot after logout = %+v, want fully signed out", snap)
	}
	if tok, _ := sess.Token(); tok != "" {
		t.Errorf("durable token after logout = %q, want purged", tok)
	}
}

func TestSignInPersistFailureIsAFailedTransition(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockAPI := mock_api.NewMockAuth(ctrl)
	mockAPI.EXPECT().SignIn(gomock.Any(), gomock.Any()).Return(&api.AuthResponse{
		Token: "tok",
		User:  domain.User{ID: "u1"},
	}, nil)

	sess := mock_session.NewMockStore(ctrl)
	sess.EXPECT().Token().Return("", nil)
	sess.EXPECT().Save("tok").Return(errors.New("disk full"))
	sess.EXPECT().Clear().Return(nil)

	store := newStore(t, mockAPI, sess)

	if err := store.SignIn(context.Background(), validSignIn()); err == nil {
		t.Fatal("SignIn with failing persistence returned nil, want error")
	}

	snap := store.Snapshot()
	if snap.IsAuthenticated || snap.Token != "" {
		t.Errorf("snapshot = %+v, want unauthenticated: memory and disk must agree", snap)
	}
}

func TestInvalidateActsAsUnauthorizedHook(t *testing.T) {
	t.Parallel()

	sess := session.NewMemoryStore()
	if err := sess.Save("tok"); err != nil {
		t.Fatal(err)
	}
	store := newStore(t, nil, sess)

	store.Invalidate()

	snap := store.Snapshot()
	if snap.IsAuthenticated || snap.Token != "" {
		t.Errorf("snapshot after Invalidate = %+v, want signed out", snap)
	}
	if tok, _ := sess.Token(); tok != "" {
		t.Errorf("durable token = %q, want purged", tok)
	}
}
