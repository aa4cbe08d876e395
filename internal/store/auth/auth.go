package auth

import (
	"context"
	"sync"

	"github.com/orgball2608/socialgram-client/internal/api"
	"github.com/orgball2608/socialgram-client/internal/domain"
	"github.com/orgball2608/socialgram-client/internal/session"
	"github.com/orgball2608/socialgram-client/internal/validator"
	apperrors "github.com/orgball2608/socialgram-client/pkg/errors"
	"github.com/orgball2608/socialgram-client/pkg/logger"
	"go.uber.org/fx"
)

// Snapshot is the read-only view of the auth slice.
type Snapshot struct {
	User            *domain.User
	Token           string
	Loading         bool
	Error           string
	IsAuthenticated bool
}

type Opts struct {
	fx.In

	API     api.Auth
	Session session.Store
	Logger  logger.Logger
}

// Store owns the auth slice. Invariant: IsAuthenticated is true iff a
// non-empty token is held both here and in the durable session store.
type Store struct {
	api     api.Auth
	session session.Store
	logger  logger.Logger
	val     *validator.Validator

	mu            sync.Mutex
	user          *domain.User
	token         string
	loading       bool
	err           string
	authenticated bool
}

func New(opts Opts) *Store {
	s := &Store{
		api:     opts.API,
		session: opts.Session,
		logger:  opts.Logger,
		val:     validator.New(),
	}

	// Boot: a durable token means the previous session is still assumed
	// valid until the server says otherwise.
	token, err := opts.Session.Token()
	if err != nil {
		opts.Logger.Warn("Failed to read session token at boot", "error", err)
	}
	s.token = token
	s.authenticated = token != ""

	return s
}

func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		Token:           s.token,
		Loading:         s.loading,
		Error:           s.err,
		IsAuthenticated: s.authenticated,
	}
	if s.user != nil {
		u := *s.user
		snap.User = &u
	}
	return snap
}

func (s *Store) SignIn(ctx context.Context, req api.SignInRequest) error {
	if err := s.validate(req); err != nil {
		return err
	}

	s.begin()
	res, err := s.api.SignIn(ctx, req)
	if err != nil {
		s.failAuth(err)
		return err
	}
	return s.succeedAuth(res)
}

func (s *Store) SignUp(ctx context.Context, req api.SignUpRequest) error {
	if err := s.validate(req); err != nil {
		return err
	}

	s.begin()
	res, err := s.api.SignUp(ctx, req)
	if err != nil {
		s.failAuth(err)
		return err
	}
	return s.succeedAuth(res)
}

// Logout purges the session locally no matter what the server says: a
// network failure here is intentionally ignored so signing out always works.
func (s *Store) Logout(ctx context.Context) {
	if err := s.api.Logout(ctx); err != nil {
		s.logger.Warn("Logout request failed, purging session anyway", "error", err)
	}
	s.Invalidate()
}

// Invalidate drops the in-memory session and the durable token. It is also
// the adapter's 401 hook.
func (s *Store) Invalidate() {
	if err := s.session.Clear(); err != nil {
		s.logger.Error("Failed to clear session token", "error", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	s.token = ""
	s.loading = false
	s.err = ""
	s.authenticated = false
}

func (s *Store) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = ""
}

// validate rejects malformed credentials before anything goes on the wire.
func (s *Store) validate(req any) error {
	errs := s.val.ValidateStruct(req)
	if len(errs) == 0 {
		return nil
	}

	apiErr := &apperrors.APIError{
		Kind:    apperrors.KindValidation,
		Message: errs[0].Message,
		Field:   &apperrors.FieldError{Field: errs[0].Field, Message: errs[0].Message},
	}

	s.mu.Lock()
	s.err = apiErr.Message
	s.mu.Unlock()
	return apiErr
}

func (s *Store) begin() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = true
	s.err = ""
}

// failAuth records the error and purges any held token: a failed login or
// registration never leaves a stale session behind.
func (s *Store) failAuth(err error) {
	if cerr := s.session.Clear(); cerr != nil {
		s.logger.Error("Failed to clear session token", "error", cerr)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	s.err = apperrors.Message(err)
	s.token = ""
	s.authenticated = false
}

func (s *Store) succeedAuth(res *api.AuthResponse) error {
	if err := s.session.Save(res.Token); err != nil {
		// The durable slot and the in-memory flag must agree, so a
		// persist failure is a failed transition.
		s.logger.Error("Failed to persist session token", "error", err)
		s.failAuth(err)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	user := res.User
	s.user = &user
	s.token = res.Token
	s.loading = false
	s.err = ""
	s.authenticated = true
	return nil
}
