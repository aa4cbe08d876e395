package user

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
	CurrentUser   *domain.User
	ProfileUser   *domain.User
	SearchResults []domain.User
	Loading       bool
	Error         string
}

type Opts struct {
	fx.In

	API    api.Users
	Logger logger.Logger
}

// Store owns the user slice: the signed-in user, the profile currently
// being viewed, and search results.
type Store struct {
	api    api.Users
	logger logger.Logger

	mu            sync.Mutex
	currentUser   *domain.User
	profileUser   *domain.User
	searchResults []domain.User
	loading       bool
	err           string
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
	if s.currentUser != nil {
		u := *s.currentUser
		snap.CurrentUser = &u
	}
	if s.profileUser != nil {
		u := *s.profileUser
		snap.ProfileUser = &u
	}
	if s.searchResults != nil {
		snap.SearchResults = append([]domain.User(nil), s.searchResults...)
	}
	return snap
}

// FetchProfile loads a profile. An empty userID means the signed-in user's
// own profile; any other id lands in the viewed-profile slot.
func (s *Store) FetchProfile(ctx context.Context, userID string) error {
	s.begin()

	var (
		user *domain.User
		err  error
	)
	if userID == "" {
		user, err = s.api.Profile(ctx)
	} else {
		user, err = s.api.UserByID(ctx, userID)
	}
	if err != nil {
		s.fail(err)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if userID == "" {
		s.currentUser = user
	} else {
		s.profileUser = user
	}
	return nil
}

func (s *Store) UpdateProfile(ctx context.Context, req api.UpdateProfileRequest) error {
	s.begin()
	user, err := s.api.UpdateProfile(ctx, req)
	if err != nil {
		s.fail(err)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	s.currentUser = user
	return nil
}

// Follow applies the response's authoritative sets: the signed-in user's
// following list always, the viewed profile's followers only when it is the
// target. No other cached user representation is touched.
func (s *Store) Follow(ctx context.Context, targetID string) error {
	s.begin()
	res, err := s.api.Follow(ctx, targetID)
	if err != nil {
		s.fail(err)
		return err
	}
	s.applyFollowResult(targetID, res)
	return nil
}

func (s *Store) Unfollow(ctx context.Context, targetID string) error {
	s.begin()
	res, err := s.api.Unfollow(ctx, targetID)
	if err != nil {
		s.fail(err)
		return err
	}
	s.applyFollowResult(targetID, res)
	return nil
}

func (s *Store) Search(ctx context.Context, query string) error {
	s.begin()
	users, err := s.api.Search(ctx, query)
	if err != nil {
		s.fail(err)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	s.searchResults = users
	return nil
}

func (s *Store) ClearSearchResults() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchResults = nil
}

// SetCurrentUser seeds the signed-in user slot, e.g. from a login response.
func (s *Store) SetCurrentUser(u *domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u == nil {
		s.currentUser = nil
		return
	}
	user := *u
	s.currentUser = &user
}

func (s *Store) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = ""
}

func (s *Store) applyFollowResult(targetID string, res *api.FollowResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if s.currentUser != nil {
		s.currentUser.Following = res.CurrentUserFollowing
	}
	if s.profileUser != nil && s.profileUser.ID == targetID {
		s.profileUser.Followers = res.TargetUserFollowers
	}
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
