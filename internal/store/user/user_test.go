package user_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/neilotoole/slogt"
	"github.com/orgball2608/socialgram-client/internal/api"
	mock_api "github.com/orgball2608/socialgram-client/internal/api/mocks"
	"github.com/orgball2608/socialgram-client/internal/domain"
	"github.com/orgball2608/socialgram-client/internal/store/user"
	apperrors "github.com/orgball2608/socialgram-client/pkg/errors"
	"github.com/orgball2608/socialgram-client/pkg/logger"
	"go.uber.org/mock/gomock"
)

func newStore(t *testing.T, mockAPI api.Users) *user.Store {
	t.Helper()
	return user.New(user.Opts{
		API:    mockAPI,
		Logger: logger.FromSlog(slogt.New(t)),
	})
}

func TestFetchProfileRoutesBySlot(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockAPI := mock_api.NewMockUsers(ctrl)
	mockAPI.EXPECT().Profile(gomock.Any()).Return(&domain.User{ID: "me"}, nil)
	mockAPI.EXPECT().UserByID(gomock.Any(), "other").Return(&domain.User{ID: "other"}, nil)

	store := newStore(t, mockAPI)

	if err := store.FetchProfile(context.Background(), ""); err != nil {
		t.Fatalf("FetchProfile(own): %v", err)
	}
	if err := store.FetchProfile(context.Background(), "other"); err != nil {
		t.Fatalf("FetchProfile(other): %v", err)
	}

	snap := store.Snapshot()
	if snap.CurrentUser == nil || snap.CurrentUser.ID != "me" {
		t.Errorf("CurrentUser = %+v, want id me", snap.CurrentUser)
	}
	if snap.ProfileUser == nil || snap.ProfileUser.ID != "other" {
		t.Errorf("ProfileUser = %+v, want id other", snap.ProfileUser)
	}
}

func TestFollowMergesBothSets(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockAPI := mock_api.NewMockUsers(ctrl)
	mockAPI.EXPECT().Follow(gomock.Any(), "target").Return(&api.FollowResult{
		CurrentUserFollowing: []string{"a", "target"},
		TargetUserFollowers:  []string{"me"},
	}, nil)

	store := newStore(t, mockAPI)
	store.SetCurrentUser(&domain.User{ID: "me", Following: []string{"a"}})

	if err := store.Follow(context.Background(), "target"); err != nil {
		t.Fatalf("Follow: %v", err)
	}

	snap := store.Snapshot()
	if diff := cmp.Diff([]string{"a", "target"}, snap.CurrentUser.Following); diff != "" {
		t.Errorf("Following mismatch (-want +got):\n%s", diff)
	}
}

func TestFollowOnlyTouchesMatchingProfile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		profile       *domain.User
		wantFollowers []string
	}{
		{
			name:          "viewed profile is the target",
			profile:       &domain.User{ID: "target", Followers: []string{}},
			wantFollowers: []string{"me"},
		},
		{
			name:          "viewed profile is someone else",
			profile:       &domain.User{ID: "bystander", Followers: []string{"x"}},
			wantFollowers: []string{"x"},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			mockAPI := mock_api.NewMockUsers(ctrl)
			mockAPI.EXPECT().Profile(gomock.Any()).Return(&domain.User{ID: "me"}, nil).AnyTimes()
			mockAPI.EXPECT().UserByID(gomock.Any(), tc.profile.ID).Return(tc.profile, nil)
			mockAPI.EXPECT().Follow(gomock.Any(), "target").Return(&api.FollowResult{
				CurrentUserFollowing: []string{"target"},
				TargetUserFollowers:  []string{"me"},
			}, nil)

			store := newStore(t, mockAPI)
			store.SetCurrentUser(&domain.User{ID: "me"})
			if err := store.FetchProfile(context.Background(), tc.profile.ID); err != nil {
				t.Fatal(err)
			}

			if err := store.Follow(context.Background(), "target"); err != nil {
				t.Fatalf("Follow: %v", err)
			}

			snap := store.Snapshot()
			if diff := cmp.Diff(tc.wantFollowers, snap.ProfileUser.Followers); diff != "" {
				t.Errorf("profile followers mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestUnfollowMerges(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockAPI := mock_api.NewMockUsers(ctrl)
	mockAPI.EXPECT().Unfollow(gomock.Any(), "target").Return(&api.FollowResult{
		CurrentUserFollowing: []string{},
		TargetUserFollowers:  []string{},
	}, nil)

	store := newStore(t, mockAPI)
	store.SetCurrentUser(&domain.User{ID: "me", Following: []string{"target"}})

	if err := store.Unfollow(context.Background(), "target"); err != nil {
		t.Fatalf("Unfollow: %v", err)
	}

	if snap := store.Snapshot(); len(snap.CurrentUser.Following) != 0 {
		t.Errorf("Following = %v, want empty", snap.CurrentUser.Following)
	}
}

func TestSearchAndClear(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockAPI := mock_api.NewMockUsers(ctrl)
	mockAPI.EXPECT().Search(gomock.Any(), "ja").Return([]domain.User{{ID: "u1"}, {ID: "u2"}}, nil)

	store := newStore(t, mockAPI)

	if err := store.Search(context.Background(), "ja"); err != nil {
		t.Fatalf("Search: %v", err)
	}
	if got := len(store.Snapshot().SearchResults); got != 2 {
		t.Errorf("SearchResults length = %d, want 2", got)
	}

	store.ClearSearchResults()
	if got := store.Snapshot().SearchResults; got != nil {
		t.Errorf("SearchResults after clear = %v, want nil", got)
	}
}

func TestFetchProfileFailureKeepsState(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockAPI := mock_api.NewMockUsers(ctrl)
	mockAPI.EXPECT().UserByID(gomock.Any(), "gone").Return(nil, &apperrors.APIError{
		Kind:    apperrors.KindServer,
		Message: "Request failed: Internal Server Error",
	})

	store := newStore(t, mockAPI)
	store.SetCurrentUser(&domain.User{ID: "me"})

	if err := store.FetchProfile(context.Background(), "gone"); err == nil {
		t.Fatal("FetchProfile returned nil, want error")
	}

	snap := store.Snapshot()
	if snap.Error == "" || snap.Loading {
		t.Errorf("snapshot = %+v, want recorded error and loading off", snap)
	}
	if snap.CurrentUser == nil || snap.CurrentUser.ID != "me" {
		t.Errorf("CurrentUser = %+v, want untouched", snap.CurrentUser)
	}
}
