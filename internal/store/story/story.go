package story

import (
	"context"
	"io"
	"strings"
	"sync"

	"github.com/orgball2608/socialgram-client/internal/api"
	"github.com/orgball2608/socialgram-client/internal/domain"
	apperrors "github.com/orgball2608/socialgram-client/pkg/errors"
	"github.com/orgball2608/socialgram-client/pkg/logger"
	"go.uber.org/fx"
)

type Snapshot struct {
	MyStories        []domain.Story
	FollowingStories []domain.Story
	UserIDs          []string
	CurrentUserID    string
	CurrentStory     *domain.Story
	Loading          bool
	Error            string
}

// CreateInput describes a new story. Media is uploaded first when present.
type CreateInput struct {
	Caption          string
	Media            io.Reader
	MediaName        string
	MediaContentType string
}

type Opts struct {
	fx.In

	API    api.Stories
	Files  api.Files
	Logger logger.Logger
}

// Store owns the story slice and the viewing cursor. Stories from followed
// users are grouped by author in first-appearance order; the cursor walks
// story by story within an author and falls through to the next author's
// first story. Both ends are terminal: stepping past them is a no-op.
type Store struct {
	api    api.Stories
	files  api.Files
	logger logger.Logger

	mu        sync.Mutex
	myStories []domain.Story
	following []domain.Story
	userIDs   []string
	userIdx   int
	storyIdx  int
	active    bool
	loading   bool
	err       string
}

func New(opts Opts) *Store {
	return &Store{
		api:    opts.API,
		files:  opts.Files,
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
	if s.myStories != nil {
		snap.MyStories = append([]domain.Story(nil), s.myStories...)
	}
	if s.following != nil {
		snap.FollowingStories = append([]domain.Story(nil), s.following...)
	}
	if s.userIDs != nil {
		snap.UserIDs = append([]string(nil), s.userIDs...)
	}
	if s.active {
		snap.CurrentUserID = s.userIDs[s.userIdx]
		if st := s.currentLocked(); st != nil {
			story := *st
			snap.CurrentStory = &story
		}
	}
	return snap
}

func (s *Store) FetchMine(ctx context.Context) error {
	s.begin()
	stories, err := s.api.MyStories(ctx)
	if err != nil {
		s.fail(err)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	s.myStories = stories
	return nil
}

// FetchFollowing loads the stories of followed users and resets the cursor
// to the first story of the first author.
func (s *Store) FetchFollowing(ctx context.Context) error {
	s.begin()
	stories, err := s.api.FollowingStories(ctx)
	if err != nil {
		s.fail(err)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	s.setGroupLocked(stories)
	return nil
}

// SetGroup replaces the followed-users story group directly, resetting the
// cursor the same way a fetch does.
func (s *Store) SetGroup(stories []domain.Story) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setGroupLocked(stories)
}

func (s *Store) Create(ctx context.Context, in CreateInput) error {
	s.begin()

	req := api.CreateStoryRequest{
		Caption:   in.Caption,
		MediaType: domain.MediaTypeNone,
	}
	if in.Media != nil {
		mediaURL, err := s.files.Upload(ctx, "stories", in.MediaName, in.MediaContentType, in.Media)
		if err != nil {
			s.fail(err)
			return err
		}
		req.MediaURL = mediaURL
		if strings.HasPrefix(in.MediaContentType, "image/") {
			req.MediaType = domain.MediaTypeImage
		} else {
			req.MediaType = domain.MediaTypeVideo
		}
	}

	story, err := s.api.CreateStory(ctx, req)
	if err != nil {
		s.fail(err)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	s.myStories = append([]domain.Story{*story}, s.myStories...)
	return nil
}

// Current returns the story under the cursor, or nil when no group is
// loaded.
func (s *Store) Current() *domain.Story {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.active {
		return nil
	}
	if st := s.currentLocked(); st != nil {
		story := *st
		return &story
	}
	return nil
}

// Advance moves the cursor one story forward, falling through to the next
// author when the current one is exhausted. It reports whether the cursor
// moved; at the very last story it stays put and returns false.
func (s *Store) Advance() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.active {
		return false
	}
	if s.storyIdx+1 < len(s.storiesOfLocked(s.userIDs[s.userIdx])) {
		s.storyIdx++
		return true
	}
	if s.userIdx+1 < len(s.userIDs) {
		s.userIdx++
		s.storyIdx = 0
		return true
	}
	return false
}

// Retreat moves the cursor one story back, falling through to the previous
// author's last story. At the very first story it stays put and returns
// false.
func (s *Store) Retreat() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.active {
		return false
	}
	if s.storyIdx > 0 {
		s.storyIdx--
		return true
	}
	if s.userIdx > 0 {
		s.userIdx--
		s.storyIdx = len(s.storiesOfLocked(s.userIDs[s.userIdx])) - 1
		return true
	}
	return false
}

// SelectUser jumps the cursor to the first story of the given author. It
// reports whether the author exists in the loaded group.
func (s *Store) SelectUser(userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, id := range s.userIDs {
		if id == userID {
			s.userIdx = i
			s.storyIdx = 0
			s.active = true
			return true
		}
	}
	return false
}

func (s *Store) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = ""
}

func (s *Store) setGroupLocked(stories []domain.Story) {
	s.following = stories
	s.userIDs = distinctUserIDs(stories)
	s.userIdx = 0
	s.storyIdx = 0
	s.active = len(s.userIDs) > 0
}

func (s *Store) currentLocked() *domain.Story {
	stories := s.storiesOfLocked(s.userIDs[s.userIdx])
	if s.storyIdx >= len(stories) {
		return nil
	}
	return &stories[s.storyIdx]
}

func (s *Store) storiesOfLocked(userID string) []domain.Story {
	var out []domain.Story
	for _, st := range s.following {
		if st.UserID == userID {
			out = append(out, st)
		}
	}
	return out
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

// distinctUserIDs keeps each author once, in the order they first appear.
// That order is the traversal order of the viewer.
func distinctUserIDs(stories []domain.Story) []string {
	var ids []string
	seen := make(map[string]struct{}, len(stories))
	for _, st := range stories {
		if _, ok := seen[st.UserID]; ok {
			continue
		}
		seen[st.UserID] = struct{}{}
		ids = append(ids, st.UserID)
	}
	return ids
}
