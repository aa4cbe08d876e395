package post

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
	Posts       []domain.Post
	UserPosts   []domain.Post
	CurrentPost *domain.Post
	CurrentPage int
	HasMore     bool
	Loading     bool
	Error       string
}

// CreateInput describes a new post. Media is optional; when present it is
// uploaded first and the returned reference goes into the creation payload.
type CreateInput struct {
	Caption          string
	Media            io.Reader
	MediaName        string
	MediaContentType string
}

type Opts struct {
	fx.In

	API    api.Posts
	Files  api.Files
	Logger logger.Logger
}

// Store owns the post slice. A post can appear in up to three places at
// once (global feed, per-user feed, current-post slot); every mutating
// merge is applied to all of them, keyed by id.
type Store struct {
	api    api.Posts
	files  api.Files
	logger logger.Logger

	mu          sync.Mutex
	posts       []domain.Post
	userPosts   []domain.Post
	currentPost *domain.Post
	currentPage int
	hasMore     bool
	loading     bool
	err         string
}

func New(opts Opts) *Store {
	return &Store{
		api:     opts.API,
		files:   opts.Files,
		logger:  opts.Logger,
		hasMore: true,
	}
}

func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		CurrentPage: s.currentPage,
		HasMore:     s.hasMore,
		Loading:     s.loading,
		Error:       s.err,
	}
	if s.posts != nil {
		snap.Posts = append([]domain.Post(nil), s.posts...)
	}
	if s.userPosts != nil {
		snap.UserPosts = append([]domain.Post(nil), s.userPosts...)
	}
	if s.currentPost != nil {
		p := *s.currentPost
		snap.CurrentPost = &p
	}
	return snap
}

// Fetch loads one page of the global feed. Page 0 replaces the feed, any
// later page appends; HasMore mirrors the server's "last" flag negated.
func (s *Store) Fetch(ctx context.Context, page int) error {
	s.begin()
	res, err := s.api.ListPosts(ctx, page)
	if err != nil {
		s.fail(err)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if page == 0 {
		s.posts = res.Content
	} else {
		s.posts = append(s.posts, res.Content...)
	}
	s.currentPage = res.Number
	s.hasMore = !res.Last
	return nil
}

func (s *Store) FetchByUser(ctx context.Context, userID string) error {
	s.begin()
	posts, err := s.api.ListUserPosts(ctx, userID)
	if err != nil {
		s.fail(err)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	s.userPosts = posts
	return nil
}

// FetchOne loads a single post into the current-post slot.
func (s *Store) FetchOne(ctx context.Context, id string) error {
	s.begin()
	post, err := s.api.PostByID(ctx, id)
	if err != nil {
		s.fail(err)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	s.currentPost = post
	return nil
}

func (s *Store) Create(ctx context.Context, in CreateInput) error {
	s.begin()

	req := api.CreatePostRequest{
		Caption:   in.Caption,
		MediaType: domain.MediaTypeNone,
	}
	if in.Media != nil {
		mediaURL, err := s.files.Upload(ctx, "posts", in.MediaName, in.MediaContentType, in.Media)
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

	post, err := s.api.CreatePost(ctx, req)
	if err != nil {
		s.fail(err)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	s.posts = append([]domain.Post{*post}, s.posts...)
	return nil
}

func (s *Store) Update(ctx context.Context, id string, req api.UpdatePostRequest) error {
	s.begin()
	updated, err := s.api.UpdatePost(ctx, id, req)
	if err != nil {
		s.fail(err)
		return err
	}

	s.succeedMerge(id, func(p *domain.Post) {
		*p = *updated
	})
	return nil
}

// Delete removes the post from every list it appears in; the current-post
// slot empties when it held the deleted id.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.begin()
	if err := s.api.DeletePost(ctx, id); err != nil {
		s.fail(err)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	s.posts = removeByID(s.posts, id)
	s.userPosts = removeByID(s.userPosts, id)
	if s.currentPost != nil && s.currentPost.ID == id {
		s.currentPost = nil
	}
	return nil
}

func (s *Store) Like(ctx context.Context, id string) error {
	s.begin()
	res, err := s.api.Like(ctx, id)
	if err != nil {
		s.fail(err)
		return err
	}
	s.applyLikeResult(id, res)
	return nil
}

func (s *Store) Unlike(ctx context.Context, id string) error {
	s.begin()
	res, err := s.api.Unlike(ctx, id)
	if err != nil {
		s.fail(err)
		return err
	}
	s.applyLikeResult(id, res)
	return nil
}

func (s *Store) Comment(ctx context.Context, id string, text string) error {
	s.begin()
	res, err := s.api.Comment(ctx, id, text)
	if err != nil {
		s.fail(err)
		return err
	}

	s.succeedMerge(id, func(p *domain.Post) {
		p.Comments = res.Comments
	})
	return nil
}

func (s *Store) Save(ctx context.Context, id string) error {
	s.begin()
	res, err := s.api.Save(ctx, id)
	if err != nil {
		s.fail(err)
		return err
	}
	s.applySaveResult(id, res)
	return nil
}

func (s *Store) Unsave(ctx context.Context, id string) error {
	s.begin()
	res, err := s.api.Unsave(ctx, id)
	if err != nil {
		s.fail(err)
		return err
	}
	s.applySaveResult(id, res)
	return nil
}

func (s *Store) SetCurrentPost(p *domain.Post) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p == nil {
		s.currentPost = nil
		return
	}
	post := *p
	s.currentPost = &post
}

func (s *Store) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = ""
}

func (s *Store) applyLikeResult(id string, res *api.LikeResult) {
	s.succeedMerge(id, func(p *domain.Post) {
		p.Likes = res.Likes
		p.IsLiked = res.IsLiked
	})
}

func (s *Store) applySaveResult(id string, res *api.SaveResult) {
	s.succeedMerge(id, func(p *domain.Post) {
		p.IsSaved = res.IsSaved
	})
}

// succeedMerge finishes a mutating operation by applying fn to the post
// with the given id in the feed, the user feed and the current-post slot.
// Missing any of the three would let the lists drift apart.
func (s *Store) succeedMerge(id string, fn func(*domain.Post)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	updateByID(s.posts, id, fn)
	updateByID(s.userPosts, id, fn)
	if s.currentPost != nil && s.currentPost.ID == id {
		fn(s.currentPost)
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

func updateByID(posts []domain.Post, id string, fn func(*domain.Post)) {
	for i := range posts {
		if posts[i].ID == id {
			fn(&posts[i])
		}
	}
}

func removeByID(posts []domain.Post, id string) []domain.Post {
	out := posts[:0]
	for _, p := range posts {
		if p.ID != id {
			out = append(out, p)
		}
	}
	return out
}
