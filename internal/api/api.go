package api

import (
	"context"
	"io"

	"github.com/orgball2608/socialgram-client/internal/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=api.go -destination=mocks/mock.go

type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type SignUpRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	Gender    string `json:"gender" validate:"required"`
}

type AuthResponse struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

type UpdateProfileRequest struct {
	FirstName  string `json:"firstName,omitempty"`
	LastName   string `json:"lastName,omitempty"`
	Bio        string `json:"bio,omitempty"`
	ProfilePic string `json:"profilePic,omitempty"`
}

// FollowResult carries the two authoritative sets a follow or unfollow
// response updates.
type FollowResult struct {
	CurrentUserFollowing []string `json:"currentUserFollowing"`
	TargetUserFollowers  []string `json:"targetUserFollowers"`
}

type CreatePostRequest struct {
	Caption   string           `json:"caption"`
	MediaURL  string           `json:"mediaUrl,omitempty"`
	MediaType domain.MediaType `json:"mediaType"`
}

type UpdatePostRequest struct {
	Caption string `json:"caption"`
}

type LikeResult struct {
	Likes   int  `json:"likes"`
	IsLiked bool `json:"isLiked"`
}

type SaveResult struct {
	IsSaved bool `json:"isSaved"`
}

type CommentResult struct {
	Comments []domain.Comment `json:"comments"`
}

type CreateStoryRequest struct {
	MediaURL  string           `json:"mediaUrl,omitempty"`
	MediaType domain.MediaType `json:"mediaType"`
	Caption   string           `json:"caption"`
}

type Auth interface {
	SignIn(ctx context.Context, req SignInRequest) (*AuthResponse, error)
	SignUp(ctx context.Context, req SignUpRequest) (*AuthResponse, error)
	Logout(ctx context.Context) error
}

type Users interface {
	Profile(ctx context.Context) (*domain.User, error)
	UserByID(ctx context.Context, id string) (*domain.User, error)
	UpdateProfile(ctx context.Context, req UpdateProfileRequest) (*domain.User, error)
	Follow(ctx context.Context, id string) (*FollowResult, error)
	Unfollow(ctx context.Context, id string) (*FollowResult, error)
	Search(ctx context.Context, query string) ([]domain.User, error)
}

type Posts interface {
	ListPosts(ctx context.Context, page int) (*domain.Page[domain.Post], error)
	PostByID(ctx context.Context, id string) (*domain.Post, error)
	ListUserPosts(ctx context.Context, userID string) ([]domain.Post, error)
	CreatePost(ctx context.Context, req CreatePostRequest) (*domain.Post, error)
	UpdatePost(ctx context.Context, id string, req UpdatePostRequest) (*domain.Post, error)
	DeletePost(ctx context.Context, id string) error
	Like(ctx context.Context, id string) (*LikeResult, error)
	Unlike(ctx context.Context, id string) (*LikeResult, error)
	Comment(ctx context.Context, id string, text string) (*CommentResult, error)
	Save(ctx context.Context, id string) (*SaveResult, error)
	Unsave(ctx context.Context, id string) (*SaveResult, error)
}

type Chats interface {
	ListChats(ctx context.Context) ([]domain.Chat, error)
	CreateChat(ctx context.Context, userID string) (*domain.Chat, error)
	Messages(ctx context.Context, chatID string) ([]domain.Message, error)
	Send(ctx context.Context, chatID string, content string) (*domain.Message, error)
}

type Stories interface {
	MyStories(ctx context.Context) ([]domain.Story, error)
	FollowingStories(ctx context.Context) ([]domain.Story, error)
	CreateStory(ctx context.Context, req CreateStoryRequest) (*domain.Story, error)
}

type Files interface {
	Upload(ctx context.Context, kind string, filename string, contentType string, r io.Reader) (string, error)
}
