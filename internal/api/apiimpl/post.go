package apiimpl

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/orgball2608/socialgram-client/internal/api"
	"github.com/orgball2608/socialgram-client/internal/domain"
)

func (a *APIImpl) ListPosts(ctx context.Context, page int) (*domain.Page[domain.Post], error) {
	var res domain.Page[domain.Post]
	if err := a.doRoute(ctx, http.MethodGet, "/posts", fmt.Sprintf("/posts?page=%d", page), nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (a *APIImpl) PostByID(ctx context.Context, id string) (*domain.Post, error) {
	var post domain.Post
	if err := a.doRoute(ctx, http.MethodGet, "/posts/{id}", "/posts/"+url.PathEscape(id), nil, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (a *APIImpl) ListUserPosts(ctx context.Context, userID string) ([]domain.Post, error) {
	var posts []domain.Post
	if err := a.doRoute(ctx, http.MethodGet, "/posts/user/{id}", "/posts/user/"+url.PathEscape(userID), nil, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (a *APIImpl) CreatePost(ctx context.Context, req api.CreatePostRequest) (*domain.Post, error) {
	var post domain.Post
	if err := a.do(ctx, http.MethodPost, "/posts", req, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (a *APIImpl) UpdatePost(ctx context.Context, id string, req api.UpdatePostRequest) (*domain.Post, error) {
	var post domain.Post
	if err := a.doRoute(ctx, http.MethodPut, "/posts/{id}", "/posts/"+url.PathEscape(id), req, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (a *APIImpl) DeletePost(ctx context.Context, id string) error {
	return a.doRoute(ctx, http.MethodDelete, "/posts/{id}", "/posts/"+url.PathEscape(id), nil, nil)
}

func (a *APIImpl) Like(ctx context.Context, id string) (*api.LikeResult, error) {
	var res api.LikeResult
	if err := a.doRoute(ctx, http.MethodPost, "/posts/{id}/like", "/posts/"+url.PathEscape(id)+"/like", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (a *APIImpl) Unlike(ctx context.Context, id string) (*api.LikeResult, error) {
	var res api.LikeResult
	if err := a.doRoute(ctx, http.MethodPost, "/posts/{id}/unlike", "/posts/"+url.PathEscape(id)+"/unlike", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (a *APIImpl) Comment(ctx context.Context, id string, text string) (*api.CommentResult, error) {
	body := struct {
		Content string `json:"content"`
	}{Content: text}

	var res api.CommentResult
	if err := a.doRoute(ctx, http.MethodPost, "/posts/{id}/comments", "/posts/"+url.PathEscape(id)+"/comments", body, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (a *APIImpl) Save(ctx context.Context, id string) (*api.SaveResult, error) {
	var res api.SaveResult
	if err := a.doRoute(ctx, http.MethodPost, "/posts/{id}/save", "/posts/"+url.PathEscape(id)+"/save", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (a *APIImpl) Unsave(ctx context.Context, id string) (*api.SaveResult, error) {
	var res api.SaveResult
	if err := a.doRoute(ctx, http.MethodPost, "/posts/{id}/unsave", "/posts/"+url.PathEscape(id)+"/unsave", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
