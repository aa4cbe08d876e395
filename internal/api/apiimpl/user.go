package apiimpl

import (
	"context"
	"net/http"
	"net/url"

	"github.com/orgball2608/socialgram-client/internal/api"
	"github.com/orgball2608/socialgram-client/internal/domain"
)

func (a *APIImpl) Profile(ctx context.Context) (*domain.User, error) {
	var user domain.User
	if err := a.do(ctx, http.MethodGet, "/users/profile", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (a *APIImpl) UserByID(ctx context.Context, id string) (*domain.User, error) {
	var user domain.User
	if err := a.doRoute(ctx, http.MethodGet, "/users/{id}", "/users/"+url.PathEscape(id), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (a *APIImpl) UpdateProfile(ctx context.Context, req api.UpdateProfileRequest) (*domain.User, error) {
	var user domain.User
	if err := a.do(ctx, http.MethodPut, "/users/profile", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (a *APIImpl) Follow(ctx context.Context, id string) (*api.FollowResult, error) {
	var res api.FollowResult
	if err := a.doRoute(ctx, http.MethodPost, "/users/{id}/follow", "/users/"+url.PathEscape(id)+"/follow", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (a *APIImpl) Unfollow(ctx context.Context, id string) (*api.FollowResult, error) {
	var res api.FollowResult
	if err := a.doRoute(ctx, http.MethodPost, "/users/{id}/unfollow", "/users/"+url.PathEscape(id)+"/unfollow", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (a *APIImpl) Search(ctx context.Context, query string) ([]domain.User, error) {
	var users []domain.User
	path := "/users/search?q=" + url.QueryEscape(query)
	if err := a.doRoute(ctx, http.MethodGet, "/users/search", path, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}
