package apiimpl

import (
	"context"
	"net/http"

	"github.com/orgball2608/socialgram-client/internal/api"
	"github.com/orgball2608/socialgram-client/internal/domain"
)

func (a *APIImpl) MyStories(ctx context.Context) ([]domain.Story, error) {
	var stories []domain.Story
	if err := a.do(ctx, http.MethodGet, "/story/user", nil, &stories); err != nil {
		return nil, err
	}
	return stories, nil
}

func (a *APIImpl) FollowingStories(ctx context.Context) ([]domain.Story, error) {
	var stories []domain.Story
	if err := a.do(ctx, http.MethodGet, "/story/following", nil, &stories); err != nil {
		return nil, err
	}
	return stories, nil
}

func (a *APIImpl) CreateStory(ctx context.Context, req api.CreateStoryRequest) (*domain.Story, error) {
	var story domain.Story
	if err := a.do(ctx, http.MethodPost, "/story/post", req, &story); err != nil {
		return nil, err
	}
	return &story, nil
}
