package apiimpl

import (
	"context"
	"net/http"

	"github.com/orgball2608/socialgram-client/internal/api"
)

func (a *APIImpl) SignIn(ctx context.Context, req api.SignInRequest) (*api.AuthResponse, error) {
	var res api.AuthResponse
	if err := a.do(ctx, http.MethodPost, "/auth/signin", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (a *APIImpl) SignUp(ctx context.Context, req api.SignUpRequest) (*api.AuthResponse, error) {
	var res api.AuthResponse
	if err := a.do(ctx, http.MethodPost, "/auth/signup", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (a *APIImpl) Logout(ctx context.Context) error {
	return a.do(ctx, http.MethodPost, "/auth/logout", nil, nil)
}
