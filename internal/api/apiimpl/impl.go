package apiimpl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/orgball2608/socialgram-client/internal/api"
	"github.com/orgball2608/socialgram-client/internal/ratelimit"
	"github.com/orgball2608/socialgram-client/internal/session"
	"github.com/orgball2608/socialgram-client/pkg/config"
	apperrors "github.com/orgball2608/socialgram-client/pkg/errors"
	"github.com/orgball2608/socialgram-client/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Config  *config.Config
	Logger  logger.Logger
	Session session.Store
	Limiter ratelimit.Limiter
}

// APIImpl is the single HTTP adapter behind all per-domain API interfaces.
// Every request goes through do: bearer injection, one attempt, normalized
// errors. A 401 clears the durable token and fires the unauthorized hook.
type APIImpl struct {
	http    *http.Client
	baseURL string
	session session.Store
	limiter ratelimit.Limiter
	logger  logger.Logger

	mu             sync.Mutex
	onUnauthorized func()
}

func New(opts Opts) *APIImpl {
	return &APIImpl{
		http:    &http.Client{Timeout: opts.Config.Api.Timeout},
		baseURL: strings.TrimRight(opts.Config.Api.BaseURL, "/"),
		session: opts.Session,
		limiter: opts.Limiter,
		logger:  opts.Logger,
	}
}

var (
	_ api.Auth    = (*APIImpl)(nil)
	_ api.Users   = (*APIImpl)(nil)
	_ api.Posts   = (*APIImpl)(nil)
	_ api.Chats   = (*APIImpl)(nil)
	_ api.Stories = (*APIImpl)(nil)
	_ api.Files   = (*APIImpl)(nil)
)

// SetUnauthorizedHandler registers the session-invalid signal. The handler
// runs after the durable token has been cleared; the caller decides what
// "redirect to sign-in" means for it.
func (a *APIImpl) SetUnauthorizedHandler(fn func()) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.onUnauthorized = fn
}

// errorBody is the shape servers use for non-2xx responses.
type errorBody struct {
	Message string `json:"message"`
	Field   string `json:"field"`
}

// do issues a request whose path has no variable segments; the path itself
// is the rate-limit route.
func (a *APIImpl) do(ctx context.Context, method, path string, body any, out any) error {
	return a.doRoute(ctx, method, path, path, body, out)
}

// doRoute separates the rate-limit key from the concrete path: route is the
// stable endpoint shape (ids as placeholders, no query), so pacing buckets
// stay per endpoint instead of growing one per resource id.
func (a *APIImpl) doRoute(ctx context.Context, method, route, path string, body any, out any) error {
	if err := a.limiter.Wait(ctx, method+" "+route); err != nil {
		return setupError(err)
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return setupError(err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, reader)
	if err != nil {
		return setupError(err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return a.send(req, out)
}

func (a *APIImpl) send(req *http.Request, out any) error {
	req.Header.Set("X-Request-ID", uuid.NewString())
	if token, err := a.session.Token(); err == nil && token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := a.http.Do(req)
	if err != nil {
		a.logger.Warn("Request failed without a response", "method", req.Method, "path", req.URL.Path, "error", err)
		return &apperrors.APIError{
			Kind:    apperrors.KindNetwork,
			Message: "Network error. Please check your connection and ensure the server is running.",
		}
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			a.logger.Error("Error closing response body", "error", cerr)
		}
	}()

	if resp.StatusCode == http.StatusUnauthorized {
		a.invalidateSession()
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return a.responseError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &apperrors.APIError{
			Kind:    apperrors.KindServer,
			Status:  resp.StatusCode,
			Message: fmt.Sprintf("Malformed response body: %v", err),
		}
	}
	return nil
}

// invalidateSession clears the durable token and signals the registered
// handler. The failed call itself still surfaces its error to the caller.
func (a *APIImpl) invalidateSession() {
	if err := a.session.Clear(); err != nil {
		a.logger.Error("Failed to clear session token after 401", "error", err)
	}

	a.mu.Lock()
	fn := a.onUnauthorized
	a.mu.Unlock()
	if fn != nil {
		fn()
	}
}

func (a *APIImpl) responseError(resp *http.Response) error {
	apiErr := &apperrors.APIError{
		Kind:    kindForStatus(resp.StatusCode),
		Status:  resp.StatusCode,
		Message: fmt.Sprintf("Request failed: %s", http.StatusText(resp.StatusCode)),
	}

	var body errorBody
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Message != "" {
		apiErr.Message = body.Message
		if body.Field != "" {
			apiErr.Kind = apperrors.KindConflict
			apiErr.Field = &apperrors.FieldError{Field: body.Field, Message: body.Message}
		}
	}

	return apiErr
}

func kindForStatus(status int) apperrors.Kind {
	switch {
	case status == http.StatusUnauthorized:
		return apperrors.KindAuth
	case status == http.StatusConflict:
		return apperrors.KindConflict
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		return apperrors.KindValidation
	default:
		return apperrors.KindServer
	}
}

func setupError(err error) error {
	return &apperrors.APIError{
		Kind:    apperrors.KindValidation,
		Message: fmt.Sprintf("An error occurred while setting up the request: %v", err),
	}
}
