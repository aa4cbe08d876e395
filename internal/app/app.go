package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/orgball2608/socialgram-client/internal/api"
	"github.com/orgball2608/socialgram-client/internal/api/apiimpl"
	"github.com/orgball2608/socialgram-client/internal/poller"
	"github.com/orgball2608/socialgram-client/internal/poller/pollerimpl"
	"github.com/orgball2608/socialgram-client/internal/ratelimit"
	"github.com/orgball2608/socialgram-client/internal/session"
	"github.com/orgball2608/socialgram-client/internal/store/auth"
	storefx "github.com/orgball2608/socialgram-client/internal/store/fx"
	"github.com/orgball2608/socialgram-client/internal/store/post"
	"github.com/orgball2608/socialgram-client/internal/store/user"
	"github.com/orgball2608/socialgram-client/pkg/config"
	"github.com/orgball2608/socialgram-client/pkg/logger"
	"go.uber.org/fx"
)

var App = fx.Options(
	fx.Provide(
		config.New,
		logger.FxOption,
	),
	fx.Provide(
		fx.Annotate(
			func(cfg *config.Config) *session.FileStore {
				return session.NewFileStore(cfg.Session.Path)
			},
			fx.As(new(session.Store)),
		),
		fx.Annotate(
			func(cfg *config.Config) *ratelimit.InMemoryLimiter {
				return ratelimit.NewInMemoryLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Per, cfg.RateLimit.Burst)
			},
			fx.As(new(ratelimit.Limiter)),
		),
	),
	fx.Provide(
		apiimpl.New,
		func(a *apiimpl.APIImpl) api.Auth { return a },
		func(a *apiimpl.APIImpl) api.Users { return a },
		func(a *apiimpl.APIImpl) api.Posts { return a },
		func(a *apiimpl.APIImpl) api.Chats { return a },
		func(a *apiimpl.APIImpl) api.Stories { return a },
		func(a *apiimpl.APIImpl) api.Files { return a },
	),
	storefx.Module,
	fx.Provide(
		fx.Annotate(
			pollerimpl.New,
			fx.As(new(poller.Client)),
		),
	),
	fx.Invoke(run),
)

func run(lc fx.Lifecycle, log logger.Logger, cfg *config.Config, apiClient *apiimpl.APIImpl,
	authStore *auth.Store, userStore *user.Store, postStore *post.Store, pClient poller.Client) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {

			go startHttpServer(log, cfg)

			// A rejected token anywhere in the adapter must drop the whole
			// session, not just the request that hit the 401.
			apiClient.SetUnauthorizedHandler(authStore.Invalidate)

			ctx := context.Background()

			if !authStore.Snapshot().IsAuthenticated && cfg.Api.Email != "" {
				err := authStore.SignIn(ctx, api.SignInRequest{
					Email:    cfg.Api.Email,
					Password: cfg.Api.Password,
				})
				if err != nil {
					log.Error("Sign in failed", "error", err)
				}
			}

			if authStore.Snapshot().IsAuthenticated {
				if err := userStore.FetchProfile(ctx, ""); err != nil {
					log.Error("Failed to load own profile", "error", err)
				}
				if err := postStore.Fetch(ctx, 0); err != nil {
					log.Error("Failed to load feed", "error", err)
				}
			}

			if err := pClient.Schedule(ctx); err != nil {
				log.Error("Failed to start background poller", "error", err)
			}

			return nil
		},
	})
}

func startHttpServer(log logger.Logger, cfg *config.Config) {
	http.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		healthCheckHandler(w, r, log)
	})

	log.Info(fmt.Sprintf("Starting server on :%d", cfg.App.Port))

	if err := http.ListenAndServe(fmt.Sprintf(":%d", cfg.App.Port), nil); err != nil {
		log.Error("Server failed to start: %v", err)
	}
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request, logger logger.Logger) {
	logger.Info("Health check request received", "Method", r.Method, "URL", r.URL.String())
	w.Header().Set("Content-Type", "text/plain")
	if _, err := w.Write([]byte("ok")); err != nil {
		logger.Error("Failed to write response", "Error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
