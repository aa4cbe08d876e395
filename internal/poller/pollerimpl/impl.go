package pollerimpl

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/orgball2608/socialgram-client/internal/poller"
	"github.com/orgball2608/socialgram-client/internal/store/message"
	"github.com/orgball2608/socialgram-client/internal/store/story"
	"github.com/orgball2608/socialgram-client/pkg/config"
	apperrors "github.com/orgball2608/socialgram-client/pkg/errors"
	"github.com/orgball2608/socialgram-client/pkg/logger"
	"github.com/orgball2608/socialgram-client/pkg/retry"
	"github.com/panjf2000/ants/v2"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Messages *message.Store
	Stories  *story.Store
	Config   *config.Config
	Logger   logger.Logger
}

type PollerImpl struct {
	Messages *message.Store
	Stories  *story.Store
	Config   *config.Config
	Logger   logger.Logger
}

func New(opts Opts) *PollerImpl {
	return &PollerImpl{
		Messages: opts.Messages,
		Stories:  opts.Stories,
		Config:   opts.Config,
		Logger:   opts.Logger,
	}
}

var _ poller.Client = (*PollerImpl)(nil)

// Schedule starts the background refresh jobs. Chats refresh on a short
// randomized interval, stories on a longer one; randomization keeps poll
// bursts from lining up. The scheduler shuts down when ctx is cancelled.
func (p *PollerImpl) Schedule(ctx context.Context) error {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}

	pool, err := ants.NewPool(2, ants.WithPreAlloc(true))
	if err != nil {
		return fmt.Errorf("failed to create worker pool: %w", err)
	}

	pollerCfg := p.Config.Poller

	_, err = scheduler.NewJob(
		gocron.DurationRandomJob(pollerCfg.ChatsMinInterval, pollerCfg.ChatsMaxInterval),
		gocron.NewTask(func() {
			p.submit(ctx, pool, "refresh_chats", p.RefreshChats)
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule chat polling: %w", err)
	}

	_, err = scheduler.NewJob(
		gocron.DurationRandomJob(pollerCfg.StoriesMinInterval, pollerCfg.StoriesMaxInterval),
		gocron.NewTask(func() {
			p.submit(ctx, pool, "refresh_stories", p.RefreshStories)
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule story polling: %w", err)
	}

	scheduler.Start()

	go func() {
		<-ctx.Done()
		p.Logger.Info("Stopping background poller")
		if err := scheduler.Shutdown(); err != nil {
			p.Logger.Error("Failed to shut down scheduler", "error", err)
		}
		pool.Release()
	}()

	return nil
}

func (p *PollerImpl) submit(ctx context.Context, pool *ants.Pool, name string, refresh func(context.Context) error) {
	if ctx.Err() != nil {
		return
	}
	err := pool.Submit(func() {
		taskCtx, cancel := context.WithTimeout(ctx, time.Minute)
		defer cancel()
		if err := refresh(taskCtx); err != nil {
			p.Logger.Error("Background refresh failed", "job", name, "error", err)
		}
	})
	if err != nil {
		p.Logger.Error("Failed to submit refresh job", "job", name, "error", err)
	}
}

// RefreshChats re-fetches the chat list, retrying transient network
// failures. Anything else, an expired session included, is not worth
// retrying and aborts the attempt.
func (p *PollerImpl) RefreshChats(ctx context.Context) error {
	return retry.Do(ctx, p.Logger, "refresh_chats", func() error {
		if err := p.Messages.FetchChats(ctx); err != nil {
			if !apperrors.IsNetwork(err) {
				return retry.Permanent(err)
			}
			return err
		}
		return nil
	}, retry.DefaultConfig())
}

// RefreshStories re-fetches the followed-users story group with the same
// retry policy as RefreshChats.
func (p *PollerImpl) RefreshStories(ctx context.Context) error {
	return retry.Do(ctx, p.Logger, "refresh_stories", func() error {
		if err := p.Stories.FetchFollowing(ctx); err != nil {
			if !apperrors.IsNetwork(err) {
				return retry.Permanent(err)
			}
			return err
		}
		return nil
	}, retry.DefaultConfig())
}
