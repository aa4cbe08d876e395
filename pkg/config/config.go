package config

import (
	"log"
	"sync"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	App struct {
		Env       string `env:"APP_ENV" env-default:"development"`
		Port      int    `env:"APP_PORT" env-default:"8081"`
		SentryUrl string `env:"SENTRY_URL"`
	}
	Api struct {
		BaseURL  string        `env:"API_BASE_URL" env-default:"http://localhost:8080/api"`
		Timeout  time.Duration `env:"API_TIMEOUT" env-default:"10s"`
		Email    string        `env:"API_EMAIL"`
		Password string        `env:"API_PASSWORD"`
	}
	Session struct {
		Path string `env:"SESSION_PATH" env-default:"./session-token"`
	}
	Poller struct {
		ChatsMinInterval   time.Duration `env:"POLLER_CHATS_MIN_INTERVAL" env-default:"30s"`
		ChatsMaxInterval   time.Duration `env:"POLLER_CHATS_MAX_INTERVAL" env-default:"1m"`
		StoriesMinInterval time.Duration `env:"POLLER_STORIES_MIN_INTERVAL" env-default:"2m"`
		StoriesMaxInterval time.Duration `env:"POLLER_STORIES_MAX_INTERVAL" env-default:"5m"`
	}
	RateLimit struct {
		Requests int           `env:"RATE_LIMIT_REQUESTS" env-default:"5"`
		Per      time.Duration `env:"RATE_LIMIT_PER" env-default:"1s"`
		Burst    int           `env:"RATE_LIMIT_BURST" env-default:"10"`
	}
}

var (
	once sync.Once
	cfg  *Config
)

func New() (*Config, error) {
	once.Do(func() {
		cfg = &Config{}
		if err := cleanenv.ReadEnv(cfg); err != nil {
			help, _ := cleanenv.GetDescription(cfg, nil)
			log.Fatalf("Failed to read configuration: %v\n%v", err, help)
		}
	})
	return cfg, nil
}
