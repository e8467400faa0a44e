package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

const (
	ProfileStoreMemory   = "memory"
	ProfileStoreBolt     = "bolt"
	ProfileStoreRedis    = "redis"
	ProfileStorePostgres = "postgres"
)

// Config centraliza la configuración del servicio.
type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`
	LogDev   bool   `env:"LOG_DEV" envDefault:"false"`

	GeminiAPIKey      string `env:"GEMINI_API_KEY"`
	GeminiTextModel   string `env:"GEMINI_TEXT_MODEL" envDefault:"gemini-2.0-flash"`
	GeminiVisionModel string `env:"GEMINI_VISION_MODEL" envDefault:"gemini-2.0-flash"`
	AITimeoutSeconds  int    `env:"AI_TIMEOUT_SECONDS" envDefault:"30"`

	ProfileStore string `env:"PROFILE_STORE" envDefault:"bolt"`
	BoltPath     string `env:"BOLT_PATH" envDefault:"swasthya.db"`
	DatabaseURL  string `env:"DATABASE_URL"`

	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	JWTSecret              string `env:"JWT_SECRET"`
	SessionTokenTTLMinutes int    `env:"SESSION_TOKEN_TTL_MINUTES" envDefault:"120"`

	ReplyDelayMinMS    int `env:"REPLY_DELAY_MIN_MS" envDefault:"1000"`
	ReplyDelayMaxMS    int `env:"REPLY_DELAY_MAX_MS" envDefault:"2000"`
	QuestionDelayMS    int `env:"QUESTION_DELAY_MS" envDefault:"600"`
	SessionIdleMinutes int `env:"SESSION_IDLE_MINUTES" envDefault:"60"`

	AIRateLimitPerMinute    int `env:"AI_RATE_LIMIT_PER_MINUTE" envDefault:"20"`
	MedicineCacheTTLMinutes int `env:"MEDICINE_CACHE_TTL_MINUTES" envDefault:"360"`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	cfg.ProfileStore = strings.ToLower(strings.TrimSpace(cfg.ProfileStore))
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rechaza combinaciones inconsistentes.
func (c *Config) Validate() error {
	var errs []error
	switch c.ProfileStore {
	case ProfileStoreMemory:
	case ProfileStoreBolt:
		if strings.TrimSpace(c.BoltPath) == "" {
			errs = append(errs, errors.New("BOLT_PATH is required for the bolt profile store"))
		}
	case ProfileStoreRedis:
		if strings.TrimSpace(c.RedisAddr) == "" {
			errs = append(errs, errors.New("REDIS_ADDR is required for the redis profile store"))
		}
	case ProfileStorePostgres:
		if strings.TrimSpace(c.DatabaseURL) == "" {
			errs = append(errs, errors.New("DATABASE_URL is required for the postgres profile store"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown PROFILE_STORE %q", c.ProfileStore))
	}
	if c.ReplyDelayMinMS < 0 || c.ReplyDelayMaxMS < 0 || c.QuestionDelayMS < 0 {
		errs = append(errs, errors.New("delays must not be negative"))
	}
	if c.ReplyDelayMinMS > c.ReplyDelayMaxMS {
		errs = append(errs, errors.New("REPLY_DELAY_MIN_MS must not exceed REPLY_DELAY_MAX_MS"))
	}
	if c.SessionIdleMinutes <= 0 {
		errs = append(errs, errors.New("SESSION_IDLE_MINUTES must be positive"))
	}
	if c.AITimeoutSeconds <= 0 {
		errs = append(errs, errors.New("AI_TIMEOUT_SECONDS must be positive"))
	}
	return errors.Join(errs...)
}

func (c *Config) ReplyDelayMin() time.Duration {
	return time.Duration(c.ReplyDelayMinMS) * time.Millisecond
}

func (c *Config) ReplyDelayMax() time.Duration {
	return time.Duration(c.ReplyDelayMaxMS) * time.Millisecond
}

func (c *Config) QuestionDelay() time.Duration {
	return time.Duration(c.QuestionDelayMS) * time.Millisecond
}

func (c *Config) SessionIdle() time.Duration {
	return time.Duration(c.SessionIdleMinutes) * time.Minute
}

func (c *Config) AITimeout() time.Duration {
	return time.Duration(c.AITimeoutSeconds) * time.Second
}

func (c *Config) SessionTokenTTL() time.Duration {
	return time.Duration(c.SessionTokenTTLMinutes) * time.Minute
}

func (c *Config) MedicineCacheTTL() time.Duration {
	return time.Duration(c.MedicineCacheTTLMinutes) * time.Minute
}
