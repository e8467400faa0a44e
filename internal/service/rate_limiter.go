package service

import (
	"context"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
)

const redisRateLimitScript = `
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("EXPIRE", KEYS[1], ARGV[1])
end
return current
`

// RateLimiter limita llamadas por clave en ventanas fijas.
type RateLimiter interface {
	Allow(ctx context.Context, key string) bool
}

type redisEvaler interface {
	Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd
}

type redisRateLimiter struct {
	client redisEvaler
	window time.Duration
	max    int
	prefix string
}

// NewRedisRateLimiter comparte el límite entre réplicas. Si Redis falla deja pasar la llamada.
func NewRedisRateLimiter(client *redis.Client, window time.Duration, max int) RateLimiter {
	if client == nil {
		return nil
	}
	window, max = rateLimitDefaults(window, max)
	return &redisRateLimiter{client: client, window: window, max: max, prefix: "ai:rl:"}
}

func (l *redisRateLimiter) Allow(ctx context.Context, key string) bool {
	normalized := normalizeLimitKey(key)
	if normalized == "" {
		return false
	}
	ctx, cancel := context.WithTimeout(ctx, redisOpTimeout)
	defer cancel()

	seconds := int(l.window.Seconds())
	if seconds <= 0 {
		seconds = 60
	}
	count, err := l.client.Eval(ctx, redisRateLimitScript, []string{l.prefix + normalized}, seconds).Int()
	if err != nil {
		return true
	}
	return count <= l.max
}

type memoryRateLimiter struct {
	counts *cache.Cache
	window time.Duration
	max    int
}

// NewMemoryRateLimiter guarda los contadores en proceso.
func NewMemoryRateLimiter(window time.Duration, max int) RateLimiter {
	window, max = rateLimitDefaults(window, max)
	return &memoryRateLimiter{
		counts: cache.New(window, 2*window),
		window: window,
		max:    max,
	}
}

func (l *memoryRateLimiter) Allow(_ context.Context, key string) bool {
	normalized := normalizeLimitKey(key)
	if normalized == "" {
		return false
	}
	if err := l.counts.Add(normalized, 1, l.window); err == nil {
		return true
	}
	count, err := l.counts.IncrementInt(normalized, 1)
	if err != nil {
		// La ventana expiró entre Add e IncrementInt.
		l.counts.Set(normalized, 1, l.window)
		return true
	}
	return count <= l.max
}

func rateLimitDefaults(window time.Duration, max int) (time.Duration, int) {
	if window <= 0 {
		window = time.Minute
	}
	if max <= 0 {
		max = 1
	}
	return window, max
}

func normalizeLimitKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}
