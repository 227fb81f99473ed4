package middleware

import (
	"time"

	"todo-assistant/pkg/log"
)

// Config is the dependency bag for New.
type Config struct {
	InternalKey    string
	RequestsPerMin int
	MaxKeys        int
	KeyTTL         time.Duration
}

type Middleware struct {
	l           log.Logger
	internalKey string
	limiter     *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	return Middleware{
		l:           l,
		internalKey: cfg.InternalKey,
		limiter:     newRateLimiter(cfg.RequestsPerMin, cfg.MaxKeys, cfg.KeyTTL),
	}
}
