package ratelimit

import (
	"net/http"
	"sync"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

type (
	// Note: For env parsing to work, we must export all struct fields
	Config struct {
		Enabled bool    `env:"ENABLED" envDefault:"true"`
		RPS     float64 `env:"RPS"     envDefault:"20"`
		Burst   int     `env:"BURST"   envDefault:"40"`
	}

	// clientLimiters holds one token bucket per remote address. Entries are
	// never evicted; with per-IP keys behind a reverse proxy the map stays
	// small, and restart clears it.
	clientLimiters struct {
		mu       sync.Mutex
		limiters map[string]*rate.Limiter
		rps      rate.Limit
		burst    int
	}
)

func (c *clientLimiters) get(key string) *rate.Limiter {
	c.mu.Lock()
	defer c.mu.Unlock()
	lim, ok := c.limiters[key]
	if !ok {
		lim = rate.NewLimiter(c.rps, c.burst)
		c.limiters[key] = lim
	}
	return lim
}

// Middleware applies a per-client token bucket keyed by remote IP.
// Exhausted buckets short-circuit with a 429 problem document.
func Middleware(cfg Config) echo.MiddlewareFunc {
	clients := &clientLimiters{
		limiters: make(map[string]*rate.Limiter),
		rps:      rate.Limit(cfg.RPS),
		burst:    cfg.Burst,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !cfg.Enabled {
				return next(c)
			}
			if !clients.get(c.RealIP()).Allow() {
				// flows through the centralized error handler like every
				// other short-circuit, so the client gets a problem document
				return echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")
			}
			return next(c)
		}
	}
}
