package middlewares

import (
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/yeremiapane/sangem-ordering/utils"
)

// RateLimiter is a per-IP sliding window over all routes.
type RateLimiter struct {
	rate     int
	interval time.Duration
	ips      map[string][]time.Time
	mu       sync.Mutex
}

func NewRateLimiter(rate int, intervalSeconds int) *RateLimiter {
	return &RateLimiter{
		rate:     rate,
		interval: time.Duration(intervalSeconds) * time.Second,
		ips:      make(map[string][]time.Time),
	}
}

func (rl *RateLimiter) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl.rate <= 0 {
			c.Next()
			return
		}
		if !rl.allow(c.ClientIP(), time.Now()) {
			utils.AbortWithError(c, http.StatusTooManyRequests, errors.New("too many requests, slow down"))
			return
		}
		c.Next()
	}
}

func (rl *RateLimiter) allow(ip string, now time.Time) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := now.Add(-rl.interval)
	valid := rl.ips[ip][:0]
	for _, t := range rl.ips[ip] {
		if t.After(cutoff) {
			valid = append(valid, t)
		}
	}
	if len(valid) >= rl.rate {
		rl.ips[ip] = valid
		return false
	}
	rl.ips[ip] = append(valid, now)
	return true
}

// LoginLimiter is a token bucket per IP for the login endpoint.
type LoginLimiter struct {
	every    time.Duration
	burst    int
	limiters map[string]*rate.Limiter
	mu       sync.Mutex
}

func NewLoginLimiter(every time.Duration, burst int) *LoginLimiter {
	return &LoginLimiter{every: every, burst: burst, limiters: make(map[string]*rate.Limiter)}
}

func (ll *LoginLimiter) limiter(ip string) *rate.Limiter {
	ll.mu.Lock()
	defer ll.mu.Unlock()
	l, ok := ll.limiters[ip]
	if !ok {
		l = rate.NewLimiter(rate.Every(ll.every), ll.burst)
		ll.limiters[ip] = l
	}
	return l
}

func (ll *LoginLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !ll.limiter(c.ClientIP()).Allow() {
			utils.ErrorLogger.Warnf("login throttled for %s", c.ClientIP())
			utils.AbortWithError(c, http.StatusTooManyRequests, errors.New("too many login attempts, try again in a minute"))
			return
		}
		c.Next()
	}
}
