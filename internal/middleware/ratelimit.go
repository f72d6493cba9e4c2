package middleware

import (
	"sync"
	"time"

	"freelancehub_backend/internal/logger"
	"freelancehub_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const minClientIdle = 10 * time.Minute

type clientEntry struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

// ClientLimiter хранит по одному token bucket на клиента.
// Клиенты без запросов дольше idle удаляются при следующем обращении после
// очередного интервала idle.
type ClientLimiter struct {
	mu        sync.Mutex
	m         map[string]*clientEntry
	r         rate.Limit
	b         int
	idle      time.Duration
	lastSweep time.Time
	now       func() time.Time
}

func NewClientLimiter(reqPerSec float64, burst int) *ClientLimiter {
	// idle не короче полного восстановления bucket, иначе удаление сбрасывало бы лимит
	idle := minClientIdle
	if reqPerSec > 0 {
		idle = max(idle, time.Duration(float64(burst)/reqPerSec*float64(time.Second)))
	}
	return &ClientLimiter{
		m:         make(map[string]*clientEntry),
		r:         rate.Limit(reqPerSec),
		b:         burst,
		idle:      idle,
		lastSweep: time.Now(),
		now:       time.Now,
	}
}

func (cl *ClientLimiter) limiterFor(key string) *rate.Limiter {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	now := cl.now()
	if now.Sub(cl.lastSweep) >= cl.idle {
		cl.sweepLocked(now)
	}

	if e, ok := cl.m[key]; ok {
		e.lastSeen = now
		return e.lim
	}
	e := &clientEntry{lim: rate.NewLimiter(cl.r, cl.b), lastSeen: now}
	cl.m[key] = e
	return e.lim
}

// Sweep удаляет клиентов, не обращавшихся дольше idle. Возвращает число удаленных.
func (cl *ClientLimiter) Sweep() int {
	cl.mu.Lock()
	defer cl.mu.Unlock()
	return cl.sweepLocked(cl.now())
}

func (cl *ClientLimiter) sweepLocked(now time.Time) int {
	removed := 0
	for key, e := range cl.m {
		if now.Sub(e.lastSeen) >= cl.idle {
			delete(cl.m, key)
			removed++
		}
	}
	cl.lastSweep = now
	if removed > 0 {
		logger.Debug("Rate limiter evicted idle clients", "removed", removed, "remaining", len(cl.m))
	}
	return removed
}

// Len возвращает число отслеживаемых клиентов.
func (cl *ClientLimiter) Len() int {
	cl.mu.Lock()
	defer cl.mu.Unlock()
	return len(cl.m)
}

// Allow расходует один токен клиента key.
func (cl *ClientLimiter) Allow(key string) bool {
	return cl.limiterFor(key).Allow()
}

// RateLimitMiddleware ограничивает запросы по пользователю, а без авторизации по IP.
func RateLimitMiddleware(cl *ClientLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := GetUserID(c)
		if key == "" {
			key = c.ClientIP()
		}
		if !cl.Allow(key) {
			logger.CtxWarn(c.Request.Context(), "Rate limit exceeded", "key", key, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.NewRateLimitError())
			c.Abort()
			return
		}
		c.Next()
	}
}
