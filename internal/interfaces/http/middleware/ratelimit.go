package middleware

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"blog-idea-api/internal/interfaces/http/dto"
	apperrors "blog-idea-api/pkg/errors"
	"blog-idea-api/pkg/logger"
	"blog-idea-api/pkg/metrics"
)

// RateLimitConfig 限流配置
type RateLimitConfig struct {
	// Enabled 是否启用限流
	Enabled bool
	// RequestsPerMinute 每个客户端 IP 每分钟请求数
	RequestsPerMinute int
	// KeyFunc 由客户端 IP 与路由构建限流 Key
	KeyFunc func(clientIP, endpoint string) string
}

// RateLimiter 限流器接口
type RateLimiter interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
}

// RateLimit 限流中间件，限流器故障时放行
func RateLimit(cfg RateLimitConfig, limiter RateLimiter) gin.HandlerFunc {
	if !cfg.Enabled || limiter == nil {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	if cfg.RequestsPerMinute <= 0 {
		cfg.RequestsPerMinute = 30
	}
	if cfg.KeyFunc == nil {
		cfg.KeyFunc = func(clientIP, endpoint string) string {
			return fmt.Sprintf("ratelimit:%s:%s", clientIP, endpoint)
		}
	}

	return func(c *gin.Context) {
		endpoint := routeLabel(c)
		key := cfg.KeyFunc(c.ClientIP(), endpoint)

		allowed, err := limiter.Allow(c.Request.Context(), key, cfg.RequestsPerMinute, time.Minute)
		if err != nil {
			logger.Warn(c.Request.Context(), "rate limiter unavailable", "error", err.Error())
			c.Next()
			return
		}

		if !allowed {
			metrics.RateLimitedTotal.WithLabelValues(endpoint).Inc()
			dto.TooManyRequests(c, apperrors.ErrTooManyRequests.Message)
			c.Abort()
			return
		}

		c.Next()
	}
}
