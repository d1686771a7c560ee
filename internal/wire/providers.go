package wire

import (
	"blog-idea-api/internal/config"
	"blog-idea-api/internal/infrastructure/persistence/redis"
	"blog-idea-api/internal/interfaces/http/handler"
	"blog-idea-api/internal/interfaces/http/router"
)

// ProvideRedisClient 提供 Redis 客户端
func ProvideRedisClient(cfg *config.Config) (*redis.Client, func(), error) {
	client, err := redis.NewClient(&cfg.Cache.Redis)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = client.Close()
	}
	return client, cleanup, nil
}

// ProvideShareStore 提供分享快照存储
func ProvideShareStore(client *redis.Client, cfg *config.Config) *redis.ShareStore {
	return redis.NewShareStore(client, cfg.Share.KeyPrefix)
}

// ProvideHealthHandler 提供健康检查处理器
func ProvideHealthHandler(checker handler.HealthChecker, cfg *config.Config) *handler.HealthHandler {
	return handler.NewHealthHandler(checker, cfg.App.Version)
}

// ProvideRateLimitKeyFunc 限流 Key 与 Redis 限流器的键空间保持一致
func ProvideRateLimitKeyFunc() router.RateLimitKeyFunc {
	return redis.BuildRateLimitKey
}
