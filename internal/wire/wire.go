//go:build wireinject
// +build wireinject

// Package wire 提供依赖注入配置
package wire

import (
	"context"

	"github.com/google/wire"

	"blog-idea-api/internal/application/blog"
	"blog-idea-api/internal/application/share"
	"blog-idea-api/internal/config"
	"blog-idea-api/internal/domain/repository"
	"blog-idea-api/internal/infrastructure/llm"
	"blog-idea-api/internal/infrastructure/persistence/redis"
	"blog-idea-api/internal/interfaces/http/handler"
	"blog-idea-api/internal/interfaces/http/middleware"
	"blog-idea-api/internal/interfaces/http/router"
	workflowport "blog-idea-api/internal/workflow/port"
)

// InitializeApp 初始化整个应用（带路由器）
func InitializeApp(ctx context.Context, cfg *config.Config) (*router.Router, func(), error) {
	wire.Build(
		RedisSet,
		LLMSet,
		ApplicationSet,
		RouterSet,
	)
	return nil, nil, nil
}

// RedisSet Redis 提供者集合
var RedisSet = wire.NewSet(
	ProvideRedisClient,
	ProvideShareStore,
	redis.NewRateLimiter,
	wire.Bind(new(repository.ShareRepository), new(*redis.ShareStore)),
	wire.Bind(new(middleware.RateLimiter), new(*redis.RateLimiter)),
	wire.Bind(new(handler.HealthChecker), new(*redis.Client)),
)

// LLMSet LLM 提供者集合
var LLMSet = wire.NewSet(
	llm.NewEinoFactory,
	wire.Bind(new(workflowport.ChatModelFactory), new(*llm.EinoFactory)),
)

// ApplicationSet 应用层用例集合
var ApplicationSet = wire.NewSet(
	blog.NewGenerator,
	share.NewService,
	wire.Bind(new(handler.ContentGenerator), new(*blog.Generator)),
	wire.Bind(new(handler.ShareService), new(*share.Service)),
)

// RouterSet 路由器提供者集合
var RouterSet = wire.NewSet(
	ProvideHealthHandler,
	handler.NewGenerateHandler,
	handler.NewShareHandler,
	handler.NewPageHandler,
	ProvideRateLimitKeyFunc,
	wire.Struct(new(router.RouterHandlers), "*"),
	router.NewWithDeps,
)
