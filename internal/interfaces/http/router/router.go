// Package router 提供 HTTP 路由配置
package router

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"blog-idea-api/internal/config"
	"blog-idea-api/internal/interfaces/http/dto"
	"blog-idea-api/internal/interfaces/http/handler"
	"blog-idea-api/internal/interfaces/http/middleware"
)

const (
	generateSharePath = "/generate-share"
	sharedPathPrefix  = "/shared/"
)

// RouterHandlers 路由依赖的处理器
type RouterHandlers struct {
	Health   *handler.HealthHandler
	Generate *handler.GenerateHandler
	Share    *handler.ShareHandler
	Page     *handler.PageHandler
}

// RateLimitKeyFunc 由客户端 IP 与路由构建限流 Key
type RateLimitKeyFunc func(clientIP, endpoint string) string

// Router HTTP 路由器
type Router struct {
	engine   *gin.Engine
	cfg      *config.Config
	handlers *RouterHandlers
	limit    gin.HandlerFunc
}

// NewWithDeps 创建路由器
func NewWithDeps(cfg *config.Config, handlers *RouterHandlers, limiter middleware.RateLimiter, keyFunc RateLimitKeyFunc) *Router {
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := &Router{
		engine:   gin.New(),
		cfg:      cfg,
		handlers: handlers,
		limit: middleware.RateLimit(middleware.RateLimitConfig{
			Enabled:           cfg.Security.RateLimit.Enabled,
			RequestsPerMinute: cfg.Security.RateLimit.RequestsPerMinute,
			KeyFunc:           keyFunc,
		}, limiter),
	}

	// 末尾带 "/" 的路径交给 NoRoute 按原样分发，不做 301
	r.engine.RedirectTrailingSlash = false

	r.setupMiddleware()
	r.setupRoutes()

	return r
}

// Engine 返回 Gin Engine
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

func (r *Router) setupMiddleware() {
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.RequestID())

	r.engine.Use(middleware.CORS(middleware.CORSConfig{
		AllowedOrigins: r.cfg.Security.CORS.AllowedOrigins,
		AllowedMethods: r.cfg.Security.CORS.AllowedMethods,
		AllowedHeaders: r.cfg.Security.CORS.AllowedHeaders,
	}))

	if r.cfg.Observability.Tracing.Enabled {
		r.engine.Use(middleware.Trace(r.cfg.App.Name))
		r.engine.Use(middleware.TraceContext())
	}

	if r.cfg.Observability.Metrics.Enabled {
		r.engine.Use(middleware.Metrics())
	}

	r.engine.Use(middleware.BodyLimit(r.cfg.Server.HTTP.MaxBodyBytes))
}

func (r *Router) setupRoutes() {
	h := r.handlers

	// 系统端点
	r.engine.GET("/health", h.Health.Health)
	r.engine.GET("/ready", h.Health.Ready)
	r.engine.GET("/live", h.Health.Live)

	if r.cfg.Observability.Metrics.Enabled {
		r.engine.GET(r.cfg.Observability.Metrics.Path, gin.WrapH(promhttp.Handler()))
	}

	r.engine.GET("/", h.Page.Index)

	// 分享路由优先于通用生成路由匹配
	r.engine.POST(generateSharePath, h.Share.Create)
	r.engine.GET(sharedPathPrefix+":id", h.Share.Get)

	r.engine.POST("/", r.limit, h.Generate.Generate)
	r.engine.POST("/generate", r.limit, h.Generate.Generate)

	r.engine.NoRoute(r.dispatch)
}

// dispatch 处理挂载在前缀下的路径，按包含关系匹配：
// POST */generate-share 创建分享，GET */shared/<id> 读取分享，其余 POST 视为生成请求，
// 其余 GET 返回页面外壳（包括 /share-<id>）
func (r *Router) dispatch(c *gin.Context) {
	h := r.handlers
	path := c.Request.URL.Path

	switch c.Request.Method {
	case http.MethodPost:
		if strings.Contains(path, generateSharePath) {
			c.Set(middleware.RouteKey, generateSharePath)
			h.Share.Create(c)
			return
		}
		c.Set(middleware.RouteKey, "/generate")
		r.limit(c)
		if c.IsAborted() {
			return
		}
		h.Generate.Generate(c)
	case http.MethodGet, http.MethodHead:
		if strings.Contains(path, sharedPathPrefix) {
			c.Set(middleware.RouteKey, sharedPathPrefix+":id")
			h.Share.Get(c)
			return
		}
		c.Set(middleware.RouteKey, "page")
		h.Page.Index(c)
	default:
		dto.NotFound(c, "Not found")
	}
}
