package middleware

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"blog-idea-api/pkg/logger"
)

// TraceIDHeader 响应中回传的 trace id 头
const TraceIDHeader = "X-Trace-ID"

// Trace 为每个请求创建 server span
func Trace(serviceName string) gin.HandlerFunc {
	return otelgin.Middleware(serviceName)
}

// TraceContext 把 trace_id / span_id 写入日志上下文，并给 span 补充 request id 与路由
// 必须注册在 Trace 与 RequestID 之后
func TraceContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		span := trace.SpanFromContext(c.Request.Context())
		sc := span.SpanContext()
		if !sc.IsValid() {
			c.Next()
			return
		}

		ctx := logger.WithContext(c.Request.Context(), logger.TraceIDKey, sc.TraceID().String())
		ctx = logger.WithContext(ctx, logger.SpanIDKey, sc.SpanID().String())
		c.Request = c.Request.WithContext(ctx)
		c.Header(TraceIDHeader, sc.TraceID().String())

		if id := c.GetString(string(logger.RequestIDKey)); id != "" {
			span.SetAttributes(attribute.String("http.request_id", id))
		}

		c.Next()

		span.SetAttributes(attribute.String("blog.route", routeLabel(c)))
	}
}
