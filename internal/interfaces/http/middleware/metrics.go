package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"blog-idea-api/pkg/metrics"
)

// Metrics Prometheus 指标采集中间件
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		method := c.Request.Method
		reqSize := float64(c.Request.ContentLength)

		c.Next()

		// NoRoute 分发的请求在 Next 之后才写入路由标签
		path := routeLabel(c)
		status := strconv.Itoa(c.Writer.Status())

		if reqSize > 0 {
			metrics.HTTPRequestSize.WithLabelValues(method, path).Observe(reqSize)
		}
		metrics.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
		if respSize := float64(c.Writer.Size()); respSize > 0 {
			metrics.HTTPResponseSize.WithLabelValues(method, path).Observe(respSize)
		}
	}
}

// RouteKey 未匹配命名路由时由分发器写入的路由标签
const RouteKey = "route"

func routeLabel(c *gin.Context) string {
	if p := c.FullPath(); p != "" {
		return p
	}
	if p := c.GetString(RouteKey); p != "" {
		return p
	}
	return "unknown"
}
