package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"blog-idea-api/internal/interfaces/http/dto"
	apperrors "blog-idea-api/pkg/errors"
	"blog-idea-api/pkg/logger"
)

// Recovery Panic 恢复中间件
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error(c.Request.Context(), "panic recovered",
					fmt.Errorf("%v", err),
					"stack", string(debug.Stack()),
					"path", c.Request.URL.Path,
					"method", c.Request.Method,
				)

				dto.InternalError(c, apperrors.ErrInternalError.Message)
				c.Abort()
			}
		}()

		c.Next()
	}
}
