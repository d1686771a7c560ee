package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"blog-idea-api/internal/domain/entity"
	"blog-idea-api/internal/interfaces/http/dto"
	apperrors "blog-idea-api/pkg/errors"
)

// ContentGenerator 创意与大纲生成
type ContentGenerator interface {
	GenerateIdeas(ctx context.Context, topic string) ([]string, error)
	GenerateOutline(ctx context.Context, idea string) ([]string, error)
}

// ShareService 分享快照的写入与读取
type ShareService interface {
	Create(ctx context.Context, snapshot *entity.ShareSnapshot) (string, error)
	Get(ctx context.Context, id string) (*entity.ShareSnapshot, error)
}

// HealthChecker 依赖的健康检查
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// lastPathSegment 返回路径最后一个 "/" 之后的部分，以 "/" 结尾时为空
func lastPathSegment(p string) string {
	if i := strings.LastIndex(p, "/"); i >= 0 {
		return p[i+1:]
	}
	return p
}

// bindJSON 解码请求体，失败时写入错误响应并返回 false
// 超过 BodyLimit 返回 413，其余解码错误返回 400
func bindJSON(c *gin.Context, obj any) bool {
	err := c.ShouldBindJSON(obj)
	if err == nil {
		return true
	}
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		dto.AppError(c, apperrors.ErrRequestTooLarge, apperrors.ErrRequestTooLarge.Message)
		return false
	}
	dto.BadRequest(c, apperrors.ErrInvalidParam.Message)
	return false
}
