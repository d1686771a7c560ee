package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-idea-api/internal/interfaces/http/web"
)

// PageHandler 页面处理器
type PageHandler struct{}

// NewPageHandler 创建页面处理器
func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

// Index 返回页面外壳；/share-<id> 也使用同一页面，由前端加载分享内容
func (h *PageHandler) Index(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", web.IndexHTML)
}
