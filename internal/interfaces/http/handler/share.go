package handler

import (
	"github.com/gin-gonic/gin"

	"blog-idea-api/internal/interfaces/http/dto"
	apperrors "blog-idea-api/pkg/errors"
)

// ShareHandler 分享链接处理器
type ShareHandler struct {
	shares ShareService
}

// NewShareHandler 创建分享处理器
func NewShareHandler(shares ShareService) *ShareHandler {
	return &ShareHandler{shares: shares}
}

// Create 创建分享链接
// @Summary 创建分享链接
// @Description 保存当前结果快照，7 天后过期
// @Tags Share
// @Accept json
// @Produce json
// @Param body body dto.ShareRequest true "快照内容"
// @Success 200 {object} dto.ShareResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 413 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /generate-share [post]
func (h *ShareHandler) Create(c *gin.Context) {
	var req dto.ShareRequest
	if !bindJSON(c, &req) {
		return
	}

	id, err := h.shares.Create(c.Request.Context(), req.ToSnapshot())
	if err != nil {
		dto.InternalError(c, apperrors.ErrShareFailed.Message)
		return
	}
	dto.Success(c, dto.ShareResponse{ShareID: id})
}

// Get 读取分享快照，ID 取自路径最后一段
// @Summary 读取分享内容
// @Tags Share
// @Produce json
// @Param id path string true "分享 ID"
// @Success 200 {object} entity.ShareSnapshot
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /shared/{id} [get]
func (h *ShareHandler) Get(c *gin.Context) {
	id := lastPathSegment(c.Request.URL.Path)

	snapshot, err := h.shares.Get(c.Request.Context(), id)
	if err != nil {
		dto.AppError(c, err, apperrors.ErrShareReadFailed.Message)
		return
	}
	dto.Success(c, snapshot)
}
