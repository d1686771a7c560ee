package handler

import (
	"github.com/gin-gonic/gin"

	"blog-idea-api/internal/interfaces/http/dto"
	apperrors "blog-idea-api/pkg/errors"
)

// GenerateHandler 创意/大纲生成处理器
type GenerateHandler struct {
	generator ContentGenerator
}

// NewGenerateHandler 创建生成处理器
func NewGenerateHandler(generator ContentGenerator) *GenerateHandler {
	return &GenerateHandler{generator: generator}
}

// Generate 生成创意或大纲
// @Summary 生成博客创意或大纲
// @Description type=ideas 时按 topic 生成创意，type=outline 时按 idea 生成大纲
// @Tags Generate
// @Accept json
// @Produce json
// @Param body body dto.GenerateRequest true "生成请求"
// @Success 200 {object} dto.IdeasResponse
// @Success 200 {object} dto.OutlineResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 413 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /generate [post]
func (h *GenerateHandler) Generate(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.GenerateRequest
	if !bindJSON(c, &req) {
		return
	}

	cmd, err := req.Command()
	if err != nil {
		dto.AppError(c, err, apperrors.ErrGenerationFailed.Message)
		return
	}

	switch cmd := cmd.(type) {
	case dto.IdeasRequest:
		ideas, err := h.generator.GenerateIdeas(ctx, cmd.Topic)
		if err != nil {
			dto.AppError(c, err, apperrors.ErrGenerationFailed.Message)
			return
		}
		dto.Success(c, dto.IdeasResponse{Ideas: ideas})
	case dto.OutlineRequest:
		outline, err := h.generator.GenerateOutline(ctx, cmd.Idea)
		if err != nil {
			dto.AppError(c, err, apperrors.ErrGenerationFailed.Message)
			return
		}
		dto.Success(c, dto.OutlineResponse{Outline: outline})
	}
}
