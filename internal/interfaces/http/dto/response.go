package dto

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "blog-idea-api/pkg/errors"
)

// ErrorResponse 错误响应结构
type ErrorResponse struct {
	Error string `json:"error"`
}

// IdeasResponse 创意生成响应
type IdeasResponse struct {
	Ideas []string `json:"ideas"`
}

// OutlineResponse 大纲生成响应
type OutlineResponse struct {
	Outline []string `json:"outline"`
}

// ShareResponse 分享链接创建响应
type ShareResponse struct {
	ShareID string `json:"shareId"`
}

// Success 返回 200 响应
func Success[T any](c *gin.Context, data T) {
	c.JSON(http.StatusOK, data)
}

// Error 返回错误响应
func Error(c *gin.Context, httpCode int, message string) {
	c.JSON(httpCode, ErrorResponse{Error: message})
}

// AppError 按 AppError 的状态码与文案返回错误；非 AppError 一律 500
func AppError(c *gin.Context, err error, fallback string) {
	if apperrors.IsAppError(err) {
		appErr := apperrors.AsAppError(err)
		Error(c, appErr.HTTPStatus, appErr.Message)
		return
	}
	InternalError(c, fallback)
}

// BadRequest 返回 400 错误
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// NotFound 返回 404 错误
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// TooManyRequests 返回 429 错误
func TooManyRequests(c *gin.Context, message string) {
	Error(c, http.StatusTooManyRequests, message)
}

// InternalError 返回 500 错误
func InternalError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, message)
}

// ServiceUnavailable 返回 503 错误
func ServiceUnavailable(c *gin.Context, message string) {
	Error(c, http.StatusServiceUnavailable, message)
}
