// Package errors 提供统一的错误定义
package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// ErrorCode 错误码类型
type ErrorCode string

// 预定义错误码
const (
	// 通用错误 (1xxx)
	CodeSuccess            ErrorCode = "0"
	CodeUnknown            ErrorCode = "1000"
	CodeInvalidParam       ErrorCode = "1001"
	CodeNotFound           ErrorCode = "1004"
	CodeTooManyRequests    ErrorCode = "1006"
	CodeInternalError      ErrorCode = "1007"
	CodeServiceUnavailable ErrorCode = "1008"
	CodeRequestTooLarge    ErrorCode = "1013"

	// 资源错误 (3xxx)
	CodeShareNotFound ErrorCode = "3001"

	// 业务错误 (4xxx)
	CodeGenerationFailed ErrorCode = "4001"
	CodeInvalidType      ErrorCode = "4002"
	CodeShareFailed      ErrorCode = "4003"
	CodeShareReadFailed  ErrorCode = "4004"
	CodeShareIDExhausted ErrorCode = "4006"
	CodeMissingTopic     ErrorCode = "4007"

	// 外部服务错误 (5xxx)
	CodeCacheError ErrorCode = "5002"
)

// AppError 应用错误
type AppError struct {
	Code       ErrorCode `json:"code"`
	Message    string    `json:"message"`
	Detail     string    `json:"detail,omitempty"`
	HTTPStatus int       `json:"-"`
	Err        error     `json:"-"`
}

// Error 实现 error 接口
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap 返回底层错误
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is 按错误码比较，使 errors.Is 可以匹配预定义错误
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// WithDetail 返回带详细信息的副本
func (e *AppError) WithDetail(detail string) *AppError {
	cp := *e
	cp.Detail = detail
	return &cp
}

// WithError 返回带底层错误的副本
func (e *AppError) WithError(err error) *AppError {
	cp := *e
	cp.Err = err
	return &cp
}

// New 创建新的应用错误
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: codeToHTTPStatus(code),
	}
}

// Wrap 包装错误
func Wrap(err error, code ErrorCode, message string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: codeToHTTPStatus(code),
		Err:        err,
	}
}

// codeToHTTPStatus 错误码转 HTTP 状态码
func codeToHTTPStatus(code ErrorCode) int {
	switch code {
	case CodeSuccess:
		return http.StatusOK
	case CodeInvalidParam, CodeInvalidType, CodeMissingTopic:
		return http.StatusBadRequest
	case CodeNotFound, CodeShareNotFound:
		return http.StatusNotFound
	case CodeRequestTooLarge:
		return http.StatusRequestEntityTooLarge
	case CodeTooManyRequests:
		return http.StatusTooManyRequests
	case CodeServiceUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// 预定义错误，消息即返回给客户端的文案
var (
	ErrInvalidParam       = New(CodeInvalidParam, "Invalid request body")
	ErrRequestTooLarge    = New(CodeRequestTooLarge, "Request body too large")
	ErrTooManyRequests    = New(CodeTooManyRequests, "Too many requests")
	ErrInternalError      = New(CodeInternalError, "Internal server error")
	ErrServiceUnavailable = New(CodeServiceUnavailable, "Service unavailable")

	ErrTopicRequired    = New(CodeMissingTopic, "Topic is required")
	ErrInvalidType      = New(CodeInvalidType, "Invalid request type")
	ErrGenerationFailed = New(CodeGenerationFailed, "Failed to generate content")

	ErrShareNotFound   = New(CodeShareNotFound, "Shared content not found")
	ErrShareFailed     = New(CodeShareFailed, "Failed to generate share link")
	ErrShareReadFailed = New(CodeShareReadFailed, "Failed to retrieve shared content")
)

// IsAppError 检查是否为 AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return stderrors.As(err, &appErr)
}

// AsAppError 将错误转换为 AppError
func AsAppError(err error) *AppError {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr
	}
	return Wrap(err, CodeUnknown, "unknown error")
}
