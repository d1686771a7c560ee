// Package model 定义工作流节点间传递的数据
package model

import (
	"time"

	"blog-idea-api/internal/domain/entity"
)

// BlogContentInput 单次创意/大纲生成输入
type BlogContentInput struct {
	Mode entity.ContentMode
	// Text 为 ideas 模式的主题或 outline 模式的创意
	Text string

	Provider  string
	MaxTokens int
}

// BlogContentOutput 解析后的生成结果
type BlogContentOutput struct {
	Lines []string
	Raw   string
	Meta  LLMUsageMeta
}

// LLMUsageMeta 单次调用的模型与 token 用量
type LLMUsageMeta struct {
	Provider         string
	Model            string
	PromptTokens     int
	CompletionTokens int
	GeneratedAt      time.Time
}
