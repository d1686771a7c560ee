// Package dto 提供 HTTP 层数据传输对象
package dto

import (
	"blog-idea-api/internal/domain/entity"
	apperrors "blog-idea-api/pkg/errors"
)

// GenerateRequest 生成请求，type 决定读取 topic 还是 idea
type GenerateRequest struct {
	Type  string `json:"type"`
	Topic string `json:"topic"`
	Idea  string `json:"idea"`
}

// GenerateCommand 解析后的生成请求，只能是 IdeasRequest 或 OutlineRequest
type GenerateCommand interface {
	Mode() entity.ContentMode
}

// IdeasRequest 按主题生成创意
type IdeasRequest struct {
	Topic string
}

func (IdeasRequest) Mode() entity.ContentMode { return entity.ContentModeIdeas }

// OutlineRequest 按创意生成大纲
type OutlineRequest struct {
	Idea string
}

func (OutlineRequest) Mode() entity.ContentMode { return entity.ContentModeOutline }

// Command 将原始请求转换为具体命令，未知类型返回 ErrInvalidType
func (r *GenerateRequest) Command() (GenerateCommand, error) {
	switch entity.ContentMode(r.Type) {
	case entity.ContentModeIdeas:
		return IdeasRequest{Topic: r.Topic}, nil
	case entity.ContentModeOutline:
		return OutlineRequest{Idea: r.Idea}, nil
	default:
		return nil, apperrors.ErrInvalidType
	}
}

// ShareRequest 创建分享链接请求，内容按原样保存
type ShareRequest struct {
	Topic        string   `json:"topic"`
	Ideas        []string `json:"ideas"`
	SelectedIdea *string  `json:"selectedIdea"`
	Outline      []string `json:"outline"`
}

// ToSnapshot 转换为分享快照
func (r *ShareRequest) ToSnapshot() *entity.ShareSnapshot {
	return &entity.ShareSnapshot{
		Topic:        r.Topic,
		Ideas:        r.Ideas,
		SelectedIdea: r.SelectedIdea,
		Outline:      r.Outline,
	}
}
