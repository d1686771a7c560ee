// Package entity 定义领域实体
package entity

import "strings"

// ShareSnapshot 分享快照，创建后只读，到期由存储自动删除
type ShareSnapshot struct {
	Topic        string   `json:"topic"`
	Ideas        []string `json:"ideas"`
	SelectedIdea *string  `json:"selectedIdea"`
	Outline      []string `json:"outline"`
}

// HasSelection 是否选中了某个创意
func (s *ShareSnapshot) HasSelection() bool {
	return s != nil && s.SelectedIdea != nil && strings.TrimSpace(*s.SelectedIdea) != ""
}

// ContentMode 生成模式
type ContentMode string

const (
	ContentModeIdeas   ContentMode = "ideas"
	ContentModeOutline ContentMode = "outline"
)

// Valid 是否为已知模式
func (m ContentMode) Valid() bool {
	return m == ContentModeIdeas || m == ContentModeOutline
}
