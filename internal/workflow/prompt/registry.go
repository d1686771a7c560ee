// Package prompt 管理内嵌的提示词模板
package prompt

import (
	"embed"
	"fmt"
	"strings"
	"sync"

	einoprompt "github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/schema"
)

//go:embed templates/*.txt
var templatesFS embed.FS

type PromptID string

const (
	PromptBlogIdeasV1   PromptID = "blog_ideas_v1"
	PromptBlogOutlineV1 PromptID = "blog_outline_v1"
)

// Registry 按 PromptID 缓存已解析的 ChatTemplate
type Registry struct {
	mu    sync.RWMutex
	cache map[PromptID]einoprompt.ChatTemplate
}

func NewRegistry() *Registry {
	return &Registry{
		cache: make(map[PromptID]einoprompt.ChatTemplate),
	}
}

func (r *Registry) ChatTemplate(id PromptID) (einoprompt.ChatTemplate, error) {
	if r == nil {
		return nil, fmt.Errorf("prompt registry is nil")
	}

	r.mu.RLock()
	if tpl, ok := r.cache[id]; ok {
		r.mu.RUnlock()
		return tpl, nil
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()
	if tpl, ok := r.cache[id]; ok {
		return tpl, nil
	}

	system, user, err := r.Texts(id)
	if err != nil {
		return nil, err
	}

	tpl := einoprompt.FromMessages(
		schema.FString,
		schema.SystemMessage(system),
		schema.UserMessage(user),
	)
	r.cache[id] = tpl
	return tpl, nil
}

// Texts 返回模板的 system / user 原文
func (r *Registry) Texts(id PromptID) (system string, user string, err error) {
	if !knownPrompt(id) {
		return "", "", fmt.Errorf("unknown prompt id: %s", id)
	}
	if system, err = readEmbeddedText("templates/" + string(id) + ".system.txt"); err != nil {
		return "", "", err
	}
	if user, err = readEmbeddedText("templates/" + string(id) + ".user.txt"); err != nil {
		return "", "", err
	}
	return system, user, nil
}

func knownPrompt(id PromptID) bool {
	switch id {
	case PromptBlogIdeasV1, PromptBlogOutlineV1:
		return true
	default:
		return false
	}
}

func readEmbeddedText(path string) (string, error) {
	b, err := templatesFS.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}
