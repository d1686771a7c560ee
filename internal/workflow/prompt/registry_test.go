package prompt

import (
	"context"
	"strings"
	"testing"

	"github.com/cloudwego/eino/schema"
)

func TestChatTemplateFormatsIdeas(t *testing.T) {
	r := NewRegistry()
	tpl, err := r.ChatTemplate(PromptBlogIdeasV1)
	if err != nil {
		t.Fatalf("ChatTemplate: %v", err)
	}

	msgs, err := tpl.Format(context.Background(), map[string]any{"topic": "remote work"})
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if len(msgs) != 2 {
		t.Fatalf("got %d messages, want 2", len(msgs))
	}
	if msgs[0].Role != schema.System || !strings.Contains(msgs[0].Content, "5 unique, engaging blog post ideas") {
		t.Fatalf("unexpected system message: %+v", msgs[0])
	}
	if msgs[1].Role != schema.User || msgs[1].Content != "Generate blog post ideas for the topic: remote work" {
		t.Fatalf("unexpected user message: %q", msgs[1].Content)
	}
}

func TestChatTemplateFormatsOutline(t *testing.T) {
	r := NewRegistry()
	tpl, err := r.ChatTemplate(PromptBlogOutlineV1)
	if err != nil {
		t.Fatalf("ChatTemplate: %v", err)
	}
	msgs, err := tpl.Format(context.Background(), map[string]any{"idea": "Async {first} teams"})
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if !strings.Contains(msgs[0].Content, "5-6 section outline") {
		t.Fatalf("unexpected system message: %q", msgs[0].Content)
	}
	if msgs[1].Content != "Create a blog post outline for this idea: Async {first} teams" {
		t.Fatalf("unexpected user message: %q", msgs[1].Content)
	}
}

func TestChatTemplateCachesAndRejectsUnknown(t *testing.T) {
	r := NewRegistry()
	a, err := r.ChatTemplate(PromptBlogIdeasV1)
	if err != nil {
		t.Fatalf("ChatTemplate: %v", err)
	}
	b, _ := r.ChatTemplate(PromptBlogIdeasV1)
	if a != b {
		t.Fatalf("expected cached template")
	}
	if _, err := r.ChatTemplate("nope_v1"); err == nil {
		t.Fatalf("expected error for unknown prompt")
	}
}
