package chain

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"blog-idea-api/internal/domain/entity"
	wfmodel "blog-idea-api/internal/workflow/model"
)

type recordingModel struct {
	reply     *schema.Message
	err       error
	messages  []*schema.Message
	maxTokens *int
}

func (m *recordingModel) Generate(_ context.Context, input []*schema.Message, opts ...model.Option) (*schema.Message, error) {
	m.messages = input
	m.maxTokens = model.GetCommonOptions(nil, opts...).MaxTokens
	return m.reply, m.err
}

func (m *recordingModel) Stream(context.Context, []*schema.Message, ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	return nil, errors.New("not supported")
}

type staticFactory struct {
	model model.BaseChatModel
	err   error
	asked string
}

func (f *staticFactory) Get(_ context.Context, name string) (model.BaseChatModel, error) {
	f.asked = name
	return f.model, f.err
}

func TestBlogContentChainIdeas(t *testing.T) {
	reply := schema.AssistantMessage("1. Alpha\n\n2. Beta\n3. Gamma", nil)
	reply.ResponseMeta = &schema.ResponseMeta{Usage: &schema.TokenUsage{PromptTokens: 40, CompletionTokens: 12}}
	m := &recordingModel{reply: reply}
	f := &staticFactory{model: m}

	out, err := NewBlogContentChain(f).Invoke(context.Background(), &wfmodel.BlogContentInput{
		Mode:      entity.ContentModeIdeas,
		Text:      "remote work",
		Provider:  "openai",
		MaxTokens: 300,
	})
	if err != nil {
		t.Fatalf("Invoke: %v", err)
	}

	if want := []string{"Alpha", "Beta", "Gamma"}; !reflect.DeepEqual(out.Lines, want) {
		t.Fatalf("lines = %#v, want %#v", out.Lines, want)
	}
	if out.Meta.PromptTokens != 40 || out.Meta.CompletionTokens != 12 {
		t.Fatalf("usage = %+v", out.Meta)
	}
	if f.asked != "openai" {
		t.Fatalf("provider asked = %q", f.asked)
	}
	if m.maxTokens == nil || *m.maxTokens != 300 {
		t.Fatalf("max tokens option = %v", m.maxTokens)
	}
	if len(m.messages) != 2 || m.messages[1].Content != "Generate blog post ideas for the topic: remote work" {
		t.Fatalf("messages = %+v", m.messages)
	}
}

func TestBlogContentChainOutlinePrompt(t *testing.T) {
	m := &recordingModel{reply: schema.AssistantMessage("Intro\nBody", nil)}
	out, err := NewBlogContentChain(&staticFactory{model: m}).Invoke(context.Background(), &wfmodel.BlogContentInput{
		Mode: entity.ContentModeOutline,
		Text: "The Async Manifesto",
	})
	if err != nil {
		t.Fatalf("Invoke: %v", err)
	}
	if m.messages[1].Content != "Create a blog post outline for this idea: The Async Manifesto" {
		t.Fatalf("user prompt = %q", m.messages[1].Content)
	}
	if m.maxTokens != nil {
		t.Fatalf("max tokens should be unset, got %d", *m.maxTokens)
	}
	if len(out.Lines) != 2 {
		t.Fatalf("lines = %#v", out.Lines)
	}
}

func TestBlogContentChainErrors(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("upstream 503")

	if _, err := NewBlogContentChain(&staticFactory{model: &recordingModel{err: boom}}).Invoke(ctx, &wfmodel.BlogContentInput{
		Mode: entity.ContentModeIdeas, Text: "x",
	}); err == nil {
		t.Fatalf("expected model error")
	}

	if _, err := NewBlogContentChain(&staticFactory{err: boom}).Invoke(ctx, &wfmodel.BlogContentInput{
		Mode: entity.ContentModeIdeas, Text: "x",
	}); err == nil {
		t.Fatalf("expected factory error")
	}

	if _, err := NewBlogContentChain(&staticFactory{model: &recordingModel{}}).Invoke(ctx, &wfmodel.BlogContentInput{
		Mode: "poem", Text: "x",
	}); err == nil {
		t.Fatalf("expected mode error")
	}

	if _, err := NewBlogContentChain(nil).Invoke(ctx, &wfmodel.BlogContentInput{}); err == nil {
		t.Fatalf("expected nil factory error")
	}
}
