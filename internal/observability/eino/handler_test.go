package eino

import (
	"context"
	"errors"
	"testing"

	einocb "github.com/cloudwego/eino/callbacks"
	"github.com/cloudwego/eino/components/model"
	"github.com/prometheus/client_golang/prometheus/testutil"

	llmctx "blog-idea-api/internal/domain/service"
	"blog-idea-api/pkg/metrics"
)

func TestChatModelHandlerRecordsSuccess(t *testing.T) {
	h := newChatModelCallbackHandler()
	ctx := llmctx.WithWorkflowProvider(context.Background(), "blog_ideas", "test-success")
	info := &einocb.RunInfo{Name: "blog_content.llm", Type: "OpenAI"}

	ctx = h.OnStart(ctx, info, &model.CallbackInput{Config: &model.Config{Model: "gpt-4o-mini"}})
	h.OnEnd(ctx, info, &model.CallbackOutput{
		TokenUsage: &model.TokenUsage{PromptTokens: 30, CompletionTokens: 70},
	})

	if got := testutil.ToFloat64(metrics.LLMCallTotal.WithLabelValues("blog_ideas", "test-success", "gpt-4o-mini", "success")); got != 1 {
		t.Fatalf("call total = %v, want 1", got)
	}
	if got := testutil.ToFloat64(metrics.LLMTokensUsed.WithLabelValues("blog_ideas", "test-success", "gpt-4o-mini", "completion")); got != 70 {
		t.Fatalf("completion tokens = %v, want 70", got)
	}
}

func TestChatModelHandlerRecordsError(t *testing.T) {
	h := newChatModelCallbackHandler()
	ctx := llmctx.WithWorkflowProvider(context.Background(), "blog_outline", "test-error")

	ctx = h.OnStart(ctx, nil, nil)
	h.OnError(ctx, nil, errors.New("timeout"))

	if got := testutil.ToFloat64(metrics.LLMCallTotal.WithLabelValues("blog_outline", "test-error", "unknown", "error")); got != 1 {
		t.Fatalf("error total = %v, want 1", got)
	}
}

func TestInitIsIdempotent(t *testing.T) {
	if newGlobalHandler() == nil {
		t.Fatalf("global handler is nil")
	}
	Init()
	Init()
}
