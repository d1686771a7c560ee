// Package blog 提供博客创意与大纲生成用例
package blog

import (
	"context"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"blog-idea-api/internal/config"
	"blog-idea-api/internal/domain/entity"
	workflowchain "blog-idea-api/internal/workflow/chain"
	wfmodel "blog-idea-api/internal/workflow/model"
	wfnode "blog-idea-api/internal/workflow/node"
	workflowport "blog-idea-api/internal/workflow/port"
	apperrors "blog-idea-api/pkg/errors"
	"blog-idea-api/pkg/logger"
	"blog-idea-api/pkg/metrics"
	"blog-idea-api/pkg/tracer"
)

// DefaultMaxTokens 单次生成的输出 token 上限
const DefaultMaxTokens = 300

// Generator 博客内容生成器
type Generator struct {
	chain     *workflowchain.BlogContentChain
	provider  string
	maxTokens int
}

// NewGenerator 创建生成器，使用默认 provider 的 max_tokens 配置
func NewGenerator(factory workflowport.ChatModelFactory, cfg *config.Config) *Generator {
	provider := cfg.LLM.DefaultProvider
	maxTokens := cfg.LLM.Providers[provider].MaxTokens
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}
	return &Generator{
		chain:     workflowchain.NewBlogContentChain(factory),
		provider:  provider,
		maxTokens: maxTokens,
	}
}

// GenerateIdeas 根据主题生成创意标题，主题去除空白后不能为空
func (g *Generator) GenerateIdeas(ctx context.Context, topic string) ([]string, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, apperrors.ErrTopicRequired
	}
	return g.generate(ctx, entity.ContentModeIdeas, topic)
}

// GenerateOutline 根据创意生成大纲，创意内容不做校验
func (g *Generator) GenerateOutline(ctx context.Context, idea string) ([]string, error) {
	return g.generate(ctx, entity.ContentModeOutline, idea)
}

func (g *Generator) generate(ctx context.Context, mode entity.ContentMode, text string) ([]string, error) {
	ctx = logger.WithContext(ctx, logger.ModeKey, string(mode))
	ctx, span := tracer.Start(ctx, "blog.generate",
		trace.WithAttributes(
			attribute.String("blog.mode", string(mode)),
			attribute.Int("blog.input_length", len(text)),
		))
	defer span.End()
	start := time.Now()

	out, err := g.chain.Invoke(ctx, &wfmodel.BlogContentInput{
		Mode:      mode,
		Text:      text,
		Provider:  g.provider,
		MaxTokens: g.maxTokens,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		metrics.GenerationTotal.WithLabelValues(string(mode), "error").Inc()
		logger.Error(ctx, "content generation failed", err,
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return nil, apperrors.ErrGenerationFailed.WithError(err)
	}

	span.SetAttributes(attribute.Int("blog.lines", len(out.Lines)))
	metrics.GenerationTotal.WithLabelValues(string(mode), "success").Inc()
	metrics.GeneratedLines.WithLabelValues(string(mode)).Observe(float64(len(out.Lines)))
	logger.Debug(ctx, "content generated",
		"lines", len(out.Lines),
		"prompt_tokens", out.Meta.PromptTokens,
		"completion_tokens", out.Meta.CompletionTokens,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return out.Lines, nil
}

// ParseLines 将模型原始输出拆分为条目列表
func ParseLines(text string) []string {
	return wfnode.SplitNumberedLines(text)
}
