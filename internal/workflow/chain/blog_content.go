package chain

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	"blog-idea-api/internal/domain/entity"
	llmctx "blog-idea-api/internal/domain/service"
	wfmodel "blog-idea-api/internal/workflow/model"
	wfnode "blog-idea-api/internal/workflow/node"
	workflowport "blog-idea-api/internal/workflow/port"
	workflowprompt "blog-idea-api/internal/workflow/prompt"
)

var defaultPromptRegistry = workflowprompt.NewRegistry()

// BlogContentChain 渲染提示词 -> 调用 LLM -> 按行解析
type BlogContentChain struct {
	factory workflowport.ChatModelFactory

	chainOnce sync.Once
	chain     compose.Runnable[*wfmodel.BlogContentInput, *wfmodel.BlogContentOutput]
	chainErr  error
}

func NewBlogContentChain(factory workflowport.ChatModelFactory) *BlogContentChain {
	return &BlogContentChain{factory: factory}
}

func (c *BlogContentChain) Invoke(ctx context.Context, in *wfmodel.BlogContentInput) (*wfmodel.BlogContentOutput, error) {
	if c == nil || c.factory == nil {
		return nil, fmt.Errorf("llm factory not configured")
	}
	if in == nil {
		return nil, fmt.Errorf("input is nil")
	}

	chain, err := c.getChain()
	if err != nil {
		return nil, err
	}
	return chain.Invoke(ctx, in)
}

type blogContentChainState struct {
	In       *wfmodel.BlogContentInput
	Messages []*schema.Message
	OutMsg   *schema.Message
}

func (c *BlogContentChain) getChain() (compose.Runnable[*wfmodel.BlogContentInput, *wfmodel.BlogContentOutput], error) {
	c.chainOnce.Do(func() {
		c.chain, c.chainErr = c.buildChain(context.Background())
	})
	return c.chain, c.chainErr
}

func (c *BlogContentChain) buildChain(ctx context.Context) (compose.Runnable[*wfmodel.BlogContentInput, *wfmodel.BlogContentOutput], error) {
	chain := compose.NewChain[*wfmodel.BlogContentInput, *wfmodel.BlogContentOutput]()

	chain.AppendLambda(
		compose.InvokableLambda(func(_ context.Context, in *wfmodel.BlogContentInput) (*blogContentChainState, error) {
			if in == nil {
				return nil, fmt.Errorf("input is nil")
			}
			if !in.Mode.Valid() {
				return nil, fmt.Errorf("unknown content mode: %q", in.Mode)
			}
			return &blogContentChainState{In: in}, nil
		}),
		compose.WithNodeName("blog_content.init"),
	)

	chain.AppendLambda(
		compose.InvokableLambda(func(ctx context.Context, st *blogContentChainState) (*blogContentChainState, error) {
			msgs, err := formatBlogContentMessages(ctx, st.In)
			if err != nil {
				return nil, err
			}
			st.Messages = msgs
			return st, nil
		}),
		compose.WithNodeName("blog_content.template"),
	)

	chain.AppendLambda(
		compose.InvokableLambda(func(ctx context.Context, st *blogContentChainState) (*blogContentChainState, error) {
			provider := strings.TrimSpace(st.In.Provider)
			ctx = llmctx.WithWorkflowProvider(ctx, "blog_"+string(st.In.Mode), provider)

			chatModel, err := c.factory.Get(ctx, provider)
			if err != nil {
				return nil, err
			}

			var opts []model.Option
			if st.In.MaxTokens > 0 {
				opts = append(opts, model.WithMaxTokens(st.In.MaxTokens))
			}

			outMsg, err := chatModel.Generate(ctx, st.Messages, opts...)
			if err != nil {
				return nil, err
			}
			if outMsg == nil {
				return nil, fmt.Errorf("empty llm response")
			}
			st.OutMsg = outMsg
			return st, nil
		}),
		compose.WithNodeName("blog_content.llm"),
	)

	chain.AppendLambda(
		compose.InvokableLambda(func(_ context.Context, st *blogContentChainState) (*wfmodel.BlogContentOutput, error) {
			out := &wfmodel.BlogContentOutput{
				Lines: wfnode.SplitNumberedLines(st.OutMsg.Content),
				Raw:   st.OutMsg.Content,
				Meta: wfmodel.LLMUsageMeta{
					Provider:    strings.TrimSpace(st.In.Provider),
					GeneratedAt: time.Now().UTC(),
				},
			}
			if rm := st.OutMsg.ResponseMeta; rm != nil && rm.Usage != nil {
				out.Meta.PromptTokens = rm.Usage.PromptTokens
				out.Meta.CompletionTokens = rm.Usage.CompletionTokens
			}
			return out, nil
		}),
		compose.WithNodeName("blog_content.parse"),
	)

	return chain.Compile(ctx)
}

func formatBlogContentMessages(ctx context.Context, in *wfmodel.BlogContentInput) ([]*schema.Message, error) {
	var (
		id   workflowprompt.PromptID
		vars map[string]any
	)
	switch in.Mode {
	case entity.ContentModeIdeas:
		id, vars = workflowprompt.PromptBlogIdeasV1, map[string]any{"topic": in.Text}
	case entity.ContentModeOutline:
		id, vars = workflowprompt.PromptBlogOutlineV1, map[string]any{"idea": in.Text}
	default:
		return nil, fmt.Errorf("unknown content mode: %q", in.Mode)
	}

	tpl, err := defaultPromptRegistry.ChatTemplate(id)
	if err != nil {
		return nil, err
	}
	return tpl.Format(ctx, vars)
}
