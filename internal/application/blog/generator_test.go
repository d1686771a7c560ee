package blog

import (
	"context"
	stderrors "errors"
	"reflect"
	"testing"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"blog-idea-api/internal/config"
	workflowport "blog-idea-api/internal/workflow/port"
	apperrors "blog-idea-api/pkg/errors"
)

type fakeModel struct {
	content   string
	err       error
	calls     int
	lastUser  string
	maxTokens *int
}

func (m *fakeModel) Generate(_ context.Context, input []*schema.Message, opts ...model.Option) (*schema.Message, error) {
	m.calls++
	if len(input) > 0 {
		m.lastUser = input[len(input)-1].Content
	}
	m.maxTokens = model.GetCommonOptions(nil, opts...).MaxTokens
	if m.err != nil {
		return nil, m.err
	}
	return schema.AssistantMessage(m.content, nil), nil
}

func (m *fakeModel) Stream(_ context.Context, _ []*schema.Message, _ ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	return schema.StreamReaderFromArray([]*schema.Message{schema.AssistantMessage(m.content, nil)}), nil
}

func newTestGenerator(m *fakeModel, maxTokens int) *Generator {
	cfg := &config.Config{
		LLM: config.LLMConfig{
			DefaultProvider: "openai",
			Providers: map[string]config.ProviderConfig{
				"openai": {Model: "gpt-4o-mini", MaxTokens: maxTokens},
			},
		},
	}
	return NewGenerator(workflowport.StaticModel(m), cfg)
}

func TestGenerateIdeas(t *testing.T) {
	m := &fakeModel{content: "1. Ten Habits of Remote Teams\n2. Async by Default\n\n3. The Home Office Audit\n4. Meetings Are a Smell\n5. Timezones as a Feature"}
	g := newTestGenerator(m, 300)

	ideas, err := g.GenerateIdeas(context.Background(), "  remote work  ")
	if err != nil {
		t.Fatalf("GenerateIdeas: %v", err)
	}
	want := []string{
		"Ten Habits of Remote Teams",
		"Async by Default",
		"The Home Office Audit",
		"Meetings Are a Smell",
		"Timezones as a Feature",
	}
	if !reflect.DeepEqual(ideas, want) {
		t.Fatalf("ideas = %#v, want %#v", ideas, want)
	}
	if m.lastUser != "Generate blog post ideas for the topic: remote work" {
		t.Fatalf("user prompt = %q", m.lastUser)
	}
	if m.maxTokens == nil || *m.maxTokens != 300 {
		t.Fatalf("max tokens = %v, want 300", m.maxTokens)
	}
}

func TestGenerateIdeasRejectsBlankTopic(t *testing.T) {
	m := &fakeModel{content: "unused"}
	g := newTestGenerator(m, 300)

	for _, topic := range []string{"", "   ", "\n\t"} {
		_, err := g.GenerateIdeas(context.Background(), topic)
		if !stderrors.Is(err, apperrors.ErrTopicRequired) {
			t.Fatalf("topic %q: err = %v, want ErrTopicRequired", topic, err)
		}
	}
	if m.calls != 0 {
		t.Fatalf("model called %d times for blank topics", m.calls)
	}
}

func TestGenerateOutlineAcceptsAnyIdea(t *testing.T) {
	m := &fakeModel{content: "1. Introduction\n2. Why it matters\n3. Conclusion"}
	g := newTestGenerator(m, 0)

	outline, err := g.GenerateOutline(context.Background(), "")
	if err != nil {
		t.Fatalf("GenerateOutline: %v", err)
	}
	if len(outline) != 3 || outline[0] != "Introduction" {
		t.Fatalf("outline = %#v", outline)
	}
	if m.maxTokens == nil || *m.maxTokens != DefaultMaxTokens {
		t.Fatalf("max tokens = %v, want default %d", m.maxTokens, DefaultMaxTokens)
	}
}

func TestGenerateWrapsModelFailure(t *testing.T) {
	g := newTestGenerator(&fakeModel{err: stderrors.New("429 from upstream")}, 300)

	_, err := g.GenerateIdeas(context.Background(), "go")
	if !stderrors.Is(err, apperrors.ErrGenerationFailed) {
		t.Fatalf("err = %v, want ErrGenerationFailed", err)
	}
	if got := apperrors.AsAppError(err).Message; got != "Failed to generate content" {
		t.Fatalf("message = %q", got)
	}
}

func TestParseLines(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"numbered with blank", "1. Alpha\n\n2. Beta\n3. Gamma", []string{"Alpha", "Beta", "Gamma"}},
		{"unnumbered", "Intro\nBody", []string{"Intro", "Body"}},
		{"empty", "", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseLines(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("ParseLines(%q) = %#v, want %#v", tt.in, got, tt.want)
			}
		})
	}
}
