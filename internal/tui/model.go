// Package tui 提供博客创意生成的终端交互界面
package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"blog-idea-api/internal/domain/entity"
)

const copiedDuration = 2 * time.Second

// 界面文案与网页端一致
const (
	errTopicRequired = "Please enter a blog topic"
	errIdeasFailed   = "Failed to generate blog ideas. Please try again."
	errOutlineFailed = "Failed to generate blog outline. Please try again."
	errShareFailed   = "Failed to generate share link"
)

// API 界面依赖的服务端能力
type API interface {
	Ideas(ctx context.Context, topic string) ([]string, error)
	Outline(ctx context.Context, idea string) ([]string, error)
	Share(ctx context.Context, snapshot *entity.ShareSnapshot) (string, error)
	ShareURL(id string) string
}

type phase int

const (
	phaseIdle phase = iota
	phaseSubmittingTopic
	phaseShowingIdeas
	phaseGeneratingOutline
	phaseShowingOutline
)

func (p phase) String() string {
	switch p {
	case phaseSubmittingTopic:
		return "submitting-topic"
	case phaseShowingIdeas:
		return "showing-ideas"
	case phaseGeneratingOutline:
		return "generating-outline"
	case phaseShowingOutline:
		return "showing-outline"
	default:
		return "idle"
	}
}

type copyTag string

const (
	copiedNone    copyTag = ""
	copiedIdeas   copyTag = "ideas"
	copiedOutline copyTag = "outline"
	copiedShare   copyTag = "share"
)

type focusArea int

const (
	focusInput focusArea = iota
	focusIdeas
)

type ideasMsg struct {
	ideas []string
	err   error
}

type outlineMsg struct {
	outline []string
	err     error
}

type shareMsg struct {
	id  string
	err error
}

type copiedResetMsg struct {
	seq int
}

// Model 会话视图状态
type Model struct {
	api   API
	input textinput.Model

	phase        phase
	focus        focusArea
	topic        string
	ideas        []string
	cursor       int
	selectedIdea *string
	outline      []string

	loading   bool
	err       string
	shareLink string
	copied    copyTag
	copySeq   int

	readOnly bool
	width    int

	copyText func(string) error
}

// NewModel 创建交互模型
func NewModel(api API) Model {
	in := textinput.New()
	in.Placeholder = "Enter a blog topic"
	in.CharLimit = 200
	in.Prompt = "> "
	in.Focus()

	return Model{
		api:      api,
		input:    in,
		copyText: writeClipboard,
	}
}

// NewSharedModel 以只读方式展示分享快照
func NewSharedModel(api API, snapshot *entity.ShareSnapshot) Model {
	m := NewModel(api)
	m.readOnly = true
	m.input.Blur()
	m.focus = focusIdeas
	if snapshot == nil {
		return m
	}
	m.topic = snapshot.Topic
	m.input.SetValue(snapshot.Topic)
	m.ideas = snapshot.Ideas
	m.selectedIdea = snapshot.SelectedIdea
	m.outline = snapshot.Outline
	switch {
	case len(m.outline) > 0:
		m.phase = phaseShowingOutline
	case len(m.ideas) > 0:
		m.phase = phaseShowingIdeas
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = max(10, msg.Width-6)
		return m, nil

	case ideasMsg:
		m.loading = false
		if msg.err != nil {
			m.err = errIdeasFailed
			m.phase = phaseIdle
			return m, nil
		}
		m.ideas = msg.ideas
		m.cursor = 0
		m.phase = phaseShowingIdeas
		if len(m.ideas) > 0 {
			m.setFocus(focusIdeas)
		}
		return m, nil

	case outlineMsg:
		m.loading = false
		if msg.err != nil {
			m.err = errOutlineFailed
			m.phase = phaseShowingIdeas
			return m, nil
		}
		m.outline = msg.outline
		m.phase = phaseShowingOutline
		return m, nil

	case shareMsg:
		m.loading = false
		if msg.err != nil {
			m.err = errShareFailed
			return m, nil
		}
		m.shareLink = m.api.ShareURL(msg.id)
		_ = m.copyText(m.shareLink)
		return m, nil

	case copiedResetMsg:
		if msg.seq == m.copySeq {
			m.copied = copiedNone
		}
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	if m.focus == focusInput && !m.readOnly {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		if m.err != "" {
			m.err = ""
			return m, nil
		}
		if m.shareLink != "" {
			m.shareLink = ""
			return m, nil
		}
		return m, tea.Quit
	case "tab", "shift+tab":
		if !m.readOnly && len(m.ideas) > 0 {
			if m.focus == focusInput {
				m.setFocus(focusIdeas)
			} else {
				m.setFocus(focusInput)
			}
		}
		return m, nil
	}

	if m.focus == focusInput {
		if msg.Type == tea.KeyEnter {
			return m.submitTopic()
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.topic = m.input.Value()
		if m.err != "" {
			m.err = ""
		}
		return m, cmd
	}

	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.ideas)-1 {
			m.cursor++
		}
	case "enter":
		return m.generateOutline()
	case "c":
		return m.copy(copiedIdeas)
	case "o":
		return m.copy(copiedOutline)
	case "l":
		return m.copy(copiedShare)
	case "s":
		return m.createShare()
	case "q":
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) setFocus(f focusArea) {
	m.focus = f
	if f == focusInput {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
}

func (m Model) submitTopic() (tea.Model, tea.Cmd) {
	if m.loading || m.readOnly {
		return m, nil
	}
	topic := strings.TrimSpace(m.input.Value())
	if topic == "" {
		m.err = errTopicRequired
		return m, nil
	}
	m.topic = topic
	m.loading = true
	m.err = ""
	m.ideas = nil
	m.shareLink = ""
	m.phase = phaseSubmittingTopic

	api := m.api
	return m, func() tea.Msg {
		ideas, err := api.Ideas(context.Background(), topic)
		return ideasMsg{ideas: ideas, err: err}
	}
}

func (m Model) generateOutline() (tea.Model, tea.Cmd) {
	if m.loading || m.readOnly || len(m.ideas) == 0 {
		return m, nil
	}
	idea := m.ideas[m.cursor]
	m.selectedIdea = &idea
	m.loading = true
	m.outline = nil
	m.shareLink = ""
	m.phase = phaseGeneratingOutline

	api := m.api
	return m, func() tea.Msg {
		outline, err := api.Outline(context.Background(), idea)
		return outlineMsg{outline: outline, err: err}
	}
}

func (m Model) createShare() (tea.Model, tea.Cmd) {
	if m.loading || m.readOnly {
		return m, nil
	}
	m.loading = true
	snapshot := m.snapshot()

	api := m.api
	return m, func() tea.Msg {
		id, err := api.Share(context.Background(), snapshot)
		return shareMsg{id: id, err: err}
	}
}

func (m Model) copy(tag copyTag) (tea.Model, tea.Cmd) {
	var text string
	switch tag {
	case copiedIdeas:
		text = strings.Join(m.ideas, "\n")
	case copiedOutline:
		text = strings.Join(m.outline, "\n")
	case copiedShare:
		text = m.shareLink
	}
	if text == "" {
		return m, nil
	}
	if err := m.copyText(text); err != nil {
		return m, nil
	}
	m.copySeq++
	m.copied = tag
	seq := m.copySeq
	return m, tea.Tick(copiedDuration, func(time.Time) tea.Msg {
		return copiedResetMsg{seq: seq}
	})
}

func (m Model) snapshot() *entity.ShareSnapshot {
	s := &entity.ShareSnapshot{
		Topic:   m.topic,
		Ideas:   append([]string{}, m.ideas...),
		Outline: append([]string{}, m.outline...),
	}
	if m.selectedIdea != nil {
		idea := *m.selectedIdea
		s.SelectedIdea = &idea
	}
	return s
}

// Run 启动交互界面
func Run(m Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
