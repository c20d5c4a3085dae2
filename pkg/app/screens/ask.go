package screens

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/gita/pkg/app/components"
	"github.com/kerbaras/gita/pkg/app/styles"
	"github.com/kerbaras/gita/pkg/data"
	"go.uber.org/zap"
)

// PromptExamples are offered as starting questions.
var PromptExamples = []string{
	"I'm anxious about my career",
	"How do I deal with difficult relationships?",
	"I'm struggling with self-doubt",
	"How to find inner peace?",
}

type askState int

const (
	askInput askState = iota
	askThinking
	askAnswered
)

type answerMsg struct {
	seq   int
	verse data.Verse
	err   error
}

// AskScreen matches a free-text question to a verse.
type AskScreen struct {
	deps     Deps
	theme    *styles.Theme
	state    askState
	input    textinput.Model
	loader   *components.Loader
	question string
	answer   data.Verse
	saved    bool
	prompt   int
	seq      int
	cancel   context.CancelFunc
	width    int
	height   int
}

func NewAskScreen(deps Deps, theme *styles.Theme) *AskScreen {
	ti := textinput.New()
	ti.Placeholder = "What are you facing today?"
	ti.CharLimit = 280
	ti.Width = 60
	ti.Focus()

	return &AskScreen{
		deps:   deps,
		theme:  theme,
		input:  ti,
		loader: components.NewLoader("Seeking wisdom..."),
		prompt: -1,
	}
}

func (s *AskScreen) Title() string { return "💬 Ask" }

func (s *AskScreen) Capturing() bool { return s.state == askInput }

func (s *AskScreen) Init() tea.Cmd {
	if s.state == askInput {
		return textinput.Blink
	}
	return nil
}

func (s *AskScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		return s, nil

	case answerMsg:
		if msg.seq != s.seq || s.state != askThinking {
			return s, nil
		}
		s.loader.Stop()
		s.cancel = nil
		if msg.err != nil {
			s.state = askInput
			s.input.Focus()
			if errors.Is(msg.err, context.Canceled) {
				return s, nil
			}
			s.deps.logger().Warn("Ask failed", zap.Error(msg.err))
			return s, errorNotice("Something went wrong. Please try again.")
		}
		s.answer = msg.verse
		s.saved = s.deps.Favorites.IsSaved(msg.verse.ID)
		s.state = askAnswered
		return s, nil

	case favoritesChangedMsg:
		if s.state == askAnswered {
			s.saved = s.deps.Favorites.IsSaved(s.answer.ID)
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	var cmds []tea.Cmd
	if s.input.Focused() {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		cmds = append(cmds, cmd)
	}
	cmds = append(cmds, s.loader.Update(msg))
	return s, tea.Batch(cmds...)
}

func (s *AskScreen) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch s.state {
	case askThinking:
		if msg.String() == "esc" && s.cancel != nil {
			s.cancel()
		}
		return s, nil

	case askAnswered:
		switch msg.String() {
		case "n", "esc":
			return s, s.reset()
		case "s":
			return s, toggleSave(s.deps, s.answer)
		case "c":
			return s, shareVerse(s.deps, s.answer)
		}
		return s, nil
	}

	switch msg.String() {
	case "enter":
		return s, s.submit()
	case "ctrl+p":
		s.prompt = (s.prompt + 1) % len(PromptExamples)
		s.input.SetValue(PromptExamples[s.prompt])
		s.input.CursorEnd()
		return s, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// submit starts matching the current question. Blank questions are ignored.
func (s *AskScreen) submit() tea.Cmd {
	question := strings.TrimSpace(s.input.Value())
	if question == "" {
		return nil
	}

	s.question = question
	s.state = askThinking
	s.input.Blur()
	s.seq++

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	seq := s.seq
	matcher := s.deps.Matcher
	delay := s.deps.ThinkDelay
	ask := func() tea.Msg {
		defer cancel()
		v, err := matcher.Ask(ctx, question, delay)
		return answerMsg{seq: seq, verse: v, err: err}
	}

	s.deps.logger().Debug("Asking", zap.String("question", question))
	return tea.Batch(s.loader.Start(), ask)
}

func (s *AskScreen) reset() tea.Cmd {
	s.state = askInput
	s.question = ""
	s.answer = data.Verse{}
	s.input.SetValue("")
	s.input.Focus()
	return textinput.Blink
}

func (s *AskScreen) View() string {
	header := s.theme.TitleStyle.Render("Ask Krishna") + "\n" +
		s.theme.MutedStyle.Render("Share what's on your mind, and receive divine guidance")

	var body, help string
	switch s.state {
	case askThinking:
		body = s.loader.View(s.theme)
		help = "esc: cancel"

	case askAnswered:
		body = fmt.Sprintf("%s\n%s\n\n%s\n%s",
			s.theme.MutedStyle.Render("Your Question:"),
			s.theme.TextStyle.Render(fmt.Sprintf("\"%s\"", s.question)),
			s.theme.SectionLabelStyle.Render("🙏 Krishna's Guidance"),
			components.VerseCard(s.theme, s.answer, components.CardOptions{
				Width: cardWidth(s.width),
				Saved: s.saved,
			}),
		)
		help = fmt.Sprintf("s: %s • c: share • n: ask another question • tab: switch • q: quit", saveLabel(s.saved))

	default:
		var prompts strings.Builder
		prompts.WriteString(s.theme.SubtitleStyle.Render("💭 What are you seeking guidance for?"))
		prompts.WriteString("\n")
		for i, p := range PromptExamples {
			style := s.theme.TagStyle
			if i == s.prompt {
				style = s.theme.SelectedTagStyle
			}
			prompts.WriteString(style.Render(p))
			prompts.WriteString("\n")
		}

		body = fmt.Sprintf("%s\n%s", prompts.String(), s.theme.FocusedInputStyle.Render(s.input.View()))
		help = "enter: 🙏 seek guidance • ctrl+p: next example • tab: switch • ctrl+c: quit"
	}

	return fmt.Sprintf("%s\n\n%s\n\n%s", header, body, s.theme.HelpStyle.Render(help))
}
