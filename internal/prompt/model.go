package prompt

import (
	"errors"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	oerrors "github.com/create-fs-app/cli/internal/errors"
	"github.com/create-fs-app/cli/internal/output"
)

// Model is the bubbletea model that walks through a list of questions.
type Model struct {
	questions []Question
	keys      KeyMap

	index  int
	cursor int
	input  textinput.Model
	err    error

	answers   Answers
	cancelled bool
}

// NewModel returns a model positioned on the first question.
func NewModel(questions []Question) Model {
	m := Model{
		questions: questions,
		keys:      DefaultKeyMap,
		answers:   Answers{},
	}
	m.enter()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if q, ok := m.current(); ok && q.Kind == KindText {
		return textinput.Blink
	}
	return nil
}

// Answers returns the answers collected so far.
func (m Model) Answers() Answers {
	return m.answers
}

// Done reports whether every question has been answered.
func (m Model) Done() bool {
	return m.index >= len(m.questions)
}

// Cancelled reports whether the user aborted the flow.
func (m Model) Cancelled() bool {
	return m.cancelled
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, isKey := msg.(tea.KeyMsg)
	q, active := m.current()
	if !active {
		return m, tea.Quit
	}

	if !isKey {
		if q.Kind == KindText {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if key.Matches(keyMsg, m.keys.Cancel) {
		m.cancelled = true
		return m, tea.Quit
	}

	switch q.Kind {
	case KindSelect:
		switch {
		case key.Matches(keyMsg, m.keys.Up):
			m.cursor = (m.cursor - 1 + len(q.Choices)) % len(q.Choices)
		case key.Matches(keyMsg, m.keys.Down):
			m.cursor = (m.cursor + 1) % len(q.Choices)
		case key.Matches(keyMsg, m.keys.Submit):
			return m.answer(q.Choices[m.cursor])
		}
	case KindConfirm:
		switch {
		case key.Matches(keyMsg, m.keys.Yes):
			return m.answer("true")
		case key.Matches(keyMsg, m.keys.No):
			return m.answer("false")
		case key.Matches(keyMsg, m.keys.Submit):
			return m.answer(strconv.FormatBool(q.defaultBool()))
		}
	case KindText:
		if key.Matches(keyMsg, m.keys.Submit) {
			value := strings.TrimSpace(m.input.Value())
			if value == "" {
				value = q.Default
			}
			if q.Validate != nil {
				if err := q.Validate(value); err != nil {
					m.err = err
					return m, nil
				}
			}
			return m.answer(value)
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.err = nil
		return m, cmd
	}
	return m, nil
}

// answer records value for the current question and advances.
func (m Model) answer(value string) (tea.Model, tea.Cmd) {
	m.answers[m.questions[m.index].Name] = value
	m.index++
	m.err = nil
	if m.Done() {
		return m, tea.Quit
	}
	m.enter()
	if m.questions[m.index].Kind == KindText {
		return m, textinput.Blink
	}
	return m, nil
}

// enter prepares the current question's input state.
func (m *Model) enter() {
	q, ok := m.current()
	if !ok {
		return
	}
	m.cursor = q.defaultIndex()
	if q.Kind == KindText {
		m.input = textinput.New()
		m.input.Prompt = ""
		m.input.Placeholder = q.Default
		m.input.Focus()
	}
}

func (m Model) current() (Question, bool) {
	if m.index >= len(m.questions) {
		return Question{}, false
	}
	return m.questions[m.index], true
}

// View implements tea.Model.
func (m Model) View() string {
	var sb strings.Builder
	for i := 0; i < m.index && i < len(m.questions); i++ {
		q := m.questions[i]
		sb.WriteString(output.FormatCheckmark(q.Message + " " + output.StyleNoun.Render(displayAnswer(q, m.answers[q.Name]))))
		sb.WriteString("\n")
	}

	q, ok := m.current()
	if !ok || m.cancelled {
		return sb.String()
	}

	sb.WriteString(output.StyleAction.Render("? " + q.Message))
	switch q.Kind {
	case KindSelect:
		sb.WriteString("\n")
		for i, c := range q.Choices {
			if i == m.cursor {
				sb.WriteString(output.StyleNoun.Render("❯ " + c))
			} else {
				sb.WriteString("  " + c)
			}
			sb.WriteString("\n")
		}
		sb.WriteString(output.StyleDim.Render(helpLine(m.keys.Up, m.keys.Down, m.keys.Submit, m.keys.Cancel)))
	case KindConfirm:
		if q.defaultBool() {
			sb.WriteString(output.StyleDim.Render(" (Y/n)"))
		} else {
			sb.WriteString(output.StyleDim.Render(" (y/N)"))
		}
	case KindText:
		sb.WriteString(" ")
		sb.WriteString(m.input.View())
		if m.err != nil {
			sb.WriteString("\n")
			sb.WriteString(output.FormatStatusLine(output.StatusFailed, errorMessage(m.err)))
		}
	}
	sb.WriteString("\n")
	return sb.String()
}

func displayAnswer(q Question, value string) string {
	if q.Kind != KindConfirm {
		return value
	}
	if v, _ := strconv.ParseBool(value); v {
		return "yes"
	}
	return "no"
}

func helpLine(bindings ...key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}

// errorMessage prefers the short message of a DetailError.
func errorMessage(err error) string {
	var detail *oerrors.DetailError
	if errors.As(err, &detail) {
		return detail.Message
	}
	return err.Error()
}
