package prompt

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/create-fs-app/cli/internal/project"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var enter = tea.KeyMsg{Type: tea.KeyEnter}

func send(t *testing.T, m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	var next tea.Model = m
	for _, msg := range msgs {
		next, cmd = next.(Model).Update(msg)
	}
	out, ok := next.(Model)
	require.True(t, ok)
	return out, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestModel_Select(t *testing.T) {
	m := NewModel([]Question{{Name: "color", Message: "Color?", Kind: KindSelect, Choices: []string{"red", "green", "blue"}}})

	assert.Contains(t, m.View(), "❯ red")

	m, _ = send(t, m, runes("j"))
	assert.Contains(t, m.View(), "❯ green")

	// Wraps around in both directions.
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown})
	assert.Contains(t, m.View(), "❯ red")
	m, _ = send(t, m, runes("k"))
	assert.Contains(t, m.View(), "❯ blue")

	m, cmd := send(t, m, enter)
	assert.True(t, m.Done())
	assert.True(t, isQuit(cmd))
	assert.Equal(t, "blue", m.Answers().String("color"))
}

func TestModel_SelectDefault(t *testing.T) {
	m := NewModel([]Question{{Name: "pm", Kind: KindSelect, Choices: []string{"npm", "yarn", "pnpm"}, Default: "pnpm"}})
	m, _ = send(t, m, enter)
	assert.Equal(t, "pnpm", m.Answers().String("pm"))
}

func TestModel_Confirm(t *testing.T) {
	tests := []struct {
		name string
		def  string
		key  tea.KeyMsg
		want bool
	}{
		{name: "yes key", def: "false", key: runes("y"), want: true},
		{name: "no key", def: "true", key: runes("n"), want: false},
		{name: "enter takes default true", def: "true", key: enter, want: true},
		{name: "enter takes default false", def: "false", key: enter, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewModel([]Question{{Name: "docker", Message: "Docker?", Kind: KindConfirm, Default: tt.def}})
			m, cmd := send(t, m, tt.key)
			assert.True(t, isQuit(cmd))
			assert.Equal(t, tt.want, m.Answers().Bool("docker"))
		})
	}
}

func TestModel_ConfirmHint(t *testing.T) {
	m := NewModel([]Question{{Name: "x", Message: "Sure?", Kind: KindConfirm, Default: "true"}})
	assert.Contains(t, m.View(), "(Y/n)")
	m = NewModel([]Question{{Name: "x", Message: "Sure?", Kind: KindConfirm}})
	assert.Contains(t, m.View(), "(y/N)")
}

func TestModel_Text(t *testing.T) {
	m := NewModel([]Question{{Name: "name", Message: "Name?", Kind: KindText, Default: "my-fs-app"}})

	// Letters that are bindings elsewhere are typed into the field.
	m, _ = send(t, m, runes("j"), runes("k"), runes("y"))
	m, cmd := send(t, m, enter)
	assert.True(t, isQuit(cmd))
	assert.Equal(t, "jky", m.Answers().String("name"))
}

func TestModel_TextDefault(t *testing.T) {
	m := NewModel([]Question{{Name: "name", Kind: KindText, Default: "my-fs-app"}})
	m, _ = send(t, m, enter)
	assert.Equal(t, "my-fs-app", m.Answers().String("name"))
}

func TestModel_TextValidation(t *testing.T) {
	m := NewModel([]Question{{Name: "name", Message: "Name?", Kind: KindText, Validate: project.ValidateName}})

	m, cmd := send(t, m, runes("_hidden"), enter)
	assert.False(t, m.Done())
	assert.False(t, isQuit(cmd))
	assert.Contains(t, m.View(), "cannot start with . or _")

	// Typing clears the error.
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	assert.NotContains(t, m.View(), "cannot start with")
}

func TestModel_Cancel(t *testing.T) {
	for _, msg := range []tea.KeyMsg{{Type: tea.KeyEscape}, {Type: tea.KeyCtrlC}} {
		m := NewModel(ProjectQuestions(true))
		m, cmd := send(t, m, msg)
		assert.True(t, m.Cancelled())
		assert.False(t, m.Done())
		assert.True(t, isQuit(cmd))
	}
}

func TestModel_ViewShowsAnswered(t *testing.T) {
	m := NewModel([]Question{
		{Name: "a", Message: "First?", Kind: KindSelect, Choices: []string{"one", "two"}},
		{Name: "b", Message: "Second?", Kind: KindConfirm, Default: "true"},
		{Name: "c", Message: "Third?", Kind: KindText},
	})
	m, _ = send(t, m, enter, runes("n"))

	view := m.View()
	assert.Contains(t, view, "First?")
	assert.Contains(t, view, "one")
	assert.Contains(t, view, "Second?")
	assert.Contains(t, view, "no")
	assert.Contains(t, view, "? Third?")
}

func TestProjectQuestions(t *testing.T) {
	withName := ProjectQuestions(true)
	withoutName := ProjectQuestions(false)
	require.Len(t, withName, len(withoutName)+1)
	assert.Equal(t, KeyName, withName[0].Name)

	var names []string
	for _, q := range withoutName {
		names = append(names, q.Name)
	}
	assert.Equal(t, []string{
		KeyMonorepo, KeyPackageManager, KeyFrontend, KeyStyling, KeyLinting,
		KeyBackend, KeyDatabase, KeyORM, KeyDocker,
	}, names)
}

func TestProjectFlow(t *testing.T) {
	m := NewModel(ProjectQuestions(true))

	m, _ = send(t, m,
		runes("demo"), enter,
		enter,
		runes("j"), runes("j"), enter,
		enter,
		runes("k"), enter,
		runes("n"),
		enter,
		enter,
		runes("j"), runes("j"), enter,
		enter,
	)
	require.True(t, m.Done())

	cfg, err := ConfigFromAnswers("", m.Answers())
	require.NoError(t, err)
	assert.Equal(t, "demo", cfg.Name)
	assert.Equal(t, project.Turborepo, cfg.Monorepo)
	assert.Equal(t, project.PNPM, cfg.PackageManager)
	assert.Equal(t, project.React, cfg.Apps.Frontend.Framework)
	assert.Equal(t, project.StyledComponents, cfg.Apps.Frontend.Styling)
	assert.False(t, cfg.Apps.Frontend.Linting)
	assert.Equal(t, project.Express, cfg.Apps.Backend.Framework)
	assert.Equal(t, project.MongoDB, cfg.Apps.Backend.Database)
	assert.Equal(t, project.Mongoose, cfg.Apps.Backend.ORM)
	assert.True(t, cfg.Apps.Backend.Docker)
}

func TestConfigFromAnswers(t *testing.T) {
	answers := Answers{
		KeyName:           "ignored",
		KeyMonorepo:       "nx",
		KeyPackageManager: "yarn",
		KeyFrontend:       "next.js",
		KeyStyling:        "tailwind",
		KeyLinting:        "true",
		KeyBackend:        "nest.js",
		KeyDatabase:       "sqlite",
		KeyORM:            "none",
		KeyDocker:         "false",
	}

	cfg, err := ConfigFromAnswers("from-arg", answers)
	require.NoError(t, err)
	assert.Equal(t, "from-arg", cfg.Name)
	assert.Equal(t, project.ORM(""), cfg.Apps.Backend.ORM)
	assert.False(t, cfg.Apps.Backend.Docker)

	answers[KeyDatabase] = "oracle"
	_, err = ConfigFromAnswers("from-arg", answers)
	assert.Error(t, err)
}
