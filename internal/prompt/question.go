package prompt

import "strconv"

// Kind is the input style of a question.
type Kind int

const (
	// KindSelect picks one of Choices.
	KindSelect Kind = iota
	// KindConfirm is a yes/no question.
	KindConfirm
	// KindText reads a free-form line.
	KindText
)

// Question is one step of the flow.
type Question struct {
	// Name keys the answer.
	Name    string
	Message string
	Kind    Kind

	// Choices are the options of a KindSelect question.
	Choices []string

	// Default is the preselected choice or the text used for empty input.
	// For KindConfirm it is parsed with strconv.ParseBool.
	Default string

	// Validate, when set, rejects a text answer. The question stays active
	// and the error is shown under it.
	Validate func(string) error
}

// Answers maps question names to answers. Confirm answers are stored as
// "true" or "false".
type Answers map[string]string

// String returns the answer to the named question.
func (a Answers) String(name string) string {
	return a[name]
}

// Bool returns the answer to the named confirm question.
func (a Answers) Bool(name string) bool {
	v, _ := strconv.ParseBool(a[name])
	return v
}

func (q Question) defaultBool() bool {
	v, err := strconv.ParseBool(q.Default)
	return err == nil && v
}

func (q Question) defaultIndex() int {
	for i, c := range q.Choices {
		if c == q.Default {
			return i
		}
	}
	return 0
}
