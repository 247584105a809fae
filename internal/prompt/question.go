package prompt

import (
	"errors"
	"fmt"

	appErrors "github.com/thomas-vilte/czmate/internal/errors"
)

// Kind tells a prompter how to ask a question.
type Kind int

const (
	KindInput Kind = iota
	KindList
	KindConfirm
)

func (k Kind) String() string {
	switch k {
	case KindList:
		return "list"
	case KindConfirm:
		return "confirm"
	default:
		return "input"
	}
}

// Choice is one option of a KindList question.
type Choice struct {
	Name  string
	Value string
}

// Messages resolves localized prompt texts.
type Messages interface {
	GetMessage(messageID string, count int, templateData interface{}) string
}

// Question describes one prompt. Message, Validate, Transform and When only
// read the answers listed in DependsOn, and always get a snapshot.
type Question struct {
	Name      string
	Kind      Kind
	Message   func(answers Answers) string
	Choices   []Choice
	Default   any
	DependsOn []string
	Validate  func(value any, answers Answers) error
	Filter    func(value any) any
	Transform func(value any, answers Answers) string
	When      func(answers Answers) bool
}

// Visible reports whether the question must be asked given prior answers.
func (q Question) Visible(answers Answers) bool {
	if q.When == nil {
		return true
	}
	return q.When(answers.Clone())
}

// Prompt renders the question message.
func (q Question) Prompt(answers Answers) string {
	if q.Message == nil {
		return q.Name
	}
	return q.Message(answers.Clone())
}

// Check runs the validator. Any failure is reported as ErrInvalidAnswer
// carrying the validator message; the validator error stays reachable with
// errors.Is / errors.As.
func (q Question) Check(value any, answers Answers) error {
	if q.Validate == nil {
		return nil
	}
	err := q.Validate(value, answers.Clone())
	if err == nil {
		return nil
	}

	msg := err.Error()
	var appErr *appErrors.AppError
	if errors.As(err, &appErr) {
		msg = appErr.Message
	}
	return appErrors.InvalidAnswer(q.Name, value, msg).WithError(err)
}

// Apply runs the input filter.
func (q Question) Apply(value any) any {
	if q.Filter == nil {
		return value
	}
	return q.Filter(value)
}

// Render formats an answer for display.
func (q Question) Render(value any, answers Answers) string {
	if q.Transform == nil {
		return fmt.Sprint(value)
	}
	return q.Transform(value, answers.Clone())
}
