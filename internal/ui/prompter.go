package ui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	domainErrors "github.com/thomas-vilte/czmate/internal/errors"
	"github.com/thomas-vilte/czmate/internal/prompt"
)

var (
	questionMark = color.New(color.FgGreen, color.Bold)
	invalidMark  = color.New(color.FgRed)
)

// TerminalPrompter asks the catalog questions line by line.
type TerminalPrompter struct {
	in   *bufio.Reader
	out  io.Writer
	msgs Messages
}

func NewTerminalPrompter(in io.Reader, out io.Writer, msgs Messages) *TerminalPrompter {
	return &TerminalPrompter{in: bufio.NewReader(in), out: out, msgs: msgs}
}

// Prompt asks every visible question not already answered by seed. Seeded
// answers are validated like typed ones and asked for again when invalid. A
// question is asked again until its answer passes validation. End of input
// cancels the prompt.
func (p *TerminalPrompter) Prompt(ctx context.Context, catalog prompt.Catalog, seed prompt.Answers) (prompt.Answers, error) {
	answers := seed.Clone()

	for _, q := range catalog {
		if !q.Visible(answers) {
			delete(answers, q.Name)
			continue
		}
		if answers.Has(q.Name) {
			given := answers[q.Name]
			err := q.Check(given, answers)
			if err == nil {
				answers[q.Name] = q.Apply(given)
				continue
			}
			p.printInvalid(messageOf(err))
			delete(answers, q.Name)
		}

		value, err := p.ask(ctx, q, answers)
		if err != nil {
			return nil, err
		}
		answers[q.Name] = q.Apply(value)

		if q.Transform != nil {
			_, _ = fmt.Fprintf(p.out, "  %s\n", q.Render(answers[q.Name], answers))
		}
	}
	return answers, nil
}

func (p *TerminalPrompter) ask(ctx context.Context, q prompt.Question, answers prompt.Answers) (any, error) {
	for {
		if err := ctx.Err(); err != nil {
			return nil, domainErrors.ErrPromptCancelled.WithError(err)
		}

		p.printQuestion(q, answers)
		line, err := p.readLine()
		if err != nil {
			return nil, err
		}

		value, msg := p.parse(q, line)
		if msg != "" {
			p.printInvalid(msg)
			continue
		}

		if err := q.Check(value, answers); err != nil {
			p.printInvalid(messageOf(err))
			continue
		}
		return value, nil
	}
}

func (p *TerminalPrompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", domainErrors.ErrPromptCancelled.WithError(err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (p *TerminalPrompter) printQuestion(q prompt.Question, answers prompt.Answers) {
	_, _ = fmt.Fprintf(p.out, "%s %s", questionMark.Sprint("?"), q.Prompt(answers))

	switch q.Kind {
	case prompt.KindList:
		_, _ = fmt.Fprintln(p.out)
		for i, c := range q.Choices {
			marker := " "
			if c.Value == q.Default {
				marker = Info.Sprint(">")
			}
			_, _ = fmt.Fprintf(p.out, " %s %2d) %s\n", marker, i+1, c.Name)
		}
		_, _ = fmt.Fprintf(p.out, "  %s ", p.message("ui.choice_hint", "Enter a number (1-{{.Count}}):", map[string]interface{}{
			"Count": len(q.Choices),
		}))
	case prompt.KindConfirm:
		if def, _ := q.Default.(bool); def {
			_, _ = fmt.Fprintf(p.out, " %s ", Dim.Sprint(p.message("ui.confirm_yes_default", "(Y/n)", nil)))
		} else {
			_, _ = fmt.Fprintf(p.out, " %s ", Dim.Sprint(p.message("ui.confirm_no_default", "(y/N)", nil)))
		}
	default:
		if q.Default != nil {
			_, _ = fmt.Fprintf(p.out, " %s", Dim.Sprint(p.message("ui.default_hint", "({{.Default}})", map[string]interface{}{
				"Default": q.Default,
			})))
		}
		_, _ = fmt.Fprintln(p.out)
		_, _ = fmt.Fprint(p.out, "  ")
	}
}

// parse turns raw input into an answer. A non-empty msg means the input does
// not fit the question kind.
func (p *TerminalPrompter) parse(q prompt.Question, line string) (any, string) {
	input := strings.TrimSpace(line)

	switch q.Kind {
	case prompt.KindList:
		if input == "" && q.Default != nil {
			return q.Default, ""
		}
		if n, err := strconv.Atoi(input); err == nil && n >= 1 && n <= len(q.Choices) {
			return q.Choices[n-1].Value, ""
		}
		for _, c := range q.Choices {
			if input != "" && strings.EqualFold(input, c.Value) {
				return c.Value, ""
			}
		}
		return nil, p.message("ui.invalid_choice", "Please choose a number between 1 and {{.Count}}", map[string]interface{}{
			"Count": len(q.Choices),
		})

	case prompt.KindConfirm:
		switch strings.ToLower(input) {
		case "":
			def, _ := q.Default.(bool)
			return def, ""
		case "y", "yes", "s", "si", "sí":
			return true, ""
		case "n", "no":
			return false, ""
		}
		return nil, p.message("ui.invalid_confirm", "Please answer yes or no", nil)

	default:
		if input == "" {
			if q.Default != nil {
				return q.Default, ""
			}
			return "", ""
		}
		return line, ""
	}
}

func (p *TerminalPrompter) printInvalid(msg string) {
	_, _ = fmt.Fprintf(p.out, "%s %s\n", invalidMark.Sprint(">>"), invalidMark.Sprint(msg))
}

func (p *TerminalPrompter) message(id, fallback string, data map[string]interface{}) string {
	if p.msgs == nil {
		out := fallback
		for k, v := range data {
			out = strings.ReplaceAll(out, "{{."+k+"}}", fmt.Sprint(v))
		}
		return out
	}
	return p.msgs.GetMessage(id, 0, data)
}

func messageOf(err error) string {
	var appErr *domainErrors.AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}
