package prompt

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/thomas-vilte/czmate/internal/commit"
	"github.com/thomas-vilte/czmate/internal/config"
	"github.com/thomas-vilte/czmate/internal/errors"
)

var (
	subjectOK      = color.New(color.FgGreen)
	subjectWarning = color.New(color.FgRed)
)

// Catalog is the ordered list of questions. Order matters: a question may
// only depend on answers collected before it.
type Catalog []Question

// NewCatalog builds the commit questions for opts.
func NewCatalog(opts config.Options, msgs Messages) Catalog {
	return Catalog{
		{
			Name:    NameType,
			Kind:    KindList,
			Message: static(msgs, "question.type"),
			Choices: typeChoices(opts.Types),
			Default: defaultType(opts),
		},
		{
			Name:    NameScope,
			Kind:    KindInput,
			Message: static(msgs, "question.scope"),
			Default: optional(opts.DefaultScope),
			Filter: func(value any) any {
				scope := strings.TrimSpace(asString(value))
				if opts.DisableScopeLowerCase {
					return scope
				}
				return strings.ToLower(scope)
			},
		},
		{
			Name:      NameSubject,
			Kind:      KindInput,
			DependsOn: []string{NameID, NameType, NameScope},
			Default:   optional(opts.DefaultSubject),
			Message: func(a Answers) string {
				return msgs.GetMessage("question.subject", 0, map[string]interface{}{
					"Max": subjectBudget(opts, a),
				})
			},
			Validate: func(value any, a Answers) error {
				subject := FilterSubject(asString(value))
				if subject == "" {
					return errors.ErrSubjectRequired
				}
				limit := subjectBudget(opts, a)
				if n := utf8.RuneCountInString(subject); n > limit {
					return errors.SubjectTooLong(limit, n)
				}
				return nil
			},
			Filter: func(value any) any {
				return FilterSubject(asString(value))
			},
			Transform: func(value any, a Answers) string {
				subject := asString(value)
				n := utf8.RuneCountInString(FilterSubject(subject))
				out := fmt.Sprintf("(%d) %s", n, subject)
				if n <= subjectBudget(opts, a) {
					return subjectOK.Sprint(out)
				}
				return subjectWarning.Sprint(out)
			},
		},
		{
			Name:    NameBody,
			Kind:    KindInput,
			Message: static(msgs, "question.body"),
			Default: optional(opts.DefaultBody),
			Filter:  trim,
		},
		{
			Name:    NameIsBreaking,
			Kind:    KindConfirm,
			Message: static(msgs, "question.is_breaking"),
			Default: false,
		},
		{
			Name:      NameBreakingBody,
			Kind:      KindInput,
			Message:   static(msgs, "question.breaking_body"),
			DependsOn: []string{NameIsBreaking, NameBody},
			When: func(a Answers) bool {
				return a.Bool(NameIsBreaking) && a.String(NameBody) == ""
			},
			Validate: func(value any, _ Answers) error {
				if strings.TrimSpace(asString(value)) == "" {
					return errors.ErrBreakingBodyRequired
				}
				return nil
			},
			Filter: trim,
		},
		{
			Name:      NameBreaking,
			Kind:      KindInput,
			Message:   static(msgs, "question.breaking"),
			DependsOn: []string{NameIsBreaking},
			When: func(a Answers) bool {
				return a.Bool(NameIsBreaking)
			},
			Filter: trim,
		},
		{
			Name:    NameIsIssueAffected,
			Kind:    KindConfirm,
			Message: static(msgs, "question.is_issue_affected"),
			Default: opts.DefaultIssues != "",
		},
		{
			Name:      NameIssuesBody,
			Kind:      KindInput,
			Message:   static(msgs, "question.issues_body"),
			DependsOn: []string{NameIsIssueAffected, NameBody, NameBreakingBody},
			When: func(a Answers) bool {
				return a.Bool(NameIsIssueAffected) && a.String(NameBody) == "" && a.String(NameBreakingBody) == ""
			},
			Filter: trim,
		},
		{
			Name:      NameIssues,
			Kind:      KindInput,
			Message:   static(msgs, "question.issues"),
			Default:   optional(opts.DefaultIssues),
			DependsOn: []string{NameIsIssueAffected},
			When: func(a Answers) bool {
				return a.Bool(NameIsIssueAffected)
			},
			Filter: trim,
		},
	}
}

// Find returns the question called name.
func (c Catalog) Find(name string) (Question, bool) {
	for _, q := range c {
		if q.Name == name {
			return q, true
		}
	}
	return Question{}, false
}

func (c Catalog) Names() []string {
	names := make([]string, len(c))
	for i, q := range c {
		names[i] = q.Name
	}
	return names
}

// CheckDependencies fails when a question depends on an answer that is neither
// a seed nor asked earlier in the catalog.
func (c Catalog) CheckDependencies(seeds ...string) error {
	known := make(map[string]bool, len(c)+len(seeds))
	for _, s := range seeds {
		known[s] = true
	}
	for _, q := range c {
		for _, dep := range q.DependsOn {
			if !known[dep] {
				return errors.ErrUnknownDependency.
					WithMessage(fmt.Sprintf("question %q depends on %q, which is not collected before it", q.Name, dep)).
					WithContext("question", q.Name)
			}
		}
		known[q.Name] = true
	}
	return nil
}

// FilterSubject trims, drops trailing periods and lower-cases the first letter.
func FilterSubject(subject string) string {
	return commit.FilterSubject(subject)
}

func subjectBudget(opts config.Options, a Answers) int {
	return commit.SubjectBudget(opts.MaxHeaderWidth, a.String(NameID), a.String(NameType), a.String(NameScope))
}

func typeChoices(types []config.CommitType) []Choice {
	width := 0
	for _, t := range types {
		if n := utf8.RuneCountInString(t.Key) + 1; n > width {
			width = n
		}
	}

	choices := make([]Choice, 0, len(types))
	for _, t := range types {
		choices = append(choices, Choice{
			Name:  fmt.Sprintf("%-*s %s", width, t.Key+":", t.Description),
			Value: t.Key,
		})
	}
	return choices
}

func defaultType(opts config.Options) any {
	if opts.DefaultType != "" && opts.HasType(opts.DefaultType) {
		return opts.DefaultType
	}
	return nil
}

func static(msgs Messages, id string) func(Answers) string {
	return func(Answers) string {
		return msgs.GetMessage(id, 0, nil)
	}
}

func optional(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func trim(value any) any {
	return strings.TrimSpace(asString(value))
}

func asString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
