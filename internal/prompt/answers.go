package prompt

import "github.com/thomas-vilte/czmate/internal/commit"

// Answer names. NameID is a seed: it is never asked, callers provide it.
const (
	NameID              = "id"
	NameType            = "type"
	NameScope           = "scope"
	NameSubject         = "subject"
	NameBody            = "body"
	NameIsBreaking      = "isBreaking"
	NameBreakingBody    = "breakingBody"
	NameBreaking        = "breaking"
	NameIsIssueAffected = "isIssueAffected"
	NameIssuesBody      = "issuesBody"
	NameIssues          = "issues"
)

// Answers maps question names to string or bool values.
type Answers map[string]any

func (a Answers) Has(name string) bool {
	_, ok := a[name]
	return ok
}

// String returns the answer as a string, or "" when missing or not a string.
func (a Answers) String(name string) string {
	s, _ := a[name].(string)
	return s
}

// Bool returns true only for an explicit true answer.
func (a Answers) Bool(name string) bool {
	b, _ := a[name].(bool)
	return b
}

func (a Answers) Clone() Answers {
	out := make(Answers, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// Parts maps a completed answer set onto the composer input. The body falls
// back to the body collected for a breaking change or for closed issues.
func (a Answers) Parts() commit.Parts {
	body := a.String(NameBody)
	if body == "" {
		body = a.String(NameBreakingBody)
	}
	if body == "" {
		body = a.String(NameIssuesBody)
	}

	return commit.Parts{
		ID:       a.String(NameID),
		Type:     a.String(NameType),
		Scope:    a.String(NameScope),
		Subject:  a.String(NameSubject),
		Body:     body,
		Breaking: a.String(NameBreaking),
		Issues:   a.String(NameIssues),
	}
}
