package commit

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/thomas-vilte/czmate/internal/config"
	"github.com/thomas-vilte/czmate/internal/errors"
	"github.com/thomas-vilte/czmate/internal/regex"
)

// BreakingPrefix starts the breaking-change section.
const BreakingPrefix = "BREAKING CHANGE: "

// Parts is the finalized content of a commit message.
type Parts struct {
	ID       string
	Type     string
	Scope    string
	Subject  string
	Body     string
	Breaking string
	Issues   string
}

// HeaderOverhead is the header length without the subject:
// "[" id "] " type "(" scope ")" ". ". The id and scope segments only count
// when present.
func HeaderOverhead(id, typ, scope string) int {
	n := runeLen(typ) + len(". ")
	if id != "" {
		n += runeLen(id) + len("[] ")
	}
	if scope != "" {
		n += runeLen(scope) + len("()")
	}
	return n
}

// SubjectBudget is how many characters the subject may use.
func SubjectBudget(maxHeaderWidth int, id, typ, scope string) int {
	return maxHeaderWidth - HeaderOverhead(id, typ, scope)
}

// Header renders "[id] type(scope). subject".
func Header(p Parts) string {
	var b strings.Builder
	if p.ID != "" {
		b.WriteString("[")
		b.WriteString(p.ID)
		b.WriteString("] ")
	}
	b.WriteString(p.Type)
	if p.Scope != "" {
		b.WriteString("(")
		b.WriteString(p.Scope)
		b.WriteString(")")
	}
	b.WriteString(". ")
	b.WriteString(p.Subject)
	return b.String()
}

// FilterSubject trims, drops trailing periods and lower-cases the first letter.
func FilterSubject(subject string) string {
	subject = strings.TrimSpace(subject)
	subject = strings.TrimSpace(regex.TrailingDots.ReplaceAllString(subject, ""))
	r, size := utf8.DecodeRuneInString(subject)
	if r == utf8.RuneError {
		return subject
	}
	return string(unicode.ToLower(r)) + subject[size:]
}

// Compose validates the header and joins header, body, breaking change and
// issue references with one blank line between present sections. Parts are
// expected to be filtered already; a subject that filters to nothing is
// rejected.
func Compose(p Parts, opts config.Options) (string, error) {
	if FilterSubject(p.Subject) == "" {
		return "", errors.ErrSubjectRequired
	}
	if p.Type == "" {
		return "", errors.ErrUnknownType.WithMessage("type is required")
	}

	header := Header(p)
	if runeLen(header) > opts.MaxHeaderWidth {
		return "", errors.SubjectTooLong(SubjectBudget(opts.MaxHeaderWidth, p.ID, p.Type, p.Scope), runeLen(p.Subject))
	}

	sections := []string{header}

	if body := strings.TrimSpace(p.Body); body != "" {
		sections = append(sections, WrapText(body, opts.MaxLineWidth))
	}

	if breaking := strings.TrimSpace(p.Breaking); breaking != "" {
		breaking = BreakingPrefix + regex.BreakingChangePrefix.ReplaceAllString(breaking, "")
		sections = append(sections, WrapText(breaking, opts.MaxLineWidth))
	}

	if issues := strings.TrimSpace(p.Issues); issues != "" {
		sections = append(sections, WrapText(issues, opts.MaxLineWidth))
	}

	return strings.Join(sections, "\n\n"), nil
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}
