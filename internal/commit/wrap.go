package commit

import (
	"strings"

	"github.com/thomas-vilte/czmate/internal/regex"
)

// Wrap breaks text into lines of at most width characters. Tokens are never
// split: a token longer than width gets a line of its own. Line breaks already
// present in text are kept.
func Wrap(text string, width int) []string {
	var lines []string
	for _, paragraph := range regex.LineBreak.Split(strings.TrimSpace(text), -1) {
		lines = append(lines, wrapLine(paragraph, width)...)
	}
	return lines
}

// WrapText is Wrap joined with newlines.
func WrapText(text string, width int) string {
	return strings.Join(Wrap(text, width), "\n")
}

func wrapLine(line string, width int) []string {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return []string{""}
	}

	var (
		lines   []string
		current strings.Builder
		length  int
	)
	for _, tok := range tokens {
		n := runeLen(tok)
		if length > 0 && length+1+n > width {
			lines = append(lines, current.String())
			current.Reset()
			length = 0
		}
		if length > 0 {
			current.WriteByte(' ')
			length++
		}
		current.WriteString(tok)
		length += n
	}
	return append(lines, current.String())
}
