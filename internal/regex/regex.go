package regex

import "regexp"

var (
	// Commit message patterns
	BreakingChangePrefix = regexp.MustCompile(`^BREAKING[ -]CHANGE:\s*`)
	TrailingDots         = regexp.MustCompile(`\.+$`)
	LineBreak            = regexp.MustCompile(`\r?\n`)

	// Issue and Ticket patterns
	JiraTicket = regexp.MustCompile(`\b([A-Z][A-Z0-9]+-\d+)\b`)

	// Branch patterns for issue detection
	BranchIssueSharp = regexp.MustCompile(`#(\d+)`)
	BranchIssueName  = regexp.MustCompile(`issue[/-](\d+)`)
)
