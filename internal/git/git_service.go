package git

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/thomas-vilte/czmate/internal/errors"
	"github.com/thomas-vilte/czmate/internal/logger"
	"github.com/thomas-vilte/czmate/internal/regex"
)

type GitService struct {
	// Dir is the working tree git runs in. Empty means the process directory.
	Dir string
}

func NewGitService() *GitService {
	return &GitService{}
}

func (s *GitService) command(ctx context.Context, args ...string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = s.Dir
	return cmd
}

// HasStagedChanges checks if there are changes in the staging area
func (s *GitService) HasStagedChanges(ctx context.Context) bool {
	cmd := s.command(ctx, "diff", "--cached", "--quiet")
	err := cmd.Run()

	// exit status 1 means the index differs from HEAD
	return err != nil && cmd.ProcessState != nil && cmd.ProcessState.ExitCode() == 1
}

// GetStagedFiles lists the paths in the staging area.
func (s *GitService) GetStagedFiles(ctx context.Context) ([]string, error) {
	output, err := s.command(ctx, "diff", "--cached", "--name-only").Output()
	if err != nil {
		return nil, err
	}

	files := make([]string, 0)
	for _, line := range strings.Split(string(output), "\n") {
		if path := strings.TrimSpace(line); path != "" {
			files = append(files, path)
		}
	}
	return files, nil
}

func (s *GitService) GetCurrentBranch(ctx context.Context) (string, error) {
	output, err := s.command(ctx, "branch", "--show-current").Output()
	if err != nil {
		return "", errors.ErrGetBranch.WithError(err)
	}

	branchName := strings.TrimSpace(string(output))
	if branchName == "" {
		return "", errors.ErrNoBranch
	}

	return branchName, nil
}

// CreateCommit commits the staged changes with message. git reads the message
// from stdin so multi-paragraph messages keep their blank lines, and lines
// starting with '#' (issue references) are not treated as comments.
func (s *GitService) CreateCommit(ctx context.Context, message string) error {
	if !s.HasStagedChanges(ctx) {
		return errors.ErrNoChanges
	}

	cmd := s.command(ctx, "commit", "--cleanup=whitespace", "--file", "-")
	cmd.Stdin = strings.NewReader(message)
	var stderr strings.Builder
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return errors.ErrCreateCommit.
			WithError(err).
			WithContext("stderr", strings.TrimSpace(stderr.String()))
	}

	logger.Debug(ctx, "commit created", "lines", strings.Count(message, "\n")+1)
	return nil
}

// TicketFromBranch extracts a ticket key such as ID-123 from a branch name.
// Keys are upper case, so "release-2024" or "hotfix-3" carry none. "ISSUE-42"
// is an issue number, not a ticket.
func TicketFromBranch(branch string) string {
	for _, m := range regex.JiraTicket.FindAllString(branch, -1) {
		if !strings.HasPrefix(strings.ToLower(m), "issue-") {
			return m
		}
	}
	return ""
}

// IssueFromBranch extracts an issue number from branches such as
// "fix/#42-crash" or "issue-42". It returns "" when none is found.
func IssueFromBranch(branch string) string {
	if m := regex.BranchIssueSharp.FindStringSubmatch(branch); m != nil {
		return m[1]
	}
	if m := regex.BranchIssueName.FindStringSubmatch(strings.ToLower(branch)); m != nil {
		return m[1]
	}
	return ""
}

// IssueReference formats an issue number as a commit footer reference.
func IssueReference(issue string) string {
	if issue == "" {
		return ""
	}
	return fmt.Sprintf("re #%s", issue)
}
