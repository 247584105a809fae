package config

import (
	"fmt"

	"github.com/thomas-vilte/czmate/internal/errors"
)

const (
	DefaultMaxLineWidth   = 100
	DefaultMaxHeaderWidth = 100
)

type (
	// CommitType is one selectable entry of the type question.
	CommitType struct {
		Key         string `json:"key"`
		Title       string `json:"title"`
		Description string `json:"description"`
	}

	// Options drives the question catalog and the composer. Treat it as
	// read-only once resolved.
	Options struct {
		Types                 []CommitType `json:"types"`
		MaxLineWidth          int          `json:"maxLineWidth"`
		MaxHeaderWidth        int          `json:"maxHeaderWidth"`
		DefaultType           string       `json:"defaultType,omitempty"`
		DefaultScope          string       `json:"defaultScope,omitempty"`
		DefaultSubject        string       `json:"defaultSubject,omitempty"`
		DefaultBody           string       `json:"defaultBody,omitempty"`
		DefaultIssues         string       `json:"defaultIssues,omitempty"`
		DisableScopeLowerCase bool         `json:"disableScopeLowerCase"`
	}
)

// DefaultTypes mirrors the conventional-commit-types table.
func DefaultTypes() []CommitType {
	return []CommitType{
		{Key: "feat", Title: "Features", Description: "A new feature"},
		{Key: "fix", Title: "Bug Fixes", Description: "A bug fix"},
		{Key: "docs", Title: "Documentation", Description: "Documentation only changes"},
		{Key: "style", Title: "Styles", Description: "Changes that do not affect the meaning of the code (white-space, formatting, missing semi-colons, etc)"},
		{Key: "refactor", Title: "Code Refactoring", Description: "A code change that neither fixes a bug nor adds a feature"},
		{Key: "perf", Title: "Performance Improvements", Description: "A code change that improves performance"},
		{Key: "test", Title: "Tests", Description: "Adding missing tests or correcting existing tests"},
		{Key: "build", Title: "Builds", Description: "Changes that affect the build system or external dependencies (example scopes: gulp, broccoli, npm)"},
		{Key: "ci", Title: "Continuous Integrations", Description: "Changes to our CI configuration files and scripts (example scopes: Travis, Circle, BrowserStack, SauceLabs)"},
		{Key: "chore", Title: "Chores", Description: "Other changes that don't modify src or test files"},
		{Key: "revert", Title: "Reverts", Description: "Reverts a previous commit"},
	}
}

// DefaultOptions returns the built-in options used when nothing overrides them.
func DefaultOptions() Options {
	return Options{
		Types:          DefaultTypes(),
		MaxLineWidth:   DefaultMaxLineWidth,
		MaxHeaderWidth: DefaultMaxHeaderWidth,
	}
}

// HasType reports whether key is one of the configured commit types.
func (o Options) HasType(key string) bool {
	for _, t := range o.Types {
		if t.Key == key {
			return true
		}
	}
	return false
}

func (o Options) Validate() error {
	if o.MaxHeaderWidth <= 0 {
		return errors.ErrInvalidOptions.WithMessage(fmt.Sprintf("maxHeaderWidth must be greater than 0, got %d", o.MaxHeaderWidth))
	}
	if o.MaxLineWidth <= 0 {
		return errors.ErrInvalidOptions.WithMessage(fmt.Sprintf("maxLineWidth must be greater than 0, got %d", o.MaxLineWidth))
	}
	if len(o.Types) == 0 {
		return errors.ErrInvalidOptions.WithMessage("at least one commit type is required")
	}
	seen := make(map[string]bool, len(o.Types))
	for _, t := range o.Types {
		if t.Key == "" {
			return errors.ErrInvalidOptions.WithMessage("commit type key cannot be empty")
		}
		if seen[t.Key] {
			return errors.ErrInvalidOptions.WithMessage(fmt.Sprintf("duplicated commit type %q", t.Key))
		}
		seen[t.Key] = true
	}
	return nil
}
