package config

import (
	"strconv"
	"strings"
)

// EnvMaxHeaderWidth overrides the commitlint header-max-length.
const EnvMaxHeaderWidth = "CZ_MAX_HEADER_WIDTH"

// Origins reported by Sources.HeaderWidthOrigin.
const (
	OriginCall    = "flag"
	OriginTool    = ".czrc"
	OriginEnv     = EnvMaxHeaderWidth
	OriginLint    = "commitlint"
	OriginDefault = "default"
)

// Overrides carries optional values. A nil field means "not set".
type Overrides struct {
	Types                 CommitTypes `json:"types,omitempty"`
	MaxLineWidth          *int        `json:"maxLineWidth,omitempty"`
	MaxHeaderWidth        *int        `json:"maxHeaderWidth,omitempty"`
	DefaultType           *string     `json:"defaultType,omitempty"`
	DefaultScope          *string     `json:"defaultScope,omitempty"`
	DefaultSubject        *string     `json:"defaultSubject,omitempty"`
	DefaultBody           *string     `json:"defaultBody,omitempty"`
	DefaultIssues         *string     `json:"defaultIssues,omitempty"`
	DisableScopeLowerCase *bool       `json:"disableScopeLowerCase,omitempty"`
}

// Sources gathers every place an option can come from.
type Sources struct {
	Call            Overrides
	Tool            Overrides
	EnvHeaderWidth  string
	LintHeaderWidth int
}

// Resolve merges the sources into Options. Precedence for the header width,
// highest first: call site, tool config, environment, commitlint, default.
// Every other field: call site, tool config, default.
func Resolve(src Sources) (Options, error) {
	opts := DefaultOptions()

	if src.LintHeaderWidth > 0 {
		opts.MaxHeaderWidth = src.LintHeaderWidth
	}
	if w, ok := ParseEnvWidth(src.EnvHeaderWidth); ok {
		opts.MaxHeaderWidth = w
	}

	for _, o := range []Overrides{src.Tool, src.Call} {
		apply(&opts, o)
	}

	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

// HeaderWidthOrigin names the source that wins for MaxHeaderWidth.
func (s Sources) HeaderWidthOrigin() string {
	switch {
	case s.Call.MaxHeaderWidth != nil:
		return OriginCall
	case s.Tool.MaxHeaderWidth != nil:
		return OriginTool
	}
	if _, ok := ParseEnvWidth(s.EnvHeaderWidth); ok {
		return OriginEnv
	}
	if s.LintHeaderWidth > 0 {
		return OriginLint
	}
	return OriginDefault
}

// ParseEnvWidth accepts only positive integers.
func ParseEnvWidth(raw string) (int, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

func apply(opts *Options, o Overrides) {
	if len(o.Types) > 0 {
		opts.Types = append([]CommitType(nil), o.Types...)
	}
	if o.MaxLineWidth != nil {
		opts.MaxLineWidth = *o.MaxLineWidth
	}
	if o.MaxHeaderWidth != nil {
		opts.MaxHeaderWidth = *o.MaxHeaderWidth
	}
	setString(&opts.DefaultType, o.DefaultType)
	setString(&opts.DefaultScope, o.DefaultScope)
	setString(&opts.DefaultSubject, o.DefaultSubject)
	setString(&opts.DefaultBody, o.DefaultBody)
	setString(&opts.DefaultIssues, o.DefaultIssues)
	if o.DisableScopeLowerCase != nil {
		opts.DisableScopeLowerCase = *o.DisableScopeLowerCase
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
