package commit

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/thomas-vilte/czmate/internal/commands/completion_helper"
	"github.com/thomas-vilte/czmate/internal/config"
	"github.com/thomas-vilte/czmate/internal/engine"
	"github.com/thomas-vilte/czmate/internal/errors"
	"github.com/thomas-vilte/czmate/internal/git"
	"github.com/thomas-vilte/czmate/internal/i18n"
	"github.com/thomas-vilte/czmate/internal/logger"
	"github.com/thomas-vilte/czmate/internal/prompt"
	"github.com/thomas-vilte/czmate/internal/ui"
	"github.com/urfave/cli/v3"
)

// gitService is a minimal interface for testing purposes
type gitService interface {
	GetCurrentBranch(ctx context.Context) (string, error)
	GetStagedFiles(ctx context.Context) ([]string, error)
	CreateCommit(ctx context.Context, message string) error
}

// retryCache keeps the last message composed per repository.
type retryCache interface {
	GenerateHash(content string) string
	Get(key string, v interface{}) (bool, error)
	Set(key string, v interface{}) error
}

type lastCommit struct {
	Message string `json:"message"`
}

type CommitCommandFactory struct {
	gitService gitService
	cache      retryCache
	workDir    string
	homeDir    string
	in         io.Reader
	out        io.Writer
}

// NewCommitCommandFactory looks for .czrc and commitlint files in workDir; the
// .czrc lookup falls back to homeDir.
func NewCommitCommandFactory(gitSvc gitService, workDir, homeDir string) *CommitCommandFactory {
	return &CommitCommandFactory{
		gitService: gitSvc,
		workDir:    workDir,
		homeDir:    homeDir,
		in:         os.Stdin,
		out:        os.Stdout,
	}
}

// WithCache enables --retry.
func (f *CommitCommandFactory) WithCache(c retryCache) *CommitCommandFactory {
	f.cache = c
	return f
}

// WithIO replaces the terminal streams.
func (f *CommitCommandFactory) WithIO(in io.Reader, out io.Writer) *CommitCommandFactory {
	f.in = in
	f.out = out
	return f
}

func (f *CommitCommandFactory) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:          "commit",
		Aliases:       []string{"c"},
		Usage:         t.GetMessage("commit.command_usage", 0, nil),
		Description:   t.GetMessage("commit.command_description", 0, nil),
		Flags:         f.createFlags(t),
		ShellComplete: completion_helper.DefaultFlagComplete,
		Action:        f.createAction(cfg, t),
	}
}

func (f *CommitCommandFactory) createFlags(t *i18n.Translations) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "id", Usage: t.GetMessage("commit.flag_id", 0, nil)},
		&cli.StringFlag{Name: "type", Aliases: []string{"t"}, Usage: t.GetMessage("commit.flag_type", 0, nil)},
		&cli.StringFlag{Name: "scope", Aliases: []string{"s"}, Usage: t.GetMessage("commit.flag_scope", 0, nil)},
		&cli.StringFlag{Name: "subject", Aliases: []string{"m"}, Usage: t.GetMessage("commit.flag_subject", 0, nil)},
		&cli.StringFlag{Name: "body", Aliases: []string{"b"}, Usage: t.GetMessage("commit.flag_body", 0, nil)},
		&cli.StringFlag{Name: "breaking", Usage: t.GetMessage("commit.flag_breaking", 0, nil)},
		&cli.StringFlag{Name: "issues", Usage: t.GetMessage("commit.flag_issues", 0, nil)},
		&cli.BoolFlag{Name: "yes", Aliases: []string{"y"}, Usage: t.GetMessage("commit.flag_yes", 0, nil)},
		&cli.BoolFlag{Name: "dry-run", Usage: t.GetMessage("commit.flag_dry_run", 0, nil)},
		&cli.BoolFlag{Name: "retry", Aliases: []string{"r"}, Usage: t.GetMessage("commit.flag_retry", 0, nil)},
		&cli.IntFlag{Name: "max-header-width", Usage: t.GetMessage("commit.flag_max_header_width", 0, nil)},
		&cli.IntFlag{Name: "max-line-width", Usage: t.GetMessage("commit.flag_max_line_width", 0, nil)},
		&cli.StringFlag{Name: "default-type", Usage: t.GetMessage("commit.flag_default_type", 0, nil)},
		&cli.BoolFlag{Name: "no-scope-lowercase", Usage: t.GetMessage("commit.flag_no_scope_lowercase", 0, nil)},
	}
}

func (f *CommitCommandFactory) createAction(cfg *config.Config, t *i18n.Translations) cli.ActionFunc {
	return func(ctx context.Context, command *cli.Command) error {
		ctx = logger.With(ctx, "dir", f.workDir)
		log := logger.FromContext(ctx)
		nonInteractive := command.Bool("yes")
		dryRun := command.Bool("dry-run")

		logger.Info(ctx, "executing commit command",
			"non_interactive", nonInteractive,
			"dry_run", dryRun)

		if command.Bool("retry") {
			return f.retry(ctx, t, dryRun)
		}

		src, _, err := config.Discover(ctx, f.workDir, f.homeDir, callOverrides(command))
		if err != nil {
			ui.HandleAppError(f.out, err, t)
			return err
		}

		seed := prompt.Answers{}
		id := command.String("id")
		if id == "" && cfg != nil && cfg.AutoTicket {
			var issue string
			id, issue = f.fromBranch(ctx, t)
			if ref := git.IssueReference(issue); ref != "" && src.Call.DefaultIssues == nil && src.Tool.DefaultIssues == nil {
				src.Call.DefaultIssues = &ref
			}
		}
		if id != "" {
			seed[prompt.NameID] = id
		}

		opts, err := config.Resolve(src)
		if err != nil {
			ui.HandleAppError(f.out, err, t)
			return err
		}
		log.Debug("options resolved",
			"max_header_width", opts.MaxHeaderWidth,
			"max_line_width", opts.MaxLineWidth,
			"source", src.HeaderWidthOrigin())

		eng, err := engine.New(opts, t)
		if err != nil {
			ui.HandleAppError(f.out, err, t)
			return err
		}

		given := flagAnswers(command)
		if typ := given.String(prompt.NameType); typ != "" && !opts.HasType(typ) {
			err := errors.ErrUnknownType.
				WithMessage(t.GetMessage("commit.unknown_type", 0, map[string]interface{}{"Type": typ})).
				WithContext("type", typ)
			ui.HandleAppError(f.out, err, t)
			return err
		}

		var p engine.Prompter
		if nonInteractive {
			p = engine.Scripted{Answers: withDefaults(given, opts)}
		} else {
			for k, v := range given {
				seed[k] = v
			}
			p = ui.NewTerminalPrompter(f.in, f.out, t)
		}

		err = eng.Run(ctx, p, seed, func(message string) error {
			f.remember(ctx, message)
			return f.commit(ctx, t, message, dryRun)
		})
		if err != nil {
			logger.Error(ctx, "commit failed", err)
			ui.HandleAppError(f.out, err, t)
			return err
		}
		return nil
	}
}

func (f *CommitCommandFactory) commit(ctx context.Context, t *i18n.Translations, message string, dryRun bool) error {
	ui.PrintCommitMessage(f.out, t.GetMessage("commit.preview_title", 0, nil), message)
	if dryRun {
		f.printStaged(ctx, t)
		ui.PrintInfo(f.out, t.GetMessage("commit.dry_run", 0, nil))
		return nil
	}
	err := ui.WithSpinner(f.out, t.GetMessage("commit.committing", 0, nil), t.GetMessage("commit.created", 0, nil), func() error {
		return f.gitService.CreateCommit(ctx, message)
	})
	if err != nil {
		return err
	}
	logger.Info(ctx, "commit created")
	return nil
}

// printStaged shows what a real run would commit.
func (f *CommitCommandFactory) printStaged(ctx context.Context, t *i18n.Translations) {
	files, err := f.gitService.GetStagedFiles(ctx)
	if err != nil {
		logger.Debug(ctx, "staged files not available", "error", err)
		return
	}
	if len(files) == 0 {
		ui.PrintWarning(f.out, t.GetMessage("commit.nothing_staged", 0, nil))
		return
	}
	ui.PrintKeyValue(f.out, t.GetMessage("commit.staged_files", 0, nil), strings.Join(files, ", "))
}

// retry commits the message cached by the previous run in this repository.
func (f *CommitCommandFactory) retry(ctx context.Context, t *i18n.Translations, dryRun bool) error {
	var last lastCommit
	found := false
	if f.cache != nil {
		var err error
		found, err = f.cache.Get(f.cache.GenerateHash(f.workDir), &last)
		if err != nil {
			logger.Warn(ctx, "retry cache unreadable", "error", err)
		}
	}
	if !found || last.Message == "" {
		err := errors.ErrNoRetry.WithContext("dir", f.workDir)
		ui.HandleAppError(f.out, err, t)
		return err
	}

	ui.PrintInfo(f.out, t.GetMessage("commit.retrying", 0, nil))
	if err := f.commit(ctx, t, last.Message, dryRun); err != nil {
		ui.HandleAppError(f.out, err, t)
		return err
	}
	return nil
}

// remember caches message for --retry. A cache failure never blocks the commit.
func (f *CommitCommandFactory) remember(ctx context.Context, message string) {
	if f.cache == nil {
		return
	}
	if err := f.cache.Set(f.cache.GenerateHash(f.workDir), lastCommit{Message: message}); err != nil {
		logger.Warn(ctx, "could not cache commit message", "error", err)
	}
}

// fromBranch reads the ticket id and issue number from the current branch.
// Failures only mean there is nothing to seed.
func (f *CommitCommandFactory) fromBranch(ctx context.Context, t *i18n.Translations) (string, string) {
	branch, err := f.gitService.GetCurrentBranch(ctx)
	if err != nil {
		logger.Debug(ctx, "branch not available", "error", err)
		return "", ""
	}

	id := git.TicketFromBranch(branch)
	if id != "" {
		ui.PrintInfo(f.out, t.GetMessage("commit.ticket_detected", 0, map[string]interface{}{
			"ID":     id,
			"Branch": branch,
		}))
	}
	return id, git.IssueFromBranch(branch)
}

func callOverrides(command *cli.Command) config.Overrides {
	var o config.Overrides
	if command.IsSet("max-header-width") {
		w := int(command.Int("max-header-width"))
		o.MaxHeaderWidth = &w
	}
	if command.IsSet("max-line-width") {
		w := int(command.Int("max-line-width"))
		o.MaxLineWidth = &w
	}
	if command.IsSet("default-type") {
		v := command.String("default-type")
		o.DefaultType = &v
	}
	if command.Bool("no-scope-lowercase") {
		v := true
		o.DisableScopeLowerCase = &v
	}
	return o
}

// flagAnswers turns the answer flags into pre-answered questions.
func flagAnswers(command *cli.Command) prompt.Answers {
	given := prompt.Answers{}
	for flag, name := range map[string]string{
		"type":    prompt.NameType,
		"scope":   prompt.NameScope,
		"subject": prompt.NameSubject,
		"body":    prompt.NameBody,
	} {
		if command.IsSet(flag) {
			given[name] = command.String(flag)
		}
	}
	if command.IsSet("breaking") {
		given[prompt.NameIsBreaking] = true
		given[prompt.NameBreaking] = command.String("breaking")
	}
	if command.IsSet("issues") {
		given[prompt.NameIsIssueAffected] = true
		given[prompt.NameIssues] = command.String("issues")
	}
	return given
}

// withDefaults fills unanswered questions with the configured defaults, as
// pressing enter at every prompt would.
func withDefaults(given prompt.Answers, opts config.Options) prompt.Answers {
	out := given.Clone()
	fill := func(name, value string) {
		if !out.Has(name) && value != "" {
			out[name] = value
		}
	}
	if opts.HasType(opts.DefaultType) {
		fill(prompt.NameType, opts.DefaultType)
	}
	fill(prompt.NameScope, opts.DefaultScope)
	fill(prompt.NameSubject, opts.DefaultSubject)
	fill(prompt.NameBody, opts.DefaultBody)
	if !out.Has(prompt.NameIsIssueAffected) && opts.DefaultIssues != "" {
		out[prompt.NameIsIssueAffected] = true
		fill(prompt.NameIssues, opts.DefaultIssues)
	}
	return out
}
