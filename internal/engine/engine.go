package engine

import (
	"context"

	"github.com/thomas-vilte/czmate/internal/commit"
	"github.com/thomas-vilte/czmate/internal/config"
	"github.com/thomas-vilte/czmate/internal/errors"
	"github.com/thomas-vilte/czmate/internal/logger"
	"github.com/thomas-vilte/czmate/internal/prompt"
)

// Prompter presents the catalog to the user and returns the collected answers.
// seed holds answers known up front (such as the commit id); a prompter must
// keep them in its result.
type Prompter interface {
	Prompt(ctx context.Context, catalog prompt.Catalog, seed prompt.Answers) (prompt.Answers, error)
}

// PrompterFunc adapts a function to Prompter.
type PrompterFunc func(ctx context.Context, catalog prompt.Catalog, seed prompt.Answers) (prompt.Answers, error)

func (f PrompterFunc) Prompt(ctx context.Context, catalog prompt.Catalog, seed prompt.Answers) (prompt.Answers, error) {
	return f(ctx, catalog, seed)
}

// Engine runs the commit flow for one set of resolved options.
type Engine struct {
	opts config.Options
	msgs prompt.Messages
}

func New(opts config.Options, msgs prompt.Messages) (*Engine, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Engine{opts: opts, msgs: msgs}, nil
}

func (e *Engine) Options() config.Options {
	return e.opts
}

// Questions builds the catalog handed to prompters.
func (e *Engine) Questions() prompt.Catalog {
	return prompt.NewCatalog(e.opts, e.msgs)
}

type result struct {
	answers prompt.Answers
	err     error
}

// Collect is the first phase. The prompter runs on its own goroutine so a
// cancelled ctx returns ErrPromptCancelled right away; a late result from the
// prompter is discarded.
func (e *Engine) Collect(ctx context.Context, p Prompter, seed prompt.Answers) (prompt.Answers, error) {
	catalog := e.Questions()
	if err := catalog.CheckDependencies(seedNames(seed)...); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, errors.ErrPromptCancelled.WithError(err)
	}

	done := make(chan result, 1)
	go func() {
		answers, err := p.Prompt(ctx, catalog, seed.Clone())
		done <- result{answers: answers, err: err}
	}()

	select {
	case <-ctx.Done():
		logger.Debug(ctx, "prompt cancelled")
		return nil, errors.ErrPromptCancelled.WithError(ctx.Err())
	case r := <-done:
		if r.err != nil {
			return nil, r.err
		}
		logger.Debug(ctx, "answers collected", "count", len(r.answers))
		return r.answers, nil
	}
}

// Compose is the second phase: a pure function of the answers and options.
func (e *Engine) Compose(answers prompt.Answers) (string, error) {
	return commit.Compose(answers.Parts(), e.opts)
}

// Run collects, composes and hands the message to commitFn exactly once.
// commitFn is never called when collection is cancelled or composition fails.
func (e *Engine) Run(ctx context.Context, p Prompter, seed prompt.Answers, commitFn func(message string) error) error {
	answers, err := e.Collect(ctx, p, seed)
	if err != nil {
		return err
	}

	message, err := e.Compose(answers)
	if err != nil {
		logger.Debug(ctx, "composition failed", "error", err)
		return err
	}

	return commitFn(message)
}

func seedNames(seed prompt.Answers) []string {
	names := make([]string, 0, len(seed)+1)
	names = append(names, prompt.NameID)
	for k := range seed {
		names = append(names, k)
	}
	return names
}
