package engine

import (
	"context"

	"github.com/thomas-vilte/czmate/internal/errors"
	"github.com/thomas-vilte/czmate/internal/prompt"
)

// Scripted answers every question from a fixed answer set, validating and
// filtering like an interactive session would. It backs non-interactive runs.
type Scripted struct {
	Answers prompt.Answers
}

func (s Scripted) Prompt(ctx context.Context, catalog prompt.Catalog, seed prompt.Answers) (prompt.Answers, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.ErrPromptCancelled.WithError(err)
	}

	given := seed.Clone()
	for k, v := range s.Answers {
		given[k] = v
	}
	return prompt.Collect(catalog, given)
}
