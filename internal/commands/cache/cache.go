package cache

import (
	"context"
	"io"
	"os"

	"github.com/thomas-vilte/czmate/internal/config"
	"github.com/thomas-vilte/czmate/internal/i18n"
	"github.com/thomas-vilte/czmate/internal/ui"
	"github.com/urfave/cli/v3"
)

type cleaner interface {
	Clean() error
}

type CacheCommand struct {
	cache cleaner
	out   io.Writer
}

func NewCacheCommand(c cleaner) *CacheCommand {
	return &CacheCommand{cache: c, out: os.Stdout}
}

// WithOutput replaces the writer the command prints to.
func (c *CacheCommand) WithOutput(w io.Writer) *CacheCommand {
	c.out = w
	return c
}

func (c *CacheCommand) CreateCommand(t *i18n.Translations, _ *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "cache",
		Usage: t.GetMessage("cache.usage", 0, nil),
		Commands: []*cli.Command{
			{
				Name:  "clean",
				Usage: t.GetMessage("cache.clean_usage", 0, nil),
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if err := c.cache.Clean(); err != nil {
						ui.HandleAppError(c.out, err, t)
						return err
					}
					ui.PrintSuccess(c.out, t.GetMessage("cache.cleaned", 0, nil))
					return nil
				},
			},
		},
	}
}
