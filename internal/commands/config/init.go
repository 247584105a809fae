package config

import (
	"context"
	"os"
	"path/filepath"

	"github.com/thomas-vilte/czmate/internal/config"
	"github.com/thomas-vilte/czmate/internal/errors"
	"github.com/thomas-vilte/czmate/internal/i18n"
	"github.com/thomas-vilte/czmate/internal/logger"
	"github.com/thomas-vilte/czmate/internal/ui"
	"github.com/urfave/cli/v3"
)

func (c *ConfigCommandFactory) newInitCommand(t *i18n.Translations) *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: t.GetMessage("config.init_usage", 0, nil),
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "force",
				Aliases: []string{"f"},
				Usage:   t.GetMessage("config.init_force_usage", 0, nil),
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			path := filepath.Join(c.workDir, config.ToolConfigFiles[0])

			if _, err := os.Stat(path); err == nil && !command.Bool("force") {
				err := errors.ErrToolConfig.
					WithMessage(t.GetMessage("config.init_exists", 0, map[string]interface{}{"Path": path})).
					WithContext("path", path).
					WithSuggestion("czmate config init --force")
				ui.HandleAppError(c.out, err, t)
				return err
			}

			// The file captures the commitlint and environment widths, not
			// the .czrc it may replace.
			lintWidth, _, err := config.LoadLintHeaderWidth(c.workDir)
			if err != nil {
				ui.HandleAppError(c.out, err, t)
				return err
			}
			src := config.Sources{
				EnvHeaderWidth:  os.Getenv(config.EnvMaxHeaderWidth),
				LintHeaderWidth: lintWidth,
			}
			opts, err := config.Resolve(src)
			if err != nil {
				ui.HandleAppError(c.out, err, t)
				return err
			}

			if err := config.SaveToolConfig(path, overridesFrom(opts)); err != nil {
				ui.HandleAppError(c.out, err, t)
				return err
			}

			logger.Debug(ctx, "tool config written", "path", path)
			ui.PrintSuccess(c.out, t.GetMessage("config.init_created", 0, map[string]interface{}{"Path": path}))
			return nil
		},
	}
}

func overridesFrom(opts config.Options) config.Overrides {
	return config.Overrides{
		Types:                 opts.Types,
		MaxHeaderWidth:        &opts.MaxHeaderWidth,
		MaxLineWidth:          &opts.MaxLineWidth,
		DisableScopeLowerCase: &opts.DisableScopeLowerCase,
	}
}
