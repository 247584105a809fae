package config

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/thomas-vilte/czmate/internal/config"
	"github.com/thomas-vilte/czmate/internal/i18n"
	"github.com/thomas-vilte/czmate/internal/ui"
	"github.com/urfave/cli/v3"
)

func (c *ConfigCommandFactory) newShowCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: t.GetMessage("config.show_usage", 0, nil),
		Action: func(ctx context.Context, command *cli.Command) error {
			src, found, err := config.Discover(ctx, c.workDir, c.homeDir, config.Overrides{})
			if err != nil {
				ui.HandleAppError(c.out, err, t)
				return err
			}
			opts, err := config.Resolve(src)
			if err != nil {
				ui.HandleAppError(c.out, err, t)
				return err
			}

			ui.PrintSectionBanner(c.out, t.GetMessage("config.show_title", 0, nil))
			ui.PrintKeyValue(c.out, t.GetMessage("config.language", 0, nil), cfg.Language)
			ui.PrintKeyValue(c.out, t.GetMessage("config.auto_ticket", 0, nil), strconv.FormatBool(cfg.AutoTicket))
			ui.PrintKeyValue(c.out, t.GetMessage("config.max_header_width", 0, nil),
				fmt.Sprintf("%d (%s %s)", opts.MaxHeaderWidth, t.GetMessage("config.origin", 0, nil), src.HeaderWidthOrigin()))
			ui.PrintKeyValue(c.out, t.GetMessage("config.max_line_width", 0, nil), strconv.Itoa(opts.MaxLineWidth))
			ui.PrintKeyValue(c.out, t.GetMessage("config.tool_config", 0, nil), orNone(t, found.ToolConfig))
			ui.PrintKeyValue(c.out, t.GetMessage("config.lint_config", 0, nil), orNone(t, found.LintConfig))

			keys := make([]string, 0, len(opts.Types))
			for _, typ := range opts.Types {
				keys = append(keys, typ.Key)
			}
			ui.PrintKeyValue(c.out, t.GetMessage("config.types", 0, nil), strings.Join(keys, ", "))
			return nil
		},
	}
}

func orNone(t *i18n.Translations, path string) string {
	if path == "" {
		return t.GetMessage("config.none", 0, nil)
	}
	return path
}
