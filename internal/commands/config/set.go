package config

import (
	"context"
	"strconv"
	"strings"

	"github.com/thomas-vilte/czmate/internal/config"
	"github.com/thomas-vilte/czmate/internal/errors"
	"github.com/thomas-vilte/czmate/internal/i18n"
	"github.com/thomas-vilte/czmate/internal/ui"
	"github.com/urfave/cli/v3"
)

func (c *ConfigCommandFactory) newSetCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "set",
		Usage:     t.GetMessage("config.set_usage", 0, nil),
		ArgsUsage: t.GetMessage("config.set_args_usage", 0, nil),
		Action: func(ctx context.Context, command *cli.Command) error {
			if command.Args().Len() < 2 {
				err := errors.ErrUserConfig.WithMessage(t.GetMessage("config.set_missing_args", 0, nil))
				ui.HandleAppError(c.out, err, t)
				return err
			}

			key := strings.ToLower(command.Args().Get(0))
			value := command.Args().Get(1)
			data := map[string]interface{}{"Key": key, "Value": value}

			updated := *cfg
			switch key {
			case "language", "lang":
				if !config.IsSupportedLanguage(value) {
					err := errors.ErrUserConfig.WithMessage(t.GetMessage("config.set_invalid_value", 0, data))
					ui.HandleAppError(c.out, err, t)
					return err
				}
				updated.Language = value
			case "auto_ticket":
				b, err := strconv.ParseBool(value)
				if err != nil {
					err := errors.ErrUserConfig.WithMessage(t.GetMessage("config.set_invalid_value", 0, data)).WithError(err)
					ui.HandleAppError(c.out, err, t)
					return err
				}
				updated.AutoTicket = b
			default:
				err := errors.ErrUserConfig.WithMessage(t.GetMessage("config.set_unknown_key", 0, data))
				ui.HandleAppError(c.out, err, t)
				return err
			}

			if err := config.SaveConfig(&updated); err != nil {
				ui.HandleAppError(c.out, err, t)
				return err
			}
			*cfg = updated

			if updated.Language != t.Language() {
				_ = t.SetLanguage(updated.Language)
			}
			ui.PrintSuccess(c.out, t.GetMessage("config.set_success", 0, data))
			return nil
		},
	}
}
