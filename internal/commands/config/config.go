package config

import (
	"io"
	"os"

	"github.com/thomas-vilte/czmate/internal/commands/completion_helper"
	"github.com/thomas-vilte/czmate/internal/config"
	"github.com/thomas-vilte/czmate/internal/i18n"
	"github.com/urfave/cli/v3"
)

type ConfigCommandFactory struct {
	workDir string
	homeDir string
	out     io.Writer
}

func NewConfigCommandFactory(workDir, homeDir string) *ConfigCommandFactory {
	return &ConfigCommandFactory{workDir: workDir, homeDir: homeDir, out: os.Stdout}
}

// WithOutput replaces the writer the subcommands print to.
func (c *ConfigCommandFactory) WithOutput(w io.Writer) *ConfigCommandFactory {
	c.out = w
	return c
}

func (c *ConfigCommandFactory) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:          "config",
		Usage:         t.GetMessage("config.command_usage", 0, nil),
		ShellComplete: completion_helper.DefaultFlagComplete,
		Commands: []*cli.Command{
			c.newShowCommand(t, cfg),
			c.newInitCommand(t),
			c.newSetCommand(t, cfg),
		},
	}
}
