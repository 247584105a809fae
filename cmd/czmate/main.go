package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/thomas-vilte/czmate/internal/cache"
	cachecmd "github.com/thomas-vilte/czmate/internal/commands/cache"
	commitcmd "github.com/thomas-vilte/czmate/internal/commands/commit"
	configcmd "github.com/thomas-vilte/czmate/internal/commands/config"
	cfg "github.com/thomas-vilte/czmate/internal/config"
	"github.com/thomas-vilte/czmate/internal/git"
	"github.com/thomas-vilte/czmate/internal/i18n"
	"github.com/thomas-vilte/czmate/internal/logger"
	"github.com/thomas-vilte/czmate/internal/version"
	"github.com/urfave/cli/v3"
)

// retryTTL bounds how long czmate commit --retry remembers a message.
const retryTTL = 7 * 24 * time.Hour

func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("failed to start czmate: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, os.Args); err != nil {
		// commands already printed a friendly message
		stop()
		os.Exit(1)
	}
}

func initializeApp() (*cli.Command, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("could not get the user home directory: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("could not get the working directory: %w", err)
	}

	cfgApp, err := cfg.LoadConfig(homeDir)
	if err != nil {
		return nil, err
	}

	translations, err := i18n.NewTranslations(cfgApp.Language, "")
	if err != nil {
		return nil, fmt.Errorf("failed to load translations: %w", err)
	}

	gitService := git.NewGitService()
	commitFactory := commitcmd.NewCommitCommandFactory(gitService, workDir, homeDir)

	var extra []*cli.Command
	retryCache, err := cache.NewCache(filepath.Join(homeDir, ".czmate", "cache"), retryTTL)
	if err != nil {
		log.Printf("warning: retry cache disabled: %v", err)
	} else {
		commitFactory.WithCache(retryCache)
		extra = append(extra, cachecmd.NewCacheCommand(retryCache).CreateCommand(translations, cfgApp))
	}

	commands := []*cli.Command{
		commitFactory.CreateCommand(translations, cfgApp),
		configcmd.NewConfigCommandFactory(workDir, homeDir).CreateCommand(translations, cfgApp),
	}
	commands = append(commands, extra...)
	commands = append(commands, &cli.Command{
		Name:    "help",
		Aliases: []string{"h"},
		Usage:   translations.GetMessage("help_command_usage", 0, nil),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return cli.ShowAppHelp(cmd)
		},
	})

	return &cli.Command{
		Name:        "czmate",
		Usage:       translations.GetMessage("app_usage", 0, nil),
		Version:     version.FullVersion(),
		Description: translations.GetMessage("app_description", 0, nil),
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "debug",
				Usage: translations.GetMessage("flag_debug_usage", 0, nil),
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: translations.GetMessage("flag_verbose_usage", 0, nil),
			},
			&cli.StringFlag{
				Name:    "lang",
				Aliases: []string{"l"},
				Usage:   translations.GetMessage("flag_lang_usage", 0, nil),
				Value:   cfgApp.Language,
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logger.Initialize(cmd.Bool("debug"), cmd.Bool("verbose"))
			ctx = logger.WithLogger(ctx, slog.Default())

			if lang := cmd.String("lang"); lang != translations.Language() {
				if err := translations.SetLanguage(lang); err != nil {
					logger.Warn(ctx, "unsupported language, keeping the configured one", "lang", lang, "error", err)
				}
			}
			logger.Debug(ctx, "czmate started", "version", version.FullVersion(), "work_dir", workDir)
			return ctx, nil
		},
		Commands:              commands,
		EnableShellCompletion: true,
	}, nil
}
