package config

import (
	"context"
	"os"

	"github.com/thomas-vilte/czmate/internal/logger"
)

// Discovery names the files that fed a Sources. Empty means not found.
type Discovery struct {
	ToolConfig string
	LintConfig string
}

// Discover gathers every option source for a run in workDir: the tool config
// (workDir first, then homeDir), the commitlint config in workDir, the
// environment, and the call-site overrides.
func Discover(ctx context.Context, workDir, homeDir string, call Overrides) (Sources, Discovery, error) {
	var found Discovery

	tool, toolPath, err := LoadToolConfig(workDir, homeDir)
	if err != nil {
		return Sources{}, found, err
	}
	found.ToolConfig = toolPath

	lintWidth, lintPath, err := LoadLintHeaderWidth(workDir)
	if err != nil {
		return Sources{}, found, err
	}
	found.LintConfig = lintPath

	src := Sources{
		Call:            call,
		Tool:            tool,
		EnvHeaderWidth:  os.Getenv(EnvMaxHeaderWidth),
		LintHeaderWidth: lintWidth,
	}

	if src.EnvHeaderWidth != "" {
		if _, ok := ParseEnvWidth(src.EnvHeaderWidth); !ok {
			logger.Warn(ctx, "ignoring invalid header width", "env", EnvMaxHeaderWidth, "value", src.EnvHeaderWidth)
		}
	}

	logger.Debug(ctx, "option sources discovered",
		"tool_config", toolPath,
		"lint_config", lintPath,
		"lint_header_width", lintWidth,
		"source", src.HeaderWidthOrigin())

	return src, found, nil
}
