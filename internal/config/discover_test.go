package config

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thomas-vilte/czmate/internal/errors"
)

func TestDiscover(t *testing.T) {
	ctx := context.Background()

	t.Run("combines files, environment and call overrides", func(t *testing.T) {
		// Arrange
		work, home := t.TempDir(), t.TempDir()
		lintPath := writeFile(t, work, ".commitlintrc.json", `{"rules":{"header-max-length":[2,"always",72]}}`)
		toolPath := writeFile(t, home, ".czrc", `{"defaultScope":"core","maxLineWidth":80}`)
		t.Setenv(EnvMaxHeaderWidth, "")

		// Act
		src, found, err := Discover(ctx, work, home, Overrides{DefaultType: strPtr("fix")})
		require.NoError(t, err)
		opts, err := Resolve(src)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, Discovery{ToolConfig: toolPath, LintConfig: lintPath}, found)
		assert.Equal(t, 72, opts.MaxHeaderWidth)
		assert.Equal(t, 80, opts.MaxLineWidth)
		assert.Equal(t, "core", opts.DefaultScope)
		assert.Equal(t, "fix", opts.DefaultType)
		assert.Equal(t, OriginLint, src.HeaderWidthOrigin())
	})

	t.Run("environment beats commitlint", func(t *testing.T) {
		work := t.TempDir()
		writeFile(t, work, ".commitlintrc.yml", "rules:\n  header-max-length: [2, always, 72]\n")
		t.Setenv(EnvMaxHeaderWidth, "60")

		src, _, err := Discover(ctx, work, "", Overrides{})
		require.NoError(t, err)
		opts, err := Resolve(src)

		require.NoError(t, err)
		assert.Equal(t, 60, opts.MaxHeaderWidth)
		assert.Equal(t, OriginEnv, src.HeaderWidthOrigin())
	})

	t.Run("nothing found uses defaults", func(t *testing.T) {
		t.Setenv(EnvMaxHeaderWidth, "abc")

		src, found, err := Discover(ctx, t.TempDir(), t.TempDir(), Overrides{})
		require.NoError(t, err)
		opts, err := Resolve(src)

		require.NoError(t, err)
		assert.Equal(t, Discovery{}, found)
		assert.Equal(t, DefaultMaxHeaderWidth, opts.MaxHeaderWidth)
		assert.Equal(t, OriginDefault, src.HeaderWidthOrigin())
	})

	t.Run("broken tool config is reported", func(t *testing.T) {
		work := t.TempDir()
		writeFile(t, work, ".czrc", `{not json`)

		_, _, err := Discover(ctx, work, "", Overrides{})

		assert.ErrorIs(t, err, errors.ErrToolConfig)
	})
}
