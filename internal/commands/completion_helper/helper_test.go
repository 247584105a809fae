package completion_helper

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/urfave/cli/v3"
)

func TestDefaultFlagComplete(t *testing.T) {
	// Arrange
	var out bytes.Buffer
	cmd := &cli.Command{
		Name:   "config",
		Writer: &out,
		Commands: []*cli.Command{
			{Name: "show"},
			{Name: "secret", Hidden: true},
		},
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "yes", Aliases: []string{"y"}},
			&cli.BoolFlag{Name: "dry-run"},
		},
	}

	// Act
	DefaultFlagComplete(context.Background(), cmd)

	// Assert
	assert.Equal(t, "show\n--yes\n-y\n--dry-run\n", out.String())
}
