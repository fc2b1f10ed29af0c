package config_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/octowatch/pkg/cli/config"
)

func TestGitHub(t *testing.T) {
	t.Run("defaults create unauthenticated client", func(t *testing.T) {
		var cfg config.GitHub
		parseFlags(t, cfg.Flags())
		gt.R1(cfg.New()).NoError(t)
	})

	t.Run("token is not logged", func(t *testing.T) {
		var cfg config.GitHub
		parseFlags(t, cfg.Flags(), "--github-token", "ghp_secret_value", "--page-size", "50")
		gt.R1(cfg.New()).NoError(t)

		var buf bytes.Buffer
		slog.New(slog.NewJSONHandler(&buf, nil)).Info("config", slog.Any("github", cfg))
		gt.False(t, strings.Contains(buf.String(), "ghp_secret_value"))
		gt.True(t, strings.Contains(buf.String(), `"pageSize":50`))
	})

	t.Run("page size out of range", func(t *testing.T) {
		var cfg config.GitHub
		parseFlags(t, cfg.Flags(), "--page-size", "101")
		_, err := cfg.New()
		gt.Error(t, err)
	})

	t.Run("incomplete app configuration", func(t *testing.T) {
		var cfg config.GitHub
		parseFlags(t, cfg.Flags(), "--github-app-id", "1234")
		_, err := cfg.New()
		gt.Error(t, err)
	})
}
