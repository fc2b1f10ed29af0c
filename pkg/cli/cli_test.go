package cli_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/octowatch/pkg/cli"
)

func writeReposFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "github_repo_links.txt")
	gt.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRunConfigurationErrors(t *testing.T) {
	base := []string{
		"octowatch", "run",
		"--telegram-bot-token", "123:token",
		"--telegram-chat-id", "1",
	}

	t.Run("missing required telegram flags", func(t *testing.T) {
		t.Setenv("OCTOWATCH_TELEGRAM_BOT_TOKEN", "")
		t.Setenv("OCTOWATCH_TELEGRAM_CHAT_ID", "")
		path := writeReposFile(t, "https://github.com/golang/go\n")
		gt.Error(t, cli.New().Run([]string{"octowatch", "run", "--repos-file", path}))
	})

	t.Run("missing repository list", func(t *testing.T) {
		args := append(base, "--repos-file", filepath.Join(t.TempDir(), "missing.txt"))
		gt.Error(t, cli.New().Run(args))
	})

	t.Run("repository list without valid entries", func(t *testing.T) {
		path := writeReposFile(t, "# nothing here\n\nhttps://example.com/not/github\n")
		args := append(base, "--repos-file", path)
		gt.Error(t, cli.New().Run(args))
	})

	t.Run("unknown cursor backend", func(t *testing.T) {
		path := writeReposFile(t, "https://github.com/golang/go\n")
		args := append(base, "--repos-file", path, "--cursor-backend", "redis")
		gt.Error(t, cli.New().Run(args))
	})

	t.Run("invalid page size", func(t *testing.T) {
		path := writeReposFile(t, "https://github.com/golang/go\n")
		args := append(base, "--repos-file", path, "--page-size", "0")
		gt.Error(t, cli.New().Run(args))
	})
}

func TestConfigureLoggingIsReplaceable(t *testing.T) {
	gt.NoError(t, cli.ConfigureLogging("text", "info", "-"))
}
