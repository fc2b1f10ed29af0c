package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/m-mizutani/octowatch/pkg/cli/config"
	"github.com/m-mizutani/octowatch/pkg/controller/server"
	"github.com/m-mizutani/octowatch/pkg/infra"
	"github.com/m-mizutani/octowatch/pkg/usecase"
	"github.com/m-mizutani/octowatch/pkg/utils/logging"

	"github.com/urfave/cli/v3"
)

func runCommand() *cli.Command {
	var (
		addr string

		telegram    config.Telegram
		github      config.GitHub
		poll        config.Poll
		cursorStore config.CursorStore
		bigQuery    config.BigQuery
		sentry      config.Sentry
	)
	runFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Binding address of the status server (disabled if empty)",
			Sources:     cli.EnvVars("OCTOWATCH_ADDR"),
			Destination: &addr,
		},
	}

	return &cli.Command{
		Name:    "run",
		Aliases: []string{"r"},
		Usage:   "Poll repositories and notify new issues",
		Flags: slice.Flatten(
			runFlags,
			telegram.Flags(),
			github.Flags(),
			poll.Flags(),
			cursorStore.Flags(),
			bigQuery.Flags(),
			sentry.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting octowatch",
				slog.Any("Addr", addr),
				slog.Any("Telegram", telegram),
				slog.Any("GitHub", github),
				slog.Any("Poll", poll),
				slog.Any("CursorStore", cursorStore),
				slog.Any("BigQuery", bigQuery),
				slog.Any("Sentry", &sentry),
			)

			if err := sentry.Configure(ctx); err != nil {
				return err
			}

			repos, err := usecase.LoadRepositoryListFromFile(ctx, poll.ReposFile())
			if err != nil {
				return err
			}

			issueSource, err := github.New()
			if err != nil {
				return err
			}
			notifier, err := telegram.New()
			if err != nil {
				return err
			}
			cursorRepo, err := cursorStore.NewRepository(ctx)
			if err != nil {
				return err
			}

			infraOptions := []infra.Option{
				infra.WithIssueSource(issueSource),
				infra.WithNotifier(notifier),
				infra.WithCursorRepository(cursorRepo),
			}

			if bqClient, err := bigQuery.NewClient(ctx); err != nil {
				return err
			} else if bqClient != nil {
				infraOptions = append(infraOptions, infra.WithBigQuery(bqClient))
			}

			uc := usecase.New(infra.New(infraOptions...))

			ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			poller, err := uc.NewPoller(ctx, repos, poll.PollerOptions()...)
			if err != nil {
				return err
			}

			if addr == "" {
				return poller.Run(ctx)
			}
			return runWithServer(ctx, addr, uc, poller)
		},
	}
}

// runWithServer runs the poller and the status server until ctx is done or the server fails.
func runWithServer(ctx context.Context, addr string, uc *usecase.UseCase, poller *usecase.Poller) error {
	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	httpServer := &http.Server{
		Addr:    addr,
		Handler: server.New(uc).Mux(),

		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logging.Default().Info("starting http server", "addr", addr)
		if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
			err = goerr.Wrap(err, "failed to listen and serve", goerr.V("addr", addr))
			serverErr <- err
			cancel(err)
		}
	}()

	if err := poller.Run(ctx); err != nil {
		return err
	}

	select {
	case err := <-serverErr:
		return err
	default:
	}

	logging.Default().Info("shutting down server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return goerr.Wrap(err, "failed to shutdown server")
	}

	return nil
}
