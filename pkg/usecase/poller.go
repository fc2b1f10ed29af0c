package usecase

import (
	"context"
	"log/slog"
	"time"

	"cloud.google.com/go/bigquery"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octowatch/pkg/domain/model"
	"github.com/m-mizutani/octowatch/pkg/domain/types"
	"github.com/m-mizutani/octowatch/pkg/infra"
	"github.com/m-mizutani/octowatch/pkg/utils/errutil"
	"github.com/m-mizutani/octowatch/pkg/utils/logging"
	"golang.org/x/time/rate"
)

const DefaultPollInterval = time.Second

// Poller checks one repository per cycle in round-robin order and notifies issues created since the
// previous check. It is not safe for concurrent use; Run owns it until ctx is done.
type Poller struct {
	clients  *infra.Clients
	repos    []*model.GitHubRepo
	next     int
	cursors  model.Cursors
	interval time.Duration

	auditSchema bigquery.Schema
}

type PollerOption func(*Poller)

// WithPollInterval sets the minimum time between the starts of two cycles. Zero or negative disables
// pacing.
func WithPollInterval(interval time.Duration) PollerOption {
	return func(x *Poller) {
		x.interval = interval
	}
}

// NewPoller restores cursors from the cursor repository and prepares polling of repos. A failure to load
// cursors is reported and polling starts without baseline.
func (x *UseCase) NewPoller(ctx context.Context, repos []*model.GitHubRepo, options ...PollerOption) (*Poller, error) {
	if len(repos) == 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "no repository to poll")
	}
	if x.clients.IssueSource() == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "issue source is not configured")
	}
	if x.clients.Notifier() == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "notifier is not configured")
	}
	if x.clients.CursorRepository() == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "cursor repository is not configured")
	}

	cursors, err := x.clients.CursorRepository().LoadCursors(ctx)
	if err != nil {
		errutil.HandleError(ctx, "failed to load cursors, starting without baseline", err)
		cursors = model.Cursors{}
	}
	if cursors == nil {
		cursors = model.Cursors{}
	}
	cursors.Track(repos)

	poller := &Poller{
		clients:  x.clients,
		repos:    repos,
		cursors:  cursors,
		interval: DefaultPollInterval,
	}
	for _, opt := range options {
		opt(poller)
	}

	logging.From(ctx).Info("Poller is ready",
		slog.Int("repos", len(repos)),
		slog.Int("cursors", len(cursors)),
		slog.Duration("interval", poller.interval),
	)

	return poller, nil
}

// Cursors returns a copy of the in-memory cursors.
func (x *Poller) Cursors() model.Cursors {
	return x.cursors.Clone()
}

// Run repeats Step, starting at most one cycle per interval. A cycle that takes longer than the interval
// is followed immediately by the next one. Run returns nil when ctx is done.
func (x *Poller) Run(ctx context.Context) error {
	limit := rate.Inf
	if x.interval > 0 {
		limit = rate.Every(x.interval)
	}
	limiter := rate.NewLimiter(limit, 1)

	for {
		if err := limiter.Wait(ctx); err != nil {
			// Wait also fails early when the next slot is beyond the deadline of ctx
			<-ctx.Done()
			logging.From(ctx).Info("Poller stopped", slog.Any("reason", context.Cause(ctx)))
			return nil
		}

		x.Step(ctx)
	}
}

// Step runs one cycle for the next repository. Failures are reported and never stop polling. Cursors are
// saved at the end of every cycle.
func (x *Poller) Step(ctx context.Context) {
	repo := x.repos[x.next]
	x.next = (x.next + 1) % len(x.repos)

	logger := logging.From(ctx).With(
		slog.Any("cycle_id", types.NewCycleID()),
		slog.Any("repo", repo),
	)
	ctx = logging.With(ctx, logger)

	if err := x.check(ctx, repo); err != nil {
		errutil.HandleError(ctx, "failed to check repository", err)
	}

	if err := x.clients.CursorRepository().SaveCursors(ctx, x.cursors); err != nil {
		errutil.HandleError(ctx, "failed to save cursors", err)
	}
}

func (x *Poller) check(ctx context.Context, repo *model.GitHubRepo) error {
	logger := logging.From(ctx)

	issues, err := x.clients.IssueSource().ListOpenIssues(ctx, repo)
	if err != nil {
		return goerr.Wrap(err, "failed to fetch open issues", goerr.V("repo", repo.URL))
	}

	issues = issues.WithoutPullRequests()
	latest, ok := issues.Latest()
	if !ok {
		logger.Info("No open issues")
		return nil
	}

	prev, ok := x.cursors.Get(repo.URL)
	if !ok {
		x.cursors.Set(repo.URL, latest)
		logger.Info("Recorded baseline", slog.Any("latest", latest))
		return nil
	}

	if latest <= prev {
		logger.Debug("No new issues", slog.Any("latest", latest))
		return nil
	}

	batch := model.NewNotificationBatch(repo, issues, prev)
	delivered := true
	if err := x.clients.Notifier().Notify(ctx, batch); err != nil {
		delivered = false
		errutil.HandleError(ctx, "failed to notify new issues", err)
	} else {
		logger.Info("Notified new issues",
			slog.Any("batch_id", batch.ID),
			slog.Any("previous", prev),
			slog.Any("latest", latest),
			slog.Int("count", len(batch.Issues)),
		)
	}

	if err := x.recordNotification(ctx, batch, delivered); err != nil {
		errutil.HandleError(ctx, "failed to record notification", err)
	}

	// cursor advances even when delivery failed
	x.cursors.Set(repo.URL, latest)
	return nil
}
