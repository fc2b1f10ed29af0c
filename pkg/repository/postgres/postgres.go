package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octowatch/pkg/domain/interfaces"
	"github.com/m-mizutani/octowatch/pkg/domain/model"
	"github.com/m-mizutani/octowatch/pkg/domain/types"
	"github.com/m-mizutani/octowatch/pkg/repository"
	"github.com/m-mizutani/octowatch/pkg/utils/safe"

	_ "github.com/lib/pq"
)

const schema = `CREATE TABLE IF NOT EXISTS issue_cursors (
	repo_url    TEXT PRIMARY KEY,
	last_number BIGINT NULL,
	updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

type cursorRepository struct {
	db *sqlx.DB
}

var _ interfaces.CursorRepository = (*cursorRepository)(nil)

type cursorRow struct {
	RepoURL    string        `db:"repo_url"`
	LastNumber sql.NullInt64 `db:"last_number"`
	UpdatedAt  time.Time     `db:"updated_at"`
}

// New connects to PostgreSQL and creates the cursor table if it does not exist.
func New(ctx context.Context, dsn types.PostgresDSN) (interfaces.CursorRepository, error) {
	if dsn == "" {
		return nil, goerr.Wrap(repository.ErrInvalidInput, "PostgreSQL DSN is empty")
	}

	db, err := sqlx.ConnectContext(ctx, "postgres", string(dsn))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to connect to PostgreSQL")
	}

	return NewWithDB(ctx, db)
}

// NewWithDB uses an established connection.
func NewWithDB(ctx context.Context, db *sqlx.DB) (interfaces.CursorRepository, error) {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return nil, goerr.Wrap(err, "failed to create issue_cursors table")
	}

	return &cursorRepository{db: db}, nil
}

func (r *cursorRepository) LoadCursors(ctx context.Context) (model.Cursors, error) {
	var rows []cursorRow
	if err := r.db.SelectContext(ctx, &rows, `SELECT repo_url, last_number, updated_at FROM issue_cursors`); err != nil {
		return nil, goerr.Wrap(err, "failed to select cursors")
	}

	cursors := make(model.Cursors, len(rows))
	for _, row := range rows {
		url := types.RepoURL(row.RepoURL)
		if !row.LastNumber.Valid {
			cursors[url] = nil
			continue
		}
		cursors.Set(url, types.IssueNumber(row.LastNumber.Int64))
	}

	return cursors, nil
}

// SaveCursors rewrites the whole table in one transaction.
func (r *cursorRepository) SaveCursors(ctx context.Context, cursors model.Cursors) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return goerr.Wrap(err, "failed to begin transaction")
	}
	defer safe.Rollback(tx.Tx)

	if _, err := tx.ExecContext(ctx, `DELETE FROM issue_cursors`); err != nil {
		return goerr.Wrap(err, "failed to clear cursors")
	}

	now := time.Now().UTC()
	for url, p := range cursors {
		row := cursorRow{RepoURL: string(url), UpdatedAt: now}
		if p != nil {
			row.LastNumber = sql.NullInt64{Int64: int64(*p), Valid: true}
		}

		if _, err := tx.NamedExecContext(ctx,
			`INSERT INTO issue_cursors (repo_url, last_number, updated_at) VALUES (:repo_url, :last_number, :updated_at)`,
			row,
		); err != nil {
			return goerr.Wrap(err, "failed to insert cursor", goerr.V("repo", url))
		}
	}

	if err := tx.Commit(); err != nil {
		return goerr.Wrap(err, "failed to commit cursors")
	}

	return nil
}
