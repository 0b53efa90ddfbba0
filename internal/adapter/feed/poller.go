package feed

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"eastask/internal/core/ports"
)

// Poller is the change feed for backends without a push channel: it
// fingerprints the task and page tables per workspace (row count plus max
// updated_at) and emits an event whenever a fingerprint moves. Consumers
// treat any event as "reload everything", so a fingerprint is all the
// granularity needed.
type Poller struct {
	db       *sqlx.DB
	interval time.Duration
}

var _ ports.ChangeFeed = (*Poller)(nil)

func NewPoller(db *sqlx.DB, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = 2 * time.Second
	}
	return &Poller{db: db, interval: interval}
}

type fingerprint struct {
	Count     int          `db:"n"`
	UpdatedAt sql.NullTime `db:"latest"`
}

func (p *Poller) Subscribe(ctx context.Context, workspaceID string) (<-chan ports.ChangeEvent, error) {
	events := make(chan ports.ChangeEvent, 1)

	last := make(map[string]fingerprint, 2)
	for _, table := range []string{"tasks", "pages"} {
		fp, err := p.fingerprint(ctx, table, workspaceID)
		if err != nil {
			return nil, err
		}
		last[table] = fp
	}

	go func() {
		defer close(events)
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}

			for _, table := range []string{"tasks", "pages"} {
				fp, err := p.fingerprint(ctx, table, workspaceID)
				if err != nil {
					if ctx.Err() != nil {
						return
					}
					zap.L().Warn("change feed poll failed",
						zap.String("table", table),
						zap.String("workspace_id", workspaceID),
						zap.Error(err))
					continue
				}
				if fp == last[table] {
					continue
				}
				last[table] = fp
				select {
				case events <- ports.ChangeEvent{Table: table, WorkspaceID: workspaceID}:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return events, nil
}

func (p *Poller) fingerprint(ctx context.Context, table, workspaceID string) (fingerprint, error) {
	var query string
	switch table {
	case "tasks":
		query = "SELECT COUNT(*) AS n, MAX(updated_at) AS latest FROM tasks WHERE workspace_id = ?"
	case "pages":
		query = "SELECT COUNT(*) AS n, MAX(updated_at) AS latest FROM pages WHERE workspace_id = ?"
	}

	var fp fingerprint
	err := p.db.GetContext(ctx, &fp, query, workspaceID)
	return fp, err
}
