package db

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"eastask/internal/core/domain"
)

type commentRow struct {
	ID          string    `db:"id"`
	WorkspaceID string    `db:"workspace_id"`
	TaskID      string    `db:"task_id"`
	AuthorID    string    `db:"author_id"`
	Body        string    `db:"body"`
	CreatedAt   time.Time `db:"created_at"`
}

func (r *RemoteStore) InsertComment(ctx context.Context, workspaceID string, comment domain.Comment) (domain.Comment, error) {
	comment.ID = uuid.NewString()
	comment.CreatedAt = time.Now().UTC().Truncate(time.Second)

	const query = `
INSERT INTO task_comments (id, workspace_id, task_id, author_id, body, created_at)
VALUES (?, ?, ?, ?, ?, ?);
`
	_, err := r.db.ExecContext(ctx, query,
		comment.ID, workspaceID, comment.TaskID, comment.AuthorID, comment.Body, comment.CreatedAt)
	if err != nil {
		return domain.Comment{}, err
	}
	return comment, nil
}

func (r *RemoteStore) ListComments(ctx context.Context, workspaceID, taskID string) ([]domain.Comment, error) {
	const query = `
SELECT id, workspace_id, task_id, author_id, body, created_at
FROM task_comments
WHERE workspace_id = ? AND task_id = ?
ORDER BY created_at;
`
	var rows []commentRow
	if err := r.db.SelectContext(ctx, &rows, query, workspaceID, taskID); err != nil {
		return nil, err
	}

	comments := make([]domain.Comment, 0, len(rows))
	for _, row := range rows {
		comments = append(comments, domain.Comment{
			ID:        row.ID,
			TaskID:    row.TaskID,
			AuthorID:  row.AuthorID,
			Body:      row.Body,
			CreatedAt: row.CreatedAt,
		})
	}
	return comments, nil
}

type timeEntryRow struct {
	ID          string       `db:"id"`
	WorkspaceID string       `db:"workspace_id"`
	TaskID      string       `db:"task_id"`
	UserID      string       `db:"user_id"`
	Description string       `db:"description"`
	StartedAt   time.Time    `db:"started_at"`
	EndedAt     sql.NullTime `db:"ended_at"`
	Hours       float64      `db:"hours"`
}

func (r *RemoteStore) InsertTimeEntry(ctx context.Context, workspaceID string, entry domain.TimeEntry) (domain.TimeEntry, error) {
	entry.ID = uuid.NewString()

	const query = `
INSERT INTO task_time_entries (id, workspace_id, task_id, user_id, description, started_at, ended_at, hours)
VALUES (?, ?, ?, ?, ?, ?, ?, ?);
`
	_, err := r.db.ExecContext(ctx, query,
		entry.ID, workspaceID, entry.TaskID, entry.UserID, entry.Description,
		entry.StartedAt, entry.EndedAt, entry.Hours)
	if err != nil {
		return domain.TimeEntry{}, err
	}
	return entry, nil
}

func (r *RemoteStore) ListTimeEntries(ctx context.Context, workspaceID, taskID string) ([]domain.TimeEntry, error) {
	const query = `
SELECT id, workspace_id, task_id, user_id, description, started_at, ended_at, hours
FROM task_time_entries
WHERE workspace_id = ? AND task_id = ?
ORDER BY started_at;
`
	var rows []timeEntryRow
	if err := r.db.SelectContext(ctx, &rows, query, workspaceID, taskID); err != nil {
		return nil, err
	}

	entries := make([]domain.TimeEntry, 0, len(rows))
	for _, row := range rows {
		entry := domain.TimeEntry{
			ID:          row.ID,
			TaskID:      row.TaskID,
			UserID:      row.UserID,
			Description: row.Description,
			StartedAt:   row.StartedAt,
			Hours:       row.Hours,
		}
		if row.EndedAt.Valid {
			value := row.EndedAt.Time
			entry.EndedAt = &value
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
