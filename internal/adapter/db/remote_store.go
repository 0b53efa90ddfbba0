package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"eastask/internal/core/domain"
	"eastask/internal/core/ports"
)

// RemoteStore is the sqlx client for the hosted backend tables. Ids and
// timestamps are assigned here, never by local state.
type RemoteStore struct {
	db *sqlx.DB
}

var _ ports.RemoteStore = (*RemoteStore)(nil)

func NewRemoteStore(db *sqlx.DB) *RemoteStore {
	return &RemoteStore{db: db}
}

type taskRow struct {
	ID             string          `db:"id"`
	WorkspaceID    string          `db:"workspace_id"`
	Title          string          `db:"title"`
	Description    string          `db:"description"`
	Status         string          `db:"status"`
	Priority       string          `db:"priority"`
	DueDate        sql.NullTime    `db:"due_date"`
	AssigneeID     sql.NullString  `db:"assignee_id"`
	AssigneeName   sql.NullString  `db:"assignee_name"`
	PageID         sql.NullString  `db:"page_id"`
	Position       int             `db:"position"`
	CreatorID      string          `db:"creator_id"`
	CreatedAt      time.Time       `db:"created_at"`
	UpdatedAt      time.Time       `db:"updated_at"`
	CompletedAt    sql.NullTime    `db:"completed_at"`
	Tags           sql.NullString  `db:"tags"`
	EstimatedHours sql.NullFloat64 `db:"estimated_hours"`
	ActualHours    sql.NullFloat64 `db:"actual_hours"`
}

const listTasksQuery = `
SELECT id, workspace_id, title, description, status, priority, due_date,
       assignee_id, assignee_name, page_id, position, creator_id,
       created_at, updated_at, completed_at, tags, estimated_hours, actual_hours
FROM tasks
WHERE workspace_id = ?
ORDER BY position, created_at;
`

func (r *RemoteStore) ListTasks(ctx context.Context, workspaceID string) ([]domain.Task, error) {
	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, listTasksQuery, workspaceID); err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		task, err := mapTaskRowToDomainTask(row)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

func (r *RemoteStore) GetTask(ctx context.Context, workspaceID, taskID string) (domain.Task, error) {
	const query = `
SELECT id, workspace_id, title, description, status, priority, due_date,
       assignee_id, assignee_name, page_id, position, creator_id,
       created_at, updated_at, completed_at, tags, estimated_hours, actual_hours
FROM tasks
WHERE workspace_id = ? AND id = ?;
`
	var row taskRow
	if err := r.db.GetContext(ctx, &row, query, workspaceID, taskID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return domain.Task{}, err
	}
	return mapTaskRowToDomainTask(row)
}

func (r *RemoteStore) InsertTask(ctx context.Context, workspaceID string, input domain.CreateTaskInput) (domain.Task, error) {
	status, err := statusToRemote(input.Status)
	if err != nil {
		return domain.Task{}, err
	}
	priority, err := priorityToRemote(input.Priority)
	if err != nil {
		return domain.Task{}, err
	}

	id := uuid.NewString()
	now := time.Now().UTC().Truncate(time.Second)

	// Appended after the current members of its collection.
	position, err := r.nextTaskPosition(ctx, workspaceID, input.PageID)
	if err != nil {
		return domain.Task{}, err
	}

	tags, err := encodeTags(input.Tags)
	if err != nil {
		return domain.Task{}, err
	}

	const query = `
INSERT INTO tasks
  (id, workspace_id, title, description, status, priority, due_date,
   assignee_id, assignee_name, page_id, position, creator_id,
   created_at, updated_at, tags, estimated_hours)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
`
	_, err = r.db.ExecContext(ctx, query,
		id, workspaceID, input.Title, input.Description, status, priority,
		input.DueDate, input.AssigneeID, input.AssigneeName, input.PageID,
		position, input.CreatorID, now, now, tags, input.EstimatedHours,
	)
	if err != nil {
		return domain.Task{}, err
	}

	return r.GetTask(ctx, workspaceID, id)
}

func (r *RemoteStore) UpdateTask(ctx context.Context, workspaceID, taskID string, patch domain.TaskPatch) error {
	sets := []string{"updated_at = ?"}
	args := []any{time.Now().UTC().Truncate(time.Second)}

	if patch.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *patch.Title)
	}
	if patch.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *patch.Description)
	}
	if patch.Status != nil {
		status, err := statusToRemote(*patch.Status)
		if err != nil {
			return err
		}
		sets = append(sets, "status = ?")
		args = append(args, status)
	}
	if patch.Priority != nil {
		priority, err := priorityToRemote(*patch.Priority)
		if err != nil {
			return err
		}
		sets = append(sets, "priority = ?")
		args = append(args, priority)
	}
	if patch.DueDateSet {
		sets = append(sets, "due_date = ?")
		args = append(args, patch.DueDate)
	}
	if patch.AssigneeSet {
		sets = append(sets, "assignee_id = ?", "assignee_name = ?")
		args = append(args, patch.AssigneeID, patch.AssigneeName)
	}
	if patch.PageIDSet {
		position, err := r.nextTaskPosition(ctx, workspaceID, patch.PageID)
		if err != nil {
			return err
		}
		sets = append(sets, "page_id = ?", "position = ?")
		args = append(args, patch.PageID, position)
	}
	if patch.TagsSet {
		tags, err := encodeTags(patch.Tags)
		if err != nil {
			return err
		}
		sets = append(sets, "tags = ?")
		args = append(args, tags)
	}
	if patch.CompletedAtSet {
		sets = append(sets, "completed_at = ?")
		args = append(args, patch.CompletedAt)
	}
	if patch.EstimatedHours != nil {
		sets = append(sets, "estimated_hours = ?")
		args = append(args, *patch.EstimatedHours)
	}
	if patch.ActualHours != nil {
		sets = append(sets, "actual_hours = ?")
		args = append(args, *patch.ActualHours)
	}

	query := fmt.Sprintf("UPDATE tasks SET %s WHERE workspace_id = ? AND id = ?", strings.Join(sets, ", "))
	args = append(args, workspaceID, taskID)

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	return requireRow(res, domain.ErrTaskNotFound)
}

func (r *RemoteStore) DeleteTask(ctx context.Context, workspaceID, taskID string) error {
	res, err := r.db.ExecContext(ctx,
		"DELETE FROM tasks WHERE workspace_id = ? AND id = ?", workspaceID, taskID)
	if err != nil {
		return err
	}
	return requireRow(res, domain.ErrTaskNotFound)
}

func (r *RemoteStore) nextTaskPosition(ctx context.Context, workspaceID string, pageID *string) (int, error) {
	var count int
	var err error
	if pageID == nil {
		err = r.db.GetContext(ctx, &count,
			"SELECT COUNT(*) FROM tasks WHERE workspace_id = ? AND page_id IS NULL", workspaceID)
	} else {
		err = r.db.GetContext(ctx, &count,
			"SELECT COUNT(*) FROM tasks WHERE workspace_id = ? AND page_id = ?", workspaceID, *pageID)
	}
	return count, err
}

func mapTaskRowToDomainTask(row taskRow) (domain.Task, error) {
	status, err := statusFromRemote(row.Status)
	if err != nil {
		return domain.Task{}, err
	}
	priority, err := priorityFromRemote(row.Priority)
	if err != nil {
		return domain.Task{}, err
	}

	task := domain.Task{
		ID:          row.ID,
		Title:       row.Title,
		Description: row.Description,
		Status:      status,
		Priority:    priority,
		Order:       row.Position,
		CreatorID:   row.CreatorID,
		CreatedAt:   row.CreatedAt,
	}

	if row.DueDate.Valid {
		value := row.DueDate.Time
		task.DueDate = &value
	}
	if row.AssigneeID.Valid {
		value := row.AssigneeID.String
		task.AssigneeID = &value
	}
	if row.AssigneeName.Valid {
		value := row.AssigneeName.String
		task.AssigneeName = &value
	}
	if row.PageID.Valid {
		value := row.PageID.String
		task.PageID = &value
	}
	if row.CompletedAt.Valid {
		value := row.CompletedAt.Time
		task.CompletedAt = &value
	}
	if row.Tags.Valid && row.Tags.String != "" {
		if err := json.Unmarshal([]byte(row.Tags.String), &task.Tags); err != nil {
			return domain.Task{}, fmt.Errorf("decode tags for task %s: %w", row.ID, err)
		}
	}
	if row.EstimatedHours.Valid {
		value := row.EstimatedHours.Float64
		task.EstimatedHours = &value
	}
	if row.ActualHours.Valid {
		value := row.ActualHours.Float64
		task.ActualHours = &value
	}

	return task, nil
}

func encodeTags(tags []string) (*string, error) {
	if len(tags) == 0 {
		return nil, nil
	}
	raw, err := json.Marshal(tags)
	if err != nil {
		return nil, err
	}
	value := string(raw)
	return &value, nil
}

func requireRow(res sql.Result, notFound error) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return notFound
	}
	return nil
}
