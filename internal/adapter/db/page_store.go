package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"eastask/internal/core/domain"
)

type pageRow struct {
	ID          string         `db:"id"`
	WorkspaceID string         `db:"workspace_id"`
	Title       string         `db:"title"`
	Description string         `db:"description"`
	Category    string         `db:"category"`
	URL         sql.NullString `db:"url"`
	Color       string         `db:"color"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

func (r *RemoteStore) ListPages(ctx context.Context, workspaceID string) ([]domain.Page, error) {
	const query = `
SELECT id, workspace_id, title, description, category, url, color, created_at, updated_at
FROM pages
WHERE workspace_id = ?
ORDER BY created_at, id;
`
	var rows []pageRow
	if err := r.db.SelectContext(ctx, &rows, query, workspaceID); err != nil {
		return nil, err
	}

	pages := make([]domain.Page, 0, len(rows))
	for _, row := range rows {
		pages = append(pages, mapPageRowToDomainPage(row))
	}
	return pages, nil
}

func (r *RemoteStore) InsertPage(ctx context.Context, workspaceID string, input domain.CreatePageInput) (domain.Page, error) {
	id := uuid.NewString()
	now := time.Now().UTC().Truncate(time.Second)

	const query = `
INSERT INTO pages (id, workspace_id, title, description, category, url, color, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?);
`
	_, err := r.db.ExecContext(ctx, query,
		id, workspaceID, input.Title, input.Description, string(input.Category),
		input.URL, input.Color, now, now,
	)
	if err != nil {
		return domain.Page{}, err
	}

	return domain.Page{
		ID:          id,
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		URL:         input.URL,
		Color:       input.Color,
		CreatedAt:   now,
	}, nil
}

func (r *RemoteStore) UpdatePage(ctx context.Context, workspaceID, pageID string, patch domain.PagePatch) error {
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
	if patch.Category != nil {
		sets = append(sets, "category = ?")
		args = append(args, string(*patch.Category))
	}
	if patch.URLSet {
		sets = append(sets, "url = ?")
		args = append(args, patch.URL)
	}
	if patch.Color != nil {
		sets = append(sets, "color = ?")
		args = append(args, *patch.Color)
	}

	query := fmt.Sprintf("UPDATE pages SET %s WHERE workspace_id = ? AND id = ?", strings.Join(sets, ", "))
	args = append(args, workspaceID, pageID)

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	return requireRow(res, domain.ErrPageNotFound)
}

// DeletePage cascades by reparenting: the page's tasks move to the
// unassigned collection with positions continuing after the existing
// unassigned tasks, all within one transaction.
func (r *RemoteStore) DeletePage(ctx context.Context, workspaceID, pageID string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var unassignedCount int
	if err := tx.GetContext(ctx, &unassignedCount,
		"SELECT COUNT(*) FROM tasks WHERE workspace_id = ? AND page_id IS NULL", workspaceID); err != nil {
		return err
	}

	var orphanIDs []string
	if err := tx.SelectContext(ctx, &orphanIDs,
		"SELECT id FROM tasks WHERE workspace_id = ? AND page_id = ? ORDER BY position",
		workspaceID, pageID); err != nil {
		return err
	}

	now := time.Now().UTC().Truncate(time.Second)
	for i, taskID := range orphanIDs {
		if _, err := tx.ExecContext(ctx,
			"UPDATE tasks SET page_id = NULL, position = ?, updated_at = ? WHERE workspace_id = ? AND id = ?",
			unassignedCount+i, now, workspaceID, taskID); err != nil {
			return err
		}
	}

	res, err := tx.ExecContext(ctx,
		"DELETE FROM pages WHERE workspace_id = ? AND id = ?", workspaceID, pageID)
	if err != nil {
		return err
	}
	if err := requireRow(res, domain.ErrPageNotFound); err != nil {
		return err
	}

	return tx.Commit()
}

func mapPageRowToDomainPage(row pageRow) domain.Page {
	page := domain.Page{
		ID:          row.ID,
		Title:       row.Title,
		Description: row.Description,
		Category:    domain.PageCategory(row.Category),
		Color:       row.Color,
		CreatedAt:   row.CreatedAt,
	}
	if row.URL.Valid {
		value := row.URL.String
		page.URL = &value
	}
	return page
}
