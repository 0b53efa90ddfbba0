package db

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"

	"eastask/internal/core/domain"
)

type attachmentRow struct {
	ID           string         `db:"id"`
	WorkspaceID  string         `db:"workspace_id"`
	TaskID       sql.NullString `db:"task_id"`
	CommentID    sql.NullString `db:"comment_id"`
	StoredName   string         `db:"stored_name"`
	OriginalName string         `db:"original_name"`
	Size         int64          `db:"size"`
	MimeType     string         `db:"mime_type"`
	PublicURL    string         `db:"public_url"`
	UploaderID   string         `db:"uploader_id"`
	UploadedAt   time.Time      `db:"uploaded_at"`
}

func (r *RemoteStore) ListAttachments(ctx context.Context, workspaceID string, taskIDs []string) ([]domain.FileMetadata, error) {
	if len(taskIDs) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In(`
SELECT id, workspace_id, task_id, comment_id, stored_name, original_name,
       size, mime_type, public_url, uploader_id, uploaded_at
FROM file_attachments
WHERE workspace_id = ? AND task_id IN (?)
ORDER BY uploaded_at;`, workspaceID, taskIDs)
	if err != nil {
		return nil, err
	}

	var rows []attachmentRow
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, err
	}

	attachments := make([]domain.FileMetadata, 0, len(rows))
	for _, row := range rows {
		attachments = append(attachments, mapAttachmentRowToDomain(row))
	}
	return attachments, nil
}

// ReassignAttachments points pre-uploaded attachment records at the task
// they now belong to.
func (r *RemoteStore) ReassignAttachments(ctx context.Context, workspaceID string, attachmentIDs []string, taskID string) error {
	if len(attachmentIDs) == 0 {
		return nil
	}

	query, args, err := sqlx.In(
		"UPDATE file_attachments SET task_id = ? WHERE workspace_id = ? AND id IN (?)",
		taskID, workspaceID, attachmentIDs)
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, r.db.Rebind(query), args...)
	if err != nil {
		return err
	}
	return requireRow(res, domain.ErrAttachmentNotFound)
}

func mapAttachmentRowToDomain(row attachmentRow) domain.FileMetadata {
	attachment := domain.FileMetadata{
		ID:           row.ID,
		WorkspaceID:  row.WorkspaceID,
		StoredName:   row.StoredName,
		OriginalName: row.OriginalName,
		Size:         row.Size,
		MimeType:     row.MimeType,
		PublicURL:    row.PublicURL,
		UploaderID:   row.UploaderID,
		UploadedAt:   row.UploadedAt,
	}
	if row.TaskID.Valid {
		value := row.TaskID.String
		attachment.TaskID = &value
	}
	if row.CommentID.Valid {
		value := row.CommentID.String
		attachment.CommentID = &value
	}
	return attachment
}
