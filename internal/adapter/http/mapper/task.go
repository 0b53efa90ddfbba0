package mapper

import (
	"time"

	"eastask/internal/adapter/http/dto"
	"eastask/internal/core/domain"
)

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	item := dto.TaskItem{
		ID:             task.ID,
		Title:          task.Title,
		Description:    task.Description,
		Status:         string(task.Status),
		Priority:       string(task.Priority),
		Order:          task.Order,
		CreatorID:      task.CreatorID,
		CreatedAt:      task.CreatedAt.Format(time.RFC3339),
		Tags:           task.Tags,
		EstimatedHours: task.EstimatedHours,
		ActualHours:    task.ActualHours,
	}

	if task.DueDate != nil {
		value := task.DueDate.Format("2006-01-02")
		item.DueDate = &value
	}
	if task.CompletedAt != nil {
		value := task.CompletedAt.Format(time.RFC3339)
		item.CompletedAt = &value
	}
	if task.AssigneeID != nil {
		value := *task.AssigneeID
		item.AssigneeID = &value
	}
	if task.AssigneeName != nil {
		value := *task.AssigneeName
		item.AssigneeName = &value
	}
	if task.PageID != nil {
		value := *task.PageID
		item.PageID = &value
	}

	for _, dep := range task.Dependencies {
		item.Dependencies = append(item.Dependencies, ToDependencyItem(dep))
	}
	for _, attachment := range task.Attachments {
		item.Attachments = append(item.Attachments, ToAttachmentItem(attachment))
	}

	return item
}

func ToDependencyItem(dep domain.TaskDependency) dto.DependencyItem {
	return dto.DependencyItem{
		ID:              dep.ID,
		TaskID:          dep.TaskID,
		DependsOnTaskID: dep.DependsOnTaskID,
		Type:            string(dep.Type),
	}
}

func ToAttachmentItem(attachment domain.FileMetadata) dto.AttachmentItem {
	item := dto.AttachmentItem{
		ID:           attachment.ID,
		StoredName:   attachment.StoredName,
		OriginalName: attachment.OriginalName,
		Size:         attachment.Size,
		MimeType:     attachment.MimeType,
		PublicURL:    attachment.PublicURL,
		UploaderID:   attachment.UploaderID,
		UploadedAt:   attachment.UploadedAt.Format(time.RFC3339),
	}
	if attachment.TaskID != nil {
		value := *attachment.TaskID
		item.TaskID = &value
	}
	return item
}

func ToCommentItems(comments []domain.Comment) []dto.CommentItem {
	items := make([]dto.CommentItem, 0, len(comments))
	for _, comment := range comments {
		items = append(items, ToCommentItem(comment))
	}
	return items
}

func ToCommentItem(comment domain.Comment) dto.CommentItem {
	return dto.CommentItem{
		ID:        comment.ID,
		TaskID:    comment.TaskID,
		AuthorID:  comment.AuthorID,
		Body:      comment.Body,
		CreatedAt: comment.CreatedAt.Format(time.RFC3339),
	}
}

func ToTimeEntryItems(entries []domain.TimeEntry) []dto.TimeEntryItem {
	items := make([]dto.TimeEntryItem, 0, len(entries))
	for _, entry := range entries {
		items = append(items, ToTimeEntryItem(entry))
	}
	return items
}

func ToTimeEntryItem(entry domain.TimeEntry) dto.TimeEntryItem {
	item := dto.TimeEntryItem{
		ID:          entry.ID,
		TaskID:      entry.TaskID,
		UserID:      entry.UserID,
		Description: entry.Description,
		StartedAt:   entry.StartedAt.Format(time.RFC3339),
		Hours:       entry.Hours,
	}
	if entry.EndedAt != nil {
		value := entry.EndedAt.Format(time.RFC3339)
		item.EndedAt = &value
	}
	return item
}
