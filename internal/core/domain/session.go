package domain

import "time"

// Session identifies the authenticated user and the active workspace.
// Every command requires both; a zero value short-circuits the command
// with ErrMissingSession.
type Session struct {
	UserID      string
	WorkspaceID string
}

func (s Session) Valid() bool {
	return s.UserID != "" && s.WorkspaceID != ""
}

type CreateTaskInput struct {
	Title          string
	Description    string
	Status         TaskStatus
	Priority       TaskPriority
	DueDate        *time.Time
	AssigneeID     *string
	AssigneeName   *string
	PageID         *string
	Tags           []string
	EstimatedHours *float64
	// CreatorID is stamped by the command layer from the session.
	CreatorID string
	// AttachmentIDs references files uploaded before the task existed;
	// they are re-associated to the new task id after the insert.
	AttachmentIDs []string
}

type CreatePageInput struct {
	Title       string
	Description string
	Category    PageCategory
	URL         *string
	Color       string
}

// AssignmentNotice is sent to a task's new assignee.
type AssignmentNotice struct {
	WorkspaceID string
	TaskID      string
	TaskTitle   string
	AssigneeID  string
	ActorID     string
}

// StatusChangeNotice is sent to the creator and the prior and new
// assignees when a task's status changes.
type StatusChangeNotice struct {
	WorkspaceID  string
	TaskID       string
	TaskTitle    string
	OldStatus    TaskStatus
	NewStatus    TaskStatus
	RecipientIDs []string
	ActorID      string
}
