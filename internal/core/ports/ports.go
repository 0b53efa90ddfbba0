package ports

import (
	"context"

	"eastask/internal/core/domain"
)

// RemoteStore is the contract with the hosted backend. Every call is
// scoped to a workspace so a stale session cannot mutate across tenants.
type RemoteStore interface {
	InsertTask(ctx context.Context, workspaceID string, input domain.CreateTaskInput) (domain.Task, error)
	GetTask(ctx context.Context, workspaceID, taskID string) (domain.Task, error)
	UpdateTask(ctx context.Context, workspaceID, taskID string, patch domain.TaskPatch) error
	DeleteTask(ctx context.Context, workspaceID, taskID string) error
	ListTasks(ctx context.Context, workspaceID string) ([]domain.Task, error)

	InsertPage(ctx context.Context, workspaceID string, input domain.CreatePageInput) (domain.Page, error)
	UpdatePage(ctx context.Context, workspaceID, pageID string, patch domain.PagePatch) error
	DeletePage(ctx context.Context, workspaceID, pageID string) error
	ListPages(ctx context.Context, workspaceID string) ([]domain.Page, error)

	ListAttachments(ctx context.Context, workspaceID string, taskIDs []string) ([]domain.FileMetadata, error)
	ReassignAttachments(ctx context.Context, workspaceID string, attachmentIDs []string, taskID string) error

	InsertDependency(ctx context.Context, workspaceID string, dep domain.TaskDependency) (domain.TaskDependency, error)
	DeleteDependency(ctx context.Context, workspaceID, dependencyID string) error
	ListDependencies(ctx context.Context, workspaceID string) ([]domain.TaskDependency, error)

	InsertComment(ctx context.Context, workspaceID string, comment domain.Comment) (domain.Comment, error)
	ListComments(ctx context.Context, workspaceID, taskID string) ([]domain.Comment, error)

	InsertTimeEntry(ctx context.Context, workspaceID string, entry domain.TimeEntry) (domain.TimeEntry, error)
	ListTimeEntries(ctx context.Context, workspaceID, taskID string) ([]domain.TimeEntry, error)
}

// Notifier fires outbound notices. Delivery is someone else's problem;
// the sync layer only constructs payloads.
type Notifier interface {
	NotifyAssignment(ctx context.Context, notice domain.AssignmentNotice) error
	NotifyStatusChange(ctx context.Context, notice domain.StatusChangeNotice) error
}

// ChangeEvent reports that a row changed in one of the watched tables.
type ChangeEvent struct {
	Table       string
	WorkspaceID string
}

// ChangeFeed delivers change events for a workspace until ctx is
// cancelled, at which point the channel is closed.
type ChangeFeed interface {
	Subscribe(ctx context.Context, workspaceID string) (<-chan ChangeEvent, error)
}

// LocalCache is the pre-migration staging area holding a serialized
// AppState per user.
type LocalCache interface {
	Load(userID string) (domain.AppState, bool, error)
	Save(userID string, state domain.AppState) error
	Clear(userID string) error
}

// MigrationReport summarizes a local-cache import.
type MigrationReport struct {
	PagesCreated int
	TasksCreated int
	Compensated  bool
}

// AddTaskResult carries the confirmed task plus whether pre-uploaded
// attachments could not be re-associated (the task still exists).
type AddTaskResult struct {
	Task                domain.Task
	AttachmentsOrphaned bool
}

// Syncer is the command surface consumed by the HTTP adapter.
type Syncer interface {
	AddTask(ctx context.Context, sess domain.Session, input domain.CreateTaskInput) (AddTaskResult, error)
	UpdateTask(ctx context.Context, sess domain.Session, taskID string, patch domain.TaskPatch) error
	DeleteTask(ctx context.Context, sess domain.Session, taskID string) error
	DuplicateTask(ctx context.Context, sess domain.Session, taskID string, targetPageID *string) (domain.Task, error)
	MoveTask(ctx context.Context, sess domain.Session, taskID string, targetPageID *string, targetIndex *int) error

	AddPage(ctx context.Context, sess domain.Session, input domain.CreatePageInput) (domain.Page, error)
	UpdatePage(ctx context.Context, sess domain.Session, pageID string, patch domain.PagePatch) error
	DeletePage(ctx context.Context, sess domain.Session, pageID string) error

	AddDependency(ctx context.Context, sess domain.Session, dep domain.TaskDependency) (domain.TaskDependency, error)
	DeleteDependency(ctx context.Context, sess domain.Session, dependencyID string) error
	DependencyCandidates(ctx context.Context, sess domain.Session, taskID string) ([]domain.Task, error)

	AddComment(ctx context.Context, sess domain.Session, taskID, body string) (domain.Comment, error)
	ListComments(ctx context.Context, sess domain.Session, taskID string) ([]domain.Comment, error)
	AddTimeEntry(ctx context.Context, sess domain.Session, entry domain.TimeEntry) (domain.TimeEntry, error)
	ListTimeEntries(ctx context.Context, sess domain.Session, taskID string) ([]domain.TimeEntry, error)

	LoadWorkspaceData(ctx context.Context, sess domain.Session) error
	SearchTasks(query string) []domain.Task
	MigrateFromLocalCache(ctx context.Context, sess domain.Session) (MigrationReport, error)
	State() domain.AppState
}
