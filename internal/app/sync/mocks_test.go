package sync_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"eastask/internal/core/domain"
	"eastask/internal/core/ports"
)

type remoteStoreMock struct {
	mock.Mock
}

func (m *remoteStoreMock) InsertTask(ctx context.Context, workspaceID string, input domain.CreateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, workspaceID, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *remoteStoreMock) GetTask(ctx context.Context, workspaceID, taskID string) (domain.Task, error) {
	args := m.Called(ctx, workspaceID, taskID)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *remoteStoreMock) UpdateTask(ctx context.Context, workspaceID, taskID string, patch domain.TaskPatch) error {
	args := m.Called(ctx, workspaceID, taskID, patch)
	return args.Error(0)
}

func (m *remoteStoreMock) DeleteTask(ctx context.Context, workspaceID, taskID string) error {
	args := m.Called(ctx, workspaceID, taskID)
	return args.Error(0)
}

func (m *remoteStoreMock) ListTasks(ctx context.Context, workspaceID string) ([]domain.Task, error) {
	args := m.Called(ctx, workspaceID)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *remoteStoreMock) InsertPage(ctx context.Context, workspaceID string, input domain.CreatePageInput) (domain.Page, error) {
	args := m.Called(ctx, workspaceID, input)
	return args.Get(0).(domain.Page), args.Error(1)
}

func (m *remoteStoreMock) UpdatePage(ctx context.Context, workspaceID, pageID string, patch domain.PagePatch) error {
	args := m.Called(ctx, workspaceID, pageID, patch)
	return args.Error(0)
}

func (m *remoteStoreMock) DeletePage(ctx context.Context, workspaceID, pageID string) error {
	args := m.Called(ctx, workspaceID, pageID)
	return args.Error(0)
}

func (m *remoteStoreMock) ListPages(ctx context.Context, workspaceID string) ([]domain.Page, error) {
	args := m.Called(ctx, workspaceID)

	var pages []domain.Page
	if value := args.Get(0); value != nil {
		pages = value.([]domain.Page)
	}
	return pages, args.Error(1)
}

func (m *remoteStoreMock) ListAttachments(ctx context.Context, workspaceID string, taskIDs []string) ([]domain.FileMetadata, error) {
	args := m.Called(ctx, workspaceID, taskIDs)

	var attachments []domain.FileMetadata
	if value := args.Get(0); value != nil {
		attachments = value.([]domain.FileMetadata)
	}
	return attachments, args.Error(1)
}

func (m *remoteStoreMock) ReassignAttachments(ctx context.Context, workspaceID string, attachmentIDs []string, taskID string) error {
	args := m.Called(ctx, workspaceID, attachmentIDs, taskID)
	return args.Error(0)
}

func (m *remoteStoreMock) InsertDependency(ctx context.Context, workspaceID string, dep domain.TaskDependency) (domain.TaskDependency, error) {
	args := m.Called(ctx, workspaceID, dep)
	return args.Get(0).(domain.TaskDependency), args.Error(1)
}

func (m *remoteStoreMock) DeleteDependency(ctx context.Context, workspaceID, dependencyID string) error {
	args := m.Called(ctx, workspaceID, dependencyID)
	return args.Error(0)
}

func (m *remoteStoreMock) ListDependencies(ctx context.Context, workspaceID string) ([]domain.TaskDependency, error) {
	args := m.Called(ctx, workspaceID)

	var deps []domain.TaskDependency
	if value := args.Get(0); value != nil {
		deps = value.([]domain.TaskDependency)
	}
	return deps, args.Error(1)
}

func (m *remoteStoreMock) InsertComment(ctx context.Context, workspaceID string, comment domain.Comment) (domain.Comment, error) {
	args := m.Called(ctx, workspaceID, comment)
	return args.Get(0).(domain.Comment), args.Error(1)
}

func (m *remoteStoreMock) ListComments(ctx context.Context, workspaceID, taskID string) ([]domain.Comment, error) {
	args := m.Called(ctx, workspaceID, taskID)

	var comments []domain.Comment
	if value := args.Get(0); value != nil {
		comments = value.([]domain.Comment)
	}
	return comments, args.Error(1)
}

func (m *remoteStoreMock) InsertTimeEntry(ctx context.Context, workspaceID string, entry domain.TimeEntry) (domain.TimeEntry, error) {
	args := m.Called(ctx, workspaceID, entry)
	return args.Get(0).(domain.TimeEntry), args.Error(1)
}

func (m *remoteStoreMock) ListTimeEntries(ctx context.Context, workspaceID, taskID string) ([]domain.TimeEntry, error) {
	args := m.Called(ctx, workspaceID, taskID)

	var entries []domain.TimeEntry
	if value := args.Get(0); value != nil {
		entries = value.([]domain.TimeEntry)
	}
	return entries, args.Error(1)
}

var _ ports.RemoteStore = (*remoteStoreMock)(nil)

type notifierMock struct {
	mock.Mock
}

func (m *notifierMock) NotifyAssignment(ctx context.Context, notice domain.AssignmentNotice) error {
	args := m.Called(ctx, notice)
	return args.Error(0)
}

func (m *notifierMock) NotifyStatusChange(ctx context.Context, notice domain.StatusChangeNotice) error {
	args := m.Called(ctx, notice)
	return args.Error(0)
}

var _ ports.Notifier = (*notifierMock)(nil)

type cacheMock struct {
	mock.Mock
}

func (m *cacheMock) Load(userID string) (domain.AppState, bool, error) {
	args := m.Called(userID)
	return args.Get(0).(domain.AppState), args.Bool(1), args.Error(2)
}

func (m *cacheMock) Save(userID string, st domain.AppState) error {
	args := m.Called(userID, st)
	return args.Error(0)
}

func (m *cacheMock) Clear(userID string) error {
	args := m.Called(userID)
	return args.Error(0)
}

var _ ports.LocalCache = (*cacheMock)(nil)
