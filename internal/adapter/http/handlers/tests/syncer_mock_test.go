package tests

import (
	"context"

	"github.com/stretchr/testify/mock"

	"eastask/internal/core/domain"
	"eastask/internal/core/ports"
)

type syncerMock struct {
	mock.Mock
}

var _ ports.Syncer = (*syncerMock)(nil)

func (m *syncerMock) AddTask(ctx context.Context, sess domain.Session, input domain.CreateTaskInput) (ports.AddTaskResult, error) {
	args := m.Called(ctx, sess, input)
	return args.Get(0).(ports.AddTaskResult), args.Error(1)
}

func (m *syncerMock) UpdateTask(ctx context.Context, sess domain.Session, taskID string, patch domain.TaskPatch) error {
	args := m.Called(ctx, sess, taskID, patch)
	return args.Error(0)
}

func (m *syncerMock) DeleteTask(ctx context.Context, sess domain.Session, taskID string) error {
	args := m.Called(ctx, sess, taskID)
	return args.Error(0)
}

func (m *syncerMock) DuplicateTask(ctx context.Context, sess domain.Session, taskID string, targetPageID *string) (domain.Task, error) {
	args := m.Called(ctx, sess, taskID, targetPageID)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *syncerMock) MoveTask(ctx context.Context, sess domain.Session, taskID string, targetPageID *string, targetIndex *int) error {
	args := m.Called(ctx, sess, taskID, targetPageID, targetIndex)
	return args.Error(0)
}

func (m *syncerMock) AddPage(ctx context.Context, sess domain.Session, input domain.CreatePageInput) (domain.Page, error) {
	args := m.Called(ctx, sess, input)
	return args.Get(0).(domain.Page), args.Error(1)
}

func (m *syncerMock) UpdatePage(ctx context.Context, sess domain.Session, pageID string, patch domain.PagePatch) error {
	args := m.Called(ctx, sess, pageID, patch)
	return args.Error(0)
}

func (m *syncerMock) DeletePage(ctx context.Context, sess domain.Session, pageID string) error {
	args := m.Called(ctx, sess, pageID)
	return args.Error(0)
}

func (m *syncerMock) AddDependency(ctx context.Context, sess domain.Session, dep domain.TaskDependency) (domain.TaskDependency, error) {
	args := m.Called(ctx, sess, dep)
	return args.Get(0).(domain.TaskDependency), args.Error(1)
}

func (m *syncerMock) DeleteDependency(ctx context.Context, sess domain.Session, dependencyID string) error {
	args := m.Called(ctx, sess, dependencyID)
	return args.Error(0)
}

func (m *syncerMock) DependencyCandidates(ctx context.Context, sess domain.Session, taskID string) ([]domain.Task, error) {
	args := m.Called(ctx, sess, taskID)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *syncerMock) AddComment(ctx context.Context, sess domain.Session, taskID, body string) (domain.Comment, error) {
	args := m.Called(ctx, sess, taskID, body)
	return args.Get(0).(domain.Comment), args.Error(1)
}

func (m *syncerMock) ListComments(ctx context.Context, sess domain.Session, taskID string) ([]domain.Comment, error) {
	args := m.Called(ctx, sess, taskID)

	var comments []domain.Comment
	if value := args.Get(0); value != nil {
		comments = value.([]domain.Comment)
	}
	return comments, args.Error(1)
}

func (m *syncerMock) AddTimeEntry(ctx context.Context, sess domain.Session, entry domain.TimeEntry) (domain.TimeEntry, error) {
	args := m.Called(ctx, sess, entry)
	return args.Get(0).(domain.TimeEntry), args.Error(1)
}

func (m *syncerMock) ListTimeEntries(ctx context.Context, sess domain.Session, taskID string) ([]domain.TimeEntry, error) {
	args := m.Called(ctx, sess, taskID)

	var entries []domain.TimeEntry
	if value := args.Get(0); value != nil {
		entries = value.([]domain.TimeEntry)
	}
	return entries, args.Error(1)
}

func (m *syncerMock) LoadWorkspaceData(ctx context.Context, sess domain.Session) error {
	args := m.Called(ctx, sess)
	return args.Error(0)
}

func (m *syncerMock) SearchTasks(query string) []domain.Task {
	args := m.Called(query)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks
}

func (m *syncerMock) MigrateFromLocalCache(ctx context.Context, sess domain.Session) (ports.MigrationReport, error) {
	args := m.Called(ctx, sess)
	return args.Get(0).(ports.MigrationReport), args.Error(1)
}

func (m *syncerMock) State() domain.AppState {
	args := m.Called()
	return args.Get(0).(domain.AppState)
}
