package sync

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"eastask/internal/app/state"
	"eastask/internal/core/domain"
	"eastask/internal/core/ports"
)

// LoadWorkspaceData is the single source-of-truth resync: it re-fetches
// pages, tasks, dependencies and attachments for the workspace, rebuilds
// the whole tree and replaces local state with one dispatch. Idempotent.
func (s *Syncer) LoadWorkspaceData(ctx context.Context, sess domain.Session) error {
	if !sess.Valid() {
		return domain.ErrMissingSession
	}

	pages, err := s.remote.ListPages(ctx, sess.WorkspaceID)
	if err != nil {
		zap.L().Error("workspace page load failed", zap.String("workspace_id", sess.WorkspaceID), zap.Error(err))
		return err
	}

	tasks, err := s.remote.ListTasks(ctx, sess.WorkspaceID)
	if err != nil {
		zap.L().Error("workspace task load failed", zap.String("workspace_id", sess.WorkspaceID), zap.Error(err))
		return err
	}

	deps, err := s.remote.ListDependencies(ctx, sess.WorkspaceID)
	if err != nil {
		zap.L().Error("workspace dependency load failed", zap.String("workspace_id", sess.WorkspaceID), zap.Error(err))
		return err
	}

	taskIDs := make([]string, 0, len(tasks))
	for _, t := range tasks {
		taskIDs = append(taskIDs, t.ID)
	}
	attachments, err := s.remote.ListAttachments(ctx, sess.WorkspaceID, taskIDs)
	if err != nil {
		zap.L().Error("workspace attachment load failed", zap.String("workspace_id", sess.WorkspaceID), zap.Error(err))
		return err
	}

	s.store.Dispatch(state.LoadState{State: buildAppState(pages, tasks, deps, attachments)})
	return nil
}

// buildAppState groups tasks by page and hangs dependencies and
// attachments off their tasks. Task order within each collection follows
// the persisted order values.
func buildAppState(pages []domain.Page, tasks []domain.Task, deps []domain.TaskDependency, attachments []domain.FileMetadata) domain.AppState {
	attachmentsByTask := make(map[string][]domain.FileMetadata)
	for _, a := range attachments {
		if a.TaskID == nil {
			continue
		}
		attachmentsByTask[*a.TaskID] = append(attachmentsByTask[*a.TaskID], a)
	}
	depsByTask := make(map[string][]domain.TaskDependency)
	for _, d := range deps {
		depsByTask[d.TaskID] = append(depsByTask[d.TaskID], d)
	}

	byPage := make(map[string][]domain.Task)
	var unassigned []domain.Task
	for _, t := range tasks {
		t.Attachments = attachmentsByTask[t.ID]
		t.Dependencies = depsByTask[t.ID]
		if t.PageID == nil {
			unassigned = append(unassigned, t)
			continue
		}
		byPage[*t.PageID] = append(byPage[*t.PageID], t)
	}

	next := domain.AppState{Pages: make([]domain.Page, 0, len(pages))}
	for _, p := range pages {
		p.Tasks = sortByOrder(byPage[p.ID])
		next.Pages = append(next.Pages, p)
	}
	next.UnassignedTasks = sortByOrder(unassigned)
	return next
}

func sortByOrder(tasks []domain.Task) []domain.Task {
	sort.SliceStable(tasks, func(i, j int) bool { return tasks[i].Order < tasks[j].Order })
	for i := range tasks {
		tasks[i].Order = i
	}
	return tasks
}

// Watch subscribes to the change feed for the session's workspace and
// runs a full reload on every event. No diffing, no per-row patching.
// Returns once ctx is cancelled or the feed closes.
func (s *Syncer) Watch(ctx context.Context, sess domain.Session, feed ports.ChangeFeed) error {
	if !sess.Valid() {
		return domain.ErrMissingSession
	}

	events, err := feed.Subscribe(ctx, sess.WorkspaceID)
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if ev.WorkspaceID != sess.WorkspaceID {
				continue
			}
			if err := s.LoadWorkspaceData(ctx, sess); err != nil {
				zap.L().Warn("reconciliation after change event failed",
					zap.String("table", ev.Table),
					zap.String("workspace_id", ev.WorkspaceID),
					zap.Error(err))
			}
		}
	}
}
