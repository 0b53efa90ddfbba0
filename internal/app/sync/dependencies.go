package sync

import (
	"context"

	"go.uber.org/zap"

	"eastask/internal/core/domain"
)

// AddDependency persists a dependency edge. The remote store re-validates
// for cycles and rejects circular inserts with ErrDependencyCycle; the
// candidate list below is only the advisory first line of defense.
func (s *Syncer) AddDependency(ctx context.Context, sess domain.Session, dep domain.TaskDependency) (domain.TaskDependency, error) {
	if !sess.Valid() {
		return domain.TaskDependency{}, domain.ErrMissingSession
	}
	if !dep.Type.Valid() {
		dep.Type = domain.DependencyFinishToStart
	}
	if dep.TaskID == dep.DependsOnTaskID {
		return domain.TaskDependency{}, domain.ErrDependencyCycle
	}

	created, err := s.remote.InsertDependency(ctx, sess.WorkspaceID, dep)
	if err != nil {
		zap.L().Error("remote dependency insert failed",
			zap.String("task_id", dep.TaskID),
			zap.String("depends_on_task_id", dep.DependsOnTaskID),
			zap.Error(err))
		return domain.TaskDependency{}, err
	}
	return created, nil
}

func (s *Syncer) DeleteDependency(ctx context.Context, sess domain.Session, dependencyID string) error {
	if !sess.Valid() {
		return domain.ErrMissingSession
	}
	if err := s.remote.DeleteDependency(ctx, sess.WorkspaceID, dependencyID); err != nil {
		zap.L().Error("remote dependency delete failed", zap.String("dependency_id", dependencyID), zap.Error(err))
		return err
	}
	return nil
}

// DependencyCandidates lists workspace tasks the given task may depend on:
// everything except itself and tasks that already (transitively) depend on
// it, so picking from the list cannot form a cycle.
func (s *Syncer) DependencyCandidates(ctx context.Context, sess domain.Session, taskID string) ([]domain.Task, error) {
	if !sess.Valid() {
		return nil, domain.ErrMissingSession
	}

	deps, err := s.remote.ListDependencies(ctx, sess.WorkspaceID)
	if err != nil {
		zap.L().Error("remote dependency list failed", zap.String("workspace_id", sess.WorkspaceID), zap.Error(err))
		return nil, err
	}

	// dependents[b] holds the tasks that depend on b.
	dependents := make(map[string][]string)
	for _, d := range deps {
		dependents[d.DependsOnTaskID] = append(dependents[d.DependsOnTaskID], d.TaskID)
	}

	excluded := map[string]struct{}{taskID: {}}
	queue := []string{taskID}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		for _, dependent := range dependents[id] {
			if _, ok := excluded[dependent]; ok {
				continue
			}
			excluded[dependent] = struct{}{}
			queue = append(queue, dependent)
		}
	}

	current := s.store.GetState()
	var candidates []domain.Task
	appendCandidates := func(tasks []domain.Task) {
		for _, t := range tasks {
			if _, ok := excluded[t.ID]; !ok {
				candidates = append(candidates, t)
			}
		}
	}
	appendCandidates(current.UnassignedTasks)
	for _, p := range current.Pages {
		appendCandidates(p.Tasks)
	}
	return candidates, nil
}

func (s *Syncer) AddComment(ctx context.Context, sess domain.Session, taskID, body string) (domain.Comment, error) {
	if !sess.Valid() {
		return domain.Comment{}, domain.ErrMissingSession
	}

	created, err := s.remote.InsertComment(ctx, sess.WorkspaceID, domain.Comment{
		TaskID:   taskID,
		AuthorID: sess.UserID,
		Body:     body,
	})
	if err != nil {
		zap.L().Error("remote comment insert failed", zap.String("task_id", taskID), zap.Error(err))
		return domain.Comment{}, err
	}
	return created, nil
}

func (s *Syncer) ListComments(ctx context.Context, sess domain.Session, taskID string) ([]domain.Comment, error) {
	if !sess.Valid() {
		return nil, domain.ErrMissingSession
	}

	comments, err := s.remote.ListComments(ctx, sess.WorkspaceID, taskID)
	if err != nil {
		zap.L().Error("remote comment list failed", zap.String("task_id", taskID), zap.Error(err))
		return nil, err
	}
	return comments, nil
}

func (s *Syncer) AddTimeEntry(ctx context.Context, sess domain.Session, entry domain.TimeEntry) (domain.TimeEntry, error) {
	if !sess.Valid() {
		return domain.TimeEntry{}, domain.ErrMissingSession
	}
	entry.UserID = sess.UserID

	created, err := s.remote.InsertTimeEntry(ctx, sess.WorkspaceID, entry)
	if err != nil {
		zap.L().Error("remote time entry insert failed", zap.String("task_id", entry.TaskID), zap.Error(err))
		return domain.TimeEntry{}, err
	}
	return created, nil
}

func (s *Syncer) ListTimeEntries(ctx context.Context, sess domain.Session, taskID string) ([]domain.TimeEntry, error) {
	if !sess.Valid() {
		return nil, domain.ErrMissingSession
	}

	entries, err := s.remote.ListTimeEntries(ctx, sess.WorkspaceID, taskID)
	if err != nil {
		zap.L().Error("remote time entry list failed", zap.String("task_id", taskID), zap.Error(err))
		return nil, err
	}
	return entries, nil
}
