package sync

import (
	"context"

	"go.uber.org/zap"

	"eastask/internal/app/state"
	"eastask/internal/core/domain"
	"eastask/internal/core/ports"
)

// Syncer is the command layer: every operation checks the session, writes
// to the remote store first, and only dispatches to local state once the
// remote call confirmed. Remote failures leave local state untouched; the
// next reconciliation re-pulls ground truth.
type Syncer struct {
	store    *state.Store
	remote   ports.RemoteStore
	notifier ports.Notifier
	cache    ports.LocalCache
}

func NewSyncer(store *state.Store, remote ports.RemoteStore, notifier ports.Notifier, cache ports.LocalCache) *Syncer {
	return &Syncer{store: store, remote: remote, notifier: notifier, cache: cache}
}

var _ ports.Syncer = (*Syncer)(nil)

func (s *Syncer) State() domain.AppState {
	return s.store.GetState()
}

// Subscribe exposes store subscriptions to consumers that need to react
// to state changes without reaching into the store directly.
func (s *Syncer) Subscribe(fn func(domain.AppState)) func() {
	return s.store.Subscribe(fn)
}

func (s *Syncer) AddTask(ctx context.Context, sess domain.Session, input domain.CreateTaskInput) (ports.AddTaskResult, error) {
	if !sess.Valid() {
		return ports.AddTaskResult{}, domain.ErrMissingSession
	}

	input.CreatorID = sess.UserID
	task, err := s.remote.InsertTask(ctx, sess.WorkspaceID, input)
	if err != nil {
		zap.L().Error("remote task insert failed", zap.String("workspace_id", sess.WorkspaceID), zap.Error(err))
		return ports.AddTaskResult{}, err
	}

	result := ports.AddTaskResult{Task: task}
	if len(input.AttachmentIDs) > 0 {
		// Best effort: the task exists either way, the caller is told when
		// the pre-uploaded files stayed orphaned.
		if err := s.remote.ReassignAttachments(ctx, sess.WorkspaceID, input.AttachmentIDs, task.ID); err != nil {
			zap.L().Warn("attachment re-association failed",
				zap.String("task_id", task.ID),
				zap.Strings("attachment_ids", input.AttachmentIDs),
				zap.Error(err))
			result.AttachmentsOrphaned = true
		}
	}

	s.store.Dispatch(state.AddTask{Task: task})
	return result, nil
}

func (s *Syncer) UpdateTask(ctx context.Context, sess domain.Session, taskID string, patch domain.TaskPatch) error {
	if !sess.Valid() {
		return domain.ErrMissingSession
	}

	prior, err := s.remote.GetTask(ctx, sess.WorkspaceID, taskID)
	if err != nil {
		zap.L().Error("remote task fetch failed", zap.String("task_id", taskID), zap.Error(err))
		return err
	}

	patch = withCompletionTimestamp(patch, prior)
	if err := s.remote.UpdateTask(ctx, sess.WorkspaceID, taskID, patch); err != nil {
		zap.L().Error("remote task update failed", zap.String("task_id", taskID), zap.Error(err))
		return err
	}

	s.notifyTaskChanges(ctx, sess, prior, patch)
	s.store.Dispatch(state.UpdateTask{ID: taskID, Patch: patch})
	return nil
}

func (s *Syncer) DeleteTask(ctx context.Context, sess domain.Session, taskID string) error {
	if !sess.Valid() {
		return domain.ErrMissingSession
	}

	if err := s.remote.DeleteTask(ctx, sess.WorkspaceID, taskID); err != nil {
		zap.L().Error("remote task delete failed", zap.String("task_id", taskID), zap.Error(err))
		return err
	}

	s.store.Dispatch(state.DeleteTask{ID: taskID})
	return nil
}

func (s *Syncer) DuplicateTask(ctx context.Context, sess domain.Session, taskID string, targetPageID *string) (domain.Task, error) {
	if !sess.Valid() {
		return domain.Task{}, domain.ErrMissingSession
	}

	source, ok := state.FindTask(s.store.GetState(), taskID)
	if !ok {
		return domain.Task{}, domain.ErrTaskNotFound
	}

	clone, err := s.remote.InsertTask(ctx, sess.WorkspaceID, domain.CreateTaskInput{
		Title:          domain.CopyTitle(source.Title),
		Description:    source.Description,
		Status:         source.Status,
		Priority:       source.Priority,
		DueDate:        source.DueDate,
		AssigneeID:     source.AssigneeID,
		AssigneeName:   source.AssigneeName,
		PageID:         targetPageID,
		Tags:           source.Tags,
		EstimatedHours: source.EstimatedHours,
		CreatorID:      sess.UserID,
	})
	if err != nil {
		zap.L().Error("remote duplicate insert failed", zap.String("source_task_id", taskID), zap.Error(err))
		return domain.Task{}, err
	}

	s.store.Dispatch(state.DuplicateTask{
		ID:           taskID,
		CloneID:      clone.ID,
		TargetPageID: targetPageID,
		Now:          clone.CreatedAt,
	})
	return clone, nil
}

// MoveTask is a thin wrapper over the task update that only changes the
// owning page; the local dispatch additionally places the task at the
// requested index.
func (s *Syncer) MoveTask(ctx context.Context, sess domain.Session, taskID string, targetPageID *string, targetIndex *int) error {
	if !sess.Valid() {
		return domain.ErrMissingSession
	}

	patch := domain.TaskPatch{PageID: targetPageID, PageIDSet: true}
	if err := s.remote.UpdateTask(ctx, sess.WorkspaceID, taskID, patch); err != nil {
		zap.L().Error("remote task move failed", zap.String("task_id", taskID), zap.Error(err))
		return err
	}

	s.store.Dispatch(state.MoveTask{ID: taskID, TargetPageID: targetPageID, TargetIndex: targetIndex})
	return nil
}

// withCompletionTimestamp stamps or clears CompletedAt when the patch
// crosses the done boundary.
func withCompletionTimestamp(patch domain.TaskPatch, prior domain.Task) domain.TaskPatch {
	if patch.Status == nil || patch.CompletedAtSet {
		return patch
	}
	switch {
	case *patch.Status == domain.TaskStatusDone && prior.Status != domain.TaskStatusDone:
		now := nowFunc()
		patch.CompletedAt = &now
		patch.CompletedAtSet = true
	case *patch.Status != domain.TaskStatusDone && prior.Status == domain.TaskStatusDone:
		patch.CompletedAt = nil
		patch.CompletedAtSet = true
	}
	return patch
}

func (s *Syncer) notifyTaskChanges(ctx context.Context, sess domain.Session, prior domain.Task, patch domain.TaskPatch) {
	title := prior.Title
	if patch.Title != nil {
		title = *patch.Title
	}

	if patch.AssigneeSet && patch.AssigneeID != nil {
		if prior.AssigneeID == nil || *prior.AssigneeID != *patch.AssigneeID {
			notice := domain.AssignmentNotice{
				WorkspaceID: sess.WorkspaceID,
				TaskID:      prior.ID,
				TaskTitle:   title,
				AssigneeID:  *patch.AssigneeID,
				ActorID:     sess.UserID,
			}
			if err := s.notifier.NotifyAssignment(ctx, notice); err != nil {
				zap.L().Warn("assignment notice failed", zap.String("task_id", prior.ID), zap.Error(err))
			}
		}
	}

	if patch.Status != nil && *patch.Status != prior.Status {
		recipients := statusChangeRecipients(prior, patch)
		notice := domain.StatusChangeNotice{
			WorkspaceID:  sess.WorkspaceID,
			TaskID:       prior.ID,
			TaskTitle:    title,
			OldStatus:    prior.Status,
			NewStatus:    *patch.Status,
			RecipientIDs: recipients,
			ActorID:      sess.UserID,
		}
		if err := s.notifier.NotifyStatusChange(ctx, notice); err != nil {
			zap.L().Warn("status change notice failed", zap.String("task_id", prior.ID), zap.Error(err))
		}
	}
}

// statusChangeRecipients collects creator plus prior and new assignee,
// deduplicated, order preserved.
func statusChangeRecipients(prior domain.Task, patch domain.TaskPatch) []string {
	candidates := []string{prior.CreatorID}
	if prior.AssigneeID != nil {
		candidates = append(candidates, *prior.AssigneeID)
	}
	if patch.AssigneeSet && patch.AssigneeID != nil {
		candidates = append(candidates, *patch.AssigneeID)
	}

	seen := make(map[string]struct{}, len(candidates))
	recipients := make([]string, 0, len(candidates))
	for _, id := range candidates {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		recipients = append(recipients, id)
	}
	return recipients
}
