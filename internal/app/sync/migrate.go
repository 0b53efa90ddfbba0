package sync

import (
	"context"

	"go.uber.org/zap"

	"eastask/internal/core/domain"
	"eastask/internal/core/ports"
)

// MigrateFromLocalCache imports a pre-login AppState staged in the local
// cache into the remote store. Pages go first so tasks can be rewritten
// from old page ids to the remote-assigned ones. The import runs as a
// saga: every created row is recorded and compensating deletes run on the
// first failure, so a partial import never survives. The cache is cleared
// and a full reload dispatched only after everything landed.
func (s *Syncer) MigrateFromLocalCache(ctx context.Context, sess domain.Session) (ports.MigrationReport, error) {
	if !sess.Valid() {
		return ports.MigrationReport{}, domain.ErrMissingSession
	}

	staged, ok, err := s.cache.Load(sess.UserID)
	if err != nil {
		zap.L().Error("local cache read failed", zap.String("user_id", sess.UserID), zap.Error(err))
		return ports.MigrationReport{}, err
	}
	if !ok {
		return ports.MigrationReport{}, nil
	}

	var (
		report       ports.MigrationReport
		createdPages []string
		createdTasks []string
		pageIDMap    = make(map[string]string, len(staged.Pages))
	)

	compensate := func() {
		// Reverse creation order: tasks reference pages.
		for i := len(createdTasks) - 1; i >= 0; i-- {
			if err := s.remote.DeleteTask(ctx, sess.WorkspaceID, createdTasks[i]); err != nil {
				zap.L().Warn("migration compensation: task delete failed",
					zap.String("task_id", createdTasks[i]), zap.Error(err))
			}
		}
		for i := len(createdPages) - 1; i >= 0; i-- {
			if err := s.remote.DeletePage(ctx, sess.WorkspaceID, createdPages[i]); err != nil {
				zap.L().Warn("migration compensation: page delete failed",
					zap.String("page_id", createdPages[i]), zap.Error(err))
			}
		}
	}

	for _, p := range staged.Pages {
		created, err := s.remote.InsertPage(ctx, sess.WorkspaceID, domain.CreatePageInput{
			Title:       p.Title,
			Description: p.Description,
			Category:    p.Category,
			URL:         p.URL,
			Color:       p.Color,
		})
		if err != nil {
			zap.L().Error("migration page insert failed", zap.String("page_title", p.Title), zap.Error(err))
			compensate()
			report.Compensated = true
			return report, err
		}
		createdPages = append(createdPages, created.ID)
		pageIDMap[p.ID] = created.ID
		report.PagesCreated++
	}

	insertTask := func(t domain.Task) error {
		var pageID *string
		if t.PageID != nil {
			if mapped, ok := pageIDMap[*t.PageID]; ok {
				pageID = &mapped
			}
		}
		created, err := s.remote.InsertTask(ctx, sess.WorkspaceID, domain.CreateTaskInput{
			Title:          t.Title,
			Description:    t.Description,
			Status:         t.Status,
			Priority:       t.Priority,
			DueDate:        t.DueDate,
			AssigneeID:     t.AssigneeID,
			AssigneeName:   t.AssigneeName,
			PageID:         pageID,
			Tags:           t.Tags,
			EstimatedHours: t.EstimatedHours,
			CreatorID:      sess.UserID,
		})
		if err != nil {
			return err
		}
		createdTasks = append(createdTasks, created.ID)
		report.TasksCreated++
		return nil
	}

	for _, t := range staged.UnassignedTasks {
		if err := insertTask(t); err != nil {
			zap.L().Error("migration task insert failed", zap.String("task_title", t.Title), zap.Error(err))
			compensate()
			report.Compensated = true
			return report, err
		}
	}
	for _, p := range staged.Pages {
		for _, t := range p.Tasks {
			task := t
			task.PageID = &p.ID
			if err := insertTask(task); err != nil {
				zap.L().Error("migration task insert failed", zap.String("task_title", t.Title), zap.Error(err))
				compensate()
				report.Compensated = true
				return report, err
			}
		}
	}

	if err := s.cache.Clear(sess.UserID); err != nil {
		// The rows are in; a stale cache file only risks a re-import
		// attempt, which the caller can retry clearing.
		zap.L().Warn("local cache clear failed", zap.String("user_id", sess.UserID), zap.Error(err))
	}

	if err := s.LoadWorkspaceData(ctx, sess); err != nil {
		return report, err
	}
	return report, nil
}
