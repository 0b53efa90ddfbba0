package sync

import (
	"context"

	"go.uber.org/zap"

	"eastask/internal/app/state"
	"eastask/internal/core/domain"
)

func (s *Syncer) AddPage(ctx context.Context, sess domain.Session, input domain.CreatePageInput) (domain.Page, error) {
	if !sess.Valid() {
		return domain.Page{}, domain.ErrMissingSession
	}
	if !domain.ValidPageColor(input.Color) {
		return domain.Page{}, domain.ErrInvalidColor
	}

	page, err := s.remote.InsertPage(ctx, sess.WorkspaceID, input)
	if err != nil {
		zap.L().Error("remote page insert failed", zap.String("workspace_id", sess.WorkspaceID), zap.Error(err))
		return domain.Page{}, err
	}

	s.store.Dispatch(state.AddPage{Page: page})
	return page, nil
}

func (s *Syncer) UpdatePage(ctx context.Context, sess domain.Session, pageID string, patch domain.PagePatch) error {
	if !sess.Valid() {
		return domain.ErrMissingSession
	}
	if patch.Color != nil && !domain.ValidPageColor(*patch.Color) {
		return domain.ErrInvalidColor
	}

	if err := s.remote.UpdatePage(ctx, sess.WorkspaceID, pageID, patch); err != nil {
		zap.L().Error("remote page update failed", zap.String("page_id", pageID), zap.Error(err))
		return err
	}

	s.store.Dispatch(state.UpdatePage{ID: pageID, Patch: patch})
	return nil
}

// DeletePage deletes the page remotely; its tasks are kept and reparented
// to the unassigned collection on both sides.
func (s *Syncer) DeletePage(ctx context.Context, sess domain.Session, pageID string) error {
	if !sess.Valid() {
		return domain.ErrMissingSession
	}

	if err := s.remote.DeletePage(ctx, sess.WorkspaceID, pageID); err != nil {
		zap.L().Error("remote page delete failed", zap.String("page_id", pageID), zap.Error(err))
		return err
	}

	s.store.Dispatch(state.DeletePage{ID: pageID})
	return nil
}
