package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"eastask/internal/adapter/http/dto"
	"eastask/internal/adapter/http/mapper"
	"eastask/internal/adapter/http/middleware"
	"eastask/internal/core/ports"
	"eastask/pkg/apierrors"
)

// WorkspaceHandler serves the synchronized tree and the operations that
// act on it as a whole.
type WorkspaceHandler struct {
	syncer ports.Syncer
}

func NewWorkspaceHandler(syncer ports.Syncer) *WorkspaceHandler {
	return &WorkspaceHandler{syncer: syncer}
}

// GetState returns the current local tree without touching the backend.
func (h *WorkspaceHandler) GetState(c *gin.Context) {
	c.JSON(http.StatusOK, mapper.ToStateResponse(h.syncer.State()))
}

// Reload forces a full reconciliation and returns the refreshed tree.
func (h *WorkspaceHandler) Reload(c *gin.Context) {
	lang := middleware.GetLang(c)

	if err := h.syncer.LoadWorkspaceData(c.Request.Context(), middleware.GetSession(c)); err != nil {
		code, msgKey := apierrors.Classify(err)
		c.JSON(code, apierrors.CreateError(code, msgKey, lang))
		return
	}

	c.JSON(http.StatusOK, mapper.ToStateResponse(h.syncer.State()))
}

// Migrate imports the state staged in the local cache into the backend.
func (h *WorkspaceHandler) Migrate(c *gin.Context) {
	lang := middleware.GetLang(c)

	report, err := h.syncer.MigrateFromLocalCache(c.Request.Context(), middleware.GetSession(c))
	if err != nil {
		code, _ := apierrors.Classify(err)
		c.JSON(code, apierrors.CreateError(code, apierrors.MsgMigrationFailed, lang))
		return
	}

	c.JSON(http.StatusOK, dto.MigrateResponse{
		PagesCreated: report.PagesCreated,
		TasksCreated: report.TasksCreated,
	})
}
