package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"eastask/internal/adapter/http/dto"
	"eastask/internal/adapter/http/mapper"
	"eastask/internal/adapter/http/middleware"
	"eastask/internal/core/domain"
	"eastask/internal/core/ports"
	"eastask/pkg/apierrors"
)

// ActivityHandler covers the per-task extras: dependencies, comments and
// time entries.
type ActivityHandler struct {
	syncer ports.Syncer
}

func NewActivityHandler(syncer ports.Syncer) *ActivityHandler {
	return &ActivityHandler{syncer: syncer}
}

func (h *ActivityHandler) CreateDependency(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.CreateDependencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang))
		return
	}

	dep := domain.TaskDependency{
		TaskID:          c.Param("id"),
		DependsOnTaskID: req.DependsOnTaskID,
		Type:            domain.DependencyFinishToStart,
	}
	if req.Type != nil {
		dep.Type = domain.DependencyType(*req.Type)
	}

	created, err := h.syncer.AddDependency(c.Request.Context(), middleware.GetSession(c), dep)
	if err != nil {
		code, msgKey := apierrors.Classify(err)
		c.JSON(code, apierrors.CreateError(code, msgKey, lang))
		return
	}

	c.JSON(http.StatusCreated, mapper.ToDependencyItem(created))
}

func (h *ActivityHandler) DeleteDependency(c *gin.Context) {
	lang := middleware.GetLang(c)

	if err := h.syncer.DeleteDependency(c.Request.Context(), middleware.GetSession(c), c.Param("depID")); err != nil {
		code, msgKey := apierrors.Classify(err)
		c.JSON(code, apierrors.CreateError(code, msgKey, lang))
		return
	}

	c.Status(http.StatusNoContent)
}

// DependencyCandidates lists tasks the task may depend on without
// forming a cycle.
func (h *ActivityHandler) DependencyCandidates(c *gin.Context) {
	lang := middleware.GetLang(c)

	candidates, err := h.syncer.DependencyCandidates(c.Request.Context(), middleware.GetSession(c), c.Param("id"))
	if err != nil {
		code, msgKey := apierrors.Classify(err)
		c.JSON(code, apierrors.CreateError(code, msgKey, lang))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItems(candidates))
}

func (h *ActivityHandler) CreateComment(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang))
		return
	}

	comment, err := h.syncer.AddComment(c.Request.Context(), middleware.GetSession(c), c.Param("id"), req.Body)
	if err != nil {
		code, msgKey := apierrors.Classify(err)
		c.JSON(code, apierrors.CreateError(code, msgKey, lang))
		return
	}

	c.JSON(http.StatusCreated, mapper.ToCommentItem(comment))
}

func (h *ActivityHandler) ListComments(c *gin.Context) {
	lang := middleware.GetLang(c)

	comments, err := h.syncer.ListComments(c.Request.Context(), middleware.GetSession(c), c.Param("id"))
	if err != nil {
		code, msgKey := apierrors.Classify(err)
		c.JSON(code, apierrors.CreateError(code, msgKey, lang))
		return
	}

	c.JSON(http.StatusOK, mapper.ToCommentItems(comments))
}

func (h *ActivityHandler) CreateTimeEntry(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.CreateTimeEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang))
		return
	}

	startedAt, err := time.Parse(time.RFC3339, req.StartedAt)
	if err != nil {
		c.JSON(http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang))
		return
	}

	entry := domain.TimeEntry{
		TaskID:      c.Param("id"),
		Description: req.Description,
		StartedAt:   startedAt,
		Hours:       req.Hours,
	}
	if req.EndedAt != nil {
		endedAt, err := time.Parse(time.RFC3339, *req.EndedAt)
		if err != nil {
			c.JSON(http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang))
			return
		}
		entry.EndedAt = &endedAt
	}

	created, err := h.syncer.AddTimeEntry(c.Request.Context(), middleware.GetSession(c), entry)
	if err != nil {
		code, msgKey := apierrors.Classify(err)
		c.JSON(code, apierrors.CreateError(code, msgKey, lang))
		return
	}

	c.JSON(http.StatusCreated, mapper.ToTimeEntryItem(created))
}

func (h *ActivityHandler) ListTimeEntries(c *gin.Context) {
	lang := middleware.GetLang(c)

	entries, err := h.syncer.ListTimeEntries(c.Request.Context(), middleware.GetSession(c), c.Param("id"))
	if err != nil {
		code, msgKey := apierrors.Classify(err)
		c.JSON(code, apierrors.CreateError(code, msgKey, lang))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTimeEntryItems(entries))
}
