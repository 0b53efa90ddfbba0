package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"eastask/internal/adapter/http/dto"
	"eastask/internal/adapter/http/mapper"
	"eastask/internal/adapter/http/middleware"
	"eastask/internal/adapter/http/validation"
	"eastask/internal/core/ports"
	"eastask/pkg/apierrors"
)

type TaskHandler struct {
	syncer ports.Syncer
}

func NewTaskHandler(syncer ports.Syncer) *TaskHandler {
	return &TaskHandler{syncer: syncer}
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang))
		return
	}

	input, err := validation.BuildCreateTaskInput(req)
	if err != nil {
		c.JSON(http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang))
		return
	}

	result, err := h.syncer.AddTask(c.Request.Context(), middleware.GetSession(c), input)
	if err != nil {
		code, msgKey := apierrors.Classify(err)
		c.JSON(code, apierrors.CreateError(code, msgKey, lang))
		return
	}

	resp := dto.CreateTaskResponse{Task: mapper.ToTaskItem(result.Task)}
	if result.AttachmentsOrphaned {
		resp.AttachmentsOrphaned = true
		resp.Notice = apierrors.GetTransErrorMsg(apierrors.MsgAttachmentsOrphaned, lang)
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	lang := middleware.GetLang(c)
	taskID := c.Param("id")

	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang))
		return
	}

	var req dto.UpdateTaskRequest
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil || json.Unmarshal(body, &req) != nil {
		c.JSON(http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang))
		return
	}

	patch, err := validation.BuildTaskPatch(req, raw)
	if err != nil {
		c.JSON(http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang))
		return
	}

	if err := h.syncer.UpdateTask(c.Request.Context(), middleware.GetSession(c), taskID, patch); err != nil {
		code, msgKey := apierrors.Classify(err)
		c.JSON(code, apierrors.CreateError(code, msgKey, lang))
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	if err := h.syncer.DeleteTask(c.Request.Context(), middleware.GetSession(c), c.Param("id")); err != nil {
		code, msgKey := apierrors.Classify(err)
		c.JSON(code, apierrors.CreateError(code, msgKey, lang))
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TaskHandler) DuplicateTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.DuplicateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang))
		return
	}

	clone, err := h.syncer.DuplicateTask(c.Request.Context(), middleware.GetSession(c), c.Param("id"), req.PageID)
	if err != nil {
		code, msgKey := apierrors.Classify(err)
		c.JSON(code, apierrors.CreateError(code, msgKey, lang))
		return
	}

	c.JSON(http.StatusCreated, mapper.ToTaskItem(clone))
}

func (h *TaskHandler) MoveTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.MoveTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang))
		return
	}

	if err := h.syncer.MoveTask(c.Request.Context(), middleware.GetSession(c), c.Param("id"), req.PageID, req.Index); err != nil {
		code, msgKey := apierrors.Classify(err)
		c.JSON(code, apierrors.CreateError(code, msgKey, lang))
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TaskHandler) SearchTasks(c *gin.Context) {
	results := h.syncer.SearchTasks(c.Query("q"))
	c.JSON(http.StatusOK, mapper.ToTaskItems(results))
}
