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

type PageHandler struct {
	syncer ports.Syncer
}

func NewPageHandler(syncer ports.Syncer) *PageHandler {
	return &PageHandler{syncer: syncer}
}

func (h *PageHandler) CreatePage(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.CreatePageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPagePayload, lang))
		return
	}

	input, err := validation.BuildCreatePageInput(req)
	if err != nil {
		c.JSON(http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPagePayload, lang))
		return
	}

	page, err := h.syncer.AddPage(c.Request.Context(), middleware.GetSession(c), input)
	if err != nil {
		code, msgKey := apierrors.Classify(err)
		c.JSON(code, apierrors.CreateError(code, msgKey, lang))
		return
	}

	c.JSON(http.StatusCreated, mapper.ToPageItem(page))
}

func (h *PageHandler) UpdatePage(c *gin.Context) {
	lang := middleware.GetLang(c)
	pageID := c.Param("id")

	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPagePayload, lang))
		return
	}

	var req dto.UpdatePageRequest
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil || json.Unmarshal(body, &req) != nil {
		c.JSON(http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPagePayload, lang))
		return
	}

	patch, err := validation.BuildPagePatch(req, raw)
	if err != nil {
		c.JSON(http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPagePayload, lang))
		return
	}

	if err := h.syncer.UpdatePage(c.Request.Context(), middleware.GetSession(c), pageID, patch); err != nil {
		code, msgKey := apierrors.Classify(err)
		c.JSON(code, apierrors.CreateError(code, msgKey, lang))
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *PageHandler) DeletePage(c *gin.Context) {
	lang := middleware.GetLang(c)

	if err := h.syncer.DeletePage(c.Request.Context(), middleware.GetSession(c), c.Param("id")); err != nil {
		code, msgKey := apierrors.Classify(err)
		c.JSON(code, apierrors.CreateError(code, msgKey, lang))
		return
	}

	c.Status(http.StatusNoContent)
}
