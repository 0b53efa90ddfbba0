package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"eastask/internal/adapter/http/dto"
	"eastask/internal/core/domain"
)

var (
	ErrInvalidTaskPayload = errors.New("invalid task payload")
	ErrInvalidPagePayload = errors.New("invalid page payload")
)

func BuildCreateTaskInput(req dto.CreateTaskRequest) (domain.CreateTaskInput, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	status := domain.TaskStatusTodo
	if req.Status != nil {
		status = domain.TaskStatus(*req.Status)
	}

	priority := domain.TaskPriorityMedium
	if req.Priority != nil {
		priority = domain.TaskPriority(*req.Priority)
	}

	var dueDate *time.Time
	if req.DueDate != nil {
		parsed, err := time.Parse("2006-01-02", *req.DueDate)
		if err != nil {
			return domain.CreateTaskInput{}, ErrInvalidTaskPayload
		}
		dueDate = &parsed
	}

	input := domain.CreateTaskInput{
		Title:          title,
		Status:         status,
		Priority:       priority,
		DueDate:        dueDate,
		AssigneeID:     req.AssigneeID,
		AssigneeName:   req.AssigneeName,
		PageID:         req.PageID,
		Tags:           req.Tags,
		EstimatedHours: req.EstimatedHours,
		AttachmentIDs:  req.AttachmentIDs,
	}
	if req.Description != nil {
		input.Description = *req.Description
	}
	return input, nil
}

// BuildTaskPatch turns the bound request plus the raw JSON into a
// TaskPatch. The raw map is what tells "field absent" apart from "field
// explicitly null": null on a nullable field clears it.
func BuildTaskPatch(req dto.UpdateTaskRequest, raw map[string]json.RawMessage) (domain.TaskPatch, error) {
	if len(raw) == 0 {
		return domain.TaskPatch{}, ErrInvalidTaskPayload
	}

	var patch domain.TaskPatch

	if hasJSONField(raw, "title") {
		if req.Title == nil {
			return domain.TaskPatch{}, ErrInvalidTaskPayload
		}
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return domain.TaskPatch{}, ErrInvalidTaskPayload
		}
		patch.Title = &title
	}

	if hasJSONField(raw, "description") {
		if isJSONNull(raw["description"]) {
			empty := ""
			patch.Description = &empty
		} else if req.Description == nil {
			return domain.TaskPatch{}, ErrInvalidTaskPayload
		} else {
			patch.Description = req.Description
		}
	}

	if hasJSONField(raw, "status") {
		if req.Status == nil {
			return domain.TaskPatch{}, ErrInvalidTaskPayload
		}
		status := domain.TaskStatus(*req.Status)
		patch.Status = &status
	}

	if hasJSONField(raw, "priority") {
		if req.Priority == nil {
			return domain.TaskPatch{}, ErrInvalidTaskPayload
		}
		priority := domain.TaskPriority(*req.Priority)
		patch.Priority = &priority
	}

	if hasJSONField(raw, "due_date") {
		patch.DueDateSet = true
		if !isJSONNull(raw["due_date"]) {
			if req.DueDate == nil {
				return domain.TaskPatch{}, ErrInvalidTaskPayload
			}
			parsed, err := time.Parse("2006-01-02", *req.DueDate)
			if err != nil {
				return domain.TaskPatch{}, ErrInvalidTaskPayload
			}
			patch.DueDate = &parsed
		}
	}

	if hasJSONField(raw, "assignee_id") || hasJSONField(raw, "assignee_name") {
		patch.AssigneeSet = true
		patch.AssigneeID = req.AssigneeID
		patch.AssigneeName = req.AssigneeName
	}

	if hasJSONField(raw, "page_id") {
		patch.PageIDSet = true
		patch.PageID = req.PageID
	}

	if hasJSONField(raw, "tags") {
		patch.TagsSet = true
		patch.Tags = req.Tags
	}

	patch.EstimatedHours = req.EstimatedHours
	patch.ActualHours = req.ActualHours

	return patch, nil
}

func BuildCreatePageInput(req dto.CreatePageRequest) (domain.CreatePageInput, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return domain.CreatePageInput{}, ErrInvalidPagePayload
	}

	category := domain.PageCategory(req.Category)
	if !category.Valid() {
		return domain.CreatePageInput{}, ErrInvalidPagePayload
	}

	input := domain.CreatePageInput{
		Title:    title,
		Category: category,
		URL:      req.URL,
		Color:    req.Color,
	}
	if req.Description != nil {
		input.Description = *req.Description
	}
	return input, nil
}

func BuildPagePatch(req dto.UpdatePageRequest, raw map[string]json.RawMessage) (domain.PagePatch, error) {
	if len(raw) == 0 {
		return domain.PagePatch{}, ErrInvalidPagePayload
	}

	var patch domain.PagePatch

	if hasJSONField(raw, "title") {
		if req.Title == nil {
			return domain.PagePatch{}, ErrInvalidPagePayload
		}
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return domain.PagePatch{}, ErrInvalidPagePayload
		}
		patch.Title = &title
	}

	if hasJSONField(raw, "description") {
		if isJSONNull(raw["description"]) {
			empty := ""
			patch.Description = &empty
		} else if req.Description == nil {
			return domain.PagePatch{}, ErrInvalidPagePayload
		} else {
			patch.Description = req.Description
		}
	}

	if hasJSONField(raw, "category") {
		if req.Category == nil {
			return domain.PagePatch{}, ErrInvalidPagePayload
		}
		category := domain.PageCategory(*req.Category)
		if !category.Valid() {
			return domain.PagePatch{}, ErrInvalidPagePayload
		}
		patch.Category = &category
	}

	if hasJSONField(raw, "url") {
		patch.URLSet = true
		if !isJSONNull(raw["url"]) {
			if req.URL == nil {
				return domain.PagePatch{}, ErrInvalidPagePayload
			}
			patch.URL = req.URL
		}
	}

	if hasJSONField(raw, "color") {
		if req.Color == nil {
			return domain.PagePatch{}, ErrInvalidPagePayload
		}
		patch.Color = req.Color
	}

	return patch, nil
}

func hasJSONField(raw map[string]json.RawMessage, field string) bool {
	_, ok := raw[field]
	return ok
}

func isJSONNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}
