package validation

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"eastask/internal/adapter/http/dto"
	"eastask/internal/core/domain"
)

func decode(t *testing.T, body string) (dto.UpdateTaskRequest, map[string]json.RawMessage) {
	t.Helper()

	var req dto.UpdateTaskRequest
	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	require.NoError(t, json.Unmarshal([]byte(body), &raw))
	return req, raw
}

func TestBuildTaskPatch_EmptyBodyRejected(t *testing.T) {
	req, raw := decode(t, `{}`)
	_, err := BuildTaskPatch(req, raw)
	require.ErrorIs(t, err, ErrInvalidTaskPayload)
}

func TestBuildTaskPatch_AbsentFieldLeavesNoTrace(t *testing.T) {
	req, raw := decode(t, `{"title":"Renamed"}`)

	patch, err := BuildTaskPatch(req, raw)
	require.NoError(t, err)
	require.Equal(t, "Renamed", *patch.Title)
	require.False(t, patch.DueDateSet)
	require.False(t, patch.AssigneeSet)
	require.False(t, patch.PageIDSet)
	require.False(t, patch.TagsSet)
	require.Nil(t, patch.Status)
}

func TestBuildTaskPatch_NullDueDateClears(t *testing.T) {
	req, raw := decode(t, `{"due_date":null}`)

	patch, err := BuildTaskPatch(req, raw)
	require.NoError(t, err)
	require.True(t, patch.DueDateSet)
	require.Nil(t, patch.DueDate)
}

func TestBuildTaskPatch_DueDateValueParses(t *testing.T) {
	req, raw := decode(t, `{"due_date":"2026-03-15"}`)

	patch, err := BuildTaskPatch(req, raw)
	require.NoError(t, err)
	require.True(t, patch.DueDateSet)
	require.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), *patch.DueDate)
}

func TestBuildTaskPatch_NullDescriptionBecomesEmpty(t *testing.T) {
	req, raw := decode(t, `{"description":null}`)

	patch, err := BuildTaskPatch(req, raw)
	require.NoError(t, err)
	require.NotNil(t, patch.Description)
	require.Empty(t, *patch.Description)
}

func TestBuildTaskPatch_NullPageIDMovesToUnassigned(t *testing.T) {
	req, raw := decode(t, `{"page_id":null}`)

	patch, err := BuildTaskPatch(req, raw)
	require.NoError(t, err)
	require.True(t, patch.PageIDSet)
	require.Nil(t, patch.PageID)
}

func TestBuildTaskPatch_BlankTitleRejected(t *testing.T) {
	req, raw := decode(t, `{"title":"   "}`)
	_, err := BuildTaskPatch(req, raw)
	require.ErrorIs(t, err, ErrInvalidTaskPayload)
}

func TestBuildCreateTaskInput_Defaults(t *testing.T) {
	input, err := BuildCreateTaskInput(dto.CreateTaskRequest{Title: "  Draft  "})
	require.NoError(t, err)
	require.Equal(t, "Draft", input.Title)
	require.Equal(t, domain.TaskStatusTodo, input.Status)
	require.Equal(t, domain.TaskPriorityMedium, input.Priority)
	require.Nil(t, input.DueDate)
}

func TestBuildPagePatch_NullURLClears(t *testing.T) {
	body := `{"url":null}`
	var req dto.UpdatePageRequest
	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	require.NoError(t, json.Unmarshal([]byte(body), &raw))

	patch, err := BuildPagePatch(req, raw)
	require.NoError(t, err)
	require.True(t, patch.URLSet)
	require.Nil(t, patch.URL)
}

func TestBuildPagePatch_UnknownCategoryRejected(t *testing.T) {
	body := `{"category":"Hobby"}`
	var req dto.UpdatePageRequest
	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	require.NoError(t, json.Unmarshal([]byte(body), &raw))

	_, err := BuildPagePatch(req, raw)
	require.ErrorIs(t, err, ErrInvalidPagePayload)
}
