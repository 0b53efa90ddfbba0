package mapper

import (
	"time"

	"eastask/internal/adapter/http/dto"
	"eastask/internal/core/domain"
)

func ToStateResponse(st domain.AppState) dto.StateResponse {
	resp := dto.StateResponse{
		Pages:           make([]dto.PageItem, 0, len(st.Pages)),
		UnassignedTasks: ToTaskItems(st.UnassignedTasks),
	}
	for _, page := range st.Pages {
		resp.Pages = append(resp.Pages, ToPageItem(page))
	}
	return resp
}

func ToPageItem(page domain.Page) dto.PageItem {
	item := dto.PageItem{
		ID:          page.ID,
		Title:       page.Title,
		Description: page.Description,
		Category:    string(page.Category),
		Color:       page.Color,
		CreatedAt:   page.CreatedAt.Format(time.RFC3339),
		Tasks:       ToTaskItems(page.Tasks),
	}
	if page.URL != nil {
		value := *page.URL
		item.URL = &value
	}
	return item
}
