package dto

type PageItem struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Category    string     `json:"category"`
	URL         *string    `json:"url,omitempty"`
	Color       string     `json:"color"`
	CreatedAt   string     `json:"created_at"`
	Tasks       []TaskItem `json:"tasks"`
}

type CreatePageRequest struct {
	Title       string  `json:"title" binding:"required,max=255"`
	Description *string `json:"description" binding:"omitempty,max=65535"`
	Category    string  `json:"category" binding:"required,oneof=Work Personal Education Finance Health Other"`
	URL         *string `json:"url" binding:"omitempty,url"`
	Color       string  `json:"color" binding:"required"`
}

type UpdatePageRequest struct {
	Title       *string `json:"title" binding:"omitempty,max=255"`
	Description *string `json:"description" binding:"omitempty,max=65535"`
	Category    *string `json:"category" binding:"omitempty,oneof=Work Personal Education Finance Health Other"`
	URL         *string `json:"url" binding:"omitempty,url"`
	Color       *string `json:"color"`
}

type StateResponse struct {
	Pages           []PageItem `json:"pages"`
	UnassignedTasks []TaskItem `json:"unassigned_tasks"`
}

type MigrateResponse struct {
	PagesCreated int `json:"pages_created"`
	TasksCreated int `json:"tasks_created"`
}
