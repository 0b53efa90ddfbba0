package dto

type TaskItem struct {
	ID             string           `json:"id"`
	Title          string           `json:"title"`
	Description    string           `json:"description,omitempty"`
	Status         string           `json:"status"`
	Priority       string           `json:"priority"`
	DueDate        *string          `json:"due_date,omitempty"`
	AssigneeID     *string          `json:"assignee_id,omitempty"`
	AssigneeName   *string          `json:"assignee_name,omitempty"`
	PageID         *string          `json:"page_id,omitempty"`
	Order          int              `json:"order"`
	CreatorID      string           `json:"creator_id,omitempty"`
	CreatedAt      string           `json:"created_at"`
	CompletedAt    *string          `json:"completed_at,omitempty"`
	Tags           []string         `json:"tags,omitempty"`
	Dependencies   []DependencyItem `json:"dependencies,omitempty"`
	Attachments    []AttachmentItem `json:"attachments,omitempty"`
	EstimatedHours *float64         `json:"estimated_hours,omitempty"`
	ActualHours    *float64         `json:"actual_hours,omitempty"`
}

type DependencyItem struct {
	ID              string `json:"id"`
	TaskID          string `json:"task_id"`
	DependsOnTaskID string `json:"depends_on_task_id"`
	Type            string `json:"type"`
}

type AttachmentItem struct {
	ID           string `json:"id"`
	TaskID       *string `json:"task_id,omitempty"`
	StoredName   string `json:"stored_name"`
	OriginalName string `json:"original_name"`
	Size         int64  `json:"size"`
	MimeType     string `json:"mime_type"`
	PublicURL    string `json:"public_url"`
	UploaderID   string `json:"uploader_id"`
	UploadedAt   string `json:"uploaded_at"`
}

type CommentItem struct {
	ID        string `json:"id"`
	TaskID    string `json:"task_id"`
	AuthorID  string `json:"author_id"`
	Body      string `json:"body"`
	CreatedAt string `json:"created_at"`
}

type TimeEntryItem struct {
	ID          string  `json:"id"`
	TaskID      string  `json:"task_id"`
	UserID      string  `json:"user_id"`
	Description string  `json:"description,omitempty"`
	StartedAt   string  `json:"started_at"`
	EndedAt     *string `json:"ended_at,omitempty"`
	Hours       float64 `json:"hours"`
}

type CreateTaskRequest struct {
	Title          string   `json:"title" binding:"required,max=255"`
	Description    *string  `json:"description" binding:"omitempty,max=65535"`
	Status         *string  `json:"status" binding:"omitempty,oneof=todo progress done"`
	Priority       *string  `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	DueDate        *string  `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
	AssigneeID     *string  `json:"assignee_id"`
	AssigneeName   *string  `json:"assignee_name"`
	PageID         *string  `json:"page_id"`
	Tags           []string `json:"tags"`
	EstimatedHours *float64 `json:"estimated_hours" binding:"omitempty,gte=0"`
	AttachmentIDs  []string `json:"attachment_ids"`
}

type CreateTaskResponse struct {
	Task                TaskItem `json:"task"`
	AttachmentsOrphaned bool     `json:"attachments_orphaned,omitempty"`
	Notice              string   `json:"notice,omitempty"`
}

type UpdateTaskRequest struct {
	Title          *string  `json:"title" binding:"omitempty,max=255"`
	Description    *string  `json:"description" binding:"omitempty,max=65535"`
	Status         *string  `json:"status" binding:"omitempty,oneof=todo progress done"`
	Priority       *string  `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	DueDate        *string  `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
	AssigneeID     *string  `json:"assignee_id"`
	AssigneeName   *string  `json:"assignee_name"`
	PageID         *string  `json:"page_id"`
	Tags           []string `json:"tags"`
	EstimatedHours *float64 `json:"estimated_hours" binding:"omitempty,gte=0"`
	ActualHours    *float64 `json:"actual_hours" binding:"omitempty,gte=0"`
}

type MoveTaskRequest struct {
	PageID *string `json:"page_id"`
	Index  *int    `json:"index" binding:"omitempty,gte=0"`
}

type DuplicateTaskRequest struct {
	PageID *string `json:"page_id"`
}

type CreateDependencyRequest struct {
	DependsOnTaskID string  `json:"depends_on_task_id" binding:"required"`
	Type            *string `json:"type" binding:"omitempty,oneof=finish_to_start start_to_start finish_to_finish start_to_finish"`
}

type CreateCommentRequest struct {
	Body string `json:"body" binding:"required,max=65535"`
}

type CreateTimeEntryRequest struct {
	Description string  `json:"description" binding:"omitempty,max=65535"`
	StartedAt   string  `json:"started_at" binding:"required"`
	EndedAt     *string `json:"ended_at"`
	Hours       float64 `json:"hours" binding:"required,gt=0"`
}
