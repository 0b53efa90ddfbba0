package domain

import "time"

type TaskStatus string

const (
	TaskStatusTodo     TaskStatus = "todo"
	TaskStatusProgress TaskStatus = "progress"
	TaskStatusDone     TaskStatus = "done"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusTodo, TaskStatusProgress, TaskStatusDone:
		return true
	}
	return false
}

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
	TaskPriorityUrgent TaskPriority = "urgent"
)

func (p TaskPriority) Valid() bool {
	switch p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh, TaskPriorityUrgent:
		return true
	}
	return false
}

type Task struct {
	ID             string
	Title          string
	Description    string
	Status         TaskStatus
	Priority       TaskPriority
	DueDate        *time.Time
	AssigneeID     *string
	AssigneeName   *string
	PageID         *string
	Order          int
	CreatorID      string
	CreatedAt      time.Time
	CompletedAt    *time.Time
	Tags           []string
	Subtasks       []SubTask
	Dependencies   []TaskDependency
	Comments       []Comment
	Attachments    []FileMetadata
	EstimatedHours *float64
	ActualHours    *float64
}

type SubTask struct {
	ID         string
	Title      string
	Completed  bool
	AssigneeID *string
	DueDate    *time.Time
	Order      int
}

type DependencyType string

const (
	DependencyFinishToStart  DependencyType = "finish_to_start"
	DependencyStartToStart   DependencyType = "start_to_start"
	DependencyFinishToFinish DependencyType = "finish_to_finish"
	DependencyStartToFinish  DependencyType = "start_to_finish"
)

func (d DependencyType) Valid() bool {
	switch d {
	case DependencyFinishToStart, DependencyStartToStart, DependencyFinishToFinish, DependencyStartToFinish:
		return true
	}
	return false
}

type TaskDependency struct {
	ID              string
	TaskID          string
	DependsOnTaskID string
	Type            DependencyType
}

type Comment struct {
	ID        string
	TaskID    string
	AuthorID  string
	Body      string
	CreatedAt time.Time
}

type TimeEntry struct {
	ID          string
	TaskID      string
	UserID      string
	Description string
	StartedAt   time.Time
	EndedAt     *time.Time
	Hours       float64
}

type FileMetadata struct {
	ID           string
	WorkspaceID  string
	TaskID       *string
	CommentID    *string
	StoredName   string
	OriginalName string
	Size         int64
	MimeType     string
	PublicURL    string
	UploaderID   string
	UploadedAt   time.Time
}

// TaskPatch carries a partial task update. Pointer fields are applied when
// non-nil; the Set flags distinguish "clear this nullable field" from
// "leave it alone".
type TaskPatch struct {
	Title          *string
	Description    *string
	Status         *TaskStatus
	Priority       *TaskPriority
	DueDate        *time.Time
	DueDateSet     bool
	AssigneeID     *string
	AssigneeName   *string
	AssigneeSet    bool
	PageID         *string
	PageIDSet      bool
	Tags           []string
	TagsSet        bool
	CompletedAt    *time.Time
	CompletedAtSet bool
	EstimatedHours *float64
	ActualHours    *float64
}

// CopyTitle is the title given to a duplicated task.
func CopyTitle(title string) string {
	return title + " (Copy)"
}
