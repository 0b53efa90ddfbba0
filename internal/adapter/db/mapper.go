package db

import (
	"fmt"

	"eastask/internal/core/domain"
)

// The hosted backend encodes status differently from the local model
// (todo/progress/done vs pending/in_progress/completed). Both directions
// are total switches with no default fallthrough, so a new enum value is
// a compile-visible change here and nowhere else.

func statusToRemote(s domain.TaskStatus) (string, error) {
	switch s {
	case domain.TaskStatusTodo:
		return "pending", nil
	case domain.TaskStatusProgress:
		return "in_progress", nil
	case domain.TaskStatusDone:
		return "completed", nil
	}
	return "", fmt.Errorf("unknown task status %q", s)
}

func statusFromRemote(s string) (domain.TaskStatus, error) {
	switch s {
	case "pending":
		return domain.TaskStatusTodo, nil
	case "in_progress":
		return domain.TaskStatusProgress, nil
	case "completed":
		return domain.TaskStatusDone, nil
	}
	return "", fmt.Errorf("unknown remote task status %q", s)
}

// Priority uses the same encoding on both sides; the translation still
// goes through a total switch so the two vocabularies stay decoupled.

func priorityToRemote(p domain.TaskPriority) (string, error) {
	switch p {
	case domain.TaskPriorityLow:
		return "low", nil
	case domain.TaskPriorityMedium:
		return "medium", nil
	case domain.TaskPriorityHigh:
		return "high", nil
	case domain.TaskPriorityUrgent:
		return "urgent", nil
	}
	return "", fmt.Errorf("unknown task priority %q", p)
}

func priorityFromRemote(p string) (domain.TaskPriority, error) {
	switch p {
	case "low":
		return domain.TaskPriorityLow, nil
	case "medium":
		return domain.TaskPriorityMedium, nil
	case "high":
		return domain.TaskPriorityHigh, nil
	case "urgent":
		return domain.TaskPriorityUrgent, nil
	}
	return "", fmt.Errorf("unknown remote task priority %q", p)
}
