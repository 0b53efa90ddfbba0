package state

import (
	"eastask/internal/core/domain"
)

// Reduce returns the state produced by applying action to prev. It never
// performs I/O and never fails: update, delete and move actions that
// reference an unknown id return the state unchanged.
func Reduce(prev domain.AppState, action Action) domain.AppState {
	switch a := action.(type) {
	case LoadState:
		return a.State
	case AddTask:
		next := cloneState(prev)
		task := a.Task
		task.PageID = nil
		next.UnassignedTasks = append(next.UnassignedTasks, task)
		renumber(next.UnassignedTasks)
		return next
	case UpdateTask:
		return reduceUpdateTask(prev, a)
	case DeleteTask:
		return reduceDeleteTask(prev, a)
	case DuplicateTask:
		return reduceDuplicateTask(prev, a)
	case MoveTask:
		return reduceMoveTask(prev, a)
	case AddPage:
		next := cloneState(prev)
		next.Pages = append(next.Pages, a.Page)
		return next
	case UpdatePage:
		return reduceUpdatePage(prev, a)
	case DeletePage:
		return reduceDeletePage(prev, a)
	}
	return prev
}

func reduceUpdateTask(prev domain.AppState, a UpdateTask) domain.AppState {
	next := cloneState(prev)
	for i := range next.UnassignedTasks {
		if next.UnassignedTasks[i].ID == a.ID {
			next.UnassignedTasks[i] = applyTaskPatch(next.UnassignedTasks[i], a.Patch)
			return next
		}
	}
	for pi := range next.Pages {
		for ti := range next.Pages[pi].Tasks {
			if next.Pages[pi].Tasks[ti].ID == a.ID {
				next.Pages[pi].Tasks[ti] = applyTaskPatch(next.Pages[pi].Tasks[ti], a.Patch)
				return next
			}
		}
	}
	return prev
}

func reduceDeleteTask(prev domain.AppState, a DeleteTask) domain.AppState {
	next := cloneState(prev)
	if removed, rest := removeTask(next.UnassignedTasks, a.ID); removed != nil {
		renumber(rest)
		next.UnassignedTasks = rest
		return next
	}
	for pi := range next.Pages {
		if removed, rest := removeTask(next.Pages[pi].Tasks, a.ID); removed != nil {
			renumber(rest)
			next.Pages[pi].Tasks = rest
			return next
		}
	}
	return prev
}

func reduceDuplicateTask(prev domain.AppState, a DuplicateTask) domain.AppState {
	source, ok := FindTask(prev, a.ID)
	if !ok {
		return prev
	}

	clone := source
	clone.ID = a.CloneID
	clone.Title = domain.CopyTitle(source.Title)
	clone.CreatedAt = a.Now
	clone.CompletedAt = nil
	clone.Order = 0

	next := cloneState(prev)
	if a.TargetPageID != nil {
		for pi := range next.Pages {
			if next.Pages[pi].ID == *a.TargetPageID {
				clone.PageID = a.TargetPageID
				next.Pages[pi].Tasks = prependTask(next.Pages[pi].Tasks, clone)
				renumber(next.Pages[pi].Tasks)
				return next
			}
		}
		return prev
	}

	clone.PageID = nil
	next.UnassignedTasks = prependTask(next.UnassignedTasks, clone)
	renumber(next.UnassignedTasks)
	return next
}

func reduceMoveTask(prev domain.AppState, a MoveTask) domain.AppState {
	next := cloneState(prev)

	var moved *domain.Task
	if removed, rest := removeTask(next.UnassignedTasks, a.ID); removed != nil {
		moved = removed
		renumber(rest)
		next.UnassignedTasks = rest
	} else {
		for pi := range next.Pages {
			if removed, rest := removeTask(next.Pages[pi].Tasks, a.ID); removed != nil {
				moved = removed
				renumber(rest)
				next.Pages[pi].Tasks = rest
				break
			}
		}
	}
	if moved == nil {
		return prev
	}

	if a.TargetPageID != nil {
		for pi := range next.Pages {
			if next.Pages[pi].ID == *a.TargetPageID {
				moved.PageID = a.TargetPageID
				next.Pages[pi].Tasks = insertTask(next.Pages[pi].Tasks, *moved, a.TargetIndex)
				renumber(next.Pages[pi].Tasks)
				return next
			}
		}
		// Target page is unknown locally: fall back to the unassigned
		// collection rather than dropping the task.
	}

	moved.PageID = nil
	next.UnassignedTasks = insertTask(next.UnassignedTasks, *moved, a.TargetIndex)
	renumber(next.UnassignedTasks)
	return next
}

func reduceUpdatePage(prev domain.AppState, a UpdatePage) domain.AppState {
	next := cloneState(prev)
	for pi := range next.Pages {
		if next.Pages[pi].ID == a.ID {
			next.Pages[pi] = applyPagePatch(next.Pages[pi], a.Patch)
			return next
		}
	}
	return prev
}

func reduceDeletePage(prev domain.AppState, a DeletePage) domain.AppState {
	next := cloneState(prev)
	for pi := range next.Pages {
		if next.Pages[pi].ID != a.ID {
			continue
		}
		orphans := next.Pages[pi].Tasks
		next.Pages = append(next.Pages[:pi], next.Pages[pi+1:]...)
		for _, t := range orphans {
			t.PageID = nil
			t.Order = len(next.UnassignedTasks)
			next.UnassignedTasks = append(next.UnassignedTasks, t)
		}
		return next
	}
	return prev
}

func applyTaskPatch(t domain.Task, p domain.TaskPatch) domain.Task {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.DueDateSet {
		t.DueDate = p.DueDate
	}
	if p.AssigneeSet {
		t.AssigneeID = p.AssigneeID
		t.AssigneeName = p.AssigneeName
	}
	if p.PageIDSet {
		t.PageID = p.PageID
	}
	if p.TagsSet {
		t.Tags = p.Tags
	}
	if p.CompletedAtSet {
		t.CompletedAt = p.CompletedAt
	}
	if p.EstimatedHours != nil {
		t.EstimatedHours = p.EstimatedHours
	}
	if p.ActualHours != nil {
		t.ActualHours = p.ActualHours
	}
	return t
}

func applyPagePatch(p domain.Page, patch domain.PagePatch) domain.Page {
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.URLSet {
		p.URL = patch.URL
	}
	if patch.Color != nil {
		p.Color = *patch.Color
	}
	return p
}

// FindTask searches the unassigned collection first, then each page in
// order. Ids are globally unique, first match wins.
func FindTask(s domain.AppState, id string) (domain.Task, bool) {
	for _, t := range s.UnassignedTasks {
		if t.ID == id {
			return t, true
		}
	}
	for _, p := range s.Pages {
		for _, t := range p.Tasks {
			if t.ID == id {
				return t, true
			}
		}
	}
	return domain.Task{}, false
}

func removeTask(tasks []domain.Task, id string) (*domain.Task, []domain.Task) {
	for i := range tasks {
		if tasks[i].ID == id {
			removed := tasks[i]
			rest := append(tasks[:i:i], tasks[i+1:]...)
			return &removed, rest
		}
	}
	return nil, tasks
}

func insertTask(tasks []domain.Task, task domain.Task, index *int) []domain.Task {
	i := len(tasks)
	if index != nil && *index >= 0 && *index < len(tasks) {
		i = *index
	}
	tasks = append(tasks, domain.Task{})
	copy(tasks[i+1:], tasks[i:])
	tasks[i] = task
	return tasks
}

func prependTask(tasks []domain.Task, task domain.Task) []domain.Task {
	zero := 0
	return insertTask(tasks, task, &zero)
}

// renumber keeps order values a dense zero-based sequence.
func renumber(tasks []domain.Task) {
	for i := range tasks {
		tasks[i].Order = i
	}
}

func cloneState(s domain.AppState) domain.AppState {
	next := domain.AppState{
		Pages:           make([]domain.Page, len(s.Pages)),
		UnassignedTasks: make([]domain.Task, len(s.UnassignedTasks)),
	}
	copy(next.UnassignedTasks, s.UnassignedTasks)
	for i, p := range s.Pages {
		tasks := make([]domain.Task, len(p.Tasks))
		copy(tasks, p.Tasks)
		p.Tasks = tasks
		next.Pages[i] = p
	}
	return next
}
