package state

import (
	"time"

	"eastask/internal/core/domain"
)

// Action is a state transition request handled by Reduce. Concrete actions
// are plain data: anything impure (ids, clocks) is generated by the caller
// and carried on the action.
type Action interface {
	isAction()
}

// LoadState replaces the whole tree. Dispatched after every reconciliation.
type LoadState struct {
	State domain.AppState
}

// AddTask appends a task to the unassigned collection. Page-targeted
// creation lands here first and reaches its page through the next reload.
type AddTask struct {
	Task domain.Task
}

// UpdateTask shallow-merges a patch into the matching task wherever it
// lives. Unknown ids leave the state unchanged.
type UpdateTask struct {
	ID    string
	Patch domain.TaskPatch
}

// DeleteTask removes the matching task from whichever collection holds it.
type DeleteTask struct {
	ID string
}

// DuplicateTask clones the source task into the front of the destination
// collection. CloneID and Now come from the caller so Reduce stays pure.
type DuplicateTask struct {
	ID           string
	CloneID      string
	TargetPageID *string
	Now          time.Time
}

// MoveTask removes the task from its current collection and inserts it
// into the destination at TargetIndex (end when nil). A target page that
// is not present in local state falls back to the unassigned collection,
// so the task is never lost from all collections.
type MoveTask struct {
	ID           string
	TargetPageID *string
	TargetIndex  *int
}

type AddPage struct {
	Page domain.Page
}

type UpdatePage struct {
	ID    string
	Patch domain.PagePatch
}

// DeletePage removes the page and reparents its tasks to the unassigned
// collection, orders continuing after the existing unassigned tasks.
type DeletePage struct {
	ID string
}

func (LoadState) isAction()     {}
func (AddTask) isAction()       {}
func (UpdateTask) isAction()    {}
func (DeleteTask) isAction()    {}
func (DuplicateTask) isAction() {}
func (MoveTask) isAction()      {}
func (AddPage) isAction()       {}
func (UpdatePage) isAction()    {}
func (DeletePage) isAction()    {}
