package domain

import "errors"

var (
	ErrTaskNotFound       = errors.New("task not found")
	ErrPageNotFound       = errors.New("page not found")
	ErrAttachmentNotFound = errors.New("attachment not found")
	ErrMissingSession     = errors.New("missing user or workspace")
	ErrDependencyCycle    = errors.New("circular dependency")
	ErrInvalidColor       = errors.New("color not in palette")
)
