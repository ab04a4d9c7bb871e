package board

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidBoard marks a structural problem: bad ids, statuses, columns or estimates.
	ErrInvalidBoard = errors.New("invalid board")

	// ErrForwardDependency marks a task depending on itself or a later task.
	ErrForwardDependency = errors.New("forward dependency")
)

// GraphError describes the first integrity problem found in a board.
type GraphError struct {
	Kind   error
	TaskID string
	Msg    string
}

func (e *GraphError) Error() string {
	if e == nil {
		return ""
	}
	msg := e.Kind.Error()
	if e.TaskID != "" {
		msg += " at " + e.TaskID
	}
	if e.Msg != "" {
		msg += ": " + e.Msg
	}
	return msg
}

func (e *GraphError) Unwrap() error { return e.Kind }

func invalidf(taskID, format string, args ...any) error {
	return &GraphError{Kind: ErrInvalidBoard, TaskID: taskID, Msg: fmt.Sprintf(format, args...)}
}
