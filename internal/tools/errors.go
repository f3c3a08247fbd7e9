package tools

import (
	"errors"
	"fmt"
)

var (
	ErrMethodNotFound = errors.New("unknown tool")
	ErrInvalidParams  = errors.New("invalid params")
)

// ToolError wraps any failure surfaced by a tool call.
type ToolError struct {
	Tool string
	Err  error
}

func (e *ToolError) Error() string {
	return fmt.Sprintf("error executing tool %s: %v", e.Tool, e.Err)
}

func (e *ToolError) Unwrap() error {
	return e.Err
}
