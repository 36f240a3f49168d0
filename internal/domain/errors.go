package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	ErrNotFound        = errors.New("not found")
	ErrFileTooLarge    = errors.New("file too large")
	ErrUnsupportedType = errors.New("unsupported file type")
	ErrInvalidFile     = errors.New("invalid file")
)

// ValidationError is a rejected file selection. It is shown by the widget
// that produced it and never propagated further.
type ValidationError struct {
	Message string // Human-readable explanation
	Reason  error  // One of the file sentinels
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Reason != nil {
		return e.Reason.Error()
	}
	return "invalid file"
}

func (e *ValidationError) Unwrap() error {
	return e.Reason
}

// RenderFault is a panic recovered while rendering or updating a subtree
type RenderFault struct {
	Phase string // "init", "update" or "view"
	Value any    // Value passed to panic
	Stack []byte
}

func (e *RenderFault) Error() string {
	if e.Phase != "" {
		return fmt.Sprintf("render fault during %s: %v", e.Phase, e.Value)
	}
	return fmt.Sprintf("render fault: %v", e.Value)
}

// Unwrap exposes the panic value when it was itself an error
func (e *RenderFault) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// RouteNotFoundError is returned when navigating to an unregistered path
type RouteNotFoundError struct {
	Path string
}

func (e *RouteNotFoundError) Error() string {
	return fmt.Sprintf("route %s: %v", e.Path, ErrNotFound)
}

func (e *RouteNotFoundError) Unwrap() error {
	return ErrNotFound
}

// AttachmentError represents a failure inspecting a local file or the clipboard
type AttachmentError struct {
	Op   string // "inspect", "clipboard"
	Path string
	Err  error
}

func (e *AttachmentError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("attachment %s [%s]: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("attachment %s: %v", e.Op, e.Err)
}

func (e *AttachmentError) Unwrap() error {
	return e.Err
}
