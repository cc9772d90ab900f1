package domain

import (
	"fmt"
)

// DefaultDescription is substituted when a task is created without one.
const DefaultDescription = "No description provided"

// Status represents the completion state of a task.
type Status string

const (
	StatusPending   Status = "Pending"
	StatusCompleted Status = "Completed"
)

// ParseStatus converts a raw string into a Status. Matching is exact and
// case-sensitive; anything other than the two known values is rejected.
func ParseStatus(raw string) (Status, error) {
	switch Status(raw) {
	case StatusPending, StatusCompleted:
		return Status(raw), nil
	default:
		return "", fmt.Errorf("unknown status %q (expected %s or %s)", raw, StatusPending, StatusCompleted)
	}
}

// IsValid reports whether the status is one of the two known values.
func (s Status) IsValid() bool {
	return s == StatusPending || s == StatusCompleted
}

// String returns the status text for display purposes.
func (s Status) String() string {
	return string(s)
}

// Task represents a tracked task in the domain model.
// This is a pure domain model without database-specific concerns.
type Task struct {
	ID          int64
	Name        string
	Description string
	Status      Status
}

// NewTask creates a new pending Task with the given name and description.
func NewTask(name, description string) Task {
	return Task{
		Name:        name,
		Description: description,
		Status:      StatusPending,
	}
}

// IsValid checks if the task has valid data.
func (t Task) IsValid() bool {
	return t.Name != "" && t.Status.IsValid()
}

// String returns the task name for display purposes.
func (t Task) String() string {
	return t.Name
}
