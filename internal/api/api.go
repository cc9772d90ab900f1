package api

import (
	"context"
	"strings"

	"taskdesk/internal/config"
	"taskdesk/internal/domain"
	"taskdesk/internal/logging"
	"taskdesk/internal/repository/sqlite"
	"taskdesk/internal/validation"
)

// Store defines the interface for all task operations. It owns the task
// collection and the identity-assignment policy: IDs start at 1, increase
// monotonically, and are never reused, even after RemoveTask or ClearTasks.
type Store interface {
	CreateTask(ctx context.Context, name, description string) (*domain.Task, error)
	GetTask(ctx context.Context, id int64) (*domain.Task, error)
	ListTasks(ctx context.Context) ([]*domain.Task, error)
	RemoveTask(ctx context.Context, id int64) error
	UpdateTaskStatus(ctx context.Context, id int64, status string) error
	ClearTasks(ctx context.Context) error
}

type storeImpl struct {
	repo          sqlite.Repository
	mapper        *domain.Mapper
	taskValidator *validation.TaskValidator
}

// New creates a new Store instance with default validation limits.
func New(repo sqlite.Repository) Store {
	return &storeImpl{
		repo:          repo,
		mapper:        domain.NewMapper(),
		taskValidator: validation.NewTaskValidator(),
	}
}

// NewWithConfig creates a new Store instance using configured validation limits.
func NewWithConfig(repo sqlite.Repository, cfg *config.Config) Store {
	return &storeImpl{
		repo:          repo,
		mapper:        domain.NewMapper(),
		taskValidator: validation.NewTaskValidatorWithConfig(validation.NewValidatorWithConfig(cfg)),
	}
}

// CreateTask creates a new pending task. The name must be non-empty after
// trimming; an empty description is replaced by the default placeholder.
func (s *storeImpl) CreateTask(ctx context.Context, name, description string) (*domain.Task, error) {
	cleanedName, err := s.taskValidator.GetValidTaskName(name)
	if err != nil {
		return nil, err
	}

	cleanedDescription := strings.TrimSpace(description)
	if cleanedDescription == "" {
		cleanedDescription = domain.DefaultDescription
	}

	dbTask := &sqlite.Task{
		Name:        cleanedName,
		Description: cleanedDescription,
		Status:      string(domain.StatusPending),
	}
	if err := s.repo.CreateTask(ctx, dbTask); err != nil {
		return nil, err
	}

	logging.Debugf("created task %d %q\n", dbTask.ID, dbTask.Name)
	domainTask := s.mapper.Task.FromDatabase(*dbTask)
	return &domainTask, nil
}

// GetTask retrieves a task by its ID.
func (s *storeImpl) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	if err := s.taskValidator.ValidateTaskID(id); err != nil {
		return nil, err
	}

	dbTask, err := s.repo.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}
	domainTask := s.mapper.Task.FromDatabase(*dbTask)
	return &domainTask, nil
}

// ListTasks returns all tasks in insertion order. An empty store yields an
// empty slice, not an error.
func (s *storeImpl) ListTasks(ctx context.Context) ([]*domain.Task, error) {
	dbTasks, err := s.repo.ListTasks(ctx)
	if err != nil {
		return nil, err
	}
	return s.mapper.Task.FromDatabaseSlice(dbTasks), nil
}

// RemoveTask deletes the task with the given ID. The store is left unchanged
// when no such task exists.
func (s *storeImpl) RemoveTask(ctx context.Context, id int64) error {
	if err := s.taskValidator.ValidateTaskID(id); err != nil {
		return err
	}

	if err := s.repo.DeleteTask(ctx, id); err != nil {
		return err
	}

	logging.Debugf("removed task %d\n", id)
	return nil
}

// UpdateTaskStatus sets the status of an existing task. The status string is
// validated before the store is touched, so an invalid status never reaches
// a stored task. Only the status field changes.
func (s *storeImpl) UpdateTaskStatus(ctx context.Context, id int64, status string) error {
	if err := s.taskValidator.ValidateTaskID(id); err != nil {
		return err
	}
	if err := s.taskValidator.ValidateStatus(status); err != nil {
		return err
	}

	if err := s.repo.UpdateTaskStatus(ctx, id, status); err != nil {
		return err
	}

	logging.Debugf("updated task %d status to %s\n", id, status)
	return nil
}

// ClearTasks empties the collection. Clearing an already-empty store is not
// an error, and the ID sequence is not reset.
func (s *storeImpl) ClearTasks(ctx context.Context) error {
	if err := s.repo.DeleteAllTasks(ctx); err != nil {
		return err
	}

	logging.Debugln("cleared all tasks")
	return nil
}
