package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"taskdesk/internal/errors"
	"taskdesk/internal/logging"
	"taskdesk/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// Default per-operation timeouts, matching the config defaults.
const (
	DefaultQueryTimeout = 10 * time.Second
	DefaultWriteTimeout = 5 * time.Second
)

// Repository defines the interface for database operations
type Repository interface {
	// Create operations
	CreateTask(ctx context.Context, task *Task) error

	// Read operations
	GetTask(ctx context.Context, id int64) (*Task, error)
	ListTasks(ctx context.Context) ([]*Task, error)

	// Update operations
	UpdateTaskStatus(ctx context.Context, id int64, status string) error

	// Delete operations
	DeleteTask(ctx context.Context, id int64) error
	DeleteAllTasks(ctx context.Context) error

	// Utility
	Close() error
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db           *sql.DB
	queryTimeout time.Duration
	writeTimeout time.Duration
}

// New creates a new SQLite repository instance with default timeouts
func New(dsn string) (*SQLiteRepository, error) {
	return NewWithTimeouts(dsn, DefaultQueryTimeout, DefaultWriteTimeout)
}

// NewWithTimeouts creates a new SQLite repository instance with the given
// per-operation timeouts
func NewWithTimeouts(dsn string, queryTimeout, writeTimeout time.Duration) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}

	// A :memory: database exists per connection; a second pooled connection
	// would see an empty schema. One connection is all a sequential console
	// loop needs anyway.
	db.SetMaxOpenConns(1)

	// Run migrations
	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}

	logging.Debugf("opened sqlite database %q\n", dsn)
	return &SQLiteRepository{
		db:           db,
		queryTimeout: queryTimeout,
		writeTimeout: writeTimeout,
	}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// queryContext bounds a read operation with the configured query timeout
func (r *SQLiteRepository) queryContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.queryTimeout)
}

// writeContext bounds a write operation with the configured write timeout
func (r *SQLiteRepository) writeContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.writeTimeout)
}

// CreateTask creates a new task and assigns its ID from the autoincrement
// sequence. The sequence never reuses an ID, even after deletes.
func (r *SQLiteRepository) CreateTask(ctx context.Context, task *Task) error {
	ctx, cancel := r.writeContext(ctx)
	defer cancel()

	query := `INSERT INTO tasks (name, description, status) VALUES (?, ?, ?)`

	id, err := ExecuteWithLastInsertID(ctx, r.db, query, task.Name, task.Description, task.Status)
	if err != nil {
		return err
	}

	task.ID = id
	return nil
}

// GetTask retrieves a task by ID
func (r *SQLiteRepository) GetTask(ctx context.Context, id int64) (*Task, error) {
	ctx, cancel := r.queryContext(ctx)
	defer cancel()

	query := `SELECT id, name, description, status FROM tasks WHERE id = ?`
	return QuerySingle(ctx, r.db, query, ScanTask, "task", fmt.Sprintf("%d", id), id)
}

// ListTasks retrieves all tasks in insertion order
func (r *SQLiteRepository) ListTasks(ctx context.Context) ([]*Task, error) {
	ctx, cancel := r.queryContext(ctx)
	defer cancel()

	query := `SELECT id, name, description, status FROM tasks ORDER BY id ASC`
	return QueryMultiple(ctx, r.db, query, ScanTasks, "tasks")
}

// UpdateTaskStatus updates only the status column of an existing task
func (r *SQLiteRepository) UpdateTaskStatus(ctx context.Context, id int64, status string) error {
	ctx, cancel := r.writeContext(ctx)
	defer cancel()

	query := `UPDATE tasks SET status = ? WHERE id = ?`
	return ExecuteWithRowsAffected(ctx, r.db, query, "task", fmt.Sprintf("%d", id), status, id)
}

// DeleteTask deletes a task by ID
func (r *SQLiteRepository) DeleteTask(ctx context.Context, id int64) error {
	ctx, cancel := r.writeContext(ctx)
	defer cancel()

	query := `DELETE FROM tasks WHERE id = ?`
	return ExecuteWithRowsAffected(ctx, r.db, query, "task", fmt.Sprintf("%d", id), id)
}

// DeleteAllTasks removes every task. Deleting from an empty table is not an
// error, and the autoincrement sequence is left untouched.
func (r *SQLiteRepository) DeleteAllTasks(ctx context.Context) error {
	ctx, cancel := r.writeContext(ctx)
	defer cancel()

	query := `DELETE FROM tasks`
	if _, err := r.db.ExecContext(ctx, query); err != nil {
		return HandleDatabaseError("delete all tasks", err)
	}
	return nil
}
