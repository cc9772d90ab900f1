package sqlite

// Task represents a task row in the tasks table
type Task struct {
	ID          int64
	Name        string
	Description string
	Status      string
}
