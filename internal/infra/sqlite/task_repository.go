package sqlite

import (
	"context"
	"fmt"
	"sync"

	"github.com/jmoiron/sqlx"
)

type TaskRepository struct {
	db *sqlx.DB
	mu sync.Mutex // serialises writes
}

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) AddTask(ctx context.Context, userID, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.ExecContext(ctx, `INSERT INTO tasks (user_id, task) VALUES (?, ?)`, userID, name)
	if err != nil {
		return fmt.Errorf("adding task: %w", err)
	}
	return nil
}

func (r *TaskRepository) ListTasks(ctx context.Context, userID string) ([]string, error) {
	tasks := []string{}
	err := r.db.SelectContext(ctx, &tasks, `SELECT task FROM tasks WHERE user_id = ? ORDER BY rowid`, userID)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	return tasks, nil
}

func (r *TaskRepository) HasTask(ctx context.Context, userID, name string) (bool, error) {
	var n int
	err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM tasks WHERE user_id = ? AND task = ?`, userID, name)
	if err != nil {
		return false, fmt.Errorf("checking task: %w", err)
	}
	return n > 0, nil
}

// ListDistinctUsers returns every user with at least one task, ordered by
// their first registered task.
func (r *TaskRepository) ListDistinctUsers(ctx context.Context) ([]string, error) {
	users := []string{}
	err := r.db.SelectContext(ctx, &users, `SELECT user_id FROM tasks GROUP BY user_id ORDER BY MIN(rowid)`)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	return users, nil
}
