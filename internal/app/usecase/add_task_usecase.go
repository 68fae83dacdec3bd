package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/fardannozami/habit-bot/internal/domain"
)

type AddTaskUsecase struct {
	tasks domain.TaskRepository
}

func NewAddTaskUsecase(tasks domain.TaskRepository) *AddTaskUsecase {
	return &AddTaskUsecase{tasks: tasks}
}

// Execute registers name for userID. The repository accepts duplicates, so
// the check for an already tracked name happens here.
func (uc *AddTaskUsecase) Execute(ctx context.Context, userID, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "Format: /add <task>\nExample: /add 30min_english", nil
	}

	exists, err := uc.tasks.HasTask(ctx, userID, name)
	if err != nil {
		return "", err
	}
	if exists {
		return fmt.Sprintf("You are already tracking \"%s\" 👍", name), nil
	}

	if err := uc.tasks.AddTask(ctx, userID, name); err != nil {
		return "", err
	}

	return fmt.Sprintf("Added ✅\nTask: %s", name), nil
}
