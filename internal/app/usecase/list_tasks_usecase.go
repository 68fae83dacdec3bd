package usecase

import (
	"context"
	"strings"

	"github.com/fardannozami/habit-bot/internal/domain"
)

type ListTasksUsecase struct {
	tasks domain.TaskRepository
}

func NewListTasksUsecase(tasks domain.TaskRepository) *ListTasksUsecase {
	return &ListTasksUsecase{tasks: tasks}
}

func (uc *ListTasksUsecase) Execute(ctx context.Context, userID string) (string, error) {
	tasks, err := uc.tasks.ListTasks(ctx, userID)
	if err != nil {
		return "", err
	}
	if len(tasks) == 0 {
		return "You have no tasks yet. Start with /add <task>.", nil
	}

	sb := strings.Builder{}
	sb.WriteString("Your tasks:\n")
	for _, t := range tasks {
		sb.WriteString("- " + t + "\n")
	}
	sb.WriteString("\nWhen you finish one, send its name or: done <task>")

	return sb.String(), nil
}
