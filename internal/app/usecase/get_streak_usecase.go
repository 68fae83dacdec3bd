package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/fardannozami/habit-bot/internal/domain"
)

type GetStreakUsecase struct {
	tasks   domain.TaskRepository
	reports domain.ReportRepository
}

func NewGetStreakUsecase(tasks domain.TaskRepository, reports domain.ReportRepository) *GetStreakUsecase {
	return &GetStreakUsecase{tasks: tasks, reports: reports}
}

// ForTask returns the current streak of a single task.
func (uc *GetStreakUsecase) ForTask(ctx context.Context, userID, task string) (int, error) {
	history, err := uc.reports.History(ctx, userID, task)
	if err != nil {
		return 0, err
	}
	return domain.CurrentStreak(history, domain.Today()), nil
}

// Execute renders the current streak of every task the user tracks.
func (uc *GetStreakUsecase) Execute(ctx context.Context, userID string) (string, error) {
	tasks, err := uc.tasks.ListTasks(ctx, userID)
	if err != nil {
		return "", err
	}
	if len(tasks) == 0 {
		return "You have no tasks yet. Start with /add <task>.", nil
	}

	sb := strings.Builder{}
	sb.WriteString("Current streaks:\n")
	for _, t := range tasks {
		s, err := uc.ForTask(ctx, userID, t)
		if err != nil {
			return "", err
		}
		sb.WriteString(fmt.Sprintf("- %s: %d days %s\n", t, s, streakEmoji(s)))
	}

	return strings.TrimRight(sb.String(), "\n"), nil
}

func streakEmoji(streak int) string {
	if streak > 0 {
		return "🔥"
	}
	return "💤"
}
