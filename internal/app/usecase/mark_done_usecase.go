package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/fardannozami/habit-bot/internal/domain"
)

type MarkDoneUsecase struct {
	tasks   domain.TaskRepository
	reports domain.ReportRepository
	streaks *GetStreakUsecase
}

func NewMarkDoneUsecase(tasks domain.TaskRepository, reports domain.ReportRepository) *MarkDoneUsecase {
	return &MarkDoneUsecase{
		tasks:   tasks,
		reports: reports,
		streaks: NewGetStreakUsecase(tasks, reports),
	}
}

// Execute records task as done today. Only registered tasks are accepted.
func (uc *MarkDoneUsecase) Execute(ctx context.Context, userID, task string) (string, error) {
	ok, err := uc.tasks.HasTask(ctx, userID, task)
	if err != nil {
		return "", err
	}
	if !ok {
		return "I don't know that task. Add it first with /add or type its exact name.", nil
	}

	if err := uc.reports.Record(ctx, userID, task, domain.StatusDone, time.Time{}); err != nil {
		return "", err
	}

	streak, err := uc.streaks.ForTask(ctx, userID, task)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("Well done! ✅\nCurrent streak for \"%s\": %d days 🔥", task, streak), nil
}
