package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	walog "go.mau.fi/whatsmeow/util/log"

	"github.com/fardannozami/habit-bot/internal/domain"
)

type ReminderResult struct {
	RunID   string
	Sent    int
	Failed  int
	Skipped int
}

type SendReminderUsecase struct {
	tasks   domain.TaskRepository
	streaks *GetStreakUsecase
	sender  domain.MessageSender
	log     walog.Logger
}

func NewSendReminderUsecase(tasks domain.TaskRepository, reports domain.ReportRepository, sender domain.MessageSender, logger walog.Logger) *SendReminderUsecase {
	return &SendReminderUsecase{
		tasks:   tasks,
		streaks: NewGetStreakUsecase(tasks, reports),
		sender:  sender,
		log:     logger,
	}
}

// Execute sends the daily reminder to every user with at least one task.
// Each user gets a single attempt; a failure is logged and the loop moves on.
// Only a failure to list the users is returned.
func (uc *SendReminderUsecase) Execute(ctx context.Context) (ReminderResult, error) {
	result := ReminderResult{RunID: uuid.NewString()}

	users, err := uc.tasks.ListDistinctUsers(ctx)
	if err != nil {
		return result, fmt.Errorf("listing users: %w", err)
	}

	for _, userID := range users {
		text, err := uc.buildMessage(ctx, userID)
		if err != nil {
			uc.log.Errorf("[%s] Failed to build reminder for %s: %v", result.RunID, userID, err)
			result.Failed++
			continue
		}
		if text == "" {
			result.Skipped++
			continue
		}

		if err := uc.sender.SendText(ctx, userID, text); err != nil {
			uc.log.Warnf("[%s] Failed to send reminder to %s: %v", result.RunID, userID, err)
			result.Failed++
			continue
		}
		result.Sent++
	}

	uc.log.Infof("[%s] Daily reminder done: %d sent, %d failed, %d skipped", result.RunID, result.Sent, result.Failed, result.Skipped)
	return result, nil
}

// buildMessage returns "" when the user has nothing to be reminded of.
func (uc *SendReminderUsecase) buildMessage(ctx context.Context, userID string) (string, error) {
	tasks, err := uc.tasks.ListTasks(ctx, userID)
	if err != nil {
		return "", err
	}
	if len(tasks) == 0 {
		return "", nil
	}

	sb := strings.Builder{}
	sb.WriteString("Daily reminder ⏰\nToday's tasks:\n")
	for _, t := range tasks {
		streak, err := uc.streaks.ForTask(ctx, userID, t)
		if err != nil {
			return "", err
		}
		// a positive streak always includes today
		if streak > 0 {
			sb.WriteString(fmt.Sprintf("- %s ✅ (%d days 🔥)\n", t, streak))
		} else {
			sb.WriteString(fmt.Sprintf("- %s\n", t))
		}
	}
	sb.WriteString("When you finish one, send: done <task>")

	return sb.String(), nil
}
