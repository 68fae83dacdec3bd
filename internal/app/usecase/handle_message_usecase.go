package usecase

import (
	"context"
	"strings"
	"unicode"
)

const helpText = "Hi! I'm your habit bot. Add one or more tasks first:\n" +
	"/add <task>   e.g. /add 30min_english\n" +
	"/tasks        list your tasks\n" +
	"/streak       show your current streaks\n" +
	"When you finish a task, send its name or: done <task>"

type AddTaskExecutor interface {
	Execute(ctx context.Context, userID, name string) (string, error)
}

type ListTasksExecutor interface {
	Execute(ctx context.Context, userID string) (string, error)
}

type MarkDoneExecutor interface {
	Execute(ctx context.Context, userID, task string) (string, error)
}

type StreakExecutor interface {
	Execute(ctx context.Context, userID string) (string, error)
}

type HandleMessageUsecase struct {
	addTask   AddTaskExecutor
	listTasks ListTasksExecutor
	markDone  MarkDoneExecutor
	streaks   StreakExecutor
}

func NewHandleMessageUsecase(addTask AddTaskExecutor, listTasks ListTasksExecutor, markDone MarkDoneExecutor, streaks StreakExecutor) *HandleMessageUsecase {
	return &HandleMessageUsecase{
		addTask:   addTask,
		listTasks: listTasks,
		markDone:  markDone,
		streaks:   streaks,
	}
}

// Execute routes an inbound chat message and returns the reply, or "" when
// nothing should be sent.
func (uc *HandleMessageUsecase) Execute(ctx context.Context, userID, msg string) (string, error) {
	msg = strings.TrimSpace(msg)
	if msg == "" {
		return "", nil
	}

	cmd, args := splitCommand(msg)
	switch cmd {
	case "/start", "/help":
		return helpText, nil
	case "/add":
		return uc.addTask.Execute(ctx, userID, args)
	case "/tasks":
		return uc.listTasks.Execute(ctx, userID)
	case "/streak":
		return uc.streaks.Execute(ctx, userID)
	}

	if strings.HasPrefix(msg, "/") {
		return helpText, nil
	}

	task := msg
	if strings.EqualFold(cmd, "done") && args != "" {
		task = args
	}
	return uc.markDone.Execute(ctx, userID, task)
}

// splitCommand returns the lower-cased first word and the trimmed rest.
func splitCommand(msg string) (string, string) {
	i := strings.IndexFunc(msg, unicode.IsSpace)
	if i < 0 {
		return strings.ToLower(msg), ""
	}
	return strings.ToLower(msg[:i]), strings.TrimSpace(msg[i:])
}
