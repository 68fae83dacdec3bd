package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fardannozami/habit-bot/internal/app/usecase"
)

// =============================================================================
// TASK USECASE TESTS
// =============================================================================
//
// /add  → rejects empty names and names the user already tracks
// /tasks → insertion order, hint when empty
//
// =============================================================================

func TestAddTask_Success(t *testing.T) {
	repo := newMockRepo()
	uc := usecase.NewAddTaskUsecase(repo)

	msg, err := uc.Execute(context.Background(), "42", "  run  ")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	expected := "Added ✅\nTask: run"
	if msg != expected {
		t.Errorf("Expected '%s', got '%s'", expected, msg)
	}
	if len(repo.tasks) != 1 || repo.tasks[0].name != "run" {
		t.Errorf("Expected task 'run' to be stored, got %+v", repo.tasks)
	}
}

func TestAddTask_EmptyName_Rejected(t *testing.T) {
	repo := newMockRepo()
	uc := usecase.NewAddTaskUsecase(repo)

	for _, name := range []string{"", "   ", "\t"} {
		msg, err := uc.Execute(context.Background(), "42", name)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if !strings.HasPrefix(msg, "Format: /add <task>") {
			t.Errorf("Expected usage message for %q, got '%s'", name, msg)
		}
	}
	if len(repo.tasks) != 0 {
		t.Errorf("Nothing should be stored, got %+v", repo.tasks)
	}
}

func TestAddTask_AlreadyTracked_NotDuplicated(t *testing.T) {
	repo := newMockRepo()
	uc := usecase.NewAddTaskUsecase(repo)
	ctx := context.Background()

	uc.Execute(ctx, "42", "run")
	msg, err := uc.Execute(ctx, "42", "run")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if !strings.Contains(msg, "already tracking") {
		t.Errorf("Expected already-tracking message, got '%s'", msg)
	}
	if len(repo.tasks) != 1 {
		t.Errorf("Expected 1 stored task, got %d", len(repo.tasks))
	}

	// names are case-sensitive
	uc.Execute(ctx, "42", "Run")
	if len(repo.tasks) != 2 {
		t.Errorf("'Run' and 'run' are different tasks, got %d stored", len(repo.tasks))
	}
}

func TestAddTask_StoreError_Propagates(t *testing.T) {
	repo := newMockRepo()
	repo.failing = true
	uc := usecase.NewAddTaskUsecase(repo)

	_, err := uc.Execute(context.Background(), "42", "run")
	if !errors.Is(err, errStoreDown) {
		t.Errorf("Expected store error, got %v", err)
	}
}

func TestListTasks_Empty(t *testing.T) {
	uc := usecase.NewListTasksUsecase(newMockRepo())

	msg, err := uc.Execute(context.Background(), "42")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.Contains(msg, "/add") {
		t.Errorf("Expected hint to use /add, got '%s'", msg)
	}
}

func TestListTasks_InsertionOrder(t *testing.T) {
	repo := newMockRepo()
	ctx := context.Background()
	repo.AddTask(ctx, "42", "run")
	repo.AddTask(ctx, "42", "read")
	repo.AddTask(ctx, "7", "swim")

	uc := usecase.NewListTasksUsecase(repo)
	msg, err := uc.Execute(ctx, "42")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	run := strings.Index(msg, "- run")
	read := strings.Index(msg, "- read")
	if run < 0 || read < 0 || run > read {
		t.Errorf("Expected 'run' before 'read', got '%s'", msg)
	}
	if strings.Contains(msg, "swim") {
		t.Errorf("Other users' tasks must not be listed, got '%s'", msg)
	}
}
