package domain

import (
	"context"
	"time"
)

// DateLayout is the on-disk format of a report date.
const DateLayout = "2006-01-02"

type Status string

const (
	StatusDone Status = "done"
)

// HistoryEntry is one row of a task's report history.
type HistoryEntry struct {
	Date   time.Time
	Status Status
}

// TaskRepository stores the tasks each user tracks. Duplicate names are
// accepted; callers decide whether to allow them.
type TaskRepository interface {
	AddTask(ctx context.Context, userID, name string) error
	ListTasks(ctx context.Context, userID string) ([]string, error)
	HasTask(ctx context.Context, userID, name string) (bool, error)
	ListDistinctUsers(ctx context.Context) ([]string, error)
}

// ReportRepository is the append-only report log.
type ReportRepository interface {
	// Record appends a report. A zero date means today in UTC.
	Record(ctx context.Context, userID, task string, status Status, date time.Time) error
	// History returns every report for the pair, newest date first.
	History(ctx context.Context, userID, task string) ([]HistoryEntry, error)
}

// Day truncates t to midnight UTC.
func Day(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Today returns the current UTC calendar day.
func Today() time.Time {
	return Day(time.Now())
}
