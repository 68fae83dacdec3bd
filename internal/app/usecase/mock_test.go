package usecase_test

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/fardannozami/habit-bot/internal/domain"
)

var errStoreDown = errors.New("store unavailable")

type report struct {
	id     int
	userID string
	task   string
	date   time.Time
	status domain.Status
}

// mockRepo implements domain.TaskRepository and domain.ReportRepository in memory
type mockRepo struct {
	tasks   []taskRow
	reports []report
	failing bool
}

type taskRow struct {
	userID string
	name   string
}

func newMockRepo() *mockRepo {
	return &mockRepo{}
}

func (m *mockRepo) AddTask(ctx context.Context, userID, name string) error {
	if m.failing {
		return errStoreDown
	}
	m.tasks = append(m.tasks, taskRow{userID: userID, name: name})
	return nil
}

func (m *mockRepo) ListTasks(ctx context.Context, userID string) ([]string, error) {
	if m.failing {
		return nil, errStoreDown
	}
	result := []string{}
	for _, t := range m.tasks {
		if t.userID == userID {
			result = append(result, t.name)
		}
	}
	return result, nil
}

func (m *mockRepo) HasTask(ctx context.Context, userID, name string) (bool, error) {
	if m.failing {
		return false, errStoreDown
	}
	for _, t := range m.tasks {
		if t.userID == userID && t.name == name {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockRepo) ListDistinctUsers(ctx context.Context) ([]string, error) {
	if m.failing {
		return nil, errStoreDown
	}
	seen := map[string]bool{}
	var users []string
	for _, t := range m.tasks {
		if !seen[t.userID] {
			seen[t.userID] = true
			users = append(users, t.userID)
		}
	}
	return users, nil
}

func (m *mockRepo) Record(ctx context.Context, userID, task string, status domain.Status, date time.Time) error {
	if m.failing {
		return errStoreDown
	}
	if date.IsZero() {
		date = domain.Today()
	}
	m.reports = append(m.reports, report{
		id:     len(m.reports) + 1,
		userID: userID,
		task:   task,
		date:   domain.Day(date),
		status: status,
	})
	return nil
}

func (m *mockRepo) History(ctx context.Context, userID, task string) ([]domain.HistoryEntry, error) {
	if m.failing {
		return nil, errStoreDown
	}
	var rows []report
	for _, r := range m.reports {
		if r.userID == userID && r.task == task {
			rows = append(rows, r)
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].date.Equal(rows[j].date) {
			return rows[i].id > rows[j].id
		}
		return rows[i].date.After(rows[j].date)
	})
	history := make([]domain.HistoryEntry, 0, len(rows))
	for _, r := range rows {
		history = append(history, domain.HistoryEntry{Date: r.date, Status: r.status})
	}
	return history, nil
}

// mockSender records deliveries and fails for the users listed in failFor
type mockSender struct {
	mu      sync.Mutex
	sent    map[string]string
	failFor map[string]bool
}

func newMockSender(failFor ...string) *mockSender {
	s := &mockSender{sent: map[string]string{}, failFor: map[string]bool{}}
	for _, u := range failFor {
		s.failFor[u] = true
	}
	return s
}

func (s *mockSender) SendText(ctx context.Context, userID, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failFor[userID] {
		return errors.New("delivery failed")
	}
	s.sent[userID] = text
	return nil
}

func daysAgo(n int) time.Time {
	return domain.Today().AddDate(0, 0, -n)
}
