package sqlite

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/fardannozami/habit-bot/internal/domain"
)

type ReportRepository struct {
	db *sqlx.DB
	mu sync.Mutex // serialises writes
}

func NewReportRepository(db *sqlx.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

type historyRow struct {
	Date   string `db:"date"`
	Status string `db:"status"`
}

func (r *ReportRepository) Record(ctx context.Context, userID, task string, status domain.Status, date time.Time) error {
	if date.IsZero() {
		date = domain.Today()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO reports (user_id, task, date, status) VALUES (?, ?, ?, ?)`,
		userID, task, domain.Day(date).Format(domain.DateLayout), string(status),
	)
	if err != nil {
		return fmt.Errorf("recording report: %w", err)
	}
	return nil
}

func (r *ReportRepository) History(ctx context.Context, userID, task string) ([]domain.HistoryEntry, error) {
	var rows []historyRow
	err := r.db.SelectContext(ctx, &rows,
		`SELECT date, status FROM reports WHERE user_id = ? AND task = ? ORDER BY date DESC, id DESC`,
		userID, task,
	)
	if err != nil {
		return nil, fmt.Errorf("reading history: %w", err)
	}

	history := make([]domain.HistoryEntry, 0, len(rows))
	for _, row := range rows {
		d, err := time.Parse(domain.DateLayout, row.Date)
		if err != nil {
			return nil, fmt.Errorf("parsing report date %q: %w", row.Date, err)
		}
		history = append(history, domain.HistoryEntry{Date: d, Status: domain.Status(row.Status)})
	}
	return history, nil
}
