package domain

import "time"

// CurrentStreak counts consecutive days ending at today that have at least
// one done report. Several reports on the same day count once and reports
// dated after today are ignored. If today has no done report the streak is 0.
func CurrentStreak(history []HistoryEntry, today time.Time) int {
	if len(history) == 0 {
		return 0
	}

	today = Day(today)
	done := make(map[time.Time]struct{}, len(history))
	for _, h := range history {
		d := Day(h.Date)
		if d.After(today) || h.Status != StatusDone {
			continue
		}
		done[d] = struct{}{}
	}

	streak := 0
	for expected := today; ; expected = expected.AddDate(0, 0, -1) {
		if _, ok := done[expected]; !ok {
			return streak
		}
		streak++
	}
}
