package service

import (
	"context"
	"fmt"

	"github.com/mathquiz/backend/internal/domain/stats"
	"github.com/mathquiz/backend/internal/store"
)

// StatsService keeps the session and daily counters in step and builds recaps.
type StatsService struct {
	store store.Store
	clock Clock
}

func NewStatsService(s store.Store, clock Clock) *StatsService {
	return &StatsService{store: s, clock: clock}
}

// Today is the current day key.
func (s *StatsService) Today() string {
	return s.clock.today()
}

// DailyRecap reports each requested day in order, zero-filled when the
// child has no activity that day.
func (s *StatsService) DailyRecap(ctx context.Context, child string, days []string) (stats.Recap, error) {
	if len(days) == 0 {
		return stats.BuildRecap(child, nil, nil), nil
	}

	start, end := days[0], days[0]
	for _, d := range days[1:] {
		if d < start {
			start = d
		}
		if d > end {
			end = d
		}
	}

	rows, err := s.store.DailyRange(ctx, child, start, end)
	if err != nil {
		return stats.Recap{}, fmt.Errorf("load daily range: %w", err)
	}
	return stats.BuildRecap(child, days, rows), nil
}

// RecentRecap is the recap over the last n days ending today.
func (s *StatsService) RecentRecap(ctx context.Context, child string, n int) (stats.Recap, error) {
	return s.DailyRecap(ctx, child, stats.LastNDays(s.clock(), n))
}

// RecentDays lists the last n day keys, oldest first.
func (s *StatsService) RecentDays(n int) []string {
	return stats.LastNDays(s.clock(), n)
}

func (s *StatsService) RecordServed(ctx context.Context, token, child, day string) error {
	return s.store.IncrementServed(ctx, token, child, day)
}

func (s *StatsService) RecordAnswered(ctx context.Context, token, child, day string) error {
	return s.store.IncrementAnswered(ctx, token, child, day)
}

func (s *StatsService) RecordCorrect(ctx context.Context, token, child, day string, reward int) error {
	return s.store.IncrementCorrect(ctx, token, child, day, reward)
}

// Export returns every daily aggregate, grouped by child in name order.
func (s *StatsService) Export(ctx context.Context) ([]store.DailyRow, error) {
	return s.store.ListDaily(ctx)
}
