package store

import (
	"context"
	"errors"

	"github.com/mathquiz/backend/internal/domain/session"
	"github.com/mathquiz/backend/internal/domain/stats"
)

var (
	ErrNotFound = errors.New("not found")
)

// DailyRow is one persisted (child, day) aggregate.
type DailyRow struct {
	Child string
	Day   string
	stats.Counts
}

// Store is the persistence boundary used by the services.
type Store interface {
	InsertSession(ctx context.Context, s *session.Session) error
	GetSession(ctx context.Context, token string) (*session.Session, error)
	ResetSessionDay(ctx context.Context, token, day string) error
	SetSessionChild(ctx context.Context, token string, child *string) error
	SetInFlight(ctx context.Context, token string, questionID *string) error
	LogoutSession(ctx context.Context, token string) error

	IncrementServed(ctx context.Context, token, child, day string) error
	IncrementAnswered(ctx context.Context, token, child, day string) error
	IncrementCorrect(ctx context.Context, token, child, day string, reward int) error
	DailyRange(ctx context.Context, child, startDay, endDay string) (map[string]stats.Counts, error)
	ListDaily(ctx context.Context) ([]DailyRow, error)

	Clear(ctx context.Context) error
}
