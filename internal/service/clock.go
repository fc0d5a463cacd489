package service

import (
	"time"

	"github.com/mathquiz/backend/internal/domain/session"
)

// Clock returns the current time. Services take one so tests can pin the day.
type Clock func() time.Time

func (c Clock) today() string {
	return session.DayKey(c())
}
