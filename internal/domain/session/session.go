package session

import "time"

// DayLayout is the calendar-day key format used for sessions and aggregates.
const DayLayout = "2006-01-02"

// DayKey formats t as a calendar-day key in t's location.
func DayKey(t time.Time) string {
	return t.Format(DayLayout)
}

// Session is the persisted state behind one browser token.
// Counters cover Day only and are zeroed on rollover.
type Session struct {
	Token      string
	Child      *string // nil until a child is selected
	Day        string
	Served     int
	Answered   int
	Correct    int
	Earned     int
	InFlightID *string // question served but not yet answered
	CreatedAt  time.Time
}

// New returns a fresh session for token with zeroed counters.
func New(token string, now time.Time) *Session {
	return &Session{
		Token:     token,
		Day:       DayKey(now),
		CreatedAt: now,
	}
}

// NeedsRollover reports whether the stored day is no longer today.
func (s *Session) NeedsRollover(today string) bool {
	return s.Day != today
}

// ResetForDay moves the session to day, zeroing counters and dropping the
// in-flight question. Child and token are kept.
func (s *Session) ResetForDay(day string) {
	s.Day = day
	s.Served = 0
	s.Answered = 0
	s.Correct = 0
	s.Earned = 0
	s.InFlightID = nil
}

// ChildName returns the bound child or "" when none is selected.
func (s *Session) ChildName() string {
	if s.Child == nil {
		return ""
	}
	return *s.Child
}

// InFlight returns the in-flight question id or "".
func (s *Session) InFlight() string {
	if s.InFlightID == nil {
		return ""
	}
	return *s.InFlightID
}
