package session_test

import (
	"testing"
	"time"

	"github.com/mathquiz/backend/internal/domain/session"
)

func TestNew_ZeroedCounters(t *testing.T) {
	now := time.Date(2024, 3, 9, 8, 30, 0, 0, time.UTC)
	s := session.New("tok", now)

	if s.Day != "2024-03-09" {
		t.Errorf("expected day 2024-03-09, got %q", s.Day)
	}
	if s.Served != 0 || s.Answered != 0 || s.Correct != 0 || s.Earned != 0 {
		t.Errorf("expected zero counters, got %+v", s)
	}
	if s.ChildName() != "" || s.InFlight() != "" {
		t.Error("expected no child and no in-flight question")
	}
}

func TestResetForDay(t *testing.T) {
	child := "alleia"
	qid := "v1_q0001"
	s := &session.Session{
		Token:      "tok",
		Child:      &child,
		Day:        "2024-03-08",
		Served:     5,
		Answered:   4,
		Correct:    3,
		Earned:     150,
		InFlightID: &qid,
	}

	if !s.NeedsRollover("2024-03-09") {
		t.Fatal("expected rollover to be needed")
	}

	s.ResetForDay("2024-03-09")

	if s.NeedsRollover("2024-03-09") {
		t.Error("expected no rollover after reset")
	}
	if s.Served != 0 || s.Answered != 0 || s.Correct != 0 || s.Earned != 0 {
		t.Errorf("expected zero counters, got %+v", s)
	}
	if s.InFlightID != nil {
		t.Error("expected in-flight question to be cleared")
	}
	if s.ChildName() != "alleia" {
		t.Errorf("expected child to survive rollover, got %q", s.ChildName())
	}
}

func TestNeedsRollover_SameDay(t *testing.T) {
	s := session.New("tok", time.Date(2024, 3, 9, 23, 59, 0, 0, time.UTC))
	if s.NeedsRollover("2024-03-09") {
		t.Error("expected no rollover within the same day")
	}
}
