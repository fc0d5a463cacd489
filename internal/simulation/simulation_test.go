package simulation_test

import (
	"context"
	"io"
	"log/slog"
	"math/rand"
	"path/filepath"
	"testing"
	"time"

	"github.com/mathquiz/backend/internal/domain/child"
	"github.com/mathquiz/backend/internal/domain/questionbank"
	"github.com/mathquiz/backend/internal/domain/stats"
	"github.com/mathquiz/backend/internal/grader"
	"github.com/mathquiz/backend/internal/service"
	"github.com/mathquiz/backend/internal/simulation"
	"github.com/mathquiz/backend/internal/store"
)

func newSimulator(t *testing.T, limit int) *simulation.Simulator {
	t.Helper()

	s, err := store.NewSQLite(filepath.Join(t.TempDir(), "sim.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	catalog, err := questionbank.BuildCatalog(questionbank.RecipeV1, questionbank.RecipeV2)
	if err != nil {
		t.Fatalf("build catalog: %v", err)
	}

	now := time.Date(2024, 3, 9, 10, 0, 0, 0, time.UTC)
	clock := service.Clock(func() time.Time { return now })
	roster := child.NewRoster(
		child.Child{Name: "alleia", BankVersion: 1},
		child.Child{Name: "althafandra", BankVersion: 2},
	)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	sessions := service.NewSessionManager(s, roster, clock, logger)
	statsSvc := service.NewStatsService(s, clock)
	quiz := service.NewQuizService(
		sessions,
		statsSvc,
		catalog,
		service.NewPicker(rand.NewSource(7)),
		grader.NewArithmeticGrader(catalog),
		nil,
		service.QuizConfig{DailyLimit: limit, RewardPerCorrect: 50},
		logger,
	)
	return simulation.New(sessions, statsSvc, quiz, catalog, 7)
}

func TestRun_PerfectChildrenReachAdvanced(t *testing.T) {
	sim := newSimulator(t, 400)

	reports := sim.Run(context.Background(), []simulation.Profile{
		{Child: "alleia", SkillPct: 100},
		{Child: "althafandra", SkillPct: 100},
	}, 60)

	if len(reports) != 2 {
		t.Fatalf("expected 2 reports, got %d", len(reports))
	}
	for i, want := range []string{"alleia", "althafandra"} {
		r := reports[i]
		if r.Err != nil {
			t.Fatalf("%s: %v", want, r.Err)
		}
		if r.Child != want {
			t.Errorf("report %d: expected child %s, got %s", i, want, r.Child)
		}
		if r.Served != 60 || r.Correct != 60 || r.Earned != 3000 {
			t.Errorf("%s: served=%d correct=%d earned=%d", want, r.Served, r.Correct, r.Earned)
		}
		total := r.Tiers[questionbank.DifficultyEasy] + r.Tiers[questionbank.DifficultyMedium] + r.Tiers[questionbank.DifficultyHard]
		if total != 60 {
			t.Errorf("%s: tier counts sum to %d", want, total)
		}
		if r.Weekly.AccuracyPct != 100 {
			t.Errorf("%s: expected weekly accuracy 100, got %d", want, r.Weekly.AccuracyPct)
		}
		if r.Level != stats.LevelAdvanced {
			t.Errorf("%s: expected advanced, got %s", want, r.Level)
		}
	}
}

func TestRun_WarmupServesOnlyEasy(t *testing.T) {
	sim := newSimulator(t, 400)

	reports := sim.Run(context.Background(), []simulation.Profile{{Child: "alleia", SkillPct: 100}}, 40)

	r := reports[0]
	if r.Err != nil {
		t.Fatalf("run: %v", r.Err)
	}
	if r.Tiers[questionbank.DifficultyEasy] != 40 {
		t.Errorf("expected 40 easy questions during warm-up, got %v", r.Tiers)
	}
	if r.Level != stats.LevelBeginner {
		t.Errorf("expected beginner under 50 answers, got %s", r.Level)
	}
}

func TestRun_StopsAtDailyLimit(t *testing.T) {
	sim := newSimulator(t, 10)

	reports := sim.Run(context.Background(), []simulation.Profile{{Child: "alleia", BlankPct: 100}}, 25)

	r := reports[0]
	if r.Err != nil {
		t.Fatalf("run: %v", r.Err)
	}
	if !r.LimitReached {
		t.Error("expected the daily limit to stop the run")
	}
	if r.Served != 10 || r.Correct != 0 || r.Earned != 0 {
		t.Errorf("served=%d correct=%d earned=%d", r.Served, r.Correct, r.Earned)
	}
}

func TestRun_UnknownChild(t *testing.T) {
	sim := newSimulator(t, 400)

	reports := sim.Run(context.Background(), []simulation.Profile{{Child: "nobody", SkillPct: 50}}, 5)

	if reports[0].Err == nil {
		t.Fatal("expected an error for an unrecognized child")
	}
}

func TestRun_NoProfiles(t *testing.T) {
	sim := newSimulator(t, 400)

	if reports := sim.Run(context.Background(), nil, 5); reports != nil {
		t.Errorf("expected nil reports, got %v", reports)
	}
}
