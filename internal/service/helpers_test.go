package service_test

import (
	"io"
	"log/slog"
	"math/rand"
	"path/filepath"
	"testing"
	"time"

	"github.com/mathquiz/backend/internal/domain/child"
	"github.com/mathquiz/backend/internal/domain/questionbank"
	"github.com/mathquiz/backend/internal/grader"
	"github.com/mathquiz/backend/internal/service"
	"github.com/mathquiz/backend/internal/store"
)

type fixture struct {
	now      time.Time
	store    *store.SQLiteStore
	catalog  *questionbank.Catalog
	sessions *service.SessionManager
	stats    *service.StatsService
	quiz     *service.QuizService
	notified []string
}

func (f *fixture) Notify(child string) {
	f.notified = append(f.notified, child)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newFixture(t *testing.T, cfg service.QuizConfig) *fixture {
	t.Helper()

	s, err := store.NewSQLite(filepath.Join(t.TempDir(), "quiz.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	catalog, err := questionbank.BuildCatalog(questionbank.RecipeV1, questionbank.RecipeV2)
	if err != nil {
		t.Fatalf("build catalog: %v", err)
	}

	f := &fixture{
		now:     time.Date(2024, 3, 9, 10, 0, 0, 0, time.UTC),
		store:   s,
		catalog: catalog,
	}
	clock := service.Clock(func() time.Time { return f.now })
	roster := child.NewRoster(
		child.Child{Name: "alleia", BankVersion: 1},
		child.Child{Name: "althafandra", BankVersion: 2},
	)
	logger := discardLogger()

	f.sessions = service.NewSessionManager(s, roster, clock, logger)
	f.stats = service.NewStatsService(s, clock)
	f.quiz = service.NewQuizService(
		f.sessions,
		f.stats,
		catalog,
		service.NewPicker(rand.NewSource(1)),
		grader.NewArithmeticGrader(catalog),
		f,
		cfg,
		logger,
	)
	return f
}

var defaultQuizConfig = service.QuizConfig{DailyLimit: 400, RewardPerCorrect: 50}
