// Command simulate plays scripted children through the quiz against a
// scratch database and prints how the adaptive picker responded.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/mathquiz/backend/internal/domain/child"
	"github.com/mathquiz/backend/internal/domain/questionbank"
	"github.com/mathquiz/backend/internal/grader"
	"github.com/mathquiz/backend/internal/service"
	"github.com/mathquiz/backend/internal/simulation"
	"github.com/mathquiz/backend/internal/store"
)

func main() {
	var (
		rounds   = flag.Int("rounds", 120, "questions per child")
		skill    = flag.Int("skill", 85, "percent of answers that are correct")
		blank    = flag.Int("blank", 5, "percent of answers left blank")
		limit    = flag.Int("limit", 400, "daily answered limit per child")
		seed     = flag.Int64("seed", time.Now().UnixNano(), "random seed")
		children = flag.String("children", "alleia:1,althafandra:2", "name:bankVersion,...")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	if err := run(*rounds, *skill, *blank, *limit, *seed, *children, logger); err != nil {
		logger.Error("simulation failed", "error", err)
		os.Exit(1)
	}
}

func run(rounds, skill, blank, limit int, seed int64, children string, logger *slog.Logger) error {
	roster, err := child.ParseRoster(children)
	if err != nil {
		return fmt.Errorf("parse children: %w", err)
	}

	catalog, err := questionbank.BuildCatalog(questionbank.RecipeV1, questionbank.RecipeV2)
	if err != nil {
		return err
	}

	dir, err := os.MkdirTemp("", "mathquiz-sim-*")
	if err != nil {
		return err
	}
	defer os.RemoveAll(dir)

	db, err := store.NewSQLite(filepath.Join(dir, "sim.sqlite3"))
	if err != nil {
		return err
	}
	defer db.Close()

	clock := service.Clock(time.Now)
	sessions := service.NewSessionManager(db, roster, clock, logger)
	statsSvc := service.NewStatsService(db, clock)
	quiz := service.NewQuizService(
		sessions,
		statsSvc,
		catalog,
		service.NewPicker(rand.NewSource(seed)),
		grader.NewArithmeticGrader(catalog),
		nil,
		service.QuizConfig{DailyLimit: limit, RewardPerCorrect: 50},
		logger,
	)

	profiles := make([]simulation.Profile, 0, len(roster.Names()))
	for _, name := range roster.Names() {
		profiles = append(profiles, simulation.Profile{Child: name, SkillPct: skill, BlankPct: blank})
	}

	reports := simulation.New(sessions, statsSvc, quiz, catalog, seed).Run(context.Background(), profiles, rounds)

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "CHILD\tSERVED\tCORRECT\tEARNED\tEASY\tMEDIUM\tHARD\tWEEK ACC\tLEVEL\tLIMIT")
	for _, r := range reports {
		if r.Err != nil {
			fmt.Fprintf(tw, "%s\terror: %v\n", r.Child, r.Err)
			continue
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t%d\t%d\t%d%%\t%s\t%t\n",
			r.Child, r.Served, r.Correct, r.Earned,
			r.Tiers[questionbank.DifficultyEasy], r.Tiers[questionbank.DifficultyMedium], r.Tiers[questionbank.DifficultyHard],
			r.Weekly.AccuracyPct, r.Level, r.LimitReached)
	}
	return tw.Flush()
}
