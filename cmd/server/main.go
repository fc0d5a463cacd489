package main

import (
	"context"
	"log/slog"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/mathquiz/backend/internal/api"
	"github.com/mathquiz/backend/internal/domain/questionbank"
	"github.com/mathquiz/backend/internal/grader"
	"github.com/mathquiz/backend/internal/infrastructure/config"
	"github.com/mathquiz/backend/internal/live"
	"github.com/mathquiz/backend/internal/service"
	"github.com/mathquiz/backend/internal/store"

	_ "github.com/mathquiz/backend/docs" // generated swagger docs
)

// @title           Math Quiz API
// @version         1.0
// @description     Adaptive arithmetic practice for two children, with daily limits, rewards and weekly recaps.

// @host      localhost:8080
// @BasePath  /

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// ── Question banks ──────────────────────────────────────────────
	catalog, err := questionbank.BuildCatalog(questionbank.RecipeV1, questionbank.RecipeV2)
	if err != nil {
		logger.Error("failed to build question banks", "error", err)
		os.Exit(1)
	}
	for _, c := range cfg.Children.Children() {
		bank, ok := catalog.Bank(c.BankVersion)
		if !ok {
			logger.Error("child assigned to unknown bank", "child", c.Name, "version", c.BankVersion)
			os.Exit(1)
		}
		logger.Info("bank ready", "child", c.Name, "version", bank.Version(),
			"easy", len(bank.Easy()), "medium", len(bank.Medium()), "hard", len(bank.Hard()))
	}

	// ── Dependencies ────────────────────────────────────────────────
	db, err := store.NewSQLite(cfg.DBPath)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	clock := service.Clock(time.Now)
	sessions := service.NewSessionManager(db, cfg.Children, clock, logger)
	statsSvc := service.NewStatsService(db, clock)
	hub := live.NewHub(statsSvc, logger)

	quiz := service.NewQuizService(
		sessions,
		statsSvc,
		catalog,
		service.NewPicker(rand.NewSource(time.Now().UnixNano())),
		grader.NewArithmeticGrader(catalog),
		hub,
		service.QuizConfig{DailyLimit: cfg.DailyLimit, RewardPerCorrect: cfg.RewardPerCorrect},
		logger,
	)

	admin, err := service.NewAdminService(db, cfg.AdminPassword, logger)
	if err != nil {
		logger.Error("failed to configure admin", "error", err)
		os.Exit(1)
	}

	handler := api.NewHandler(api.Deps{
		Sessions:   sessions,
		Stats:      statsSvc,
		Quiz:       quiz,
		Admin:      admin,
		Live:       hub,
		CookieName: cfg.CookieName,
	}, logger)

	// ── Routes ──────────────────────────────────────────────────────
	mux := http.NewServeMux()
	api.RegisterRoutes(mux, handler, cfg.AdminRatePerMin)

	// Swagger UI served at /swagger/
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// ── Middleware chain: Logging → mux ─────────────────────────────
	logged := api.Logging(logger)(mux)

	// ── Server ──────────────────────────────────────────────────────
	server := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           logged,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down server")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("server forced to shutdown", "error", err)
		}
		hub.Close()
	}()

	logger.Info("starting server", "address", cfg.ServerAddress,
		"children", cfg.Children.Names(), "daily_limit", cfg.DailyLimit)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server failed to start", "error", err)
		os.Exit(1)
	}
	<-stopped
}
