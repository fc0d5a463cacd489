package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/mathquiz/backend/internal/store"
)

// AdminService guards destructive maintenance behind the shared password.
type AdminService struct {
	store  store.Store
	hash   []byte
	logger *slog.Logger
}

// NewAdminService hashes password once; only the hash is kept in memory.
func NewAdminService(s store.Store, password string, logger *slog.Logger) (*AdminService, error) {
	return newAdminService(s, password, bcrypt.DefaultCost, logger)
}

func newAdminService(s store.Store, password string, cost int, logger *slog.Logger) (*AdminService, error) {
	password = strings.TrimSpace(password)
	if password == "" {
		return nil, fmt.Errorf("admin password must not be empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return nil, fmt.Errorf("hash admin password: %w", err)
	}
	return &AdminService{store: s, hash: hash, logger: logger}, nil
}

// ClearDatabase wipes all sessions and daily aggregates when password
// matches; otherwise nothing is touched.
func (a *AdminService) ClearDatabase(ctx context.Context, password string) error {
	if err := bcrypt.CompareHashAndPassword(a.hash, []byte(strings.TrimSpace(password))); err != nil {
		a.logger.Warn("admin clear rejected")
		return newError(KindUnauthorized, "wrong password")
	}
	if err := a.store.Clear(ctx); err != nil {
		return fmt.Errorf("clear database: %w", err)
	}
	a.logger.Info("admin clear accepted")
	return nil
}
