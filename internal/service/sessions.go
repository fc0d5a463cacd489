package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mathquiz/backend/internal/domain/child"
	"github.com/mathquiz/backend/internal/domain/session"
	"github.com/mathquiz/backend/internal/id"
	"github.com/mathquiz/backend/internal/store"
)

// Handle is a resolved session. Created is set when a new token was minted
// and must be handed back to the client.
type Handle struct {
	Session *session.Session
	Created bool
}

// SessionManager maps browser tokens to persisted session rows.
type SessionManager struct {
	store  store.Store
	roster *child.Roster
	clock  Clock
	logger *slog.Logger

	newToken func() string
}

func NewSessionManager(s store.Store, roster *child.Roster, clock Clock, logger *slog.Logger) *SessionManager {
	return &SessionManager{
		store:    s,
		roster:   roster,
		clock:    clock,
		logger:   logger,
		newToken: id.NewToken,
	}
}

// Resolve returns the session behind token. An empty or unknown token gets
// a freshly minted one; a row from an earlier day is rolled over in place.
func (m *SessionManager) Resolve(ctx context.Context, token string) (*Handle, error) {
	if token != "" {
		sess, err := m.store.GetSession(ctx, token)
		switch {
		case err == nil:
			if err := m.rollover(ctx, sess); err != nil {
				return nil, err
			}
			return &Handle{Session: sess}, nil
		case !errors.Is(err, store.ErrNotFound):
			return nil, fmt.Errorf("load session: %w", err)
		}
	}

	sess := session.New(m.newToken(), m.clock())
	if err := m.store.InsertSession(ctx, sess); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	m.logger.Info("session created", "day", sess.Day)
	return &Handle{Session: sess, Created: true}, nil
}

func (m *SessionManager) rollover(ctx context.Context, sess *session.Session) error {
	today := m.clock.today()
	if !sess.NeedsRollover(today) {
		return nil
	}
	if err := m.store.ResetSessionDay(ctx, sess.Token, today); err != nil {
		return fmt.Errorf("roll over session: %w", err)
	}
	m.logger.Info("session rolled over", "from", sess.Day, "to", today)
	sess.ResetForDay(today)
	return nil
}

// BindChild selects name for the session. ok is false, and nothing is
// written, when name is not on the roster.
func (m *SessionManager) BindChild(ctx context.Context, sess *session.Session, name string) (c child.Child, ok bool, err error) {
	c, ok = m.roster.Lookup(name)
	if !ok {
		return child.Child{}, false, nil
	}
	if err := m.store.SetSessionChild(ctx, sess.Token, &c.Name); err != nil {
		return child.Child{}, false, fmt.Errorf("bind child: %w", err)
	}
	sess.Child = &c.Name
	m.logger.Info("child selected", "child", c.Name)
	return c, true, nil
}

// SetInFlight records the question the session is waiting on; nil clears it.
func (m *SessionManager) SetInFlight(ctx context.Context, sess *session.Session, questionID *string) error {
	if err := m.store.SetInFlight(ctx, sess.Token, questionID); err != nil {
		return fmt.Errorf("set in-flight question: %w", err)
	}
	sess.InFlightID = questionID
	return nil
}

// Logout unbinds the child and drops the in-flight question. The token and
// its counters stay.
func (m *SessionManager) Logout(ctx context.Context, sess *session.Session) error {
	if err := m.store.LogoutSession(ctx, sess.Token); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	sess.Child = nil
	sess.InFlightID = nil
	return nil
}

// Roster exposes the recognized children.
func (m *SessionManager) Roster() *child.Roster {
	return m.roster
}
