package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/mathquiz/backend/internal/domain/session"
)

// ============================================================================
// Sessions
// ============================================================================

func (s *SQLiteStore) InsertSession(ctx context.Context, sess *session.Session) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO sessions (session_id, child, day, served_count, answered_count, correct_count, earned, current_qid, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		sess.Token, sess.Child, sess.Day,
		sess.Served, sess.Answered, sess.Correct, sess.Earned,
		sess.InFlightID, sess.CreatedAt.Format(time.RFC3339),
	)
	return err
}

func (s *SQLiteStore) GetSession(ctx context.Context, token string) (*session.Session, error) {
	var (
		sess      session.Session
		child     sql.NullString
		inFlight  sql.NullString
		createdAt string
	)

	err := s.db.QueryRowContext(ctx, `
		SELECT session_id, child, day, served_count, answered_count, correct_count, earned, current_qid, created_at
		FROM sessions WHERE session_id = ?`, token,
	).Scan(
		&sess.Token, &child, &sess.Day,
		&sess.Served, &sess.Answered, &sess.Correct, &sess.Earned,
		&inFlight, &createdAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if child.Valid {
		sess.Child = &child.String
	}
	if inFlight.Valid {
		sess.InFlightID = &inFlight.String
	}
	sess.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)

	return &sess, nil
}

func (s *SQLiteStore) ResetSessionDay(ctx context.Context, token, day string) error {
	return s.updateSession(ctx, `
		UPDATE sessions
		SET day = ?, served_count = 0, answered_count = 0, correct_count = 0, earned = 0, current_qid = NULL
		WHERE session_id = ?`, day, token)
}

func (s *SQLiteStore) SetSessionChild(ctx context.Context, token string, child *string) error {
	return s.updateSession(ctx, "UPDATE sessions SET child = ? WHERE session_id = ?", child, token)
}

func (s *SQLiteStore) SetInFlight(ctx context.Context, token string, questionID *string) error {
	return s.updateSession(ctx, "UPDATE sessions SET current_qid = ? WHERE session_id = ?", questionID, token)
}

// LogoutSession drops the child and in-flight question; counters stay.
func (s *SQLiteStore) LogoutSession(ctx context.Context, token string) error {
	return s.updateSession(ctx, "UPDATE sessions SET child = NULL, current_qid = NULL WHERE session_id = ?", token)
}

func (s *SQLiteStore) updateSession(ctx context.Context, query string, args ...any) error {
	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
