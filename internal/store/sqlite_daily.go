package store

import (
	"context"
	"fmt"

	"github.com/mathquiz/backend/internal/domain/stats"
)

// ============================================================================
// Counters
// ============================================================================

// Each increment ensures the (child, day) row exists and bumps the session
// and daily counters in a single transaction.

func (s *SQLiteStore) IncrementServed(ctx context.Context, token, child, day string) error {
	return s.increment(ctx, child, day,
		"UPDATE sessions SET served_count = served_count + 1 WHERE session_id = ?", []any{token},
		"UPDATE child_daily SET served_count = served_count + 1 WHERE child = ? AND day = ?", []any{child, day},
	)
}

func (s *SQLiteStore) IncrementAnswered(ctx context.Context, token, child, day string) error {
	return s.increment(ctx, child, day,
		"UPDATE sessions SET answered_count = answered_count + 1 WHERE session_id = ?", []any{token},
		"UPDATE child_daily SET answered_count = answered_count + 1 WHERE child = ? AND day = ?", []any{child, day},
	)
}

func (s *SQLiteStore) IncrementCorrect(ctx context.Context, token, child, day string, reward int) error {
	return s.increment(ctx, child, day,
		"UPDATE sessions SET correct_count = correct_count + 1, earned = earned + ? WHERE session_id = ?", []any{reward, token},
		"UPDATE child_daily SET correct_count = correct_count + 1, earned = earned + ? WHERE child = ? AND day = ?", []any{reward, child, day},
	)
}

func (s *SQLiteStore) increment(ctx context.Context, child, day string, sessionSQL string, sessionArgs []any, dailySQL string, dailyArgs []any) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO child_daily (child, day, served_count, answered_count, correct_count, earned)
		VALUES (?, ?, 0, 0, 0, 0)
		ON CONFLICT (child, day) DO NOTHING`, child, day); err != nil {
		return fmt.Errorf("upsert daily: %w", err)
	}

	result, err := tx.ExecContext(ctx, sessionSQL, sessionArgs...)
	if err != nil {
		return fmt.Errorf("increment session: %w", err)
	}
	if n, err := result.RowsAffected(); err != nil {
		return err
	} else if n == 0 {
		return ErrNotFound
	}

	if _, err := tx.ExecContext(ctx, dailySQL, dailyArgs...); err != nil {
		return fmt.Errorf("increment daily: %w", err)
	}

	return tx.Commit()
}

// ============================================================================
// Daily aggregates
// ============================================================================

// DailyRange returns the child's rows with startDay <= day <= endDay, keyed by day.
func (s *SQLiteStore) DailyRange(ctx context.Context, child, startDay, endDay string) (map[string]stats.Counts, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT day, served_count, answered_count, correct_count, earned
		FROM child_daily
		WHERE child = ? AND day >= ? AND day <= ?
		ORDER BY day ASC`, child, startDay, endDay)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]stats.Counts)
	for rows.Next() {
		var day string
		var c stats.Counts
		if err := rows.Scan(&day, &c.Served, &c.Answered, &c.Correct, &c.Earned); err != nil {
			return nil, err
		}
		out[day] = c
	}
	return out, rows.Err()
}

func (s *SQLiteStore) ListDaily(ctx context.Context) ([]DailyRow, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT child, day, served_count, answered_count, correct_count, earned
		FROM child_daily
		ORDER BY child ASC, day ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []DailyRow
	for rows.Next() {
		var r DailyRow
		if err := rows.Scan(&r.Child, &r.Day, &r.Served, &r.Answered, &r.Correct, &r.Earned); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
