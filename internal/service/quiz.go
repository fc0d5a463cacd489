package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mathquiz/backend/internal/domain/child"
	"github.com/mathquiz/backend/internal/domain/questionbank"
	"github.com/mathquiz/backend/internal/domain/session"
	"github.com/mathquiz/backend/internal/grader"
)

// Notifier is told whenever a child's counters change.
type Notifier interface {
	Notify(child string)
}

type nopNotifier struct{}

func (nopNotifier) Notify(string) {}

// QuizConfig holds the limits applied when serving and grading.
type QuizConfig struct {
	DailyLimit       int // answered questions per child per day
	RewardPerCorrect int
}

// ServedQuestion is what the client shows next.
type ServedQuestion struct {
	ID          string
	Prompt      string
	BankVersion int
}

// AnswerResult is the graded outcome of a submission.
type AnswerResult struct {
	Correct       bool
	CorrectAnswer int
}

// QuizService serves adaptive questions and grades answers.
type QuizService struct {
	sessions *SessionManager
	stats    *StatsService
	catalog  *questionbank.Catalog
	picker   *Picker
	grader   grader.Grader
	notifier Notifier
	cfg      QuizConfig
	logger   *slog.Logger
}

func NewQuizService(
	sessions *SessionManager,
	statsSvc *StatsService,
	catalog *questionbank.Catalog,
	picker *Picker,
	g grader.Grader,
	notifier Notifier,
	cfg QuizConfig,
	logger *slog.Logger,
) *QuizService {
	if notifier == nil {
		notifier = nopNotifier{}
	}
	return &QuizService{
		sessions: sessions,
		stats:    statsSvc,
		catalog:  catalog,
		picker:   picker,
		grader:   g,
		notifier: notifier,
		cfg:      cfg,
		logger:   logger,
	}
}

// Config returns the limits in force.
func (q *QuizService) Config() QuizConfig {
	return q.cfg
}

func (q *QuizService) boundChild(sess *session.Session) (child.Child, error) {
	name := sess.ChildName()
	if name == "" {
		return child.Child{}, newError(KindNoChild, "choose an account first")
	}
	c, ok := q.sessions.Roster().Lookup(name)
	if !ok {
		return child.Child{}, newError(KindUnknownChild, "unknown account")
	}
	return c, nil
}

// DailyRemaining reports how many answers child may still give today.
func (q *QuizService) DailyRemaining(ctx context.Context, childName string) (int, error) {
	recap, err := q.stats.DailyRecap(ctx, childName, []string{q.stats.Today()})
	if err != nil {
		return 0, err
	}
	remaining := q.cfg.DailyLimit - recap.Totals.Answered
	if remaining < 0 {
		remaining = 0
	}
	return remaining, nil
}

// ServeQuestion picks the next question for the session's child, marks it
// in flight and counts it as served.
func (q *QuizService) ServeQuestion(ctx context.Context, sess *session.Session) (*ServedQuestion, error) {
	c, err := q.boundChild(sess)
	if err != nil {
		return nil, err
	}

	bank, ok := q.catalog.Bank(c.BankVersion)
	if !ok {
		return nil, fmt.Errorf("no bank v%d for %s", c.BankVersion, c.Name)
	}

	remaining, err := q.DailyRemaining(ctx, c.Name)
	if err != nil {
		return nil, err
	}
	if remaining == 0 {
		q.logger.Info("daily limit reached", "child", c.Name, "limit", q.cfg.DailyLimit)
		return nil, newError(KindDailyLimit, "today's limit has been reached (%d questions), continue tomorrow", q.cfg.DailyLimit)
	}

	weekly, err := q.stats.RecentRecap(ctx, c.Name, 7)
	if err != nil {
		return nil, err
	}

	question, err := q.picker.Pick(bank, weekly.Totals)
	if err != nil {
		return nil, err
	}

	qid := question.ID
	if err := q.sessions.SetInFlight(ctx, sess, &qid); err != nil {
		return nil, err
	}
	if err := q.stats.RecordServed(ctx, sess.Token, c.Name, q.stats.Today()); err != nil {
		return nil, fmt.Errorf("record served: %w", err)
	}
	q.notifier.Notify(c.Name)

	return &ServedQuestion{
		ID:          question.ID,
		Prompt:      question.Prompt(),
		BankVersion: bank.Version(),
	}, nil
}

// SubmitAnswer grades rawAnswer for questionID, which must be the
// session's in-flight question. Blank or non-numeric answers count as wrong.
//
// Two concurrent submissions for the same session can both pass the
// in-flight check before either clears it.
func (q *QuizService) SubmitAnswer(ctx context.Context, sess *session.Session, questionID, rawAnswer string) (*AnswerResult, error) {
	c, err := q.boundChild(sess)
	if err != nil {
		return nil, err
	}

	questionID = strings.TrimSpace(questionID)
	inFlight := sess.InFlight()
	if inFlight == "" || questionID != inFlight {
		return nil, newError(KindOutOfSync, "question out of sync, fetch the next one")
	}

	res := q.grader.Grade(questionID, rawAnswer)
	if !res.Found {
		return nil, newError(KindNotFound, "question not found")
	}

	today := q.stats.Today()
	if err := q.stats.RecordAnswered(ctx, sess.Token, c.Name, today); err != nil {
		return nil, fmt.Errorf("record answered: %w", err)
	}
	if res.Correct {
		if err := q.stats.RecordCorrect(ctx, sess.Token, c.Name, today, q.cfg.RewardPerCorrect); err != nil {
			return nil, fmt.Errorf("record correct: %w", err)
		}
	}
	if err := q.sessions.SetInFlight(ctx, sess, nil); err != nil {
		return nil, err
	}
	q.notifier.Notify(c.Name)

	q.logger.Info("answer graded", "child", c.Name, "question_id", questionID, "correct", res.Correct)

	return &AnswerResult{
		Correct:       res.Correct,
		CorrectAnswer: res.CorrectAnswer,
	}, nil
}
