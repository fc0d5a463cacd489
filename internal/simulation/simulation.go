// simulation/simulation.go
package simulation

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"

	"github.com/mathquiz/backend/internal/domain/questionbank"
	"github.com/mathquiz/backend/internal/domain/stats"
	"github.com/mathquiz/backend/internal/service"
	"github.com/mathquiz/backend/internal/worker"
)

// Profile is a simulated child: how often they answer correctly and how
// often they leave the answer blank.
type Profile struct {
	Child    string
	SkillPct int
	BlankPct int
}

// Report summarises one simulated child's run.
type Report struct {
	Child        string
	Served       int
	Correct      int
	Earned       int
	LimitReached bool
	Tiers        map[questionbank.Difficulty]int
	Level        stats.Level
	Weekly       stats.Totals
	Err          error
}

// Simulator drives the quiz services the way a browser would: resolve a
// session, pick a child, then alternate question and answer.
type Simulator struct {
	sessions *service.SessionManager
	stats    *service.StatsService
	quiz     *service.QuizService
	catalog  *questionbank.Catalog
	seed     int64
}

func New(sessions *service.SessionManager, statsSvc *service.StatsService, quiz *service.QuizService, catalog *questionbank.Catalog, seed int64) *Simulator {
	return &Simulator{
		sessions: sessions,
		stats:    statsSvc,
		quiz:     quiz,
		catalog:  catalog,
		seed:     seed,
	}
}

// Run plays rounds questions for every profile, one goroutine per child,
// and returns the reports in profile order.
func (s *Simulator) Run(ctx context.Context, profiles []Profile, rounds int) []Report {
	if len(profiles) == 0 {
		return nil
	}

	pool := worker.NewPool[Report](len(profiles), len(profiles))
	for i, p := range profiles {
		p := p
		rng := rand.New(rand.NewSource(s.seed + int64(i)))
		pool.TrySubmit(strconv.Itoa(i), func() Report {
			return s.play(ctx, p, rounds, rng)
		})
	}

	reports := make([]Report, len(profiles))
	for range profiles {
		res := <-pool.Results()
		i, _ := strconv.Atoi(res.JobID)
		reports[i] = res.Output
	}
	pool.Close()

	return reports
}

func (s *Simulator) play(ctx context.Context, p Profile, rounds int, rng *rand.Rand) Report {
	report := Report{
		Child: p.Child,
		Tiers: make(map[questionbank.Difficulty]int),
	}

	handle, err := s.sessions.Resolve(ctx, "")
	if err != nil {
		report.Err = err
		return report
	}
	sess := handle.Session

	c, ok, err := s.sessions.BindChild(ctx, sess, p.Child)
	if err != nil {
		report.Err = err
		return report
	}
	if !ok {
		report.Err = fmt.Errorf("unknown child %q", p.Child)
		return report
	}
	report.Child = c.Name

	for i := 0; i < rounds; i++ {
		served, err := s.quiz.ServeQuestion(ctx, sess)
		if service.KindOf(err) == service.KindDailyLimit {
			report.LimitReached = true
			break
		}
		if err != nil {
			report.Err = err
			return report
		}
		report.Served++

		q, found := s.catalog.Lookup(served.ID)
		if !found {
			report.Err = fmt.Errorf("served unknown question %s", served.ID)
			return report
		}
		report.Tiers[q.Difficulty]++

		res, err := s.quiz.SubmitAnswer(ctx, sess, served.ID, answerFor(q, p, rng))
		if err != nil {
			report.Err = err
			return report
		}
		if res.Correct {
			report.Correct++
			report.Earned += s.quiz.Config().RewardPerCorrect
		}
	}

	weekly, err := s.stats.RecentRecap(ctx, c.Name, 7)
	if err != nil {
		report.Err = err
		return report
	}
	report.Weekly = weekly.Totals
	report.Level = stats.LevelFor(weekly)
	return report
}

func answerFor(q questionbank.Question, p Profile, rng *rand.Rand) string {
	roll := rng.Intn(100)
	switch {
	case roll < p.BlankPct:
		return ""
	case roll < p.BlankPct+p.SkillPct:
		return strconv.Itoa(q.Answer)
	default:
		return strconv.Itoa(q.Answer + 1 + rng.Intn(3))
	}
}
