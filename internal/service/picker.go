package service

import (
	"math/rand"
	"sync"

	"github.com/mathquiz/backend/internal/domain/questionbank"
	"github.com/mathquiz/backend/internal/domain/stats"
)

// Adaptive policy thresholds.
const (
	warmupServed     = 50 // below this many served questions a child stays on easy material
	remedialAccuracy = 60
	masteryAccuracy  = 80
)

// Picker chooses the next question from a bank given a child's weekly totals.
type Picker struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewPicker(src rand.Source) *Picker {
	return &Picker{rng: rand.New(src)}
}

// Pick applies the tiered policy, first match wins:
//   - fewer than 50 served: easy (else medium, else any)
//   - accuracy below 60: easy (else any)
//   - accuracy below 80: 70% easy (else any), 30% medium (else easy, else any)
//   - otherwise: 10% hard, 50% medium, 40% easy, each falling back when empty
//
// Questions may repeat; nothing tracks what was already served.
func (p *Picker) Pick(bank *questionbank.Bank, weekly stats.Totals) (questionbank.Question, error) {
	if bank == nil || bank.Len() == 0 {
		return questionbank.Question{}, questionbank.ErrEmptyBank
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	all := bank.Questions()
	easy, medium, hard := bank.Easy(), bank.Medium(), bank.Hard()

	if weekly.Served < warmupServed {
		return p.choose(easy, medium, all), nil
	}

	r := p.rng.Float64()

	switch {
	case weekly.AccuracyPct < remedialAccuracy:
		return p.choose(easy, all), nil
	case weekly.AccuracyPct < masteryAccuracy:
		if r < 0.7 {
			return p.choose(easy, all), nil
		}
		return p.choose(medium, easy, all), nil
	}

	switch {
	case r < 0.10 && len(hard) > 0:
		return p.choose(hard), nil
	case r < 0.60 && len(medium) > 0:
		return p.choose(medium), nil
	default:
		return p.choose(easy, medium, all), nil
	}
}

// choose picks uniformly from the first non-empty pool.
func (p *Picker) choose(pools ...[]questionbank.Question) questionbank.Question {
	for _, pool := range pools {
		if len(pool) > 0 {
			return pool[p.rng.Intn(len(pool))]
		}
	}
	return questionbank.Question{}
}
