package questionbank

import (
	"errors"
	"math/rand"
)

// maxFillTries bounds each fill pass so an exhausted operand space cannot loop forever.
const maxFillTries = 200000

var ErrEmptyBank = errors.New("questionbank: target size must be positive")

// Quotas is the number of questions requested per category before topping up.
type Quotas struct {
	SingleDigitAdd    int // 1..9 + 1..9
	SingleDigitSub    int // 1..9 - 1..9
	TeenAdd           int // 10..20 + 1..9
	TeenSub           int // 10..20 - 1..9
	TwoDigitSubNarrow int // 20..60 - 1..20
	TwoDigitSubWide   int // 20..99 - 1..50
}

// Recipe describes one bank: its version, seed, size and category quotas.
type Recipe struct {
	Version    int
	Seed       int64
	TargetSize int
	Quotas     Quotas
}

type triple struct {
	left  int
	op    Operator
	right int
}

type generator struct {
	version int
	rng     *rand.Rand
	seen    map[triple]struct{}
	out     []Question
}

// Generate builds the ordered question list for recipe. The result depends only
// on recipe, so two calls with the same recipe return identical sequences.
func Generate(recipe Recipe) ([]Question, error) {
	if recipe.TargetSize <= 0 {
		return nil, ErrEmptyBank
	}

	g := &generator{
		version: recipe.Version,
		rng:     rand.New(rand.NewSource(recipe.Seed)),
		seen:    make(map[triple]struct{}),
	}

	q := recipe.Quotas
	g.fill(q.SingleDigitAdd, func() triple { return triple{g.between(1, 9), OpAdd, g.between(1, 9)} })
	g.fill(q.SingleDigitSub, func() triple { return triple{g.between(1, 9), OpSub, g.between(1, 9)} })
	g.fill(q.TeenAdd, func() triple { return triple{g.between(10, 20), OpAdd, g.between(1, 9)} })
	g.fill(q.TeenSub, func() triple { return triple{g.between(10, 20), OpSub, g.between(1, 9)} })
	g.fill(q.TwoDigitSubNarrow, func() triple { return triple{g.between(20, 60), OpSub, g.between(1, 20)} })
	g.fill(q.TwoDigitSubWide, func() triple { return triple{g.between(20, 99), OpSub, g.between(1, 50)} })

	g.fill(recipe.TargetSize-len(g.out), g.topping)

	if len(g.out) > recipe.TargetSize {
		g.out = g.out[:recipe.TargetSize]
	}
	return g.out, nil
}

// between returns a uniform integer in [lo, hi].
func (g *generator) between(lo, hi int) int {
	return lo + g.rng.Intn(hi-lo+1)
}

// topping draws from the padding mix: 45% single-digit add, 25% single-digit
// subtract, 15% teen add, 15% teen subtract.
func (g *generator) topping() triple {
	mode := g.rng.Float64()
	switch {
	case mode < 0.45:
		return triple{g.between(1, 9), OpAdd, g.between(1, 9)}
	case mode < 0.70:
		return triple{g.between(1, 9), OpSub, g.between(1, 9)}
	case mode < 0.85:
		return triple{g.between(10, 20), OpAdd, g.between(1, 9)}
	default:
		return triple{g.between(10, 20), OpSub, g.between(1, 9)}
	}
}

func (g *generator) fill(quota int, draw func() triple) {
	for tries := 0; quota > 0 && tries < maxFillTries; tries++ {
		if g.accept(draw()) {
			quota--
		}
	}
}

// accept rejects duplicates and negative subtractions; otherwise it appends
// the question with the next sequential id.
func (g *generator) accept(t triple) bool {
	if _, dup := g.seen[t]; dup {
		return false
	}
	if t.op == OpSub && t.left < t.right {
		return false
	}
	g.seen[t] = struct{}{}
	g.out = append(g.out, newQuestion(g.version, len(g.out)+1, t.left, t.op, t.right))
	return true
}
