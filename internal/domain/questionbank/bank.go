package questionbank

import "fmt"

// Bank is a fixed, versioned pool of questions partitioned by difficulty.
// A Bank is never mutated after NewBank returns, so it is safe for
// concurrent readers.
type Bank struct {
	version   int
	questions []Question
	easy      []Question
	medium    []Question
	hard      []Question
}

func NewBank(version int, questions []Question) *Bank {
	b := &Bank{
		version:   version,
		questions: questions,
	}
	for _, q := range questions {
		switch q.Difficulty {
		case DifficultyEasy:
			b.easy = append(b.easy, q)
		case DifficultyHard:
			b.hard = append(b.hard, q)
		default:
			b.medium = append(b.medium, q)
		}
	}
	return b
}

func (b *Bank) Version() int          { return b.version }
func (b *Bank) Len() int              { return len(b.questions) }
func (b *Bank) Questions() []Question { return b.questions }
func (b *Bank) Easy() []Question      { return b.easy }
func (b *Bank) Medium() []Question    { return b.medium }
func (b *Bank) Hard() []Question      { return b.hard }

// Catalog holds every bank plus a combined id index.
type Catalog struct {
	banks map[int]*Bank
	byID  map[string]Question
}

func NewCatalog(banks ...*Bank) *Catalog {
	c := &Catalog{
		banks: make(map[int]*Bank, len(banks)),
		byID:  make(map[string]Question),
	}
	for _, b := range banks {
		c.banks[b.version] = b
		for _, q := range b.questions {
			c.byID[q.ID] = q
		}
	}
	return c
}

// Bank returns the bank with the given version.
func (c *Catalog) Bank(version int) (*Bank, bool) {
	b, ok := c.banks[version]
	return b, ok
}

// Lookup finds a question by id across all banks.
func (c *Catalog) Lookup(id string) (Question, bool) {
	q, ok := c.byID[id]
	return q, ok
}

// Default bank profiles: v1 leans on single-digit and teen problems,
// v2 leans on teen and wide two-digit subtraction.
var (
	RecipeV1 = Recipe{
		Version:    1,
		Seed:       101,
		TargetSize: 400,
		Quotas: Quotas{
			SingleDigitAdd:    50,
			SingleDigitSub:    50,
			TeenAdd:           100,
			TeenSub:           100,
			TwoDigitSubNarrow: 70,
			TwoDigitSubWide:   30,
		},
	}
	RecipeV2 = Recipe{
		Version:    2,
		Seed:       202,
		TargetSize: 400,
		Quotas: Quotas{
			SingleDigitAdd:    20,
			SingleDigitSub:    20,
			TeenAdd:           130,
			TeenSub:           130,
			TwoDigitSubNarrow: 30,
			TwoDigitSubWide:   70,
		},
	}
)

// BuildCatalog generates one bank per recipe and indexes them together.
func BuildCatalog(recipes ...Recipe) (*Catalog, error) {
	banks := make([]*Bank, 0, len(recipes))
	for _, recipe := range recipes {
		questions, err := Generate(recipe)
		if err != nil {
			return nil, fmt.Errorf("bank v%d: %w", recipe.Version, err)
		}
		banks = append(banks, NewBank(recipe.Version, questions))
	}
	return NewCatalog(banks...), nil
}
