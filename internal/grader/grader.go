package grader

import (
	"strconv"
	"strings"

	"github.com/mathquiz/backend/internal/domain/questionbank"
)

// Result is the outcome of grading one submitted answer.
type Result struct {
	Question      questionbank.Question
	Found         bool // false when the question id is unknown
	CorrectAnswer int
	Correct       bool
}

// Grader grades a raw answer against the question with the given id.
// Implementations may be exact or lenient; tests can supply canned results.
type Grader interface {
	Grade(questionID, rawAnswer string) Result
}

// ArithmeticGrader compares an integer answer with the stored one.
type ArithmeticGrader struct {
	catalog *questionbank.Catalog
}

// Compile-time check: *ArithmeticGrader satisfies the Grader interface.
var _ Grader = (*ArithmeticGrader)(nil)

func NewArithmeticGrader(catalog *questionbank.Catalog) *ArithmeticGrader {
	return &ArithmeticGrader{catalog: catalog}
}

// Grade never fails on bad input: blank or non-numeric text is a wrong
// answer as long as the question exists.
func (g *ArithmeticGrader) Grade(questionID, rawAnswer string) Result {
	q, ok := g.catalog.Lookup(questionID)
	if !ok {
		return Result{}
	}

	value, parsed := ParseAnswer(rawAnswer)
	return Result{
		Question:      q,
		Found:         true,
		CorrectAnswer: q.Answer,
		Correct:       parsed && value == q.Answer,
	}
}

// ParseAnswer reads a trimmed integer. ok is false for blank or
// non-integer text.
func ParseAnswer(raw string) (value int, ok bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}
