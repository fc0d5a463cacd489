package questionbank

import "fmt"

// Operator is the arithmetic operation of a question.
type Operator string

const (
	OpAdd Operator = "add"
	OpSub Operator = "sub"
)

// Symbol returns the operator as it appears in a prompt.
func (o Operator) Symbol() string {
	if o == OpSub {
		return "-"
	}
	return "+"
}

// Difficulty is the tier a question belongs to, derived from its answer.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// DifficultyFor maps an answer's magnitude to a tier.
// Answers between 21 and 49 are medium as well.
func DifficultyFor(answer int) Difficulty {
	switch {
	case answer <= 10:
		return DifficultyEasy
	case answer <= 20:
		return DifficultyMedium
	case answer >= 50:
		return DifficultyHard
	default:
		return DifficultyMedium
	}
}

// Question is an immutable arithmetic problem.
type Question struct {
	ID         string
	Left       int
	Operator   Operator
	Right      int
	Answer     int
	Difficulty Difficulty
	Version    int
}

func newQuestion(version, index, left int, op Operator, right int) Question {
	answer := left + right
	if op == OpSub {
		answer = left - right
	}
	return Question{
		ID:         fmt.Sprintf("v%d_q%04d", version, index),
		Left:       left,
		Operator:   op,
		Right:      right,
		Answer:     answer,
		Difficulty: DifficultyFor(answer),
		Version:    version,
	}
}

// Prompt renders the question for display, e.g. "7 + 5 = ?".
func (q Question) Prompt() string {
	return fmt.Sprintf("%d %s %d = ?", q.Left, q.Operator.Symbol(), q.Right)
}
