package questionbank_test

import (
	"errors"
	"regexp"
	"testing"

	"github.com/mathquiz/backend/internal/domain/questionbank"
)

func TestGenerate_Deterministic(t *testing.T) {
	first, err := questionbank.Generate(questionbank.RecipeV1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := questionbank.Generate(questionbank.RecipeV1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(first) != len(second) {
		t.Fatalf("expected equal lengths, got %d and %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("question %d differs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestGenerate_DifferentSeedsDiffer(t *testing.T) {
	a, _ := questionbank.Generate(questionbank.Recipe{Version: 1, Seed: 1, TargetSize: 30, Quotas: questionbank.Quotas{TeenAdd: 30}})
	b, _ := questionbank.Generate(questionbank.Recipe{Version: 1, Seed: 2, TargetSize: 30, Quotas: questionbank.Quotas{TeenAdd: 30}})

	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("expected different seeds to produce different banks")
	}
}

func TestGenerate_DefaultSpecsFillTargetSize(t *testing.T) {
	for _, recipe := range []questionbank.Recipe{questionbank.RecipeV1, questionbank.RecipeV2} {
		questions, err := questionbank.Generate(recipe)
		if err != nil {
			t.Fatalf("v%d: unexpected error: %v", recipe.Version, err)
		}
		if len(questions) != recipe.TargetSize {
			t.Errorf("v%d: expected %d questions, got %d", recipe.Version, recipe.TargetSize, len(questions))
		}
	}
}

func TestGenerate_NoNegativeAnswersAndNoDuplicates(t *testing.T) {
	for _, recipe := range []questionbank.Recipe{questionbank.RecipeV1, questionbank.RecipeV2} {
		questions, _ := questionbank.Generate(recipe)

		type key struct {
			left  int
			op    questionbank.Operator
			right int
		}
		seen := make(map[key]bool)

		for _, q := range questions {
			if q.Answer < 0 {
				t.Errorf("%s: negative answer %d", q.ID, q.Answer)
			}
			k := key{q.Left, q.Operator, q.Right}
			if seen[k] {
				t.Errorf("%s: duplicate problem %s", q.ID, q.Prompt())
			}
			seen[k] = true
		}
	}
}

func TestGenerate_SequentialIDs(t *testing.T) {
	questions, _ := questionbank.Generate(questionbank.RecipeV2)
	pattern := regexp.MustCompile(`^v2_q\d{4}$`)

	if questions[0].ID != "v2_q0001" {
		t.Errorf("expected first id v2_q0001, got %q", questions[0].ID)
	}
	for _, q := range questions {
		if !pattern.MatchString(q.ID) {
			t.Errorf("unexpected id format %q", q.ID)
		}
		if q.Version != 2 {
			t.Errorf("%s: expected version 2, got %d", q.ID, q.Version)
		}
	}
}

func TestGenerate_TruncatesToTargetSize(t *testing.T) {
	recipe := questionbank.Recipe{
		Version:    1,
		Seed:       7,
		TargetSize: 10,
		Quotas:     questionbank.Quotas{SingleDigitAdd: 30},
	}
	questions, err := questionbank.Generate(recipe)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(questions) != 10 {
		t.Errorf("expected 10 questions, got %d", len(questions))
	}
}

func TestGenerate_EmptyTargetIsAnError(t *testing.T) {
	_, err := questionbank.Generate(questionbank.Recipe{Version: 1, Seed: 1})
	if !errors.Is(err, questionbank.ErrEmptyBank) {
		t.Errorf("expected ErrEmptyBank, got %v", err)
	}
}

func TestDifficultyFor(t *testing.T) {
	cases := []struct {
		answer int
		want   questionbank.Difficulty
	}{
		{0, questionbank.DifficultyEasy},
		{10, questionbank.DifficultyEasy},
		{11, questionbank.DifficultyMedium},
		{20, questionbank.DifficultyMedium},
		{35, questionbank.DifficultyMedium},
		{49, questionbank.DifficultyMedium},
		{50, questionbank.DifficultyHard},
		{98, questionbank.DifficultyHard},
	}

	for _, c := range cases {
		if got := questionbank.DifficultyFor(c.answer); got != c.want {
			t.Errorf("DifficultyFor(%d) = %q, want %q", c.answer, got, c.want)
		}
	}
}

func TestQuestionPrompt(t *testing.T) {
	questions, _ := questionbank.Generate(questionbank.Recipe{
		Version:    1,
		Seed:       3,
		TargetSize: 5,
		Quotas:     questionbank.Quotas{SingleDigitSub: 5},
	})

	q := questions[0]
	want := regexp.MustCompile(`^\d+ - \d+ = \?$`)
	if !want.MatchString(q.Prompt()) {
		t.Errorf("unexpected prompt %q", q.Prompt())
	}
	if q.Answer != q.Left-q.Right {
		t.Errorf("expected answer %d, got %d", q.Left-q.Right, q.Answer)
	}
}

func TestNewBank_Partitions(t *testing.T) {
	questions, _ := questionbank.Generate(questionbank.RecipeV1)
	bank := questionbank.NewBank(1, questions)

	total := len(bank.Easy()) + len(bank.Medium()) + len(bank.Hard())
	if total != bank.Len() {
		t.Errorf("partitions cover %d questions, bank has %d", total, bank.Len())
	}
	for _, q := range bank.Easy() {
		if q.Difficulty != questionbank.DifficultyEasy {
			t.Errorf("%s in easy partition has difficulty %q", q.ID, q.Difficulty)
		}
	}
	for _, q := range bank.Hard() {
		if q.Answer < 50 {
			t.Errorf("%s in hard partition has answer %d", q.ID, q.Answer)
		}
	}
}

func TestBuildCatalog_Lookup(t *testing.T) {
	catalog, err := questionbank.BuildCatalog(questionbank.RecipeV1, questionbank.RecipeV2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	q, ok := catalog.Lookup("v1_q0001")
	if !ok {
		t.Fatal("expected v1_q0001 to be found")
	}
	if q.Version != 1 {
		t.Errorf("expected version 1, got %d", q.Version)
	}

	if _, ok := catalog.Lookup("v2_q0400"); !ok {
		t.Error("expected v2_q0400 to be found")
	}
	if _, ok := catalog.Lookup("v3_q0001"); ok {
		t.Error("expected unknown id to be missing")
	}

	bank, ok := catalog.Bank(2)
	if !ok || bank.Version() != 2 {
		t.Errorf("expected bank v2, got %v", bank)
	}
	if _, ok := catalog.Bank(9); ok {
		t.Error("expected unknown bank version to be missing")
	}
}

func TestBuildCatalog_PropagatesEmptyRecipe(t *testing.T) {
	_, err := questionbank.BuildCatalog(questionbank.Recipe{Version: 3})
	if !errors.Is(err, questionbank.ErrEmptyBank) {
		t.Errorf("expected ErrEmptyBank, got %v", err)
	}
}
