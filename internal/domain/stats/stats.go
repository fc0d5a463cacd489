package stats

import (
	"math"
	"time"
)

// Counts are the raw counters kept per child per day.
type Counts struct {
	Served   int `json:"served_count"`
	Answered int `json:"answered_count"`
	Correct  int `json:"correct_count"`
	Earned   int `json:"earned"`
}

// DayStats is one day of a recap.
type DayStats struct {
	Day string `json:"day"`
	Counts
	AccuracyPct int `json:"accuracy_pct"`
}

// Totals sums a recap's days; accuracy is recomputed from the sums.
type Totals struct {
	Counts
	AccuracyPct int `json:"accuracy_pct"`
}

// Recap is the accuracy view of one child over an ordered list of days.
type Recap struct {
	Child  string     `json:"child"`
	Days   []DayStats `json:"days"`
	Totals Totals     `json:"totals"`
}

// Accuracy returns correct/answered as a rounded percentage, or 0 when
// nothing was answered. Halves round to even.
func Accuracy(correct, answered int) int {
	if answered <= 0 {
		return 0
	}
	return int(math.RoundToEven(float64(correct) / float64(answered) * 100))
}

// BuildRecap lays out rows over days in order. Days missing from rows
// report zero counts.
func BuildRecap(child string, days []string, rows map[string]Counts) Recap {
	recap := Recap{
		Child: child,
		Days:  make([]DayStats, 0, len(days)),
	}

	var sum Counts
	for _, day := range days {
		c := rows[day]
		recap.Days = append(recap.Days, DayStats{
			Day:         day,
			Counts:      c,
			AccuracyPct: Accuracy(c.Correct, c.Answered),
		})
		sum.Served += c.Served
		sum.Answered += c.Answered
		sum.Correct += c.Correct
		sum.Earned += c.Earned
	}

	recap.Totals = Totals{
		Counts:      sum,
		AccuracyPct: Accuracy(sum.Correct, sum.Answered),
	}
	return recap
}

// LastNDays returns n day keys ending at now, oldest first.
func LastNDays(now time.Time, n int) []string {
	days := make([]string, 0, n)
	for i := n - 1; i >= 0; i-- {
		days = append(days, now.AddDate(0, 0, -i).Format("2006-01-02"))
	}
	return days
}

// Level labels a child's weekly progress.
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// LevelFor classifies a weekly recap: fewer than 50 answers is always
// beginner, then 80% and 60% accuracy mark advanced and intermediate.
func LevelFor(weekly Recap) Level {
	switch {
	case weekly.Totals.Answered < 50:
		return LevelBeginner
	case weekly.Totals.AccuracyPct >= 80:
		return LevelAdvanced
	case weekly.Totals.AccuracyPct >= 60:
		return LevelIntermediate
	default:
		return LevelBeginner
	}
}
