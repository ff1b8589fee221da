package quiz

import "time"

// OptionCount is the fixed number of options per question.
const OptionCount = 4

// Question is a single generated quiz question. Answer always equals one of
// Options; the generator guarantees it by construction.
type Question struct {
	ID          int
	Question    string
	Options     []string
	Answer      string
	Explanation string
}

// Result records the outcome of one answered question.
type Result struct {
	QuestionID     int
	SelectedAnswer string
	CorrectAnswer  string
	IsCorrect      bool
	TimeSpent      time.Duration
}

// Summary aggregates the results of a completed quiz.
type Summary struct {
	Total     int
	Correct   int
	TotalTime time.Duration
}

// ScorePercent returns the score as a 0-100 percentage.
func (s Summary) ScorePercent() int {
	if s.Total == 0 {
		return 0
	}
	return s.Correct * 100 / s.Total
}

// Summarize folds per-question results into a Summary.
func Summarize(results []Result) Summary {
	var s Summary
	s.Total = len(results)
	for _, r := range results {
		if r.IsCorrect {
			s.Correct++
		}
		s.TotalTime += r.TimeSpent
	}
	return s
}

// Grade scores a selected option against a question. Correctness is an exact,
// case-sensitive string match on the answer text.
func Grade(q Question, selected string, timeSpent time.Duration) Result {
	return Result{
		QuestionID:     q.ID,
		SelectedAnswer: selected,
		CorrectAnswer:  q.Answer,
		IsCorrect:      selected == q.Answer,
		TimeSpent:      timeSpent,
	}
}
