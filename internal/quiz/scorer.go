package quiz

import "termtrivia/internal/domain"

// Scorer accumulates per-question outcomes for one session.
type Scorer struct {
	score   int
	details []domain.AnswerOutcome
}

func NewScorer() *Scorer {
	return &Scorer{}
}

// Record appends one outcome to the detail log.
func (s *Scorer) Record(outcome domain.AnswerOutcome) {
	if outcome.Result == domain.ResultCorrect {
		s.score++
	}
	s.details = append(s.details, outcome)
}

// Details returns the recorded outcomes in question order.
func (s *Scorer) Details() []domain.AnswerOutcome {
	out := make([]domain.AnswerOutcome, len(s.details))
	copy(out, s.details)
	return out
}

// Summary carries the final numbers for a session. Percentage derives from
// the running score; Accuracy is recomputed from the detail log as a
// cross-check. The two must always agree.
type Summary struct {
	Score      int
	Percentage float64
	Accuracy   float64
}

// Finalize computes the session numbers over total questions asked.
// A total of zero yields zero percentages; the selector rejects empty
// pools before a session ever starts.
func (s *Scorer) Finalize(total int) Summary {
	sum := Summary{Score: s.score}
	if total <= 0 {
		return sum
	}
	sum.Percentage = float64(s.score) / float64(total) * 100

	correct := 0
	for _, d := range s.details {
		if d.Result == domain.ResultCorrect {
			correct++
		}
	}
	sum.Accuracy = float64(correct) / float64(total) * 100
	return sum
}
