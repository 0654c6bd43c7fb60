// Package quiz collects one respondent's answers against a catalog snapshot
// and tracks the quiz through scoring, persistence and feedback.
package quiz

import (
	"errors"
	"fmt"

	"cupid/internal/scoring"
)

type State int

const (
	CollectingAnswers State = iota
	Scoring
	Persisted
	FeedbackRecorded
)

func (s State) String() string {
	switch s {
	case CollectingAnswers:
		return "collecting_answers"
	case Scoring:
		return "scoring"
	case Persisted:
		return "persisted"
	case FeedbackRecorded:
		return "feedback_recorded"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

const DefaultBatchSize = 3

var (
	ErrInvalidTransition = errors.New("invalid quiz state transition")
	ErrIncomplete        = errors.New("quiz has unanswered questions")
	ErrNoAnswers         = errors.New("quiz has no answers")
)

// Session is private to one respondent. A retake starts a new Session.
type Session struct {
	catalog   *scoring.Catalog
	batchSize int
	answers   scoring.AnswerSet
	state     State
	resultID  string
}

func NewSession(catalog *scoring.Catalog, batchSize int) *Session {
	if batchSize < 1 {
		batchSize = DefaultBatchSize
	}
	return &Session{
		catalog:   catalog,
		batchSize: batchSize,
		answers:   make(scoring.AnswerSet),
		state:     CollectingAnswers,
	}
}

// Resume rebuilds the lifecycle of a stored result. A resumed session holds
// no catalog and only accepts feedback.
func Resume(resultID string, feedbackRecorded bool) *Session {
	state := Persisted
	if feedbackRecorded {
		state = FeedbackRecorded
	}
	return &Session{state: state, resultID: resultID}
}

func (s *Session) State() State { return s.state }
func (s *Session) ResultID() string { return s.resultID }
func (s *Session) AnsweredCount() int { return len(s.answers) }

// Answer records value for a question, replacing any earlier answer to it.
func (s *Session) Answer(questionID, value int) error {
	if s.state != CollectingAnswers {
		return fmt.Errorf("%w: cannot answer in state %s", ErrInvalidTransition, s.state)
	}
	a, err := s.catalog.NewAnswer(questionID, value)
	if err != nil {
		return err
	}
	s.answers[questionID] = a
	return nil
}

// Answers returns a copy of the answer set.
func (s *Session) Answers() scoring.AnswerSet {
	out := make(scoring.AnswerSet, len(s.answers))
	for k, v := range s.answers {
		out[k] = v
	}
	return out
}

func (s *Session) TotalBatches() int {
	n := len(s.catalog.Questions())
	return (n + s.batchSize - 1) / s.batchSize
}

// Batch returns the questions shown on page (zero based).
func (s *Session) Batch(page int) []scoring.Question {
	questions := s.catalog.Questions()
	start := page * s.batchSize
	if page < 0 || start >= len(questions) {
		return nil
	}
	end := start + s.batchSize
	if end > len(questions) {
		end = len(questions)
	}
	return questions[start:end]
}

// Missing lists unanswered question ids in catalog order.
func (s *Session) Missing() []int {
	var missing []int
	for _, q := range s.catalog.Questions() {
		if _, ok := s.answers[q.ID]; !ok {
			missing = append(missing, q.ID)
		}
	}
	return missing
}

func (s *Session) Complete() bool {
	return len(s.catalog.Questions()) > 0 && len(s.Missing()) == 0
}

// Score moves the session into Scoring and evaluates the answers. When
// requireAll is set every catalog question must have been answered.
func (s *Session) Score(requireAll bool) (scoring.AxisScores, []scoring.ArchetypeMatch, error) {
	if s.state != CollectingAnswers {
		return nil, nil, fmt.Errorf("%w: cannot score in state %s", ErrInvalidTransition, s.state)
	}
	if len(s.answers) == 0 {
		return nil, nil, ErrNoAnswers
	}
	if requireAll {
		if missing := s.Missing(); len(missing) > 0 {
			return nil, nil, fmt.Errorf("%w: %v", ErrIncomplete, missing)
		}
	}

	s.state = Scoring
	scores, matches := s.catalog.Model().Evaluate(s.answers, s.catalog.Archetypes())
	return scores, matches, nil
}

func (s *Session) MarkPersisted(resultID string) error {
	if s.state != Scoring {
		return fmt.Errorf("%w: cannot persist in state %s", ErrInvalidTransition, s.state)
	}
	s.state = Persisted
	s.resultID = resultID
	return nil
}

// MarkFeedback may be repeated; feedback overwrites.
func (s *Session) MarkFeedback() error {
	if s.state != Persisted && s.state != FeedbackRecorded {
		return fmt.Errorf("%w: cannot record feedback in state %s", ErrInvalidTransition, s.state)
	}
	s.state = FeedbackRecorded
	return nil
}
