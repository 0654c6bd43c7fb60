package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cupid/internal/scoring"
)

func testCatalog(t *testing.T, nQuestions int) *scoring.Catalog {
	t.Helper()
	model, err := scoring.NewModel([]scoring.AxisKey{"HP", "WP", "HF", "CI"}, 4)
	require.NoError(t, err)

	questions := make([]scoring.Question, 0, nQuestions)
	for i := 1; i <= nQuestions; i++ {
		dir := scoring.Forward
		if i%3 == 0 {
			dir = scoring.Reverse
		}
		questions = append(questions, scoring.Question{
			ID:        i * 10,
			Weights:   scoring.Weights{"HP": 0.5, "CI": 0.5},
			Direction: dir,
			Order:     i,
		})
	}
	archetypes := []scoring.Archetype{
		{ID: "faithful", Target: scoring.AxisScores{"HP": 4, "WP": 4, "HF": 4, "CI": 4}, Order: 1},
		{ID: "independent", Target: scoring.AxisScores{"HP": 0, "WP": 2, "HF": 0, "CI": 0}, Order: 2},
	}

	c, err := scoring.NewCatalog(model, questions, archetypes)
	require.NoError(t, err)
	return c
}

func TestSessionAnswerOverwrites(t *testing.T) {
	s := NewSession(testCatalog(t, 3), 3)

	require.NoError(t, s.Answer(10, 1))
	require.NoError(t, s.Answer(10, 4))

	assert.Equal(t, 1, s.AnsweredCount())
	assert.Equal(t, 4, s.Answers()[10].RawValue)
}

func TestSessionAnswerRejectsBadInput(t *testing.T) {
	s := NewSession(testCatalog(t, 3), 3)

	assert.ErrorIs(t, s.Answer(99, 1), scoring.ErrUnknownQuestion)
	assert.ErrorIs(t, s.Answer(10, 7), scoring.ErrValueOutOfRange)
	assert.Zero(t, s.AnsweredCount())
}

func TestSessionBatches(t *testing.T) {
	s := NewSession(testCatalog(t, 7), 3)

	assert.Equal(t, 3, s.TotalBatches())
	assert.Len(t, s.Batch(0), 3)
	assert.Len(t, s.Batch(2), 1)
	assert.Nil(t, s.Batch(3))
	assert.Nil(t, s.Batch(-1))

	for _, q := range s.Batch(0) {
		require.NoError(t, s.Answer(q.ID, 2))
	}
	assert.Equal(t, []int{40, 50, 60, 70}, s.Missing())
}

func TestSessionDefaultBatchSize(t *testing.T) {
	s := NewSession(testCatalog(t, 6), 0)
	assert.Equal(t, 2, s.TotalBatches())
}

func TestSessionScoreRequiresAllAnswers(t *testing.T) {
	s := NewSession(testCatalog(t, 3), 3)
	require.NoError(t, s.Answer(10, 4))

	_, _, err := s.Score(true)
	assert.ErrorIs(t, err, ErrIncomplete)
	assert.Equal(t, CollectingAnswers, s.State())

	scores, matches, err := s.Score(false)
	require.NoError(t, err)
	assert.Equal(t, 4.0, scores["HP"])
	assert.Equal(t, 0.0, scores["WP"])
	assert.Len(t, matches, 2)
	assert.Equal(t, Scoring, s.State())
}

func TestSessionScoreWithoutAnswers(t *testing.T) {
	s := NewSession(testCatalog(t, 3), 3)
	_, _, err := s.Score(false)
	assert.ErrorIs(t, err, ErrNoAnswers)
}

func TestSessionLifecycle(t *testing.T) {
	s := NewSession(testCatalog(t, 3), 3)
	for _, id := range []int{10, 20, 30} {
		require.NoError(t, s.Answer(id, 4))
	}
	require.True(t, s.Complete())

	assert.ErrorIs(t, s.MarkPersisted("early"), ErrInvalidTransition)
	assert.ErrorIs(t, s.MarkFeedback(), ErrInvalidTransition)

	_, matches, err := s.Score(true)
	require.NoError(t, err)
	require.NotEmpty(t, matches)

	assert.ErrorIs(t, s.Answer(10, 0), ErrInvalidTransition)
	_, _, err = s.Score(true)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	require.NoError(t, s.MarkPersisted("result-1"))
	assert.Equal(t, Persisted, s.State())
	assert.Equal(t, "result-1", s.ResultID())

	require.NoError(t, s.MarkFeedback())
	require.NoError(t, s.MarkFeedback())
	assert.Equal(t, FeedbackRecorded, s.State())
	assert.Equal(t, "feedback_recorded", s.State().String())
}

func TestResumeStoredResult(t *testing.T) {
	s := Resume("result-2", false)
	assert.Equal(t, Persisted, s.State())
	assert.Equal(t, "result-2", s.ResultID())
	assert.ErrorIs(t, s.Answer(10, 1), ErrInvalidTransition)

	require.NoError(t, s.MarkFeedback())
	assert.Equal(t, FeedbackRecorded, s.State())

	rated := Resume("result-3", true)
	assert.Equal(t, FeedbackRecorded, rated.State())
	require.NoError(t, rated.MarkFeedback())
}
