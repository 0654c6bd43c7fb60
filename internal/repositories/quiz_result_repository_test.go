package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"cupid/internal/models/db_models"
)

func storedResult(userID string, completedAt time.Time) *db_models.QuizResult {
	return &db_models.QuizResult{
		UserID:             userID,
		Answers:            datatypes.JSON(`[{"question_id":1,"answer":4}]`),
		Scores:             datatypes.JSON(`{"HP":4}`),
		Matches:            datatypes.JSON(`[{"id":"alpha","percentage":100,"distance":0}]`),
		Ranking:            db_models.IDList{"alpha", "beta"},
		PrimaryArchetypeID: "alpha",
		TotalQuestions:     1,
		ScaleMax:           4,
		CompletedAt:        completedAt,
	}
}

func TestQuizResultRepository_CreateAndGet(t *testing.T) {
	repo := NewQuizResultRepository(newTestDB(t))
	ctx := context.Background()

	result := storedResult("user-1", time.Now().UTC())
	require.NoError(t, repo.CreateResult(ctx, result))
	require.NotEqual(t, uuid.Nil, result.ID)

	got, err := repo.GetResultByID(ctx, result.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "user-1", got.UserID)
	assert.Equal(t, db_models.IDList{"alpha", "beta"}, got.Ranking)
	assert.JSONEq(t, `{"HP":4}`, string(got.Scores))
	assert.Nil(t, got.Feedback)
}

func TestQuizResultRepository_GetMissingReturnsNil(t *testing.T) {
	repo := NewQuizResultRepository(newTestDB(t))

	got, err := repo.GetResultByID(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestQuizResultRepository_ListNewestFirst(t *testing.T) {
	repo := NewQuizResultRepository(newTestDB(t))
	ctx := context.Background()
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	for i, user := range []string{"first", "second", "third"} {
		require.NoError(t, repo.CreateResult(ctx, storedResult(user, base.Add(time.Duration(i)*time.Hour))))
	}

	page, total, err := repo.ListResults(ctx, 1, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, page, 2)
	assert.Equal(t, "third", page[0].UserID)
	assert.Equal(t, "second", page[1].UserID)

	page, _, err = repo.ListResults(ctx, 2, 2)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "first", page[0].UserID)
}
