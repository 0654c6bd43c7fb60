package services

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"cupid/internal/models/db_models"
	"cupid/pkg/utils"
)

type fakeSnapshotRepo struct {
	saved map[uuid.UUID]db_models.ResultSnapshot
	err   error
}

func (f *fakeSnapshotRepo) UpsertSnapshot(ctx context.Context, snapshot *db_models.ResultSnapshot) error {
	if f.err != nil {
		return f.err
	}
	f.saved[snapshot.ResultID] = *snapshot
	return nil
}

func (f *fakeSnapshotRepo) GetSnapshotByResultID(ctx context.Context, resultID uuid.UUID) (*db_models.ResultSnapshot, error) {
	s, ok := f.saved[resultID]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func TestSnapshotService_SaveSnapshot(t *testing.T) {
	results := newFakeResultRepo()
	result := &db_models.QuizResult{
		Scores:             datatypes.JSON(`{"HP":4,"WP":1}`),
		Ranking:            db_models.IDList{"alpha", "beta"},
		PrimaryArchetypeID: "alpha",
		CompletedAt:        time.Unix(1700000000, 0).UTC(),
	}
	require.NoError(t, results.CreateResult(context.Background(), result))

	repo := &fakeSnapshotRepo{saved: map[uuid.UUID]db_models.ResultSnapshot{}}
	svc := NewSnapshotService(repo, results, zap.NewNop())
	ctx := context.Background()

	t.Run("no consent", func(t *testing.T) {
		require.NoError(t, svc.SaveSnapshot(ctx, "user-1", result.ID, false))
		assert.Empty(t, repo.saved)
	})

	t.Run("no user", func(t *testing.T) {
		require.NoError(t, svc.SaveSnapshot(ctx, "  ", result.ID, true))
		assert.Empty(t, repo.saved)
	})

	t.Run("consented", func(t *testing.T) {
		require.NoError(t, svc.SaveSnapshot(ctx, "user-1", result.ID, true))
		saved, ok := repo.saved[result.ID]
		require.True(t, ok)
		assert.Equal(t, "user-1", saved.UserID)
		assert.Equal(t, "alpha", saved.PrimaryArchetypeID)
		assert.True(t, saved.Consent)

		var payload map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(saved.Payload, &payload))
		assert.JSONEq(t, `{"HP":4,"WP":1}`, string(payload["scores"]))
		assert.JSONEq(t, `["alpha","beta"]`, string(payload["ranking"]))
	})

	t.Run("unknown result", func(t *testing.T) {
		err := svc.SaveSnapshot(ctx, "user-1", uuid.New(), true)
		assert.ErrorIs(t, err, utils.ErrResultNotFound)
	})

	t.Run("repository failure", func(t *testing.T) {
		repo.err = errBoom
		err := svc.SaveSnapshot(ctx, "user-1", result.ID, true)
		assert.ErrorIs(t, err, utils.ErrDatabaseError)
	})
}
