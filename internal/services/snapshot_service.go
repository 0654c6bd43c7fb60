package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"cupid/internal/models/db_models"
	"cupid/internal/repositories"
	"cupid/pkg/utils"
)

type SnapshotServiceInterface interface {
	// SaveSnapshot shares a stored result with the main app. It does nothing
	// without consent or without a user id.
	SaveSnapshot(ctx context.Context, userID string, resultID uuid.UUID, consent bool) error
}

type SnapshotService struct {
	snapshotRepo repositories.SnapshotRepositoryInterface
	resultRepo   repositories.QuizResultRepositoryInterface
	log          *zap.Logger
}

func NewSnapshotService(
	snapshotRepo repositories.SnapshotRepositoryInterface,
	resultRepo repositories.QuizResultRepositoryInterface,
	log *zap.Logger,
) SnapshotServiceInterface {
	return &SnapshotService{
		snapshotRepo: snapshotRepo,
		resultRepo:   resultRepo,
		log:          log,
	}
}

type snapshotPayload struct {
	Scores      json.RawMessage `json:"scores"`
	Ranking     []string        `json:"ranking"`
	CompletedAt int64           `json:"completed_at"`
}

func (s *SnapshotService) SaveSnapshot(ctx context.Context, userID string, resultID uuid.UUID, consent bool) error {
	userID = strings.TrimSpace(userID)
	if !consent || userID == "" {
		return nil
	}

	result, err := s.resultRepo.GetResultByID(ctx, resultID)
	if err != nil {
		return errors.Join(utils.ErrDatabaseError, err)
	}
	if result == nil {
		return utils.ErrResultNotFound
	}

	payload, err := json.Marshal(snapshotPayload{
		Scores:      json.RawMessage(result.Scores),
		Ranking:     []string(result.Ranking),
		CompletedAt: result.CompletedAt.Unix(),
	})
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	err = s.snapshotRepo.UpsertSnapshot(ctx, &db_models.ResultSnapshot{
		ResultID:           resultID,
		UserID:             userID,
		Consent:            true,
		PrimaryArchetypeID: result.PrimaryArchetypeID,
		Payload:            datatypes.JSON(payload),
	})
	if err != nil {
		return errors.Join(utils.ErrDatabaseError, err)
	}

	s.log.Info("snapshot saved", zap.String("result_id", resultID.String()), zap.String("user_id", userID))
	return nil
}
