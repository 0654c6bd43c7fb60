package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"cupid/internal/models/response_models"
	"cupid/internal/quiz"
	"cupid/internal/repositories"
	"cupid/pkg/utils"
)

type FeedbackServiceInterface interface {
	RecordFeedback(ctx context.Context, resultID uuid.UUID, feedback int) (*response_models.FeedbackResponse, error)
	GetFeedback(ctx context.Context, page, pageSize int) ([]response_models.QuizResultSummary, error)
}

type FeedbackService struct {
	feedbackRepo repositories.FeedbackRepositoryInterface
	log          *zap.Logger
}

func NewFeedbackService(feedbackRepo repositories.FeedbackRepositoryInterface, log *zap.Logger) FeedbackServiceInterface {
	return &FeedbackService{feedbackRepo: feedbackRepo, log: log}
}

// RecordFeedback overwrites the accuracy rating of a stored result.
func (s *FeedbackService) RecordFeedback(ctx context.Context, resultID uuid.UUID, feedback int) (*response_models.FeedbackResponse, error) {
	if feedback < 1 || feedback > 5 {
		return nil, fmt.Errorf("%w: got %d", utils.ErrInvalidFeedback, feedback)
	}

	found, err := s.feedbackRepo.UpdateFeedback(ctx, resultID, feedback)
	if err != nil {
		s.log.Error("failed to record feedback", zap.String("result_id", resultID.String()), zap.Error(err))
		return nil, errors.Join(utils.ErrDatabaseError, err)
	}
	if !found {
		return nil, utils.ErrResultNotFound
	}

	session := quiz.Resume(resultID.String(), false)
	if err := session.MarkFeedback(); err != nil {
		return nil, err
	}
	return &response_models.FeedbackResponse{
		ResultID: session.ResultID(),
		Feedback: feedback,
		State:    session.State().String(),
	}, nil
}

func (s *FeedbackService) GetFeedback(ctx context.Context, page, pageSize int) ([]response_models.QuizResultSummary, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	results, err := s.feedbackRepo.ListFeedback(ctx, page, pageSize)
	if err != nil {
		return nil, errors.Join(utils.ErrDatabaseError, err)
	}
	out := make([]response_models.QuizResultSummary, 0, len(results))
	for _, r := range results {
		out = append(out, toResultSummary(r, s.log))
	}
	return out, nil
}
