package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"cupid/internal/models/response_models"
	"cupid/pkg/utils"
)

type InsightServiceInterface interface {
	CreateInsight(ctx context.Context, resultID uuid.UUID) (*response_models.InsightResponse, error)
}

type InsightService struct {
	quizService QuizServiceInterface
	narrator    utils.NarratorClientInterface
	log         *zap.Logger
}

// NewInsightService accepts a nil narrator; insights are then disabled.
func NewInsightService(
	quizService QuizServiceInterface,
	narrator utils.NarratorClientInterface,
	log *zap.Logger,
) InsightServiceInterface {
	return &InsightService{
		quizService: quizService,
		narrator:    narrator,
		log:         log,
	}
}

func (s *InsightService) CreateInsight(ctx context.Context, resultID uuid.UUID) (*response_models.InsightResponse, error) {
	if s.narrator == nil {
		return nil, utils.ErrNarratorDisabled
	}

	result, err := s.quizService.GetResult(ctx, resultID)
	if err != nil {
		return nil, err
	}

	text, err := s.narrator.Narrate(ctx, insightPrompt(result))
	if err != nil {
		s.log.Error("narrator failed",
			zap.String("provider", s.narrator.Provider()),
			zap.String("result_id", resultID.String()),
			zap.Error(err))
		return nil, fmt.Errorf("create insight: %w", err)
	}

	return &response_models.InsightResponse{
		ResultID: result.ResultID,
		Insight:  text,
	}, nil
}

func insightPrompt(result *response_models.QuizResultResponse) string {
	var b strings.Builder

	axes := make([]string, 0, len(result.Scores))
	for axis := range result.Scores {
		axes = append(axes, axis)
	}
	sort.Strings(axes)

	b.WriteString("Axis scores:\n")
	for _, axis := range axes {
		fmt.Fprintf(&b, "- %s: %.2f\n", axis, result.Scores[axis])
	}
	if result.Primary != nil {
		fmt.Fprintf(&b, "\nTop match: %s (%.1f%%)\n%s\n", result.Primary.Title, result.Primary.Match, result.Primary.Description)
	}
	if len(result.Similar) > 0 {
		b.WriteString("\nAlso similar to:\n")
		for _, r := range result.Similar {
			fmt.Fprintf(&b, "- %s (%.1f%%)\n", r.Title, r.Match)
		}
	}
	b.WriteString("\nWrite a short personalised summary for this person.")
	return b.String()
}
