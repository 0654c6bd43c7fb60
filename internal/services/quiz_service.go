package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"cupid/internal/config"
	"cupid/internal/models/db_models"
	"cupid/internal/models/request_models"
	"cupid/internal/models/response_models"
	"cupid/internal/quiz"
	"cupid/internal/repositories"
	"cupid/internal/scoring"
	"cupid/pkg/utils"
)

type QuizServiceInterface interface {
	Submit(ctx context.Context, request request_models.SubmitQuizRequest) (*response_models.QuizResultResponse, error)
	GetResult(ctx context.Context, resultID uuid.UUID) (*response_models.QuizResultResponse, error)
	ListResults(ctx context.Context, page, pageSize int) ([]response_models.QuizResultSummary, int64, error)
}

type QuizService struct {
	catalogService  CatalogServiceInterface
	snapshotService SnapshotServiceInterface
	resultRepo      repositories.QuizResultRepositoryInterface
	quizCfg         config.QuizConfig
	log             *zap.Logger
	now             func() time.Time
}

func NewQuizService(
	catalogService CatalogServiceInterface,
	snapshotService SnapshotServiceInterface,
	resultRepo repositories.QuizResultRepositoryInterface,
	cfg *config.Config,
	log *zap.Logger,
) QuizServiceInterface {
	return &QuizService{
		catalogService:  catalogService,
		snapshotService: snapshotService,
		resultRepo:      resultRepo,
		quizCfg:         cfg.Quiz,
		log:             log,
		now:             time.Now,
	}
}

func (s *QuizService) Submit(ctx context.Context, request request_models.SubmitQuizRequest) (*response_models.QuizResultResponse, error) {
	catalog, err := s.catalogService.Catalog(ctx)
	if err != nil {
		return nil, err
	}

	session := quiz.NewSession(catalog, s.quizCfg.BatchSize)
	for _, a := range request.Answers {
		if a.Value == nil {
			return nil, fmt.Errorf("%w: question %d has no value", utils.ErrInvalidAnswer, a.QuestionID)
		}
		if err := session.Answer(a.QuestionID, *a.Value); err != nil {
			return nil, fmt.Errorf("%w: %v", utils.ErrInvalidAnswer, err)
		}
	}

	scores, matches, err := session.Score(s.quizCfg.RequireAllAnswers)
	if err != nil {
		if errors.Is(err, quiz.ErrIncomplete) {
			return nil, fmt.Errorf("%w: missing questions %v", utils.ErrIncompleteQuiz, session.Missing())
		}
		return nil, fmt.Errorf("%w: %v", utils.ErrInvalidAnswer, err)
	}

	s.log.Debug("quiz scored",
		zap.String("user_id", request.UserID),
		zap.Int("answered", session.AnsweredCount()),
		zap.Int("matches", len(matches)))

	completedAt := s.now().UTC()
	record, err := newResultRecord(request, catalog, session.Answers(), scores, matches, completedAt)
	if err != nil {
		return nil, err
	}

	persisted := true
	if err := s.resultRepo.CreateResult(ctx, record); err != nil {
		s.log.Error("failed to persist quiz result",
			zap.String("user_id", request.UserID),
			zap.String("policy", s.quizCfg.PersistFailurePolicy),
			zap.Error(err))
		if s.quizCfg.PersistFailurePolicy != config.PolicyDegrade {
			return nil, errors.Join(utils.ErrPersistenceFailed, err)
		}
		persisted = false
	}

	if persisted {
		if err := session.MarkPersisted(record.ID.String()); err != nil {
			return nil, err
		}
		if request.Consent != nil && *request.Consent {
			if err := s.snapshotService.SaveSnapshot(ctx, request.UserID, record.ID, true); err != nil {
				s.log.Warn("failed to save result snapshot",
					zap.String("result_id", session.ResultID()),
					zap.Error(err))
			}
		}
	}

	resp := s.project(catalog, scores, matches)
	resp.ResultID = session.ResultID()
	resp.Persisted = persisted
	resp.State = session.State().String()
	resp.TotalQuestions = record.TotalQuestions
	resp.CompletedAt = completedAt
	return resp, nil
}

func (s *QuizService) GetResult(ctx context.Context, resultID uuid.UUID) (*response_models.QuizResultResponse, error) {
	result, err := s.resultRepo.GetResultByID(ctx, resultID)
	if err != nil {
		s.log.Error("failed to load quiz result", zap.String("result_id", resultID.String()), zap.Error(err))
		return nil, errors.Join(utils.ErrDatabaseError, err)
	}
	if result == nil {
		return nil, utils.ErrResultNotFound
	}

	var scores scoring.AxisScores
	if err := json.Unmarshal(result.Scores, &scores); err != nil {
		return nil, fmt.Errorf("decode scores of %s: %w", resultID, err)
	}
	var stored []response_models.ArchetypeMatch
	if err := json.Unmarshal(result.Matches, &stored); err != nil {
		return nil, fmt.Errorf("decode matches of %s: %w", resultID, err)
	}
	matches := make([]scoring.ArchetypeMatch, 0, len(stored))
	for _, m := range stored {
		matches = append(matches, scoring.ArchetypeMatch{
			ArchetypeID: m.ID,
			Distance:    m.Distance,
			Percentage:  m.Percentage,
		})
	}

	catalog, err := s.catalogService.Catalog(ctx)
	if err != nil {
		return nil, err
	}

	session := quiz.Resume(result.ID.String(), result.Feedback != nil)
	resp := s.project(catalog, scores, matches)
	resp.ResultID = session.ResultID()
	resp.Persisted = true
	resp.State = session.State().String()
	resp.TotalQuestions = result.TotalQuestions
	resp.CompletedAt = result.CompletedAt
	resp.Feedback = result.Feedback
	return resp, nil
}

func (s *QuizService) ListResults(ctx context.Context, page, pageSize int) ([]response_models.QuizResultSummary, int64, error) {
	if page < 1 {
		return nil, 0, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, 0, utils.ErrInvalidPageSize
	}

	results, total, err := s.resultRepo.ListResults(ctx, page, pageSize)
	if err != nil {
		return nil, 0, errors.Join(utils.ErrDatabaseError, err)
	}
	out := make([]response_models.QuizResultSummary, 0, len(results))
	for _, r := range results {
		out = append(out, toResultSummary(r, s.log))
	}
	return out, total, nil
}

// project builds the display view of a match list against the current
// archetype metadata. The match list is returned unfiltered alongside it.
func (s *QuizService) project(catalog *scoring.Catalog, scores scoring.AxisScores, matches []scoring.ArchetypeMatch) *response_models.QuizResultResponse {
	ranking := scoring.Assemble(matches, catalog.ArchetypeIndex())

	resp := &response_models.QuizResultResponse{
		Scores:   axisMap(scores),
		Similar:  make([]response_models.ArchetypeRanking, 0),
		Rankings: make([]response_models.ArchetypeRanking, 0, len(ranking)),
		Matches:  toMatchResponses(matches),
	}
	for _, r := range ranking {
		resp.Rankings = append(resp.Rankings, toArchetypeRanking(r))
	}
	for _, r := range ranking.Similar(s.quizCfg.SimilarCount) {
		resp.Similar = append(resp.Similar, toArchetypeRanking(r))
	}
	if primary, ok := ranking.Primary(); ok {
		p := toArchetypeRanking(primary)
		resp.Primary = &p
		resp.ShareMessage = ShareMessage(primary)
	}
	return resp
}

// ShareMessage is the text offered to the share sheet for a primary match.
func ShareMessage(primary scoring.RankedArchetype) string {
	pct := strconv.FormatFloat(primary.Percentage, 'f', -1, 64)
	return fmt.Sprintf("Cupid Personality Results\n\nMy Top Match: %s (%s%%)\n\nDiscover your personality with Cupid!", primary.Title, pct)
}

func newResultRecord(
	request request_models.SubmitQuizRequest,
	catalog *scoring.Catalog,
	answers scoring.AnswerSet,
	scores scoring.AxisScores,
	matches []scoring.ArchetypeMatch,
	completedAt time.Time,
) (*db_models.QuizResult, error) {
	stored := make([]response_models.StoredAnswer, 0, len(answers))
	for _, a := range answers {
		stored = append(stored, response_models.StoredAnswer{
			QuestionID: a.QuestionID,
			Answer:     a.RawValue,
			Weights:    axisMap(a.Weights),
			Direction:  int(a.Direction),
		})
	}
	sort.Slice(stored, func(i, j int) bool { return stored[i].QuestionID < stored[j].QuestionID })

	answersJSON, err := json.Marshal(stored)
	if err != nil {
		return nil, fmt.Errorf("encode answers: %w", err)
	}
	scoresJSON, err := json.Marshal(axisMap(scores))
	if err != nil {
		return nil, fmt.Errorf("encode scores: %w", err)
	}
	matchesJSON, err := json.Marshal(toMatchResponses(matches))
	if err != nil {
		return nil, fmt.Errorf("encode matches: %w", err)
	}

	ranking := make(db_models.IDList, 0, len(matches))
	for _, m := range matches {
		ranking = append(ranking, m.ArchetypeID)
	}
	primary := ""
	if len(matches) > 0 {
		primary = matches[0].ArchetypeID
	}

	return &db_models.QuizResult{
		UserID:             request.UserID,
		UserName:           request.UserName,
		Answers:            datatypes.JSON(answersJSON),
		Scores:             datatypes.JSON(scoresJSON),
		Matches:            datatypes.JSON(matchesJSON),
		Ranking:            ranking,
		PrimaryArchetypeID: primary,
		TotalQuestions:     len(catalog.Questions()),
		ScaleMax:           catalog.Model().ScaleMax,
		CompletedAt:        completedAt,
	}, nil
}

func toMatchResponses(matches []scoring.ArchetypeMatch) []response_models.ArchetypeMatch {
	out := make([]response_models.ArchetypeMatch, 0, len(matches))
	for _, m := range matches {
		out = append(out, response_models.ArchetypeMatch{
			ID:         m.ArchetypeID,
			Percentage: m.Percentage,
			Distance:   m.Distance,
		})
	}
	return out
}

func toResultSummary(r db_models.QuizResult, log *zap.Logger) response_models.QuizResultSummary {
	var scores map[string]float64
	if err := json.Unmarshal(r.Scores, &scores); err != nil {
		log.Warn("failed to decode stored scores",
			zap.String("result_id", r.ID.String()),
			zap.Error(err))
	}
	return response_models.QuizResultSummary{
		ResultID:           r.ID.String(),
		UserID:             r.UserID,
		UserName:           r.UserName,
		PrimaryArchetypeID: r.PrimaryArchetypeID,
		Scores:             scores,
		Feedback:           r.Feedback,
		CompletedAt:        r.CompletedAt,
	}
}
