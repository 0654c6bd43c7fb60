package services

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"cupid/internal/config"
	"cupid/internal/models/db_models"
	"cupid/internal/scoring"
	mem "cupid/pkg/memcache"
)

var errBoom = errors.New("boom")

func testConfig() *config.Config {
	return &config.Config{
		Scoring: config.ScoringConfig{Axes: "HP,WP,HF,CI", ScaleMax: 4},
		Quiz: config.QuizConfig{
			BatchSize:            3,
			RequireAllAnswers:    true,
			SimilarCount:         4,
			PersistFailurePolicy: config.PolicyBlock,
			CatalogCacheTTL:      time.Minute,
		},
		Auth: config.AuthConfig{JWTSecret: "test-secret"},
	}
}

func testModel(t *testing.T) scoring.Model {
	t.Helper()
	m, err := testConfig().ScoringModel()
	require.NoError(t, err)
	return m
}

// fakeCatalogRepo holds two questions (HP forward, WP reverse) and three
// archetypes at (4,0,0,0), (4,4,4,4) and the origin.
type fakeCatalogRepo struct {
	questions  []db_models.Question
	archetypes []db_models.Archetype
	listErr    error
	upsertErr  error
	listCalls  int
	upserted   int
}

func newFakeCatalogRepo(t *testing.T) *fakeCatalogRepo {
	t.Helper()
	m := testModel(t)
	q1, err := questionToDB(scoring.Question{ID: 1, Text: "q1", Weights: scoring.Weights{"HP": 1}, Direction: scoring.Forward, Order: 1})
	require.NoError(t, err)
	q2, err := questionToDB(scoring.Question{ID: 2, Text: "q2", Weights: scoring.Weights{"WP": 1}, Direction: scoring.Reverse, Order: 2})
	require.NoError(t, err)
	return &fakeCatalogRepo{
		questions: []db_models.Question{q1, q2},
		archetypes: []db_models.Archetype{
			archetypeToDB(m, scoring.Archetype{ID: "alpha", Title: "Alpha", Target: scoring.AxisScores{"HP": 4, "WP": 0, "HF": 0, "CI": 0}, Order: 1}),
			archetypeToDB(m, scoring.Archetype{ID: "beta", Title: "Beta", Target: scoring.AxisScores{"HP": 4, "WP": 4, "HF": 4, "CI": 4}, Order: 2}),
			archetypeToDB(m, scoring.Archetype{ID: "gamma", Title: "Gamma", Target: scoring.AxisScores{"HP": 0, "WP": 0, "HF": 0, "CI": 0}, Order: 3}),
		},
	}
}

func (f *fakeCatalogRepo) ListQuestions(ctx context.Context) ([]db_models.Question, error) {
	f.listCalls++
	return f.questions, f.listErr
}

func (f *fakeCatalogRepo) ListArchetypes(ctx context.Context) ([]db_models.Archetype, error) {
	return f.archetypes, f.listErr
}

func (f *fakeCatalogRepo) UpsertCatalog(ctx context.Context, questions []db_models.Question, archetypes []db_models.Archetype) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.upserted++
	f.questions = questions
	f.archetypes = archetypes
	return nil
}

type fakeResultRepo struct {
	results   map[uuid.UUID]*db_models.QuizResult
	createErr error
	getErr    error
}

func newFakeResultRepo() *fakeResultRepo {
	return &fakeResultRepo{results: make(map[uuid.UUID]*db_models.QuizResult)}
}

func (f *fakeResultRepo) CreateResult(ctx context.Context, result *db_models.QuizResult) error {
	if f.createErr != nil {
		return f.createErr
	}
	if result.ID == uuid.Nil {
		result.ID = uuid.New()
	}
	cp := *result
	f.results[result.ID] = &cp
	return nil
}

func (f *fakeResultRepo) GetResultByID(ctx context.Context, id uuid.UUID) (*db_models.QuizResult, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	r, ok := f.results[id]
	if !ok {
		return nil, nil
	}
	cp := *r
	return &cp, nil
}

func (f *fakeResultRepo) ListResults(ctx context.Context, page, pageSize int) ([]db_models.QuizResult, int64, error) {
	all := make([]db_models.QuizResult, 0, len(f.results))
	for _, r := range f.results {
		all = append(all, *r)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CompletedAt.After(all[j].CompletedAt) })
	start := (page - 1) * pageSize
	if start >= len(all) {
		return []db_models.QuizResult{}, int64(len(all)), nil
	}
	end := start + pageSize
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], int64(len(all)), nil
}

type fakeSnapshotService struct {
	calls []uuid.UUID
	err   error
}

func (f *fakeSnapshotService) SaveSnapshot(ctx context.Context, userID string, resultID uuid.UUID, consent bool) error {
	f.calls = append(f.calls, resultID)
	return f.err
}

func newTestCatalogService(t *testing.T, repo *fakeCatalogRepo) *CatalogService {
	t.Helper()
	svc, err := NewCatalogService(repo, mem.NewTTLStore[*scoring.Catalog](), testConfig(), zap.NewNop())
	require.NoError(t, err)
	return svc.(*CatalogService)
}
