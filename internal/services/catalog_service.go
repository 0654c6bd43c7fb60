package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"cupid/internal/config"
	"cupid/internal/models/db_models"
	"cupid/internal/models/response_models"
	"cupid/internal/quiz"
	"cupid/internal/repositories"
	"cupid/internal/scoring"
	"cupid/internal/seed"
	mem "cupid/pkg/memcache"
	"cupid/pkg/utils"
)

const catalogCacheKey = "catalog"

type CatalogServiceInterface interface {
	// Catalog returns the validated catalog snapshot, from cache when fresh.
	Catalog(ctx context.Context) (*scoring.Catalog, error)
	Questions(ctx context.Context) (*response_models.QuestionCatalogResponse, error)
	// QuestionBatch returns one page of questions; page starts at 1.
	QuestionBatch(ctx context.Context, page int) (*response_models.QuestionBatchResponse, error)
	Archetypes(ctx context.Context) ([]response_models.ArchetypeResponse, error)
	Seed(ctx context.Context) (*response_models.SeedResponse, error)
	Invalidate()
}

type CatalogService struct {
	catalogRepo repositories.CatalogRepositoryInterface
	cache       mem.Store[*scoring.Catalog]
	model       scoring.Model
	ttl         time.Duration
	batchSize   int
	log         *zap.Logger
}

func NewCatalogService(
	catalogRepo repositories.CatalogRepositoryInterface,
	cache mem.Store[*scoring.Catalog],
	cfg *config.Config,
	log *zap.Logger,
) (CatalogServiceInterface, error) {
	model, err := cfg.ScoringModel()
	if err != nil {
		return nil, err
	}
	return &CatalogService{
		catalogRepo: catalogRepo,
		cache:       cache,
		model:       model,
		ttl:         cfg.Quiz.CatalogCacheTTL,
		batchSize:   cfg.Quiz.BatchSize,
		log:         log,
	}, nil
}

func (s *CatalogService) Catalog(ctx context.Context) (*scoring.Catalog, error) {
	if c, ok := s.cache.Get(catalogCacheKey); ok {
		return c, nil
	}

	c, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	if s.ttl > 0 {
		s.cache.Set(catalogCacheKey, c, s.ttl)
	}
	return c, nil
}

func (s *CatalogService) load(ctx context.Context) (*scoring.Catalog, error) {
	rows, err := s.catalogRepo.ListQuestions(ctx)
	if err != nil {
		s.log.Error("failed to load questions", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", utils.ErrCatalogUnavailable, err)
	}
	archetypeRows, err := s.catalogRepo.ListArchetypes(ctx)
	if err != nil {
		s.log.Error("failed to load archetypes", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", utils.ErrCatalogUnavailable, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no questions", utils.ErrCatalogUnavailable)
	}

	questions := make([]scoring.Question, 0, len(rows))
	for _, row := range rows {
		q, err := questionFromDB(row)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", utils.ErrInvalidCatalog, err)
		}
		questions = append(questions, q)
	}
	archetypes := make([]scoring.Archetype, 0, len(archetypeRows))
	for _, row := range archetypeRows {
		a, err := archetypeFromDB(s.model, row)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", utils.ErrInvalidCatalog, err)
		}
		archetypes = append(archetypes, a)
	}

	c, err := scoring.NewCatalog(s.model, questions, archetypes)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrInvalidCatalog, err)
	}

	s.log.Info("catalog loaded",
		zap.Int("questions", len(questions)),
		zap.Int("archetypes", len(archetypes)))
	return c, nil
}

func (s *CatalogService) Questions(ctx context.Context) (*response_models.QuestionCatalogResponse, error) {
	c, err := s.Catalog(ctx)
	if err != nil {
		return nil, err
	}

	questions := c.Questions()
	out := make([]response_models.QuestionResponse, 0, len(questions))
	for _, q := range questions {
		out = append(out, toQuestionResponse(q))
	}
	axes := make([]string, 0, len(s.model.Axes))
	for _, a := range s.model.Axes {
		axes = append(axes, string(a))
	}

	return &response_models.QuestionCatalogResponse{
		Questions:    out,
		Axes:         axes,
		ScaleMax:     s.model.ScaleMax,
		BatchSize:    s.batchSize,
		TotalBatches: quiz.NewSession(c, s.batchSize).TotalBatches(),
	}, nil
}

func (s *CatalogService) QuestionBatch(ctx context.Context, page int) (*response_models.QuestionBatchResponse, error) {
	c, err := s.Catalog(ctx)
	if err != nil {
		return nil, err
	}

	session := quiz.NewSession(c, s.batchSize)
	batch := session.Batch(page - 1)
	if len(batch) == 0 {
		return nil, fmt.Errorf("%w: page %d of %d", utils.ErrInvalidPage, page, session.TotalBatches())
	}
	out := make([]response_models.QuestionResponse, 0, len(batch))
	for _, q := range batch {
		out = append(out, toQuestionResponse(q))
	}
	return &response_models.QuestionBatchResponse{
		Page:         page,
		TotalBatches: session.TotalBatches(),
		Questions:    out,
		ScaleMax:     s.model.ScaleMax,
	}, nil
}

func (s *CatalogService) Archetypes(ctx context.Context) ([]response_models.ArchetypeResponse, error) {
	c, err := s.Catalog(ctx)
	if err != nil {
		return nil, err
	}

	archetypes := c.Archetypes()
	out := make([]response_models.ArchetypeResponse, 0, len(archetypes))
	for _, a := range archetypes {
		out = append(out, toArchetypeResponse(a))
	}
	return out, nil
}

// Seed upserts the embedded catalog and drops the cached snapshot.
func (s *CatalogService) Seed(ctx context.Context) (*response_models.SeedResponse, error) {
	catalog, err := seed.Load(s.model)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrInvalidCatalog, err)
	}

	questions := make([]db_models.Question, 0, len(catalog.Questions))
	for _, q := range catalog.ScoringQuestions() {
		row, err := questionToDB(q)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", utils.ErrInvalidCatalog, err)
		}
		questions = append(questions, row)
	}
	archetypes := make([]db_models.Archetype, 0, len(catalog.Archetypes))
	for _, a := range catalog.ScoringArchetypes() {
		if err := checkTargetPrecision(s.model, a); err != nil {
			return nil, fmt.Errorf("%w: %v", utils.ErrInvalidCatalog, err)
		}
		archetypes = append(archetypes, archetypeToDB(s.model, a))
	}

	if err := s.catalogRepo.UpsertCatalog(ctx, questions, archetypes); err != nil {
		s.log.Error("failed to seed catalog", zap.Error(err))
		return nil, errors.Join(utils.ErrDatabaseError, err)
	}
	s.Invalidate()

	s.log.Info("catalog seeded",
		zap.Int("questions", len(questions)),
		zap.Int("archetypes", len(archetypes)))
	return &response_models.SeedResponse{
		Questions:  len(questions),
		Archetypes: len(archetypes),
	}, nil
}

func (s *CatalogService) Invalidate() {
	s.cache.Delete(catalogCacheKey)
}
