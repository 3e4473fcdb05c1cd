package service

import (
	"context"
	"errors"
	"time"

	"medisos-be/internal/dto"
	"medisos-be/internal/entity"
	"medisos-be/internal/pkg/logger"
	"medisos-be/internal/repository/unitofwork"
	"medisos-be/pkg/embedding"
	"medisos-be/pkg/slides"

	"github.com/google/uuid"
)

type IKnowledgeService interface {
	// Reindex rebuilds the passage index from the configured slide deck.
	// Readers see either the old index or the new one, never a mix.
	Reindex(ctx context.Context) (*dto.ReindexResponse, error)
	// Retrieve returns up to topK passage texts nearest to the query.
	// Best effort: any failure yields an empty result, never an error
	// surfaced to the chat turn.
	Retrieve(ctx context.Context, query string, topK int) []string
}

type knowledgeService struct {
	uowFactory    unitofwork.RepositoryFactory
	embedder      embedding.Provider
	slideDeckPath string
	log           logger.ILogger
}

func NewKnowledgeService(uowFactory unitofwork.RepositoryFactory, embedder embedding.Provider, slideDeckPath string, log logger.ILogger) IKnowledgeService {
	return &knowledgeService{
		uowFactory:    uowFactory,
		embedder:      embedder,
		slideDeckPath: slideDeckPath,
		log:           log,
	}
}

func (s *knowledgeService) Reindex(ctx context.Context) (*dto.ReindexResponse, error) {
	texts, err := slides.ExtractText(s.slideDeckPath)
	if err != nil {
		return nil, err
	}
	if len(texts) == 0 {
		return nil, errors.New("no slide text to index")
	}

	vectors, err := s.embedder.Embed(ctx, texts)
	if err != nil {
		return nil, err
	}

	passages := make([]*entity.KnowledgePassage, 0, len(texts))
	for i, text := range texts {
		passages = append(passages, &entity.KnowledgePassage{
			Id:         uuid.New(),
			SlideIndex: i,
			Content:    text,
			Embedding:  vectors[i],
			CreatedAt:  time.Now(),
		})
	}

	// Swap the whole index inside one transaction
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.KnowledgePassageRepository().DeleteAll(ctx); err != nil {
		return nil, err
	}
	if err := uow.KnowledgePassageRepository().CreateBulk(ctx, passages); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.log.Info("knowledge", "index rebuilt", map[string]interface{}{"passages": len(passages)})
	return &dto.ReindexResponse{Indexed: len(passages)}, nil
}

func (s *knowledgeService) Retrieve(ctx context.Context, query string, topK int) []string {
	vectors, err := s.embedder.Embed(ctx, []string{query})
	if err != nil {
		s.log.Warn("knowledge", "query embedding failed, skipping retrieval", map[string]interface{}{"error": err.Error()})
		return nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	scored, err := uow.KnowledgePassageRepository().SearchNearest(ctx, vectors[0], topK)
	if err != nil {
		s.log.Warn("knowledge", "nearest neighbor search failed, skipping retrieval", map[string]interface{}{"error": err.Error()})
		return nil
	}

	texts := make([]string, 0, len(scored))
	for _, hit := range scored {
		texts = append(texts, hit.Passage.Content)
	}
	return texts
}
