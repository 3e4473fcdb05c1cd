package implementation

import (
	"context"

	"medisos-be/internal/entity"
	"medisos-be/internal/mapper"
	"medisos-be/internal/model"
	"medisos-be/internal/repository/contract"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type KnowledgePassageRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.KnowledgeMapper
}

func NewKnowledgePassageRepository(db *gorm.DB) contract.KnowledgePassageRepository {
	return &KnowledgePassageRepositoryImpl{
		db:     db,
		mapper: mapper.NewKnowledgeMapper(),
	}
}

func (r *KnowledgePassageRepositoryImpl) CreateBulk(ctx context.Context, passages []*entity.KnowledgePassage) error {
	if len(passages) == 0 {
		return nil
	}

	models := make([]*model.KnowledgePassage, len(passages))
	for i, p := range passages {
		models[i] = r.mapper.ToModel(p)
	}

	if err := r.db.WithContext(ctx).Create(models).Error; err != nil {
		return err
	}

	for i, m := range models {
		*passages[i] = *r.mapper.ToEntity(m)
	}
	return nil
}

func (r *KnowledgePassageRepositoryImpl) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Where("1 = 1").Delete(&model.KnowledgePassage{}).Error
}

// SearchNearest runs an exact scan ordered by pgvector L2 distance:
// embedding <-> query. Ties resolve by slide index so ranking is stable.
func (r *KnowledgePassageRepositoryImpl) SearchNearest(ctx context.Context, embedding []float32, limit int) ([]*entity.ScoredPassage, error) {
	if limit <= 0 {
		limit = 3
	}

	type result struct {
		model.KnowledgePassage
		Distance float64
	}
	var results []result

	queryVector := pgvector.NewVector(embedding)

	err := r.db.WithContext(ctx).
		Table("knowledge_passages").
		Select("knowledge_passages.*, embedding <-> ? as distance", queryVector).
		Order("distance ASC, slide_index ASC").
		Limit(limit).
		Scan(&results).Error

	if err != nil {
		return nil, err
	}

	scored := make([]*entity.ScoredPassage, len(results))
	for i, res := range results {
		scored[i] = &entity.ScoredPassage{
			Passage:  r.mapper.ToEntity(&res.KnowledgePassage),
			Distance: res.Distance,
		}
	}
	return scored, nil
}

func (r *KnowledgePassageRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.KnowledgePassage{}).Count(&count).Error
	return count, err
}
