package implementation

import (
	"context"
	"errors"

	"medisos-be/internal/entity"
	"medisos-be/internal/mapper"
	"medisos-be/internal/model"
	"medisos-be/internal/repository/contract"
	"medisos-be/internal/repository/specification"

	"gorm.io/gorm"
)

type CounselorRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CounselorMapper
}

func NewCounselorRepository(db *gorm.DB) contract.CounselorRepository {
	return &CounselorRepositoryImpl{
		db:     db,
		mapper: mapper.NewCounselorMapper(),
	}
}

func (r *CounselorRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CounselorRepositoryImpl) Create(ctx context.Context, counselor *entity.Counselor) error {
	m := r.mapper.ToModel(counselor)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*counselor = *r.mapper.ToEntity(m)
	return nil
}

func (r *CounselorRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Counselor, error) {
	var m model.Counselor
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *CounselorRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Counselor, error) {
	var models []*model.Counselor
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Counselor, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}
