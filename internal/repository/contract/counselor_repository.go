package contract

import (
	"context"

	"medisos-be/internal/entity"
	"medisos-be/internal/repository/specification"
)

type CounselorRepository interface {
	Create(ctx context.Context, counselor *entity.Counselor) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Counselor, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Counselor, error)
}
