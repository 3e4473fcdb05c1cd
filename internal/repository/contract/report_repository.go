package contract

import (
	"context"

	"medisos-be/internal/entity"
	"medisos-be/internal/repository/specification"
)

// ReportRepository is append-only: reports are never updated or deleted.
type ReportRepository interface {
	Create(ctx context.Context, report *entity.Report) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Report, error)
}
