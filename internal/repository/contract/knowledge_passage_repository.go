package contract

import (
	"context"

	"medisos-be/internal/entity"
)

type KnowledgePassageRepository interface {
	// CreateBulk inserts passages preserving their slide order.
	CreateBulk(ctx context.Context, passages []*entity.KnowledgePassage) error
	// DeleteAll clears the index; paired with CreateBulk inside one
	// transaction this gives readers an atomic old-or-new view.
	DeleteAll(ctx context.Context) error
	// SearchNearest returns up to limit passages ordered by ascending L2
	// distance, ties broken by slide index.
	SearchNearest(ctx context.Context, embedding []float32, limit int) ([]*entity.ScoredPassage, error)
	Count(ctx context.Context) (int64, error)
}
