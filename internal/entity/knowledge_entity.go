package entity

import (
	"time"

	"github.com/google/uuid"
)

// KnowledgePassage is one unit of reference text (a single slide) with its
// embedding. The table doubles as the persisted index: a restart reloads it
// without re-embedding.
type KnowledgePassage struct {
	Id         uuid.UUID
	SlideIndex int
	Content    string
	Embedding  []float32
	CreatedAt  time.Time
}

// ScoredPassage is a retrieval hit with its L2 distance to the query vector.
type ScoredPassage struct {
	Passage  *KnowledgePassage
	Distance float64
}
