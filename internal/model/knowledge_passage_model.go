package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

type KnowledgePassage struct {
	Id         uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SlideIndex int             `gorm:"not null;index"`
	Content    string          `gorm:"type:text;not null"`
	Embedding  pgvector.Vector `gorm:"type:vector(3072)"` // text-embedding-3-large uses 3072 dimensions
	CreatedAt  time.Time       `gorm:"autoCreateTime"`
}

func (KnowledgePassage) TableName() string {
	return "knowledge_passages"
}
