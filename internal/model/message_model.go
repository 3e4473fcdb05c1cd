package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Message struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SessionId uuid.UUID      `gorm:"type:uuid;not null;index"`
	Sender    string         `gorm:"type:varchar(20);not null"`
	Text      string         `gorm:"type:text;not null"`
	Sentiment *float64       `gorm:"type:double precision"`
	Emotion   *string        `gorm:"type:varchar(50)"`
	RiskScore *int           `gorm:"type:integer"`
	Metadata  datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt time.Time      `gorm:"autoCreateTime;index"`
}

func (Message) TableName() string {
	return "messages"
}
