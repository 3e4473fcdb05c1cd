package model

import (
	"time"

	"github.com/google/uuid"
)

type Report struct {
	Id          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId      *uuid.UUID `gorm:"type:uuid;index"`
	SessionId   uuid.UUID  `gorm:"type:uuid;not null;index"`
	CounselorId *uuid.UUID `gorm:"type:uuid"`
	Summary     string     `gorm:"type:text"`
	RiskScore   int        `gorm:"type:integer;not null"`
	Urgency     *string    `gorm:"type:varchar(20)"`
	CreatedAt   time.Time  `gorm:"autoCreateTime"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime"`
}

func (Report) TableName() string {
	return "reports"
}
