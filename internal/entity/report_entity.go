package entity

import (
	"time"

	"github.com/google/uuid"
)

type ReportUrgency string

const (
	ReportUrgencyHigh     ReportUrgency = "high"
	ReportUrgencyModerate ReportUrgency = "moderate"
	ReportUrgencyNormal   ReportUrgency = "normal"
)

// Report is a point-in-time risk snapshot for a session. One is written after
// every assistant turn and one after session end; rows are append-only, later
// rows supersede earlier ones for display.
type Report struct {
	Id          uuid.UUID
	UserId      *uuid.UUID
	SessionId   uuid.UUID
	CounselorId *uuid.UUID
	Summary     string
	RiskScore   int
	Urgency     *ReportUrgency
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
