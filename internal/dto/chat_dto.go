package dto

import (
	"time"

	"github.com/google/uuid"
)

type ChatRequest struct {
	// SessionId is optional; a missing or unknown id starts a fresh session.
	SessionId *uuid.UUID `json:"session_id,omitempty"`
	Message   string     `json:"message" validate:"required"`
}

type ChatResponse struct {
	SessionId uuid.UUID              `json:"session_id"`
	Reply     string                 `json:"reply"`
	Emergency bool                   `json:"emergency"`
	Metadata  map[string]interface{} `json:"metadata"`
	// Raw is the unstripped model reply, trailing JSON included.
	Raw string `json:"raw,omitempty"`
}

type EndSessionRequest struct {
	SessionId uuid.UUID `json:"session_id" validate:"required"`
}

type SessionReport struct {
	Summary   string `json:"summary"`
	RiskScore int    `json:"risk_score"`
	Urgency   string `json:"urgency"`
}

type EndSessionResponse struct {
	SessionId uuid.UUID     `json:"session_id"`
	Report    SessionReport `json:"report"`
	EmailSent bool          `json:"email_sent"`
}

type MessageResponse struct {
	Id        uuid.UUID              `json:"id"`
	Sender    string                 `json:"sender"`
	Text      string                 `json:"text"`
	Emotion   *string                `json:"emotion,omitempty"`
	RiskScore *int                   `json:"risk_score,omitempty"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}

type SessionHistoryResponse struct {
	SessionId uuid.UUID         `json:"session_id"`
	Status    string            `json:"status"`
	Messages  []MessageResponse `json:"messages"`
}
