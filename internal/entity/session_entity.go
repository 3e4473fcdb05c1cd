package entity

import (
	"time"

	"github.com/google/uuid"
)

type SessionStatus string

const (
	SessionStatusActive SessionStatus = "active"
	SessionStatusEnded  SessionStatus = "ended"
)

type MessageSender string

const (
	MessageSenderUser      MessageSender = "user"
	MessageSenderAssistant MessageSender = "assistant"
)

// Session is a bounded conversation. UserId is nil for anonymous sessions.
type Session struct {
	Id        uuid.UUID
	UserId    *uuid.UUID
	Status    SessionStatus
	StartedAt time.Time
	EndedAt   *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Message is an ordered entry within a session. Immutable once created;
// ordering is by CreatedAt ascending.
type Message struct {
	Id        uuid.UUID
	SessionId uuid.UUID
	Sender    MessageSender
	Text      string
	Sentiment *float64
	Emotion   *string
	RiskScore *int
	// Metadata holds the raw trailing JSON extracted from the model reply.
	Metadata  map[string]interface{}
	CreatedAt time.Time
}
