package mapper

import (
	"encoding/json"

	"medisos-be/internal/entity"
	"medisos-be/internal/model"

	"gorm.io/datatypes"
)

type TriageMapper struct{}

func NewTriageMapper() *TriageMapper {
	return &TriageMapper{}
}

// Session Mappers

func (m *TriageMapper) SessionToEntity(s *model.Session) *entity.Session {
	if s == nil {
		return nil
	}

	return &entity.Session{
		Id:        s.Id,
		UserId:    s.UserId,
		Status:    entity.SessionStatus(s.Status),
		StartedAt: s.StartedAt,
		EndedAt:   s.EndedAt,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func (m *TriageMapper) SessionToModel(s *entity.Session) *model.Session {
	if s == nil {
		return nil
	}

	return &model.Session{
		Id:        s.Id,
		UserId:    s.UserId,
		Status:    string(s.Status),
		StartedAt: s.StartedAt,
		EndedAt:   s.EndedAt,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// Message Mappers

func (m *TriageMapper) MessageToEntity(msg *model.Message) *entity.Message {
	if msg == nil {
		return nil
	}

	var metadata map[string]interface{}
	if len(msg.Metadata) > 0 {
		// Malformed stored metadata is dropped, not surfaced
		_ = json.Unmarshal(msg.Metadata, &metadata)
	}

	return &entity.Message{
		Id:        msg.Id,
		SessionId: msg.SessionId,
		Sender:    entity.MessageSender(msg.Sender),
		Text:      msg.Text,
		Sentiment: msg.Sentiment,
		Emotion:   msg.Emotion,
		RiskScore: msg.RiskScore,
		Metadata:  metadata,
		CreatedAt: msg.CreatedAt,
	}
}

func (m *TriageMapper) MessageToModel(msg *entity.Message) *model.Message {
	if msg == nil {
		return nil
	}

	var metadata datatypes.JSON
	if len(msg.Metadata) > 0 {
		if raw, err := json.Marshal(msg.Metadata); err == nil {
			metadata = raw
		}
	}

	return &model.Message{
		Id:        msg.Id,
		SessionId: msg.SessionId,
		Sender:    string(msg.Sender),
		Text:      msg.Text,
		Sentiment: msg.Sentiment,
		Emotion:   msg.Emotion,
		RiskScore: msg.RiskScore,
		Metadata:  metadata,
		CreatedAt: msg.CreatedAt,
	}
}

// Report Mappers

func (m *TriageMapper) ReportToEntity(r *model.Report) *entity.Report {
	if r == nil {
		return nil
	}

	var urgency *entity.ReportUrgency
	if r.Urgency != nil {
		u := entity.ReportUrgency(*r.Urgency)
		urgency = &u
	}

	return &entity.Report{
		Id:          r.Id,
		UserId:      r.UserId,
		SessionId:   r.SessionId,
		CounselorId: r.CounselorId,
		Summary:     r.Summary,
		RiskScore:   r.RiskScore,
		Urgency:     urgency,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func (m *TriageMapper) ReportToModel(r *entity.Report) *model.Report {
	if r == nil {
		return nil
	}

	var urgency *string
	if r.Urgency != nil {
		u := string(*r.Urgency)
		urgency = &u
	}

	return &model.Report{
		Id:          r.Id,
		UserId:      r.UserId,
		SessionId:   r.SessionId,
		CounselorId: r.CounselorId,
		Summary:     r.Summary,
		RiskScore:   r.RiskScore,
		Urgency:     urgency,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
