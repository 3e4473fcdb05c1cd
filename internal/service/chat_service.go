package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"medisos-be/internal/constant"
	"medisos-be/internal/dto"
	"medisos-be/internal/entity"
	"medisos-be/internal/pkg/logger"
	"medisos-be/internal/repository/specification"
	"medisos-be/internal/repository/unitofwork"
	"medisos-be/pkg/llm"
	"medisos-be/pkg/prompt"
	"medisos-be/pkg/safety"
	"medisos-be/pkg/textjson"

	"github.com/google/uuid"
)

const reportSummaryLimit = 200

type IChatService interface {
	SendChat(ctx context.Context, userId *uuid.UUID, req *dto.ChatRequest) (*dto.ChatResponse, error)
	GetSessionHistory(ctx context.Context, sessionId uuid.UUID) (*dto.SessionHistoryResponse, error)
}

type chatService struct {
	uowFactory unitofwork.RepositoryFactory
	provider   llm.Provider
	classifier *safety.Classifier
	knowledge  IKnowledgeService
	topK       int
	log        logger.ILogger
}

func NewChatService(
	uowFactory unitofwork.RepositoryFactory,
	provider llm.Provider,
	classifier *safety.Classifier,
	knowledge IKnowledgeService,
	topK int,
	log logger.ILogger,
) IChatService {
	return &chatService{
		uowFactory: uowFactory,
		provider:   provider,
		classifier: classifier,
		knowledge:  knowledge,
		topK:       topK,
		log:        log,
	}
}

// SendChat runs one conversation turn. The safety gates come before any
// provider-dependent work so their replies survive a full provider outage.
func (s *chatService) SendChat(ctx context.Context, userId *uuid.UUID, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	text := strings.TrimSpace(req.Message)
	if text == "" {
		return nil, errors.New("message must not be empty")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	// 1. Resolve session. Unknown or missing ids fall back to a fresh
	// session instead of erroring.
	session, err := s.resolveSession(ctx, uow, userId, req.SessionId)
	if err != nil {
		return nil, err
	}

	// The profile comes from the authenticated caller, not the session
	// owner; sessions stay usable anonymously.
	var user *entity.User
	if userId != nil {
		user, err = uow.UserRepository().FindOne(ctx, specification.ByID{ID: *userId})
		if err != nil {
			return nil, err
		}
	}

	// 2. Persist the user turn before any gate can short-circuit.
	userMessage := &entity.Message{
		Id:        uuid.New(),
		SessionId: session.Id,
		Sender:    entity.MessageSenderUser,
		Text:      text,
		CreatedAt: time.Now(),
	}
	if err := uow.MessageRepository().Create(ctx, userMessage); err != nil {
		return nil, err
	}

	// 3. Gate A: keyword match. Deterministic, no provider involved.
	if safety.MatchesUrgentPhrase(text) {
		return s.emergencyReply(ctx, uow, session, constant.CrisisReply, map[string]interface{}{"risk_score": 100}, 100)
	}

	// 4. Gate B: model classifier. Falls back toward low risk on failure.
	verdict := s.classifier.Classify(ctx, text)
	if verdict.Emergency() {
		return s.emergencyReply(ctx, uow, session, constant.EscalationReply, map[string]interface{}{
			"risk_score": verdict.Score,
			"label":      verdict.Label,
			"reason":     verdict.Reason,
		}, verdict.Score)
	}

	// 5. Retrieval is best effort; an empty result just means no references.
	passages := s.knowledge.Retrieve(ctx, text, s.topK)

	// 6. Profile context for known users.
	profile, err := s.buildProfile(ctx, uow, user)
	if err != nil {
		return nil, err
	}

	// 7. Main model call.
	messages := prompt.Compose(profile, passages, text)
	raw, err := s.provider.Chat(ctx, messages, llm.WithTemperature(0.3), llm.WithMaxTokens(512))
	if err != nil {
		return nil, err
	}

	// 8. Split the reply from its trailing metadata. Risk falls back to the
	// classifier verdict when the model omitted it.
	clean, metadata := textjson.ExtractTrailing(raw)
	riskScore := textjson.Number(metadata, "risk_score", verdict.Score)

	assistantMessage := &entity.Message{
		Id:        uuid.New(),
		SessionId: session.Id,
		Sender:    entity.MessageSenderAssistant,
		Text:      clean,
		RiskScore: &riskScore,
		Metadata:  metadata,
		CreatedAt: time.Now(),
	}
	if emotion := textjson.String(metadata, "emotion", ""); emotion != "" {
		assistantMessage.Emotion = &emotion
	}
	if err := uow.MessageRepository().Create(ctx, assistantMessage); err != nil {
		return nil, err
	}

	// 9. Running report for this turn. Later rows supersede earlier ones for
	// display; nothing is deleted.
	report := &entity.Report{
		Id:        uuid.New(),
		SessionId: session.Id,
		Summary:   truncateSummary(clean),
		RiskScore: riskScore,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if user != nil {
		report.UserId = &user.Id
		report.CounselorId = user.CounselorId
	}
	if err := uow.ReportRepository().Create(ctx, report); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return &dto.ChatResponse{
		SessionId: session.Id,
		Reply:     clean,
		Emergency: false,
		Metadata:  metadata,
		Raw:       raw,
	}, nil
}

func (s *chatService) GetSessionHistory(ctx context.Context, sessionId uuid.UUID) (*dto.SessionHistoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.SessionRepository().FindOne(ctx, specification.ByID{ID: sessionId})
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrNotFound
	}

	messages, err := uow.MessageRepository().FindAll(ctx,
		specification.BySessionID{SessionID: sessionId},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, err
	}

	res := &dto.SessionHistoryResponse{
		SessionId: session.Id,
		Status:    string(session.Status),
		Messages:  make([]dto.MessageResponse, 0, len(messages)),
	}
	for _, m := range messages {
		res.Messages = append(res.Messages, dto.MessageResponse{
			Id:        m.Id,
			Sender:    string(m.Sender),
			Text:      m.Text,
			Emotion:   m.Emotion,
			RiskScore: m.RiskScore,
			Metadata:  m.Metadata,
			CreatedAt: m.CreatedAt,
		})
	}
	return res, nil
}

func (s *chatService) resolveSession(ctx context.Context, uow unitofwork.UnitOfWork, userId *uuid.UUID, sessionId *uuid.UUID) (*entity.Session, error) {
	if sessionId != nil {
		session, err := uow.SessionRepository().FindOne(ctx, specification.ByID{ID: *sessionId})
		if err != nil {
			return nil, err
		}
		if session != nil {
			return session, nil
		}
		s.log.Warn("chat", "unknown session id, starting a new session", map[string]interface{}{"session_id": sessionId.String()})
	}

	session := &entity.Session{
		Id:        uuid.New(),
		UserId:    userId,
		Status:    entity.SessionStatusActive,
		StartedAt: time.Now(),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := uow.SessionRepository().Create(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// emergencyReply persists the fixed assistant turn for a triggered gate and
// commits. Must not depend on any external provider.
func (s *chatService) emergencyReply(ctx context.Context, uow unitofwork.UnitOfWork, session *entity.Session, reply string, metadata map[string]interface{}, riskScore int) (*dto.ChatResponse, error) {
	message := &entity.Message{
		Id:        uuid.New(),
		SessionId: session.Id,
		Sender:    entity.MessageSenderAssistant,
		Text:      reply,
		RiskScore: &riskScore,
		Metadata:  metadata,
		CreatedAt: time.Now(),
	}
	if err := uow.MessageRepository().Create(ctx, message); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.log.Warn("chat", "safety gate triggered", map[string]interface{}{
		"session_id": session.Id.String(),
		"risk_score": riskScore,
	})

	return &dto.ChatResponse{
		SessionId: session.Id,
		Reply:     reply,
		Emergency: true,
		Metadata:  metadata,
	}, nil
}

func (s *chatService) buildProfile(ctx context.Context, uow unitofwork.UnitOfWork, user *entity.User) (*prompt.Profile, error) {
	if user == nil {
		return nil, nil
	}

	profile := &prompt.Profile{
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}
	if user.AgeGroup != nil {
		profile.AgeGroup = *user.AgeGroup
	}
	if user.CounselorId != nil {
		counselor, err := uow.CounselorRepository().FindOne(ctx, specification.ByID{ID: *user.CounselorId})
		if err != nil {
			return nil, err
		}
		if counselor != nil {
			profile.CounselorName = counselor.Name
			profile.CounselorEmail = counselor.Email
		}
	}
	return profile, nil
}

func truncateSummary(text string) string {
	runes := []rune(text)
	if len(runes) > reportSummaryLimit {
		runes = runes[:reportSummaryLimit]
	}
	return string(runes) + "..."
}
