package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"medisos-be/internal/dto"
	"medisos-be/internal/entity"
	"medisos-be/internal/pkg/logger"
	"medisos-be/internal/pkg/mailer"
	"medisos-be/internal/repository/specification"
	"medisos-be/internal/repository/unitofwork"
	"medisos-be/pkg/llm"
	"medisos-be/pkg/textjson"

	"github.com/google/uuid"
)

const summarizerSystemPrompt = `You are a mental health assessment summarizer. Return ONLY JSON: {"summary":"...","risk_score":int,"urgency":"high|moderate|normal"}`

type ISummaryService interface {
	EndSession(ctx context.Context, userId *uuid.UUID, sessionId uuid.UUID) (*dto.EndSessionResponse, error)
}

type summaryService struct {
	uowFactory   unitofwork.RepositoryFactory
	provider     llm.Provider
	emailService mailer.IEmailService
	log          logger.ILogger
}

func NewSummaryService(uowFactory unitofwork.RepositoryFactory, provider llm.Provider, emailService mailer.IEmailService, log logger.ILogger) ISummaryService {
	return &summaryService{
		uowFactory:   uowFactory,
		provider:     provider,
		emailService: emailService,
		log:          log,
	}
}

// EndSession summarizes the whole conversation, writes the final report,
// marks the session ended, and notifies the assigned counselor when one
// exists. Email delivery is best effort and reported via the email_sent flag.
func (s *summaryService) EndSession(ctx context.Context, userId *uuid.UUID, sessionId uuid.UUID) (*dto.EndSessionResponse, error) {
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

	var user *entity.User
	if userId != nil {
		user, err = uow.UserRepository().FindOne(ctx, specification.ByID{ID: *userId})
		if err != nil {
			return nil, err
		}
	}

	transcript := buildTranscript(messages)

	raw, err := s.provider.Chat(ctx,
		[]llm.Message{
			{Role: "system", Content: summarizerSystemPrompt},
			{Role: "user", Content: fmt.Sprintf("Conversation:\n\n%s\n\nReturn JSON.", transcript)},
		},
		llm.WithTemperature(0.2),
		llm.WithMaxTokens(400),
	)
	if err != nil {
		return nil, err
	}

	// Unparsable summaries degrade to the raw reply with neutral scoring.
	report := dto.SessionReport{Summary: raw, RiskScore: 0, Urgency: string(entity.ReportUrgencyNormal)}
	if data, ok := textjson.ExtractSpan(raw); ok {
		report = dto.SessionReport{
			Summary:   textjson.String(data, "summary", ""),
			RiskScore: textjson.Number(data, "risk_score", 0),
			Urgency:   normalizeUrgency(textjson.String(data, "urgency", "")),
		}
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	urgency := entity.ReportUrgency(report.Urgency)
	finalReport := &entity.Report{
		Id:        uuid.New(),
		SessionId: session.Id,
		Summary:   report.Summary,
		RiskScore: report.RiskScore,
		Urgency:   &urgency,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if user != nil {
		finalReport.UserId = &user.Id
		finalReport.CounselorId = user.CounselorId
	}
	if err := uow.ReportRepository().Create(ctx, finalReport); err != nil {
		return nil, err
	}

	now := time.Now()
	session.Status = entity.SessionStatusEnded
	session.EndedAt = &now
	session.UpdatedAt = now
	if err := uow.SessionRepository().Update(ctx, session); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	emailSent := s.notifyCounselor(ctx, uow, user, report, transcript)

	return &dto.EndSessionResponse{
		SessionId: session.Id,
		Report:    report,
		EmailSent: emailSent,
	}, nil
}

// notifyCounselor emails the assigned counselor. Failures are logged and
// collapse to a false flag rather than failing the request.
func (s *summaryService) notifyCounselor(ctx context.Context, uow unitofwork.UnitOfWork, user *entity.User, report dto.SessionReport, transcript string) bool {
	if user == nil || user.CounselorId == nil {
		return false
	}

	counselor, err := uow.CounselorRepository().FindOne(ctx, specification.ByID{ID: *user.CounselorId})
	if err != nil || counselor == nil {
		return false
	}

	subject := fmt.Sprintf("Session report for %s", user.FullName())
	body := fmt.Sprintf(
		"Patient: %s\nEmail: %s\n\nSummary:\n%s\n\nUrgency: %s\nRisk Score: %d\n\nFull conversation:\n%s",
		user.FullName(), user.Email, report.Summary, report.Urgency, report.RiskScore, transcript,
	)

	if err := s.emailService.Send(counselor.Email, subject, body); err != nil {
		s.log.Warn("summary", "counselor email not sent", map[string]interface{}{
			"counselor_id": counselor.Id.String(),
			"error":        err.Error(),
		})
		return false
	}
	return true
}

func buildTranscript(messages []*entity.Message) string {
	lines := make([]string, 0, len(messages))
	for _, m := range messages {
		lines = append(lines, fmt.Sprintf("%s: %s", m.Sender, m.Text))
	}
	return strings.Join(lines, "\n\n")
}

func normalizeUrgency(value string) string {
	switch entity.ReportUrgency(value) {
	case entity.ReportUrgencyHigh, entity.ReportUrgencyModerate, entity.ReportUrgencyNormal:
		return value
	}
	return string(entity.ReportUrgencyNormal)
}
