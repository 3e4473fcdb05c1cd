package service

import (
	"context"
	"testing"
	"time"

	"medisos-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedConversation(store *fakeStore) *entity.Session {
	session := &entity.Session{Id: uuid.New(), Status: entity.SessionStatusActive, StartedAt: time.Now()}
	store.sessions = append(store.sessions, session)
	store.messages = append(store.messages,
		&entity.Message{Id: uuid.New(), SessionId: session.Id, Sender: entity.MessageSenderUser, Text: "I feel low"},
		&entity.Message{Id: uuid.New(), SessionId: session.Id, Sender: entity.MessageSenderAssistant, Text: "Tell me more"},
	)
	return session
}

func TestEndSessionWritesFinalReportAndEndsSession(t *testing.T) {
	store := &fakeStore{}
	session := seedConversation(store)
	provider := &scriptedProvider{replies: []string{`{"summary":"user reported low mood","risk_score":35,"urgency":"moderate"}`}}
	mail := &fakeMailer{}

	svc := NewSummaryService(&fakeFactory{store: store}, provider, mail, noopLogger{})

	res, err := svc.EndSession(context.Background(), nil, session.Id)

	require.NoError(t, err)
	assert.Equal(t, "user reported low mood", res.Report.Summary)
	assert.Equal(t, 35, res.Report.RiskScore)
	assert.Equal(t, "moderate", res.Report.Urgency)
	assert.False(t, res.EmailSent)

	require.Len(t, store.reports, 1)
	require.NotNil(t, store.reports[0].Urgency)
	assert.Equal(t, entity.ReportUrgencyModerate, *store.reports[0].Urgency)

	assert.Equal(t, entity.SessionStatusEnded, store.sessions[0].Status)
	require.NotNil(t, store.sessions[0].EndedAt)

	// transcript uses blank-line separated "sender: text" blocks
	require.Len(t, provider.histories, 1)
	assert.Contains(t, provider.histories[0][1].Content, "user: I feel low\n\nassistant: Tell me more")
}

func TestEndSessionEmptyConversation(t *testing.T) {
	store := &fakeStore{}
	session := &entity.Session{Id: uuid.New(), Status: entity.SessionStatusActive, StartedAt: time.Now()}
	store.sessions = append(store.sessions, session)
	provider := &scriptedProvider{replies: []string{`{"summary":"no conversation took place","risk_score":0,"urgency":"normal"}`}}

	svc := NewSummaryService(&fakeFactory{store: store}, provider, &fakeMailer{}, noopLogger{})

	res, err := svc.EndSession(context.Background(), nil, session.Id)

	require.NoError(t, err)
	assert.Equal(t, "normal", res.Report.Urgency)
	require.Len(t, store.reports, 1)
	assert.Equal(t, entity.SessionStatusEnded, store.sessions[0].Status)

	// the summarizer still ran, over an empty transcript
	require.Len(t, provider.histories, 1)
	assert.Contains(t, provider.histories[0][1].Content, "Conversation:\n\n\n\nReturn JSON.")
}

func TestEndSessionUnparsableSummaryFallsBack(t *testing.T) {
	store := &fakeStore{}
	session := seedConversation(store)
	provider := &scriptedProvider{replies: []string{"sorry, no structured output"}}

	svc := NewSummaryService(&fakeFactory{store: store}, provider, &fakeMailer{}, noopLogger{})

	res, err := svc.EndSession(context.Background(), nil, session.Id)

	require.NoError(t, err)
	assert.Equal(t, "sorry, no structured output", res.Report.Summary)
	assert.Equal(t, 0, res.Report.RiskScore)
	assert.Equal(t, "normal", res.Report.Urgency)
}

func TestEndSessionEmailsAssignedCounselor(t *testing.T) {
	store := &fakeStore{}
	session := seedConversation(store)
	counselor := &entity.Counselor{Id: uuid.New(), Name: "Dr. Sol", Email: "sol@example.com"}
	store.counselors = append(store.counselors, counselor)
	user := &entity.User{Id: uuid.New(), FirstName: "Ami", LastName: "Tan", Email: "ami@example.com", CounselorId: &counselor.Id}
	store.users = append(store.users, user)

	provider := &scriptedProvider{replies: []string{`{"summary":"ok","risk_score":10,"urgency":"normal"}`}}
	mail := &fakeMailer{}

	svc := NewSummaryService(&fakeFactory{store: store}, provider, mail, noopLogger{})

	res, err := svc.EndSession(context.Background(), &user.Id, session.Id)

	require.NoError(t, err)
	assert.True(t, res.EmailSent)
	require.Len(t, mail.sent, 1)
	assert.Equal(t, "sol@example.com", mail.sent[0])

	require.Len(t, store.reports, 1)
	require.NotNil(t, store.reports[0].CounselorId)
	assert.Equal(t, counselor.Id, *store.reports[0].CounselorId)
}

func TestEndSessionEmailFailureCollapsesToFlag(t *testing.T) {
	store := &fakeStore{}
	session := seedConversation(store)
	counselor := &entity.Counselor{Id: uuid.New(), Name: "Dr. Sol", Email: "sol@example.com"}
	store.counselors = append(store.counselors, counselor)
	user := &entity.User{Id: uuid.New(), FirstName: "Ami", LastName: "Tan", Email: "ami@example.com", CounselorId: &counselor.Id}
	store.users = append(store.users, user)

	provider := &scriptedProvider{replies: []string{`{"summary":"ok","risk_score":10,"urgency":"normal"}`}}
	mail := &fakeMailer{err: assert.AnError}

	svc := NewSummaryService(&fakeFactory{store: store}, provider, mail, noopLogger{})

	res, err := svc.EndSession(context.Background(), &user.Id, session.Id)

	require.NoError(t, err)
	assert.False(t, res.EmailSent)
	assert.Equal(t, entity.SessionStatusEnded, store.sessions[0].Status)
}

func TestEndSessionUnknownSession(t *testing.T) {
	svc := NewSummaryService(&fakeFactory{store: &fakeStore{}}, &scriptedProvider{}, &fakeMailer{}, noopLogger{})

	_, err := svc.EndSession(context.Background(), nil, uuid.New())

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEndSessionInvalidUrgencyNormalized(t *testing.T) {
	store := &fakeStore{}
	session := seedConversation(store)
	provider := &scriptedProvider{replies: []string{`{"summary":"ok","risk_score":10,"urgency":"catastrophic"}`}}

	svc := NewSummaryService(&fakeFactory{store: store}, provider, &fakeMailer{}, noopLogger{})

	res, err := svc.EndSession(context.Background(), nil, session.Id)

	require.NoError(t, err)
	assert.Equal(t, "normal", res.Report.Urgency)
}
