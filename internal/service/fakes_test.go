package service

import (
	"context"
	"errors"

	"medisos-be/internal/dto"
	"medisos-be/internal/entity"
	"medisos-be/internal/repository/contract"
	"medisos-be/internal/repository/specification"
	"medisos-be/internal/repository/unitofwork"

	"medisos-be/pkg/llm"

	"github.com/google/uuid"
)

// In-memory fakes for the repository layer. Specifications are matched by
// type switch; unknown specification types are ignored.

type fakeStore struct {
	users      []*entity.User
	counselors []*entity.Counselor
	sessions   []*entity.Session
	messages   []*entity.Message
	reports    []*entity.Report
	passages   []*entity.KnowledgePassage

	commits   int
	rollbacks int
}

type fakeUow struct {
	store *fakeStore
	began bool
}

func (u *fakeUow) Begin(ctx context.Context) error { u.began = true; return nil }
func (u *fakeUow) Commit() error {
	if !u.began {
		return errors.New("commit without begin")
	}
	u.began = false
	u.store.commits++
	return nil
}
func (u *fakeUow) Rollback() error {
	if u.began {
		u.began = false
		u.store.rollbacks++
	}
	return nil
}

func (u *fakeUow) UserRepository() contract.UserRepository           { return &fakeUserRepo{u.store} }
func (u *fakeUow) CounselorRepository() contract.CounselorRepository { return &fakeCounselorRepo{u.store} }
func (u *fakeUow) SessionRepository() contract.SessionRepository     { return &fakeSessionRepo{u.store} }
func (u *fakeUow) MessageRepository() contract.MessageRepository     { return &fakeMessageRepo{u.store} }
func (u *fakeUow) ReportRepository() contract.ReportRepository       { return &fakeReportRepo{u.store} }
func (u *fakeUow) KnowledgePassageRepository() contract.KnowledgePassageRepository {
	return &fakePassageRepo{u.store}
}

type fakeFactory struct {
	store *fakeStore
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &fakeUow{store: f.store}
}

func matchID(specs []specification.Specification) (uuid.UUID, bool) {
	for _, s := range specs {
		if byID, ok := s.(specification.ByID); ok {
			return byID.ID, true
		}
	}
	return uuid.Nil, false
}

type fakeUserRepo struct{ store *fakeStore }

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.store.users = append(r.store.users, user)
	return nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	for i, u := range r.store.users {
		if u.Id == user.Id {
			r.store.users[i] = user
			return nil
		}
	}
	return errors.New("user missing")
}

func (r *fakeUserRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	for _, u := range r.store.users {
		if matches := true; matches {
			for _, s := range specs {
				switch spec := s.(type) {
				case specification.ByID:
					if u.Id != spec.ID {
						matches = false
					}
				case specification.ByEmail:
					if u.Email != spec.Email {
						matches = false
					}
				}
			}
			if matches {
				return u, nil
			}
		}
	}
	return nil, nil
}

type fakeCounselorRepo struct{ store *fakeStore }

func (r *fakeCounselorRepo) Create(ctx context.Context, counselor *entity.Counselor) error {
	r.store.counselors = append(r.store.counselors, counselor)
	return nil
}

func (r *fakeCounselorRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Counselor, error) {
	id, ok := matchID(specs)
	if !ok {
		return nil, nil
	}
	for _, c := range r.store.counselors {
		if c.Id == id {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeCounselorRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Counselor, error) {
	return r.store.counselors, nil
}

type fakeSessionRepo struct{ store *fakeStore }

func (r *fakeSessionRepo) Create(ctx context.Context, session *entity.Session) error {
	r.store.sessions = append(r.store.sessions, session)
	return nil
}

func (r *fakeSessionRepo) Update(ctx context.Context, session *entity.Session) error {
	for i, s := range r.store.sessions {
		if s.Id == session.Id {
			r.store.sessions[i] = session
			return nil
		}
	}
	return errors.New("session missing")
}

func (r *fakeSessionRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Session, error) {
	id, ok := matchID(specs)
	if !ok {
		return nil, nil
	}
	for _, s := range r.store.sessions {
		if s.Id == id {
			return s, nil
		}
	}
	return nil, nil
}

func (r *fakeSessionRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Session, error) {
	return r.store.sessions, nil
}

type fakeMessageRepo struct{ store *fakeStore }

func (r *fakeMessageRepo) Create(ctx context.Context, message *entity.Message) error {
	r.store.messages = append(r.store.messages, message)
	return nil
}

func (r *fakeMessageRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Message, error) {
	var sessionID *uuid.UUID
	for _, s := range specs {
		if bySession, ok := s.(specification.BySessionID); ok {
			id := bySession.SessionID
			sessionID = &id
		}
	}
	var out []*entity.Message
	for _, m := range r.store.messages {
		if sessionID == nil || m.SessionId == *sessionID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeMessageRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	found, err := r.FindAll(ctx, specs...)
	return int64(len(found)), err
}

type fakeReportRepo struct{ store *fakeStore }

func (r *fakeReportRepo) Create(ctx context.Context, report *entity.Report) error {
	r.store.reports = append(r.store.reports, report)
	return nil
}

func (r *fakeReportRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Report, error) {
	return r.store.reports, nil
}

type fakePassageRepo struct{ store *fakeStore }

func (r *fakePassageRepo) CreateBulk(ctx context.Context, passages []*entity.KnowledgePassage) error {
	r.store.passages = append(r.store.passages, passages...)
	return nil
}

func (r *fakePassageRepo) DeleteAll(ctx context.Context) error {
	r.store.passages = nil
	return nil
}

func (r *fakePassageRepo) SearchNearest(ctx context.Context, embedding []float32, limit int) ([]*entity.ScoredPassage, error) {
	var out []*entity.ScoredPassage
	for _, p := range r.store.passages {
		if len(out) >= limit {
			break
		}
		out = append(out, &entity.ScoredPassage{Passage: p})
	}
	return out, nil
}

func (r *fakePassageRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.store.passages)), nil
}

// scriptedProvider replays canned replies in order and records histories.
type scriptedProvider struct {
	replies   []string
	err       error
	calls     int
	histories [][]llm.Message
}

func (p *scriptedProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	p.histories = append(p.histories, history)
	p.calls++
	if p.err != nil {
		return "", p.err
	}
	if len(p.replies) == 0 {
		return "", errors.New("no scripted reply")
	}
	reply := p.replies[0]
	if len(p.replies) > 1 {
		p.replies = p.replies[1:]
	}
	return reply, nil
}

type stubKnowledge struct {
	passages []string
}

func (k *stubKnowledge) Reindex(ctx context.Context) (*dto.ReindexResponse, error) { return nil, nil }

func (k *stubKnowledge) Retrieve(ctx context.Context, query string, topK int) []string {
	return k.passages
}

type fakeMailer struct {
	sent []string
	err  error
}

func (m *fakeMailer) Send(toEmail, subject, body string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, toEmail)
	return nil
}

type noopLogger struct{}

func (noopLogger) Debug(module, message string, details map[string]interface{}) {}
func (noopLogger) Info(module, message string, details map[string]interface{})  {}
func (noopLogger) Warn(module, message string, details map[string]interface{})  {}
func (noopLogger) Error(module, message string, details map[string]interface{}) {}
func (noopLogger) Sync() error                                                  { return nil }
