package unitofwork

import (
	"context"

	"medisos-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	CounselorRepository() contract.CounselorRepository
	SessionRepository() contract.SessionRepository
	MessageRepository() contract.MessageRepository
	ReportRepository() contract.ReportRepository
	KnowledgePassageRepository() contract.KnowledgePassageRepository
}
