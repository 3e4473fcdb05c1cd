package service

import (
	"context"
	"errors"
	"time"

	"medisos-be/internal/dto"
	"medisos-be/internal/entity"
	"medisos-be/internal/repository/specification"
	"medisos-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("resource not found")

type ICounselorService interface {
	Create(ctx context.Context, req *dto.CreateCounselorRequest) (*dto.CounselorResponse, error)
	List(ctx context.Context) ([]*dto.CounselorResponse, error)
	Assign(ctx context.Context, counselorId, userId uuid.UUID) (*dto.AssignCounselorResponse, error)
}

type counselorService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewCounselorService(uowFactory unitofwork.RepositoryFactory) ICounselorService {
	return &counselorService{uowFactory: uowFactory}
}

func (s *counselorService) Create(ctx context.Context, req *dto.CreateCounselorRequest) (*dto.CounselorResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	counselor := &entity.Counselor{
		Id:        uuid.New(),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Notes:     req.Notes,
		CreatedAt: time.Now(),
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.CounselorRepository().Create(ctx, counselor); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return toCounselorResponse(counselor), nil
}

func (s *counselorService) List(ctx context.Context) ([]*dto.CounselorResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	counselors, err := uow.CounselorRepository().FindAll(ctx, specification.OrderBy{Field: "created_at"})
	if err != nil {
		return nil, err
	}

	res := make([]*dto.CounselorResponse, 0, len(counselors))
	for _, c := range counselors {
		res = append(res, toCounselorResponse(c))
	}
	return res, nil
}

// Assign links a user to a counselor. Both sides must exist; unknown ids
// surface as not-found rather than being tolerated.
func (s *counselorService) Assign(ctx context.Context, counselorId, userId uuid.UUID) (*dto.AssignCounselorResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	counselor, err := uow.CounselorRepository().FindOne(ctx, specification.ByID{ID: counselorId})
	if err != nil {
		return nil, err
	}
	if counselor == nil {
		return nil, ErrNotFound
	}

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	user.CounselorId = &counselor.Id
	user.UpdatedAt = time.Now()
	if err := uow.UserRepository().Update(ctx, user); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return &dto.AssignCounselorResponse{UserId: user.Id, CounselorId: counselor.Id}, nil
}

func toCounselorResponse(c *entity.Counselor) *dto.CounselorResponse {
	return &dto.CounselorResponse{
		Id:        c.Id,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Notes:     c.Notes,
		CreatedAt: c.CreatedAt,
	}
}
