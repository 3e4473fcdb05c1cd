package mapper

import (
	"medisos-be/internal/entity"
	"medisos-be/internal/model"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToEntity(u *model.User) *entity.User {
	if u == nil {
		return nil
	}

	return &entity.User{
		Id:           u.Id,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Email:        u.Email,
		AgeGroup:     u.AgeGroup,
		PasswordHash: u.PasswordHash,
		CounselorId:  u.CounselorId,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func (m *UserMapper) ToModel(u *entity.User) *model.User {
	if u == nil {
		return nil
	}

	return &model.User{
		Id:           u.Id,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Email:        u.Email,
		AgeGroup:     u.AgeGroup,
		PasswordHash: u.PasswordHash,
		CounselorId:  u.CounselorId,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

type CounselorMapper struct{}

func NewCounselorMapper() *CounselorMapper {
	return &CounselorMapper{}
}

func (m *CounselorMapper) ToEntity(c *model.Counselor) *entity.Counselor {
	if c == nil {
		return nil
	}

	return &entity.Counselor{
		Id:        c.Id,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Notes:     c.Notes,
		CreatedAt: c.CreatedAt,
	}
}

func (m *CounselorMapper) ToModel(c *entity.Counselor) *model.Counselor {
	if c == nil {
		return nil
	}

	return &model.Counselor{
		Id:        c.Id,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Notes:     c.Notes,
		CreatedAt: c.CreatedAt,
	}
}
