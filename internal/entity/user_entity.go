package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id           uuid.UUID
	FirstName    string
	LastName     string
	Email        string
	AgeGroup     *string
	PasswordHash string
	// CounselorId, when set, must reference an existing counselor.
	CounselorId *uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
