package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateCounselorRequest struct {
	Name  string  `json:"name" validate:"required"`
	Email string  `json:"email" validate:"required,email"`
	Phone *string `json:"phone,omitempty"`
	Notes *string `json:"notes,omitempty"`
}

type CounselorResponse struct {
	Id        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone,omitempty"`
	Notes     *string   `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type AssignCounselorResponse struct {
	UserId      uuid.UUID `json:"user_id"`
	CounselorId uuid.UUID `json:"counselor_id"`
}
