package entity

import (
	"time"

	"github.com/google/uuid"
)

// Counselor is a contact record with an independent lifecycle. Users and
// reports reference counselors but never own them.
type Counselor struct {
	Id        uuid.UUID
	Name      string
	Email     string
	Phone     *string
	Notes     *string
	CreatedAt time.Time
}
