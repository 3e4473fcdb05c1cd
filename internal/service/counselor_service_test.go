package service

import (
	"context"
	"testing"

	"medisos-be/internal/dto"
	"medisos-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounselorCreateAndList(t *testing.T) {
	store := &fakeStore{}
	svc := NewCounselorService(&fakeFactory{store: store})

	created, err := svc.Create(context.Background(), &dto.CreateCounselorRequest{Name: "Dr. Sol", Email: "sol@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "Dr. Sol", created.Name)

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, created.Id, list[0].Id)
}

func TestCounselorAssign(t *testing.T) {
	store := &fakeStore{}
	counselor := &entity.Counselor{Id: uuid.New(), Name: "Dr. Sol", Email: "sol@example.com"}
	store.counselors = append(store.counselors, counselor)
	user := &entity.User{Id: uuid.New(), FirstName: "Ami", LastName: "Tan", Email: "ami@example.com"}
	store.users = append(store.users, user)

	svc := NewCounselorService(&fakeFactory{store: store})

	res, err := svc.Assign(context.Background(), counselor.Id, user.Id)
	require.NoError(t, err)
	assert.Equal(t, counselor.Id, res.CounselorId)
	require.NotNil(t, store.users[0].CounselorId)
	assert.Equal(t, counselor.Id, *store.users[0].CounselorId)
}

func TestCounselorAssignUnknownIds(t *testing.T) {
	store := &fakeStore{}
	counselor := &entity.Counselor{Id: uuid.New(), Name: "Dr. Sol", Email: "sol@example.com"}
	store.counselors = append(store.counselors, counselor)

	svc := NewCounselorService(&fakeFactory{store: store})

	_, err := svc.Assign(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Assign(context.Background(), counselor.Id, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}
