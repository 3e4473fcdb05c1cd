package service

import (
	"context"
	"testing"

	"medisos-be/internal/config"
	"medisos-be/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthFixture(store *fakeStore) IAuthService {
	return NewAuthService(&fakeFactory{store: store}, config.AuthConfig{
		JwtSecret:          "test-secret",
		TokenExpiryMinutes: 60,
	})
}

func TestRegisterAndLogin(t *testing.T) {
	store := &fakeStore{}
	svc := newAuthFixture(store)

	age := "18-25"
	res, err := svc.Register(context.Background(), &dto.RegisterRequest{
		FirstName: "Ami",
		LastName:  "Tan",
		Email:     "ami@example.com",
		Password:  "hunter22",
		AgeGroup:  &age,
	})
	require.NoError(t, err)
	require.Len(t, store.users, 1)
	assert.NotEqual(t, "hunter22", store.users[0].PasswordHash, "password must be stored hashed")

	// registration signs the user in immediately
	assert.NotEmpty(t, res.AccessToken)
	assert.Equal(t, "bearer", res.TokenType)

	login, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "ami@example.com", Password: "hunter22"})
	require.NoError(t, err)
	assert.NotEmpty(t, login.AccessToken)
	assert.Equal(t, "bearer", login.TokenType)

	who, err := svc.Whoami(context.Background(), res.Id)
	require.NoError(t, err)
	assert.Equal(t, "ami@example.com", who.Email)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	store := &fakeStore{}
	svc := newAuthFixture(store)

	req := &dto.RegisterRequest{FirstName: "Ami", LastName: "Tan", Email: "ami@example.com", Password: "hunter22"}
	_, err := svc.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), req)
	require.Error(t, err)
	assert.Len(t, store.users, 1)
}

func TestLoginWrongPassword(t *testing.T) {
	store := &fakeStore{}
	svc := newAuthFixture(store)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		FirstName: "Ami", LastName: "Tan", Email: "ami@example.com", Password: "hunter22",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), &dto.LoginRequest{Email: "ami@example.com", Password: "wrong"})
	assert.EqualError(t, err, "invalid credentials")

	_, err = svc.Login(context.Background(), &dto.LoginRequest{Email: "nobody@example.com", Password: "hunter22"})
	assert.EqualError(t, err, "invalid credentials")
}
