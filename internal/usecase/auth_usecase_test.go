package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mikiasgoitom/Notebook/internal/domain/entity"
	passwordservice "github.com/mikiasgoitom/Notebook/internal/infrastructure/password_service"
	"github.com/mikiasgoitom/Notebook/internal/usecase"
	"github.com/stretchr/testify/assert"
)

func seedAuthUser(t *testing.T, repo *fakeUserRepo, hasher *passwordservice.Hasher, mutate func(*entity.User)) {
	t.Helper()
	hash, err := hasher.HashPassword("password1")
	assert.NoError(t, err)
	u := &entity.User{
		ID:                    "u1",
		Username:              "user1",
		Email:                 "user1@example.com",
		PasswordHash:          hash,
		Role:                  entity.UserRoleUser,
		Enabled:               true,
		AccountNonLocked:      true,
		AccountNonExpired:     true,
		AccountExpiryDate:     time.Now().AddDate(1, 0, 0),
		CredentialsNonExpired: true,
		CredentialsExpiryDate: time.Now().AddDate(1, 0, 0),
	}
	if mutate != nil {
		mutate(u)
	}
	assert.NoError(t, repo.CreateUser(context.Background(), u))
}

func TestAuthenticate_Success(t *testing.T) {
	repo := newFakeUserRepo()
	hasher := passwordservice.NewHasher(4)
	seedAuthUser(t, repo, hasher, nil)
	uc := usecase.NewAuthUsecase(repo, hasher, noopLogger{})

	principal, err := uc.Authenticate(context.Background(), "user1", "password1")
	assert.NoError(t, err)
	assert.Equal(t, "user1", principal.Username)
	assert.Equal(t, entity.UserRoleUser, principal.Role)
}

func TestAuthenticate_UnknownUser(t *testing.T) {
	repo := newFakeUserRepo()
	hasher := passwordservice.NewHasher(4)
	uc := usecase.NewAuthUsecase(repo, hasher, noopLogger{})

	_, err := uc.Authenticate(context.Background(), "nobody", "password1")
	assert.ErrorIs(t, err, usecase.ErrInvalidCredentials)
}

func TestAuthenticate_WrongPassword(t *testing.T) {
	repo := newFakeUserRepo()
	hasher := passwordservice.NewHasher(4)
	seedAuthUser(t, repo, hasher, nil)
	uc := usecase.NewAuthUsecase(repo, hasher, noopLogger{})

	_, err := uc.Authenticate(context.Background(), "user1", "wrong")
	assert.ErrorIs(t, err, usecase.ErrInvalidCredentials)
}

// An unknown username and a wrong password produce the same error, so
// failed logins cannot enumerate accounts.
func TestAuthenticate_UnknownUserAndWrongPasswordIndistinguishable(t *testing.T) {
	repo := newFakeUserRepo()
	hasher := passwordservice.NewHasher(4)
	seedAuthUser(t, repo, hasher, nil)
	uc := usecase.NewAuthUsecase(repo, hasher, noopLogger{})

	_, errUnknown := uc.Authenticate(context.Background(), "nobody", "password1")
	_, errWrong := uc.Authenticate(context.Background(), "user1", "wrong")
	assert.Equal(t, errUnknown, errWrong)
}

func TestAuthenticate_DisabledAccount(t *testing.T) {
	repo := newFakeUserRepo()
	hasher := passwordservice.NewHasher(4)
	seedAuthUser(t, repo, hasher, func(u *entity.User) { u.Enabled = false })
	uc := usecase.NewAuthUsecase(repo, hasher, noopLogger{})

	// Correct password, still denied.
	_, err := uc.Authenticate(context.Background(), "user1", "password1")
	var stateErr *usecase.AccountStateError
	assert.ErrorAs(t, err, &stateErr)
	assert.Equal(t, entity.AccountStateDisabled, stateErr.State)
}

func TestAuthenticate_LockedAccount(t *testing.T) {
	repo := newFakeUserRepo()
	hasher := passwordservice.NewHasher(4)
	seedAuthUser(t, repo, hasher, func(u *entity.User) { u.AccountNonLocked = false })
	uc := usecase.NewAuthUsecase(repo, hasher, noopLogger{})

	_, err := uc.Authenticate(context.Background(), "user1", "password1")
	var stateErr *usecase.AccountStateError
	assert.ErrorAs(t, err, &stateErr)
	assert.Equal(t, entity.AccountStateLocked, stateErr.State)
}

func TestAuthenticate_ExpiredAccountByDate(t *testing.T) {
	repo := newFakeUserRepo()
	hasher := passwordservice.NewHasher(4)
	seedAuthUser(t, repo, hasher, func(u *entity.User) {
		u.AccountExpiryDate = time.Now().AddDate(0, 0, -1)
	})
	uc := usecase.NewAuthUsecase(repo, hasher, noopLogger{})

	_, err := uc.Authenticate(context.Background(), "user1", "password1")
	var stateErr *usecase.AccountStateError
	assert.ErrorAs(t, err, &stateErr)
	assert.Equal(t, entity.AccountStateExpired, stateErr.State)
}

func TestAuthenticate_ExpiredCredentials(t *testing.T) {
	repo := newFakeUserRepo()
	hasher := passwordservice.NewHasher(4)
	seedAuthUser(t, repo, hasher, func(u *entity.User) {
		u.CredentialsExpiryDate = time.Now().AddDate(0, 0, -1)
	})
	uc := usecase.NewAuthUsecase(repo, hasher, noopLogger{})

	_, err := uc.Authenticate(context.Background(), "user1", "password1")
	var stateErr *usecase.AccountStateError
	assert.ErrorAs(t, err, &stateErr)
	assert.Equal(t, entity.AccountStateExpiredCredentials, stateErr.State)
	assert.False(t, errors.Is(err, usecase.ErrInvalidCredentials))
}
