package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"postpulse/internal/models/db_models"
	"postpulse/internal/models/request_models"
	mem "postpulse/pkg/memcache"
	"postpulse/pkg/utils"
)

func accountWithPassword(email, password string) *db_models.Account {
	hash, _ := utils.HashPassword(password)
	account := testAccount(email)
	account.PasswordHash = hash
	return account
}

func TestLogin(t *testing.T) {
	assert := assert.New(t)
	account := accountWithPassword("a@example.com", "secret123")
	repo := &mockAccountRepo{
		findByEmailFn: func(email string) (*db_models.Account, error) {
			if email == account.Email {
				return account, nil
			}
			return nil, nil
		},
	}
	service := NewAccountService(repo, mem.NewLoginAttempts())

	token, err := service.Login(context.Background(), request_models.LoginRequest{
		Email:    "a@example.com",
		Password: "secret123",
	})
	assert.NoError(err)
	assert.NotEmpty(token)
}

func TestLoginWrongPassword(t *testing.T) {
	assert := assert.New(t)
	account := accountWithPassword("a@example.com", "secret123")
	repo := &mockAccountRepo{
		findByEmailFn: func(email string) (*db_models.Account, error) { return account, nil },
	}
	service := NewAccountService(repo, mem.NewLoginAttempts())

	_, err := service.Login(context.Background(), request_models.LoginRequest{
		Email:    "a@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(err, utils.ErrInvalidCredentials)
}

func TestLoginThrottledAfterRepeatedFailures(t *testing.T) {
	assert := assert.New(t)
	repo := &mockAccountRepo{
		findByEmailFn: func(email string) (*db_models.Account, error) { return nil, nil },
	}
	service := NewAccountService(repo, mem.NewLoginAttempts())
	req := request_models.LoginRequest{Email: "a@example.com", Password: "whatever"}

	for i := 0; i < maxLoginAttempts; i++ {
		_, err := service.Login(context.Background(), req)
		assert.ErrorIs(err, utils.ErrInvalidCredentials)
	}

	_, err := service.Login(context.Background(), req)
	assert.ErrorIs(err, utils.ErrTooManyAttempts)
}

func TestCreateAccountDuplicateEmail(t *testing.T) {
	assert := assert.New(t)
	existing := testAccount("a@example.com")
	repo := &mockAccountRepo{
		findByEmailFn: func(email string) (*db_models.Account, error) { return existing, nil },
	}
	service := NewAccountService(repo, mem.NewLoginAttempts())

	err := service.CreateAccount(context.Background(), request_models.SignUpRequest{
		DisplayName: "Ana",
		Email:       "a@example.com",
		Password:    "secret123",
	})
	assert.ErrorIs(err, utils.ErrEmailAlreadyExists)
}

func TestCreateAccountHashesPassword(t *testing.T) {
	assert := assert.New(t)
	var inserted *db_models.Account
	repo := &mockAccountRepo{
		findByEmailFn: func(email string) (*db_models.Account, error) { return nil, nil },
		insertFn: func(account *db_models.Account) error {
			inserted = account
			return nil
		},
	}
	service := NewAccountService(repo, mem.NewLoginAttempts())

	err := service.CreateAccount(context.Background(), request_models.SignUpRequest{
		DisplayName: "Ana",
		Email:       "a@example.com",
		Password:    "secret123",
	})
	assert.NoError(err)
	assert.NotNil(inserted)
	assert.NotEqual("secret123", inserted.PasswordHash)
	assert.NoError(utils.ComparePasswords(inserted.PasswordHash, "secret123"))
}

func TestGetProfileMissingAccount(t *testing.T) {
	assert := assert.New(t)
	repo := &mockAccountRepo{
		findByIdFn: func(id string) (*db_models.Account, error) { return nil, nil },
	}
	service := NewAccountService(repo, mem.NewLoginAttempts())

	_, err := service.GetProfile(context.Background(), "missing")
	assert.ErrorIs(err, utils.ErrAccountNotFound)
}
