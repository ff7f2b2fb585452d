package services

import (
	"context"
	"time"

	"postpulse/internal/models/db_models"
	"postpulse/internal/models/request_models"
	"postpulse/internal/repositories"
	mem "postpulse/pkg/memcache"
	"postpulse/pkg/utils"
)

const (
	maxLoginAttempts = 5
	attemptWindow    = 15 * time.Minute
)

type AccountServiceInterface interface {
	Login(ctx context.Context, request request_models.LoginRequest) (string, error)
	CreateAccount(ctx context.Context, request request_models.SignUpRequest) error
	GetProfile(ctx context.Context, id string) (*db_models.Account, error)
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	attempts    mem.LoginAttemptStore
}

func NewAccountService(accountRepo repositories.AccountRepository, attempts mem.LoginAttemptStore) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		attempts:    attempts,
	}
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (string, error) {
	if a.attempts.TooMany(request.Email, maxLoginAttempts) {
		return "", utils.ErrTooManyAttempts
	}

	account, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if account == nil {
		a.attempts.RecordFailure(request.Email, attemptWindow)
		return "", utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		a.attempts.RecordFailure(request.Email, attemptWindow)
		return "", utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(account.ID)
	if err != nil {
		return "", utils.ErrInvalidCredentials
	}

	a.attempts.Reset(request.Email)
	return token, nil
}

func (a *AccountService) CreateAccount(ctx context.Context, request request_models.SignUpRequest) error {
	existingAccount, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existingAccount != nil {
		return utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return utils.ErrDatabaseError
	}

	newAccount := &db_models.Account{
		Name:         request.DisplayName,
		Email:        request.Email,
		PasswordHash: hashedPassword,
	}

	if err := a.accountRepo.Insert(ctx, newAccount); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}

func (a *AccountService) GetProfile(ctx context.Context, id string) (*db_models.Account, error) {
	account, err := a.accountRepo.FindById(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}
	return account, nil
}
