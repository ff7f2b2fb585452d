package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"postpulse/internal/api/controllers"
	"postpulse/internal/repositories"
	"postpulse/internal/services"
	mem "postpulse/pkg/memcache"
)

var Module = fx.Provide(
	provideAccountRepo, provideAttemptStore, provideAccountService, provideAccountController,
)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideAttemptStore() mem.LoginAttemptStore {
	return mem.NewLoginAttempts()
}

func provideAccountService(accountRepo repositories.AccountRepository, attempts mem.LoginAttemptStore) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, attempts)
}

func provideAccountController(accountService services.AccountServiceInterface) *controllers.AccountController {
	return controllers.NewAccountController(accountService)
}
