package services

import (
	"github.com/duet-app/duet/internal/models"
	"github.com/duet-app/duet/internal/security"
	"golang.org/x/crypto/bcrypt"
)

const bootstrapPasswordLength = 20

type SetupAccountRepository interface {
	CountAccounts() (int64, error)
	Create(account *models.Account) error
}

type SetupService struct {
	accounts SetupAccountRepository
}

func NewSetupService(accounts SetupAccountRepository) *SetupService {
	return &SetupService{accounts: accounts}
}

func (service *SetupService) RequiresInitialSetup() (bool, error) {
	accountCount, err := service.accounts.CountAccounts()
	if err != nil {
		return false, err
	}
	return accountCount == 0, nil
}

// EnsureAdminAccount creates the first admin on an empty database and
// returns the generated password so it can be logged exactly once. On a
// populated database it does nothing.
func (service *SetupService) EnsureAdminAccount(email string) (string, bool, error) {
	required, err := service.RequiresInitialSetup()
	if err != nil {
		return "", false, err
	}
	if !required {
		return "", false, nil
	}

	password, err := security.RandomString(bootstrapPasswordLength, security.PasswordAlphabet)
	if err != nil {
		return "", false, err
	}
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", false, err
	}

	admin := models.Account{
		Email:        NormalizeEmail(email),
		PasswordHash: string(passwordHash),
		IsAdmin:      true,
	}
	if err := service.accounts.Create(&admin); err != nil {
		return "", false, err
	}
	return password, true, nil
}
