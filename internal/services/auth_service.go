package services

import (
	"errors"
	"strings"

	"github.com/duet-app/duet/internal/models"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

const minPasswordLength = 8

type AuthAccountRepository interface {
	ExistsByNormalizedEmail(email string) (bool, error)
	FindByNormalizedEmail(email string) (models.Account, error)
	FindByID(accountID uint) (models.Account, error)
	Create(account *models.Account) error
	Save(account *models.Account) error
}

type AuthService struct {
	accounts AuthAccountRepository
}

func NewAuthService(accounts AuthAccountRepository) *AuthService {
	return &AuthService{accounts: accounts}
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (service *AuthService) RegistrationEmailExists(email string) (bool, error) {
	return service.accounts.ExistsByNormalizedEmail(NormalizeEmail(email))
}

func (service *AuthService) Register(email string, password string) (models.Account, error) {
	normalized := NormalizeEmail(email)
	if normalized == "" || !strings.Contains(normalized, "@") {
		return models.Account{}, ErrValidation
	}
	if len(password) < minPasswordLength {
		return models.Account{}, ErrValidation
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.Account{}, err
	}

	account := models.Account{
		Email:        normalized,
		PasswordHash: string(passwordHash),
	}
	if err := service.accounts.Create(&account); err != nil {
		return models.Account{}, err
	}
	return account, nil
}

func (service *AuthService) Authenticate(email string, password string) (models.Account, error) {
	account, err := service.accounts.FindByNormalizedEmail(NormalizeEmail(email))
	if err != nil {
		return models.Account{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return models.Account{}, ErrInvalidCredentials
	}
	return account, nil
}

func (service *AuthService) FindByID(accountID uint) (models.Account, error) {
	return service.accounts.FindByID(accountID)
}

// ChangePassword verifies the current password before replacing it.
func (service *AuthService) ChangePassword(accountID uint, currentPassword string, newPassword string) error {
	account, err := service.accounts.FindByID(accountID)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(currentPassword)) != nil {
		return ErrInvalidCredentials
	}
	if len(newPassword) < minPasswordLength {
		return ErrValidation
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	account.PasswordHash = string(passwordHash)
	return service.accounts.Save(&account)
}
