package db

import (
	"github.com/duet-app/duet/internal/models"
	"gorm.io/gorm"
)

type LinkRepository struct {
	database *gorm.DB
}

func NewLinkRepository(database *gorm.DB) *LinkRepository {
	return &LinkRepository{database: database}
}

// FindByParticipant resolves the link an account takes part in, on either
// side. A tracked account has at most one link, enforced by a unique index.
func (repo *LinkRepository) FindByParticipant(accountID uint) (models.PeriodLink, bool, error) {
	link := models.PeriodLink{}
	result := repo.database.
		Where("tracked_account_id = ? OR partner_id = ?", accountID, accountID).
		Limit(1).
		Find(&link)
	if result.Error != nil {
		return models.PeriodLink{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.PeriodLink{}, false, nil
	}
	return link, true, nil
}

func (repo *LinkRepository) FindByID(linkID uint) (models.PeriodLink, bool, error) {
	link := models.PeriodLink{}
	result := repo.database.Where("id = ?", linkID).Limit(1).Find(&link)
	if result.Error != nil {
		return models.PeriodLink{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.PeriodLink{}, false, nil
	}
	return link, true, nil
}

func (repo *LinkRepository) FindByInviteCode(inviteCode string) (models.PeriodLink, bool, error) {
	link := models.PeriodLink{}
	result := repo.database.Where("invite_code = ?", inviteCode).Limit(1).Find(&link)
	if result.Error != nil {
		return models.PeriodLink{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.PeriodLink{}, false, nil
	}
	return link, true, nil
}

// Create inserts a link and reports false when the tracked account already
// has one (the unique index loses the race for us).
func (repo *LinkRepository) Create(link *models.PeriodLink) (bool, error) {
	err := repo.database.Create(link).Error
	if err == nil {
		return true, nil
	}
	if isUniqueViolation(err) {
		return false, nil
	}
	return false, err
}

func (repo *LinkRepository) UpdatePartner(linkID uint, partnerID *uint) error {
	return repo.database.Model(&models.PeriodLink{}).Where("id = ?", linkID).Update("partner_id", partnerID).Error
}
