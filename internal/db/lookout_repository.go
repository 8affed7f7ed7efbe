package db

import (
	"github.com/duet-app/duet/internal/models"
	"gorm.io/gorm"
)

type LookoutRepository struct {
	database *gorm.DB
}

func NewLookoutRepository(database *gorm.DB) *LookoutRepository {
	return &LookoutRepository{database: database}
}

func (repo *LookoutRepository) ListByTracked(trackedAccountID uint) ([]models.Lookout, error) {
	lookouts := make([]models.Lookout, 0)
	if err := repo.database.
		Where("tracked_account_id = ?", trackedAccountID).
		Order("show_on_date ASC, id ASC").
		Find(&lookouts).Error; err != nil {
		return nil, err
	}
	return lookouts, nil
}

func (repo *LookoutRepository) FindByIDForTracked(lookoutID uint, trackedAccountID uint) (models.Lookout, bool, error) {
	lookout := models.Lookout{}
	result := repo.database.
		Where("id = ? AND tracked_account_id = ?", lookoutID, trackedAccountID).
		Limit(1).
		Find(&lookout)
	if result.Error != nil {
		return models.Lookout{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Lookout{}, false, nil
	}
	return lookout, true, nil
}

func (repo *LookoutRepository) Create(lookout *models.Lookout) error {
	return repo.database.Create(lookout).Error
}

func (repo *LookoutRepository) MarkSeen(lookoutID uint) error {
	return repo.database.Model(&models.Lookout{}).Where("id = ?", lookoutID).Update("is_seen", true).Error
}
