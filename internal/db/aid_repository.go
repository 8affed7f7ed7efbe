package db

import (
	"github.com/duet-app/duet/internal/models"
	"gorm.io/gorm"
)

type AidRepository struct {
	database *gorm.DB
}

func NewAidRepository(database *gorm.DB) *AidRepository {
	return &AidRepository{database: database}
}

// ListCuratedByProblem returns curated advice for a problem, both global
// rows and rows scoped to any account. Account scoping is applied by the
// matcher, which knows whose overview is being built.
func (repo *AidRepository) ListCuratedByProblem(problem string) ([]models.CuratedAid, error) {
	aids := make([]models.CuratedAid, 0)
	if err := repo.database.
		Where("problem = ?", problem).
		Order("id ASC").
		Find(&aids).Error; err != nil {
		return nil, err
	}
	return aids, nil
}

func (repo *AidRepository) ListCustomByAccountAndProblem(accountID uint, problem string) ([]models.CustomAid, error) {
	aids := make([]models.CustomAid, 0)
	if err := repo.database.
		Where("account_id = ? AND problem = ?", accountID, problem).
		Order("id ASC").
		Find(&aids).Error; err != nil {
		return nil, err
	}
	return aids, nil
}

func (repo *AidRepository) ListCustomByAccount(accountID uint) ([]models.CustomAid, error) {
	aids := make([]models.CustomAid, 0)
	if err := repo.database.
		Where("account_id = ?", accountID).
		Order("id ASC").
		Find(&aids).Error; err != nil {
		return nil, err
	}
	return aids, nil
}

func (repo *AidRepository) CreateCurated(aid *models.CuratedAid) error {
	return repo.database.Create(aid).Error
}

func (repo *AidRepository) CreateCustom(aid *models.CustomAid) error {
	return repo.database.Create(aid).Error
}

func (repo *AidRepository) FindCustomByIDForAccount(aidID uint, accountID uint) (models.CustomAid, bool, error) {
	aid := models.CustomAid{}
	result := repo.database.
		Where("id = ? AND account_id = ?", aidID, accountID).
		Limit(1).
		Find(&aid)
	if result.Error != nil {
		return models.CustomAid{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.CustomAid{}, false, nil
	}
	return aid, true, nil
}

func (repo *AidRepository) UpdateCustomActive(aidID uint, isActive bool) error {
	return repo.database.Model(&models.CustomAid{}).Where("id = ?", aidID).Update("is_active", isActive).Error
}
