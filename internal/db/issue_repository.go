package db

import (
	"time"

	"github.com/duet-app/duet/internal/models"
	"gorm.io/gorm"
)

type IssueRepository struct {
	database *gorm.DB
}

func NewIssueRepository(database *gorm.DB) *IssueRepository {
	return &IssueRepository{database: database}
}

func (repo *IssueRepository) Create(issue *models.Issue) error {
	return repo.database.Create(issue).Error
}

func (repo *IssueRepository) ListByTrackedAndDayRange(trackedAccountID uint, dayStart time.Time, dayEnd time.Time) ([]models.Issue, error) {
	issues := make([]models.Issue, 0)
	if err := repo.database.
		Where("tracked_account_id = ? AND log_date >= ? AND log_date < ?", trackedAccountID, dayStart, dayEnd).
		Order("created_at ASC, id ASC").
		Find(&issues).Error; err != nil {
		return nil, err
	}
	return issues, nil
}

func (repo *IssueRepository) ListByCycle(cycleID uint) ([]models.Issue, error) {
	issues := make([]models.Issue, 0)
	if err := repo.database.
		Where("cycle_id = ?", cycleID).
		Order("log_date ASC, id ASC").
		Find(&issues).Error; err != nil {
		return nil, err
	}
	return issues, nil
}
