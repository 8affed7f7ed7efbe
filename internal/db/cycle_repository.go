package db

import (
	"errors"
	"strings"
	"time"

	"github.com/duet-app/duet/internal/models"
	"gorm.io/gorm"
)

type CycleRepository struct {
	database *gorm.DB
}

func NewCycleRepository(database *gorm.DB) *CycleRepository {
	return &CycleRepository{database: database}
}

func (repo *CycleRepository) FindActive(trackedAccountID uint) (models.Cycle, bool, error) {
	cycle := models.Cycle{}
	result := repo.database.
		Where("tracked_account_id = ? AND is_active = ?", trackedAccountID, true).
		Limit(1).
		Find(&cycle)
	if result.Error != nil {
		return models.Cycle{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Cycle{}, false, nil
	}
	return cycle, true, nil
}

func (repo *CycleRepository) FindByIDForTracked(cycleID uint, trackedAccountID uint) (models.Cycle, bool, error) {
	cycle := models.Cycle{}
	result := repo.database.
		Where("id = ? AND tracked_account_id = ?", cycleID, trackedAccountID).
		Limit(1).
		Find(&cycle)
	if result.Error != nil {
		return models.Cycle{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Cycle{}, false, nil
	}
	return cycle, true, nil
}

// ListCompleted returns finished cycles ordered by start date ascending,
// most recent last. A positive limit keeps only the most recent cycles.
func (repo *CycleRepository) ListCompleted(trackedAccountID uint, limit int) ([]models.Cycle, error) {
	query := repo.database.
		Where("tracked_account_id = ? AND is_active = ? AND end_date IS NOT NULL", trackedAccountID, false).
		Order("start_date DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	cycles := make([]models.Cycle, 0)
	if err := query.Find(&cycles).Error; err != nil {
		return nil, err
	}

	for left, right := 0, len(cycles)-1; left < right; left, right = left+1, right-1 {
		cycles[left], cycles[right] = cycles[right], cycles[left]
	}
	return cycles, nil
}

// CreateActive opens a cycle and reports false when an active cycle already
// exists for the tracked account. The check runs inside a transaction and the
// partial unique index on (tracked_account_id) WHERE is_active backs it up,
// so exactly one of two racing starts can succeed.
func (repo *CycleRepository) CreateActive(cycle *models.Cycle) (bool, error) {
	created := false
	err := repo.database.Transaction(func(tx *gorm.DB) error {
		var active int64
		if err := tx.Model(&models.Cycle{}).
			Where("tracked_account_id = ? AND is_active = ?", cycle.TrackedAccountID, true).
			Count(&active).Error; err != nil {
			return err
		}
		if active > 0 {
			return nil
		}

		if err := tx.Create(cycle).Error; err != nil {
			if isUniqueViolation(err) {
				return nil
			}
			return err
		}
		created = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return created, nil
}

func (repo *CycleRepository) Complete(cycleID uint, endDate time.Time, periodLength int) error {
	return repo.database.Model(&models.Cycle{}).Where("id = ?", cycleID).Updates(map[string]any{
		"is_active":     false,
		"end_date":      endDate,
		"period_length": periodLength,
	}).Error
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
