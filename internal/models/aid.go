package models

import "time"

const (
	AidCategoryComfort    = "comfort"
	AidCategoryNutrition  = "nutrition"
	AidCategoryActivity   = "activity"
	AidCategoryRest       = "rest"
	AidCategoryWarmth     = "warmth"
	AidCategoryHydration  = "hydration"
	AidCategoryMedication = "medication"
	AidCategoryAffection  = "affection"
)

// CuratedAid is advice authored by the product (or an admin for a single
// account when ForAccountID is set). Read-only at match time.
type CuratedAid struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Problem        string    `gorm:"not null;index" json:"problem"`
	Category       string    `gorm:"not null" json:"category"`
	Title          string    `gorm:"not null" json:"title"`
	Description    string    `json:"description,omitempty"`
	Priority       int       `gorm:"not null;default:0" json:"priority"`
	CreatedByAdmin bool      `gorm:"not null;default:false" json:"created_by_admin"`
	ForAccountID   *uint     `gorm:"index" json:"for_account_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// CustomAid is advice the tracked person wrote for themself. Deactivation is
// the only lifecycle transition; custom aids are never deleted.
type CustomAid struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	AccountID   uint      `gorm:"not null;index" json:"account_id"`
	Problem     string    `gorm:"not null;index" json:"problem"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `json:"description,omitempty"`
	IsActive    bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func KnownAidCategories() []string {
	return []string{
		AidCategoryComfort,
		AidCategoryNutrition,
		AidCategoryActivity,
		AidCategoryRest,
		AidCategoryWarmth,
		AidCategoryHydration,
		AidCategoryMedication,
		AidCategoryAffection,
	}
}

func IsKnownAidCategory(category string) bool {
	for _, known := range KnownAidCategories() {
		if known == category {
			return true
		}
	}
	return false
}
