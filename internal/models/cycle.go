package models

import "time"

const (
	DefaultCycleLength  = 28
	DefaultPeriodLength = 5
)

// Cycle is one tracked period. CycleLength and PeriodLength are snapshots of
// the averages in effect when the cycle was opened or closed; they are kept
// for historical reporting and never recomputed retroactively.
type Cycle struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	TrackedAccountID uint       `gorm:"not null;index" json:"tracked_account_id"`
	PartnerID        *uint      `json:"partner_id,omitempty"`
	StartDate        time.Time  `gorm:"type:date;not null" json:"start_date"`
	EndDate          *time.Time `gorm:"type:date" json:"end_date,omitempty"`
	CycleLength      int        `gorm:"not null" json:"cycle_length"`
	PeriodLength     int        `gorm:"not null" json:"period_length"`
	Notes            string     `json:"notes,omitempty"`
	IsActive         bool       `gorm:"not null;default:false" json:"is_active"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

func (cycle Cycle) Completed() bool {
	return !cycle.IsActive && cycle.EndDate != nil
}
