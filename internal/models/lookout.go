package models

import "time"

// Lookout is a reminder surfaced to the partner while today falls inside its
// display window. IsSeen is the only mutable field and only the tracked
// person may set it.
type Lookout struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	TrackedAccountID uint       `gorm:"not null;index" json:"tracked_account_id"`
	PartnerID        *uint      `json:"partner_id,omitempty"`
	Title            string     `gorm:"not null" json:"title"`
	Description      string     `json:"description,omitempty"`
	ShowOnDate       time.Time  `gorm:"type:date;not null" json:"show_on_date"`
	ShowUntilDate    *time.Time `gorm:"type:date" json:"show_until_date,omitempty"`
	IsAdminCreated   bool       `gorm:"not null;default:false" json:"is_admin_created"`
	IsSeen           bool       `gorm:"not null;default:false" json:"is_seen"`
	Priority         int        `gorm:"not null;default:0" json:"priority"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}
