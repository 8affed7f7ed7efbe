package models

import "time"

// PeriodLink binds one tracked account to at most one partner account.
// Links are created by an administrator; only the partner side may change.
type PeriodLink struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	TrackedAccountID uint      `gorm:"uniqueIndex;not null" json:"tracked_account_id"`
	PartnerID        *uint     `gorm:"index" json:"partner_id,omitempty"`
	InviteCode       string    `gorm:"uniqueIndex;not null" json:"-"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (link PeriodLink) HasPartner() bool {
	return link.PartnerID != nil && *link.PartnerID != 0
}
