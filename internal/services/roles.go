package services

import "github.com/duet-app/duet/internal/models"

type Role string

const (
	RolePeriodUser Role = "period_user"
	RolePartner    Role = "partner"
	RoleNone       Role = "none"
)

// RoleForLink classifies an account against a link. Exactly one role comes
// back; an account can never be tracked in one link and partner in another
// because link creation enforces a single active link per tracked account.
func RoleForLink(link models.PeriodLink, accountID uint) Role {
	if link.TrackedAccountID == accountID {
		return RolePeriodUser
	}
	if link.PartnerID != nil && *link.PartnerID == accountID {
		return RolePartner
	}
	return RoleNone
}

type RoleLinkRepository interface {
	FindByParticipant(accountID uint) (models.PeriodLink, bool, error)
}

type RoleResolver struct {
	links RoleLinkRepository
}

func NewRoleResolver(links RoleLinkRepository) *RoleResolver {
	return &RoleResolver{links: links}
}

// Resolve is a pure read: no link means RoleNone, never an error.
func (resolver *RoleResolver) Resolve(accountID uint) (Role, models.PeriodLink, error) {
	link, found, err := resolver.links.FindByParticipant(accountID)
	if err != nil {
		return RoleNone, models.PeriodLink{}, err
	}
	if !found {
		return RoleNone, models.PeriodLink{}, nil
	}
	return RoleForLink(link, accountID), link, nil
}
