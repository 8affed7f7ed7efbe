package services

import (
	"github.com/duet-app/duet/internal/models"
	"github.com/google/uuid"
)

type LinkServiceRepository interface {
	FindByParticipant(accountID uint) (models.PeriodLink, bool, error)
	FindByID(linkID uint) (models.PeriodLink, bool, error)
	FindByInviteCode(inviteCode string) (models.PeriodLink, bool, error)
	Create(link *models.PeriodLink) (bool, error)
	UpdatePartner(linkID uint, partnerID *uint) error
}

type LinkAccountRepository interface {
	FindByID(accountID uint) (models.Account, error)
}

type LinkService struct {
	links    LinkServiceRepository
	accounts LinkAccountRepository
}

func NewLinkService(links LinkServiceRepository, accounts LinkAccountRepository) *LinkService {
	return &LinkService{
		links:    links,
		accounts: accounts,
	}
}

// CreateLink registers a tracked account, optionally with a partner already
// attached. Administrative action; the unique index on the tracked account
// makes a second registration a conflict. The invite code lets a partner
// claim the empty slot later.
func (service *LinkService) CreateLink(trackedAccountID uint, partnerID *uint) (models.PeriodLink, error) {
	if _, err := service.accounts.FindByID(trackedAccountID); err != nil {
		return models.PeriodLink{}, ErrAccountNotFound
	}
	if partnerID != nil {
		if _, err := service.accounts.FindByID(*partnerID); err != nil {
			return models.PeriodLink{}, ErrAccountNotFound
		}
	}

	link := models.PeriodLink{
		TrackedAccountID: trackedAccountID,
		PartnerID:        partnerID,
		InviteCode:       uuid.NewString(),
	}
	created, err := service.links.Create(&link)
	if err != nil {
		return models.PeriodLink{}, err
	}
	if !created {
		return models.PeriodLink{}, ErrLinkExists
	}
	return link, nil
}

// ReassignPartner swaps (or clears) the partner side of a link. The tracked
// side is immutable.
func (service *LinkService) ReassignPartner(linkID uint, partnerID *uint) (models.PeriodLink, error) {
	link, found, err := service.links.FindByID(linkID)
	if err != nil {
		return models.PeriodLink{}, err
	}
	if !found {
		return models.PeriodLink{}, ErrLinkNotFound
	}
	if partnerID != nil {
		if _, err := service.accounts.FindByID(*partnerID); err != nil {
			return models.PeriodLink{}, ErrAccountNotFound
		}
	}

	if err := service.links.UpdatePartner(link.ID, partnerID); err != nil {
		return models.PeriodLink{}, err
	}
	link.PartnerID = partnerID
	return link, nil
}

// ClaimLink lets an account take the empty partner slot of a link by
// presenting its invite code.
func (service *LinkService) ClaimLink(requesterID uint, inviteCode string) (models.PeriodLink, error) {
	link, found, err := service.links.FindByInviteCode(inviteCode)
	if err != nil {
		return models.PeriodLink{}, err
	}
	if !found {
		return models.PeriodLink{}, ErrLinkNotFound
	}
	if link.TrackedAccountID == requesterID {
		return models.PeriodLink{}, ErrPartnerSlotTaken
	}
	if link.HasPartner() {
		if *link.PartnerID == requesterID {
			return link, nil
		}
		return models.PeriodLink{}, ErrPartnerSlotTaken
	}

	if err := service.links.UpdatePartner(link.ID, &requesterID); err != nil {
		return models.PeriodLink{}, err
	}
	link.PartnerID = &requesterID
	return link, nil
}
