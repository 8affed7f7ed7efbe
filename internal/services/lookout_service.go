package services

import (
	"strings"
	"time"

	"github.com/duet-app/duet/internal/models"
)

type LookoutInput struct {
	Title         string
	Description   string
	ShowOnDate    time.Time
	ShowUntilDate *time.Time
	Priority      int
}

type LookoutServiceRepository interface {
	ListByTracked(trackedAccountID uint) ([]models.Lookout, error)
	FindByIDForTracked(lookoutID uint, trackedAccountID uint) (models.Lookout, bool, error)
	Create(lookout *models.Lookout) error
	MarkSeen(lookoutID uint) error
}

type LookoutService struct {
	roles    *RoleResolver
	lookouts LookoutServiceRepository
	clock    Clock
}

func NewLookoutService(roles *RoleResolver, lookouts LookoutServiceRepository, clock Clock) *LookoutService {
	return &LookoutService{
		roles:    roles,
		lookouts: lookouts,
		clock:    clock,
	}
}

// ActiveLookouts returns the in-window reminders for the requester's link.
func (service *LookoutService) ActiveLookouts(requesterID uint) ([]models.Lookout, error) {
	role, link, err := service.roles.Resolve(requesterID)
	if err != nil {
		return nil, err
	}
	if role == RoleNone {
		return nil, ErrNoLinkedRole
	}

	lookouts, err := service.lookouts.ListByTracked(link.TrackedAccountID)
	if err != nil {
		return nil, err
	}
	return SelectActiveLookouts(lookouts, service.clock.Today()), nil
}

// CreateLookout schedules a reminder for the linked pair. Only the partner
// authors lookouts through this path.
func (service *LookoutService) CreateLookout(requesterID uint, input LookoutInput) (models.Lookout, error) {
	role, link, err := service.roles.Resolve(requesterID)
	if err != nil {
		return models.Lookout{}, err
	}
	if role == RoleNone {
		return models.Lookout{}, ErrNoLinkedRole
	}
	if role != RolePartner {
		return models.Lookout{}, ErrPartnerRoleRequired
	}

	lookout, err := buildLookout(link.TrackedAccountID, input)
	if err != nil {
		return models.Lookout{}, err
	}
	lookout.PartnerID = &requesterID

	if err := service.lookouts.Create(&lookout); err != nil {
		return models.Lookout{}, err
	}
	return lookout, nil
}

// CreateAdminLookout schedules a reminder on behalf of the product for an
// explicit tracked account. Admin authorization happens at the API layer.
func (service *LookoutService) CreateAdminLookout(trackedAccountID uint, input LookoutInput) (models.Lookout, error) {
	lookout, err := buildLookout(trackedAccountID, input)
	if err != nil {
		return models.Lookout{}, err
	}
	lookout.IsAdminCreated = true

	if err := service.lookouts.Create(&lookout); err != nil {
		return models.Lookout{}, err
	}
	return lookout, nil
}

func buildLookout(trackedAccountID uint, input LookoutInput) (models.Lookout, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return models.Lookout{}, ErrTitleRequired
	}
	if input.ShowOnDate.IsZero() {
		return models.Lookout{}, ErrShowDateRequired
	}
	if input.ShowUntilDate != nil && input.ShowUntilDate.Before(input.ShowOnDate) {
		return models.Lookout{}, ErrWindowInverted
	}

	return models.Lookout{
		TrackedAccountID: trackedAccountID,
		Title:            title,
		Description:      strings.TrimSpace(input.Description),
		ShowOnDate:       input.ShowOnDate,
		ShowUntilDate:    input.ShowUntilDate,
		Priority:         input.Priority,
	}, nil
}

// MarkLookoutSeen acknowledges a reminder. Only the tracked person may do
// this, and doing it twice is a no-op, not an error.
func (service *LookoutService) MarkLookoutSeen(requesterID uint, lookoutID uint) (models.Lookout, error) {
	role, link, err := service.roles.Resolve(requesterID)
	if err != nil {
		return models.Lookout{}, err
	}
	if role == RoleNone {
		return models.Lookout{}, ErrNoLinkedRole
	}
	if role != RolePeriodUser {
		return models.Lookout{}, ErrTrackedRoleRequired
	}

	lookout, found, err := service.lookouts.FindByIDForTracked(lookoutID, link.TrackedAccountID)
	if err != nil {
		return models.Lookout{}, err
	}
	if !found {
		return models.Lookout{}, ErrLookoutNotFound
	}
	if lookout.IsSeen {
		return lookout, nil
	}

	if err := service.lookouts.MarkSeen(lookout.ID); err != nil {
		return models.Lookout{}, err
	}
	lookout.IsSeen = true
	return lookout, nil
}
