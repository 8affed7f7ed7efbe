package services

import (
	"time"

	"github.com/duet-app/duet/internal/models"
)

type CycleRepository interface {
	FindActive(trackedAccountID uint) (models.Cycle, bool, error)
	FindByIDForTracked(cycleID uint, trackedAccountID uint) (models.Cycle, bool, error)
	ListCompleted(trackedAccountID uint, limit int) ([]models.Cycle, error)
	CreateActive(cycle *models.Cycle) (bool, error)
	Complete(cycleID uint, endDate time.Time, periodLength int) error
}

type CycleService struct {
	roles  *RoleResolver
	cycles CycleRepository
	clock  Clock
}

func NewCycleService(roles *RoleResolver, cycles CycleRepository, clock Clock) *CycleService {
	return &CycleService{
		roles:  roles,
		cycles: cycles,
		clock:  clock,
	}
}

// StartCycle opens a cycle for the requester's linked tracked account,
// starting today. Only the partner may start one: the product rule is that
// the partner observes and logs. The cycle snapshots the averages in effect
// at open time; the check-and-insert is atomic, so a racing double start
// loses with a conflict.
func (service *CycleService) StartCycle(requesterID uint, notes string) (models.Cycle, error) {
	role, link, err := service.roles.Resolve(requesterID)
	if err != nil {
		return models.Cycle{}, err
	}
	switch role {
	case RolePartner:
	case RolePeriodUser:
		return models.Cycle{}, ErrPartnerRoleRequired
	default:
		return models.Cycle{}, ErrNoLinkedRole
	}

	completed, err := service.cycles.ListCompleted(link.TrackedAccountID, RecentCycleLimit)
	if err != nil {
		return models.Cycle{}, err
	}
	averages := ComputeAverages(completed)

	cycle := models.Cycle{
		TrackedAccountID: link.TrackedAccountID,
		PartnerID:        &requesterID,
		StartDate:        service.clock.Today(),
		CycleLength:      averages.CycleLength,
		PeriodLength:     averages.PeriodLength,
		Notes:            notes,
		IsActive:         true,
	}
	created, err := service.cycles.CreateActive(&cycle)
	if err != nil {
		return models.Cycle{}, err
	}
	if !created {
		return models.Cycle{}, ErrActiveCycleExists
	}
	return cycle, nil
}

// EndCycle closes the referenced cycle if it is the current active one. The
// stored period length becomes the cycle's actual inclusive duration.
func (service *CycleService) EndCycle(requesterID uint, cycleID uint) (models.Cycle, error) {
	role, link, err := service.roles.Resolve(requesterID)
	if err != nil {
		return models.Cycle{}, err
	}
	if role == RoleNone {
		return models.Cycle{}, ErrNoLinkedRole
	}

	cycle, found, err := service.cycles.FindByIDForTracked(cycleID, link.TrackedAccountID)
	if err != nil {
		return models.Cycle{}, err
	}
	if !found {
		return models.Cycle{}, ErrCycleNotFound
	}
	if !cycle.IsActive {
		return models.Cycle{}, ErrCycleNotActive
	}

	today := service.clock.Today()
	if today.Before(cycle.StartDate) {
		return models.Cycle{}, ErrEndBeforeStart
	}

	periodLength := DaysBetween(cycle.StartDate, today) + 1
	if err := service.cycles.Complete(cycle.ID, today, periodLength); err != nil {
		return models.Cycle{}, err
	}

	cycle.IsActive = false
	cycle.EndDate = &today
	cycle.PeriodLength = periodLength
	return cycle, nil
}

// RecentCycles lists completed history for either linked role.
func (service *CycleService) RecentCycles(requesterID uint, limit int) ([]models.Cycle, error) {
	role, link, err := service.roles.Resolve(requesterID)
	if err != nil {
		return nil, err
	}
	if role == RoleNone {
		return nil, ErrNoLinkedRole
	}
	if limit <= 0 || limit > RecentCycleLimit {
		limit = RecentCycleLimit
	}
	return service.cycles.ListCompleted(link.TrackedAccountID, limit)
}
