package services

import (
	"strings"
	"time"

	"github.com/duet-app/duet/internal/models"
)

type IssueInput struct {
	Problem  string
	Severity int
	Notes    string
}

type IssueRepository interface {
	Create(issue *models.Issue) error
	ListByTrackedAndDayRange(trackedAccountID uint, dayStart time.Time, dayEnd time.Time) ([]models.Issue, error)
	ListByCycle(cycleID uint) ([]models.Issue, error)
}

type IssueCycleRepository interface {
	FindActive(trackedAccountID uint) (models.Cycle, bool, error)
	FindByIDForTracked(cycleID uint, trackedAccountID uint) (models.Cycle, bool, error)
}

type IssueService struct {
	roles  *RoleResolver
	issues IssueRepository
	cycles IssueCycleRepository
	clock  Clock
}

func NewIssueService(roles *RoleResolver, issues IssueRepository, cycles IssueCycleRepository, clock Clock) *IssueService {
	return &IssueService{
		roles:  roles,
		issues: issues,
		cycles: cycles,
		clock:  clock,
	}
}

// LogIssue records a problem for today against the active cycle. Either
// linked role may log; the partner's authorship is stamped on the record.
// Issues are immutable once created.
func (service *IssueService) LogIssue(requesterID uint, input IssueInput) (models.Issue, error) {
	role, link, err := service.roles.Resolve(requesterID)
	if err != nil {
		return models.Issue{}, err
	}
	if role == RoleNone {
		return models.Issue{}, ErrNoLinkedRole
	}

	if !models.IsKnownProblem(strings.TrimSpace(input.Problem)) {
		return models.Issue{}, ErrUnknownProblem
	}
	if !models.IsValidIssueSeverity(input.Severity) {
		return models.Issue{}, ErrSeverityOutOfRange
	}

	activeCycle, hasActive, err := service.cycles.FindActive(link.TrackedAccountID)
	if err != nil {
		return models.Issue{}, err
	}
	if !hasActive {
		return models.Issue{}, ErrNoActiveCycle
	}

	issue := models.Issue{
		CycleID:          activeCycle.ID,
		TrackedAccountID: link.TrackedAccountID,
		Problem:          strings.TrimSpace(input.Problem),
		Severity:         input.Severity,
		Notes:            strings.TrimSpace(input.Notes),
		LogDate:          service.clock.Today(),
	}
	if role == RolePartner {
		issue.LoggedByPartnerID = &requesterID
	}

	if err := service.issues.Create(&issue); err != nil {
		return models.Issue{}, err
	}
	return issue, nil
}

// IssuesForDay lists issues logged on the given day for the requester's
// linked tracked account.
func (service *IssueService) IssuesForDay(requesterID uint, day time.Time) ([]models.Issue, error) {
	role, link, err := service.roles.Resolve(requesterID)
	if err != nil {
		return nil, err
	}
	if role == RoleNone {
		return nil, ErrNoLinkedRole
	}

	dayStart, dayEnd := DayRange(day, day.Location())
	return service.issues.ListByTrackedAndDayRange(link.TrackedAccountID, dayStart, dayEnd)
}

// IssuesForCycle lists the full issue history of one cycle, active or
// completed.
func (service *IssueService) IssuesForCycle(requesterID uint, cycleID uint) ([]models.Issue, error) {
	role, link, err := service.roles.Resolve(requesterID)
	if err != nil {
		return nil, err
	}
	if role == RoleNone {
		return nil, ErrNoLinkedRole
	}

	cycle, found, err := service.cycles.FindByIDForTracked(cycleID, link.TrackedAccountID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrCycleNotFound
	}
	return service.issues.ListByCycle(cycle.ID)
}
