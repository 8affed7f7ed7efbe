package services

import (
	"time"

	"github.com/duet-app/duet/internal/models"
)

// RecentCycleLimit bounds how much history the overview carries; averages
// are computed over the same window.
const RecentCycleLimit = 12

type Overview struct {
	Role         Role                  `json:"role"`
	Today        time.Time             `json:"today"`
	Status       StatusSnapshot        `json:"status"`
	Averages     CycleAverages         `json:"averages"`
	ActiveCycle  *models.Cycle         `json:"active_cycle,omitempty"`
	RecentCycles []models.Cycle        `json:"recent_cycles"`
	TodaysIssues []models.Issue        `json:"todays_issues"`
	AidsForToday map[string][]AidEntry `json:"aids_for_today"`
	Lookouts     []models.Lookout      `json:"lookouts"`
}

type OverviewCycleRepository interface {
	FindActive(trackedAccountID uint) (models.Cycle, bool, error)
	ListCompleted(trackedAccountID uint, limit int) ([]models.Cycle, error)
}

type OverviewIssueRepository interface {
	ListByTrackedAndDayRange(trackedAccountID uint, dayStart time.Time, dayEnd time.Time) ([]models.Issue, error)
}

type OverviewLookoutRepository interface {
	ListByTracked(trackedAccountID uint) ([]models.Lookout, error)
}

type OverviewService struct {
	roles    *RoleResolver
	cycles   OverviewCycleRepository
	issues   OverviewIssueRepository
	lookouts OverviewLookoutRepository
	matcher  *AidMatcher
	clock    Clock
}

func NewOverviewService(
	roles *RoleResolver,
	cycles OverviewCycleRepository,
	issues OverviewIssueRepository,
	lookouts OverviewLookoutRepository,
	matcher *AidMatcher,
	clock Clock,
) *OverviewService {
	return &OverviewService{
		roles:    roles,
		cycles:   cycles,
		issues:   issues,
		lookouts: lookouts,
		matcher:  matcher,
		clock:    clock,
	}
}

// GetOverview assembles the single read model the client consumes. Every
// sub-computation uses the same today, so the snapshot is internally
// consistent. An account without a link gets role none and empty
// collections, never an error.
func (service *OverviewService) GetOverview(accountID uint) (Overview, error) {
	today := service.clock.Today()
	overview := Overview{
		Role:         RoleNone,
		Today:        today,
		Status:       StatusSnapshot{Kind: StatusNoData},
		Averages:     CycleAverages{CycleLength: models.DefaultCycleLength, PeriodLength: models.DefaultPeriodLength},
		RecentCycles: []models.Cycle{},
		TodaysIssues: []models.Issue{},
		AidsForToday: map[string][]AidEntry{},
		Lookouts:     []models.Lookout{},
	}

	role, link, err := service.roles.Resolve(accountID)
	if err != nil {
		return Overview{}, err
	}
	if role == RoleNone {
		return overview, nil
	}
	overview.Role = role
	trackedID := link.TrackedAccountID

	activeCycle, hasActive, err := service.cycles.FindActive(trackedID)
	if err != nil {
		return Overview{}, err
	}
	completed, err := service.cycles.ListCompleted(trackedID, RecentCycleLimit)
	if err != nil {
		return Overview{}, err
	}

	overview.RecentCycles = completed
	overview.Averages = ComputeAverages(completed)

	var activeRef *models.Cycle
	if hasActive {
		activeRef = &activeCycle
		overview.ActiveCycle = &activeCycle
	}
	var lastCompleted *models.Cycle
	if len(completed) > 0 {
		lastCompleted = &completed[len(completed)-1]
	}
	overview.Status = DeriveStatus(activeRef, lastCompleted, overview.Averages, today)

	dayStart, dayEnd := DayRange(today, today.Location())
	issues, err := service.issues.ListByTrackedAndDayRange(trackedID, dayStart, dayEnd)
	if err != nil {
		return Overview{}, err
	}
	overview.TodaysIssues = issues

	aids, err := service.matcher.MatchForIssues(trackedID, issues)
	if err != nil {
		return Overview{}, err
	}
	overview.AidsForToday = aids

	lookouts, err := service.lookouts.ListByTracked(trackedID)
	if err != nil {
		return Overview{}, err
	}
	overview.Lookouts = SelectActiveLookouts(lookouts, today)

	return overview, nil
}
