package services

import (
	"time"

	"github.com/duet-app/duet/internal/models"
)

type StatusKind string

const (
	StatusOnPeriod StatusKind = "on_period"
	StatusWaiting  StatusKind = "waiting"
	StatusLate     StatusKind = "late"
	StatusNoData   StatusKind = "no_data"
)

// Estimated ovulation sits a fixed luteal-phase offset before the expected
// period start. Not a medical prediction.
const lutealPhaseDays = 14

type StatusSnapshot struct {
	Kind           StatusKind `json:"status"`
	DaysSinceStart int        `json:"days_since_start,omitempty"`
	ExpectedEndDay int        `json:"expected_end_day,omitempty"`
	DaysUntilNext  int        `json:"days_until_next,omitempty"`
	DaysLate       int        `json:"days_late,omitempty"`
	ExpectedDate   *time.Time `json:"expected_date,omitempty"`
	OvulationDate  *time.Time `json:"ovulation_date,omitempty"`
}

// DeriveStatus maps the current cycle records onto one of four statuses.
// Pure function of its inputs; re-evaluated on every call rather than
// persisted. The expected day itself counts as late with daysLate=0: once
// the predicted date arrives unlogged, waiting is over.
func DeriveStatus(activeCycle *models.Cycle, lastCompleted *models.Cycle, averages CycleAverages, today time.Time) StatusSnapshot {
	if activeCycle != nil {
		daysSinceStart := DaysBetween(activeCycle.StartDate, today)
		if daysSinceStart < 0 {
			daysSinceStart = 0
		}
		return StatusSnapshot{
			Kind:           StatusOnPeriod,
			DaysSinceStart: daysSinceStart,
			ExpectedEndDay: averages.PeriodLength,
		}
	}

	if lastCompleted == nil {
		return StatusSnapshot{Kind: StatusNoData}
	}

	expected := lastCompleted.StartDate.AddDate(0, 0, averages.CycleLength)
	daysUntilNext := DaysBetween(today, expected)
	if daysUntilNext <= 0 {
		return StatusSnapshot{
			Kind:     StatusLate,
			DaysLate: -daysUntilNext,
		}
	}

	ovulation := expected.AddDate(0, 0, -lutealPhaseDays)
	return StatusSnapshot{
		Kind:          StatusWaiting,
		DaysUntilNext: daysUntilNext,
		ExpectedDate:  &expected,
		OvulationDate: &ovulation,
	}
}
