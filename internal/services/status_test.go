package services

import (
	"testing"

	"github.com/duet-app/duet/internal/models"
)

func TestDeriveStatusOnPeriod(t *testing.T) {
	t.Parallel()

	active := models.Cycle{StartDate: mustParseDay("2025-03-01"), IsActive: true}
	averages := CycleAverages{CycleLength: 28, PeriodLength: 5}

	status := DeriveStatus(&active, nil, averages, mustParseDay("2025-03-03"))
	if status.Kind != StatusOnPeriod {
		t.Fatalf("expected on_period, got %s", status.Kind)
	}
	if status.DaysSinceStart != 2 {
		t.Fatalf("expected 2 days since start, got %d", status.DaysSinceStart)
	}
	if status.ExpectedEndDay != 5 {
		t.Fatalf("expected end day 5, got %d", status.ExpectedEndDay)
	}
}

func TestDeriveStatusNoData(t *testing.T) {
	t.Parallel()

	status := DeriveStatus(nil, nil, CycleAverages{CycleLength: 28, PeriodLength: 5}, mustParseDay("2025-03-03"))
	if status.Kind != StatusNoData {
		t.Fatalf("expected no_data, got %s", status.Kind)
	}
}

func TestDeriveStatusWaiting(t *testing.T) {
	t.Parallel()

	last := completedCycle(1, "2024-01-01", "2024-01-05")
	averages := CycleAverages{CycleLength: 28, PeriodLength: 5}

	status := DeriveStatus(nil, &last, averages, mustParseDay("2024-01-20"))
	if status.Kind != StatusWaiting {
		t.Fatalf("expected waiting, got %s", status.Kind)
	}
	if status.DaysUntilNext != 9 {
		t.Fatalf("expected 9 days until next, got %d", status.DaysUntilNext)
	}
	if status.ExpectedDate == nil || status.ExpectedDate.Format("2006-01-02") != "2024-01-29" {
		t.Fatalf("unexpected expected date: %v", status.ExpectedDate)
	}
	if status.OvulationDate == nil || status.OvulationDate.Format("2006-01-02") != "2024-01-15" {
		t.Fatalf("unexpected ovulation date: %v", status.OvulationDate)
	}
}

// The expected day itself already counts as late, with zero days late.
func TestDeriveStatusLateOnExpectedDay(t *testing.T) {
	t.Parallel()

	last := completedCycle(1, "2024-01-01", "2024-01-05")
	averages := CycleAverages{CycleLength: 28, PeriodLength: 5}

	status := DeriveStatus(nil, &last, averages, mustParseDay("2024-01-29"))
	if status.Kind != StatusLate {
		t.Fatalf("expected late on the expected day, got %s", status.Kind)
	}
	if status.DaysLate != 0 {
		t.Fatalf("expected 0 days late, got %d", status.DaysLate)
	}
}

func TestDeriveStatusLateCountsDays(t *testing.T) {
	t.Parallel()

	last := completedCycle(1, "2024-01-01", "2024-01-05")
	averages := CycleAverages{CycleLength: 28, PeriodLength: 5}

	status := DeriveStatus(nil, &last, averages, mustParseDay("2024-02-03"))
	if status.Kind != StatusLate {
		t.Fatalf("expected late, got %s", status.Kind)
	}
	if status.DaysLate != 5 {
		t.Fatalf("expected 5 days late, got %d", status.DaysLate)
	}
}

func TestDeriveStatusActiveCycleWins(t *testing.T) {
	t.Parallel()

	active := models.Cycle{StartDate: mustParseDay("2024-02-05"), IsActive: true}
	last := completedCycle(1, "2024-01-01", "2024-01-05")
	averages := CycleAverages{CycleLength: 28, PeriodLength: 5}

	status := DeriveStatus(&active, &last, averages, mustParseDay("2024-02-06"))
	if status.Kind != StatusOnPeriod {
		t.Fatalf("active cycle must dominate, got %s", status.Kind)
	}
}
