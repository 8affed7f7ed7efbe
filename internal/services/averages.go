package services

import (
	"sort"

	"github.com/duet-app/duet/internal/models"
)

type CycleAverages struct {
	CycleLength  int `json:"cycle_length"`
	PeriodLength int `json:"period_length"`
}

// ComputeAverages reduces completed cycles into rolling averages. Period
// length is the mean of inclusive start-to-end spans; cycle length is the
// mean gap between consecutive start dates and needs at least two cycles.
// Defaults (5 and 28) fill in when history is insufficient. Recomputed on
// demand so edits to history are reflected immediately.
func ComputeAverages(completed []models.Cycle) CycleAverages {
	averages := CycleAverages{
		CycleLength:  models.DefaultCycleLength,
		PeriodLength: models.DefaultPeriodLength,
	}

	sorted := sortCyclesByStart(completed)

	periodSpans := make([]int, 0, len(sorted))
	for _, cycle := range sorted {
		if cycle.EndDate == nil {
			continue
		}
		span := DaysBetween(cycle.StartDate, *cycle.EndDate) + 1
		if span > 0 {
			periodSpans = append(periodSpans, span)
		}
	}
	if len(periodSpans) > 0 {
		averages.PeriodLength = roundedMean(periodSpans)
	}

	startGaps := make([]int, 0, len(sorted))
	for index := 1; index < len(sorted); index++ {
		gap := DaysBetween(sorted[index-1].StartDate, sorted[index].StartDate)
		if gap > 0 {
			startGaps = append(startGaps, gap)
		}
	}
	if len(startGaps) >= 1 && len(sorted) >= 2 {
		averages.CycleLength = roundedMean(startGaps)
	}

	return averages
}

func sortCyclesByStart(cycles []models.Cycle) []models.Cycle {
	sorted := make([]models.Cycle, 0, len(cycles))
	sorted = append(sorted, cycles...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].StartDate.Equal(sorted[j].StartDate) {
			return sorted[i].ID < sorted[j].ID
		}
		return sorted[i].StartDate.Before(sorted[j].StartDate)
	})
	return sorted
}

func roundedMean(values []int) int {
	if len(values) == 0 {
		return 0
	}
	var total int
	for _, value := range values {
		total += value
	}
	return int(float64(total)/float64(len(values)) + 0.5)
}
