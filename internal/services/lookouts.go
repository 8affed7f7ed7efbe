package services

import (
	"sort"
	"time"

	"github.com/duet-app/duet/internal/models"
)

// SelectActiveLookouts keeps lookouts whose display window includes today
// and orders them by priority descending, then show-on date ascending.
// Seen items stay listed until their window closes; IsSeen only flags them
// for UI treatment.
func SelectActiveLookouts(lookouts []models.Lookout, today time.Time) []models.Lookout {
	active := make([]models.Lookout, 0, len(lookouts))
	for _, lookout := range lookouts {
		if lookout.ShowOnDate.After(today) {
			continue
		}
		if lookout.ShowUntilDate != nil && today.After(*lookout.ShowUntilDate) {
			continue
		}
		active = append(active, lookout)
	}

	sort.SliceStable(active, func(i, j int) bool {
		if active[i].Priority != active[j].Priority {
			return active[i].Priority > active[j].Priority
		}
		return active[i].ShowOnDate.Before(active[j].ShowOnDate)
	})

	return active
}
