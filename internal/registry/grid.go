package registry

import (
	"time"

	"github.com/counselhub/counsel-api/internal/models"
)

// MatchSlot projects a slot list onto a single calendar grid cell: the slot
// whose start falls on the same day as day (compared in UTC) at the given
// hour of day. Returns the first match in iteration order; duplicates in one
// cell are a data-quality problem, not something callers may order by.
func MatchSlot(slots []models.Slot, day time.Time, hour int) (models.Slot, bool) {
	y, m, d := day.UTC().Date()
	for _, s := range slots {
		sy, sm, sd := s.StartTime.UTC().Date()
		if sy == y && sm == m && sd == d && s.StartTime.UTC().Hour() == hour {
			return s, true
		}
	}
	return models.Slot{}, false
}
