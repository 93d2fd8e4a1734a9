package schedule

import (
	"github.com/dmitrijs2005/mnemos/internal/calendar"
	"github.com/dmitrijs2005/mnemos/internal/models"
)

// Stats counts the active collection as seen on a given day.
type Stats struct {
	Active        int
	Due           int
	ReviewedToday int
	New           int
}

// Summary computes Stats for day. ReviewedToday is relative to today.
func Summary(items []models.Item, day, today calendar.Day) Stats {
	var s Stats
	for _, it := range items {
		if it.Archived {
			continue
		}
		s.Active++
		if ShouldShowOnDate(it, day) {
			s.Due++
		}
		if ReviewedToday(it, today) {
			s.ReviewedToday++
		}
		if it.NextReviewDate == nil && !it.IsReviewed {
			s.New++
		}
	}
	return s
}
