package schedule

import (
	"cmp"
	"slices"

	"github.com/dmitrijs2005/mnemos/internal/calendar"
	"github.com/dmitrijs2005/mnemos/internal/models"
)

// ShouldShowOnDate reports whether item belongs to the study list of day.
//
// A scheduled item shows only on its exact NextReviewDate; there is no
// catch-up of missed dates. An unscheduled item shows on every date until it
// is reviewed.
func ShouldShowOnDate(item models.Item, day calendar.Day) bool {
	if item.Archived {
		return false
	}
	if item.NextReviewDate != nil {
		return *item.NextReviewDate == day
	}
	return !item.IsReviewed
}

// SelectDueItems returns the items due on day, in input order.
func SelectDueItems(items []models.Item, day calendar.Day) []models.Item {
	due := make([]models.Item, 0, len(items))
	for _, it := range items {
		if ShouldShowOnDate(it, day) {
			due = append(due, it)
		}
	}
	return due
}

// ReconcileDueToday returns updated copies of the items that were reviewed
// earlier and are scheduled for today, with IsReviewed cleared. Items already
// reset are not returned, so a second pass over the result yields nothing.
//
// today must be the real current date, not the date being viewed.
func ReconcileDueToday(items []models.Item, today calendar.Day) []models.Item {
	var changed []models.Item
	for _, it := range items {
		if it.Archived || !it.IsReviewed || it.NextReviewDate == nil || *it.NextReviewDate != today {
			continue
		}
		c := it.Clone()
		c.IsReviewed = false
		changed = append(changed, c)
	}
	return changed
}

// ReviewedToday reports whether item was graded on today. Used for ordering
// and dimming only; it has no effect on due-set membership.
func ReviewedToday(item models.Item, today calendar.Day) bool {
	if !item.IsReviewed {
		return false
	}
	last, ok := item.LastReviewDate()
	return ok && last == today
}

// CategoryGroup is one category of the study list.
type CategoryGroup struct {
	Category string
	Items    []models.Item
}

// GroupByCategory partitions items by category. Categories keep the order in
// which they are first seen. Within a category, items not reviewed today come
// first, then the oldest interaction first.
func GroupByCategory(items []models.Item, today calendar.Day) []CategoryGroup {
	var groups []CategoryGroup
	index := make(map[string]int)

	for _, it := range items {
		k, ok := index[it.Category]
		if !ok {
			k = len(groups)
			index[it.Category] = k
			groups = append(groups, CategoryGroup{Category: it.Category})
		}
		groups[k].Items = append(groups[k].Items, it)
	}

	for k := range groups {
		slices.SortStableFunc(groups[k].Items, func(a, b models.Item) int {
			ra, rb := ReviewedToday(a, today), ReviewedToday(b, today)
			if ra != rb {
				if ra {
					return 1
				}
				return -1
			}
			return cmp.Compare(a.LastInteraction(), b.LastInteraction())
		})
	}
	return groups
}
