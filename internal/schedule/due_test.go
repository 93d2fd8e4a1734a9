package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/mnemos/internal/calendar"
	"github.com/dmitrijs2005/mnemos/internal/models"
)

var t0 = calendar.MustParse("2024-06-25")

func scheduled(id string, next calendar.Day, reviewed bool) models.Item {
	return models.Item{
		ID:             id,
		Category:       "Default",
		CreatedAt:      t0.AddDays(-30),
		IsReviewed:     reviewed,
		NextReviewDate: calendar.Ptr(next),
	}
}

func ids(items []models.Item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

func TestShouldShowOnDate_ScheduledOnlyOnExactDate(t *testing.T) {
	it := scheduled("a", t0, true)

	for delta := -40; delta <= 40; delta++ {
		d := t0.AddDays(delta)
		assert.Equal(t, delta == 0, ShouldShowOnDate(it, d), "day %s", d)
	}
}

func TestShouldShowOnDate_NewItemAlwaysDue(t *testing.T) {
	it := models.Item{ID: "new", CreatedAt: t0}

	for _, delta := range []int{0, 30, -30, 365} {
		assert.True(t, ShouldShowOnDate(it, t0.AddDays(delta)))
	}
}

func TestShouldShowOnDate_ReviewedWithoutScheduleHidden(t *testing.T) {
	it := models.Item{ID: "x", IsReviewed: true}
	assert.False(t, ShouldShowOnDate(it, t0))
}

func TestShouldShowOnDate_MissedDateNotCaughtUp(t *testing.T) {
	it := scheduled("late", t0.AddDays(-3), false)

	assert.False(t, ShouldShowOnDate(it, t0))
	assert.True(t, ShouldShowOnDate(it, t0.AddDays(-3)))
}

func TestSelectDueItems_ExcludesArchived(t *testing.T) {
	archivedNew := models.Item{ID: "arch-new", Archived: true}
	archivedDue := scheduled("arch-due", t0, false)
	archivedDue.Archived = true

	items := []models.Item{
		scheduled("due", t0, false),
		archivedNew,
		archivedDue,
		{ID: "new"},
		scheduled("later", t0.AddDays(3), true),
	}

	assert.Equal(t, []string{"due", "new"}, ids(SelectDueItems(items, t0)))
	assert.Empty(t, SelectDueItems(nil, t0))
}

func TestReconcileDueToday(t *testing.T) {
	items := []models.Item{
		scheduled("today-reviewed", t0, true),
		scheduled("today-unreviewed", t0, false),
		scheduled("tomorrow", t0.AddDays(1), true),
		{ID: "new"},
	}

	changed := ReconcileDueToday(items, t0)
	require.Len(t, changed, 1)
	assert.Equal(t, "today-reviewed", changed[0].ID)
	assert.False(t, changed[0].IsReviewed)
	assert.True(t, items[0].IsReviewed, "input must not be modified")

	items[0] = changed[0]
	assert.Empty(t, ReconcileDueToday(items, t0))
}

func TestReconcileDueToday_SkipsArchived(t *testing.T) {
	it := scheduled("a", t0, true)
	it.Archived = true
	assert.Empty(t, ReconcileDueToday([]models.Item{it}, t0))
}

func TestReviewedToday(t *testing.T) {
	it := scheduled("a", t0.AddDays(7), true)
	it.ReviewDates = []calendar.Day{t0.AddDays(-7), t0}
	assert.True(t, ReviewedToday(it, t0))
	assert.False(t, ReviewedToday(it, t0.AddDays(1)))

	it.IsReviewed = false
	assert.False(t, ReviewedToday(it, t0))

	assert.False(t, ReviewedToday(models.Item{IsReviewed: true}, t0))
}

func TestGroupByCategory(t *testing.T) {
	mk := func(id, cat string, created calendar.Day, accessed *calendar.Day) models.Item {
		return models.Item{ID: id, Category: cat, CreatedAt: created, LastAccessedAt: accessed}
	}

	doneToday := mk("done", "Go", t0.AddDays(-50), calendar.Ptr(t0))
	doneToday.IsReviewed = true
	doneToday.ReviewDates = []calendar.Day{t0}

	items := []models.Item{
		mk("go-recent", "Go", t0.AddDays(-1), nil),
		mk("sql-1", "SQL", t0.AddDays(-5), nil),
		doneToday,
		mk("go-old", "Go", t0.AddDays(-20), calendar.Ptr(t0.AddDays(-10))),
		mk("go-oldest", "Go", t0.AddDays(-15), nil),
	}

	groups := GroupByCategory(items, t0)
	require.Len(t, groups, 2)

	assert.Equal(t, "Go", groups[0].Category)
	assert.Equal(t, []string{"go-oldest", "go-old", "go-recent", "done"}, ids(groups[0].Items))

	assert.Equal(t, "SQL", groups[1].Category)
	assert.Equal(t, []string{"sql-1"}, ids(groups[1].Items))
}

func TestGroupByCategory_StableOnTies(t *testing.T) {
	items := []models.Item{
		{ID: "b", Category: "c", CreatedAt: t0},
		{ID: "a", Category: "c", CreatedAt: t0},
	}
	groups := GroupByCategory(items, t0)
	require.Len(t, groups, 1)
	assert.Equal(t, []string{"b", "a"}, ids(groups[0].Items))
}
