package schedule

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/mnemos/internal/calendar"
	"github.com/dmitrijs2005/mnemos/internal/common"
	"github.com/dmitrijs2005/mnemos/internal/models"
)

// ErrInvalidCustomDays is returned for a custom interval outside 1..365.
var ErrInvalidCustomDays = errors.New("custom interval must be between 1 and 365 days")

// IntervalFor resolves the number of days until the next review. For
// GradeCustom a zero customDays means "not given" and falls back to the wtf
// interval. customDays is ignored for the named grades.
func IntervalFor(grade models.Grade, settings models.Settings, customDays int) (int, error) {
	switch grade {
	case models.GradeConfident:
		return settings.ConfidentDays, nil
	case models.GradeMedium:
		return settings.MediumDays, nil
	case models.GradeWtf:
		return settings.WtfDays, nil
	case models.GradeCustom:
		if customDays == 0 {
			return settings.WtfDays, nil
		}
		if customDays < 1 || customDays > common.MaxIntervalDays {
			return 0, fmt.Errorf("%w: got %d", ErrInvalidCustomDays, customDays)
		}
		return customDays, nil
	default:
		return 0, fmt.Errorf("%w: %d", models.ErrInvalidGrade, int(grade))
	}
}

// ApplyReview returns the state of item after a review graded on today.
// The input item is not modified.
func ApplyReview(item models.Item, grade models.Grade, settings models.Settings, today calendar.Day, customDays int) (models.Item, error) {
	days, err := IntervalFor(grade, settings, customDays)
	if err != nil {
		return item, err
	}

	next := item.Clone()
	next.IsReviewed = true
	next.LastAccessedAt = calendar.Ptr(today)
	next.NextReviewDate = calendar.Ptr(today.AddDays(days))
	next.ReviewDates = append(next.ReviewDates, today)
	return next, nil
}

// ApplyArchive returns item marked as archived.
func ApplyArchive(item models.Item) models.Item {
	next := item.Clone()
	next.Archived = true
	return next
}
