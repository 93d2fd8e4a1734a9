// Package models holds the domain types shared by the Mnemos client and
// server: study items, grading settings, review grades and the full data
// snapshot.
package models

import (
	"slices"

	"github.com/dmitrijs2005/mnemos/internal/calendar"
)

// Content is one side of an item: free text with an optional link and an
// ordered list of image references.
type Content struct {
	Text   string   `json:"text,omitempty" yaml:"text,omitempty"`
	URL    string   `json:"url,omitempty" yaml:"url,omitempty"`
	Images []string `json:"images,omitempty" yaml:"images,omitempty"`
}

// Item is the unit of study material.
//
// Scheduling fields:
//   - NextReviewDate nil means the item shows on every date until first reviewed.
//   - IsReviewed is set by a review and cleared when the item becomes due again.
//   - ReviewDates is append-only and chronological.
//   - Archived items are excluded from every view; archiving is terminal.
type Item struct {
	ID             string         `json:"id" yaml:"id"`
	Name           string         `json:"name" yaml:"name"`
	Category       string         `json:"category" yaml:"category"`
	Problem        Content        `json:"problem" yaml:"problem"`
	Answer         Content        `json:"answer" yaml:"answer"`
	SideNote       string         `json:"side_note,omitempty" yaml:"side_note,omitempty"`
	CreatedAt      calendar.Day   `json:"created_at" yaml:"created_at"`
	LastAccessedAt *calendar.Day  `json:"last_accessed_at,omitempty" yaml:"last_accessed_at,omitempty"`
	IsReviewed     bool           `json:"is_reviewed" yaml:"is_reviewed"`
	NextReviewDate *calendar.Day  `json:"next_review_date,omitempty" yaml:"next_review_date,omitempty"`
	ReviewDates    []calendar.Day `json:"review_dates" yaml:"review_dates"`
	Archived       bool           `json:"archived" yaml:"archived"`
}

// Clone returns a deep copy of the item so callers can derive a new state
// without aliasing slices or pointers of the original.
func (i Item) Clone() Item {
	c := i
	c.Problem.Images = slices.Clone(i.Problem.Images)
	c.Answer.Images = slices.Clone(i.Answer.Images)
	c.ReviewDates = slices.Clone(i.ReviewDates)
	if i.LastAccessedAt != nil {
		c.LastAccessedAt = calendar.Ptr(*i.LastAccessedAt)
	}
	if i.NextReviewDate != nil {
		c.NextReviewDate = calendar.Ptr(*i.NextReviewDate)
	}
	return c
}

// LastReviewDate returns the most recent entry of ReviewDates.
func (i Item) LastReviewDate() (calendar.Day, bool) {
	if len(i.ReviewDates) == 0 {
		return 0, false
	}
	return i.ReviewDates[len(i.ReviewDates)-1], true
}

// LastInteraction is the later of LastAccessedAt and CreatedAt.
func (i Item) LastInteraction() calendar.Day {
	if i.LastAccessedAt == nil {
		return i.CreatedAt
	}
	return calendar.Max(*i.LastAccessedAt, i.CreatedAt)
}

// HasLink reports whether either side carries a URL.
func (i Item) HasLink() bool {
	return i.Problem.URL != "" || i.Answer.URL != ""
}

// HasImage reports whether either side carries an image.
func (i Item) HasImage() bool {
	return len(i.Problem.Images) > 0 || len(i.Answer.Images) > 0
}

// ExtendsHistory reports whether next keeps prev as an unchanged prefix and
// stays in non-decreasing date order.
func ExtendsHistory(prev, next []calendar.Day) bool {
	if len(next) < len(prev) {
		return false
	}
	if !slices.Equal(prev, next[:len(prev)]) {
		return false
	}
	for k := 1; k < len(next); k++ {
		if next[k] < next[k-1] {
			return false
		}
	}
	return true
}

// FindItem returns the index of the item with the given id, or -1.
func FindItem(items []Item, id string) int {
	return slices.IndexFunc(items, func(it Item) bool { return it.ID == id })
}
