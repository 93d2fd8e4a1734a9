package models

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dmitrijs2005/mnemos/internal/common"
)

// Settings holds the three grading intervals, in days. They are process-wide
// and shared by every review transition.
type Settings struct {
	ConfidentDays int `json:"confident_days" yaml:"confident_days"`
	MediumDays    int `json:"medium_days" yaml:"medium_days"`
	WtfDays       int `json:"wtf_days" yaml:"wtf_days"`
}

// DefaultSettings returns the 7/3/1 intervals used for a fresh store.
func DefaultSettings() Settings {
	return Settings{ConfidentDays: 7, MediumDays: 3, WtfDays: 1}
}

// Field names reported by Settings.Validate.
const (
	FieldConfidentDays = "confident_days"
	FieldMediumDays    = "medium_days"
	FieldWtfDays       = "wtf_days"
)

// Validate checks that every interval is within [1, 365] and that
// confident > medium > wtf. Violations are reported per field in a
// *ValidationError.
func (s Settings) Validate() error {
	fields := map[string]string{}

	inRange := func(field string, v int) bool {
		if v < 1 || v > common.MaxIntervalDays {
			fields[field] = fmt.Sprintf("must be between 1 and %d days", common.MaxIntervalDays)
			return false
		}
		return true
	}

	c := inRange(FieldConfidentDays, s.ConfidentDays)
	m := inRange(FieldMediumDays, s.MediumDays)
	w := inRange(FieldWtfDays, s.WtfDays)

	if c && m && s.ConfidentDays <= s.MediumDays {
		fields[FieldConfidentDays] = "confident interval should be longer than medium"
	}
	if m && w && s.MediumDays <= s.WtfDays {
		fields[FieldMediumDays] = "medium interval should be longer than wtf"
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// ValidationError reports field-level validation failures. It matches
// common.ErrValidation with errors.Is.
type ValidationError struct {
	Fields map[string]string `json:"fields"`
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return common.ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return common.ErrValidation
}
