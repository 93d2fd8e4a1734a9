package models

import (
	"encoding"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidGrade is returned for unknown review grades.
var ErrInvalidGrade = errors.New("invalid grade")

// Grade is the user's assessment of a review.
type Grade int

const (
	GradeConfident Grade = iota + 1 // Knew it; wait the longest interval.
	GradeMedium                     // Partially knew it.
	GradeWtf                        // Did not know it at all.
	GradeCustom                     // User-chosen number of days.
)

var (
	gradeNames  = [...]string{GradeConfident: "confident", GradeMedium: "medium", GradeWtf: "wtf", GradeCustom: "custom"}
	gradeByName = map[string]Grade{
		"confident": GradeConfident,
		"medium":    GradeMedium,
		"wtf":       GradeWtf,
		"custom":    GradeCustom,
	}
)

var (
	_ fmt.Stringer             = Grade(0)
	_ json.Marshaler           = Grade(0)
	_ json.Unmarshaler         = (*Grade)(nil)
	_ encoding.TextMarshaler   = Grade(0)
	_ encoding.TextUnmarshaler = (*Grade)(nil)
)

// ParseGrade parses a grade name case-insensitively.
func ParseGrade(s string) (Grade, error) {
	g, ok := gradeByName[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidGrade, s)
	}
	return g, nil
}

// IsValid reports whether g is one of the four grades.
func (g Grade) IsValid() bool {
	return g >= GradeConfident && g <= GradeCustom
}

func (g Grade) String() string {
	if g.IsValid() {
		return gradeNames[g]
	}
	return fmt.Sprintf("Grade(%d)", int(g))
}

// MarshalText implements encoding.TextMarshaler.
func (g Grade) MarshalText() ([]byte, error) {
	if !g.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidGrade, int(g))
	}
	return []byte(gradeNames[g]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (g *Grade) UnmarshalText(text []byte) error {
	v, err := ParseGrade(string(text))
	if err != nil {
		return err
	}
	*g = v
	return nil
}

// MarshalJSON implements json.Marshaler. Grade serializes as a JSON string.
func (g Grade) MarshalJSON() ([]byte, error) {
	text, err := g.MarshalText()
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(text))
}

// UnmarshalJSON implements json.Unmarshaler. Expects a JSON string.
func (g *Grade) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidGrade, data)
	}
	return g.UnmarshalText([]byte(s))
}
