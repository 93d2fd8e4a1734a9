package models

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dmitrijs2005/mnemos/internal/common"
)

// ValidateCategoryName trims name and checks it can be used as a new
// category: not empty, not too long and not reserved.
func ValidateCategoryName(name string) (string, error) {
	name = strings.TrimSpace(name)

	if name == "" {
		return "", fmt.Errorf("%w: category name cannot be empty", common.ErrValidation)
	}
	if utf8.RuneCountInString(name) > common.MaxCategoryNameLength {
		return "", fmt.Errorf("%w: category name cannot exceed %d characters", common.ErrValidation, common.MaxCategoryNameLength)
	}
	for _, r := range common.ReservedCategoryNames {
		if strings.EqualFold(name, r) {
			return "", fmt.Errorf("%w: %q is a reserved name", common.ErrValidation, name)
		}
	}
	return name, nil
}

// ContainsCategory reports whether categories holds name, ignoring case.
func ContainsCategory(categories []string, name string) bool {
	for _, c := range categories {
		if strings.EqualFold(c, name) {
			return true
		}
	}
	return false
}
