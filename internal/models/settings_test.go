package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/mnemos/internal/common"
)

func TestDefaultSettings_AreValid(t *testing.T) {
	s := DefaultSettings()
	assert.Equal(t, Settings{ConfidentDays: 7, MediumDays: 3, WtfDays: 1}, s)
	assert.NoError(t, s.Validate())
}

func TestSettingsValidate(t *testing.T) {
	tests := []struct {
		name       string
		s          Settings
		wantFields []string
	}{
		{name: "ordered", s: Settings{7, 3, 1}},
		{name: "confident one above medium", s: Settings{4, 3, 1}},
		{name: "upper bound", s: Settings{365, 364, 363}},
		{name: "confident equals medium", s: Settings{3, 3, 1}, wantFields: []string{FieldConfidentDays}},
		{name: "medium equals wtf", s: Settings{7, 1, 1}, wantFields: []string{FieldMediumDays}},
		{name: "zero wtf", s: Settings{7, 3, 0}, wantFields: []string{FieldWtfDays}},
		{name: "too large", s: Settings{366, 3, 1}, wantFields: []string{FieldConfidentDays}},
		{name: "negative medium", s: Settings{7, -3, 1}, wantFields: []string{FieldMediumDays}},
		{name: "reversed", s: Settings{1, 3, 7}, wantFields: []string{FieldConfidentDays, FieldMediumDays}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.s.Validate()
			if len(tt.wantFields) == 0 {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, common.ErrValidation))

			var ve *ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Len(t, ve.Fields, len(tt.wantFields))
			for _, f := range tt.wantFields {
				assert.Contains(t, ve.Fields, f)
			}
		})
	}
}

func TestValidationError_MessageIsSorted(t *testing.T) {
	err := &ValidationError{Fields: map[string]string{"b": "second", "a": "first"}}
	assert.Equal(t, "validation failed: a: first; b: second", err.Error())
}
