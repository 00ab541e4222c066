package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateGoalData_AccumulatesFieldErrors(t *testing.T) {
	result, err := ValidateGoalData(&GoalInput{
		Name:   "",
		Target: -1,
		Unit:   "",
	})

	assert.NoError(t, err)
	assert.False(t, result.IsValid)
	assert.Len(t, result.Errors, 3)
	assert.Contains(t, result.Errors, "name")
	assert.Contains(t, result.Errors, "target")
	assert.Contains(t, result.Errors, "unit")
}

func TestValidateGoalData_ValidPayload(t *testing.T) {
	tests := []struct {
		name   string
		target interface{}
	}{
		{name: "numeric target", target: float64(100)},
		{name: "numeric string target", target: "100"},
		{name: "int target", target: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ValidateGoalData(&GoalInput{
				Name:      "Run 5k",
				Target:    tt.target,
				Unit:      "km",
				StartDate: "2024-01-01",
				EndDate:   "2024-06-01",
			})

			assert.NoError(t, err)
			assert.True(t, result.IsValid)
			assert.Empty(t, result.Errors)
		})
	}
}

func TestValidateGoalData_TargetCoercion(t *testing.T) {
	tests := []struct {
		name   string
		target interface{}
	}{
		{name: "zero", target: float64(0)},
		{name: "negative", target: float64(-1)},
		{name: "fractional", target: 1.5},
		{name: "non-numeric string", target: "abc"},
		{name: "missing", target: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ValidateGoalData(&GoalInput{Name: "Run", Target: tt.target, Unit: "km"})

			assert.NoError(t, err)
			assert.False(t, result.IsValid)
			assert.Contains(t, result.Errors, "target")
		})
	}
}

func TestValidateGoalData_WhitespaceOnlyFields(t *testing.T) {
	result, err := ValidateGoalData(&GoalInput{Name: "   ", Target: 5, Unit: "\t"})

	assert.NoError(t, err)
	assert.False(t, result.IsValid)
	assert.Contains(t, result.Errors, "name")
	assert.Contains(t, result.Errors, "unit")
}

func TestValidateGoalData_InvalidDates(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		keys  []string
	}{
		{name: "impossible start date", start: "2024-02-30", keys: []string{"startDate"}},
		{name: "non-canonical start date", start: "2024-2-1", keys: []string{"startDate"}},
		{name: "garbage end date", end: "not-a-date", keys: []string{"endDate"}},
		{name: "both invalid", start: "2024-13-01", end: "2024-00-10", keys: []string{"startDate", "endDate"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ValidateGoalData(&GoalInput{
				Name:      "Run",
				Target:    5,
				Unit:      "km",
				StartDate: tt.start,
				EndDate:   tt.end,
			})

			assert.NoError(t, err)
			assert.False(t, result.IsValid)
			for _, key := range tt.keys {
				assert.Contains(t, result.Errors, key)
			}
		})
	}
}

func TestValidateGoalData_StartAfterEndSetsBothFields(t *testing.T) {
	result, err := ValidateGoalData(&GoalInput{
		Name:      "Run",
		Target:    5,
		Unit:      "km",
		StartDate: "2024-06-01",
		EndDate:   "2024-01-01",
	})

	assert.NoError(t, err)
	assert.False(t, result.IsValid)
	assert.Equal(t, "Start date cannot be after end date", result.Errors["startDate"])
	assert.Equal(t, "End date cannot be before start date", result.Errors["endDate"])
}

func TestValidateGoalData_DatesOptional(t *testing.T) {
	result, err := ValidateGoalData(&GoalInput{Name: "Run", Target: 5, Unit: "km"})

	assert.NoError(t, err)
	assert.True(t, result.IsValid)
}

func TestValidateGoalData_NilPayload(t *testing.T) {
	result, err := ValidateGoalData(nil)

	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestValidateProgressData(t *testing.T) {
	tests := []struct {
		name  string
		input *ProgressInput
		valid bool
		keys  []string
	}{
		{
			name:  "valid payload",
			input: &ProgressInput{GoalID: float64(1), Value: float64(5), Date: "2024-03-15"},
			valid: true,
		},
		{
			name:  "numeric string ids",
			input: &ProgressInput{GoalID: "3", Value: "10", Date: "2024-03-15"},
			valid: true,
		},
		{
			name:  "all fields invalid",
			input: &ProgressInput{GoalID: float64(0), Value: "abc", Date: "2024-2-1"},
			keys:  []string{"goalId", "value", "date"},
		},
		{
			name:  "missing date",
			input: &ProgressInput{GoalID: float64(1), Value: float64(5)},
			keys:  []string{"date"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ValidateProgressData(tt.input)

			assert.NoError(t, err)
			assert.Equal(t, tt.valid, result.IsValid)
			assert.Len(t, result.Errors, len(tt.keys))
			for _, key := range tt.keys {
				assert.Contains(t, result.Errors, key)
			}
		})
	}
}

func TestValidateProgressData_NilPayload(t *testing.T) {
	result, err := ValidateProgressData(nil)

	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestIsValidDateString_RoundTrip(t *testing.T) {
	valid := []string{"2024-01-01", "2024-02-29", "1999-12-31", "2024-06-15"}
	for _, d := range valid {
		assert.True(t, IsValidDateString(d), d)
	}

	invalid := []string{"", "2024-02-30", "2023-02-29", "2024-2-1", "2024-01-1", "01-01-2024", "2024/01/01", "2024-01-01T00:00:00Z"}
	for _, d := range invalid {
		assert.False(t, IsValidDateString(d), d)
	}
}
