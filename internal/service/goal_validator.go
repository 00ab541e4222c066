package service

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the canonical calendar date form used throughout the API.
const DateLayout = "2006-01-02"

// GoalInput is the incoming payload for goal create/update. Target is
// untyped because numeric coercion is permitted: a JSON number or a numeric
// string like "100" both pass validation.
type GoalInput struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Target      interface{} `json:"target"`
	Unit        string      `json:"unit"`
	StartDate   string      `json:"startDate"`
	EndDate     string      `json:"endDate"`
}

// ProgressInput is the incoming payload for recording progress.
type ProgressInput struct {
	GoalID interface{} `json:"goalId"`
	Value  interface{} `json:"value"`
	Date   string      `json:"date"`
}

// ValidationResult reports rule violations keyed by field. Rules are
// checked independently and errors accumulate rather than short-circuit.
type ValidationResult struct {
	IsValid bool
	Errors  map[string]string
}

// ValidateGoalData checks a goal payload against the business rules. It
// returns an error only when the payload itself is absent; a well-formed
// but invalid payload yields IsValid=false with an entry per violated
// field.
func ValidateGoalData(in *GoalInput) (*ValidationResult, error) {
	if in == nil {
		return nil, errors.New("goal data is required")
	}

	fieldErrors := map[string]string{}

	if !isNonEmptyString(in.Name) {
		fieldErrors["name"] = "Name is required"
	}

	if _, ok := toPositiveInt(in.Target); !ok {
		fieldErrors["target"] = "Target must be a positive integer"
	}

	if !isNonEmptyString(in.Unit) {
		fieldErrors["unit"] = "Unit is required"
	}

	if in.StartDate != "" && !IsValidDateString(in.StartDate) {
		fieldErrors["startDate"] = "Invalid start date"
	}

	if in.EndDate != "" && !IsValidDateString(in.EndDate) {
		fieldErrors["endDate"] = "Invalid end date"
	}

	if IsValidDateString(in.StartDate) && IsValidDateString(in.EndDate) {
		start, _ := time.Parse(DateLayout, in.StartDate)
		end, _ := time.Parse(DateLayout, in.EndDate)
		if start.After(end) {
			fieldErrors["startDate"] = "Start date cannot be after end date"
			fieldErrors["endDate"] = "End date cannot be before start date"
		}
	}

	return &ValidationResult{IsValid: len(fieldErrors) == 0, Errors: fieldErrors}, nil
}

// ValidateProgressData checks a progress payload with the same
// accumulation semantics as ValidateGoalData.
func ValidateProgressData(in *ProgressInput) (*ValidationResult, error) {
	if in == nil {
		return nil, errors.New("progress data is required")
	}

	fieldErrors := map[string]string{}

	if _, ok := toPositiveInt(in.GoalID); !ok {
		fieldErrors["goalId"] = "Goal ID must be a positive integer"
	}

	if _, ok := toPositiveInt(in.Value); !ok {
		fieldErrors["value"] = "Value must be a positive integer"
	}

	if !IsValidDateString(in.Date) {
		fieldErrors["date"] = "Invalid date"
	}

	return &ValidationResult{IsValid: len(fieldErrors) == 0, Errors: fieldErrors}, nil
}

// IsValidDateString reports whether s is a real calendar date whose
// canonical YYYY-MM-DD re-serialization equals the input exactly. This
// rejects impossible dates (2024-02-30) and non-canonical forms (2024-2-1).
func IsValidDateString(s string) bool {
	if s == "" {
		return false
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return false
	}
	return t.Format(DateLayout) == s
}

// FormatDate renders a time in the canonical date form.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

func isNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// toPositiveInt coerces a JSON-decoded value to a positive integer.
// Accepts integral numbers and numeric strings; rejects everything else.
func toPositiveInt(v interface{}) (int, bool) {
	var n int
	switch x := v.(type) {
	case int:
		n = x
	case int64:
		n = int(x)
	case float64:
		if x != math.Trunc(x) {
			return 0, false
		}
		n = int(x)
	case json.Number:
		i, err := x.Int64()
		if err != nil {
			return 0, false
		}
		n = int(i)
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(x))
		if err != nil {
			return 0, false
		}
		n = i
	default:
		return 0, false
	}
	if n <= 0 {
		return 0, false
	}
	return n, true
}
