package errors

import (
	"math"
	"strconv"
	"strings"
)

// ParseInt parses a whole-number input field.
// field names the value in the error message (e.g. "total number of wires").
func ParseInt(field, s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, New(ErrCodeParse, "%s is required", field)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, New(ErrCodeParse, "%s must be a whole number, got %q", field, s)
	}
	return n, nil
}

// ParseFloat parses a real-number input field.
// NaN and infinities are rejected here so later checks only see finite values.
func ParseFloat(field, s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, New(ErrCodeParse, "%s is required", field)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, New(ErrCodeParse, "%s must be a number, got %q", field, s)
	}
	return v, nil
}

// ValidatePositive rejects values that are not finite and strictly positive.
func ValidatePositive(code Code, field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(code, "%s must be a finite number", field)
	}
	if v <= 0 {
		return New(code, "%s must be a positive number", field)
	}
	return nil
}

// ValidateNonNegative rejects values that are not finite or are below zero.
func ValidateNonNegative(code Code, field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(code, "%s must be a finite number", field)
	}
	if v < 0 {
		return New(code, "%s cannot be negative", field)
	}
	return nil
}

// ValidateOneOf checks that value is one of the allowed choices.
func ValidateOneOf(code Code, field, value string, allowed ...string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return New(code, "invalid %s: %q (must be one of: %s)", field, value, strings.Join(allowed, ", "))
}
