// Package normalize coerces loosely typed model output into fixed-shape values.
// Every helper returns its fallback when the key is missing or has the wrong type.
package normalize

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// String returns obj[key] when it is a non-empty string, fallback otherwise.
func String(obj map[string]any, key, fallback string) string {
	if s, ok := obj[key].(string); ok && s != "" {
		return s
	}
	return fallback
}

// Pattern is String restricted to values matching re.
func Pattern(obj map[string]any, key string, re *regexp.Regexp, fallback string) string {
	s := String(obj, key, "")
	if s == "" || !re.MatchString(s) {
		return fallback
	}
	return s
}

// Enum returns the lower-cased obj[key] when it is one of allowed, fallback otherwise.
func Enum(obj map[string]any, key string, allowed []string, fallback string) string {
	s := strings.ToLower(strings.TrimSpace(String(obj, key, "")))
	for _, a := range allowed {
		if s == a {
			return s
		}
	}
	return fallback
}

// Number returns obj[key] when it is a finite JSON number, nil otherwise.
func Number(obj map[string]any, key string) *float64 {
	f, ok := obj[key].(float64)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

// OptionalString returns obj[key] as a string pointer. Integral numbers are
// accepted and formatted without a fraction, since models sometimes emit
// postal codes unquoted.
func OptionalString(obj map[string]any, key string) *string {
	switch v := obj[key].(type) {
	case string:
		if v == "" {
			return nil
		}
		return &v
	case float64:
		if v != math.Trunc(v) {
			return nil
		}
		s := strconv.FormatFloat(v, 'f', -1, 64)
		return &s
	}
	return nil
}

// Series returns obj[key] when it is an array of exactly n numbers, an empty
// non-nil slice otherwise.
func Series(obj map[string]any, key string, n int) []float64 {
	items, ok := obj[key].([]any)
	if !ok || len(items) != n {
		return []float64{}
	}
	out := make([]float64, 0, n)
	for _, item := range items {
		f, ok := item.(float64)
		if !ok {
			return []float64{}
		}
		out = append(out, f)
	}
	return out
}
