package models

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Record is a loosely typed JSON object supplied by the frontend (assessment, submission,
// candidate). Fields are read with a fallback instead of being validated up front.
type Record map[string]interface{}

// Has reports whether key is present with a non-null value.
func (r Record) Has(key string) bool {
	if r == nil {
		return false
	}
	value, ok := r[key]
	return ok && value != nil
}

// String renders the value at key, or fallback when it is absent or null.
func (r Record) String(key, fallback string) string {
	if !r.Has(key) {
		return fallback
	}
	switch value := r[key].(type) {
	case string:
		return value
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case json.Number:
		return value.String()
	case bool:
		return strconv.FormatBool(value)
	case int:
		return strconv.Itoa(value)
	default:
		encoded, err := json.Marshal(value)
		if err != nil {
			return fallback
		}
		return string(encoded)
	}
}

// Float reads a numeric value at key. Numeric strings are parsed; anything else yields fallback.
func (r Record) Float(key string, fallback float64) float64 {
	if !r.Has(key) {
		return fallback
	}
	switch value := r[key].(type) {
	case float64:
		return value
	case int:
		return float64(value)
	case json.Number:
		if parsed, err := value.Float64(); err == nil {
			return parsed
		}
	case string:
		if parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64); err == nil {
			return parsed
		}
	}
	return fallback
}

// Bool reads a boolean at key. Only true and "true" count as set.
func (r Record) Bool(key string) bool {
	if !r.Has(key) {
		return false
	}
	switch value := r[key].(type) {
	case bool:
		return value
	case string:
		return strings.EqualFold(strings.TrimSpace(value), "true")
	}
	return false
}

// Value renders the value at key as a JSON scalar for spreadsheets and templates, or fallback.
func (r Record) Value(key string, fallback interface{}) interface{} {
	if !r.Has(key) {
		return fallback
	}
	return r[key]
}
