package utils

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// The sales API is loose about scalar types: the same field can arrive as a
// JSON number, a numeric string, a bool or null depending on till settings.
// These helpers coerce field-by-field and report failure as nil instead of
// failing the whole run.

// FloatOrNil parses a raw JSON scalar into a float. Unparsable or absent
// values become nil.
func FloatOrNil(v any) *float64 {
	switch value := v.(type) {
	case nil:
		return nil
	case float64:
		return &value
	case int:
		f := float64(value)
		return &f
	case int64:
		f := float64(value)
		return &f
	case json.Number:
		f, err := value.Float64()
		if err != nil {
			return nil
		}
		return &f
	case bool:
		f := 0.0
		if value {
			f = 1.0
		}
		return &f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return nil
		}
		return &f
	default:
		return nil
	}
}

// FloatOrZero is FloatOrNil with absent/unparsable collapsing to 0.
// Used for payment amounts, where a missing amount means nothing was paid.
func FloatOrZero(v any) float64 {
	if f := FloatOrNil(v); f != nil {
		return *f
	}
	return 0
}

var timeLayouts = []string{
	DateTimeLayout,
	time.RFC3339,
	"2006-01-02T15:04:05",
	time.DateOnly,
}

// TimeOrNil parses a raw JSON scalar into a timestamp, trying the layouts the
// API has been observed to emit. Unparsable values become nil.
func TimeOrNil(v any) *time.Time {
	s, ok := v.(string)
	if !ok || s == "" {
		return nil
	}

	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}

	return nil
}

// Stringify renders a raw JSON scalar as text, with nil becoming the empty
// string. Integral floats drop the decimal point so numeric IDs stay readable.
func Stringify(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case json.Number:
		return value.String()
	case bool:
		return strconv.FormatBool(value)
	default:
		return fmt.Sprintf("%v", value)
	}
}
