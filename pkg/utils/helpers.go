package utils

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// ParseValue returns an int, a float64 or the trimmed string, in that order of preference
func ParseValue(s string) interface{} {
	s = strings.TrimSpace(s)

	// try int
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	// try float
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

// FormatNumber renders a float without trailing zeros ("100", "12.5")
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// QueryInt reads an integer query parameter, falling back to def when absent
func QueryInt(r *http.Request, key string, def int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("query parameter %s must be an integer, got %q", key, raw)
	}
	return v, nil
}

// QueryCode reads an upper-cased country code query parameter, falling back to def
func QueryCode(r *http.Request, key, def string) string {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return def
	}
	return strings.ToUpper(raw)
}
