package normalize

import (
	"strconv"
	"strings"
)

// Ratio parses a percentage value like "30%" or " 40 % " into an
// integer. The second return is false when no value was supplied or the
// value was not a number; callers must distinguish "no ratio given"
// from an actual ratio of zero.
func Ratio(value string) (int, bool) {
	s := strings.TrimSpace(value)
	if s == "" {
		return 0, false
	}
	s = strings.TrimSpace(strings.ReplaceAll(s, "%", ""))
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Percent parses a float percentage like "12.5%" or a bare number.
// Unparseable input yields 0.
func Percent(v any) float64 {
	switch n := v.(type) {
	case nil:
		return 0
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case float64:
		return n
	case float32:
		return float64(n)
	}
	s := strings.TrimSpace(toString(v))
	s = strings.TrimSpace(strings.TrimSuffix(s, "%"))
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}
