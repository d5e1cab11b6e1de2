// Package normalize converts free-form user input (Korean magnitude
// words, percent signs, loose numerics) into canonical values. Every
// function here degrades to a zero value instead of failing, so batch
// validation can collect problems across fields.
package normalize

import (
	"regexp"
	"strconv"
	"strings"
)

// unitPattern pairs a regex for one Korean magnitude word with its
// multiplier. The patterns are scanned independently and their first
// matches summed: "3억 5천만" contributes 3*1e8 + 5*1e7. They are not
// mutually exclusive, which is the behavioral contract, not an
// implementation detail.
type unitPattern struct {
	re         *regexp.Regexp
	multiplier float64
}

var unitPatterns = []unitPattern{
	{regexp.MustCompile(`(\d+(?:\.\d+)?)억`), 100_000_000},
	{regexp.MustCompile(`(\d+(?:\.\d+)?)천만`), 10_000_000},
	{regexp.MustCompile(`(\d+(?:\.\d+)?)백만`), 1_000_000},
	{regexp.MustCompile(`(\d+(?:\.\d+)?)만`), 10_000},
}

var (
	digitsOnly = regexp.MustCompile(`^\d+$`)
	nonDigits  = regexp.MustCompile(`[^0-9]`)
)

// Currency parses an amount in won from an integer, float, or a Korean
// currency string such as "3억 5천만". Unparseable input yields 0.
func Currency(v any) int64 {
	switch n := v.(type) {
	case nil:
		return 0
	case int:
		return int64(n)
	case int64:
		return n
	case float64:
		return int64(n)
	case float32:
		return int64(n)
	}

	text := strings.TrimSpace(toString(v))
	text = strings.ReplaceAll(text, ",", "")
	text = strings.ReplaceAll(text, " ", "")
	if text == "" {
		return 0
	}

	if digitsOnly.MatchString(text) {
		n, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return 0
		}
		return n
	}

	total := 0.0
	for _, p := range unitPatterns {
		if m := p.re.FindStringSubmatch(text); m != nil {
			n, err := strconv.ParseFloat(m[1], 64)
			if err != nil {
				continue
			}
			total += n * p.multiplier
		}
	}
	if total == 0 {
		// No unit matched; mixed digits and noise, keep the digits.
		digits := nonDigits.ReplaceAllString(text, "")
		if digits == "" {
			return 0
		}
		n, err := strconv.ParseInt(digits, 10, 64)
		if err != nil {
			return 0
		}
		return n
	}
	return int64(total)
}

// ToInt64 is the tolerant numeric cast used at engine boundaries.
// Non-numeric input yields 0, never an error.
func ToInt64(v any) int64 {
	switch n := v.(type) {
	case nil:
		return 0
	case int:
		return int64(n)
	case int64:
		return n
	case float64:
		return int64(n)
	case float32:
		return int64(n)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0
		}
		return int64(f)
	default:
		return 0
	}
}

// ToFloat64 is the tolerant float cast; default is returned for
// non-numeric input.
func ToFloat64(v any, def float64) float64 {
	switch n := v.(type) {
	case nil:
		return def
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case float64:
		return n
	case float32:
		return float64(n)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return def
		}
		return f
	default:
		return def
	}
}

func toString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	if st, ok := v.(interface{ String() string }); ok {
		return st.String()
	}
	return ""
}
