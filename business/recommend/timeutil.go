package recommend

import (
	"math"
	"time"
)

// Accepted purchase timestamp forms: RFC 3339 with "Z" or an explicit
// offset, plus naive forms without a zone (treated as UTC).
var purchaseTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// parsePurchaseTime normalizes a raw timestamp string. Null-ish or
// unparseable input falls back to now: a single malformed date must not
// abort scoring.
func parsePurchaseTime(raw string, now time.Time) time.Time {
	if raw == "" {
		return now
	}
	for _, layout := range purchaseTimeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return now
}

// daysBetween returns whole days from b to a, floored. Matches calendar
// delta semantics: a future b yields a negative count.
func daysBetween(a, b time.Time) float64 {
	return math.Floor(a.Sub(b).Hours() / 24)
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
