package utils

import (
	"fmt"
	"time"
)

// The backend serializes timestamps without a zone offset; newer deployments
// send full RFC 3339. ParseTimestamp accepts both.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func ParseTimestamp(value string) (time.Time, bool) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func FormatTimeAgo(value string) string {
	t, ok := ParseTimestamp(value)
	if !ok {
		return value
	}

	diff := time.Since(t)
	if hours := int(diff.Hours()); hours > 0 {
		return fmt.Sprintf("%dh ago", hours)
	}
	return fmt.Sprintf("%dm ago", int(diff.Minutes()))
}

func FormatTimeLeft(value string) string {
	t, ok := ParseTimestamp(value)
	if !ok {
		return value
	}

	diff := time.Until(t)
	if diff <= 0 {
		return "Expired"
	}
	if days := int(diff.Hours() / 24); days > 0 {
		return fmt.Sprintf("%dd left", days)
	}
	return fmt.Sprintf("%dh left", int(diff.Hours()))
}
