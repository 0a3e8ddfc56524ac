// Package report renders detected moments for humans: M:SS timestamps
// and a markdown summary.
package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mzakyi/viral-clip-generator/internal/types"
)

// FormatTimestamp renders seconds as "M:SS": integer minutes with no
// leading zero, two-digit zero-padded seconds. Negative input renders
// as 0:00.
func FormatTimestamp(seconds float64) string {
	if seconds < 0 || seconds != seconds { // negative or NaN
		seconds = 0
	}
	total := int(seconds)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

// FormatTimestampAny is the loose-input variant for values coming out of
// JSON or user flags: numeric types and numeric strings are formatted,
// anything unparsable formats as 0:00. Never errors.
func FormatTimestampAny(v any) string {
	switch t := v.(type) {
	case float64:
		return FormatTimestamp(t)
	case float32:
		return FormatTimestamp(float64(t))
	case int:
		return FormatTimestamp(float64(t))
	case int64:
		return FormatTimestamp(float64(t))
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return FormatTimestamp(0)
		}
		return FormatTimestamp(f)
	default:
		return FormatTimestamp(0)
	}
}

const maxTextPreview = 100

// GenerateReport renders a markdown summary of the moments, in the order
// given: callers are expected to pass an already ranked list.
func GenerateReport(moments []types.Moment) string {
	if len(moments) == 0 {
		return "No high-potential viral moments detected.\n"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d viral-worthy moments:\n\n", len(moments))
	for i, m := range moments {
		fmt.Fprintf(&b, "#%d - %s to %s\n", i+1, FormatTimestamp(m.Start), FormatTimestamp(m.End))
		fmt.Fprintf(&b, "   Score: %.3f | Duration: %.0fs\n", m.Score, m.Duration())
		fmt.Fprintf(&b, "   Reasons: %s\n", strings.Join(m.Reasons, ", "))
		if m.Text != "" {
			fmt.Fprintf(&b, "   Text: %s\n", preview(m.Text))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func preview(s string) string {
	r := []rune(s)
	if len(r) <= maxTextPreview {
		return s
	}
	return string(r[:maxTextPreview]) + "..."
}
