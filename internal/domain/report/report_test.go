package report

import (
	"strings"
	"testing"

	"github.com/mzakyi/viral-clip-generator/internal/types"
)

func TestFormatTimestamp(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0:00"},
		{59, "0:59"},
		{60, "1:00"},
		{125, "2:05"},
		{3599, "59:59"},
		{3600, "60:00"},
		{-5, "0:00"},
	}
	for _, tt := range tests {
		if got := FormatTimestamp(tt.in); got != tt.want {
			t.Fatalf("FormatTimestamp(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatTimestampAny(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"float", 125.0, "2:05"},
		{"int", 59, "0:59"},
		{"numeric string", "125", "2:05"},
		{"padded string", " 61 ", "1:01"},
		{"garbage string", "abc", "0:00"},
		{"nil", nil, "0:00"},
		{"bool", true, "0:00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatTimestampAny(tt.in); got != tt.want {
				t.Fatalf("FormatTimestampAny(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestGenerateReport_Empty(t *testing.T) {
	got := GenerateReport(nil)
	if !strings.Contains(got, "No high-potential viral moments detected") {
		t.Fatalf("unexpected empty report: %q", got)
	}
}

func TestGenerateReport_PreservesOrderAndFields(t *testing.T) {
	ms := []types.Moment{
		{Start: 125, End: 155, Score: 0.82, Reasons: []string{"high-energy language"}, Text: "this is INSANE", Source: types.SourceLinguistic},
		{Start: 30, End: 45, Score: 0.61, Reasons: []string{"high audio energy"}, Source: types.SourceAudioEnergy},
	}
	got := GenerateReport(ms)

	first := strings.Index(got, "#1 - 2:05 to 2:35")
	second := strings.Index(got, "#2 - 0:30 to 0:45")
	if first == -1 || second == -1 || second < first {
		t.Fatalf("report does not preserve input order:\n%s", got)
	}
	if !strings.Contains(got, "high-energy language") {
		t.Fatalf("report missing reasons:\n%s", got)
	}
	if !strings.Contains(got, "this is INSANE") {
		t.Fatalf("report missing linguistic text:\n%s", got)
	}
	if !strings.Contains(got, "Found 2 viral-worthy moments") {
		t.Fatalf("report missing header:\n%s", got)
	}
}

func TestGenerateReport_TruncatesLongText(t *testing.T) {
	long := strings.Repeat("a", 300)
	got := GenerateReport([]types.Moment{{Start: 0, End: 20, Score: 0.5, Reasons: []string{"x"}, Text: long}})
	if strings.Contains(got, long) {
		t.Fatalf("expected long text to be truncated")
	}
	if !strings.Contains(got, strings.Repeat("a", 100)+"...") {
		t.Fatalf("expected 100-rune preview with ellipsis:\n%s", got)
	}
}
