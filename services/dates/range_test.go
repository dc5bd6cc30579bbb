package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEnumerateRange(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		end      string
		expected []string
	}{
		{"Two nights", "2024-12-23", "2024-12-25", []string{"2024-12-23", "2024-12-24"}},
		{"Same day", "2024-12-23", "2024-12-23", []string{}},
		{"Inverted", "2024-12-25", "2024-12-23", []string{}},
		{"Across year end", "2024-12-30", "2025-01-02", []string{"2024-12-30", "2024-12-31", "2025-01-01"}},
		{"Across leap day", "2024-02-28", "2024-03-01", []string{"2024-02-28", "2024-02-29"}},
		{"Timestamp endpoints", "2024-12-23T23:00:00Z", "2024-12-24T01:00:00Z", []string{"2024-12-23"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, EnumerateRange(tt.start, tt.end))
		})
	}
}

func TestEnumerateRangeMixedInputs(t *testing.T) {
	start := time.Date(2024, 12, 23, 22, 0, 0, 0, time.UTC)
	got := EnumerateRange(start, "2024-12-26")
	assert.Equal(t, []string{"2024-12-23", "2024-12-24", "2024-12-25"}, got)
}

func TestEnumerateRangeYieldsEachDayOnce(t *testing.T) {
	days := EnumerateRange("2023-01-01", "2025-01-01")
	assert.Len(t, days, 365+366)

	seen := make(map[string]bool, len(days))
	for i, d := range days {
		assert.False(t, seen[d], "duplicate %s", d)
		seen[d] = true
		if i > 0 {
			assert.True(t, days[i-1] < d, "%s not after %s", d, days[i-1])
		}
	}
}

func TestAddDays(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		delta    int
		expected string
	}{
		{"Leap year", "2024-02-28", 1, "2024-02-29"},
		{"Non-leap year", "2023-02-28", 1, "2023-03-01"},
		{"Year forward", "2024-12-31", 1, "2025-01-01"},
		{"Year backward", "2025-01-01", -1, "2024-12-31"},
		{"Month backward into leap day", "2024-03-01", -1, "2024-02-29"},
		{"Zero", "2024-07-04", 0, "2024-07-04"},
		{"Many days", "2024-01-01", 366, "2025-01-01"},
		{"Timestamp input", "2024-12-23T23:59:59Z", 1, "2024-12-24"},
		{"Minute precision timestamp input", "2030-03-10T23:30-08:00", 1, "2030-03-12"},
		{"Clamped at last day", "9999-12-31", 1, MaxDay},
		{"Clamped far forward", "9999-12-30", 400, MaxDay},
		{"Clamped at first day", "0000-01-01", -1, MinDay},
		{"Near upper bound", "9999-12-30", 1, "9999-12-31"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, AddDays(tt.input, tt.delta))
		})
	}
}

func TestCompare(t *testing.T) {
	assert.Equal(t, 0, Compare("2024-12-23", "2024-12-23"))
	assert.Equal(t, 0, Compare("2024-12-23T01:00:00Z", "2024-12-23T23:00:00Z"))
	assert.Negative(t, Compare("2024-12-23", "2024-12-24"))
	assert.Positive(t, Compare("2025-01-01", "2024-12-31"))
	assert.Equal(t, 0, Compare(time.Date(2024, 12, 23, 5, 0, 0, 0, time.UTC), "2024-12-23"))

	assert.True(t, IsBefore("2024-12-23", "2024-12-24"))
	assert.False(t, IsBefore("2024-12-24", "2024-12-24"))
	assert.True(t, IsAfter("2024-12-25", "2024-12-24"))
	assert.False(t, IsAfter("2024-12-23", "2024-12-24"))

	assert.True(t, IsSameDay("2024-12-23T23:59:59Z", "2024-12-23"))
	assert.True(t, IsSameDay("2024-12-23T23:59Z", "2024-12-23"))
	assert.True(t, IsSameDay("Mon, 23 Dec 2024 12:00:00 GMT", "2024-12-23"))
	assert.True(t, IsSameDay(time.Date(2024, 12, 23, 0, 0, 1, 0, time.UTC), "Dec 23, 2024"))
	assert.False(t, IsSameDay("2024-12-23", "2024-12-24"))
}

func TestCalculateNights(t *testing.T) {
	captureLogs(t)

	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		expected int
	}{
		{"Two nights", "2024-12-23", "2024-12-25", 2},
		{"Same day floors to one", "2024-12-23", "2024-12-23", 1},
		{"Inverted floors to one", "2024-12-25", "2024-12-23", 1},
		{"One week", "2024-12-23", "2024-12-30", 7},
		{"Across leap day", "2024-02-27", "2024-03-02", 4},
		{"Minute precision timestamps", "2024-12-23T15:00-08:00", "2024-12-25T11:00-08:00", 2},
		{"Unparseable", "garbage", "garbage", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CalculateNights(tt.checkIn, tt.checkOut))
		})
	}
}
