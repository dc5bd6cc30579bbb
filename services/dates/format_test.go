package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatForDisplay(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		style    Style
		expected string
	}{
		{"Short", "2024-12-23", StyleShort, "12/23/2024"},
		{"Short unpadded", "2025-01-05", StyleShort, "1/5/2025"},
		{"Long", "2024-12-23", StyleLong, "Mon, December 23, 2024"},
		{"Compact", "2024-12-23", StyleCompact, "Dec 23"},
		{"Unknown style", "2024-12-23", Style("fancy"), "12/23/2024"},
		{"Timestamp input", "2024-12-23T23:59:59Z", StyleCompact, "Dec 23"},
		{"Leap day", "2024-02-29", StyleLong, "Thu, February 29, 2024"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatForDisplay(tt.input, tt.style))
		})
	}
}

func TestFormatForDisplayIgnoresHostZone(t *testing.T) {
	prevLocal := time.Local
	t.Cleanup(func() { time.Local = prevLocal })

	for _, offset := range []int{-12, -8, 0, 9, 14} {
		time.Local = time.FixedZone("", offset*60*60)
		assert.Equal(t, "Dec 23", FormatForDisplay("2024-12-23", StyleCompact))
	}
}

func TestFormatForDisplayFallsBackToToday(t *testing.T) {
	fixedClock(t, time.Date(2024, 7, 4, 12, 0, 0, 0, time.UTC))
	captureLogs(t)
	assert.Equal(t, "7/4/2024", FormatForDisplay("not-a-date", StyleShort))
}

func TestParseStyle(t *testing.T) {
	assert.Equal(t, StyleLong, ParseStyle("long"))
	assert.Equal(t, StyleCompact, ParseStyle(" Compact "))
	assert.Equal(t, StyleShort, ParseStyle("short"))
	assert.Equal(t, StyleShort, ParseStyle(""))
}
