package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHotelToday(t *testing.T) {
	prev := hotelNow
	t.Cleanup(func() { hotelNow = prev })

	la := HotelLocation("America/Los_Angeles")

	tests := []struct {
		name string
		at   time.Time
		loc  *time.Location
		want string
	}{
		{"evening in LA is still the previous UTC day", time.Date(2024, 12, 24, 5, 0, 0, 0, time.UTC), la, "2024-12-23"},
		{"morning in LA", time.Date(2024, 12, 24, 17, 0, 0, 0, time.UTC), la, "2024-12-24"},
		{"UTC", time.Date(2024, 12, 24, 5, 0, 0, 0, time.UTC), time.UTC, "2024-12-24"},
		{"nil location", time.Date(2024, 2, 29, 23, 59, 0, 0, time.UTC), nil, "2024-02-29"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hotelNow = func() time.Time { return tt.at }
			assert.Equal(t, tt.want, HotelToday(tt.loc))
		})
	}
}

func TestHotelLocation(t *testing.T) {
	assert.Equal(t, time.UTC, HotelLocation(""))
	assert.Equal(t, time.UTC, HotelLocation("Not/AZone"))
	assert.Equal(t, "America/Los_Angeles", HotelLocation("America/Los_Angeles").String())
}
