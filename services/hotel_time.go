package services

import (
	"casa_hotels_go/services/dates"
	"log"
	"time"
)

var hotelNow = time.Now

// HotelLocation loads the hotels' timezone, falling back to UTC
func HotelLocation(name string) *time.Location {
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("[WARNING] Unknown hotel timezone %q, using UTC: %v", name, err)
		return time.UTC
	}
	return loc
}

// HotelToday is the calendar day currently observed at the hotels. It is used
// for the earliest date offered by the search form; stored dates stay UTC
// canonical.
func HotelToday(loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := hotelNow().In(loc).Date()
	return dates.Canonicalize(time.Date(y, m, d, 12, 0, 0, 0, time.UTC))
}
