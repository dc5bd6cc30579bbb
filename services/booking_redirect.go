package services

import (
	"casa_hotels_go/services/dates"
	"errors"
	"net/url"
	"strconv"
	"strings"
)

// ErrUnsafeBookingURL is returned when a generated URL is not http(s)
var ErrUnsafeBookingURL = errors.New("booking URL must use http or https")

// BookingParams are the stay details handed to the external booking engine
type BookingParams struct {
	PropertyID string
	CheckIn    string
	CheckOut   string
	Guests     int
}

// BookingParamsFromSearch builds params from a stored search snapshot
func BookingParamsFromSearch(propertyID string, search dates.SearchSnapshot) BookingParams {
	return BookingParams{
		PropertyID: propertyID,
		CheckIn:    search.CheckIn,
		CheckOut:   search.CheckOut,
		Guests:     search.Guests,
	}
}

// GenerateBookingURL fills the {checkIn}, {checkOut} and {guests} placeholders.
// Only the first occurrence of each placeholder is replaced. Dates are
// canonicalized first, so the engine always receives YYYY-MM-DD.
func GenerateBookingURL(template string, params BookingParams) string {
	guests := params.Guests
	if guests < 1 {
		guests = 1
	}

	out := strings.Replace(template, "{checkIn}", dates.Canonicalize(params.CheckIn), 1)
	out = strings.Replace(out, "{checkOut}", dates.Canonicalize(params.CheckOut), 1)
	out = strings.Replace(out, "{guests}", strconv.Itoa(guests), 1)
	return out
}

// ValidateRedirectURL checks that a booking URL is absolute http(s)
func ValidateRedirectURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return ErrUnsafeBookingURL
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ErrUnsafeBookingURL
	}
	return nil
}
