package partials

import (
	"fmt"
	"net/url"
	"strconv"

	"casa_hotels_go/services/dates"
)

// nightsLabel returns "1 night" / "3 nights"
func nightsLabel(n int) string {
	if n == 1 {
		return "1 night"
	}
	return fmt.Sprintf("%d nights", n)
}

// guestsLabel returns "1 guest" / "2 guests"
func guestsLabel(n int) string {
	if n == 1 {
		return "1 guest"
	}
	return fmt.Sprintf("%d guests", n)
}

// stayLabel renders "Dec 23 – Dec 25 · 2 nights" for a stored search
func stayLabel(s dates.SearchSnapshot) string {
	return dates.FormatForDisplay(s.CheckIn, dates.StyleCompact) + " – " +
		dates.FormatForDisplay(s.CheckOut, dates.StyleCompact) + " · " + nightsLabel(s.Nights())
}

// BookingPath is the local redirect route for a property, carrying the stay
func BookingPath(slug string, s dates.SearchSnapshot) string {
	q := url.Values{}
	q.Set("check_in", s.CheckIn)
	q.Set("check_out", s.CheckOut)
	q.Set("guests", strconv.Itoa(s.Guests))
	return "/book/" + url.PathEscape(slug) + "?" + q.Encode()
}
