package dates

// EnumerateRange returns every calendar day in [start, endExclusive), in
// ascending order. The end day is excluded: a checkout day is not a night of
// occupancy. The result is empty when start is not before endExclusive.
func EnumerateRange[A, B DateLike](start A, endExclusive B) []string {
	from := ToPointInTime(start)
	to := ToPointInTime(endExclusive)

	days := make([]string, 0)
	if !from.Before(to) {
		return days
	}

	days = make([]string, 0, int(to.Sub(from).Hours()/24)+1)
	for cur := from; cur.Before(to); cur = cur.AddDate(0, 0, 1) {
		days = append(days, format(cur))
	}
	return days
}

// AddDays shifts v by delta calendar days (delta may be negative). Results
// past either end of years 0000..9999 clamp to 0000-01-01 or 9999-12-31.
func AddDays[T DateLike](v T, delta int) string {
	t := ToPointInTime(v).AddDate(0, 0, delta)
	switch {
	case t.Year() < 0:
		return MinDay
	case t.Year() > 9999:
		return MaxDay
	}
	return format(t)
}

// Compare returns -1, 0 or +1 as a is before, the same day as, or after b.
func Compare[A, B DateLike](a A, b B) int {
	return ToPointInTime(a).Compare(ToPointInTime(b))
}

// IsBefore reports whether a is an earlier calendar day than b.
func IsBefore[A, B DateLike](a A, b B) bool {
	return Compare(a, b) < 0
}

// IsAfter reports whether a is a later calendar day than b.
func IsAfter[A, B DateLike](a A, b B) bool {
	return Compare(a, b) > 0
}

// IsSameDay reports whether a and b denote the same calendar day.
func IsSameDay[A, B DateLike](a A, b B) bool {
	return Canonicalize(a) == Canonicalize(b)
}

// CalculateNights returns the number of nights between checkIn and checkOut.
// Inverted or zero-length stays count as one night.
func CalculateNights[A, B DateLike](checkIn A, checkOut B) int {
	return max(1, len(EnumerateRange(checkIn, checkOut)))
}
