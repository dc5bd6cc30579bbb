package dates

import (
	"encoding/json"
	"strconv"
	"strings"
)

// SearchKey is the session key holding the last submitted search.
const SearchKey = "lastSearch"

// SessionStore is a key-value store scoped to one browser session.
type SessionStore interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Remove(key string) error
}

// SearchSnapshot holds the parameters of the last search a visitor submitted.
type SearchSnapshot struct {
	CheckIn    string `json:"checkIn"`
	CheckOut   string `json:"checkOut"`
	Guests     int    `json:"guests"`
	PropertyID string `json:"propertyId"`
}

// Nights returns the number of nights covered by the snapshot.
func (s SearchSnapshot) Nights() int {
	return CalculateNights(s.CheckIn, s.CheckOut)
}

// DefaultSearch is a one-night stay for one guest starting today.
func DefaultSearch() SearchSnapshot {
	checkIn := Today()
	return SearchSnapshot{
		CheckIn:  checkIn,
		CheckOut: AddDays(checkIn, 1),
		Guests:   1,
	}
}

// StoreSearch normalizes s and writes it to the store, replacing any previous
// search. Store failures are logged. The normalized snapshot is returned.
func StoreSearch(store SessionStore, s SearchSnapshot) SearchSnapshot {
	normalized := SearchSnapshot{
		CheckIn:    Normalize(s.CheckIn, 0),
		CheckOut:   Normalize(s.CheckOut, 1),
		Guests:     max(1, s.Guests),
		PropertyID: strings.TrimSpace(s.PropertyID),
	}

	if store == nil {
		logger.Printf("[WARNING] dates: no session store, search not stored")
		return normalized
	}

	// Clear first so a failed write never leaves a stale search behind.
	if err := store.Remove(SearchKey); err != nil {
		logger.Printf("[WARNING] dates: error clearing stored search: %v", err)
	}

	data, err := json.Marshal(normalized)
	if err != nil {
		logger.Printf("[WARNING] dates: error encoding search parameters: %v", err)
		return normalized
	}
	if err := store.Set(SearchKey, string(data)); err != nil {
		logger.Printf("[WARNING] dates: error storing search parameters: %v", err)
	}
	return normalized
}

// RetrieveSearch reads the last stored search. Missing or malformed data
// yields DefaultSearch.
func RetrieveSearch(store SessionStore) SearchSnapshot {
	if store == nil {
		return DefaultSearch()
	}

	raw, ok, err := store.Get(SearchKey)
	if err != nil {
		logger.Printf("[WARNING] dates: error retrieving booking search: %v", err)
		return DefaultSearch()
	}
	if !ok || strings.TrimSpace(raw) == "" {
		return DefaultSearch()
	}

	var stored storedSearch
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		logger.Printf("[WARNING] dates: error decoding booking search: %v", err)
		return DefaultSearch()
	}

	return SearchSnapshot{
		CheckIn:    Normalize(stored.CheckIn, 0),
		CheckOut:   Normalize(stored.CheckOut, 1),
		Guests:     max(1, int(stored.Guests)),
		PropertyID: stored.PropertyID,
	}
}

type storedSearch struct {
	CheckIn    string     `json:"checkIn"`
	CheckOut   string     `json:"checkOut"`
	Guests     guestCount `json:"guests"`
	PropertyID string     `json:"propertyId"`
}

// guestCount accepts a JSON number or a numeric string. Anything else reads as zero.
type guestCount int

func (g *guestCount) UnmarshalJSON(b []byte) error {
	var n json.Number
	if err := json.Unmarshal(b, &n); err == nil {
		if v, err := strconv.Atoi(n.String()); err == nil {
			*g = guestCount(v)
			return nil
		}
	}

	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		if v, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
			*g = guestCount(v)
			return nil
		}
	}

	*g = 0
	return nil
}
