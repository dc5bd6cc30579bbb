package handlers

import (
	"casa_hotels_go/db"
	"casa_hotels_go/middleware"
	"casa_hotels_go/services"
	"casa_hotels_go/services/dates"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

// SearchRequest is the availability form. Guests stays a string so a bad value
// degrades to one guest instead of failing the bind.
type SearchRequest struct {
	CheckIn    string      `form:"check_in" query:"check_in" json:"checkIn"`
	CheckOut   string      `form:"check_out" query:"check_out" json:"checkOut"`
	Guests     guestsParam `form:"guests" query:"guests" json:"guests"`
	PropertyID string      `form:"property_id" query:"property_id" json:"propertyId"`
}

// guestsParam accepts 2 or "2" in JSON bodies
type guestsParam string

func (g *guestsParam) UnmarshalJSON(b []byte) error {
	*g = guestsParam(strings.Trim(string(b), `"`))
	return nil
}

// SearchResponse is the JSON view of a stored search
type SearchResponse struct {
	Search  dates.SearchSnapshot `json:"search"`
	Nights  int                  `json:"nights"`
	Display SearchDisplay        `json:"display"`
}

// SearchDisplay holds the dates formatted for people
type SearchDisplay struct {
	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`
}

func newSearchResponse(s dates.SearchSnapshot, style dates.Style) SearchResponse {
	return SearchResponse{
		Search: s,
		Nights: s.Nights(),
		Display: SearchDisplay{
			CheckIn:  dates.FormatForDisplay(s.CheckIn, style),
			CheckOut: dates.FormatForDisplay(s.CheckOut, style),
		},
	}
}

// snapshot converts the request, keeping fields from base that were left empty
func (r SearchRequest) snapshot(base dates.SearchSnapshot) dates.SearchSnapshot {
	s := base
	if v := strings.TrimSpace(r.CheckIn); v != "" {
		s.CheckIn = v
	}
	if v := strings.TrimSpace(r.CheckOut); v != "" {
		s.CheckOut = v
	}
	if v := strings.TrimSpace(string(r.Guests)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			n = 1
		}
		s.Guests = n
	}
	if r.PropertyID != "" {
		s.PropertyID = services.SanitizeText(r.PropertyID)
	}
	return s
}

// orderStay pushes check-out to the day after check-in when the form sent an
// empty or inverted range
func orderStay(s dates.SearchSnapshot) dates.SearchSnapshot {
	s.CheckIn = dates.Normalize(s.CheckIn, 0)
	s.CheckOut = dates.Normalize(s.CheckOut, 1)
	if !dates.IsAfter(s.CheckOut, s.CheckIn) {
		s.CheckOut = dates.AddDays(s.CheckIn, 1)
	}
	return s
}

// SearchSubmitHandler stores the submitted search and sends the visitor to the
// chosen property, or the catalogue when none was picked
func SearchSubmitHandler(c echo.Context) error {
	var req SearchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid search")
	}

	search := orderStay(req.snapshot(dates.SearchSnapshot{}))
	if search.PropertyID != "" {
		if _, err := services.GetPropertyBySlug(db.DB, search.PropertyID); err != nil {
			search.PropertyID = ""
		}
	}

	saved := dates.StoreSearch(middleware.GetSessionStore(c), search)

	if strings.Contains(c.Request().Header.Get(echo.HeaderAccept), echo.MIMEApplicationJSON) {
		return c.JSON(http.StatusOK, newSearchResponse(saved, dates.StyleShort))
	}

	target := "/properties"
	if saved.PropertyID != "" {
		target += "/" + url.PathEscape(saved.PropertyID)
	}
	return c.Redirect(http.StatusSeeOther, target)
}

// APISearchHandler returns the visitor's stored search. ?style=long|compact|short
// picks the display format.
func APISearchHandler(c echo.Context) error {
	search := currentSearch(c)
	return c.JSON(http.StatusOK, newSearchResponse(search, dates.ParseStyle(c.QueryParam("style"))))
}
