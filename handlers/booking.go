package handlers

import (
	"casa_hotels_go/db"
	"casa_hotels_go/middleware"
	"casa_hotels_go/services"
	"casa_hotels_go/services/dates"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

// BookHandler forwards the visitor to the property's booking engine with the
// stay filled in. Query parameters override the stored search and are saved.
func BookHandler(c echo.Context) error {
	property, err := services.GetPropertyBySlug(db.DB, c.Param("slug"))
	if err != nil {
		if errors.Is(err, services.ErrPropertyNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Property not found")
		}
		c.Logger().Errorf("Failed to load property: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load property")
	}

	var req SearchRequest
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid booking parameters")
	}

	search := currentSearch(c)
	if req.CheckIn != "" || req.CheckOut != "" || req.Guests != "" {
		search = orderStay(req.snapshot(search))
	}
	search.PropertyID = property.Slug
	search = dates.StoreSearch(middleware.GetSessionStore(c), search)

	target := services.GenerateBookingURL(property.BookingEngineURL, services.BookingParamsFromSearch(property.Slug, search))
	if err := services.ValidateRedirectURL(target); err != nil {
		c.Logger().Errorf("Refusing booking redirect for %s: %v", property.Slug, err)
		return echo.NewHTTPError(http.StatusBadGateway, "Booking is temporarily unavailable")
	}

	return c.Redirect(http.StatusFound, target)
}
