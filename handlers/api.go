package handlers

import (
	"casa_hotels_go/db"
	"casa_hotels_go/models"
	"casa_hotels_go/services"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

// PropertyResponse is the public JSON shape of a property
type PropertyResponse struct {
	models.Property
	Amenities []string `json:"amenities"`
	MainPhoto string   `json:"mainPhoto"`
}

func newPropertyResponse(p models.Property) PropertyResponse {
	return PropertyResponse{
		Property:  p,
		Amenities: p.AmenityNames(),
		MainPhoto: p.MainPhoto(),
	}
}

// APIPropertiesHandler lists the catalogue
func APIPropertiesHandler(c echo.Context) error {
	properties, err := services.GetAllProperties(db.DB)
	if err != nil {
		c.Logger().Errorf("Failed to list properties: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list properties")
	}

	out := make([]PropertyResponse, 0, len(properties))
	for _, p := range properties {
		out = append(out, newPropertyResponse(p))
	}
	return c.JSON(http.StatusOK, out)
}

// APIPropertyHandler returns one property by slug
func APIPropertyHandler(c echo.Context) error {
	property, err := services.GetPropertyBySlug(db.DB, c.Param("slug"))
	if err != nil {
		if errors.Is(err, services.ErrPropertyNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Property not found")
		}
		c.Logger().Errorf("Failed to load property: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load property")
	}
	return c.JSON(http.StatusOK, newPropertyResponse(*property))
}
