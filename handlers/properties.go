package handlers

import (
	"casa_hotels_go/db"
	"casa_hotels_go/services"
	"casa_hotels_go/templates/components"
	"casa_hotels_go/templates/pages"
	"casa_hotels_go/templates/partials"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

// PropertiesHandler renders the catalogue
func PropertiesHandler(c echo.Context) error {
	cfg := getConfig(c)
	properties := activeProperties(c)
	search := currentSearch(c)

	return render(c, pages.Properties(pages.PropertiesView{
		Page:       newPage(c, GetSEO(cfg, "properties")),
		SearchForm: searchFormView(c, search, properties),
		Properties: properties,
		Search:     search,
	}))
}

// PropertyDetailHandler renders one property with the visitor's stay
func PropertyDetailHandler(c echo.Context) error {
	cfg := getConfig(c)
	property, err := services.GetPropertyBySlug(db.DB, c.Param("slug"))
	if err != nil {
		if errors.Is(err, services.ErrPropertyNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Property not found")
		}
		c.Logger().Errorf("Failed to load property: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load property")
	}

	search := currentSearch(c)
	form := searchFormView(c, search, nil)
	form.FixedPropertyID = property.Slug

	page := newPage(c, PropertySEO(cfg, property))
	page.Head = components.JSONLD(nonceFor(c), hotelStructuredData(cfg, property))

	return render(c, pages.PropertyDetail(pages.PropertyDetailView{
		Page:        page,
		Property:    *property,
		Description: services.SanitizeDescription(property.Description),
		SearchForm:  form,
		Search:      search,
		BookingPath: partials.BookingPath(property.Slug, search),
	}))
}
