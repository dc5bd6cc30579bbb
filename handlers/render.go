package handlers

import (
	"casa_hotels_go/config"
	"casa_hotels_go/db"
	"casa_hotels_go/middleware"
	"casa_hotels_go/models"
	"casa_hotels_go/services"
	"casa_hotels_go/services/dates"
	"casa_hotels_go/templates/components"
	"casa_hotels_go/templates/partials"
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

func render(c echo.Context, component templ.Component) error {
	return renderStatus(c, http.StatusOK, component)
}

func renderStatus(c echo.Context, status int, component templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(status)
	return component.Render(c.Request().Context(), c.Response().Writer)
}

// getConfig returns the config injected by the server, or defaults in tests
func getConfig(c echo.Context) *config.Config {
	if cfg, ok := c.Get("config").(*config.Config); ok && cfg != nil {
		return cfg
	}
	return &config.Config{
		AppURL:        "http://localhost:8080",
		SiteName:      "Casa Blanca Hotels",
		HotelTimezone: config.DefaultHotelTimezone,
	}
}

// newPage builds the layout data for the current request
func newPage(c echo.Context, seo *models.SEO) components.Page {
	cfg := getConfig(c)
	return components.Page{
		SEO:         seo,
		SiteName:    cfg.SiteName,
		CurrentPath: c.Request().URL.Path,
	}
}

// currentSearch reads the visitor's stored search, defaulting when there is none
func currentSearch(c echo.Context) dates.SearchSnapshot {
	return dates.RetrieveSearch(middleware.GetSessionStore(c))
}

// searchFormView prefills the search form for the visitor
func searchFormView(c echo.Context, search dates.SearchSnapshot, properties []models.Property) partials.SearchFormView {
	cfg := getConfig(c)
	return partials.SearchFormView{
		Search:     search,
		MinDate:    services.HotelToday(services.HotelLocation(cfg.HotelTimezone)),
		Properties: properties,
		CSRFToken:  middleware.GetCSRFToken(c),
	}
}

// activeProperties lists the catalogue, logging and degrading to empty on error
func activeProperties(c echo.Context) []models.Property {
	properties, err := services.GetAllProperties(db.DB)
	if err != nil {
		c.Logger().Errorf("Failed to load properties: %v", err)
		return nil
	}
	return properties
}
