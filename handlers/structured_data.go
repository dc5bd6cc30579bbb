package handlers

import (
	"casa_hotels_go/config"
	"casa_hotels_go/middleware"
	"casa_hotels_go/models"
	"casa_hotels_go/services"

	"github.com/labstack/echo/v4"
)

func nonceFor(c echo.Context) string {
	return middleware.GetNonce(c.Request().Context())
}

// hotelStructuredData builds the schema.org Hotel description of a property
func hotelStructuredData(cfg *config.Config, p *models.Property) map[string]interface{} {
	images := make([]string, 0, len(p.Photos))
	for _, photo := range p.Photos {
		images = append(images, absoluteURL(cfg, photo.URL))
	}
	if len(images) == 0 && p.Image != "" {
		images = append(images, absoluteURL(cfg, p.Image))
	}

	amenities := make([]map[string]interface{}, 0, len(p.Amenities))
	for _, name := range p.AmenityNames() {
		amenities = append(amenities, map[string]interface{}{
			"@type": "LocationFeatureSpecification",
			"name":  name,
			"value": true,
		})
	}

	return map[string]interface{}{
		"@context":       "https://schema.org",
		"@type":          "Hotel",
		"name":           p.Name,
		"description":    services.SanitizeText(p.Description),
		"url":            absoluteURL(cfg, "/properties/"+p.Slug),
		"image":          images,
		"address":        map[string]string{"@type": "PostalAddress", "addressLocality": p.Location},
		"amenityFeature": amenities,
	}
}
