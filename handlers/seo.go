package handlers

import (
	"casa_hotels_go/config"
	"casa_hotels_go/models"
	"casa_hotels_go/services"
	"strings"
)

const defaultOGImage = "https://res.cloudinary.com/dyskxbejq/image/upload/v1765485235/1_sbuakk.jpg"

// SEO configurations for public pages; canonical paths are joined to AppURL
var pageSEO = map[string]*models.SEO{
	"home": {
		Title:       "Casa Blanca Hotels | Comfortable Stays in Los Angeles",
		Description: "Discover comfortable, affordable hotel rooms in Los Angeles. Pick your dates and book directly with the hotel.",
		Keywords:    "Los Angeles hotel, Casa Camino Hotel, affordable hotel, book hotel room",
		Canonical:   "/",
		OGType:      "website",
		TwitterCard: "summary_large_image",
		Locale:      "en_US",
	},
	"properties": {
		Title:       "Our Hotels | Casa Blanca Hotels",
		Description: "Browse our hotels, compare amenities and check availability for your dates.",
		Keywords:    "hotels, Los Angeles accommodation, hotel amenities",
		Canonical:   "/properties",
		OGType:      "website",
		TwitterCard: "summary_large_image",
		Locale:      "en_US",
	},
	"about": {
		Title:       "About Us | Casa Blanca Hotels",
		Description: "Learn about our mission to offer clean, comfortable and affordable stays with warm hospitality.",
		Keywords:    "about Casa Blanca Hotels, hospitality, Los Angeles hotels",
		Canonical:   "/about",
		OGType:      "website",
		TwitterCard: "summary",
		Locale:      "en_US",
	},
	"contact": {
		Title:       "Contact Us | Casa Blanca Hotels",
		Description: "Get in touch with our front desk about reservations, directions or special requests.",
		Keywords:    "contact hotel, hotel front desk, reservations",
		Canonical:   "/contact",
		OGType:      "website",
		TwitterCard: "summary",
		Locale:      "en_US",
	},
}

// GetSEO returns the SEO configuration for a page
func GetSEO(cfg *config.Config, page string) *models.SEO {
	seo, ok := pageSEO[page]
	if !ok {
		return nil
	}
	return seo.Clone().
		WithCanonical(absoluteURL(cfg, seo.Canonical)).
		WithImage(defaultOGImage, cfg.SiteName).
		WithSiteName(cfg.SiteName)
}

// PropertySEO describes a property page
func PropertySEO(cfg *config.Config, p *models.Property) *models.SEO {
	seo := models.DefaultSEO(p.Name+" | "+cfg.SiteName, truncate(services.SanitizeText(p.Description), 160)).
		WithCanonical(absoluteURL(cfg, "/properties/"+p.Slug)).
		WithImage(absoluteURL(cfg, p.MainPhoto()), p.Name).
		WithKeywords(strings.Join(append([]string{p.Name, p.Location}, p.AmenityNames()...), ", ")).
		WithSiteName(cfg.SiteName).
		WithOGType("hotel")
	return seo
}

// absoluteURL joins a site path to AppURL; absolute URLs pass through
func absoluteURL(cfg *config.Config, path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return strings.TrimSuffix(cfg.AppURL, "/") + path
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return strings.TrimSpace(string(r[:n-1])) + "…"
}
