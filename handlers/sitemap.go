package handlers

import (
	"encoding/xml"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

type SitemapURL struct {
	Loc        string  `xml:"loc"`
	LastMod    string  `xml:"lastmod,omitempty"`
	ChangeFreq string  `xml:"changefreq,omitempty"`
	Priority   float32 `xml:"priority,omitempty"`
}

type SitemapURLSet struct {
	XMLName string       `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []SitemapURL `xml:"url"`
}

// GetSitemapHandler generates a dynamic XML sitemap
func GetSitemapHandler(c echo.Context) error {
	cfg := getConfig(c)
	baseURL := strings.TrimSuffix(cfg.AppURL, "/")

	urls := []SitemapURL{
		{Loc: baseURL + "/", ChangeFreq: "weekly", Priority: 1.0},
		{Loc: baseURL + "/properties", ChangeFreq: "weekly", Priority: 0.9},
		{Loc: baseURL + "/about", ChangeFreq: "monthly", Priority: 0.6},
		{Loc: baseURL + "/contact", ChangeFreq: "monthly", Priority: 0.6},
	}

	// Continue with static pages if the catalogue cannot be read
	for _, p := range activeProperties(c) {
		urls = append(urls, SitemapURL{
			Loc:        baseURL + "/properties/" + p.Slug,
			ChangeFreq: "weekly",
			Priority:   0.8,
			LastMod:    p.UpdatedAt.UTC().Format(time.RFC3339),
		})
	}

	urlSet := SitemapURLSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}

	c.Response().Header().Set(echo.HeaderContentType, echo.MIMEApplicationXML)
	c.Response().WriteHeader(http.StatusOK)
	if _, err := c.Response().Write([]byte(xml.Header)); err != nil {
		return err
	}

	encoder := xml.NewEncoder(c.Response().Writer)
	encoder.Indent("", "  ")
	return encoder.Encode(urlSet)
}

// GetRobotsHandler serves robots.txt pointing at the sitemap. Booking
// redirects and the JSON API are kept out of the index.
func GetRobotsHandler(c echo.Context) error {
	cfg := getConfig(c)
	var b strings.Builder
	b.WriteString("User-agent: *\n")
	if !cfg.IsProduction() {
		b.WriteString("Disallow: /\n")
	} else {
		b.WriteString("Allow: /\n")
		b.WriteString("Disallow: /book/\n")
		b.WriteString("Disallow: /api/\n")
		b.WriteString("Disallow: /search\n")
	}
	b.WriteString("\nSitemap: " + strings.TrimSuffix(cfg.AppURL, "/") + "/sitemap.xml\n")
	return c.String(http.StatusOK, b.String())
}
