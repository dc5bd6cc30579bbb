package components

import (
	"casa_hotels_go/middleware"
	"casa_hotels_go/models"
	"context"
	"io"
	"time"

	"github.com/a-h/templ"
)

// NavLink is one entry of the main navigation
type NavLink struct {
	Label string
	Href  string
}

// MainNav lists the site sections in display order
var MainNav = []NavLink{
	{Label: "Home", Href: "/"},
	{Label: "Properties", Href: "/properties"},
	{Label: "About", Href: "/about"},
	{Label: "Contact", Href: "/contact"},
}

// Page carries what every page layout needs
type Page struct {
	SEO         *models.SEO
	SiteName    string
	CurrentPath string
	Head        templ.Component // extra head markup, e.g. structured data
}

// SEOHead renders title, description, canonical, Open Graph and Twitter tags
func SEOHead(seo *models.SEO) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if seo == nil {
			return nil
		}
		h := NewHTML(w)
		h.Raw("<title>").Text(seo.Title).Raw("</title>\n")
		h.Raw(`<meta name="description"`).Attr("content", seo.Description).Raw(">\n")
		if seo.Keywords != "" {
			h.Raw(`<meta name="keywords"`).Attr("content", seo.Keywords).Raw(">\n")
		}
		h.Raw(`<meta name="robots"`).Attr("content", seo.Robots()).Raw(">\n")
		if seo.Canonical != "" {
			h.Raw(`<link rel="canonical"`).URLAttr("href", seo.Canonical).Raw(">\n")
			h.Raw(`<meta property="og:url"`).Attr("content", seo.Canonical).Raw(">\n")
		}
		h.Raw(`<meta property="og:title"`).Attr("content", seo.Title).Raw(">\n")
		h.Raw(`<meta property="og:description"`).Attr("content", seo.Description).Raw(">\n")
		h.Raw(`<meta property="og:type"`).Attr("content", seo.OGType).Raw(">\n")
		if seo.SiteName != "" {
			h.Raw(`<meta property="og:site_name"`).Attr("content", seo.SiteName).Raw(">\n")
		}
		if seo.Locale != "" {
			h.Raw(`<meta property="og:locale"`).Attr("content", seo.Locale).Raw(">\n")
		}
		if seo.Image != "" {
			h.Raw(`<meta property="og:image"`).Attr("content", seo.Image).Raw(">\n")
			h.Raw(`<meta name="twitter:image"`).Attr("content", seo.Image).Raw(">\n")
			if seo.ImageAlt != "" {
				h.Raw(`<meta property="og:image:alt"`).Attr("content", seo.ImageAlt).Raw(">\n")
			}
		}
		h.Raw(`<meta name="twitter:card"`).Attr("content", seo.TwitterCard).Raw(">\n")
		h.Raw(`<meta name="twitter:title"`).Attr("content", seo.Title).Raw(">\n")
		h.Raw(`<meta name="twitter:description"`).Attr("content", seo.Description).Raw(">\n")
		return h.Err()
	})
}

// Layout wraps body in the site shell
func Layout(page Page, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		nonce := middleware.GetNonce(ctx)
		h := NewHTML(w)

		h.Raw("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n")
		h.Raw(`<meta charset="utf-8">` + "\n")
		h.Raw(`<meta name="viewport" content="width=device-width, initial-scale=1">` + "\n")
		h.Component(ctx, SEOHead(page.SEO))
		h.Raw(`<link rel="icon" type="image/png"`).Attr("href", middleware.AssetURL(ctx, "images/favicon.png")).Raw(">\n")
		h.Raw(`<link rel="stylesheet"`).Attr("href", middleware.AssetURL(ctx, "css/style.css")).Raw(">\n")
		h.Component(ctx, page.Head)
		h.Raw("</head>\n<body>\n")

		h.Raw(`<header class="site-header"><nav class="nav"><a class="brand" href="/">`).Text(page.SiteName).Raw("</a><ul>")
		for _, link := range MainNav {
			h.Raw("<li><a").Attr("href", link.Href)
			if link.Href == page.CurrentPath {
				h.Raw(` aria-current="page" class="active"`)
			}
			h.Raw(">").Text(link.Label).Raw("</a></li>")
		}
		h.Raw("</ul></nav></header>\n")

		h.Raw("<main>\n").Component(ctx, body).Raw("\n</main>\n")

		h.Raw(`<footer class="site-footer"><p>&copy; `).Text(time.Now().Format("2006")).Raw(" ").Text(page.SiteName).Raw(". All rights reserved.</p></footer>\n")

		h.Raw(`<script`).Attr("nonce", nonce).Attr("src", middleware.AssetURL(ctx, "js/app.js")).Raw(" defer></script>\n")
		h.Raw(`<script`).Attr("nonce", nonce).Attr("src", middleware.AssetURL(ctx, "js/carousel.js")).Raw(" defer></script>\n")
		h.Raw("</body>\n</html>\n")
		return h.Err()
	})
}
