package pages

import (
	"casa_hotels_go/templates/components"
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

type valueCard struct {
	Title string
	Text  string
}

var aboutValues = []valueCard{
	{"Trust & Safety", "Every property is verified and every booking goes through the hotel's own secure engine."},
	{"Quality First", "We work only with hotels that meet our standards for cleanliness, comfort and service."},
	{"Warm Hospitality", "Our front desk team is ready to help with any question before, during and after your stay."},
}

// About renders the company page
func About(page components.Page, siteName string) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := components.NewHTML(w)
		h.Raw(`<section class="page-header"><h1>About `).Text(siteName).Raw("</h1>")
		h.Raw("<p>Your trusted partner for comfortable and affordable accommodations.</p></section>")

		h.Raw(`<section class="about-story"><h2>Our Story</h2>`)
		h.Raw("<p>We connect travelers with quality, affordable rooms in Los Angeles. ")
		h.Raw("Everyone deserves a comfortable place to stay without breaking the bank.</p>")
		h.Raw(`<div class="two-col"><div><h3>Our Mission</h3>`)
		h.Raw("<p>To give travelers easy access to clean, comfortable and affordable accommodations while supporting the neighbourhoods we are part of.</p></div>")
		h.Raw("<div><h3>Our Vision</h3><p>To be known for reliability, guest care and a commitment to quality stays.</p></div></div>")
		h.Raw("</section>")

		h.Raw(`<section class="values"><h2>Our Values</h2><div class="value-grid">`)
		for _, v := range aboutValues {
			h.Raw(`<div class="value-card"><h3>`).Text(v.Title).Raw("</h3><p>").Text(v.Text).Raw("</p></div>")
		}
		h.Raw("</div></section>")
		return h.Err()
	})
	return components.Layout(page, body)
}

// Contact renders the contact page
func Contact(page components.Page, siteName string) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := components.NewHTML(w)
		h.Raw(`<section class="page-header"><h1>Contact Us</h1>`)
		h.Raw("<p>Questions about a reservation? Reach the front desk of ").Text(siteName).Raw(".</p></section>")
		h.Raw(`<section class="contact"><dl>`)
		h.Raw("<dt>Address</dt><dd>Los Angeles, CA</dd>")
		h.Raw(`<dt>Website</dt><dd><a href="http://www.casacaminohotel.com/" rel="noopener">casacaminohotel.com</a></dd>`)
		h.Raw("<dt>Front desk</dt><dd>Open 24 hours</dd>")
		h.Raw("</dl>")
		h.Raw(`<p>For changes to an existing booking please use the link in your confirmation email.</p></section>`)
		return h.Err()
	})
	return components.Layout(page, body)
}

// Error renders a friendly error page
func Error(v ErrorView) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := components.NewHTML(w)
		h.Raw(`<section class="error-page"><p class="error-code">`).Text(strconv.Itoa(v.Code)).Raw("</p>")
		h.Raw("<h1>").Text(v.Title).Raw("</h1>")
		h.Raw("<p>").Text(v.Message).Raw("</p>")
		h.Raw(`<a class="btn" href="/">Back to home</a></section>`)
		return h.Err()
	})
	return components.Layout(v.Page, body)
}
