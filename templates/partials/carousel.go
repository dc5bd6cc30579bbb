package partials

import (
	"casa_hotels_go/models"
	"casa_hotels_go/templates/components"
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// Carousel renders the photo slider for a property. The main photo comes
// first; slides are toggled by static/js/carousel.js.
func Carousel(p models.Property) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := components.NewHTML(w)

		photos := p.Photos
		if len(photos) == 0 && p.Image != "" {
			photos = []models.PropertyPhoto{{URL: p.Image, IsMain: true}}
		}
		if len(photos) == 0 {
			return nil
		}

		h.Raw(`<div class="carousel" data-carousel>`)
		for i, photo := range photos {
			h.Raw(`<figure class="carousel-slide"`).Attr("data-index", fmt.Sprint(i))
			if i > 0 {
				h.Raw(" hidden")
			}
			h.Raw("><img").URLAttr("src", photo.URL).
				Attr("alt", fmt.Sprintf("%s photo %d of %d", p.Name, i+1, len(photos)))
			if i > 0 {
				h.Raw(` loading="lazy"`)
			}
			h.Raw("></figure>")
		}
		if len(photos) > 1 {
			h.Raw(`<button type="button" class="carousel-prev" data-carousel-prev aria-label="Previous photo">&lsaquo;</button>`)
			h.Raw(`<button type="button" class="carousel-next" data-carousel-next aria-label="Next photo">&rsaquo;</button>`)
		}
		h.Raw("</div>")

		if p.GalleryCollection != "" {
			h.Raw(`<p class="gallery-link"><a target="_blank" rel="noopener"`).URLAttr("href", p.GalleryCollection).
				Raw(">View the full gallery</a></p>")
		}
		return h.Err()
	})
}
