package models

// SEO is the head metadata of a public page: title and description for
// search engines, Open Graph and Twitter tags for link previews
type SEO struct {
	Title       string
	Description string // 160 characters or fewer
	Keywords    string // comma-separated
	Canonical   string // absolute URL
	Image       string // absolute URL of the preview image
	ImageAlt    string
	OGType      string // website, hotel
	TwitterCard string // summary, summary_large_image
	SiteName    string
	Locale      string // en_US
	NoIndex     bool
}

// DefaultSEO returns a website preview with a large image card
func DefaultSEO(title, description string) *SEO {
	return &SEO{
		Title:       title,
		Description: description,
		OGType:      "website",
		TwitterCard: "summary_large_image",
		Locale:      "en_US",
	}
}

// Clone returns a copy that can be filled per request
func (s *SEO) Clone() *SEO {
	c := *s
	return &c
}

// WithCanonical sets the canonical URL
func (s *SEO) WithCanonical(url string) *SEO {
	s.Canonical = url
	return s
}

// WithImage sets the preview image and its alt text
func (s *SEO) WithImage(url, alt string) *SEO {
	s.Image = url
	s.ImageAlt = alt
	return s
}

// WithKeywords sets meta keywords
func (s *SEO) WithKeywords(keywords string) *SEO {
	s.Keywords = keywords
	return s
}

// WithSiteName sets og:site_name
func (s *SEO) WithSiteName(name string) *SEO {
	s.SiteName = name
	return s
}

// WithOGType sets the Open Graph type
func (s *SEO) WithOGType(ogType string) *SEO {
	s.OGType = ogType
	return s
}

// WithNoIndex keeps the page out of search results
func (s *SEO) WithNoIndex() *SEO {
	s.NoIndex = true
	return s
}

// Robots is the content of the robots meta tag
func (s *SEO) Robots() string {
	if s.NoIndex {
		return "noindex, nofollow"
	}
	return "index, follow"
}
