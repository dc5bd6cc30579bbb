package services

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	descriptionPolicy = bluemonday.UGCPolicy()
	plainTextPolicy   = bluemonday.StrictPolicy()
)

// SanitizeDescription keeps basic formatting in property copy and drops
// scripts, handlers and unsafe links.
func SanitizeDescription(s string) string {
	return descriptionPolicy.Sanitize(s)
}

// SanitizeText strips all markup and returns plain text. The result is not
// HTML; templates escape it on output.
func SanitizeText(s string) string {
	return strings.TrimSpace(html.UnescapeString(plainTextPolicy.Sanitize(s)))
}
