// Package validation guards URLs that leave the engine: links and image
// sources written into pages, and the address handed to the browser.
package validation

import (
	"fmt"
	"net/url"
	"strings"
)

// Fallback replaces unsafe hrefs.
const Fallback = "#"

var linkSchemes = map[string]bool{"http": true, "https": true, "mailto": true, "tel": true}

// SafeHref returns href when it is relative, a fragment, or uses http,
// https, mailto or tel. Anything else, javascript: included, becomes "#".
func SafeHref(href string) string {
	href = strings.TrimSpace(href)
	if href == "" {
		return Fallback
	}

	u, err := url.Parse(href)
	if err != nil {
		return Fallback
	}
	if u.Scheme == "" {
		if strings.HasPrefix(href, "//") {
			return Fallback
		}

		return href
	}
	if linkSchemes[strings.ToLower(u.Scheme)] {
		return href
	}

	return Fallback
}

// SafeImage returns src for http(s), relative paths and data:image URIs,
// and "" otherwise so callers can drop the image.
func SafeImage(src string) string {
	src = strings.TrimSpace(src)
	if src == "" {
		return ""
	}

	lower := strings.ToLower(src)
	if strings.HasPrefix(lower, "data:") {
		if strings.HasPrefix(lower, "data:image/") && !strings.HasPrefix(lower, "data:image/svg") {
			return src
		}

		return ""
	}

	u, err := url.Parse(src)
	if err != nil {
		return ""
	}
	switch strings.ToLower(u.Scheme) {
	case "":
		if strings.HasPrefix(src, "//") {
			return ""
		}

		return src
	case "http", "https":
		return src
	}

	return ""
}

// ValidateURL validates URLs handed to the browser auto-open helper and
// used as the public base of the bundle.
func ValidateURL(rawURL string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("invalid URL scheme: %s (only http/https allowed)", parsed.Scheme)
	}

	for _, char := range []string{";", "|", "`", "$", "<", ">", "\"", "'", "\\", "\n", "\r", " "} {
		if strings.Contains(rawURL, char) {
			return fmt.Errorf("URL contains forbidden character %q", char)
		}
	}

	if parsed.Host == "" {
		return fmt.Errorf("URL must have a valid hostname")
	}

	return nil
}
