package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafeHref(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"https://example.com/a?b=c", "https://example.com/a?b=c"},
		{"http://example.com", "http://example.com"},
		{"mailto:hi@example.com", "mailto:hi@example.com"},
		{"tel:+15550100", "tel:+15550100"},
		{"about.html", "about.html"},
		{"#products", "#products"},
		{"/shop", "/shop"},
		{"", "#"},
		{"javascript:alert(1)", "#"},
		{" JavaScript:alert(1)", "#"},
		{"data:text/html;base64,xx", "#"},
		{"//evil.example", "#"},
		{"vbscript:msgbox", "#"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, SafeHref(tt.in))
		})
	}
}

func TestSafeImage(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"https://cdn.example.com/a.png", "https://cdn.example.com/a.png"},
		{"images/a.png", "images/a.png"},
		{"data:image/png;base64,iVBORw0KGgo=", "data:image/png;base64,iVBORw0KGgo="},
		{"data:image/svg+xml,<svg onload=x>", ""},
		{"data:text/html,hi", ""},
		{"javascript:alert(1)", ""},
		{"//cdn.example.com/a.png", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, SafeImage(tt.in))
		})
	}
}

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name      string
		url       string
		expectErr bool
	}{
		{"http", "http://localhost:8080", false},
		{"https with path", "https://example.com/shop", false},
		{"query", "https://example.com?a=b&c=d", false},
		{"javascript", "javascript:alert('xss')", true},
		{"file", "file:///etc/passwd", true},
		{"no host", "http://", true},
		{"command injection", "http://example.com;rm -rf /", true},
		{"backtick", "http://example.com/`id`", true},
		{"newline", "http://example.com/\nfoo", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateURL(tt.url)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
