// Package messaging fills message templates and builds wa.me deep links.
package messaging

import (
	"math"
	"net/url"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/conneroisu/storecraft/internal/store"
)

// Tokens recognised in message templates.
const (
	TokenProductName        = "{productName}"
	TokenProductPrice       = "{productPrice}"
	TokenProductDescription = "{productDescription}"
	TokenStoreName          = "{storeName}"
)

const waBase = "https://wa.me/"

var printer = message.NewPrinter(language.English)

// FormatPrice renders a price the way the storefront displays it: currency
// symbol prefix, grouped thousands, decimals only when the amount has
// cents.
func FormatPrice(symbol string, price float64) string {
	if price == math.Trunc(price) && math.Abs(price) < 1e15 {
		return symbol + printer.Sprintf("%d", int64(price))
	}

	return symbol + printer.Sprintf("%.2f", price)
}

// Interpolate substitutes each token whose flag is set. Tokens with a
// cleared flag stay in the output literally. Substituted values are not
// scanned for tokens again.
func Interpolate(template string, p store.Product, storeName string, flags store.MessageFlags, currency string) string {
	var pairs []string
	if flags.ProductName {
		pairs = append(pairs, TokenProductName, p.Name)
	}
	if flags.ProductPrice {
		pairs = append(pairs, TokenProductPrice, FormatPrice(currency, p.Price))
	}
	if flags.ProductDescription {
		pairs = append(pairs, TokenProductDescription, p.Description)
	}
	if flags.StoreName {
		pairs = append(pairs, TokenStoreName, storeName)
	}
	if len(pairs) == 0 {
		return template
	}

	return strings.NewReplacer(pairs...).Replace(template)
}

// SanitizePhone keeps ASCII digits in their original order.
func SanitizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	return b.String()
}

// EncodeText percent-encodes a message for the text query parameter.
// Spaces become %20 rather than +.
func EncodeText(msg string) string {
	return strings.ReplaceAll(url.QueryEscape(msg), "+", "%20")
}

// BuildWhatsAppLink returns https://wa.me/<digits>?text=<encoded>. ok is
// false when the phone has no digits; callers render a disabled control.
func BuildWhatsAppLink(phone, msg string) (link string, ok bool) {
	digits := SanitizePhone(phone)
	if digits == "" {
		return "", false
	}

	return waBase + digits + "?text=" + EncodeText(msg), true
}

// ProductLink builds the order link of a product card.
func ProductLink(cfg *store.Configuration, p store.Product) (string, bool) {
	if !cfg.Messaging.Enabled {
		return "", false
	}
	msg := Interpolate(cfg.Messaging.Template, p, cfg.Branding.Name, cfg.Messaging.Include, cfg.Currency)

	return BuildWhatsAppLink(cfg.Messaging.Phone, msg)
}

// ContactLink builds the general chat link shown in the footer.
func ContactLink(cfg *store.Configuration) (string, bool) {
	if !cfg.Messaging.Enabled {
		return "", false
	}
	msg := Interpolate("Hello {storeName}!", store.Product{}, cfg.Branding.Name, store.MessageFlags{StoreName: true}, cfg.Currency)

	return BuildWhatsAppLink(cfg.Messaging.Phone, msg)
}
