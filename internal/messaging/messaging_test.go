package messaging

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/conneroisu/storecraft/internal/store"
)

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		symbol string
		price  float64
		want   string
	}{
		{"$", 10, "$10"},
		{"$", 0, "$0"},
		{"$", 18.5, "$18.50"},
		{"€", 1250, "€1,250"},
		{"SAR ", 1234567.891, "SAR 1,234,567.89"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatPrice(tt.symbol, tt.price))
	}
}

func TestInterpolate_DisabledTokensStayLiteral(t *testing.T) {
	got := Interpolate(
		"Hi {productName} - {productPrice}",
		store.Product{Name: "Lamp", Price: 10},
		"Shop",
		store.MessageFlags{ProductName: true, ProductPrice: false},
		"$",
	)

	assert.Equal(t, "Hi Lamp - {productPrice}", got)
}

func TestInterpolate_AllTokens(t *testing.T) {
	got := Interpolate(
		"{storeName}: {productName} {productPrice} ({productDescription}) {productName}",
		store.Product{Name: "Mug", Price: 18.5, Description: "350ml"},
		"Demo",
		store.MessageFlags{ProductName: true, ProductPrice: true, ProductDescription: true, StoreName: true},
		"$",
	)

	assert.Equal(t, "Demo: Mug $18.50 (350ml) Mug", got)
}

func TestInterpolate_NoRecursiveExpansion(t *testing.T) {
	got := Interpolate(
		"{productName}",
		store.Product{Name: "{storeName}"},
		"Shop",
		store.MessageFlags{ProductName: true, StoreName: true},
		"$",
	)

	assert.Equal(t, "{storeName}", got)
}

func TestInterpolate_MissingTokensAreFine(t *testing.T) {
	flags := store.MessageFlags{ProductName: true, ProductPrice: true, ProductDescription: true, StoreName: true}
	assert.Equal(t, "Hello there", Interpolate("Hello there", store.Product{Name: "x"}, "s", flags, "$"))
	assert.Equal(t, "{productName}", Interpolate("{productName}", store.Product{Name: "x"}, "s", store.MessageFlags{}, "$"))
}

func TestBuildWhatsAppLink(t *testing.T) {
	link, ok := BuildWhatsAppLink("+966 50 123 4567", "A&B")
	assert.True(t, ok)
	assert.Equal(t, "https://wa.me/966501234567?text=A%26B", link)

	link, ok = BuildWhatsAppLink("(555) 010-0200", "Hi Lamp - $10")
	assert.True(t, ok)
	assert.Equal(t, "https://wa.me/5550100200?text=Hi%20Lamp%20-%20%2410", link)

	for _, phone := range []string{"", "   ", "+-()"} {
		link, ok = BuildWhatsAppLink(phone, "x")
		assert.False(t, ok, phone)
		assert.Empty(t, link)
	}
}

func TestSanitizePhone(t *testing.T) {
	assert.Equal(t, "966501234567", SanitizePhone("+966 50 123 4567"))
	assert.Equal(t, "12", SanitizePhone("1٢2"))
}

func TestProductLink(t *testing.T) {
	cfg := store.Normalize(&store.Configuration{
		Branding: store.Branding{Name: "Demo"},
		Messaging: store.Messaging{
			Enabled:  true,
			Phone:    "+1 555",
			Template: "Order {productName} from {storeName}",
			Include:  store.MessageFlags{ProductName: true, StoreName: true},
		},
	})

	link, ok := ProductLink(cfg, store.Product{Name: "Lamp"})
	assert.True(t, ok)
	assert.Equal(t, "https://wa.me/1555?text=Order%20Lamp%20from%20Demo", link)

	cfg.Messaging.Enabled = false
	_, ok = ProductLink(cfg, store.Product{Name: "Lamp"})
	assert.False(t, ok)
}

func TestContactLink(t *testing.T) {
	cfg := &store.Configuration{
		Branding:  store.Branding{Name: "A&B"},
		Messaging: store.Messaging{Enabled: true, Phone: "12"},
	}

	link, ok := ContactLink(cfg)
	assert.True(t, ok)
	assert.Equal(t, "https://wa.me/12?text=Hello%20A%26B%21", link)
}
