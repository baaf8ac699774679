package store

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const (
	DefaultCurrency      = "$"
	DefaultLocale        = "en"
	DefaultStoreName     = "My Store"
	DefaultButtonText    = "Order on WhatsApp"
	DefaultMessage       = "Hello {storeName}! I would like to order {productName} ({productPrice})."
	DefaultCopyrightText = "All rights reserved."
)

// idNamespace scopes generated ids so they never collide with ids from
// other generators.
var idNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://storecraft.dev/ids"))

// StableID derives a deterministic id from a kind, an index and a name.
func StableID(kind string, index int, name string) string {
	return uuid.NewSHA1(idNamespace, []byte(fmt.Sprintf("%s/%d/%s", kind, index, name))).String()
}

// Normalize returns a copy of cfg with defaults applied to incomplete
// optional fields. It never changes slugs, flags or variant choices and is
// idempotent.
func Normalize(cfg *Configuration) *Configuration {
	if cfg == nil {
		cfg = &Configuration{}
	}
	out := *cfg

	if strings.TrimSpace(out.Branding.Name) == "" {
		out.Branding.Name = DefaultStoreName
	}
	if strings.TrimSpace(out.Currency) == "" {
		out.Currency = DefaultCurrency
	}
	if strings.TrimSpace(out.Locale) == "" {
		out.Locale = DefaultLocale
	}
	if out.Layout == "" {
		out.Layout = LayoutBoxed
	}
	if len(out.SectionOrder) == 0 {
		out.SectionOrder = DefaultSectionOrder
	}
	out.SectionOrder = append([]SectionKey(nil), out.SectionOrder...)

	if strings.TrimSpace(out.Messaging.Template) == "" {
		out.Messaging.Template = DefaultMessage
	}
	if strings.TrimSpace(out.Messaging.ButtonText) == "" {
		out.Messaging.ButtonText = DefaultButtonText
	}

	out.Products = make([]Product, len(cfg.Products))
	for i, p := range cfg.Products {
		if p.ID == "" {
			p.ID = StableID("product", i, p.Name)
		}
		out.Products[i] = p
	}

	out.Pages = make([]CustomPage, len(cfg.Pages))
	for i, p := range cfg.Pages {
		if p.ID == "" {
			p.ID = StableID("page", i, p.Slug)
		}
		if p.Type == "" {
			p.Type = PageTypeContent
		}
		out.Pages[i] = p
	}

	return &out
}

// Default returns a complete demo storefront.
func Default() *Configuration {
	return &Configuration{
		Branding: Branding{
			Name:        "Demo Store",
			Description: "Handmade goods for everyday living.",
		},
		ThemeID:  "modern",
		Font:     "inter",
		Layout:   LayoutBoxed,
		Currency: "$",
		Locale:   "en",
		SectionOrder: []SectionKey{
			SectionHero,
			SectionFeaturedProducts,
			SectionOnSale,
			SectionAbout,
			SectionWhyChooseUs,
			SectionFAQ,
		},
		Sections: Sections{
			Header: SectionConfig[HeaderData]{Enabled: true, Data: HeaderData{CallToAction: "Shop now", CallToLink: "shop.html"}},
			Footer: SectionConfig[FooterData]{Enabled: true, Data: FooterData{ShowContact: true, ShowSocial: true}},
			Hero: SectionConfig[HeroData]{Enabled: true, Data: HeroData{
				Title:      "Welcome to Demo Store",
				Subtitle:   "Quality products, delivered with care.",
				ButtonText: "Shop now",
				ButtonLink: "#products",
			}},
			FeaturedProducts: SectionConfig[ProductSectionData]{Enabled: true, Data: ProductSectionData{Title: "Featured", Limit: 4}},
			BestSellers:      SectionConfig[ProductSectionData]{Data: ProductSectionData{Title: "Best sellers"}},
			OnSale:           SectionConfig[ProductSectionData]{Enabled: true, Variant: "list", Data: ProductSectionData{Title: "On sale"}},
			Products:         SectionConfig[ProductSectionData]{Data: ProductSectionData{Title: "All products"}},
			About: SectionConfig[AboutData]{Enabled: true, Data: AboutData{
				Title:   "About us",
				Content: "We started in a small workshop.\n\nToday we ship worldwide.",
			}},
			WhyChooseUs: SectionConfig[WhyChooseUsData]{Enabled: true, Data: WhyChooseUsData{
				Title: "Why choose us",
				Features: []Feature{
					{Icon: "truck", Title: "Fast delivery", Description: "Orders ship within two days."},
					{Icon: "shield", Title: "Secure checkout", Description: "Pay the way you like."},
				},
			}},
			FAQ: SectionConfig[FAQData]{Enabled: true, Data: FAQData{
				Title: "Questions",
				Items: []FAQItem{
					{Question: "Do you ship abroad?", Answer: "Yes, to most countries."},
					{Question: "Can I return an item?", Answer: "Within 30 days of delivery."},
				},
			}},
		},
		Navigation: Navigation{
			Header: []Link{{Label: "Home", URL: "index.html"}},
		},
		Contact: Contact{
			Email: "hello@example.com",
			Phone: "+1 555 010 0200",
		},
		Messaging: Messaging{
			Enabled: true,
			Phone:   "+1 555 010 0200",
			Include: MessageFlags{ProductName: true, ProductPrice: true, StoreName: true},
		},
		Products: []Product{
			{ID: "p-lamp", Name: "Desk Lamp", Description: "Warm light for late nights.", Price: 49, Featured: true, BestSeller: true},
			{ID: "p-mug", Name: "Stoneware Mug", Description: "Holds 350ml.", Price: 18.5, OriginalPrice: 24, OnSale: true, Featured: true},
			{ID: "p-rug", Name: "Wool Rug", Description: "Hand woven.", Price: 1250, Category: "home"},
		},
		Pages: []CustomPage{
			{ID: "pg-about", Title: "Our story", Slug: "our-story", Content: "Founded in 2019.\n\nStill growing.", Published: true, ShowInHeader: true, Type: PageTypeContent},
			{ID: "pg-shop", Title: "Shop", Slug: "shop", Published: true, ShowInHeader: true, ShowInFooter: true, Type: PageTypeProducts},
		},
	}
}
