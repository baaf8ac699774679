// Package store holds the storefront configuration the rendering engine
// consumes. A Configuration is treated as an immutable snapshot per render.
package store

import (
	"math"
	"strings"

	"golang.org/x/text/language"
)

// Layout controls the width of the page container.
type Layout string

const (
	LayoutBoxed Layout = "boxed"
	LayoutWide  Layout = "wide"
	LayoutFull  Layout = "full"
)

// PageType selects how a custom page renders its main content.
type PageType string

const (
	PageTypeContent  PageType = "content"
	PageTypeProducts PageType = "products"
)

// Configuration is the aggregate root of a storefront.
type Configuration struct {
	Branding     Branding     `yaml:"branding" json:"branding" validate:"required"`
	ThemeID      string       `yaml:"theme,omitempty" json:"theme,omitempty"`
	Colors       Colors       `yaml:"colors,omitempty" json:"colors,omitempty"`
	Font         string       `yaml:"font,omitempty" json:"font,omitempty"`
	Layout       Layout       `yaml:"layout,omitempty" json:"layout,omitempty" validate:"omitempty,oneof=boxed wide full"`
	Currency     string       `yaml:"currency,omitempty" json:"currency,omitempty" validate:"max=4"`
	Locale       string       `yaml:"locale,omitempty" json:"locale,omitempty" validate:"omitempty,bcp47_language_tag"`
	SectionOrder []SectionKey `yaml:"sectionOrder,omitempty" json:"sectionOrder,omitempty"`
	Sections     Sections     `yaml:"sections" json:"sections"`
	Navigation   Navigation   `yaml:"navigation,omitempty" json:"navigation,omitempty"`
	Contact      Contact      `yaml:"contact,omitempty" json:"contact,omitempty"`
	Messaging    Messaging    `yaml:"messaging,omitempty" json:"messaging,omitempty"`
	Products     []Product    `yaml:"products,omitempty" json:"products,omitempty" validate:"dive"`
	Pages        []CustomPage `yaml:"pages,omitempty" json:"pages,omitempty" validate:"dive"`
}

// Branding identifies the store.
type Branding struct {
	Name        string `yaml:"name" json:"name" validate:"required,max=120"`
	Description string `yaml:"description,omitempty" json:"description,omitempty" validate:"max=500"`
	Logo        string `yaml:"logo,omitempty" json:"logo,omitempty"`
	Favicon     string `yaml:"favicon,omitempty" json:"favicon,omitempty"`
}

// Colors are explicit palette overrides. Blank values defer to the theme.
type Colors struct {
	Primary   string `yaml:"primary,omitempty" json:"primary,omitempty" validate:"omitempty,hexcolor"`
	Secondary string `yaml:"secondary,omitempty" json:"secondary,omitempty" validate:"omitempty,hexcolor"`
	Accent    string `yaml:"accent,omitempty" json:"accent,omitempty" validate:"omitempty,hexcolor"`
}

// Link is a navigation entry.
type Link struct {
	Label string `yaml:"label" json:"label" validate:"required"`
	URL   string `yaml:"url" json:"url" validate:"required"`
}

// Navigation holds the header and footer link lists.
type Navigation struct {
	Header []Link `yaml:"header,omitempty" json:"header,omitempty" validate:"dive"`
	Footer []Link `yaml:"footer,omitempty" json:"footer,omitempty" validate:"dive"`
}

// SocialLink points at a social profile.
type SocialLink struct {
	Platform string `yaml:"platform" json:"platform" validate:"required"`
	URL      string `yaml:"url" json:"url" validate:"required"`
}

// Contact is shown in the footer.
type Contact struct {
	Email   string       `yaml:"email,omitempty" json:"email,omitempty" validate:"omitempty,email"`
	Phone   string       `yaml:"phone,omitempty" json:"phone,omitempty"`
	Address string       `yaml:"address,omitempty" json:"address,omitempty"`
	Social  []SocialLink `yaml:"social,omitempty" json:"social,omitempty" validate:"dive"`
}

// MessageFlags selects which tokens of a message template are substituted.
type MessageFlags struct {
	ProductName        bool `yaml:"productName" json:"productName"`
	ProductPrice       bool `yaml:"productPrice" json:"productPrice"`
	ProductDescription bool `yaml:"productDescription" json:"productDescription"`
	StoreName          bool `yaml:"storeName" json:"storeName"`
}

// Messaging configures the WhatsApp order button on product cards.
type Messaging struct {
	Enabled    bool         `yaml:"enabled" json:"enabled"`
	Phone      string       `yaml:"phone,omitempty" json:"phone,omitempty"`
	Template   string       `yaml:"template,omitempty" json:"template,omitempty"`
	ButtonText string       `yaml:"buttonText,omitempty" json:"buttonText,omitempty"`
	Include    MessageFlags `yaml:"include" json:"include"`
}

// Product is read-only to the engine.
type Product struct {
	ID                 string   `yaml:"id,omitempty" json:"id,omitempty"`
	Name               string   `yaml:"name" json:"name" validate:"required"`
	Description        string   `yaml:"description,omitempty" json:"description,omitempty"`
	Price              float64  `yaml:"price" json:"price" validate:"gte=0"`
	OriginalPrice      float64  `yaml:"originalPrice,omitempty" json:"originalPrice,omitempty" validate:"gte=0"`
	DiscountPercentage int      `yaml:"discountPercentage,omitempty" json:"discountPercentage,omitempty" validate:"gte=0,lte=100"`
	Category           string   `yaml:"category,omitempty" json:"category,omitempty"`
	Image              string   `yaml:"image,omitempty" json:"image,omitempty"`
	Featured           bool     `yaml:"featured,omitempty" json:"featured,omitempty"`
	BestSeller         bool     `yaml:"bestSeller,omitempty" json:"bestSeller,omitempty"`
	OnSale             bool     `yaml:"onSale,omitempty" json:"onSale,omitempty"`
	Tags               []string `yaml:"tags,omitempty" json:"tags,omitempty"`
}

// Discount returns the percentage badge value, zero meaning no badge.
// An explicit percentage wins over one derived from the original price.
func (p Product) Discount() int {
	if p.DiscountPercentage > 0 {
		return p.DiscountPercentage
	}
	if p.OriginalPrice > p.Price && p.OriginalPrice > 0 {
		return int(math.Round((p.OriginalPrice - p.Price) / p.OriginalPrice * 100))
	}

	return 0
}

// HasOriginalPrice reports whether a strike-through price is shown.
func (p Product) HasOriginalPrice() bool {
	return p.OriginalPrice > p.Price
}

// CustomPage is rendered into <slug>.html when published.
type CustomPage struct {
	ID              string   `yaml:"id,omitempty" json:"id,omitempty"`
	Title           string   `yaml:"title" json:"title" validate:"required"`
	Slug            string   `yaml:"slug" json:"slug" validate:"required,slug"`
	Content         string   `yaml:"content,omitempty" json:"content,omitempty"`
	MetaTitle       string   `yaml:"metaTitle,omitempty" json:"metaTitle,omitempty"`
	MetaDescription string   `yaml:"metaDescription,omitempty" json:"metaDescription,omitempty"`
	Published       bool     `yaml:"published" json:"published"`
	Type            PageType `yaml:"type,omitempty" json:"type,omitempty" validate:"omitempty,oneof=content products"`
	ShowInHeader    bool     `yaml:"showInHeader,omitempty" json:"showInHeader,omitempty"`
	ShowInFooter    bool     `yaml:"showInFooter,omitempty" json:"showInFooter,omitempty"`
}

// FileName is the output path of the page.
func (p CustomPage) FileName() string {
	return p.Slug + ".html"
}

// DocumentTitle prefers the meta title.
func (p CustomPage) DocumentTitle() string {
	if strings.TrimSpace(p.MetaTitle) != "" {
		return p.MetaTitle
	}

	return p.Title
}

// PublishedPages returns published pages in configuration order.
func (c *Configuration) PublishedPages() []CustomPage {
	var pages []CustomPage
	for _, p := range c.Pages {
		if p.Published {
			pages = append(pages, p)
		}
	}

	return pages
}

// HeaderLinks is the configured header navigation followed by published
// pages flagged for the header.
func (c *Configuration) HeaderLinks() []Link {
	links := append([]Link(nil), c.Navigation.Header...)
	for _, p := range c.PublishedPages() {
		if p.ShowInHeader {
			links = append(links, Link{Label: p.Title, URL: p.FileName()})
		}
	}

	return links
}

// FooterLinks mirrors HeaderLinks for the footer.
func (c *Configuration) FooterLinks() []Link {
	links := append([]Link(nil), c.Navigation.Footer...)
	for _, p := range c.PublishedPages() {
		if p.ShowInFooter {
			links = append(links, Link{Label: p.Title, URL: p.FileName()})
		}
	}

	return links
}

var rtlBases = map[string]bool{"ar": true, "he": true, "fa": true, "ur": true}

// Language returns the canonical locale tag, "en" when unparsable.
func (c *Configuration) Language() language.Tag {
	tag, err := language.Parse(c.Locale)
	if err != nil || tag == language.Und {
		return language.English
	}

	return tag
}

// Direction is "rtl" for right-to-left scripts, "ltr" otherwise.
func (c *Configuration) Direction() string {
	base, _ := c.Language().Base()
	if rtlBases[base.String()] {
		return "rtl"
	}

	return "ltr"
}
