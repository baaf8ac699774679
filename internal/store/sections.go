package store

// SectionKey names a section of the storefront.
type SectionKey string

const (
	SectionHeader           SectionKey = "header"
	SectionFooter           SectionKey = "footer"
	SectionHero             SectionKey = "hero"
	SectionFeaturedProducts SectionKey = "featuredProducts"
	SectionBestSellers      SectionKey = "bestSellers"
	SectionOnSale           SectionKey = "onSale"
	SectionProducts         SectionKey = "products"
	SectionAbout            SectionKey = "about"
	SectionWhyChooseUs      SectionKey = "whyChooseUs"
	SectionFAQ              SectionKey = "faq"

	// SectionPage is the main content of a custom page. It is never part
	// of a section order.
	SectionPage SectionKey = "page"
)

// AllSections lists every known key, header and footer included.
var AllSections = []SectionKey{
	SectionHeader,
	SectionHero,
	SectionFeaturedProducts,
	SectionBestSellers,
	SectionOnSale,
	SectionProducts,
	SectionAbout,
	SectionWhyChooseUs,
	SectionFAQ,
	SectionFooter,
}

// DefaultSectionOrder is used when a configuration names no order.
var DefaultSectionOrder = []SectionKey{
	SectionHero,
	SectionFeaturedProducts,
	SectionBestSellers,
	SectionOnSale,
	SectionProducts,
	SectionAbout,
	SectionWhyChooseUs,
	SectionFAQ,
}

// IsProductSubset reports whether the key renders a product listing.
func (k SectionKey) IsProductSubset() bool {
	switch k {
	case SectionFeaturedProducts, SectionBestSellers, SectionOnSale, SectionProducts:
		return true
	}

	return false
}

// IsChrome reports whether the key is the header or footer.
func (k SectionKey) IsChrome() bool {
	return k == SectionHeader || k == SectionFooter
}

// SectionConfig toggles a section, picks its variant and carries its data.
type SectionConfig[T any] struct {
	Enabled bool   `yaml:"enabled" json:"enabled"`
	Variant string `yaml:"variant,omitempty" json:"variant,omitempty"`
	Data    T      `yaml:"data,omitempty" json:"data,omitempty"`
}

func (s SectionConfig[T]) entry() SectionEntry {
	return SectionEntry{Enabled: s.Enabled, Variant: s.Variant, Data: s.Data}
}

// SectionEntry is the untyped view of a SectionConfig.
type SectionEntry struct {
	Enabled bool
	Variant string
	Data    any
}

// Sections holds one typed SectionConfig per section kind.
type Sections struct {
	Header           SectionConfig[HeaderData]         `yaml:"header" json:"header"`
	Footer           SectionConfig[FooterData]         `yaml:"footer" json:"footer"`
	Hero             SectionConfig[HeroData]           `yaml:"hero" json:"hero"`
	FeaturedProducts SectionConfig[ProductSectionData] `yaml:"featuredProducts" json:"featuredProducts"`
	BestSellers      SectionConfig[ProductSectionData] `yaml:"bestSellers" json:"bestSellers"`
	OnSale           SectionConfig[ProductSectionData] `yaml:"onSale" json:"onSale"`
	Products         SectionConfig[ProductSectionData] `yaml:"products" json:"products"`
	About            SectionConfig[AboutData]          `yaml:"about" json:"about"`
	WhyChooseUs      SectionConfig[WhyChooseUsData]    `yaml:"whyChooseUs" json:"whyChooseUs"`
	FAQ              SectionConfig[FAQData]            `yaml:"faq" json:"faq"`
}

// Lookup returns the section for key. ok is false for unknown keys.
func (s *Sections) Lookup(key SectionKey) (SectionEntry, bool) {
	switch key {
	case SectionHeader:
		return s.Header.entry(), true
	case SectionFooter:
		return s.Footer.entry(), true
	case SectionHero:
		return s.Hero.entry(), true
	case SectionFeaturedProducts:
		return s.FeaturedProducts.entry(), true
	case SectionBestSellers:
		return s.BestSellers.entry(), true
	case SectionOnSale:
		return s.OnSale.entry(), true
	case SectionProducts:
		return s.Products.entry(), true
	case SectionAbout:
		return s.About.entry(), true
	case SectionWhyChooseUs:
		return s.WhyChooseUs.entry(), true
	case SectionFAQ:
		return s.FAQ.entry(), true
	}

	return SectionEntry{}, false
}

// HeaderData configures the header.
type HeaderData struct {
	Announcement string `yaml:"announcement,omitempty" json:"announcement,omitempty"`
	CallToAction string `yaml:"callToAction,omitempty" json:"callToAction,omitempty"`
	CallToLink   string `yaml:"callToLink,omitempty" json:"callToLink,omitempty"`
}

// FooterData configures the footer.
type FooterData struct {
	Copyright   string `yaml:"copyright,omitempty" json:"copyright,omitempty"`
	ShowContact bool   `yaml:"showContact,omitempty" json:"showContact,omitempty"`
	ShowSocial  bool   `yaml:"showSocial,omitempty" json:"showSocial,omitempty"`
}

// HeroData configures the hero banner.
type HeroData struct {
	Title      string `yaml:"title,omitempty" json:"title,omitempty"`
	Subtitle   string `yaml:"subtitle,omitempty" json:"subtitle,omitempty"`
	ButtonText string `yaml:"buttonText,omitempty" json:"buttonText,omitempty"`
	ButtonLink string `yaml:"buttonLink,omitempty" json:"buttonLink,omitempty"`
	Image      string `yaml:"image,omitempty" json:"image,omitempty"`
}

// ProductSectionData configures a product listing section. A zero Limit
// means no limit.
type ProductSectionData struct {
	Title    string `yaml:"title,omitempty" json:"title,omitempty"`
	Subtitle string `yaml:"subtitle,omitempty" json:"subtitle,omitempty"`
	Limit    int    `yaml:"limit,omitempty" json:"limit,omitempty" validate:"gte=0"`
}

// AboutData configures the about section.
type AboutData struct {
	Title   string `yaml:"title,omitempty" json:"title,omitempty"`
	Content string `yaml:"content,omitempty" json:"content,omitempty"`
	Image   string `yaml:"image,omitempty" json:"image,omitempty"`
}

// Feature is one reason in the why-choose-us section.
type Feature struct {
	Icon        string `yaml:"icon,omitempty" json:"icon,omitempty"`
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// WhyChooseUsData configures the features section.
type WhyChooseUsData struct {
	Title    string    `yaml:"title,omitempty" json:"title,omitempty"`
	Features []Feature `yaml:"features,omitempty" json:"features,omitempty"`
}

// FAQItem is a question and its answer.
type FAQItem struct {
	Question string `yaml:"question" json:"question"`
	Answer   string `yaml:"answer" json:"answer"`
}

// FAQData configures the FAQ section.
type FAQData struct {
	Title string    `yaml:"title,omitempty" json:"title,omitempty"`
	Items []FAQItem `yaml:"items,omitempty" json:"items,omitempty"`
}

// PageData is the composed data of a custom page body. Content is empty
// for product listing pages.
type PageData struct {
	Title   string
	Content string
}

// ProductListing is the composed data of a product section.
type ProductListing struct {
	ProductSectionData
	Products []Product
}

// ProductsFor resolves the product subset for a product section key in
// catalog order, applying limit when positive.
func (c *Configuration) ProductsFor(key SectionKey, limit int) []Product {
	var out []Product
	for _, p := range c.Products {
		var match bool
		switch key {
		case SectionFeaturedProducts:
			match = p.Featured
		case SectionBestSellers:
			match = p.BestSeller
		case SectionOnSale:
			match = p.OnSale
		case SectionProducts:
			match = true
		}
		if !match {
			continue
		}
		out = append(out, p)
		if limit > 0 && len(out) == limit {
			break
		}
	}

	return out
}
