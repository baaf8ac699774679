package composer

import "github.com/conneroisu/storecraft/internal/store"

// Step is a printable view of a plan entry.
type Step struct {
	Position int              `json:"position" yaml:"position"`
	Key      store.SectionKey `json:"key" yaml:"key"`
	Variant  string           `json:"variant" yaml:"variant"`
	Name     string           `json:"name" yaml:"name"`
	Items    int              `json:"items" yaml:"items"`
}

// Describe lists header, body and footer entries with their item counts.
func (p *Plan) Describe() []Step {
	var steps []Step
	for i, e := range p.All() {
		steps = append(steps, Step{
			Position: i + 1,
			Key:      e.Key,
			Variant:  e.Module.ID,
			Name:     e.Module.Metadata.Name,
			Items:    itemCount(e.Data),
		})
	}

	return steps
}

func itemCount(data any) int {
	switch d := data.(type) {
	case store.ProductListing:
		return len(d.Products)
	case store.FAQData:
		return len(d.Items)
	case store.WhyChooseUsData:
		return len(d.Features)
	}

	return 0
}
