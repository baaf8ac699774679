package sections

import (
	"fmt"

	"github.com/conneroisu/storecraft/internal/node"
	"github.com/conneroisu/storecraft/internal/registry"
	"github.com/conneroisu/storecraft/internal/store"
)

// Attributes the static script keys its delegated FAQ handler on.
const (
	AttrFAQToggle = "data-faq-toggle"
	AttrFAQAnswer = "data-faq-answer"
)

func accordionItem(prefix string, i int, item store.FAQItem) *node.Node {
	id := fmt.Sprintf("%s-answer-%d", prefix, i)

	n := el("div", attr("class", "sc-faq-item"),
		el("button", attr(
			"type", "button",
			"class", "sc-faq-question",
			"aria-expanded", "false",
			"aria-controls", id,
			AttrFAQToggle, id,
		), el("span", nil, text(item.Question)), el("span", attr("aria-hidden", "true"), text("+"))),
		el("div", attr("id", id, "class", "sc-faq-answer", AttrFAQAnswer, id, "hidden", "hidden"), text(item.Answer)),
	)
	n.Set(node.AttrItem, fmt.Sprint(i))

	return n
}

func simpleItem(_ string, i int, item store.FAQItem) *node.Node {
	n := el("div", attr("class", "sc-faq-item"),
		el("h3", attr("class", "sc-faq-question sc-faq-question-static"), text(item.Question)),
		el("p", attr("class", "sc-faq-answer"), text(item.Answer)),
	)
	n.Set(node.AttrItem, fmt.Sprint(i))

	return n
}

func faqSection(variant string, item func(string, int, store.FAQItem) *node.Node) registry.BuildFunc {
	return func(in registry.Input) *node.Node {
		data := dataAs[store.FAQData](in)
		if len(data.Items) == 0 {
			return nil
		}

		return wrap(in, variant, "",
			heading(data.Title, ""),
			el("div", attr("class", "sc-faq"), node.Map(data.Items, func(i int, it store.FAQItem) *node.Node {
				return item(in.ID(), i, it)
			})...),
		)
	}
}

func registerFAQ(r *registry.Registry) {
	r.MustRegister(store.SectionFAQ, "accordion", &registry.Module{
		Metadata: registry.Metadata{Name: "Accordion", Description: "Answers expand on click"},
		Build:    faqSection("accordion", accordionItem),
	})
	r.MustRegister(store.SectionFAQ, "simple", &registry.Module{
		Metadata: registry.Metadata{Name: "Simple", Description: "All answers visible"},
		Build:    faqSection("simple", simpleItem),
	})
}
