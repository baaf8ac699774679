package sections

import (
	"strings"

	"github.com/conneroisu/storecraft/internal/messaging"
	"github.com/conneroisu/storecraft/internal/node"
	"github.com/conneroisu/storecraft/internal/registry"
	"github.com/conneroisu/storecraft/internal/store"
)

func copyright(cfg *store.Configuration, data store.FooterData) string {
	if strings.TrimSpace(data.Copyright) != "" {
		return data.Copyright
	}

	return "© " + cfg.Branding.Name + ". " + store.DefaultCopyrightText
}

func footerLinks(cfg *store.Configuration) []*node.Node {
	return node.Map(cfg.FooterLinks(), func(i int, l store.Link) *node.Node {
		n := link(l.URL, "sc-footer-link", text(l.Label))
		n.Set(node.AttrItem, l.URL)

		return n
	})
}

func contactColumn(cfg *store.Configuration) *node.Node {
	c := cfg.Contact
	col := el("div", nil, el("h3", attr("class", "sc-footer-heading"), text("Contact")))
	if c.Email != "" {
		col.Append(link("mailto:"+c.Email, "sc-footer-link", text(c.Email)))
	}
	if c.Phone != "" {
		col.Append(link("tel:"+messaging.SanitizePhone(c.Phone), "sc-footer-link", text(c.Phone)))
	}
	if c.Address != "" {
		col.Append(el("p", attr("class", "sc-footer-link"), text(c.Address)))
	}
	if href, ok := messaging.ContactLink(cfg); ok {
		wa := link(href, "sc-footer-link", text("Chat on WhatsApp"))
		wa.Set("target", "_blank").Set("rel", "noopener noreferrer").Set("data-whatsapp-link", href)
		col.Append(wa)
	}
	if len(col.Children) == 1 {
		return nil
	}

	return col
}

func socialColumn(cfg *store.Configuration) *node.Node {
	if len(cfg.Contact.Social) == 0 {
		return nil
	}

	return el("div", nil,
		el("h3", attr("class", "sc-footer-heading"), text("Follow us")),
		node.Fragment(node.Map(cfg.Contact.Social, func(i int, s store.SocialLink) *node.Node {
			a := link(s.URL, "sc-footer-link", text(s.Platform))
			a.Set("target", "_blank").Set("rel", "noopener noreferrer")

			return a
		})...),
	)
}

func footerShell(variant string, children ...*node.Node) *node.Node {
	return el("footer",
		attr("class", "sc-footer", node.AttrSection, string(store.SectionFooter), node.AttrVariant, variant),
		el("div", attr("class", "sc-container"), children...),
	)
}

func columnsFooter(in registry.Input) *node.Node {
	cfg := site(in)
	data := dataAs[store.FooterData](in)

	about := el("div", nil,
		el("h3", attr("class", "sc-footer-heading"), text(cfg.Branding.Name)),
		node.If(cfg.Branding.Description != "", el("p", nil, text(cfg.Branding.Description))),
	)

	var links *node.Node
	if items := footerLinks(cfg); len(items) > 0 {
		links = el("div", nil, append([]*node.Node{el("h3", attr("class", "sc-footer-heading"), text("Links"))}, items...)...)
	}

	var contact, social *node.Node
	if data.ShowContact {
		contact = contactColumn(cfg)
	}
	if data.ShowSocial {
		social = socialColumn(cfg)
	}

	return footerShell("columns",
		el("div", attr("class", "sc-footer-columns"), about, links, contact, social),
		el("div", attr("class", "sc-footer-bottom"), text(copyright(cfg, data))),
	)
}

func simpleFooter(in registry.Input) *node.Node {
	cfg := site(in)
	data := dataAs[store.FooterData](in)

	var links *node.Node
	if items := footerLinks(cfg); len(items) > 0 {
		links = el("nav", attr("class", "sc-nav", "aria-label", "Footer"), items...)
	}

	return footerShell("simple",
		links,
		el("div", attr("class", "sc-footer-bottom"), text(copyright(cfg, data))),
	)
}

func registerFooters(r *registry.Registry) {
	r.MustRegister(store.SectionFooter, "columns", &registry.Module{
		Metadata: registry.Metadata{Name: "Columns", Description: "About, links, contact and social columns"},
		Build:    columnsFooter,
	})
	r.MustRegister(store.SectionFooter, "simple", &registry.Module{
		Metadata: registry.Metadata{Name: "Simple", Description: "One row of links and the copyright line"},
		Build:    simpleFooter,
	})
}
