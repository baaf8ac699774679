// Package build generates the static storefront: one HTML document per
// page plus the shared stylesheet, script and crawler files.
package build

import (
	"context"
	"sort"
	"time"

	"github.com/conneroisu/storecraft/internal/composer"
	storeerrors "github.com/conneroisu/storecraft/internal/errors"
	"github.com/conneroisu/storecraft/internal/node"
	"github.com/conneroisu/storecraft/internal/registry"
	"github.com/conneroisu/storecraft/internal/store"
	"github.com/conneroisu/storecraft/internal/styles"
	"github.com/conneroisu/storecraft/internal/theme"
	"github.com/conneroisu/storecraft/internal/validation"
)

// Fixed file names of a generated site.
const (
	FileIndex    = "index.html"
	FileStyles   = "styles.css"
	FileScript   = "main.js"
	FileManifest = "manifest.json"
	FileRobots   = "robots.txt"
	FileSitemap  = "sitemap.xml"
)

// Options configures static generation.
type Options struct {
	Minify  bool
	BaseURL string

	// BuildDate stamps sitemap entries. Zero means time.Now.
	BuildDate time.Time

	// Progress is called after every emitted plan entry and file.
	Progress func(Progress)
}

// Progress reports generation state. Section is empty for file events.
type Progress struct {
	File    string
	Section store.SectionKey
	Done    int
	Total   int
}

// Files maps relative output paths to contents.
type Files map[string]string

// Paths returns the file names in lexical order.
func (f Files) Paths() []string {
	paths := make([]string, 0, len(f))
	for p := range f {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	return paths
}

// Generator renders plans into static documents. It holds no per-build
// state and may be shared.
type Generator struct {
	registry *registry.Registry
	options  Options
}

// NewGenerator creates a generator over reg.
func NewGenerator(reg *registry.Registry, opts Options) *Generator {
	return &Generator{registry: reg, options: opts}
}

// Registry returns the registry plans are composed against.
func (g *Generator) Registry() *registry.Registry {
	return g.registry
}

type tracker struct {
	report func(Progress)
	done   int
	total  int
}

func (t *tracker) entry(file string, key store.SectionKey) {
	if t.report != nil {
		t.report(Progress{File: file, Section: key, Done: t.done, Total: t.total})
	}
}

func (t *tracker) file(file string) {
	t.done++
	if t.report != nil {
		t.report(Progress{File: file, Done: t.done, Total: t.total})
	}
}

// RenderPage renders plan as a complete HTML document.
func (g *Generator) RenderPage(ctx context.Context, plan *composer.Plan) (string, error) {
	return g.renderPage(ctx, plan, "", &tracker{})
}

func (g *Generator) renderPage(ctx context.Context, plan *composer.Plan, file string, t *tracker) (string, error) {
	site := plan.Site

	head := node.El("head", nil,
		node.El("meta", node.A("charset", "utf-8")),
		node.El("meta", node.A("name", "viewport", "content", "width=device-width, initial-scale=1")),
		node.El("title", nil, node.Text(plan.Title())),
		node.If(plan.Description() != "", node.El("meta", node.A("name", "description", "content", plan.Description()))),
		node.El("meta", node.A("name", "theme-color", "content", plan.Palette.Primary)),
	)
	if icon := validation.SafeImage(site.Branding.Favicon); icon != "" {
		head.Append(node.El("link", node.A("rel", "icon", "href", icon)))
	}
	head.Append(
		node.El("link", node.A("rel", "manifest", "href", FileManifest)),
		node.El("link", node.A("rel", "stylesheet", "href", FileStyles)),
	)

	build := func(e composer.Entry) (*node.Node, error) {
		if err := ctx.Err(); err != nil {
			return nil, storeerrors.NewInternalError(storeerrors.CodeCancelled, "generation cancelled", err).
				WithContext("file", file)
		}
		tree := e.Module.Tree(plan.Input(e))
		t.entry(file, e.Key)

		return tree, nil
	}

	body := node.El("body", nil)
	if plan.Header != nil {
		tree, err := build(*plan.Header)
		if err != nil {
			return "", err
		}
		body.Append(tree)
	}

	content := node.El("main", node.A("id", "main"))
	for _, e := range plan.Entries {
		tree, err := build(e)
		if err != nil {
			return "", err
		}
		content.Append(tree)
	}
	body.Append(content)

	if plan.Footer != nil {
		tree, err := build(*plan.Footer)
		if err != nil {
			return "", err
		}
		body.Append(tree)
	}
	body.Append(node.El("script", node.A("src", FileScript, "defer", "defer")))

	doc := node.El("html", node.A("lang", site.Language().String(), "dir", site.Direction()), head, body)

	out := "<!DOCTYPE html>\n" + node.String(doc) + "\n"
	if g.options.Minify {
		out = MinifyHTML(out)
	}

	return out, nil
}

// Generate renders every file of the site described by cfg. The result
// depends only on cfg and the options.
func (g *Generator) Generate(ctx context.Context, cfg *store.Configuration) (Files, error) {
	site := store.Normalize(cfg)
	palette := composer.PaletteFor(site)
	pages := site.PublishedPages()

	t := &tracker{report: g.options.Progress, total: 6 + len(pages)}
	files := make(Files, t.total)

	add := func(name, content string) error {
		if _, exists := files[name]; exists {
			return storeerrors.NewSlugConflictError(name)
		}
		files[name] = content
		t.file(name)

		return nil
	}

	index, err := g.renderPage(ctx, composer.Compose(site, g.registry, palette), FileIndex, t)
	if err != nil {
		return nil, err
	}
	if err := add(FileIndex, index); err != nil {
		return nil, err
	}

	for _, page := range pages {
		name := page.FileName()
		doc, err := g.renderPage(ctx, composer.ComposePage(site, g.registry, palette, page), name, t)
		if err != nil {
			return nil, err
		}
		if err := add(name, doc); err != nil {
			return nil, err
		}
	}

	assets, err := g.assets(site, palette, pages)
	if err != nil {
		return nil, err
	}
	for _, name := range []string{FileStyles, FileScript, FileManifest, FileRobots, FileSitemap} {
		if err := add(name, assets[name]); err != nil {
			return nil, err
		}
	}

	return files, nil
}

func (g *Generator) assets(site *store.Configuration, palette theme.Palette, pages []store.CustomPage) (map[string]string, error) {
	css := styles.Stylesheet(palette, site.Layout)
	js := Script
	if g.options.Minify {
		css = MinifyCSS(css)
		js = MinifyJS(js)
	}

	manifest, err := Manifest(site, palette)
	if err != nil {
		return nil, storeerrors.NewInternalError("MANIFEST", "failed to build manifest", err)
	}

	date := g.options.BuildDate
	if date.IsZero() {
		date = time.Now()
	}

	return map[string]string{
		FileStyles:   css,
		FileScript:   js,
		FileManifest: manifest,
		FileRobots:   Robots(g.options.BaseURL),
		FileSitemap:  Sitemap(g.options.BaseURL, date, pages),
	}, nil
}
