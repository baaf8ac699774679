// Package export packages a store configuration into the file map of a
// downloadable static site. It performs no I/O.
package export

import (
	"context"
	"time"

	"github.com/conneroisu/storecraft/internal/build"
	"github.com/conneroisu/storecraft/internal/logging"
	"github.com/conneroisu/storecraft/internal/registry"
	"github.com/conneroisu/storecraft/internal/store"
)

// Options configures a pack.
type Options struct {
	build.Options

	// Registry defaults to the built-in section registry.
	Registry *registry.Registry
	Logger   logging.Logger
}

// Bundle is a packed site.
type Bundle struct {
	Files     build.Files
	StoreName string
	CreatedAt time.Time
}

// Size is the total byte size of all files.
func (b Bundle) Size() int {
	total := 0
	for _, content := range b.Files {
		total += len(content)
	}

	return total
}

// Pack renders every file of the site. Slug integrity is checked before
// anything is generated, so a conflict produces no partial bundle.
func Pack(ctx context.Context, cfg *store.Configuration, opts Options) (Bundle, error) {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NopLogger{}
	}
	logger = logger.WithComponent("export")

	site := store.Normalize(cfg)
	if err := store.CheckSlugs(site.Pages); err != nil {
		logger.Error(ctx, err, "Slug check failed")

		return Bundle{}, err
	}

	reg := opts.Registry
	if reg == nil {
		reg = defaultRegistry()
	}

	start := time.Now()
	files, err := build.NewGenerator(reg, opts.Options).Generate(ctx, site)
	if err != nil {
		logger.Error(ctx, err, "Site generation failed")

		return Bundle{}, err
	}

	bundle := Bundle{Files: files, StoreName: site.Branding.Name, CreatedAt: opts.BuildDate}
	if bundle.CreatedAt.IsZero() {
		bundle.CreatedAt = start
	}

	logger.Info(ctx, "Packed static site",
		"store", bundle.StoreName,
		"files", len(files),
		"bytes", bundle.Size(),
		"duration", time.Since(start),
	)

	return bundle, nil
}
