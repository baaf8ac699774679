package export

import (
	"sync"

	"github.com/conneroisu/storecraft/internal/registry"
	"github.com/conneroisu/storecraft/internal/sections"
)

var (
	builtinOnce sync.Once
	builtin     *registry.Registry
)

// defaultRegistry is built on first use and only read afterwards.
func defaultRegistry() *registry.Registry {
	builtinOnce.Do(func() {
		builtin = sections.NewRegistry()
	})

	return builtin
}
