// Package registry maps (section kind, variant id) to template modules.
// A registry is filled once at startup and only read afterwards.
package registry

import (
	"fmt"
	"sync"

	"github.com/conneroisu/storecraft/internal/node"
	"github.com/conneroisu/storecraft/internal/store"
	"github.com/conneroisu/storecraft/internal/styles"
	"github.com/conneroisu/storecraft/internal/theme"
)

// EmptyID is the id of the module returned for kinds nothing registered.
const EmptyID = "none"

// Metadata describes a module to selection UIs.
type Metadata struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Tags        []string `json:"tags,omitempty"`
}

// Input is everything a module needs to build its tree.
type Input struct {
	Key     store.SectionKey
	Data    any
	Site    *store.Configuration
	Palette theme.Palette

	// Anchor is the element id of the section, unique within a document.
	// Empty means the key itself.
	Anchor string
}

// ID returns the element id of the section.
func (in Input) ID() string {
	if in.Anchor != "" {
		return in.Anchor
	}

	return string(in.Key)
}

// BuildFunc builds the semantic tree of a section. A nil result renders
// nothing.
type BuildFunc func(in Input) *node.Node

// Module is one variant of a section kind.
type Module struct {
	ID       string           `json:"id"`
	Kind     store.SectionKey `json:"kind"`
	Metadata Metadata         `json:"metadata"`
	Build    BuildFunc        `json:"-"`
}

// Tree builds the semantic tree shared by both renderers.
func (m *Module) Tree(in Input) *node.Node {
	if m == nil || m.Build == nil {
		return nil
	}

	return m.Build(in)
}

// Preview renders the tree with the class table inlined as styles.
func (m *Module) Preview(in Input) *node.Node {
	tree := m.Tree(in)
	if tree == nil {
		return nil
	}

	return styles.Apply(tree, styles.Vars(in.Palette, layoutOf(in.Site)))
}

// Static renders the tree as escaped HTML.
func (m *Module) Static(in Input) string {
	return node.String(m.Tree(in))
}

func layoutOf(site *store.Configuration) store.Layout {
	if site == nil {
		return store.LayoutBoxed
	}

	return site.Layout
}

// Registry holds modules per kind in registration order.
type Registry struct {
	mutex    sync.RWMutex
	modules  map[store.SectionKey][]*Module
	defaults map[store.SectionKey]string
	kinds    []store.SectionKey
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		modules:  make(map[store.SectionKey][]*Module),
		defaults: make(map[store.SectionKey]string),
	}
}

// Register adds a module under kind and variantID. The first module of a
// kind becomes its default until SetDefault says otherwise.
func (r *Registry) Register(kind store.SectionKey, variantID string, m *Module) error {
	if m == nil || m.Build == nil {
		return fmt.Errorf("register %s/%s: module has no builder", kind, variantID)
	}
	if variantID == "" {
		return fmt.Errorf("register %s: empty variant id", kind)
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	for _, existing := range r.modules[kind] {
		if existing.ID == variantID {
			return fmt.Errorf("register %s/%s: already registered", kind, variantID)
		}
	}

	mod := *m
	mod.ID = variantID
	mod.Kind = kind

	if _, ok := r.modules[kind]; !ok {
		r.kinds = append(r.kinds, kind)
		r.defaults[kind] = variantID
	}
	r.modules[kind] = append(r.modules[kind], &mod)

	return nil
}

// MustRegister is Register for static tables.
func (r *Registry) MustRegister(kind store.SectionKey, variantID string, m *Module) {
	if err := r.Register(kind, variantID, m); err != nil {
		panic(err)
	}
}

// SetDefault designates the fallback variant of kind.
func (r *Registry) SetDefault(kind store.SectionKey, variantID string) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	for _, m := range r.modules[kind] {
		if m.ID == variantID {
			r.defaults[kind] = variantID

			return nil
		}
	}

	return fmt.Errorf("set default %s/%s: not registered", kind, variantID)
}

// Lookup returns the module for variantID, the kind's default for unknown
// or blank ids, and an empty module for kinds without modules. It never
// returns nil.
func (r *Registry) Lookup(kind store.SectionKey, variantID string) *Module {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	for _, m := range r.modules[kind] {
		if m.ID == variantID {
			return m
		}
	}

	return r.defaultLocked(kind)
}

// Default returns the fallback module of kind.
func (r *Registry) Default(kind store.SectionKey) *Module {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	return r.defaultLocked(kind)
}

func (r *Registry) defaultLocked(kind store.SectionKey) *Module {
	id := r.defaults[kind]
	for _, m := range r.modules[kind] {
		if m.ID == id {
			return m
		}
	}

	return &Module{
		ID:       EmptyID,
		Kind:     kind,
		Metadata: Metadata{Name: "Empty", Description: "Renders nothing"},
		Build:    func(Input) *node.Node { return nil },
	}
}

// Has reports whether variantID is registered for kind.
func (r *Registry) Has(kind store.SectionKey, variantID string) bool {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	for _, m := range r.modules[kind] {
		if m.ID == variantID {
			return true
		}
	}

	return false
}

// List returns the modules of kind in registration order.
func (r *Registry) List(kind store.SectionKey) []*Module {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	return append([]*Module(nil), r.modules[kind]...)
}

// Kinds returns the registered kinds in registration order.
func (r *Registry) Kinds() []store.SectionKey {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	return append([]store.SectionKey(nil), r.kinds...)
}

// Count returns the total number of modules.
func (r *Registry) Count() int {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	n := 0
	for _, mods := range r.modules {
		n += len(mods)
	}

	return n
}
