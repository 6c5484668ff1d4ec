package blocks

import (
	"fmt"
	"sort"
	"sync"

	"github.com/blockforge-dev/blockforge/pkg/element"
)

// Renderer converts one stored block into an element tree.
type Renderer func(Block) *element.Node

// Registry maps block type names to renderers. It is safe for
// concurrent use.
type Registry struct {
	mu        sync.RWMutex
	renderers map[string]Renderer
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{renderers: make(map[string]Renderer)}
}

// DefaultRegistry creates a registry seeded with the core block types.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.renderers["core/paragraph"] = Paragraph
	r.renderers["core/heading"] = Heading
	r.renderers["core/list"] = List
	r.renderers["core/quote"] = Quote
	r.renderers["core/code"] = Code
	r.renderers["core/image"] = Image
	r.renderers["core/separator"] = Separator
	r.renderers["core/html"] = HTML
	r.renderers["core/group"] = func(b Block) *element.Node {
		return Group(b, r.Render)
	}
	return r
}

// Register adds a renderer for a block type. Re-registering an existing
// type is an error; block types are process-wide contracts.
func (r *Registry) Register(name string, renderer Renderer) error {
	if name == "" || renderer == nil {
		return fmt.Errorf("blocks: registration needs a name and a renderer")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.renderers[name]; exists {
		return fmt.Errorf("blocks: type %q already registered", name)
	}
	r.renderers[name] = renderer
	return nil
}

// Types returns the registered block type names, sorted.
func (r *Registry) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.renderers))
	for name := range r.renderers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render converts one block into an element tree. Unknown block types
// render to nothing: stored content from a newer editor must not break
// the whole document.
func (r *Registry) Render(b Block) *element.Node {
	r.mu.RLock()
	renderer := r.renderers[b.Type]
	r.mu.RUnlock()
	if renderer == nil {
		return nil
	}
	return renderer(b)
}

// RenderAll converts a block sequence into a single fragment.
func (r *Registry) RenderAll(list []Block) *element.Node {
	children := make([]*element.Node, 0, len(list))
	for _, b := range list {
		if node := r.Render(b); node != nil {
			children = append(children, node)
		}
	}
	return &element.Node{Kind: element.KindFragment, Children: children}
}
