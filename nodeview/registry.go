// Package nodeview connects node types to externally rendered view
// components and resolves which component owns a given document position.
//
// Hosts register one Descriptor per node type. A descriptor whose External
// flag is set marks the type as rendered by an external component; the
// resolver walks a position's ancestors and returns the key of the nearest
// such ancestor, so the host can re-associate the component with the node
// as the document changes around it.
package nodeview

// Descriptor describes the view registered for one node type.
//
// The external-view marker is an explicit capability flag on the descriptor
// value, not a property of the constructor. Only descriptors with External
// set participate in ancestor key resolution.
type Descriptor struct {
	// Constructor is the host-defined view factory for the node type.
	// This package never calls it; it is carried opaquely for the host.
	Constructor any

	// External marks node types rendered by an external component rather
	// than the host's default rendering.
	External bool
}

// Registry maps node type names to their view descriptors.
//
// Like the rest of the registry machinery, a Registry is not safe for
// concurrent use; the host registers views during setup and reads them on
// the same timeline as edits.
type Registry struct {
	views map[string]Descriptor
}

// NewRegistry creates an empty view registry.
func NewRegistry() *Registry {
	return &Registry{views: make(map[string]Descriptor)}
}

// Register binds a descriptor to a node type name, replacing any descriptor
// previously registered for that name.
func (r *Registry) Register(typeName string, d Descriptor) {
	r.views[typeName] = d
}

// Lookup returns the descriptor registered for a node type name.
func (r *Registry) Lookup(typeName string) (Descriptor, bool) {
	d, ok := r.views[typeName]
	return d, ok
}

// External reports whether the named node type is registered with an
// externally viewed descriptor. Safe on a nil registry.
func (r *Registry) External(typeName string) bool {
	if r == nil {
		return false
	}
	return r.views[typeName].External
}

// Len returns the number of registered node types.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.views)
}
