package nodeview

import (
	"github.com/alexandresalome/react-prosemirror/nodekey"
)

// Resolved is a position resolved into its chain of enclosing nodes, from
// the document root at depth 0 down to the deepest enclosing node.
type Resolved interface {
	// Depth returns the depth of the deepest enclosing node.
	Depth() int

	// TypeName returns the type name of the enclosing node at a depth.
	TypeName(depth int) string

	// Before returns the position of the opening token of the enclosing
	// node at a depth.
	Before(depth int) int
}

// Doc resolves positions against one document snapshot.
type Doc interface {
	Resolve(pos int) (Resolved, error)
}

// KeySource answers position-to-key lookups for the current document
// version. *nodekey.State satisfies it.
type KeySource interface {
	KeyAt(pos int) (nodekey.Key, bool)
}

// FindKeyUp returns the key of the nearest ancestor of pos whose node type
// is registered as externally viewed, or nodekey.RootKey when no such
// ancestor is keyed.
//
// The walk runs from the deepest enclosing node up to depth 1; the document
// root itself is never matched. An externally viewed ancestor missing from
// the key source (the transient window between a document update and the
// next reconciliation) does not stop the walk; resolution continues with
// the next ancestor up.
//
// FindKeyUp never fails: with no key source, no document, no registered
// views, or an unresolvable position it returns nodekey.RootKey.
func FindKeyUp(keys KeySource, doc Doc, views *Registry, pos int) nodekey.Key {
	if keys == nil || doc == nil {
		return nodekey.RootKey
	}

	resolved, err := doc.Resolve(pos)
	if err != nil {
		return nodekey.RootKey
	}

	for depth := resolved.Depth(); depth > 0; depth-- {
		if !views.External(resolved.TypeName(depth)) {
			continue
		}
		if k, ok := keys.KeyAt(resolved.Before(depth)); ok {
			return k
		}
	}
	return nodekey.RootKey
}
