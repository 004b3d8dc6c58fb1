package prosemirror

import (
	"context"

	"github.com/alexandresalome/react-prosemirror/model"
	"github.com/alexandresalome/react-prosemirror/nodekey"
	"github.com/alexandresalome/react-prosemirror/nodeview"
)

// Document is the view of a host document snapshot the binder consumes.
// *model.Node implements it; hosts carrying their own document
// representation can implement it directly.
type Document interface {
	// EachNode visits every structural node in document order, root first.
	// Returning false from fn skips the node's subtree.
	EachNode(fn func(pos int) bool)

	// Resolve locates a position inside the tree, yielding the chain of
	// ancestors that enclose it.
	Resolve(pos int) (*model.ResolvedPos, error)
}

// NodeViews binds a view descriptor table to a node key registry for one
// host editor. It is the main entry point of the module.
//
// The binder coordinates the two halves of stable node identity:
//
//   - Keys: minted per structural node and carried across edits by the
//     nodekey registry
//   - Views: node types registered as externally rendered, whose keys
//     anchor host components during the ancestor walk
//
// A NodeViews is not safe for concurrent use; see the package
// documentation for the concurrency model.
type NodeViews struct {
	views *nodeview.Registry
	keys  *nodekey.Registry
}

// RegisterView registers a view descriptor for a node type, replacing any
// descriptor the type already had.
func (v *NodeViews) RegisterView(typeName string, d nodeview.Descriptor) {
	v.views.Register(typeName, d)
}

// Views returns the view descriptor table.
func (v *NodeViews) Views() *nodeview.Registry {
	return v.views
}

// Keys returns the node key registry.
func (v *NodeViews) Keys() *nodekey.Registry {
	return v.keys
}

// Seed returns the key registry's lifetime identity. Two binders never
// share a seed, so hosts can compare seeds to invalidate caches keyed by
// node identity.
func (v *NodeViews) Seed() string {
	return v.keys.Seed()
}

// Init builds the key map for a document snapshot, replacing any previous
// map. Every structural node receives a newly minted key.
func (v *NodeViews) Init(ctx context.Context, doc Document) *nodekey.State {
	return v.keys.Init(ctx, doc)
}

// Apply advances the key map across one edit and returns the map for the
// new document version.
//
// A binder that was never initialized initializes against the snapshot
// instead. An edit that did not change the document returns the current
// map unchanged.
func (v *NodeViews) Apply(ctx context.Context, change nodekey.Change, doc Document) *nodekey.State {
	return v.keys.Apply(ctx, change, doc)
}

// KeyUp returns the key of the nearest ancestor of pos whose node type is
// registered with an external view, walking from the innermost ancestor
// outward. When no such ancestor holds a key, or the binder has no key map
// yet, or doc is nil, it returns nodekey.RootKey.
func (v *NodeViews) KeyUp(doc Document, pos int) nodekey.Key {
	if doc == nil {
		return nodekey.RootKey
	}
	return nodeview.FindKeyUp(v.keys.State(), docAdapter{doc: doc}, v.views, pos)
}

// KeyAt returns the key assigned to the node opening at pos in the current
// document version.
func (v *NodeViews) KeyAt(pos int) (nodekey.Key, bool) {
	return v.keys.State().KeyAt(pos)
}

// PosOf returns the position of the node holding key k in the current
// document version.
func (v *NodeViews) PosOf(k nodekey.Key) (int, bool) {
	return v.keys.State().PosOf(k)
}

// docAdapter narrows a Document to the resolver interface the nodeview
// package consumes.
type docAdapter struct {
	doc Document
}

func (a docAdapter) Resolve(pos int) (nodeview.Resolved, error) {
	return a.doc.Resolve(pos)
}
