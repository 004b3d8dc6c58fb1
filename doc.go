// Package prosemirror keeps stable identities for the nodes of an edited
// document tree.
//
// A host editor owns a document that changes on every keystroke. Renderers
// and caches built on top of it need a durable handle per node, one that
// survives edits that merely move the node around. This package maintains
// that mapping: every structural node carries an opaque key that follows it
// across edits. Lookups that find no keyed node fall back to a stable root
// sentinel instead of failing.
//
// # Core Concepts
//
// The module is organized around a few concepts:
//
//   - Documents: immutable trees of typed nodes addressed by integer positions
//   - Edits: position mappings describing how one document version became the next
//   - Keys: opaque identifiers minted per node and carried across edits
//   - Node views: externally rendered node types whose keys anchor host components
//   - Registries: per-editor owners of the key map and the view table
//
// # Architecture
//
// The packages layer bottom up:
//
//   - model: document trees, schemas, and position resolution
//   - transform: step maps and mappings between document versions
//   - nodekey: key minting and the per-version pass that carries keys across edits
//   - nodeview: the view descriptor table and the nearest keyed ancestor walk
//   - prosemirror (this package): the facade binding a view table to a key registry
//
// # Getting Started
//
// Create a binder, register the node types the host renders externally, and
// initialize it against a document snapshot:
//
//	views := prosemirror.New()
//	views.RegisterView("figure", nodeview.Descriptor{
//		Constructor: newFigureView,
//		External:    true,
//	})
//	views.Init(ctx, doc)
//
// After each edit, advance the key map and look keys up by position:
//
//	views.Apply(ctx, edit, newDoc)
//	key := views.KeyUp(newDoc, cursorPos)
//
// # Key Lifecycle
//
// Keys are assigned in one pass per document version. Init builds the first
// map and Apply advances it across an edit:
//
//   - An edit that did not change the document keeps the current map without a rebuild
//   - A node whose position maps back through the edit to a keyed node keeps that key
//   - Nodes with no keyed origin receive freshly minted keys
//   - When two nodes map back to the same origin, the earlier one claims the old key and later ones mint fresh
//
// Each registry mints a UUID seed at construction. A new registry means a
// new seed and an unrelated set of keys, so hosts can compare seeds to
// detect that caches keyed by node identity must be discarded.
//
// # Error Handling
//
// Construction and position APIs return sentinel errors that callers match
// with errors.Is:
//
//	if _, err := doc.Resolve(pos); errors.Is(err, model.ErrInvalidPosition) {
//		// position outside the document
//	}
//
// Key lookups are total. KeyUp never fails: a position with no externally
// viewed ancestor, a key map that lags behind the document, or a binder
// that was never initialized all yield nodekey.RootKey.
//
// # Observability
//
// The binder integrates structured logging and OpenTelemetry:
//
//	views := prosemirror.New(
//		prosemirror.WithLogger(logger),
//		prosemirror.WithTracer(tracer),
//		prosemirror.WithMeterProvider(meterProvider),
//	)
//
// With a tracer set, every key map pass runs inside a span carrying the
// per-pass node and key counts. With a meter provider set, the same counts
// are recorded as counters.
//
// # Concurrency
//
// A binder and the registries beneath it are confined to the host editor's
// goroutine. The host serializes edits and lookups on one logical timeline,
// so no method takes a lock and none is safe for concurrent use.
//
// # Examples
//
// See the examples directory for complete working programs:
//
//   - Walking a document through edits while watching keys persist
//   - A terminal viewer that renders the live position to key table
package prosemirror
