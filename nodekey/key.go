// Package nodekey maintains stable identities for the structural nodes of a
// mutable tree document.
//
// Positions are weak identities: every edit shifts them. This package
// re-derives stable identity per document version by composing the edit's
// inverse position mapping with a collision-detecting reassignment pass: the
// position-to-key map is rebuilt wholesale on every document-changing edit,
// never patched in place. Nodes the edit left alone keep their keys
// verbatim; inserted or duplicated nodes receive freshly minted keys.
//
// All operations are synchronous and run on the caller's goroutine. The map
// for a document version is immutable once built; an edit produces a new map
// and the reference is swapped, so readers always observe a fully formed map
// for some committed version. The package takes no locks; the host editor
// serializes edits and lookups on one logical timeline.
package nodekey

import (
	"math/rand/v2"
	"strconv"
)

// Key is an opaque identifier for one structural node. Keys are unique
// among the nodes alive in a single document version.
type Key string

// RootKey is the well-known key representing the document root, returned by
// ancestor lookups when no keyed ancestor owns a position. Generated keys
// are lowercase base-36, so RootKey can never collide with one.
const RootKey Key = "@root"

// NewKey mints a random key.
//
// Keys are uniformly random 64-bit values rendered in base-36, unique with
// overwhelming probability within one document's lifetime. They are not
// cryptographically secure and not globally unique across sessions.
func NewKey() Key {
	return Key(strconv.FormatUint(rand.Uint64(), 36))
}
