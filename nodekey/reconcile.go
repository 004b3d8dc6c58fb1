package nodekey

// Doc is the document side of the key map: a traversal over the structural
// nodes of one immutable document snapshot. Text leaves are never yielded;
// text is owned by its enclosing node.
type Doc interface {
	// EachNode calls fn for every structural node in document order,
	// starting with the root at position 0, passing the index of each
	// node's opening token. Returning false from fn skips that node's
	// subtree.
	EachNode(fn func(pos int) bool)
}

// Change is the edit side of the key map: one document version transition.
type Change interface {
	// DocChanged reports whether the edit changed the document structure.
	DocChanged() bool

	// MapInverse maps a position in the new document back to the position
	// in the previous document it originated from.
	MapInverse(pos int) int
}

// Initialize builds the key map for a fresh document snapshot: one newly
// minted key per structural node, root included at position 0. All keys in
// the returned state are pairwise distinct.
func Initialize(doc Doc) *State {
	st, _ := initialize(doc, NewKey)
	return st
}

// Reconcile derives the key map for a new document version from the
// previous version's map and the edit between them.
//
// If the edit did not change the document, Reconcile returns prev itself.
// Otherwise it traverses the new snapshot in document order and, for each
// structural node, maps the node's position back through the edit and looks
// the old position up in prev:
//
//   - a hit preserves the node's key verbatim;
//   - a miss mints a fresh key (inserted content with no prior counterpart);
//   - a hit whose key was already assigned earlier in this pass means the
//     edit duplicated or split a node, and the later occurrence gets a
//     fresh key so duplicates never share identity.
//
// The collision check is scoped to the current pass, not to every key ever
// minted, so a fresh key can in principle repeat a key retired versions ago.
// With 64-bit random keys that chance is negligible and accepted.
//
// Reconcile is pure: it reads its three inputs and returns a new State,
// leaving prev untouched.
func Reconcile(change Change, prev *State, doc Doc) *State {
	if !change.DocChanged() {
		return prev
	}
	st, _ := reconcile(change, prev, doc, NewKey)
	return st
}

// passStats counts what one traversal pass did, for logs and metrics.
type passStats struct {
	nodes     int
	preserved int
	minted    int
	collided  int
}

func initialize(doc Doc, newKey func() Key) (*State, passStats) {
	st := newState(0)
	var stats passStats
	doc.EachNode(func(pos int) bool {
		st.assign(pos, mintUnused(st, newKey))
		stats.nodes++
		stats.minted++
		return true
	})
	return st, stats
}

func reconcile(change Change, prev *State, doc Doc, newKey func() Key) (*State, passStats) {
	next := newState(prev.Len())
	var stats passStats
	doc.EachNode(func(pos int) bool {
		stats.nodes++
		k, ok := prev.KeyAt(change.MapInverse(pos))
		if ok && next.hasKey(k) {
			stats.collided++
			ok = false
		}
		if ok {
			stats.preserved++
		} else {
			k = mintUnused(next, newKey)
			stats.minted++
		}
		next.assign(pos, k)
		return true
	})
	return next, stats
}

// mintUnused draws keys until one not yet assigned in st comes up.
func mintUnused(st *State, newKey func() Key) Key {
	k := newKey()
	for st.hasKey(k) {
		k = newKey()
	}
	return k
}
