package nodekey

// State is the position-to-key map for one document version, with the
// reverse key-to-position index maintained alongside it.
//
// A State is immutable once returned by Initialize or Reconcile. All read
// methods are safe on a nil receiver and report empty results, so callers
// can hold "no state yet" as a plain nil.
type State struct {
	posToKey map[int]Key
	keyToPos map[Key]int
}

func newState(size int) *State {
	return &State{
		posToKey: make(map[int]Key, size),
		keyToPos: make(map[Key]int, size),
	}
}

func (s *State) assign(pos int, k Key) {
	s.posToKey[pos] = k
	s.keyToPos[k] = pos
}

// KeyAt returns the key of the structural node whose opening token sits at
// pos in the current document version.
func (s *State) KeyAt(pos int) (Key, bool) {
	if s == nil {
		return "", false
	}
	k, ok := s.posToKey[pos]
	return k, ok
}

// PosOf returns the current position of the node carrying the given key.
func (s *State) PosOf(k Key) (int, bool) {
	if s == nil {
		return 0, false
	}
	pos, ok := s.keyToPos[k]
	return pos, ok
}

// Len returns the number of keyed nodes in this version.
func (s *State) Len() int {
	if s == nil {
		return 0
	}
	return len(s.posToKey)
}

// Each calls fn for every (position, key) pair in unspecified order.
// Returning false from fn stops the iteration.
func (s *State) Each(fn func(pos int, k Key) bool) {
	if s == nil {
		return
	}
	for pos, k := range s.posToKey {
		if !fn(pos, k) {
			return
		}
	}
}

// hasKey reports whether k is assigned to any node in this version.
func (s *State) hasKey(k Key) bool {
	if s == nil {
		return false
	}
	_, ok := s.keyToPos[k]
	return ok
}
