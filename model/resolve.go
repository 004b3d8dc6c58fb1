package model

import "fmt"

// ResolvedPos is a position resolved into its chain of enclosing structural
// nodes, from the document root (depth 0) down to the deepest node the
// position sits inside.
//
// A position counts as inside a node when it falls strictly between the
// node's opening and closing tokens. Positions on a node's boundary belong
// to the parent.
type ResolvedPos struct {
	pos    int
	nodes  []*Node
	starts []int
}

// Resolve maps a position to its ancestor chain inside the document.
// Valid positions run from 0 to n.Size() inclusive; anything else returns
// ErrInvalidPosition. The receiver must be the document root.
func (n *Node) Resolve(pos int) (*ResolvedPos, error) {
	if pos < 0 || pos > n.size {
		return nil, fmt.Errorf("resolve %d in document of size %d: %w", pos, n.size, ErrInvalidPosition)
	}

	r := &ResolvedPos{
		pos:    pos,
		nodes:  []*Node{n},
		starts: []int{0},
	}

	cur, curStart := n, 0
	for {
		childStart := curStart + 1
		var next *Node
		nextStart := 0
		for i := 0; i < cur.ChildCount(); i++ {
			c := cur.Child(i)
			if !c.IsText() && childStart < pos && pos <= childStart+c.size-1 {
				next, nextStart = c, childStart
				break
			}
			childStart += c.size
		}
		if next == nil {
			return r, nil
		}
		r.nodes = append(r.nodes, next)
		r.starts = append(r.starts, nextStart)
		cur, curStart = next, nextStart
	}
}

// Pos returns the resolved position itself.
func (r *ResolvedPos) Pos() int {
	return r.pos
}

// Depth returns the depth of the deepest enclosing node. The root is depth 0.
func (r *ResolvedPos) Depth() int {
	return len(r.nodes) - 1
}

// Node returns the enclosing node at the given depth.
// Depth must be between 0 and Depth() inclusive.
func (r *ResolvedPos) Node(depth int) *Node {
	return r.nodes[depth]
}

// TypeName returns the type name of the enclosing node at the given depth.
func (r *ResolvedPos) TypeName(depth int) string {
	return r.nodes[depth].TypeName()
}

// Before returns the position of the opening token of the enclosing node at
// the given depth. Before(0) is always 0, the document root's position.
func (r *ResolvedPos) Before(depth int) int {
	return r.starts[depth]
}
