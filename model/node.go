package model

import (
	"strings"
	"unicode/utf8"
)

// Node is one node of an immutable document tree.
//
// A node is either structural (carries a NodeType and zero or more children)
// or a text leaf (carries a string and no type). The zero value is not a
// valid node; use Schema.Node and Schema.Text.
//
// Sizes follow the token model: a structural node occupies an opening token,
// its content, and a closing token; a text leaf occupies one token per rune.
type Node struct {
	typ      *NodeType
	text     string
	children []*Node
	size     int
}

func newNode(t *NodeType, children []*Node) *Node {
	size := 2
	for _, c := range children {
		size += c.size
	}
	// Copy so later mutation of the caller's slice cannot reach the tree.
	kids := make([]*Node, len(children))
	copy(kids, children)
	return &Node{typ: t, children: kids, size: size}
}

func newTextNode(text string) *Node {
	return &Node{text: text, size: utf8.RuneCountInString(text)}
}

// IsText reports whether the node is a text leaf.
func (n *Node) IsText() bool {
	return n.typ == nil
}

// Type returns the node's type, or nil for text leaves.
func (n *Node) Type() *NodeType {
	return n.typ
}

// TypeName returns the node's type name, or TextTypeName for text leaves.
func (n *Node) TypeName() string {
	if n.typ == nil {
		return TextTypeName
	}
	return n.typ.Name
}

// Text returns the node's text content. Empty for structural nodes.
func (n *Node) Text() string {
	return n.text
}

// ChildCount returns the number of direct children.
func (n *Node) ChildCount() int {
	return len(n.children)
}

// Child returns the i-th direct child. Panics if i is out of range.
func (n *Node) Child(i int) *Node {
	return n.children[i]
}

// Size returns the number of tokens the node occupies, opening and closing
// tokens included.
func (n *Node) Size() int {
	return n.size
}

// Descendants walks every descendant of n in document order, text leaves
// included, calling fn with the descendant and the index of its first token.
// Returning false from fn skips that descendant's subtree. The receiver
// itself is not visited.
func (n *Node) Descendants(fn func(child *Node, pos int) bool) {
	n.walkChildren(0, func(c *Node, pos int) bool { return fn(c, pos) })
}

func (n *Node) walkChildren(pos int, fn func(c *Node, pos int) bool) {
	childPos := pos + 1
	for _, c := range n.children {
		if fn(c, childPos) && !c.IsText() {
			c.walkChildren(childPos, fn)
		}
		childPos += c.size
	}
}

// EachNode walks the structural nodes of the document in document order,
// starting with the receiver at position 0, calling fn with each node's
// position. Returning false from fn skips that node's subtree. Text leaves
// are never visited; their tokens only advance sibling positions.
func (n *Node) EachNode(fn func(pos int) bool) {
	n.eachNode(0, fn)
}

func (n *Node) eachNode(pos int, fn func(pos int) bool) {
	if !fn(pos) {
		return
	}
	childPos := pos + 1
	for _, c := range n.children {
		if !c.IsText() {
			c.eachNode(childPos, fn)
		}
		childPos += c.size
	}
}

// NodeAt returns the structural node whose opening token sits at pos, if any.
func (n *Node) NodeAt(pos int) (*Node, bool) {
	var found *Node
	n.eachNodes(0, func(node *Node, p int) bool {
		if p == pos {
			found = node
			return false
		}
		// Positions ascend in document order; past pos there is no match.
		return p < pos
	})
	return found, found != nil
}

func (n *Node) eachNodes(pos int, fn func(node *Node, pos int) bool) bool {
	if !fn(n, pos) {
		return false
	}
	childPos := pos + 1
	for _, c := range n.children {
		if !c.IsText() {
			if !c.eachNodes(childPos, fn) {
				return false
			}
		}
		childPos += c.size
	}
	return true
}

// String renders the tree in a compact debug form, e.g.
// doc(paragraph("ab"), paragraph("cd")).
func (n *Node) String() string {
	var b strings.Builder
	n.writeString(&b)
	return b.String()
}

func (n *Node) writeString(b *strings.Builder) {
	if n.IsText() {
		b.WriteByte('"')
		b.WriteString(n.text)
		b.WriteByte('"')
		return
	}
	b.WriteString(n.typ.Name)
	if len(n.children) == 0 {
		return
	}
	b.WriteByte('(')
	for i, c := range n.children {
		if i > 0 {
			b.WriteString(", ")
		}
		c.writeString(b)
	}
	b.WriteByte(')')
}

// TextContent concatenates the text of every text leaf under n.
func (n *Node) TextContent() string {
	if n.IsText() {
		return n.text
	}
	var b strings.Builder
	for _, c := range n.children {
		b.WriteString(c.TextContent())
	}
	return b.String()
}
