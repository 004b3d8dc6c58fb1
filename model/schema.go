// Package model provides an immutable tree document model with integer
// positions, document-order traversal, and position resolution.
//
// The model is the reference implementation of the document side of the
// node-key registry: a document is a tree of typed nodes, every structural
// node owns an opening and a closing token, and a node's position is the
// index of its opening token. Text leaves contribute one token per rune and
// never own boundary tokens of their own.
//
// Documents are immutable. Editing produces a new document value; the old
// one remains valid and can still be traversed and resolved.
package model

import (
	"errors"
	"fmt"
	"sort"
)

// Sentinel errors for schema and document construction.
// These errors can be used with errors.Is() for error checking.
var (
	// ErrUnknownType indicates a node type name that is not declared in the schema.
	ErrUnknownType = errors.New("unknown node type")

	// ErrDuplicateType indicates a node type name declared more than once.
	ErrDuplicateType = errors.New("duplicate node type")

	// ErrReservedName indicates a node type name that is reserved by the model.
	ErrReservedName = errors.New("reserved node type name")

	// ErrLeafChildren indicates an attempt to give children to a leaf node type.
	ErrLeafChildren = errors.New("leaf node cannot have children")

	// ErrInvalidPosition indicates a position outside the document's token range.
	ErrInvalidPosition = errors.New("position outside document")
)

// TextTypeName is the implicit type name reported by text leaves.
// It cannot be declared in a schema.
const TextTypeName = "text"

// NodeType describes one kind of structural node a schema allows.
type NodeType struct {
	// Name is the unique type name (e.g., "paragraph", "blockquote").
	Name string

	// Inline marks types that live in inline content rather than block content.
	Inline bool

	// Leaf marks types that never carry children (e.g., "image", "rule").
	Leaf bool
}

// Schema is the set of node types a document may contain.
//
// A schema is immutable after construction and safe to share between
// documents. Text leaves are implicit and never declared.
type Schema struct {
	types map[string]*NodeType
}

// NewSchema builds a schema from the given node types.
// Type names must be non-empty, unique, and must not use the reserved
// text type name.
func NewSchema(types ...NodeType) (*Schema, error) {
	s := &Schema{types: make(map[string]*NodeType, len(types))}
	for _, t := range types {
		if t.Name == "" {
			return nil, fmt.Errorf("node type with empty name: %w", ErrReservedName)
		}
		if t.Name == TextTypeName {
			return nil, fmt.Errorf("node type %q: %w", t.Name, ErrReservedName)
		}
		if _, exists := s.types[t.Name]; exists {
			return nil, fmt.Errorf("node type %q: %w", t.Name, ErrDuplicateType)
		}
		nt := t
		s.types[t.Name] = &nt
	}
	return s, nil
}

// Type returns the node type with the given name.
func (s *Schema) Type(name string) (*NodeType, bool) {
	t, ok := s.types[name]
	return t, ok
}

// TypeNames returns the declared type names in sorted order.
func (s *Schema) TypeNames() []string {
	names := make([]string, 0, len(s.types))
	for name := range s.types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Node constructs a structural node of the named type with the given children.
// Returns an error if the type is not declared or if a leaf type is given
// children.
func (s *Schema) Node(typeName string, children ...*Node) (*Node, error) {
	t, ok := s.types[typeName]
	if !ok {
		return nil, fmt.Errorf("node type %q: %w", typeName, ErrUnknownType)
	}
	if t.Leaf && len(children) > 0 {
		return nil, fmt.Errorf("node type %q: %w", typeName, ErrLeafChildren)
	}
	return newNode(t, children), nil
}

// Text constructs a text leaf holding the given string.
func (s *Schema) Text(text string) *Node {
	return newTextNode(text)
}
