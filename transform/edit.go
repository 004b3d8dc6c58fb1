package transform

// Edit describes one document version transition: the position mapping it
// induces and whether the document actually changed.
//
// Selection or metadata updates produce edits with DocChanged false and an
// empty mapping; consumers treat those as identity transitions.
type Edit struct {
	mapping    *Mapping
	docChanged bool
	inverse    *Mapping
}

// NewEdit builds an edit from a mapping and the document-changed flag.
// A nil mapping is treated as empty.
func NewEdit(mapping *Mapping, docChanged bool) *Edit {
	if mapping == nil {
		mapping = &Mapping{}
	}
	return &Edit{mapping: mapping, docChanged: docChanged}
}

// DocChanged reports whether the edit changed the document structure.
func (e *Edit) DocChanged() bool {
	return e.docChanged
}

// Mapping returns the edit's forward position mapping.
func (e *Edit) Mapping() *Mapping {
	return e.mapping
}

// Map maps an old-document position to the new document.
func (e *Edit) Map(pos int) int {
	return e.mapping.Map(pos, 1)
}

// MapInverse maps a new-document position back to the old document.
// The inverted mapping is built on first use and reused; reconciliation
// calls this once per structural node.
func (e *Edit) MapInverse(pos int) int {
	if e.inverse == nil {
		e.inverse = e.mapping.Invert()
	}
	return e.inverse.Map(pos, 1)
}
