package model

import "testing"

// buildDoc constructs a document and fails the test on any construction error.
func buildDoc(t *testing.T, s *Schema, typeName string, children ...*Node) *Node {
	t.Helper()
	n, err := s.Node(typeName, children...)
	if err != nil {
		t.Fatalf("Failed to build %s: %v", typeName, err)
	}
	return n
}

func TestNode_Size(t *testing.T) {
	s := testSchema(t)

	p1 := buildDoc(t, s, "paragraph", s.Text("ab"))
	p2 := buildDoc(t, s, "paragraph", s.Text("cd"))
	img := buildDoc(t, s, "image")
	mixed := buildDoc(t, s, "paragraph", s.Text("a"), img, s.Text("b"))

	tests := []struct {
		name string
		node *Node
		want int
	}{
		{name: "text", node: s.Text("ab"), want: 2},
		{name: "empty paragraph", node: buildDoc(t, s, "paragraph"), want: 2},
		{name: "paragraph with text", node: p1, want: 4},
		{name: "leaf image", node: img, want: 2},
		{name: "mixed inline content", node: mixed, want: 6},
		{name: "two paragraphs", node: buildDoc(t, s, "doc", p1, p2), want: 10},
		{name: "nested blockquote", node: buildDoc(t, s, "doc", buildDoc(t, s, "blockquote", p1)), want: 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.Size(); got != tt.want {
				t.Errorf("Size() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNode_EachNode(t *testing.T) {
	s := testSchema(t)

	doc := buildDoc(t, s, "doc",
		buildDoc(t, s, "blockquote", buildDoc(t, s, "paragraph", s.Text("ab"))),
		buildDoc(t, s, "paragraph", s.Text("cd")),
	)

	var positions []int
	doc.EachNode(func(pos int) bool {
		positions = append(positions, pos)
		return true
	})

	want := []int{0, 1, 2, 7}
	if len(positions) != len(want) {
		t.Fatalf("EachNode() visited %v, want %v", positions, want)
	}
	for i := range want {
		if positions[i] != want[i] {
			t.Errorf("EachNode()[%d] = %v, want %v", i, positions[i], want[i])
		}
	}
}

func TestNode_EachNode_SkipSubtree(t *testing.T) {
	s := testSchema(t)

	doc := buildDoc(t, s, "doc",
		buildDoc(t, s, "blockquote", buildDoc(t, s, "paragraph", s.Text("ab"))),
		buildDoc(t, s, "paragraph", s.Text("cd")),
	)

	var positions []int
	doc.EachNode(func(pos int) bool {
		positions = append(positions, pos)
		// Do not descend into the blockquote at position 1.
		return pos != 1
	})

	want := []int{0, 1, 7}
	if len(positions) != len(want) {
		t.Fatalf("EachNode() visited %v, want %v", positions, want)
	}
	for i := range want {
		if positions[i] != want[i] {
			t.Errorf("EachNode()[%d] = %v, want %v", i, positions[i], want[i])
		}
	}
}

func TestNode_Descendants(t *testing.T) {
	s := testSchema(t)

	doc := buildDoc(t, s, "doc",
		buildDoc(t, s, "paragraph", s.Text("ab")),
		buildDoc(t, s, "paragraph", s.Text("cd")),
	)

	type visit struct {
		typeName string
		pos      int
	}
	var visits []visit
	doc.Descendants(func(child *Node, pos int) bool {
		visits = append(visits, visit{child.TypeName(), pos})
		return true
	})

	want := []visit{
		{"paragraph", 1},
		{"text", 2},
		{"paragraph", 5},
		{"text", 6},
	}
	if len(visits) != len(want) {
		t.Fatalf("Descendants() visited %v, want %v", visits, want)
	}
	for i := range want {
		if visits[i] != want[i] {
			t.Errorf("Descendants()[%d] = %v, want %v", i, visits[i], want[i])
		}
	}
}

func TestNode_Descendants_SkipSubtree(t *testing.T) {
	s := testSchema(t)

	doc := buildDoc(t, s, "doc",
		buildDoc(t, s, "paragraph", s.Text("ab")),
		buildDoc(t, s, "paragraph", s.Text("cd")),
	)

	var count int
	doc.Descendants(func(child *Node, pos int) bool {
		count++
		// Skip paragraph content entirely.
		return child.IsText()
	})

	// Two paragraphs visited, their text children skipped.
	if count != 2 {
		t.Errorf("Descendants() visited %v nodes, want 2", count)
	}
}

func TestNode_NodeAt(t *testing.T) {
	s := testSchema(t)

	doc := buildDoc(t, s, "doc",
		buildDoc(t, s, "paragraph", s.Text("ab")),
		buildDoc(t, s, "paragraph", s.Text("cd")),
	)

	tests := []struct {
		name     string
		pos      int
		wantType string
		wantOK   bool
	}{
		{name: "root", pos: 0, wantType: "doc", wantOK: true},
		{name: "first paragraph", pos: 1, wantType: "paragraph", wantOK: true},
		{name: "second paragraph", pos: 5, wantType: "paragraph", wantOK: true},
		{name: "text token", pos: 2, wantOK: false},
		{name: "closing token", pos: 4, wantOK: false},
		{name: "past end", pos: 42, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, ok := doc.NodeAt(tt.pos)
			if ok != tt.wantOK {
				t.Fatalf("NodeAt(%d) ok = %v, want %v", tt.pos, ok, tt.wantOK)
			}
			if ok && node.TypeName() != tt.wantType {
				t.Errorf("NodeAt(%d) = %v, want %v", tt.pos, node.TypeName(), tt.wantType)
			}
		})
	}
}

func TestNode_String(t *testing.T) {
	s := testSchema(t)

	doc := buildDoc(t, s, "doc",
		buildDoc(t, s, "paragraph", s.Text("ab"), buildDoc(t, s, "image")),
		buildDoc(t, s, "paragraph"),
	)

	want := `doc(paragraph("ab", image), paragraph)`
	if got := doc.String(); got != want {
		t.Errorf("String() = %v, want %v", got, want)
	}
}

func TestNode_TextContent(t *testing.T) {
	s := testSchema(t)

	doc := buildDoc(t, s, "doc",
		buildDoc(t, s, "paragraph", s.Text("ab")),
		buildDoc(t, s, "blockquote", buildDoc(t, s, "paragraph", s.Text("cd"))),
	)

	if got := doc.TextContent(); got != "abcd" {
		t.Errorf("TextContent() = %v, want abcd", got)
	}
}
