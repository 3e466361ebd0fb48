package gen

import "slices"

// Document is a mapping document: an ordered tree of named nodes with
// string attributes. The serialization syntax belongs to the writer.
type Document struct {
	// Name is the file stem the document is written under.
	Name string
	// Runtime is the document family.
	Runtime Runtime
	// Root is the document element. It exists even when no statement
	// was emitted.
	Root *Node
}

// Node is a document element or, when Name is empty, a text node.
type Node struct {
	Name     string
	Attrs    []Attr
	Text     string
	Children []*Node
}

// Attr is a node attribute. Attribute order is preserved.
type Attr struct {
	Key, Value string
}

// Elem returns a new element node.
func Elem(name string, attrs ...Attr) *Node {
	return &Node{Name: name, Attrs: attrs}
}

// Text returns a new text node.
func Text(s string) *Node {
	return &Node{Text: s}
}

// A returns an attribute.
func A(key, value string) Attr {
	return Attr{Key: key, Value: value}
}

// Add appends children and returns the node.
func (n *Node) Add(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

// AddText appends a text node and returns the node.
func (n *Node) AddText(s string) *Node {
	return n.Add(Text(s))
}

// IsText reports whether the node is a text node.
func (n *Node) IsText() bool { return n.Name == "" }

// Attr returns the value of the attribute with the given key.
func (n *Node) Attr(key string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

// ID returns the id attribute, if any.
func (n *Node) ID() string {
	id, _ := n.Attr("id")
	return id
}

// Walk visits the node and its descendants in document order. Returning
// false from fn skips the children of the visited node.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// Clone returns a deep copy of the node.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	c := &Node{Name: n.Name, Text: n.Text, Attrs: slices.Clone(n.Attrs)}
	if len(n.Children) > 0 {
		c.Children = make([]*Node, len(n.Children))
		for i, child := range n.Children {
			c.Children[i] = child.Clone()
		}
	}
	return c
}

// Kind implements the Artifact interface.
func (*Document) Kind() Kind { return KindDocument }

// ArtifactName implements the Artifact interface.
func (d *Document) ArtifactName() string { return d.Name }

// Empty always reports false; a document always has its root element.
func (d *Document) Empty() bool { return false }

// Clone returns a deep copy of the document. Hooks that modify a document
// should modify a copy.
func (d *Document) Clone() *Document {
	c := *d
	c.Root = d.Root.Clone()
	return &c
}

// Elements returns the top-level elements of the document in order.
func (d *Document) Elements() []*Node {
	var nodes []*Node
	for _, c := range d.Root.Children {
		if !c.IsText() {
			nodes = append(nodes, c)
		}
	}
	return nodes
}

// IDs returns the ids of the top-level elements in order.
func (d *Document) IDs() []string {
	var ids []string
	for _, n := range d.Elements() {
		ids = append(ids, n.ID())
	}
	return ids
}

// Lookup returns the top-level element with the given id, or nil.
func (d *Document) Lookup(id string) *Node {
	for _, n := range d.Elements() {
		if n.ID() == id {
			return n
		}
	}
	return nil
}

// Refs returns every fragment id the document refers to: include refids,
// resultMap references and result map extensions. Duplicates are kept.
func (d *Document) Refs() []string {
	var refs []string
	d.Root.Walk(func(n *Node) bool {
		for _, key := range []string{"refid", "resultMap", "extends"} {
			if v, ok := n.Attr(key); ok {
				refs = append(refs, localRef(v))
			}
		}
		return true
	})
	return refs
}

// Dangling returns the references that no top-level element defines.
func (d *Document) Dangling() []string {
	var missing []string
	for _, ref := range d.Refs() {
		if d.Lookup(ref) == nil && !slices.Contains(missing, ref) {
			missing = append(missing, ref)
		}
	}
	return missing
}

// localRef strips a namespace qualifier, as legacy documents qualify
// references with the table namespace.
func localRef(ref string) string {
	for i := len(ref) - 1; i >= 0; i-- {
		if ref[i] == '.' {
			return ref[i+1:]
		}
	}
	return ref
}
