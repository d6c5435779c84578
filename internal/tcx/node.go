package tcx

import "sort"

// Attr is a single attribute of an element.
type Attr struct {
	Name  string
	Value string
}

// Node is one element of a parsed TCX document. The tree is mutable and
// shared: views wrap nodes, they never copy them. Name is the local tag
// name; namespace prefixes are dropped during parsing and never written
// back out.
type Node struct {
	Name     string
	Attrs    []Attr
	Text     string
	Children []*Node
}

// Attr returns the value of the named attribute.
func (n *Node) Attr(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// SetAttr sets the named attribute, adding it if absent.
func (n *Node) SetAttr(name, value string) {
	for i := range n.Attrs {
		if n.Attrs[i].Name == name {
			n.Attrs[i].Value = value
			return
		}
	}
	n.Attrs = append(n.Attrs, Attr{Name: name, Value: value})
}

// Append adds child nodes at the end of the children list.
func (n *Node) Append(children ...*Node) {
	n.Children = append(n.Children, children...)
}

// RemoveChildren detaches every direct child matching the predicate and
// returns the detached nodes in document order.
func (n *Node) RemoveChildren(match func(*Node) bool) []*Node {
	var removed []*Node
	kept := n.Children[:0]
	for _, c := range n.Children {
		if match(c) {
			removed = append(removed, c)
		} else {
			kept = append(kept, c)
		}
	}
	n.Children = kept
	return removed
}

// SortChildren orders the direct children with a stable sort.
func (n *Node) SortChildren(less func(a, b *Node) bool) {
	sort.SliceStable(n.Children, func(i, j int) bool {
		return less(n.Children[i], n.Children[j])
	})
}
