package tcx

import (
	"iter"
	"strings"
)

// matchTag reports whether a tag name matches the requested name. Strict
// matching requires the tag to end with the name, which tolerates any
// namespace decoration left on extension elements; loose matching accepts
// the name anywhere in the tag.
func matchTag(tag, name string, strict bool) bool {
	if strict {
		return strings.HasSuffix(tag, name)
	}
	return strings.Contains(tag, name)
}

// FindAll walks the subtree rooted at n in pre-order, root included, and
// yields every node whose tag matches name. Traversal is lazy; restarting
// means calling FindAll again.
func FindAll(n *Node, name string, strict bool) iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		var walk func(*Node) bool
		walk = func(cur *Node) bool {
			if matchTag(cur.Name, name, strict) {
				if !yield(cur) {
					return false
				}
			}
			for _, c := range cur.Children {
				if !walk(c) {
					return false
				}
			}
			return true
		}
		walk(n)
	}
}

// FindFirst returns the first node of the same traversal, or nil when the
// subtree has no match. A nil result is expected for optional elements and
// is not an error.
func FindFirst(n *Node, name string, strict bool) *Node {
	for match := range FindAll(n, name, strict) {
		return match
	}
	return nil
}

// collect drains a node sequence into a slice.
func collect(seq iter.Seq[*Node]) []*Node {
	var nodes []*Node
	for n := range seq {
		nodes = append(nodes, n)
	}
	return nodes
}
