package vtree

import (
	"sort"

	"zkconf/internal/vpath"
)

// Node is one entry in the reconstructed virtual tree: a directory when it
// has children, a leaf document otherwise. A name can be both a stored
// document and a virtual directory; such a node simply carries children.
type Node struct {
	Name string

	children []*Node
	byName   map[string]*Node
}

func newNode(name string) *Node {
	return &Node{
		Name:   name,
		byName: make(map[string]*Node),
	}
}

// child returns the named child, creating it in first-seen order.
func (n *Node) child(name string) *Node {
	if existing, ok := n.byName[name]; ok {
		return existing
	}
	c := newNode(name)
	n.byName[name] = c
	n.children = append(n.children, c)
	return c
}

// Children returns the node's children in insertion order.
func (n *Node) Children() []*Node {
	return n.children
}

// IsDir reports whether other entries are nested beneath this node.
func (n *Node) IsDir() bool {
	return len(n.children) > 0
}

// Build reconstructs the virtual tree from the flat child names of the
// configuration znode. Names are sorted lexicographically before the walk,
// so children end up in stable lexicographic order per parent; within a
// parent the order is first-seen during the walk, which the sort makes
// deterministic. An empty input yields a root with no children.
func Build(flatNames []string) *Node {
	sorted := append([]string(nil), flatNames...)
	sort.Strings(sorted)

	root := newNode("")
	for _, flat := range sorted {
		if flat == "" {
			continue
		}
		node := root
		for _, segment := range vpath.DecodeFlat(flat).Segments() {
			node = node.child(segment)
		}
	}
	return root
}
