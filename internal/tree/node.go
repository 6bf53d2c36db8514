// Package tree defines the generic labeled tree model and its connector-glyph
// text renderer. Every printable hierarchy in the application implements the
// minimal Node capability set and is rendered by the same algorithm.
package tree

// Node is the capability set the renderer operates on: a display label and an
// ordered sequence of children. Order is significant and reflects display order.
type Node interface {
	Label() string
	Children() []Node
}

// LabeledNode is the basic Node implementation holding an explicit label and
// an ordered child list.
type LabeledNode struct {
	label    string
	children []Node
}

var _ Node = (*LabeledNode)(nil)

// NewLabeledNode constructs a node with the supplied label and children.
func NewLabeledNode(label string, children ...Node) *LabeledNode {
	return &LabeledNode{label: label, children: children}
}

// Label returns the node's display label.
func (node *LabeledNode) Label() string {
	return node.label
}

// Children returns the node's children in insertion order.
func (node *LabeledNode) Children() []Node {
	return node.children
}

// AddChild appends a child to the node's ordered child list.
func (node *LabeledNode) AddChild(child Node) {
	node.children = append(node.children, child)
}

// CountChildren returns the number of immediate children of the node.
func CountChildren(node Node) int {
	if node == nil {
		return 0
	}
	return len(node.Children())
}

// CountDescendants returns the number of nodes below the given node.
func CountDescendants(node Node) int {
	if node == nil {
		return 0
	}
	total := 0
	for _, child := range node.Children() {
		if child == nil {
			continue
		}
		total += 1 + CountDescendants(child)
	}
	return total
}
