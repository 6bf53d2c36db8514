// Package bst implements an unbalanced binary search tree whose nodes render
// through the generic tree model. Duplicate values collapse into a single
// node carrying an occurrence count.
package bst

import (
	"cmp"
	"fmt"

	"github.com/olivercalder/simple-tree/internal/tree"
)

// Node is one node of an unbalanced binary search tree.
type Node[T cmp.Ordered] struct {
	value T
	count int
	left  *Node[T]
	right *Node[T]
}

var _ tree.Node = (*Node[int])(nil)

// New returns a tree rooted at the given value with an occurrence count of one.
func New[T cmp.Ordered](value T) *Node[T] {
	return &Node[T]{value: value, count: 1}
}

// FromValues returns a tree rooted at the first value with every following
// value inserted in order. An empty slice yields a nil tree.
func FromValues[T cmp.Ordered](values []T) *Node[T] {
	if len(values) == 0 {
		return nil
	}
	root := New(values[0])
	for _, value := range values[1:] {
		root.Insert(value)
	}
	return root
}

// Insert places the value in the subtree rooted at this node. Smaller values
// descend left, larger values descend right, and equal values increment the
// node's occurrence count.
func (node *Node[T]) Insert(value T) {
	switch cmp.Compare(value, node.value) {
	case -1:
		if node.left != nil {
			node.left.Insert(value)
		} else {
			node.left = New(value)
		}
	case 1:
		if node.right != nil {
			node.right.Insert(value)
		} else {
			node.right = New(value)
		}
	default:
		node.count++
	}
}

// Value returns the value stored at this node.
func (node *Node[T]) Value() T {
	return node.value
}

// Count returns the number of times the node's value was inserted.
func (node *Node[T]) Count() int {
	return node.count
}

// Label returns the node's value formatted for display.
func (node *Node[T]) Label() string {
	return fmt.Sprint(node.value)
}

// Children returns the non-nil left and right subtrees in that order.
func (node *Node[T]) Children() []tree.Node {
	var children []tree.Node
	if node.left != nil {
		children = append(children, node.left)
	}
	if node.right != nil {
		children = append(children, node.right)
	}
	return children
}
