package tree

import (
	"fmt"
	"io"
	"strings"
)

const (
	branchConnector = "├── "
	lastConnector   = "└── "
	branchPadding   = "│   "
	lastPadding     = "    "
)

// Write renders the tree rooted at node to the writer, one line per node in
// pre-order. The root label is written bare; every descendant line is prefixed
// with the connector for its sibling position and the accumulated padding of
// its ancestors.
func Write(writer io.Writer, node Node) {
	if node == nil {
		return
	}
	writeNode(writer, node, "", true, true)
}

// Render returns the rendered tree as a single string ending in a newline.
func Render(node Node) string {
	var builder strings.Builder
	Write(&builder, node)
	return builder.String()
}

// Lines returns the rendered tree as a slice of lines without line terminators.
func Lines(node Node) []string {
	rendered := Render(node)
	if rendered == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(rendered, "\n"), "\n")
}

func nodeLinePrefix(prefix string, isRoot bool, isLast bool) (string, string) {
	if isRoot {
		return "", ""
	}
	connector := branchConnector
	childPrefix := prefix + branchPadding
	if isLast {
		connector = lastConnector
		childPrefix = prefix + lastPadding
	}
	return prefix + connector, childPrefix
}

func writeNode(writer io.Writer, node Node, prefix string, isRoot bool, isLast bool) {
	linePrefix, childPrefix := nodeLinePrefix(prefix, isRoot, isLast)
	fmt.Fprintf(writer, "%s%s\n", linePrefix, node.Label())
	children := node.Children()
	for index, child := range children {
		if child == nil {
			continue
		}
		writeNode(writer, child, childPrefix, false, index == len(children)-1)
	}
}
