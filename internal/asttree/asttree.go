// Package asttree parses source files into renderable syntax trees using
// tree-sitter grammars. Parsing requires cgo; builds without it keep the
// package importable and report ErrUnavailable instead.
package asttree

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/olivercalder/simple-tree/internal/tree"
)

// Language identifies a supported source language.
type Language string

const (
	// LanguageGo selects the Go grammar.
	LanguageGo Language = "go"
	// LanguageJavaScript selects the JavaScript grammar.
	LanguageJavaScript Language = "javascript"
	// LanguagePython selects the Python grammar.
	LanguagePython Language = "python"
)

const (
	goFileExtension         = ".go"
	javascriptFileExtension = ".js"
	pythonFileExtension     = ".py"

	errorUnsupportedExtensionFormat = "%w: no grammar for extension '%s'"
	errorUnsupportedLanguageFormat  = "%w: '%s'"
)

// ErrUnavailable reports that the binary was built without cgo support.
var ErrUnavailable = errors.New("syntax trees require a build with cgo enabled")

// ErrUnsupportedLanguage reports a language without a bundled grammar.
var ErrUnsupportedLanguage = errors.New("unsupported language")

// Node is one named grammar node of a parsed source tree, detached from the
// parser that produced it.
type Node struct {
	label    string
	children []*Node
}

var _ tree.Node = (*Node)(nil)

// Label returns the grammar node type, with leaf source text attached when short.
func (node *Node) Label() string {
	return node.label
}

// Children returns the node's named grammar children in source order.
func (node *Node) Children() []tree.Node {
	nodes := make([]tree.Node, 0, len(node.children))
	for _, child := range node.children {
		nodes = append(nodes, child)
	}
	return nodes
}

// DetectLanguage maps a source file extension to its language.
func DetectLanguage(filePath string) (Language, error) {
	extension := strings.ToLower(filepath.Ext(filePath))
	switch extension {
	case goFileExtension:
		return LanguageGo, nil
	case javascriptFileExtension:
		return LanguageJavaScript, nil
	case pythonFileExtension:
		return LanguagePython, nil
	}
	return "", fmt.Errorf(errorUnsupportedExtensionFormat, ErrUnsupportedLanguage, extension)
}

// ParseLanguage validates an explicit language name supplied by a user.
func ParseLanguage(value string) (Language, error) {
	switch Language(value) {
	case LanguageGo, LanguageJavaScript, LanguagePython:
		return Language(value), nil
	}
	return "", fmt.Errorf(errorUnsupportedLanguageFormat, ErrUnsupportedLanguage, value)
}
