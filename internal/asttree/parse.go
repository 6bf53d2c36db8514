//go:build cgo

package asttree

import (
	"fmt"
	"os"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/golang"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/python"
)

const (
	maximumLeafTextLength = 32

	leafLabelFormat       = "%s (%s)"
	errorReadSourceFormat = "reading source file %s: %w"
	errorParseFormat      = "parsing %s: %w"
)

// Parse reads a source file and converts its named grammar nodes into a
// renderable tree. An empty language is detected from the file extension.
func Parse(filePath string, language Language) (*Node, error) {
	if language == "" {
		detectedLanguage, detectError := DetectLanguage(filePath)
		if detectError != nil {
			return nil, detectError
		}
		language = detectedLanguage
	}
	grammar, grammarError := grammarForLanguage(language)
	if grammarError != nil {
		return nil, grammarError
	}
	content, readError := os.ReadFile(filePath)
	if readError != nil {
		return nil, fmt.Errorf(errorReadSourceFormat, filePath, readError)
	}
	parser := sitter.NewParser()
	parser.SetLanguage(grammar)
	parsedTree := parser.Parse(nil, content)
	if parsedTree == nil {
		return nil, fmt.Errorf(errorParseFormat, filePath, ErrUnsupportedLanguage)
	}
	defer parsedTree.Close()
	return convertNode(parsedTree.RootNode(), content), nil
}

func grammarForLanguage(language Language) (*sitter.Language, error) {
	switch language {
	case LanguageGo:
		return golang.GetLanguage(), nil
	case LanguageJavaScript:
		return javascript.GetLanguage(), nil
	case LanguagePython:
		return python.GetLanguage(), nil
	}
	return nil, fmt.Errorf(errorUnsupportedLanguageFormat, ErrUnsupportedLanguage, language)
}

// convertNode copies a grammar node and its named children out of the parsed
// tree so the result stays valid after the tree is closed.
func convertNode(grammarNode *sitter.Node, content []byte) *Node {
	converted := &Node{label: nodeLabel(grammarNode, content)}
	childCount := int(grammarNode.NamedChildCount())
	for childIndex := 0; childIndex < childCount; childIndex++ {
		child := grammarNode.NamedChild(childIndex)
		if child == nil {
			continue
		}
		converted.children = append(converted.children, convertNode(child, content))
	}
	return converted
}

// nodeLabel appends the source text of short single-line leaves so that
// identifiers and literals stay readable in the rendered tree.
func nodeLabel(grammarNode *sitter.Node, content []byte) string {
	nodeType := grammarNode.Type()
	if grammarNode.NamedChildCount() > 0 {
		return nodeType
	}
	startByte := int(grammarNode.StartByte())
	endByte := int(grammarNode.EndByte())
	if startByte < 0 || endByte > len(content) || startByte >= endByte {
		return nodeType
	}
	nodeText := strings.TrimSpace(string(content[startByte:endByte]))
	if nodeText == "" || nodeText == nodeType {
		return nodeType
	}
	if len(nodeText) > maximumLeafTextLength || strings.ContainsRune(nodeText, '\n') {
		return nodeType
	}
	return fmt.Sprintf(leafLabelFormat, nodeType, nodeText)
}
