// Package output renders trees in the formats the CLI exposes. Raw text
// delegates to the connector renderer; JSON and XML marshal the structured
// node form.
package output

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"

	"github.com/olivercalder/simple-tree/internal/tree"
	"github.com/olivercalder/simple-tree/internal/types"
)

const (
	indentPrefix = ""
	indentSpacer = "  "

	xmlHeader      = xml.Header
	xmlResultsName = "results"

	emptyJSONDocument = "[]"

	directoriesLabel       = "directories"
	singleDirectoryLabel   = "directory"
	filesLabel             = "files"
	singleFileLabel        = "file"
	summaryCountLineFormat = "%d %s, %d %s"
)

// WriteText writes the connector-drawn tree for the root to the writer.
func WriteText(writer io.Writer, root tree.Node) {
	tree.Write(writer, root)
}

// RenderText returns the connector-drawn tree for the root.
func RenderText(root tree.Node) string {
	return tree.Render(root)
}

// BuildOutputNode converts a renderable tree into its structured output form.
// Nodes that describe filesystem detail carry that detail into the result.
func BuildOutputNode(node tree.Node) *types.TreeOutputNode {
	if node == nil {
		return nil
	}
	outputNode := &types.TreeOutputNode{Label: node.Label()}
	if describer, isDescriber := node.(types.Describer); isDescriber {
		description := describer.Describe()
		outputNode.Name = description.Name
		outputNode.Path = description.Path
		outputNode.Type = description.Type
		outputNode.Size = description.Size
		outputNode.SizeBytes = description.SizeBytes
		outputNode.LastModified = description.LastModified
		outputNode.Target = description.SymlinkTarget
		outputNode.Tokens = description.Tokens
	}
	for _, child := range node.Children() {
		childNode := BuildOutputNode(child)
		if childNode == nil {
			continue
		}
		outputNode.Children = append(outputNode.Children, childNode)
	}
	return outputNode
}

// BuildOutputNodes converts each root, dropping nil entries.
func BuildOutputNodes(roots []tree.Node) []*types.TreeOutputNode {
	outputNodes := make([]*types.TreeOutputNode, 0, len(roots))
	for _, root := range roots {
		outputNode := BuildOutputNode(root)
		if outputNode == nil {
			continue
		}
		outputNodes = append(outputNodes, outputNode)
	}
	return outputNodes
}

// RenderJSON marshals the roots as an indented JSON document. A single root
// marshals as an object and several roots as an array.
func RenderJSON(roots []tree.Node) (string, error) {
	outputNodes := BuildOutputNodes(roots)
	if len(outputNodes) == 0 {
		return emptyJSONDocument, nil
	}
	if len(outputNodes) == 1 {
		encoded, jsonEncodeError := json.MarshalIndent(outputNodes[0], indentPrefix, indentSpacer)
		return string(encoded), jsonEncodeError
	}
	encoded, jsonEncodeError := json.MarshalIndent(outputNodes, indentPrefix, indentSpacer)
	return string(encoded), jsonEncodeError
}

// RenderXML marshals the roots as an XML document. A single root marshals as
// the document element and several roots are wrapped in a results element.
func RenderXML(roots []tree.Node) (string, error) {
	outputNodes := BuildOutputNodes(roots)
	if len(outputNodes) == 1 {
		encoded, xmlMarshalError := xml.MarshalIndent(outputNodes[0], indentPrefix, indentSpacer)
		if xmlMarshalError != nil {
			return "", xmlMarshalError
		}
		return xmlHeader + string(encoded), nil
	}
	wrapper := struct {
		XMLName xml.Name                `xml:""`
		Nodes   []*types.TreeOutputNode `xml:"node"`
	}{XMLName: xml.Name{Local: xmlResultsName}, Nodes: outputNodes}
	encoded, xmlMarshalError := xml.MarshalIndent(wrapper, indentPrefix, indentSpacer)
	if xmlMarshalError != nil {
		return "", xmlMarshalError
	}
	return xmlHeader + string(encoded), nil
}

// FormatSummaryLine formats directory and file counts with singular forms
// when a count is exactly one.
func FormatSummaryLine(directories int, files int) string {
	directoriesLabelText := directoriesLabel
	if directories == 1 {
		directoriesLabelText = singleDirectoryLabel
	}
	filesLabelText := filesLabel
	if files == 1 {
		filesLabelText = singleFileLabel
	}
	return fmt.Sprintf(summaryCountLineFormat, directories, directoriesLabelText, files, filesLabelText)
}
