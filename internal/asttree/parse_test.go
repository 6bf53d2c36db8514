//go:build cgo

package asttree_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/olivercalder/simple-tree/internal/asttree"
	"github.com/olivercalder/simple-tree/internal/tree"
)

// goSourceContent is a minimal Go file whose parsed tree contains a function
// declaration with a named identifier.
const goSourceContent = "package main\n\nfunc main() {}\n"

// javascriptSourceContent declares a single named function.
const javascriptSourceContent = "function hello() {}\n"

// pythonSourceContent declares a single named function.
const pythonSourceContent = "def hello():\n    pass\n"

func writeSourceFile(testingInstance *testing.T, fileName string, content string) string {
	testingInstance.Helper()
	filePath := filepath.Join(testingInstance.TempDir(), fileName)
	if writeError := os.WriteFile(filePath, []byte(content), 0o600); writeError != nil {
		testingInstance.Fatalf("failed to write source file: %v", writeError)
	}
	return filePath
}

func TestParseRendersGrammarNodes(testingInstance *testing.T) {
	testCases := []struct {
		name              string
		fileName          string
		content           string
		expectedRootLabel string
		expectedFragments []string
	}{
		{
			name:              "go source",
			fileName:          "main.go",
			content:           goSourceContent,
			expectedRootLabel: "source_file",
			expectedFragments: []string{"function_declaration", "identifier (main)"},
		},
		{
			name:              "javascript source",
			fileName:          "app.js",
			content:           javascriptSourceContent,
			expectedRootLabel: "program",
			expectedFragments: []string{"function_declaration", "identifier (hello)"},
		},
		{
			name:              "python source",
			fileName:          "script.py",
			content:           pythonSourceContent,
			expectedRootLabel: "module",
			expectedFragments: []string{"function_definition", "identifier (hello)"},
		},
	}

	for _, testCase := range testCases {
		testingInstance.Run(testCase.name, func(testingInstance *testing.T) {
			filePath := writeSourceFile(testingInstance, testCase.fileName, testCase.content)
			parsedNode, parseError := asttree.Parse(filePath, "")
			if parseError != nil {
				testingInstance.Fatalf("Parse returned error: %v", parseError)
			}
			if parsedNode.Label() != testCase.expectedRootLabel {
				testingInstance.Errorf("unexpected root label: got %q, want %q", parsedNode.Label(), testCase.expectedRootLabel)
			}
			renderedTree := tree.Render(parsedNode)
			for _, expectedFragment := range testCase.expectedFragments {
				if !strings.Contains(renderedTree, expectedFragment) {
					testingInstance.Errorf("rendered tree missing %q:\n%s", expectedFragment, renderedTree)
				}
			}
		})
	}
}

func TestParseExplicitLanguage(testingInstance *testing.T) {
	filePath := writeSourceFile(testingInstance, "script.txt", pythonSourceContent)
	parsedNode, parseError := asttree.Parse(filePath, asttree.LanguagePython)
	if parseError != nil {
		testingInstance.Fatalf("Parse returned error: %v", parseError)
	}
	if parsedNode.Label() != "module" {
		testingInstance.Errorf("unexpected root label: got %q, want %q", parsedNode.Label(), "module")
	}
}

func TestParseUnsupportedExtension(testingInstance *testing.T) {
	filePath := writeSourceFile(testingInstance, "notes.txt", "plain text")
	if _, parseError := asttree.Parse(filePath, ""); parseError == nil {
		testingInstance.Fatal("expected error for unsupported extension")
	}
}

func TestParseMissingFile(testingInstance *testing.T) {
	missingPath := filepath.Join(testingInstance.TempDir(), "missing.go")
	if _, parseError := asttree.Parse(missingPath, ""); parseError == nil {
		testingInstance.Fatal("expected error for missing file")
	}
}
