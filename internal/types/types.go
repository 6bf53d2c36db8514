// Package types defines every cross‑package data structure used by the simpletree CLI.
package types

import "encoding/xml"

const (
	NodeTypeFile      = "file"
	NodeTypeDirectory = "directory"
	NodeTypeSymlink   = "symlink"

	CommandTree   = "tree"
	CommandTrie   = "trie"
	CommandBST    = "bst"
	CommandSyntax = "syntax"

	FormatRaw  = "raw"
	FormatJSON = "json"
	FormatXML  = "xml"
)

// ValidatedPath is an input path that already passed existence checks. The
// given form is preserved for display while the absolute form deduplicates
// repeated arguments.
type ValidatedPath struct {
	GivenPath    string
	AbsolutePath string
	IsDir        bool
}

// TreeNodeDescription carries the filesystem detail attached to a directory
// tree node. Tree sources without filesystem backing leave it empty.
type TreeNodeDescription struct {
	Name          string
	Path          string
	Type          string
	Size          string
	SizeBytes     int64
	LastModified  string
	SymlinkTarget string
	Tokens        int
}

// Describer is implemented by tree nodes that can report filesystem detail
// for structured output.
type Describer interface {
	Describe() TreeNodeDescription
}

// TreeOutputNode represents a rendered tree node in JSON and XML output.
type TreeOutputNode struct {
	XMLName      xml.Name          `json:"-" xml:"node"`
	Label        string            `json:"label" xml:"label"`
	Name         string            `json:"name,omitempty" xml:"name,omitempty"`
	Path         string            `json:"path,omitempty" xml:"path,omitempty"`
	Type         string            `json:"type,omitempty" xml:"type,omitempty"`
	Size         string            `json:"size,omitempty" xml:"size,omitempty"`
	SizeBytes    int64             `json:"-" xml:"-"`
	LastModified string            `json:"lastModified,omitempty" xml:"lastModified,omitempty"`
	Target       string            `json:"target,omitempty" xml:"target,omitempty"`
	Tokens       int               `json:"tokens,omitempty" xml:"tokens,omitempty"`
	Children     []*TreeOutputNode `json:"children,omitempty" xml:"children>node,omitempty"`
}
