// Package dirtree builds directory hierarchies as renderable tree nodes. A
// builder walks a filesystem path, labels nodes with entry names, and keeps
// traversal going past unreadable entries by reporting warnings to stderr.
package dirtree

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/olivercalder/simple-tree/internal/tokenizer"
	"github.com/olivercalder/simple-tree/internal/tree"
	"github.com/olivercalder/simple-tree/internal/types"
	"github.com/olivercalder/simple-tree/internal/utils"
)

const (
	// warningSkipSubdirFormat is used when a subdirectory cannot be read.
	warningSkipSubdirFormat = "Warning: Skipping subdirectory %s due to error: %v\n"
	// warningStatPathFormat is used when file information cannot be retrieved.
	warningStatPathFormat = "Warning: unable to stat %s: %v\n"
	// warningReadLinkFormat is used when a symbolic link target cannot be read.
	warningReadLinkFormat = "Warning: unable to read link %s: %v\n"
	// warningTokenCountFormat is used when token estimation fails for a file.
	warningTokenCountFormat = "Warning: failed to count tokens for %s: %v\n"

	// errorAbsolutePathFormat is used when the absolute path cannot be determined.
	errorAbsolutePathFormat = "getting absolute path for %s: %w"
	// errorInspectPathFormat is used when a top-level path cannot be inspected.
	errorInspectPathFormat = "inspecting %s: %w"
	// errorBuildTreeFormat is used when building the tree fails.
	errorBuildTreeFormat = "building tree for %s: %w"
	// errorReadDirectoryFormat is used when a directory cannot be read.
	errorReadDirectoryFormat = "reading directory %s: %w"

	// symlinkLabelFormat joins a link name with its resolved target.
	symlinkLabelFormat = "%s -> %s"
	// unknownSymlinkTarget stands in for targets that cannot be read.
	unknownSymlinkTarget = "?"

	tokensDetailFormat = "%d tokens"
	labelDetailFormat  = "%s (%s)"
)

// Node is one filesystem entry in a built directory tree.
type Node struct {
	label         string
	name          string
	path          string
	nodeType      string
	size          string
	sizeBytes     int64
	lastModified  string
	symlinkTarget string
	tokens        int
	children      []*Node
}

var _ tree.Node = (*Node)(nil)
var _ types.Describer = (*Node)(nil)

// Label returns the entry name decorated with any configured detail.
func (node *Node) Label() string {
	return node.label
}

// Children returns the node's entries in lexical order.
func (node *Node) Children() []tree.Node {
	nodes := make([]tree.Node, 0, len(node.children))
	for _, child := range node.children {
		nodes = append(nodes, child)
	}
	return nodes
}

// Describe returns the filesystem detail captured for the node.
func (node *Node) Describe() types.TreeNodeDescription {
	return types.TreeNodeDescription{
		Name:          node.name,
		Path:          node.path,
		Type:          node.nodeType,
		Size:          node.size,
		SizeBytes:     node.sizeBytes,
		LastModified:  node.lastModified,
		SymlinkTarget: node.symlinkTarget,
		Tokens:        node.tokens,
	}
}

// Builder walks filesystem paths into directory trees using configured options.
type Builder struct {
	ExcludePatterns []string
	DirectoriesOnly bool
	IncludeSizes    bool
	TokenCounter    tokenizer.Counter
}

// Build walks the given path and returns its tree. The root label preserves
// the path as given; descendants are labeled with their entry names. A nil
// error means the top-level path was traversed, even if entries below it
// were skipped with warnings.
func (builder *Builder) Build(givenPath string) (*Node, error) {
	absolutePath, absolutePathError := filepath.Abs(givenPath)
	if absolutePathError != nil {
		return nil, fmt.Errorf(errorAbsolutePathFormat, givenPath, absolutePathError)
	}

	rootInfo, rootStatError := os.Lstat(absolutePath)
	if rootStatError != nil {
		return nil, fmt.Errorf(errorInspectPathFormat, givenPath, rootStatError)
	}

	rootNode := &Node{
		name:         filepath.Base(absolutePath),
		path:         absolutePath,
		lastModified: utils.FormatTimestamp(rootInfo.ModTime()),
	}
	rootLabel := filepath.Clean(givenPath)

	switch {
	case rootInfo.Mode()&os.ModeSymlink != 0:
		builder.fillSymlink(rootNode, absolutePath, rootLabel)
	case rootInfo.IsDir():
		rootNode.nodeType = types.NodeTypeDirectory
		rootNode.label = rootLabel
		children, buildError := builder.buildChildren(absolutePath, absolutePath)
		if buildError != nil {
			return nil, fmt.Errorf(errorBuildTreeFormat, givenPath, buildError)
		}
		rootNode.children = children
	default:
		builder.fillFile(rootNode, absolutePath, rootLabel, rootInfo)
	}

	return rootNode, nil
}

// buildChildren reads one directory level and recursively builds child nodes.
// Unreadable subdirectories stay in the tree as childless nodes.
func (builder *Builder) buildChildren(currentDirectoryPath string, rootDirectoryPath string) ([]*Node, error) {
	directoryEntries, readDirectoryError := os.ReadDir(currentDirectoryPath)
	if readDirectoryError != nil {
		return nil, fmt.Errorf(errorReadDirectoryFormat, currentDirectoryPath, readDirectoryError)
	}

	var nodes []*Node
	for _, directoryEntry := range directoryEntries {
		childPath := filepath.Join(currentDirectoryPath, directoryEntry.Name())
		relativeChildPath := utils.RelativePathOrSelf(childPath, rootDirectoryPath)
		if utils.ShouldIgnoreByPath(relativeChildPath, builder.ExcludePatterns) {
			continue
		}
		isSymlink := directoryEntry.Type()&os.ModeSymlink != 0
		if builder.DirectoriesOnly && !directoryEntry.IsDir() {
			continue
		}

		node := &Node{
			name: directoryEntry.Name(),
			path: childPath,
		}

		entryInfo, infoError := directoryEntry.Info()
		if infoError != nil {
			fmt.Fprintf(os.Stderr, warningStatPathFormat, childPath, infoError)
		} else {
			node.lastModified = utils.FormatTimestamp(entryInfo.ModTime())
		}

		switch {
		case isSymlink:
			builder.fillSymlink(node, childPath, directoryEntry.Name())
		case directoryEntry.IsDir():
			node.nodeType = types.NodeTypeDirectory
			node.label = directoryEntry.Name()
			childNodes, buildError := builder.buildChildren(childPath, rootDirectoryPath)
			if buildError != nil {
				fmt.Fprintf(os.Stderr, warningSkipSubdirFormat, childPath, buildError)
				node.children = nil
			} else {
				node.children = childNodes
			}
		default:
			var fileInfo os.FileInfo
			if infoError == nil {
				fileInfo = entryInfo
			}
			builder.fillFile(node, childPath, directoryEntry.Name(), fileInfo)
		}

		nodes = append(nodes, node)
	}

	return nodes, nil
}

// fillSymlink completes a node for a symbolic link. Links are never followed;
// the label carries the link target, or a placeholder when it cannot be read.
func (builder *Builder) fillSymlink(node *Node, linkPath string, baseLabel string) {
	node.nodeType = types.NodeTypeSymlink
	target, readLinkError := os.Readlink(linkPath)
	if readLinkError != nil {
		fmt.Fprintf(os.Stderr, warningReadLinkFormat, linkPath, readLinkError)
		target = unknownSymlinkTarget
	}
	node.symlinkTarget = target
	node.label = fmt.Sprintf(symlinkLabelFormat, baseLabel, target)
}

// fillFile completes a node for a regular file, attaching size and token
// detail when configured.
func (builder *Builder) fillFile(node *Node, filePath string, baseLabel string, fileInfo os.FileInfo) {
	node.nodeType = types.NodeTypeFile
	var details []string
	if builder.IncludeSizes && fileInfo != nil {
		node.sizeBytes = fileInfo.Size()
		node.size = utils.FormatFileSize(fileInfo.Size())
		details = append(details, node.size)
	}
	if builder.TokenCounter != nil {
		tokenCount, counted, tokenError := tokenizer.FileTokens(builder.TokenCounter, filePath)
		if tokenError != nil {
			fmt.Fprintf(os.Stderr, warningTokenCountFormat, filePath, tokenError)
		} else if counted {
			node.tokens = tokenCount
			details = append(details, fmt.Sprintf(tokensDetailFormat, tokenCount))
		}
	}
	node.label = baseLabel
	if len(details) > 0 {
		node.label = fmt.Sprintf(labelDetailFormat, baseLabel, strings.Join(details, ", "))
	}
}

// Stats counts the directories and files reported below the root. A file or
// symlink given directly as the root counts as one file.
func Stats(root *Node) (int, int) {
	if root == nil {
		return 0, 0
	}
	if root.nodeType != types.NodeTypeDirectory {
		return 0, 1
	}
	return countEntries(root)
}

func countEntries(node *Node) (directories int, files int) {
	for _, child := range node.children {
		if child.nodeType == types.NodeTypeDirectory {
			directories++
		} else {
			files++
		}
		childDirectories, childFiles := countEntries(child)
		directories += childDirectories
		files += childFiles
	}
	return directories, files
}
