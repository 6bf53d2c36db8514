// Package utils contains general helper functions used across the simpletree tool.
package utils

import (
	"path/filepath"
	"strings"
)

const pathSegmentSeparator = "/"

// DeduplicatePatterns returns patterns with later duplicates removed,
// preserving first-occurrence order.
func DeduplicatePatterns(patterns []string) []string {
	uniquePatterns := make([]string, 0, len(patterns))
	seenPatterns := make(map[string]struct{}, len(patterns))
	for _, pattern := range patterns {
		if _, seen := seenPatterns[pattern]; seen {
			continue
		}
		seenPatterns[pattern] = struct{}{}
		uniquePatterns = append(uniquePatterns, pattern)
	}
	return uniquePatterns
}

// RelativePathOrSelf rewrites fullPath relative to root, returning "." when
// the two resolve to the same directory. When no relative form can be
// computed the cleaned fullPath is returned unchanged.
func RelativePathOrSelf(fullPath, root string) string {
	cleanedPath := filepath.Clean(fullPath)
	absoluteRoot, absoluteError := filepath.Abs(root)
	if absoluteError != nil {
		return cleanedPath
	}
	rootPath := filepath.Clean(absoluteRoot)
	if cleanedPath == rootPath {
		return "."
	}
	relativePath, relativeError := filepath.Rel(rootPath, cleanedPath)
	if relativeError != nil {
		return cleanedPath
	}
	return filepath.ToSlash(relativePath)
}

// ShouldIgnoreByPath reports whether a path relative to the traversal root is
// excluded by any of the provided patterns. Paths and patterns are compared
// in forward-slash form. A pattern with a trailing slash excludes the named
// directory together with everything beneath it, a single-segment pattern
// matches the entry name anywhere in the tree, and multi-segment patterns
// must cover the whole relative path. Segments are compared with
// filepath.Match semantics.
func ShouldIgnoreByPath(relativePath string, excludePatterns []string) bool {
	pathSegments := splitPathSegments(relativePath)
	for _, pattern := range excludePatterns {
		if patternExcludesPath(pattern, pathSegments) {
			return true
		}
	}
	return false
}

// splitPathSegments normalizes backslashes to forward slashes and splits the
// path into its segments.
func splitPathSegments(path string) []string {
	normalizedPath := strings.ReplaceAll(path, "\\", pathSegmentSeparator)
	return strings.Split(normalizedPath, pathSegmentSeparator)
}

// patternExcludesPath evaluates a single exclude pattern against a segmented
// relative path.
func patternExcludesPath(pattern string, pathSegments []string) bool {
	normalizedPattern := strings.ReplaceAll(pattern, "\\", pathSegmentSeparator)
	isDirectoryPattern := strings.HasSuffix(normalizedPattern, pathSegmentSeparator)
	patternSegments := strings.Split(strings.TrimSuffix(normalizedPattern, pathSegmentSeparator), pathSegmentSeparator)

	if isDirectoryPattern {
		return len(pathSegments) >= len(patternSegments) &&
			segmentsMatch(pathSegments[:len(patternSegments)], patternSegments)
	}
	if len(patternSegments) == 1 {
		entryName := pathSegments[len(pathSegments)-1]
		matched, matchError := filepath.Match(patternSegments[0], entryName)
		return matchError == nil && matched
	}
	return len(pathSegments) == len(patternSegments) && segmentsMatch(pathSegments, patternSegments)
}

// segmentsMatch reports whether every pattern segment matches the
// corresponding path segment using filepath.Match semantics.
func segmentsMatch(pathSegments, patternSegments []string) bool {
	for segmentIndex, patternSegment := range patternSegments {
		matched, matchError := filepath.Match(patternSegment, pathSegments[segmentIndex])
		if matchError != nil || !matched {
			return false
		}
	}
	return true
}
