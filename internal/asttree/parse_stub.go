//go:build !cgo

package asttree

// Parse reports that syntax trees are unavailable in builds without cgo.
func Parse(filePath string, language Language) (*Node, error) {
	return nil, ErrUnavailable
}
