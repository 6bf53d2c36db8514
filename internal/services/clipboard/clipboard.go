// Package clipboard copies rendered output to the system clipboard.
package clipboard

import (
	"github.com/atotto/clipboard"
)

// Copier places textual data on the system clipboard.
type Copier interface {
	Copy(text string) error
}

// Service implements Copier through github.com/atotto/clipboard.
type Service struct{}

var _ Copier = (*Service)(nil)

// NewService returns a clipboard-backed Copier.
func NewService() *Service {
	return &Service{}
}

// Copy writes text to the system clipboard.
func (service *Service) Copy(text string) error {
	return clipboard.WriteAll(text)
}
