// Package idgen generates identifiers for nodes added through the form.
package idgen

import (
	"github.com/google/uuid"
	"go.trai.ch/kin/internal/core/domain"
	"go.trai.ch/kin/internal/core/ports"
	"go.trai.ch/zerr"
)

// UUIDGenerator produces "line-" followed by a random version 4 UUID.
// Uniqueness is left to the randomness of the UUID.
type UUIDGenerator struct{}

// New creates a UUIDGenerator.
func New() *UUIDGenerator {
	return &UUIDGenerator{}
}

var _ ports.IDGenerator = (*UUIDGenerator)(nil)

// NewID returns a fresh node id.
func (g *UUIDGenerator) NewID() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", zerr.Wrap(err, "failed to generate node id")
	}
	return domain.ConnectorPrefix + id.String(), nil
}
