package memory

import (
	"github.com/oklog/ulid/v2"
)

// ULIDGenerator generates ULID-based transaction identifiers. ULIDs are
// timestamp-prefixed, so IDs sort in creation order.
type ULIDGenerator struct{}

// NewULIDGenerator creates a new ULIDGenerator.
func NewULIDGenerator() *ULIDGenerator {
	return &ULIDGenerator{}
}

// Generate generates a new ULID.
func (g *ULIDGenerator) Generate() string {
	return ulid.Make().String()
}
