package memory

import (
	"fmt"
	"math/rand"
	"time"
)

// AccountNumberGenerator produces account numbers in the form
// ACC-YYYYMMDD-NNNNN, where the date segment is the UTC generation date and
// the numeric segment is a uniform random draw in [0, 99999]. Numbers can
// collide; the ledger store rejects duplicates at creation and the account
// use case retries.
type AccountNumberGenerator struct{}

// NewAccountNumberGenerator creates a new AccountNumberGenerator.
func NewAccountNumberGenerator() *AccountNumberGenerator {
	return &AccountNumberGenerator{}
}

// Generate returns a freshly drawn account number candidate.
func (g *AccountNumberGenerator) Generate() string {
	return fmt.Sprintf("ACC-%s-%05d", time.Now().UTC().Format("20060102"), rand.Intn(100000))
}
