package idgen

import (
	"github.com/amirhossein-jamali/credit-engine/internal/domain/port/core"
	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// DefaultReceiptPrefix prefixes every receipt sent to the gateway
const DefaultReceiptPrefix = "rcpt"

// Generator issues UUIDv4 record ids and ULID receipts. ULIDs sort by creation
// time, which keeps receipts readable in the gateway dashboard.
type Generator struct {
	receiptPrefix string
}

var _ core.IDGenerator = (*Generator)(nil)

// NewGenerator creates a new Generator. An empty prefix uses DefaultReceiptPrefix.
func NewGenerator(receiptPrefix string) *Generator {
	if receiptPrefix == "" {
		receiptPrefix = DefaultReceiptPrefix
	}
	return &Generator{receiptPrefix: receiptPrefix}
}

// NewID returns a random UUID
func (g *Generator) NewID() string {
	return uuid.NewString()
}

// NewReceipt returns <prefix>_<ULID>
func (g *Generator) NewReceipt() string {
	return g.receiptPrefix + "_" + ulid.Make().String()
}
