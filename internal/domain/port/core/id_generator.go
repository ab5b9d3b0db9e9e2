package core

// IDGenerator produces identifiers for locally created records
type IDGenerator interface {
	// NewID returns a new unique record identifier
	NewID() string
	// NewReceipt returns a sortable receipt reference sent to the payment gateway
	NewReceipt() string
}
