package ports

import "context"

// CustomerRepository defines the loyalty-ledger contract for customer records.
// The customer record is owned and mutated exclusively by the data store;
// the application issues a single conditional increment and never reads back
// the resulting balance.
type CustomerRepository interface {
	// AddLoyaltyPoints applies an additive points increment to the customer's
	// stored balance. Returns an ObjectNotFoundError when the customer does
	// not exist (the update affected no rows) and a transport error when the
	// store is unreachable.
	AddLoyaltyPoints(ctx context.Context, customerID string, points int) error
}
