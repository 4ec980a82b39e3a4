// Package receipt provides the domain entity and calculation logic for order
// receipts in the order-completion service. It implements the Receipt aggregate
// root together with the pure tax and delivery-fee calculations derived from
// the order total.
//
// The package includes:
//   - Receipt: The aggregate root holding all figures for a completed order
//   - TaxFor / DeliveryFeeFor: pure, total functions deriving the receipt figures
//
// Key business rules:
//   - Receipts must reference a valid order and customer and a non-negative total
//   - TaxAmount is 10% of the order total, rounded to 2 decimals
//   - DeliveryFee is 5% of the order total, rounded to 2 decimals
//   - A receipt is immutable once created; there is no update path
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package receipt
