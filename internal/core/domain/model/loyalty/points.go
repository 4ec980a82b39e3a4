// Package loyalty provides the loyalty-point computation for completed orders.
// A completed order awards floor(orderTotal × 10) points, applied as a single
// additive increment to the customer's stored balance. The customer record
// itself is owned by the data store; this package only computes the increment.
package loyalty

import "math"

// pointsPerCurrencyUnit is the accrual rate: 10 points per unit of order total.
const pointsPerCurrencyUnit = 10

// PointsForTotal computes the loyalty points awarded for an order total.
// The award is floor(orderTotal × 10); fractional points are never granted.
// Negative totals are rejected upstream by request validation and yield 0 here.
func PointsForTotal(orderTotal float64) int {
	if orderTotal <= 0 {
		return 0
	}
	return int(math.Floor(orderTotal * pointsPerCurrencyUnit))
}
