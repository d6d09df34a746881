package services

import (
	"dailydose/internal/models"
	"dailydose/internal/repositories"
)

// StockPolicy decides what happens to product stock when an order is
// placed. Reserve runs inside the order transaction, so anything it
// does rolls back together with the order rows.
type StockPolicy interface {
	Reserve(r repositories.StockReserver, items []models.OrderItem) error
}

// KeepStock leaves stock untouched at order time. This matches the
// behavior where stock only gates the storefront UI and reservation
// happens at a later fulfillment step.
type KeepStock struct{}

// Reserve is a no-op.
func (KeepStock) Reserve(repositories.StockReserver, []models.OrderItem) error {
	return nil
}

// DecrementStock decrements stock for every ordered item and fails the
// order when any product runs short.
type DecrementStock struct{}

// Reserve decrements stock line by line; the first shortfall aborts.
func (DecrementStock) Reserve(r repositories.StockReserver, items []models.OrderItem) error {
	for _, item := range items {
		if err := r.ReserveStock(item.ProductID, item.Qty); err != nil {
			return err
		}
	}
	return nil
}

// StockPolicyFromName maps a configuration value to a policy. Unknown
// names fall back to KeepStock.
func StockPolicyFromName(name string) StockPolicy {
	if name == "decrement" {
		return DecrementStock{}
	}
	return KeepStock{}
}
