package services

import (
	"math"

	"dailydose/internal/models"
)

// Cart accumulates lines for one shopper. At most one line exists per
// product; repeated adds merge into it. The name, price and image on a
// line are snapshotted from the first add.
type Cart struct {
	lines       []models.CartLine
	shippingFee float64
}

// NewCart creates an empty cart priced with the given flat shipping fee.
func NewCart(shippingFee float64) *Cart {
	return &Cart{shippingFee: shippingFee}
}

// Add puts qty units of product into the cart, merging with an existing
// line for the same product. A qty below 1 counts as 1. Nil products
// are ignored.
func (c *Cart) Add(product *models.Product, qty int) {
	if product == nil {
		return
	}
	if qty < 1 {
		qty = 1
	}
	for i := range c.lines {
		if c.lines[i].ProductID == product.ID {
			c.lines[i].Qty += qty
			return
		}
	}
	c.lines = append(c.lines, models.CartLine{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Qty:       qty,
		Image:     product.Image,
	})
}

// SetQuantity sets the quantity of an existing line. A quantity of zero
// or below removes the line; a non-finite quantity is coerced to 1.
func (c *Cart) SetQuantity(productID uint, qty float64) {
	if math.IsNaN(qty) || math.IsInf(qty, 0) {
		qty = 1
	}
	if qty <= 0 {
		c.Remove(productID)
		return
	}
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines[i].Qty = int(qty)
			return
		}
	}
}

// Remove deletes the line for productID if present.
func (c *Cart) Remove(productID uint) {
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.lines = nil
}

// Lines returns a copy of the current cart lines.
func (c *Cart) Lines() []models.CartLine {
	out := make([]models.CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// Totals returns the current pricing breakdown.
func (c *Cart) Totals() models.Totals {
	return ComputeTotals(c.lines, c.shippingFee)
}

// ComputeTotals prices a set of cart lines: subtotal is the sum of
// price times quantity, the flat shipping fee applies whenever the
// subtotal is positive, and the grand total is their sum.
func ComputeTotals(lines []models.CartLine, shippingFee float64) models.Totals {
	var subtotal float64
	for _, line := range lines {
		subtotal += line.Price * float64(line.Qty)
	}
	fee := 0.0
	if subtotal > 0 {
		fee = shippingFee
	}
	return models.Totals{
		Subtotal:    subtotal,
		ShippingFee: fee,
		GrandTotal:  subtotal + fee,
	}
}
