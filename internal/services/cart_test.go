package services_test

import (
	"math"
	"testing"

	"dailydose/internal/models"
	"dailydose/internal/services"

	"github.com/stretchr/testify/assert"
)

func TestComputeTotals(t *testing.T) {
	lines := []models.CartLine{
		{ProductID: 1, Price: 10, Qty: 2},
		{ProductID: 2, Price: 3.5, Qty: 1},
	}

	totals := services.ComputeTotals(lines, 5)
	assert.Equal(t, 23.5, totals.Subtotal)
	assert.Equal(t, 5.0, totals.ShippingFee)
	assert.Equal(t, totals.Subtotal+totals.ShippingFee, totals.GrandTotal)

	// Empty cart pays no shipping
	empty := services.ComputeTotals(nil, 5)
	assert.Equal(t, 0.0, empty.Subtotal)
	assert.Equal(t, 0.0, empty.ShippingFee)
	assert.Equal(t, 0.0, empty.GrandTotal)
}

func TestCartAddMergesLines(t *testing.T) {
	cart := services.NewCart(5)
	product := &models.Product{ID: 1, Name: "Organic Green Tea", Price: 12.5, Image: "tea.jpg"}

	cart.Add(product, 2)

	// The second add happens after a price change; the line keeps the
	// snapshot from the first add.
	repriced := *product
	repriced.Price = 99
	repriced.Name = "Renamed Tea"
	cart.Add(&repriced, 3)

	lines := cart.Lines()
	assert.Len(t, lines, 1)
	assert.Equal(t, 5, lines[0].Qty)
	assert.Equal(t, 12.5, lines[0].Price)
	assert.Equal(t, "Organic Green Tea", lines[0].Name)
}

func TestCartAddDefaults(t *testing.T) {
	cart := services.NewCart(5)

	cart.Add(nil, 3)
	assert.Empty(t, cart.Lines())

	cart.Add(&models.Product{ID: 2, Name: "Candle", Price: 18}, 0)
	lines := cart.Lines()
	assert.Len(t, lines, 1)
	assert.Equal(t, 1, lines[0].Qty)
}

func TestCartSetQuantity(t *testing.T) {
	cart := services.NewCart(5)
	cart.Add(&models.Product{ID: 1, Name: "Tea", Price: 10}, 2)

	cart.SetQuantity(1, 4)
	assert.Equal(t, 4, cart.Lines()[0].Qty)

	// Non-finite quantities coerce to 1
	cart.SetQuantity(1, math.NaN())
	assert.Equal(t, 1, cart.Lines()[0].Qty)
	cart.SetQuantity(1, math.Inf(1))
	assert.Equal(t, 1, cart.Lines()[0].Qty)

	// Zero and below remove the line
	cart.SetQuantity(1, 0)
	assert.Empty(t, cart.Lines())

	cart.Add(&models.Product{ID: 1, Name: "Tea", Price: 10}, 2)
	cart.SetQuantity(1, -3)
	assert.Empty(t, cart.Lines())

	// Unknown product is a no-op
	cart.SetQuantity(42, 2)
	assert.Empty(t, cart.Lines())
}

func TestCartRemoveAndClear(t *testing.T) {
	cart := services.NewCart(5)
	cart.Add(&models.Product{ID: 1, Name: "Tea", Price: 10}, 1)
	cart.Add(&models.Product{ID: 2, Name: "Candle", Price: 18}, 1)

	cart.Remove(1)
	assert.Len(t, cart.Lines(), 1)
	cart.Remove(99) // no-op
	assert.Len(t, cart.Lines(), 1)

	cart.Clear()
	assert.Empty(t, cart.Lines())
	assert.Equal(t, 0.0, cart.Totals().GrandTotal)
}

func TestCartTotals(t *testing.T) {
	cart := services.NewCart(5)
	cart.Add(&models.Product{ID: 1, Name: "Tea", Price: 10}, 2)

	totals := cart.Totals()
	assert.Equal(t, 20.0, totals.Subtotal)
	assert.Equal(t, 5.0, totals.ShippingFee)
	assert.Equal(t, 25.0, totals.GrandTotal)
}
