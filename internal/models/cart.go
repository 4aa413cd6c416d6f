package models

import (
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Recalculate derives TotalPrice and TotalItems from the lines. It must run
// before every write of the cart.
func (c *Cart) Recalculate() {
	total := decimal.Zero
	count := 0
	for _, it := range c.Items {
		total = total.Add(decimal.NewFromFloat(it.Price).Mul(decimal.NewFromInt(int64(it.Quantity))))
		count += it.Quantity
	}
	c.TotalPrice = total.Round(2).InexactFloat64()
	c.TotalItems = count
}

// ItemByProduct returns the index of the line holding the product, or -1.
func (c *Cart) ItemByProduct(productID primitive.ObjectID) int {
	for i, it := range c.Items {
		if it.Product == productID {
			return i
		}
	}
	return -1
}

// ItemByID returns the index of the line with the given line id, or -1.
func (c *Cart) ItemByID(itemID primitive.ObjectID) int {
	for i, it := range c.Items {
		if it.ID == itemID {
			return i
		}
	}
	return -1
}
