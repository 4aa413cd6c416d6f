package models

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCartRecalculate(t *testing.T) {
	c := &Cart{Items: []CartItem{
		{ID: primitive.NewObjectID(), Product: primitive.NewObjectID(), Quantity: 2, Price: 300},
		{ID: primitive.NewObjectID(), Product: primitive.NewObjectID(), Quantity: 3, Price: 0.1},
	}}
	c.Recalculate()

	if c.TotalItems != 5 {
		t.Fatalf("TotalItems = %d, want 5", c.TotalItems)
	}
	if c.TotalPrice != 600.3 {
		t.Fatalf("TotalPrice = %v, want 600.3", c.TotalPrice)
	}

	c.Items = nil
	c.Recalculate()
	if c.TotalItems != 0 || c.TotalPrice != 0 {
		t.Fatalf("empty cart totals = %d/%v", c.TotalItems, c.TotalPrice)
	}
}

func TestCartLookup(t *testing.T) {
	pid := primitive.NewObjectID()
	iid := primitive.NewObjectID()
	c := &Cart{Items: []CartItem{{ID: iid, Product: pid, Quantity: 1, Price: 10}}}

	if i := c.ItemByProduct(pid); i != 0 {
		t.Fatalf("ItemByProduct = %d", i)
	}
	if i := c.ItemByID(iid); i != 0 {
		t.Fatalf("ItemByID = %d", i)
	}
	if i := c.ItemByID(primitive.NewObjectID()); i != -1 {
		t.Fatalf("ItemByID unknown = %d", i)
	}
}

func TestCategoryAndStatusValidation(t *testing.T) {
	if !Category("Home & Garden").Valid() || Category("Weapons").Valid() {
		t.Fatal("category validation mismatch")
	}
	if !OrderStatus("out-for-delivery").Valid() || OrderStatus("lost").Valid() {
		t.Fatal("order status validation mismatch")
	}
	if !PaymentStatus("failed").Valid() || PaymentStatus("refunded").Valid() {
		t.Fatal("payment status validation mismatch")
	}
}
