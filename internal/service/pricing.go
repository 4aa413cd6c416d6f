package service

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

type PriceBreakdown struct {
	ItemsPrice    float64
	ShippingPrice float64
	TaxPrice      float64
	TotalPrice    float64
}

// PricingPolicy derives shipping and tax from the items subtotal.
type PricingPolicy interface {
	Quote(itemsPrice float64) PriceBreakdown
}

// StandardPricing: free shipping from the threshold up, otherwise a flat fee.
// Tax is a small integer charge derived from the rounded subtotal.
type StandardPricing struct {
	FreeShippingFrom float64
	ShippingFee      float64
}

func NewStandardPricing() StandardPricing {
	return StandardPricing{FreeShippingFrom: 499, ShippingFee: 40}
}

func (p StandardPricing) Quote(itemsPrice float64) PriceBreakdown {
	items := decimal.NewFromFloat(itemsPrice).Round(2)
	shipping := decimal.Zero
	if items.LessThan(decimal.NewFromFloat(p.FreeShippingFrom)) {
		shipping = decimal.NewFromFloat(p.ShippingFee)
	}
	tax := decimal.NewFromInt(int64(math.Round(itemsPrice))%5 + 6)
	return breakdown(items, shipping, tax)
}

// PercentagePricing: free shipping strictly above the threshold, tax as a
// rate of the subtotal rounded to cents.
type PercentagePricing struct {
	FreeShippingAbove float64
	ShippingFee       float64
	TaxRate           float64
}

func NewPercentagePricing() PercentagePricing {
	return PercentagePricing{FreeShippingAbove: 100, ShippingFee: 10, TaxRate: 0.10}
}

func (p PercentagePricing) Quote(itemsPrice float64) PriceBreakdown {
	items := decimal.NewFromFloat(itemsPrice).Round(2)
	shipping := decimal.NewFromFloat(p.ShippingFee)
	if items.GreaterThan(decimal.NewFromFloat(p.FreeShippingAbove)) {
		shipping = decimal.Zero
	}
	tax := items.Mul(decimal.NewFromFloat(p.TaxRate)).Round(2)
	return breakdown(items, shipping, tax)
}

func breakdown(items, shipping, tax decimal.Decimal) PriceBreakdown {
	return PriceBreakdown{
		ItemsPrice:    items.InexactFloat64(),
		ShippingPrice: shipping.InexactFloat64(),
		TaxPrice:      tax.InexactFloat64(),
		TotalPrice:    items.Add(shipping).Add(tax).Round(2).InexactFloat64(),
	}
}

func NewPricingPolicy(name string) (PricingPolicy, error) {
	switch name {
	case "", "standard":
		return NewStandardPricing(), nil
	case "percentage":
		return NewPercentagePricing(), nil
	default:
		return nil, fmt.Errorf("unknown pricing policy %q", name)
	}
}

// toMinorUnits converts a price to the provider's smallest currency unit.
func toMinorUnits(price float64) int64 {
	return decimal.NewFromFloat(price).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

func sumLines(lines []lineAmount) float64 {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(decimal.NewFromFloat(l.price).Mul(decimal.NewFromInt(int64(l.qty))))
	}
	return total.Round(2).InexactFloat64()
}

type lineAmount struct {
	price float64
	qty   int
}
