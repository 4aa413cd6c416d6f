package service

import "testing"

func TestStandardPricing(t *testing.T) {
	p := NewStandardPricing()
	tests := []struct {
		name  string
		items float64
		want  PriceBreakdown
	}{
		{"free shipping at threshold", 499, PriceBreakdown{ItemsPrice: 499, ShippingPrice: 0, TaxPrice: 10, TotalPrice: 509}},
		{"free shipping above threshold", 600, PriceBreakdown{ItemsPrice: 600, ShippingPrice: 0, TaxPrice: 6, TotalPrice: 606}},
		{"flat fee below threshold", 498.99, PriceBreakdown{ItemsPrice: 498.99, ShippingPrice: 40, TaxPrice: 10, TotalPrice: 548.99}},
		{"small order", 20, PriceBreakdown{ItemsPrice: 20, ShippingPrice: 40, TaxPrice: 6, TotalPrice: 66}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Quote(tt.items); got != tt.want {
				t.Fatalf("Quote(%v) = %+v, want %+v", tt.items, got, tt.want)
			}
		})
	}
}

func TestPercentagePricing(t *testing.T) {
	p := NewPercentagePricing()
	tests := []struct {
		name  string
		items float64
		want  PriceBreakdown
	}{
		{"fee at threshold", 100, PriceBreakdown{ItemsPrice: 100, ShippingPrice: 10, TaxPrice: 10, TotalPrice: 120}},
		{"free shipping above threshold", 150.55, PriceBreakdown{ItemsPrice: 150.55, ShippingPrice: 0, TaxPrice: 15.06, TotalPrice: 165.61}},
		{"tax rounds to cents", 19.99, PriceBreakdown{ItemsPrice: 19.99, ShippingPrice: 10, TaxPrice: 2, TotalPrice: 31.99}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Quote(tt.items); got != tt.want {
				t.Fatalf("Quote(%v) = %+v, want %+v", tt.items, got, tt.want)
			}
		})
	}
}

func TestNewPricingPolicy(t *testing.T) {
	for _, name := range []string{"", "standard", "percentage"} {
		if _, err := NewPricingPolicy(name); err != nil {
			t.Fatalf("NewPricingPolicy(%q) error: %v", name, err)
		}
	}
	if _, err := NewPricingPolicy("flat"); err == nil {
		t.Fatal("expected error for unknown policy")
	}
}

func TestToMinorUnits(t *testing.T) {
	tests := map[float64]int64{
		19.99:   1999,
		0.1:     10,
		1299.5:  129950,
		4999.99: 499999,
	}
	for in, want := range tests {
		if got := toMinorUnits(in); got != want {
			t.Fatalf("toMinorUnits(%v) = %d, want %d", in, got, want)
		}
	}
}

func TestSumLines(t *testing.T) {
	got := sumLines([]lineAmount{{price: 0.1, qty: 3}, {price: 19.99, qty: 2}})
	if got != 40.28 {
		t.Fatalf("sumLines = %v, want 40.28", got)
	}
}
