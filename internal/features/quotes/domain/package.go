package domain

import (
	"errors"
	"math"
)

// ErrEmptyCart is returned when a quote is requested without cart items.
var ErrEmptyCart = errors.New("cannot calculate shipping without cart items")

// PackageDimensions holds the aggregated per-axis dimensions in centimeters.
type PackageDimensions struct {
	Width  Measurement `json:"width"`
	Height Measurement `json:"height"`
	Length Measurement `json:"length"`
}

// Package is the aggregated parcel reported back on each shipping line.
type Package struct {
	Dimensions PackageDimensions `json:"dimensions"`
	Weight     Measurement       `json:"weight"`
}

// AggregatedPackage is the result of collapsing a cart into a single parcel.
type AggregatedPackage struct {
	// Package carries display dimensions (cm) and total physical weight (kg).
	Package Package
	// PhysicalWeight is the total physical weight in kg across the cart.
	PhysicalWeight float64
	// BillableWeight is the summed per-item max(physical, cubic) weight in kg,
	// before the rating floor is applied.
	BillableWeight float64
	// DeclaredValue is the order value before the rating floor is applied.
	DeclaredValue float64
}

// RatedWeight returns the billable weight as sent to the carrier:
// rounded to 2 decimals with a 0.1 kg minimum.
func (p *AggregatedPackage) RatedWeight() float64 {
	w := round2(p.BillableWeight)
	if w < 0.1 {
		return 0.1
	}
	return w
}

// RatedValue returns the declared value as sent to the carrier:
// rounded to 2 decimals with a minimum of 10.
func (p *AggregatedPackage) RatedValue() float64 {
	v := round2(p.DeclaredValue)
	if v < 10 {
		return 10
	}
	return v
}

// AggregatePackage collapses cart items into a single parcel.
//
// Physical weight accumulates per item times quantity. Cubic weight is the
// product of the item sides (cm) divided by 6000, the standard volumetric
// divisor for ground freight. The billable weight sums the greater of the two
// per item. When freeNoWeight is enabled, items with zero physical weight are
// skipped so all-digital carts can bypass weight-based pricing.
//
// When subtotal is unset (or zero) the declared value accumulates price times
// quantity per item; otherwise the given subtotal wins.
func AggregatePackage(items []CartItem, subtotal *float64, freeNoWeight bool) (*AggregatedPackage, error) {
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	agg := &AggregatedPackage{
		Package: Package{
			Dimensions: PackageDimensions{
				Width:  Measurement{Unit: "cm"},
				Height: Measurement{Unit: "cm"},
				Length: Measurement{Unit: "cm"},
			},
			Weight: Measurement{Unit: "kg"},
		},
	}
	if subtotal != nil {
		agg.DeclaredValue = *subtotal
	}
	sumPrices := subtotal == nil || *subtotal == 0

	for _, item := range items {
		qty := float64(item.Quantity)

		if sumPrices {
			agg.DeclaredValue += item.Price * qty
		}

		var physicalWeight float64
		if item.Weight != nil {
			physicalWeight = item.Weight.Kg()
			agg.Package.Weight.Value += physicalWeight * qty
		}

		var cubicWeight float64
		if item.Dimensions != nil {
			sides := []struct {
				value float64
				total *float64
			}{
				{cm(item.Dimensions.Width), &agg.Package.Dimensions.Width.Value},
				{cm(item.Dimensions.Height), &agg.Package.Dimensions.Height.Value},
				{cm(item.Dimensions.Length), &agg.Package.Dimensions.Length.Value},
			}
			for _, side := range sides {
				if side.value <= 0 {
					continue
				}
				if cubicWeight > 0 {
					cubicWeight *= side.value
				} else {
					cubicWeight = side.value
				}
				*side.total += side.value * qty
			}
			if cubicWeight > 0 {
				cubicWeight /= 6000
			}
		}

		if !freeNoWeight || physicalWeight > 0 {
			agg.BillableWeight += qty * math.Max(physicalWeight, cubicWeight)
		}
	}

	agg.PhysicalWeight = agg.Package.Weight.Value
	return agg, nil
}

func cm(m *Measurement) float64 {
	if m == nil {
		return 0
	}
	return m.Cm()
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
