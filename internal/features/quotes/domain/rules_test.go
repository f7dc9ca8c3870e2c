package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLine(totalPrice float64) *ShippingLine {
	return &ShippingLine{
		Price:      totalPrice,
		TotalPrice: totalPrice,
	}
}

// TestShippingRule_MatchesZip verifies range matching with open bounds.
func TestShippingRule_MatchesZip(t *testing.T) {
	rule := ShippingRule{ZipRange: &ZipRange{Min: 20000000, Max: 28999999}}

	assert.True(t, rule.MatchesZip(20040020, true))
	assert.False(t, rule.MatchesZip(1310100, true))

	// open bounds
	assert.True(t, (&ShippingRule{ZipRange: &ZipRange{Min: 20000000}}).MatchesZip(99999999, true))
	assert.True(t, (&ShippingRule{ZipRange: &ZipRange{Max: 28999999}}).MatchesZip(0, true))

	// no range or no known destination match everything
	assert.True(t, (&ShippingRule{}).MatchesZip(12345678, true))
	assert.True(t, rule.MatchesZip(0, false))
}

// TestFreeShippingThreshold_TracksMinimum verifies that the lowest matching
// min_amount wins.
func TestFreeShippingThreshold_TracksMinimum(t *testing.T) {
	rules := []ShippingRule{
		{FreeShipping: true, MinAmount: 300},
		{FreeShipping: true, MinAmount: 150},
		{FreeShipping: true, MinAmount: 200},
	}

	threshold := FreeShippingThreshold(rules, 20040020, true, nil)

	require.NotNil(t, threshold)
	assert.Equal(t, 150.0, *threshold)
}

// TestFreeShippingThreshold_ShortCircuit verifies that a rule without a
// minimum sets the threshold to zero and stops the scan.
func TestFreeShippingThreshold_ShortCircuit(t *testing.T) {
	rules := []ShippingRule{
		{FreeShipping: true, MinAmount: 300},
		{FreeShipping: true},
		// would lower the threshold, but must never be reached
		{FreeShipping: true, MinAmount: 50},
	}

	threshold := FreeShippingThreshold(rules, 20040020, true, nil)

	require.NotNil(t, threshold)
	assert.Equal(t, 0.0, *threshold)
}

// TestFreeShippingThreshold_ZipFilter verifies that rules outside the
// destination range are ignored.
func TestFreeShippingThreshold_ZipFilter(t *testing.T) {
	rules := []ShippingRule{
		{FreeShipping: true, MinAmount: 100, ZipRange: &ZipRange{Min: 1000000, Max: 1999999}},
	}

	assert.Nil(t, FreeShippingThreshold(rules, 20040020, true, nil))

	threshold := FreeShippingThreshold(rules, 1310100, true, nil)
	require.NotNil(t, threshold)
	assert.Equal(t, 100.0, *threshold)
}

// TestFreeShippingThreshold_Seed verifies that a preconfigured threshold is
// only replaced by a lower matching rule.
func TestFreeShippingThreshold_Seed(t *testing.T) {
	seed := 120.0
	rules := []ShippingRule{
		{FreeShipping: true, MinAmount: 200},
	}

	threshold := FreeShippingThreshold(rules, 20040020, true, &seed)

	require.NotNil(t, threshold)
	assert.Equal(t, 120.0, *threshold)
}

// TestApplyRules_FirstMatchWins verifies that only the first applicable rule
// affects the price, regardless of later matching rules.
func TestApplyRules_FirstMatchWins(t *testing.T) {
	rules := []ShippingRule{
		{Discount: &RuleDiscount{Value: 5}},
		{FreeShipping: true},
	}
	line := newLine(30)

	ApplyRules(rules, ".PACKAGE", 20040020, 100, line)

	assert.Equal(t, 25.0, line.TotalPrice)
	assert.Equal(t, 5.0, line.Discount)
}

// TestApplyRules_FreeShipping verifies that a free shipping rule zeroes the
// total and records the delta as discount.
func TestApplyRules_FreeShipping(t *testing.T) {
	rules := []ShippingRule{
		{FreeShipping: true},
	}
	line := newLine(42.5)

	ApplyRules(rules, ".PACKAGE", 20040020, 100, line)

	assert.Equal(t, 0.0, line.TotalPrice)
	assert.Equal(t, 42.5, line.Discount)
}

// TestApplyRules_PercentageDiscount verifies percentage discounts are
// computed on the current total.
func TestApplyRules_PercentageDiscount(t *testing.T) {
	rules := []ShippingRule{
		{Discount: &RuleDiscount{Percentage: true, Value: 10}},
	}
	line := newLine(50)

	ApplyRules(rules, ".PACKAGE", 20040020, 100, line)

	assert.Equal(t, 45.0, line.TotalPrice)
	assert.Equal(t, 5.0, line.Discount)
}

// TestApplyRules_DiscountClamp verifies the total never goes negative.
func TestApplyRules_DiscountClamp(t *testing.T) {
	rules := []ShippingRule{
		{Discount: &RuleDiscount{Value: 100}},
	}
	line := newLine(30)

	ApplyRules(rules, ".PACKAGE", 20040020, 100, line)

	assert.Equal(t, 0.0, line.TotalPrice)
	assert.Equal(t, 100.0, line.Discount)
}

// TestApplyRules_ServiceCodeFilter verifies that a rule bound to another
// modality is skipped.
func TestApplyRules_ServiceCodeFilter(t *testing.T) {
	rules := []ShippingRule{
		{ServiceCode: ".COM", FreeShipping: true},
		{ServiceCode: ".PACKAGE", Discount: &RuleDiscount{Value: 3}},
	}
	line := newLine(20)

	ApplyRules(rules, ".PACKAGE", 20040020, 100, line)

	assert.Equal(t, 17.0, line.TotalPrice)
}

// TestApplyRules_MinAmount verifies that a rule above the declared value
// does not apply.
func TestApplyRules_MinAmount(t *testing.T) {
	rules := []ShippingRule{
		{MinAmount: 200, FreeShipping: true},
	}
	line := newLine(20)

	ApplyRules(rules, ".PACKAGE", 20040020, 100, line)

	assert.Equal(t, 20.0, line.TotalPrice)
	assert.Equal(t, 0.0, line.Discount)
}

// TestApplyRules_MatchWithoutEffectContinues verifies that a matching rule
// carrying no effect lets the scan continue.
func TestApplyRules_MatchWithoutEffectContinues(t *testing.T) {
	rules := []ShippingRule{
		{ZipRange: &ZipRange{Min: 20000000, Max: 28999999}},
		{Discount: &RuleDiscount{Value: 4}},
	}
	line := newLine(20)

	ApplyRules(rules, ".PACKAGE", 20040020, 100, line)

	assert.Equal(t, 16.0, line.TotalPrice)
}

// TestApplyRules_NegativeDiscountSurcharge verifies that a negative discount
// value raises the price, matching the configured surcharge semantics.
func TestApplyRules_NegativeDiscountSurcharge(t *testing.T) {
	rules := []ShippingRule{
		{Discount: &RuleDiscount{Value: -5}},
	}
	line := newLine(20)

	ApplyRules(rules, ".PACKAGE", 20040020, 100, line)

	assert.Equal(t, 25.0, line.TotalPrice)
	assert.Equal(t, -5.0, line.Discount)
}
