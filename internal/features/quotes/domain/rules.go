package domain

// ZipRange bounds the destination zips a rule applies to.
// A zero Min or Max leaves that side unbounded.
type ZipRange struct {
	Min int `json:"min,omitempty"`
	Max int `json:"max,omitempty"`
}

// RuleDiscount is a fixed or percentage discount carried by a rule.
// A negative value applies a surcharge instead.
type RuleDiscount struct {
	Percentage bool    `json:"percentage,omitempty"`
	Value      float64 `json:"value"`
}

// ShippingRule is one merchant configured shipping rule. Rules are evaluated
// in declaration order and the first applicable rule wins.
type ShippingRule struct {
	// ServiceCode restricts the rule to one modality. Empty matches all.
	ServiceCode string `json:"service_code,omitempty"`
	// ZipRange restricts the rule to a destination zip interval.
	ZipRange *ZipRange `json:"zip_range,omitempty"`
	// MinAmount is the minimum order value for the rule to apply. Zero means
	// no minimum.
	MinAmount float64 `json:"min_amount,omitempty"`
	// FreeShipping makes the matched quote free.
	FreeShipping bool `json:"free_shipping,omitempty"`
	// Discount adjusts the matched quote price.
	Discount *RuleDiscount `json:"discount,omitempty"`
}

// MatchesZip reports whether the destination zip falls inside the rule range.
// Without a known destination, or without a range, every zip matches.
func (r *ShippingRule) MatchesZip(destZip int, hasDest bool) bool {
	if !hasDest || r.ZipRange == nil {
		return true
	}
	return (r.ZipRange.Min == 0 || destZip >= r.ZipRange.Min) &&
		(r.ZipRange.Max == 0 || destZip <= r.ZipRange.Max)
}

// FreeShippingThreshold scans the rule list for the advertised free shipping
// threshold: the lowest min_amount among free shipping rules matching the
// destination. A free shipping rule without a minimum is the most permissive
// possible, so it short-circuits the scan with a zero threshold.
//
// seed carries a preconfigured threshold that candidate rules must beat.
func FreeShippingThreshold(rules []ShippingRule, destZip int, hasDest bool, seed *float64) *float64 {
	threshold := seed
	for i := range rules {
		rule := &rules[i]
		if !rule.FreeShipping || !rule.MatchesZip(destZip, hasDest) {
			continue
		}
		if rule.MinAmount == 0 {
			zero := 0.0
			return &zero
		}
		if threshold == nil || *threshold > rule.MinAmount {
			amount := rule.MinAmount
			threshold = &amount
		}
	}
	return threshold
}

// ApplyRules walks the rule list in order and applies the first rule carrying
// an effect to the shipping line. A matching rule with neither free shipping
// nor a discount is skipped and the scan continues.
//
// Free shipping zeroes the total and records the delta as discount. A fixed
// or percentage discount is subtracted from the total, clamped at zero.
func ApplyRules(rules []ShippingRule, serviceCode string, destZip int, declaredValue float64, line *ShippingLine) {
	for i := range rules {
		rule := &rules[i]
		if rule.ServiceCode != "" && rule.ServiceCode != serviceCode {
			continue
		}
		if !rule.MatchesZip(destZip, true) {
			continue
		}
		if rule.MinAmount > declaredValue {
			continue
		}

		if rule.FreeShipping {
			line.Discount += line.TotalPrice
			line.TotalPrice = 0
			return
		}
		if rule.Discount != nil {
			discountValue := rule.Discount.Value
			if rule.Discount.Percentage {
				discountValue *= line.TotalPrice / 100
			}
			if discountValue != 0 {
				line.Discount += discountValue
				line.TotalPrice -= discountValue
				if line.TotalPrice < 0 {
					line.TotalPrice = 0
				}
			}
			return
		}
	}
}
